// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/olegiv/fitblog-go/internal/model"
)

// Queries wraps a database handle with the subscriber queries.
type Queries struct {
	db *sql.DB
}

// New creates a Queries instance for the given database.
func New(db *sql.DB) *Queries {
	return &Queries{db: db}
}

// CreateSubscriber appends a subscriber record. Re-subscribing with an
// already-stored email is a no-op, not an error, so a repeated signup still
// looks successful to the subscriber.
func (q *Queries) CreateSubscriber(ctx context.Context, sub model.Subscriber) error {
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO subscribers (id, email, name, consent, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(email) DO NOTHING`,
		sub.ID, sub.Email, sub.Name, boolToInt(sub.Consent), sub.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("inserting subscriber: %w", err)
	}
	return nil
}

// GetSubscriberByEmail returns the stored subscriber for an email address.
func (q *Queries) GetSubscriberByEmail(ctx context.Context, email string) (model.Subscriber, error) {
	var (
		sub       model.Subscriber
		consent   int
		createdAt time.Time
	)
	err := q.db.QueryRowContext(ctx, `
		SELECT id, email, name, consent, created_at
		FROM subscribers WHERE email = ?`, email).
		Scan(&sub.ID, &sub.Email, &sub.Name, &consent, &createdAt)
	if err != nil {
		return model.Subscriber{}, fmt.Errorf("selecting subscriber: %w", err)
	}
	sub.Consent = consent != 0
	sub.CreatedAt = createdAt
	return sub, nil
}

// CountSubscribers returns the number of stored subscribers.
func (q *Queries) CountSubscribers(ctx context.Context) (int64, error) {
	var n int64
	if err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM subscribers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting subscribers: %w", err)
	}
	return n, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
