// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package subscription

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/olegiv/fitblog-go/internal/model"
)

// SuccessMessage is the user-facing confirmation returned on success.
const SuccessMessage = "Subscription successful! Check your email for confirmation."

// SubscriberStore persists subscribers. Writes are append-only.
type SubscriberStore interface {
	CreateSubscriber(ctx context.Context, sub model.Subscriber) error
}

// Notifier sends the two outbound notifications. Delivery failures are
// fire-and-forget: they are logged by the service and never reach the caller.
type Notifier interface {
	SendWelcome(ctx context.Context, name, email string) error
	SendAdminAlert(ctx context.Context, adminEmail string, sub model.Subscriber) error
}

// Result is the terminal outcome of a subscription attempt. Exactly one of
// the failure fields is set: Errors for validation failures, Err for
// persistence or unexpected failures.
type Result struct {
	Success bool
	Message string
	Errors  []string
	Err     error
}

// Service orchestrates a full subscription attempt.
type Service struct {
	store      SubscriberStore
	notifier   Notifier
	adminEmail string
	logger     *slog.Logger
}

// NewService creates a subscription service. adminEmail may be empty, in
// which case no admin alert is sent.
func NewService(store SubscriberStore, notifier Notifier, adminEmail string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:      store,
		notifier:   notifier,
		adminEmail: adminEmail,
		logger:     logger,
	}
}

// Process runs the pipeline: normalize, validate, persist, notify. The steps
// are strictly sequential. Validation and persistence failures abort the
// attempt; notification failures do not, since persistence is the source of
// truth for whether someone is subscribed.
func (s *Service) Process(ctx context.Context, raw model.Submission) Result {
	sub := Normalize(raw)

	if v := Validate(sub); !v.Valid {
		return Result{
			Message: "Validation failed",
			Errors:  v.Errors,
		}
	}

	record := model.Subscriber{
		ID:        uuid.NewString(),
		Email:     sub.Email,
		Name:      sub.Name,
		Consent:   sub.Consent,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.CreateSubscriber(ctx, record); err != nil {
		s.logger.Error("failed to store subscriber", "email", sub.Email, "error", err)
		return Result{
			Message: "Failed to store subscriber",
			Err:     err,
		}
	}
	s.logger.Info("subscriber stored", "id", record.ID, "email", record.Email)

	if err := s.notifier.SendWelcome(ctx, record.Name, record.Email); err != nil {
		s.logger.Warn("welcome email failed to send, but subscription was stored",
			"email", record.Email, "error", err)
	}

	if s.adminEmail != "" {
		if err := s.notifier.SendAdminAlert(ctx, s.adminEmail, record); err != nil {
			s.logger.Warn("admin notification failed to send",
				"admin", s.adminEmail, "error", err)
		}
	}

	return Result{
		Success: true,
		Message: SuccessMessage,
	}
}
