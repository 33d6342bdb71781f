// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Submission is the raw, untrusted input of a newsletter signup request.
type Submission struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Consent bool   `json:"consent"`
}

// Subscriber is a stored newsletter subscriber. Records are append-only:
// there are no update or delete operations.
type Subscriber struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Consent   bool      `json:"consent"`
	CreatedAt time.Time `json:"created_at"`
}
