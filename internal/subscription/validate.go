// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package subscription implements the newsletter signup pipeline: input
// normalization, validation, append-only persistence and best-effort email
// notifications.
package subscription

import (
	"regexp"
	"strings"

	"github.com/olegiv/fitblog-go/internal/model"
)

// emailRe matches the user@domain.tld shape: no spaces or extra @ on either
// side, and at least one dot in the domain part.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validation messages, reported as a complete list.
const (
	ErrEmailRequired   = "Valid email address is required"
	ErrNameTooShort    = "Name must be at least 2 characters"
	ErrConsentRequired = "You must agree to receive emails"
)

// Validation is the result of checking a submission. Errors holds every
// violation, never just the first one.
type Validation struct {
	Valid  bool
	Errors []string
}

// Validate checks a submission against the signup rules. Each rule is
// checked independently; the function is pure and has no side effects.
func Validate(s model.Submission) Validation {
	var errs []string

	if s.Email == "" || !emailRe.MatchString(s.Email) {
		errs = append(errs, ErrEmailRequired)
	}

	if len(strings.TrimSpace(s.Name)) < 2 {
		errs = append(errs, ErrNameTooShort)
	}

	if !s.Consent {
		errs = append(errs, ErrConsentRequired)
	}

	return Validation{
		Valid:  len(errs) == 0,
		Errors: errs,
	}
}

// Normalize trims the name, trims and lowercases the email and leaves the
// consent flag as-is.
func Normalize(s model.Submission) model.Submission {
	return model.Submission{
		Email:   strings.ToLower(strings.TrimSpace(s.Email)),
		Name:    strings.TrimSpace(s.Name),
		Consent: s.Consent,
	}
}
