// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package subscription

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/fitblog-go/internal/model"
)

type fakeStore struct {
	err     error
	created []model.Subscriber
}

func (f *fakeStore) CreateSubscriber(_ context.Context, sub model.Subscriber) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, sub)
	return nil
}

type fakeNotifier struct {
	welcomeErr   error
	adminErr     error
	welcomeCalls int
	adminCalls   int
	lastWelcome  string
	lastAdmin    string
}

func (f *fakeNotifier) SendWelcome(_ context.Context, _, email string) error {
	f.welcomeCalls++
	f.lastWelcome = email
	return f.welcomeErr
}

func (f *fakeNotifier) SendAdminAlert(_ context.Context, adminEmail string, _ model.Subscriber) error {
	f.adminCalls++
	f.lastAdmin = adminEmail
	return f.adminErr
}

func validSubmission() model.Submission {
	return model.Submission{
		Email:   "  Jane@Example.com ",
		Name:    " Jane ",
		Consent: true,
	}
}

func TestProcessSuccess(t *testing.T) {
	store := &fakeStore{}
	notifier := &fakeNotifier{}
	svc := NewService(store, notifier, "admin@example.com", nil)

	result := svc.Process(context.Background(), validSubmission())

	require.True(t, result.Success)
	assert.Equal(t, SuccessMessage, result.Message)
	assert.Empty(t, result.Errors)
	assert.NoError(t, result.Err)

	require.Len(t, store.created, 1)
	rec := store.created[0]
	assert.Equal(t, "jane@example.com", rec.Email, "email persisted normalized")
	assert.Equal(t, "Jane", rec.Name, "name persisted trimmed")
	assert.True(t, rec.Consent)
	assert.NotEmpty(t, rec.ID)
	assert.False(t, rec.CreatedAt.IsZero())

	assert.Equal(t, 1, notifier.welcomeCalls)
	assert.Equal(t, "jane@example.com", notifier.lastWelcome)
	assert.Equal(t, 1, notifier.adminCalls)
	assert.Equal(t, "admin@example.com", notifier.lastAdmin)
}

func TestProcessValidationFailure(t *testing.T) {
	store := &fakeStore{}
	notifier := &fakeNotifier{}
	svc := NewService(store, notifier, "admin@example.com", nil)

	result := svc.Process(context.Background(), model.Submission{})

	assert.False(t, result.Success)
	assert.Equal(t, "Validation failed", result.Message)
	assert.Len(t, result.Errors, 3)
	assert.NoError(t, result.Err)

	// Validation failure stops the pipeline before any side effects.
	assert.Empty(t, store.created)
	assert.Zero(t, notifier.welcomeCalls)
	assert.Zero(t, notifier.adminCalls)
}

func TestProcessPersistenceFailure(t *testing.T) {
	storeErr := errors.New("disk full")
	store := &fakeStore{err: storeErr}
	notifier := &fakeNotifier{}
	svc := NewService(store, notifier, "admin@example.com", nil)

	result := svc.Process(context.Background(), validSubmission())

	assert.False(t, result.Success)
	assert.Equal(t, "Failed to store subscriber", result.Message)
	assert.Empty(t, result.Errors)
	assert.ErrorIs(t, result.Err, storeErr)

	// A failed write must not trigger any notification.
	assert.Zero(t, notifier.welcomeCalls)
	assert.Zero(t, notifier.adminCalls)
}

func TestProcessWelcomeFailureIsNonFatal(t *testing.T) {
	store := &fakeStore{}
	notifier := &fakeNotifier{welcomeErr: errors.New("smtp down")}
	svc := NewService(store, notifier, "admin@example.com", nil)

	result := svc.Process(context.Background(), validSubmission())

	assert.True(t, result.Success, "welcome delivery failure must not fail the subscription")
	assert.Equal(t, SuccessMessage, result.Message)
	assert.Len(t, store.created, 1)
	// The admin alert is still attempted.
	assert.Equal(t, 1, notifier.adminCalls)
}

func TestProcessAdminAlertFailureIsNonFatal(t *testing.T) {
	store := &fakeStore{}
	notifier := &fakeNotifier{adminErr: errors.New("smtp down")}
	svc := NewService(store, notifier, "admin@example.com", nil)

	result := svc.Process(context.Background(), validSubmission())

	assert.True(t, result.Success)
	assert.Len(t, store.created, 1)
}

func TestProcessNoAdminEmailSkipsAlert(t *testing.T) {
	store := &fakeStore{}
	notifier := &fakeNotifier{}
	svc := NewService(store, notifier, "", nil)

	result := svc.Process(context.Background(), validSubmission())

	assert.True(t, result.Success)
	assert.Equal(t, 1, notifier.welcomeCalls)
	assert.Zero(t, notifier.adminCalls, "no admin alert without a configured address")
}

func TestProcessGeneratesUniqueIDs(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, &fakeNotifier{}, "", nil)

	svc.Process(context.Background(), model.Submission{Email: "a@example.com", Name: "Ann", Consent: true})
	svc.Process(context.Background(), model.Submission{Email: "b@example.com", Name: "Ben", Consent: true})

	require.Len(t, store.created, 2)
	assert.NotEqual(t, store.created[0].ID, store.created[1].ID)
}
