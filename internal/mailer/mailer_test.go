// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewSenderSelection(t *testing.T) {
	if _, ok := NewSender(Config{APIKey: "key"}, nil).(*SendGridSender); !ok {
		t.Error("configured API key did not select the SendGrid sender")
	}
	if _, ok := NewSender(Config{}, nil).(*LogSender); !ok {
		t.Error("missing API key did not select the log sender")
	}
}

func TestLogSenderNeverFails(t *testing.T) {
	s := NewSender(Config{}, nil)
	err := s.Send(context.Background(), Message{To: "a@example.com", Subject: "x", Text: "y"})
	if err != nil {
		t.Errorf("LogSender.Send() error = %v", err)
	}
}

func TestSendGridSenderPayload(t *testing.T) {
	var (
		gotAuth    string
		gotPayload sgMailPayload
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Errorf("decoding payload: %v", err)
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	s := NewSendGridSender(Config{APIKey: "test-key", From: "news@fitblog.app", FromName: "FitBlog"})
	s.endpoint = srv.URL

	err := s.Send(context.Background(), Message{
		To:      "jane@example.com",
		Subject: "Hello",
		Text:    "plain body",
		HTML:    "<p>html body</p>",
	})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	if gotAuth != "Bearer test-key" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if len(gotPayload.Personalizations) != 1 || len(gotPayload.Personalizations[0].To) != 1 {
		t.Fatalf("personalizations = %+v", gotPayload.Personalizations)
	}
	if gotPayload.Personalizations[0].To[0].Email != "jane@example.com" {
		t.Errorf("to = %q", gotPayload.Personalizations[0].To[0].Email)
	}
	if gotPayload.From.Email != "news@fitblog.app" || gotPayload.From.Name != "FitBlog" {
		t.Errorf("from = %+v", gotPayload.From)
	}
	if gotPayload.Subject != "Hello" {
		t.Errorf("subject = %q", gotPayload.Subject)
	}
	if len(gotPayload.Content) != 2 {
		t.Fatalf("got %d content parts, want 2", len(gotPayload.Content))
	}
	if gotPayload.Content[0].Type != "text/plain" || gotPayload.Content[1].Type != "text/html" {
		t.Errorf("content types = %q, %q", gotPayload.Content[0].Type, gotPayload.Content[1].Type)
	}
}

func TestSendGridSenderTextOnly(t *testing.T) {
	var gotPayload sgMailPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotPayload)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	s := NewSendGridSender(Config{APIKey: "k", From: "a@b.co"})
	s.endpoint = srv.URL

	if err := s.Send(context.Background(), Message{To: "x@y.co", Text: "only text"}); err != nil {
		t.Fatal(err)
	}
	if len(gotPayload.Content) != 1 {
		t.Errorf("got %d content parts, want 1 for text-only message", len(gotPayload.Content))
	}
}

func TestSendGridSenderErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"errors":[{"message":"bad key"}]}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	s := NewSendGridSender(Config{APIKey: "bad", From: "a@b.co"})
	s.endpoint = srv.URL

	err := s.Send(context.Background(), Message{To: "x@y.co", Text: "t"})
	if err == nil {
		t.Fatal("Send() returned no error for a 401 response")
	}
}
