// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package mailer

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/olegiv/fitblog-go/internal/model"
)

func TestWelcomeMessage(t *testing.T) {
	msg := WelcomeMessage("Jane")

	if msg.Subject != "Welcome to FitBlog Newsletter!" {
		t.Errorf("Subject = %q", msg.Subject)
	}
	if !strings.Contains(msg.Text, "Hi Jane,") {
		t.Error("text body missing greeting")
	}
	if !strings.Contains(msg.HTML, "<strong>Jane</strong>") {
		t.Error("html body missing subscriber name")
	}
	if msg.To != "" {
		t.Errorf("To = %q, want unset; the notifier fills it in", msg.To)
	}
}

func TestWelcomeMessageEscapesName(t *testing.T) {
	msg := WelcomeMessage(`<img src=x onerror=alert(1)>`)

	if strings.Contains(msg.HTML, "<img") {
		t.Error("html body contains unescaped markup from the name")
	}
	if !strings.Contains(msg.HTML, "&lt;img") {
		t.Error("name not entity-escaped in html body")
	}
}

func TestAdminAlertMessage(t *testing.T) {
	sub := model.Subscriber{
		Name:      "Jane",
		Email:     "jane@example.com",
		Consent:   true,
		CreatedAt: time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC),
	}
	msg := AdminAlertMessage(sub)

	if msg.Subject != "New Subscriber: Jane" {
		t.Errorf("Subject = %q", msg.Subject)
	}
	for _, want := range []string{"jane@example.com", "Consent: Yes", "2026-02-03T04:05:06Z"} {
		if !strings.Contains(msg.Text, want) {
			t.Errorf("text body missing %q", want)
		}
	}
	if !strings.Contains(msg.HTML, "jane@example.com") {
		t.Error("html body missing email")
	}
}

func TestAdminAlertMessageConsentNo(t *testing.T) {
	msg := AdminAlertMessage(model.Subscriber{Name: "X", Email: "x@y.co"})
	if !strings.Contains(msg.Text, "Consent: No") {
		t.Error("text body does not report missing consent")
	}
}

type recordingSender struct {
	sent []Message
}

func (r *recordingSender) Send(_ context.Context, msg Message) error {
	r.sent = append(r.sent, msg)
	return nil
}

func TestNotifierAddressing(t *testing.T) {
	rec := &recordingSender{}
	n := NewNotifier(rec)

	if err := n.SendWelcome(context.Background(), "Jane", "jane@example.com"); err != nil {
		t.Fatal(err)
	}
	if err := n.SendAdminAlert(context.Background(), "admin@fitblog.app", model.Subscriber{Name: "Jane"}); err != nil {
		t.Fatal(err)
	}

	if len(rec.sent) != 2 {
		t.Fatalf("sent %d messages, want 2", len(rec.sent))
	}
	if rec.sent[0].To != "jane@example.com" {
		t.Errorf("welcome To = %q", rec.sent[0].To)
	}
	if rec.sent[1].To != "admin@fitblog.app" {
		t.Errorf("alert To = %q", rec.sent[1].To)
	}
}
