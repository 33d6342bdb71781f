// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package mailer sends transactional email. Delivery goes through SendGrid
// when an API key is configured; otherwise messages are logged, which keeps
// development environments working without an email provider.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const sendgridMailEndpoint = "https://api.sendgrid.com/v3/mail/send"

// Message is one outbound email.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Sender delivers a single message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Config holds mailer configuration.
type Config struct {
	APIKey   string
	From     string
	FromName string
}

// Configured reports whether a real delivery provider is available.
func (c Config) Configured() bool {
	return c.APIKey != ""
}

// NewSender returns a SendGrid sender when an API key is configured and a
// log-only sender otherwise.
func NewSender(cfg Config, logger *slog.Logger) Sender {
	if cfg.Configured() {
		return NewSendGridSender(cfg)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSender{logger: logger}
}

// SendGridSender delivers mail via the SendGrid v3 Mail Send API.
type SendGridSender struct {
	apiKey   string
	from     string
	fromName string
	endpoint string
	client   *http.Client
}

// NewSendGridSender creates a SendGrid sender.
func NewSendGridSender(cfg Config) *SendGridSender {
	return &SendGridSender{
		apiKey:   cfg.APIKey,
		from:     cfg.From,
		fromName: cfg.FromName,
		endpoint: sendgridMailEndpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Send implements Sender.
func (s *SendGridSender) Send(ctx context.Context, msg Message) error {
	content := []sgContent{{Type: "text/plain", Value: msg.Text}}
	if msg.HTML != "" {
		content = append(content, sgContent{Type: "text/html", Value: msg.HTML})
	}

	payload := sgMailPayload{
		Personalizations: []sgPersonalization{{
			To: []sgAddress{{Email: msg.To}},
		}},
		From:    sgAddress{Email: s.from, Name: s.fromName},
		Subject: msg.Subject,
		Content: content,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal SendGrid payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create SendGrid request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("SendGrid request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("SendGrid returned status %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}

// LogSender logs messages instead of delivering them.
type LogSender struct {
	logger *slog.Logger
}

// Send implements Sender.
func (s *LogSender) Send(_ context.Context, msg Message) error {
	s.logger.Info("email logged (no delivery provider configured)",
		"to", msg.To, "subject", msg.Subject)
	return nil
}

// SendGrid v3 Mail Send API payload types.
type sgMailPayload struct {
	Personalizations []sgPersonalization `json:"personalizations"`
	From             sgAddress           `json:"from"`
	Subject          string              `json:"subject"`
	Content          []sgContent         `json:"content"`
}

type sgPersonalization struct {
	To []sgAddress `json:"to"`
}

type sgAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sgContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}
