// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package mailer

import (
	"context"
	"fmt"
	"html"
	"time"

	"github.com/olegiv/fitblog-go/internal/model"
)

// Notifier builds the subscription emails and hands them to a Sender. It
// satisfies the subscription.Notifier interface.
type Notifier struct {
	sender Sender
}

// NewNotifier creates a Notifier on top of a Sender.
func NewNotifier(sender Sender) *Notifier {
	return &Notifier{sender: sender}
}

// SendWelcome sends the welcome email to a new subscriber.
func (n *Notifier) SendWelcome(ctx context.Context, name, email string) error {
	msg := WelcomeMessage(name)
	msg.To = email
	return n.sender.Send(ctx, msg)
}

// SendAdminAlert sends the new-subscriber notification to the admin address.
func (n *Notifier) SendAdminAlert(ctx context.Context, adminEmail string, sub model.Subscriber) error {
	msg := AdminAlertMessage(sub)
	msg.To = adminEmail
	return n.sender.Send(ctx, msg)
}

// WelcomeMessage builds the welcome email body for a subscriber name.
func WelcomeMessage(name string) Message {
	text := fmt.Sprintf(`Hi %s,

Welcome to the FitBlog community!

Thank you for subscribing to our newsletter. You'll now receive weekly insights on:
- Workout tips and training routines
- Nutrition advice and healthy recipes
- Exclusive subscriber-only content

We're excited to have you on board!

Best regards,
The FitBlog Team

---
If you didn't subscribe to this newsletter, you can safely ignore this email.
To unsubscribe, reply to this email with "unsubscribe" in the subject line.`, name)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Welcome to FitBlog</title></head>
<body>
  <h1>Welcome to FitBlog!</h1>
  <p>Hi <strong>%s</strong>,</p>
  <p>Thank you for subscribing to our newsletter.</p>
  <h2>What You'll Receive:</h2>
  <ul>
    <li><strong>Workout Tips</strong> - Weekly training insights and routines</li>
    <li><strong>Nutrition Advice</strong> - Healthy eating strategies and recipes</li>
    <li><strong>Exclusive Content</strong> - Subscriber-only articles and resources</li>
  </ul>
  <p>We're excited to have you on board!</p>
  <p>Best regards,<br><strong>The FitBlog Team</strong></p>
  <p style="color:#9ca3af;font-size:12px">If you didn't subscribe to this newsletter, you can safely ignore this email.<br>
  To unsubscribe, reply to this email with "unsubscribe" in the subject line.</p>
</body>
</html>`, html.EscapeString(name))

	return Message{
		Subject: "Welcome to FitBlog Newsletter!",
		Text:    text,
		HTML:    htmlBody,
	}
}

// AdminAlertMessage builds the new-subscriber notification for the admin.
func AdminAlertMessage(sub model.Subscriber) Message {
	consent := "No"
	if sub.Consent {
		consent = "Yes"
	}

	text := fmt.Sprintf(`New newsletter subscription:

Name: %s
Email: %s
Consent: %s
Date: %s`, sub.Name, sub.Email, consent, sub.CreatedAt.UTC().Format(time.RFC3339))

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body>
  <h2>New Newsletter Subscription</h2>
  <table>
    <tr><td><strong>Name</strong></td><td>%s</td></tr>
    <tr><td><strong>Email</strong></td><td>%s</td></tr>
    <tr><td><strong>Consent</strong></td><td>%s</td></tr>
    <tr><td><strong>Date</strong></td><td>%s</td></tr>
  </table>
</body>
</html>`, html.EscapeString(sub.Name), html.EscapeString(sub.Email), consent,
		sub.CreatedAt.UTC().Format(time.RFC3339))

	return Message{
		Subject: fmt.Sprintf("New Subscriber: %s", sub.Name),
		Text:    text,
		HTML:    htmlBody,
	}
}
