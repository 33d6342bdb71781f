// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model contains domain models and constants for the application.
package model

import "time"

// Author identifies the person who wrote an article.
type Author struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Translation carries the per-language text fields of an article.
// A translation replaces title, excerpt and body wholesale; there is no
// field-by-field merging for text.
type Translation struct {
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
	Body    string `json:"body"`
}

// Article is one blog entry. Articles are immutable static data defined at
// build time; the slug is the unique, URL-safe identifier.
type Article struct {
	Slug       string    `json:"slug"`
	Title      string    `json:"title"`
	Excerpt    string    `json:"excerpt"`
	Body       string    `json:"body"`
	CoverImage string    `json:"cover_image"`
	IntroImage string    `json:"intro_image,omitempty"`
	Date       time.Time `json:"date"`
	Author     Author    `json:"author"`
	ReadTime   string    `json:"read_time"`

	// Translations maps a language code to alternate text fields. When a
	// language has no entry the base-language fields are used as-is.
	Translations map[string]Translation `json:"-"`

	// CoverImageI18n and IntroImageI18n map a language code to alternate
	// image references. Image fields fall back individually, independent
	// of whether a text translation exists.
	CoverImageI18n map[string]string `json:"-"`
	IntroImageI18n map[string]string `json:"-"`
}
