// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/olegiv/fitblog-go/internal/content"
	"github.com/olegiv/fitblog-go/internal/i18n"
	"github.com/olegiv/fitblog-go/internal/seo"
)

// SEOHandler serves sitemap.xml and robots.txt over the article catalog.
type SEOHandler struct {
	store   *content.Store
	baseURL string
	isDev   bool
	logger  *slog.Logger
}

// NewSEOHandler creates a new SEO handler.
func NewSEOHandler(store *content.Store, baseURL string, isDev bool, logger *slog.Logger) *SEOHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SEOHandler{
		store:   store,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		isDev:   isDev,
		logger:  logger,
	}
}

// Sitemap handles GET /sitemap.xml.
func (h *SEOHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	articles := h.store.ListAll(i18n.DefaultLanguage)
	entries := make([]seo.SitemapArticle, 0, len(articles))
	for _, a := range articles {
		entries = append(entries, seo.SitemapArticle{
			Slug:      a.Slug,
			UpdatedAt: a.Date,
		})
	}

	output, err := seo.GenerateSitemap(h.baseURL, entries)
	if err != nil {
		h.logger.Error("failed to generate sitemap", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	if _, err := w.Write(output); err != nil {
		h.logger.Error("failed to write sitemap response", "error", err)
	}
}

// Robots handles GET /robots.txt. Development deployments block all crawlers.
func (h *SEOHandler) Robots(w http.ResponseWriter, r *http.Request) {
	builder := seo.NewRobotsBuilder(seo.RobotsConfig{
		SiteURL:     h.baseURL,
		DisallowAll: h.isDev,
	})

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(builder.Build())); err != nil {
		h.logger.Error("failed to write robots response", "error", err)
	}
}
