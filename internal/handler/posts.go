// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/fitblog-go/internal/cache"
	"github.com/olegiv/fitblog-go/internal/content"
	"github.com/olegiv/fitblog-go/internal/i18n"
	"github.com/olegiv/fitblog-go/internal/middleware"
	"github.com/olegiv/fitblog-go/internal/model"
	"github.com/olegiv/fitblog-go/internal/render"
)

// PostsHandler serves the localized article list and article detail.
type PostsHandler struct {
	store  *content.Store
	cache  cache.Cacher
	logger *slog.Logger
}

// NewPostsHandler creates a new PostsHandler.
func NewPostsHandler(store *content.Store, c cache.Cacher, logger *slog.Logger) *PostsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostsHandler{store: store, cache: c, logger: logger}
}

// postSummary is the list-view shape of an article; the body is omitted.
type postSummary struct {
	Slug        string       `json:"slug"`
	Title       string       `json:"title"`
	Excerpt     string       `json:"excerpt"`
	CoverImage  string       `json:"cover_image"`
	Date        string       `json:"date"`
	DateDisplay string       `json:"date_display"`
	Author      model.Author `json:"author"`
	ReadTime    string       `json:"read_time"`
}

// postDetail is the detail-view shape: summary fields plus the intro image
// and the rendered body blocks.
type postDetail struct {
	postSummary
	IntroImage string         `json:"intro_image,omitempty"`
	Blocks     []render.Block `json:"blocks"`
}

// List handles GET /api/posts.
func (h *PostsHandler) List(w http.ResponseWriter, r *http.Request) {
	lang := middleware.GetLanguage(r)

	articles := h.store.ListAll(lang)
	posts := make([]postSummary, 0, len(articles))
	for _, a := range articles {
		posts = append(posts, summarize(a, lang))
	}

	writeJSONSuccess(w, map[string]any{
		"lang":  lang,
		"posts": posts,
		"strings": map[string]string{
			"subtitle":    i18n.T(lang, "home.subtitle"),
			"no_articles": i18n.T(lang, "home.no_articles"),
			"subscribe":   i18n.T(lang, "nav.subscribe"),
		},
	})
}

// Get handles GET /api/posts/{slug}. The rendered blocks are cached per
// (slug, language) since articles are immutable.
func (h *PostsHandler) Get(w http.ResponseWriter, r *http.Request) {
	lang := middleware.GetLanguage(r)
	slug := chi.URLParam(r, "slug")

	article, ok := h.store.BySlug(slug, lang)
	if !ok {
		writeJSONError(w, http.StatusNotFound, "Post not found")
		return
	}

	detail := postDetail{
		postSummary: summarize(article, lang),
		IntroImage:  article.IntroImage,
		Blocks:      h.renderBlocks(r, article, lang),
	}

	writeJSONSuccess(w, map[string]any{
		"lang": lang,
		"post": detail,
		"strings": map[string]string{
			"written_by":  i18n.T(lang, "article.written_by"),
			"back_to_all": i18n.T(lang, "article.back_to_all"),
		},
	})
}

// renderBlocks returns the article's rendered body, serving from cache when
// possible.
func (h *PostsHandler) renderBlocks(r *http.Request, article model.Article, lang string) []render.Block {
	key := fmt.Sprintf("post:%s:%s", article.Slug, lang)

	if data, err := h.cache.Get(r.Context(), key); err == nil {
		var blocks []render.Block
		if err := json.Unmarshal(data, &blocks); err == nil {
			return blocks
		}
		h.logger.Warn("discarding corrupt cache entry", "key", key)
	}

	blocks := render.Render(article.Body)
	if data, err := json.Marshal(blocks); err == nil {
		if err := h.cache.Set(r.Context(), key, data, 0); err != nil {
			h.logger.Warn("failed to cache rendered blocks", "key", key, "error", err)
		}
	}

	return blocks
}

func summarize(a model.Article, lang string) postSummary {
	return postSummary{
		Slug:        a.Slug,
		Title:       a.Title,
		Excerpt:     a.Excerpt,
		CoverImage:  a.CoverImage,
		Date:        a.Date.Format(time.DateOnly),
		DateDisplay: i18n.FormatDate(a.Date, lang),
		Author:      a.Author,
		ReadTime:    a.ReadTime,
	}
}
