// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package content holds the static article collection and its localized
// read-only views. Articles are compiled in, never mutated at runtime, and
// safe to share across concurrent requests.
package content

import (
	"fmt"
	"sort"

	"github.com/olegiv/fitblog-go/internal/i18n"
	"github.com/olegiv/fitblog-go/internal/model"
	"github.com/olegiv/fitblog-go/internal/util"
)

// Store is a read-only repository over the static article table.
type Store struct {
	articles []model.Article
}

// New builds the store from the compiled-in article table and verifies the
// static data: every slug must be well-formed and globally unique.
func New() (*Store, error) {
	return newStore(articles)
}

func newStore(list []model.Article) (*Store, error) {
	seen := make(map[string]struct{}, len(list))
	for _, a := range list {
		if !util.IsValidSlug(a.Slug) {
			return nil, fmt.Errorf("invalid article slug %q", a.Slug)
		}
		if _, dup := seen[a.Slug]; dup {
			return nil, fmt.Errorf("duplicate article slug %q", a.Slug)
		}
		seen[a.Slug] = struct{}{}
	}
	return &Store{articles: list}, nil
}

// ListAll returns all articles localized for lang, ordered by descending
// publication date regardless of definition order.
func (s *Store) ListAll(lang string) []model.Article {
	l := i18n.Normalize(lang)

	out := make([]model.Article, 0, len(s.articles))
	for _, a := range s.articles {
		out = append(out, localize(a, l))
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})

	return out
}

// BySlug returns the article with the given slug localized for lang, or
// false when no such article exists.
func (s *Store) BySlug(slug, lang string) (model.Article, bool) {
	l := i18n.Normalize(lang)
	for _, a := range s.articles {
		if a.Slug == slug {
			return localize(a, l), true
		}
	}
	return model.Article{}, false
}

// Count returns the number of defined articles.
func (s *Store) Count() int {
	return len(s.articles)
}

// localize resolves the per-language view of an article. Image fields fall
// back individually; text fields fall back wholesale, since a missing
// translation record means the entire base-language text block is used.
func localize(a model.Article, lang string) model.Article {
	if lang == i18n.DefaultLanguage {
		return a
	}

	if img, ok := a.CoverImageI18n[lang]; ok {
		a.CoverImage = img
	}
	if img, ok := a.IntroImageI18n[lang]; ok {
		a.IntroImage = img
	}

	if tr, ok := a.Translations[lang]; ok {
		a.Title = tr.Title
		a.Excerpt = tr.Excerpt
		a.Body = tr.Body
	}

	return a
}
