package seo

import (
	"encoding/xml"
	"strings"
	"testing"
	"time"
)

func TestSitemapBuilderBuild(t *testing.T) {
	b := NewSitemapBuilder("https://fitblog.app")
	b.AddHomepage()
	b.AddArticle(SitemapArticle{
		Slug:      "first-article",
		UpdatedAt: time.Date(2025, 12, 14, 0, 0, 0, 0, time.UTC),
	})
	b.AddArticle(SitemapArticle{Slug: "no-date"})

	out, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	content := string(out)
	if !strings.HasPrefix(content, xml.Header) {
		t.Error("missing XML header")
	}
	if !strings.Contains(content, `xmlns="`+XMLNamespace+`"`) {
		t.Error("missing sitemap namespace")
	}
	if !strings.Contains(content, "<loc>https://fitblog.app</loc>") {
		t.Error("missing homepage URL")
	}
	if !strings.Contains(content, "<loc>https://fitblog.app/first-article</loc>") {
		t.Error("missing article URL")
	}
	if !strings.Contains(content, "<lastmod>2025-12-14T00:00:00Z</lastmod>") {
		t.Error("missing lastmod for dated article")
	}

	// Zero dates stay out of the document entirely.
	if strings.Count(content, "<lastmod>") != 1 {
		t.Errorf("got %d lastmod elements, want 1", strings.Count(content, "<lastmod>"))
	}

	// The result must parse back.
	var parsed Sitemap
	if err := xml.Unmarshal(out, &parsed); err != nil {
		t.Fatalf("output does not parse: %v", err)
	}
	if len(parsed.URLs) != 3 {
		t.Errorf("got %d URLs, want 3", len(parsed.URLs))
	}
}

func TestSitemapBuilderPriorities(t *testing.T) {
	b := NewSitemapBuilder("https://example.com")
	b.AddHomepage()
	b.AddArticle(SitemapArticle{Slug: "a"})

	out, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}

	var parsed Sitemap
	if err := xml.Unmarshal(out, &parsed); err != nil {
		t.Fatal(err)
	}
	if parsed.URLs[0].Priority != "1.0" {
		t.Errorf("homepage priority = %q, want 1.0", parsed.URLs[0].Priority)
	}
	if parsed.URLs[1].Priority != "0.8" {
		t.Errorf("article priority = %q, want 0.8", parsed.URLs[1].Priority)
	}
	if parsed.URLs[0].ChangeFreq != ChangeFreqDaily {
		t.Errorf("homepage changefreq = %q", parsed.URLs[0].ChangeFreq)
	}
	if parsed.URLs[1].ChangeFreq != ChangeFreqMonthly {
		t.Errorf("article changefreq = %q", parsed.URLs[1].ChangeFreq)
	}
}

func TestGenerateSitemap(t *testing.T) {
	out, err := GenerateSitemap("https://example.com", []SitemapArticle{
		{Slug: "one"},
		{Slug: "two"},
	})
	if err != nil {
		t.Fatalf("GenerateSitemap() error = %v", err)
	}

	var parsed Sitemap
	if err := xml.Unmarshal(out, &parsed); err != nil {
		t.Fatal(err)
	}
	if len(parsed.URLs) != 3 {
		t.Errorf("got %d URLs, want homepage plus 2 articles", len(parsed.URLs))
	}
}
