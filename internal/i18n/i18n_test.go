package i18n

import (
	"testing"
	"time"
)

func initCatalog(t *testing.T) {
	t.Helper()
	if err := Init(nil); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"en", "en"},
		{"de", "de"},
		{"pl", "pl"},
		{"EN", "en"},
		{" de ", "de"},
		{"", "en"},
		{"fr", "en"},
		{"xx-junk", "en"},
		{"日本語", "en"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.input); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNext(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"en", "de"},
		{"de", "pl"},
		{"pl", "en"},
		{"unknown", "de"}, // normalized to en first
	}

	for _, tt := range tests {
		if got := Next(tt.input); got != tt.want {
			t.Errorf("Next(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNextIsCyclic(t *testing.T) {
	cur := DefaultLanguage
	for range SupportedLanguages {
		cur = Next(cur)
	}
	if cur != DefaultLanguage {
		t.Errorf("cycling through all languages ended at %q, want %q", cur, DefaultLanguage)
	}
}

func TestIsSupported(t *testing.T) {
	for _, lang := range SupportedLanguages {
		if !IsSupported(lang) {
			t.Errorf("IsSupported(%q) = false", lang)
		}
	}
	if IsSupported("fr") {
		t.Error("IsSupported(\"fr\") = true")
	}
	if !IsSupported("EN") {
		t.Error("IsSupported(\"EN\") = false, want case-insensitive match")
	}
}

func TestT(t *testing.T) {
	initCatalog(t)

	if got := T("en", "nav.subscribe"); got == "nav.subscribe" {
		t.Error("T(en, nav.subscribe) returned the key; translation missing")
	}
	if got := T("de", "nav.subscribe"); got == "nav.subscribe" {
		t.Error("T(de, nav.subscribe) returned the key; translation missing")
	}

	// Unknown key falls through to the key itself.
	if got := T("en", "no.such.key"); got != "no.such.key" {
		t.Errorf("T(en, no.such.key) = %q, want the key", got)
	}

	// Unknown language falls back to the default catalog.
	if got := T("fr", "nav.subscribe"); got != T("en", "nav.subscribe") {
		t.Errorf("T(fr, ...) = %q, want default-language translation", got)
	}
}

func TestMatchLanguage(t *testing.T) {
	initCatalog(t)

	tests := []struct {
		accept string
		want   string
	}{
		{"de", "de"},
		{"de-DE", "de"},
		{"pl-PL,pl;q=0.9,en;q=0.8", "pl"},
		{"en-US,en;q=0.5", "en"},
		{"fr-FR,fr;q=0.9", "en"},
		{"", "en"},
		{"garbage;;;", "en"},
	}

	for _, tt := range tests {
		if got := MatchLanguage(tt.accept); got != tt.want {
			t.Errorf("MatchLanguage(%q) = %q, want %q", tt.accept, got, tt.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	date := time.Date(2025, 12, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		lang string
		want string
	}{
		{"en", "December 14, 2025"},
		{"de", "14. Dezember 2025"},
		{"pl", "14 grudnia 2025"},
		{"fr", "December 14, 2025"}, // unknown falls back to en
	}

	for _, tt := range tests {
		if got := FormatDate(date, tt.lang); got != tt.want {
			t.Errorf("FormatDate(%q) = %q, want %q", tt.lang, got, tt.want)
		}
	}
}

func TestFormatDateAllMonths(t *testing.T) {
	for m := time.January; m <= time.December; m++ {
		d := time.Date(2025, m, 1, 0, 0, 0, 0, time.UTC)
		for _, lang := range SupportedLanguages {
			if got := FormatDate(d, lang); got == "" {
				t.Errorf("FormatDate(%v, %q) returned empty string", m, lang)
			}
		}
	}
}
