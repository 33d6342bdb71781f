// Package i18n provides localization for the public site: the UI string
// catalog, language code normalization and Accept-Language matching.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/language"
)

//go:embed locales
var localesFS embed.FS

// DefaultLanguage is the base language every unrecognized code falls back to.
const DefaultLanguage = "en"

// SupportedLanguages lists the site languages in switcher order.
var SupportedLanguages = []string{"en", "de", "pl"}

// Message represents a single translatable message.
type Message struct {
	ID          string `json:"id"`
	Message     string `json:"message"`
	Translation string `json:"translation"`
}

// MessageFile represents the structure of a messages JSON file.
type MessageFile struct {
	Language string    `json:"language"`
	Messages []Message `json:"messages"`
}

// Catalog holds all translations for all supported languages.
type Catalog struct {
	mu           sync.RWMutex
	translations map[string]map[string]string // lang -> key -> translation
	matcher      language.Matcher
	supported    []language.Tag
	logger       *slog.Logger
}

// catalog is the global catalog instance.
var catalog *Catalog

// Init initializes the i18n system with the given logger.
func Init(logger *slog.Logger) error {
	catalog = &Catalog{
		translations: make(map[string]map[string]string),
		logger:       logger,
	}

	tags := make([]language.Tag, 0, len(SupportedLanguages))
	for _, lang := range SupportedLanguages {
		tags = append(tags, language.MustParse(lang))
	}
	catalog.supported = tags
	catalog.matcher = language.NewMatcher(tags)

	for _, lang := range SupportedLanguages {
		if err := catalog.loadLanguage(lang); err != nil {
			return fmt.Errorf("failed to load language %s: %w", lang, err)
		}
	}

	if logger != nil {
		logger.Info("i18n initialized", "languages", SupportedLanguages)
	}

	return nil
}

// loadLanguage loads translations for a specific language.
func (c *Catalog) loadLanguage(lang string) error {
	path := fmt.Sprintf("locales/%s/messages.json", lang)
	data, err := localesFS.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var msgFile MessageFile
	if err := json.Unmarshal(data, &msgFile); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.translations[lang] = make(map[string]string)
	for _, msg := range msgFile.Messages {
		c.translations[lang][msg.ID] = msg.Translation
	}

	if c.logger != nil {
		c.logger.Debug("loaded translations", "language", lang, "count", len(msgFile.Messages))
	}

	return nil
}

// Normalize maps an arbitrary string to a supported language code. It is
// total: empty, unknown or garbage input always yields the default language.
func Normalize(value string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	for _, lang := range SupportedLanguages {
		if v == lang {
			return lang
		}
	}
	return DefaultLanguage
}

// Next returns the language following current in the fixed cyclic switcher
// order. Unknown input is normalized first.
func Next(current string) string {
	cur := Normalize(current)
	for i, lang := range SupportedLanguages {
		if lang == cur {
			return SupportedLanguages[(i+1)%len(SupportedLanguages)]
		}
	}
	return DefaultLanguage
}

// IsSupported checks if a language code is one of the site languages.
func IsSupported(lang string) bool {
	lang = strings.ToLower(lang)
	for _, supported := range SupportedLanguages {
		if supported == lang {
			return true
		}
	}
	return false
}

// T translates a message key to the specified language.
// If the key is not found, it returns the key itself.
// Supports optional arguments for string formatting.
func T(lang, key string, args ...any) string {
	if catalog == nil {
		return key
	}

	catalog.mu.RLock()
	defer catalog.mu.RUnlock()

	langTranslations, ok := catalog.translations[Normalize(lang)]
	if !ok {
		langTranslations, ok = catalog.translations[DefaultLanguage]
		if !ok {
			return key
		}
	}

	translation, ok := langTranslations[key]
	if !ok {
		// Try default language as fallback
		if defaultTranslations, ok := catalog.translations[DefaultLanguage]; ok {
			if translation, ok = defaultTranslations[key]; ok {
				if catalog.logger != nil {
					catalog.logger.Debug("missing translation, using default", "key", key, "lang", lang)
				}
				if len(args) > 0 {
					return fmt.Sprintf(translation, args...)
				}
				return translation
			}
		}
		return key
	}

	if len(args) > 0 {
		return fmt.Sprintf(translation, args...)
	}

	return translation
}

// MatchLanguage finds the best matching supported language for the given
// Accept-Language header or single language code.
func MatchLanguage(acceptLang string) string {
	if catalog == nil {
		return DefaultLanguage
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLang)
	if err != nil || len(tags) == 0 {
		tag, err := language.Parse(acceptLang)
		if err != nil {
			return DefaultLanguage
		}
		tags = []language.Tag{tag}
	}

	_, idx, _ := catalog.matcher.Match(tags...)
	if idx >= 0 && idx < len(catalog.supported) {
		return catalog.supported[idx].String()
	}

	return DefaultLanguage
}

// monthNames holds the long month names used by FormatDate.
var monthNames = map[string][12]string{
	"en": {"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"},
	"de": {"Januar", "Februar", "März", "April", "Mai", "Juni",
		"Juli", "August", "September", "Oktober", "November", "Dezember"},
	"pl": {"stycznia", "lutego", "marca", "kwietnia", "maja", "czerwca",
		"lipca", "sierpnia", "września", "października", "listopada", "grudnia"},
}

// FormatDate renders a publication date in the long form conventional for
// the language: "December 14, 2025", "14. Dezember 2025", "14 grudnia 2025".
func FormatDate(t time.Time, lang string) string {
	l := Normalize(lang)
	month := monthNames[l][t.Month()-1]
	switch l {
	case "de":
		return fmt.Sprintf("%d. %s %d", t.Day(), month, t.Year())
	case "pl":
		return fmt.Sprintf("%d %s %d", t.Day(), month, t.Year())
	default:
		return fmt.Sprintf("%s %d, %d", month, t.Day(), t.Year())
	}
}
