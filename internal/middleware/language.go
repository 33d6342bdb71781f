// Package middleware provides HTTP middleware for language resolution and
// request throttling.
package middleware

import (
	"context"
	"net/http"

	"github.com/olegiv/fitblog-go/internal/i18n"
)

// ContextKey is the type for request context keys set by this package.
type ContextKey string

// ContextKeyLanguage holds the resolved language code for the request.
const ContextKeyLanguage ContextKey = "language"

// LanguageCookieName is the cookie name for language preference.
const LanguageCookieName = "fitblog_lang"

// languageCookieMaxAge is one year, matching the persistence contract of the
// language preference.
const languageCookieMaxAge = 365 * 24 * 60 * 60

// cookieSecure controls the Secure flag on the language cookie.
var cookieSecure = true

// InitLanguageCookies configures cookie security. In development the Secure
// flag is dropped so the cookie works over plain HTTP.
func InitLanguageCookies(isDevelopment bool) {
	cookieSecure = !isDevelopment
}

// Language creates middleware that resolves the request language.
// Priority order:
// 1. Query parameter ?lang=XX (explicit language switch, updates cookie)
// 2. Cookie preference
// 3. Accept-Language header
// 4. Default language
func Language() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			// 1. Explicit language switch persists the new preference.
			if queryLang := r.URL.Query().Get("lang"); queryLang != "" && i18n.IsSupported(queryLang) {
				code := i18n.Normalize(queryLang)
				SetLanguageCookie(w, code)
				next.ServeHTTP(w, r.WithContext(setLanguage(ctx, code)))
				return
			}

			// 2. Stored preference. Unrecognized values fall through.
			if cookie, err := r.Cookie(LanguageCookieName); err == nil && i18n.IsSupported(cookie.Value) {
				next.ServeHTTP(w, r.WithContext(setLanguage(ctx, i18n.Normalize(cookie.Value))))
				return
			}

			// 3. Accept-Language header.
			if acceptLang := r.Header.Get("Accept-Language"); acceptLang != "" {
				next.ServeHTTP(w, r.WithContext(setLanguage(ctx, i18n.MatchLanguage(acceptLang))))
				return
			}

			// 4. Default language.
			next.ServeHTTP(w, r.WithContext(setLanguage(ctx, i18n.DefaultLanguage)))
		})
	}
}

func setLanguage(ctx context.Context, code string) context.Context {
	return context.WithValue(ctx, ContextKeyLanguage, code)
}

// GetLanguage retrieves the resolved language code from the request context.
// Returns the default language if the middleware did not run.
func GetLanguage(r *http.Request) string {
	code, ok := r.Context().Value(ContextKeyLanguage).(string)
	if !ok {
		return i18n.DefaultLanguage
	}
	return code
}

// SetLanguageCookie sets the language preference cookie.
func SetLanguageCookie(w http.ResponseWriter, langCode string) {
	cookie := &http.Cookie{
		Name:     LanguageCookieName,
		Value:    langCode,
		Path:     "/",
		MaxAge:   languageCookieMaxAge,
		HttpOnly: true,
		Secure:   cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, cookie)
}
