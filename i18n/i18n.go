// Package i18n localizes locgen's own console messages.
//
// Catalogs are GNU gettext PO files compiled into the binary from
// locales/<lang>/LC_MESSAGES/locgen.po. Call Init once at startup;
// before that, T and N pass English through untouched.
package i18n

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"github.com/leonelquinteros/gotext"
)

//go:embed all:locales
var localeFS embed.FS

const domain = "locgen"

// catalog is nil until Init runs.
var catalog *gotext.Locale

// localeEnvVars, in GNU gettext precedence order.
var localeEnvVars = []string{"LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG"}

// Init loads the message catalog for lang, or for the language the
// environment requests when lang is empty.
func Init(lang string) {
	if lang == "" {
		lang = detectLanguage()
	}

	l := gotext.NewLocaleFSWithPath(lang, localeFS, "locales")
	l.AddDomain(domain)
	l.SetDomain(domain)
	catalog = l
}

// T translates a message and interpolates args with fmt verbs.
// Messages with no catalog entry pass through unchanged.
func T(format string, args ...any) string {
	if catalog == nil {
		return sprintf(format, args...)
	}
	return catalog.Get(format, args...)
}

// N is T with plural forms, selected for n by the catalog language's
// plural formula. English rules apply before Init.
func N(singular, plural string, n int, args ...any) string {
	if catalog == nil {
		if n == 1 {
			return sprintf(singular, args...)
		}
		return sprintf(plural, args...)
	}
	return catalog.GetN(singular, plural, n, args...)
}

// sprintf formats only when args are present, mirroring gotext.
func sprintf(format string, args ...any) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

// detectLanguage picks the language requested by the gettext
// environment variables. "C" and "POSIX" mean no translation.
func detectLanguage() string {
	for _, key := range localeEnvVars {
		val := os.Getenv(key)
		if key == "LANGUAGE" {
			// LANGUAGE holds a colon-separated preference list.
			val, _, _ = strings.Cut(val, ":")
		}
		val, _, _ = strings.Cut(val, ".") // "hi_IN.UTF-8" -> "hi_IN"
		val, _, _ = strings.Cut(val, "@") // "de_DE@euro" -> "de_DE"
		if val == "" || val == "C" || val == "POSIX" {
			continue
		}
		return val
	}
	return "en"
}
