// Package dictionary provides the lookup tables that drive catalog
// translation.
//
// A Table maps an exact source phrase to its localized replacement.
// Matching is case-sensitive and whitespace-sensitive: no normalization,
// no partial matching. Built-in tables ship for the locales the project
// maintains by hand; additional or overriding entries can be loaded from
// flat YAML, TOML or JSON dictionary files.
package dictionary

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/wealthwise/locgen/langmeta"
)

// Table maps an exact source phrase to its localized replacement.
type Table map[string]string

// Lookup returns the replacement for s and whether the table has an
// exact entry for it.
func (t Table) Lookup(s string) (string, bool) {
	v, ok := t[s]
	return v, ok
}

// Merge returns a new table containing t's entries with over's entries
// applied on top. Neither input is modified.
func (t Table) Merge(over Table) Table {
	out := make(Table, len(t)+len(over))
	for k, v := range t {
		out[k] = v
	}
	for k, v := range over {
		out[k] = v
	}
	return out
}

// ForLocale returns the built-in table for the given locale. The locale
// is matched as given, then in canonical BCP 47 form, then by unique
// base language ("hi" resolves to "hi-IN").
func ForLocale(locale string) (Table, bool) {
	if t, ok := builtin[locale]; ok {
		return t, true
	}

	canon := langmeta.Canonical(locale)
	if t, ok := builtin[canon]; ok {
		return t, true
	}

	base := baseLang(canon)
	var found Table
	matches := 0
	for loc, t := range builtin {
		if baseLang(loc) == base {
			found = t
			matches++
		}
	}
	if matches == 1 {
		return found, true
	}
	return nil, false
}

// Locales returns the locales with built-in tables, sorted.
func Locales() []string {
	out := make([]string, 0, len(builtin))
	for loc := range builtin {
		out = append(out, loc)
	}
	sort.Strings(out)
	return out
}

func baseLang(locale string) string {
	if i := strings.IndexByte(locale, '-'); i >= 0 {
		return locale[:i]
	}
	return locale
}

// LoadFile reads a dictionary from a flat phrase-to-phrase file. The
// format is chosen by extension: .yaml/.yml, .toml or .json.
func LoadFile(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var m map[string]string
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%s: unsupported dictionary format %q (supported: .yaml, .yml, .toml, .json)", path, ext)
	}

	for k := range m {
		if k == "" {
			return nil, fmt.Errorf("%s: dictionary contains an empty phrase key", path)
		}
	}

	return Table(m), nil
}
