// Package config implements project settings for catalog generation,
// loaded from .locgen.yaml or auto-detected from conventional
// translation directory layouts.
package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// sourceCandidates are the file names tried when locating the reference
// catalog in a directory, in preference order.
var sourceCandidates = []string{"en-IN.json", "en.json"}

// searchDirs are the directories scanned for a reference catalog,
// relative to the project root.
var searchDirs = []string{
	"translations",
	filepath.Join("public", "translations"),
	filepath.Join("src", "translations"),
	"locales",
	"i18n",
	"lang",
	".",
}

// Detect locates the reference catalog by scanning conventional
// translation directories under rootDir and returns a configuration
// describing it. Locales are detected from sibling catalog files.
// Returns nil if no reference catalog was found.
func Detect(rootDir string) *File {
	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		absRoot = rootDir
	}

	for _, rel := range searchDirs {
		dir := filepath.Join(absRoot, rel)
		name := detectSourceFile(dir)
		if name == "" {
			continue
		}
		return &File{
			Source:    filepath.Join(rel, name),
			OutputDir: rel,
			Locales:   detectLocales(dir, name),
		}
	}
	return nil
}

// SearchedDirs returns the directories Detect scans, for error messages.
func SearchedDirs() []string {
	return append([]string(nil), searchDirs...)
}

// detectSourceFile picks the reference catalog in a directory: a known
// candidate name first, otherwise a single en-* catalog.
func detectSourceFile(dir string) string {
	for _, name := range sourceCandidates {
		if info, err := os.Stat(filepath.Join(dir, name)); err == nil && !info.IsDir() {
			return name
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}
	var found []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		base := strings.TrimSuffix(name, ".json")
		if strings.HasPrefix(base, "en-") || strings.HasPrefix(base, "en_") {
			found = append(found, name)
		}
	}
	if len(found) == 1 {
		return found[0]
	}
	return ""
}

// detectLocales finds locale codes from catalog files next to the
// reference catalog. Variants of the source language are skipped.
func detectLocales(dir, sourceName string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	srcBase := baseOf(strings.TrimSuffix(sourceName, ".json"))

	var locales []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") || name == sourceName {
			continue
		}
		locale := strings.TrimSuffix(name, ".json")
		if isLocaleCode(locale) && baseOf(locale) != srcBase {
			locales = append(locales, locale)
		}
	}
	sort.Strings(locales)
	return locales
}

// baseOf returns the base language of a locale code ("hi-IN" gives "hi").
func baseOf(locale string) string {
	locale = strings.ReplaceAll(locale, "_", "-")
	if i := strings.IndexByte(locale, '-'); i >= 0 {
		return locale[:i]
	}
	return locale
}

// isLocaleCode checks if a string looks like a locale code (hi, hi-IN, pt_BR).
func isLocaleCode(s string) bool {
	s = strings.ReplaceAll(s, "_", "-")
	parts := strings.SplitN(s, "-", 2)
	if len(parts[0]) != 2 && len(parts[0]) != 3 {
		return false
	}
	for i := 0; i < len(parts[0]); i++ {
		if parts[0][i] < 'a' || parts[0][i] > 'z' {
			return false
		}
	}
	if len(parts) == 2 && len(parts[1]) < 2 {
		return false
	}
	return true
}
