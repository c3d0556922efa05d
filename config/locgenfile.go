// Package config: .locgen.yaml configuration file support.
//
// When a .locgen.yaml file exists in the project root, locgen uses it
// as the sole source of truth for generation targets. No auto-detection
// is performed.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the default config file name.
const FileName = ".locgen.yaml"

// File is the top-level .locgen.yaml structure.
type File struct {
	// Source is the reference catalog path, relative to the project root.
	Source string `yaml:"source"`
	// OutputDir is where localized catalogs are written
	// (default: the reference catalog's directory).
	OutputDir string `yaml:"output_dir,omitempty"`
	// Locales is the list of target locales to generate.
	Locales []string `yaml:"locales"`
	// Dictionaries maps a locale to an extra dictionary file merged over
	// the built-in table. Supports .yaml, .toml and .json files.
	Dictionaries map[string]string `yaml:"dictionaries,omitempty"`
}

// Load loads and validates .locgen.yaml from the given directory.
// Returns nil if no .locgen.yaml exists.
func Load(rootDir string) (*File, error) {
	path := filepath.Join(rootDir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if f.Source == "" {
		return nil, fmt.Errorf("%s: source catalog is not set", path)
	}
	if len(f.Locales) == 0 {
		return nil, fmt.Errorf("%s: no target locales configured", path)
	}
	seen := make(map[string]bool, len(f.Locales))
	for i, locale := range f.Locales {
		if strings.TrimSpace(locale) == "" {
			return nil, fmt.Errorf("%s: locale #%d is empty", path, i+1)
		}
		if seen[locale] {
			return nil, fmt.Errorf("%s: duplicate locale %q", path, locale)
		}
		seen[locale] = true
	}
	for locale, dictPath := range f.Dictionaries {
		if dictPath == "" {
			return nil, fmt.Errorf("%s: dictionary for %q has no path", path, locale)
		}
		if !seen[locale] {
			return nil, fmt.Errorf("%s: dictionary declared for %q, which is not a target locale", path, locale)
		}
		switch strings.ToLower(filepath.Ext(dictPath)) {
		case ".yaml", ".yml", ".toml", ".json":
		default:
			return nil, fmt.Errorf("%s: dictionary for %q has unsupported format %q (supported: .yaml, .yml, .toml, .json)",
				path, locale, filepath.Ext(dictPath))
		}
	}

	return &f, nil
}

// Save writes the configuration to .locgen.yaml in rootDir.
func (f *File) Save(rootDir string) error {
	path := filepath.Join(rootDir, FileName)
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	header := "# locgen project configuration.\n" +
		"# Defines the reference catalog and the locales to generate.\n"
	if err := os.WriteFile(path, append([]byte(header), data...), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Resolving to absolute paths
// ---------------------------------------------------------------------------

// Project holds a fully resolved configuration with absolute paths.
type Project struct {
	// Root is the absolute project root.
	Root string
	// SourcePath is the absolute reference catalog path.
	SourcePath string
	// OutputDir is the absolute output directory.
	OutputDir string
	// Locales is the list of target locales to generate.
	Locales []string
	// Dictionaries maps a locale to an absolute dictionary file path.
	Dictionaries map[string]string
}

// Resolve converts a File into a Project with absolute paths. A missing
// output directory defaults to the reference catalog's directory.
func (f *File) Resolve(rootDir string) (*Project, error) {
	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, err
	}

	outDir := f.OutputDir
	if outDir == "" {
		outDir = filepath.Dir(f.Source)
	}

	p := &Project{
		Root:       absRoot,
		SourcePath: resolvePath(absRoot, f.Source),
		OutputDir:  resolvePath(absRoot, outDir),
		Locales:    append([]string(nil), f.Locales...),
	}
	if len(f.Dictionaries) > 0 {
		p.Dictionaries = make(map[string]string, len(f.Dictionaries))
		for locale, path := range f.Dictionaries {
			p.Dictionaries[locale] = resolvePath(absRoot, path)
		}
	}
	return p, nil
}

func resolvePath(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

// OutputPath returns the catalog path for a locale.
func (p *Project) OutputPath(locale string) string {
	return filepath.Join(p.OutputDir, locale+".json")
}

// SourceLocale returns the locale code of the reference catalog,
// derived from its file name.
func (p *Project) SourceLocale() string {
	return strings.TrimSuffix(filepath.Base(p.SourcePath), ".json")
}
