package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("MkdirAll: %v", err)
		}
		if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
			t.Fatalf("WriteFile %s: %v", name, err)
		}
	}
}

func TestDetect(t *testing.T) {
	t.Run("finds reference catalog in translations dir", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir,
			filepath.Join("translations", "en-IN.json"),
			filepath.Join("translations", "hi-IN.json"),
			filepath.Join("translations", "te-IN.json"),
			filepath.Join("translations", "notes.txt"),
			filepath.Join("translations", "_meta.json"),
		)

		f := Detect(dir)
		if f == nil {
			t.Fatalf("Detect() = nil, want config")
		}
		if f.Source != filepath.Join("translations", "en-IN.json") {
			t.Errorf("Source = %q", f.Source)
		}
		if f.OutputDir != "translations" {
			t.Errorf("OutputDir = %q", f.OutputDir)
		}
		if !reflect.DeepEqual(f.Locales, []string{"hi-IN", "te-IN"}) {
			t.Errorf("Locales = %v, want [hi-IN te-IN]", f.Locales)
		}
	})

	t.Run("prefers en-IN over en", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir,
			filepath.Join("locales", "en-IN.json"),
			filepath.Join("locales", "en.json"),
		)

		f := Detect(dir)
		if f == nil {
			t.Fatalf("Detect() = nil, want config")
		}
		if f.Source != filepath.Join("locales", "en-IN.json") {
			t.Errorf("Source = %q", f.Source)
		}
	})

	t.Run("skips source-language variants in locales", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir,
			filepath.Join("translations", "en-IN.json"),
			filepath.Join("translations", "en-GB.json"),
			filepath.Join("translations", "hi-IN.json"),
		)

		f := Detect(dir)
		if f == nil {
			t.Fatalf("Detect() = nil, want config")
		}
		if !reflect.DeepEqual(f.Locales, []string{"hi-IN"}) {
			t.Errorf("Locales = %v, want [hi-IN]", f.Locales)
		}
	})

	t.Run("falls back to a single en-star catalog", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, filepath.Join("i18n", "en-US.json"))

		f := Detect(dir)
		if f == nil {
			t.Fatalf("Detect() = nil, want config")
		}
		if f.Source != filepath.Join("i18n", "en-US.json") {
			t.Errorf("Source = %q", f.Source)
		}
	})

	t.Run("ambiguous en-star catalogs are not picked", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir,
			filepath.Join("i18n", "en-US.json"),
			filepath.Join("i18n", "en-GB.json"),
		)

		if f := Detect(dir); f != nil {
			t.Fatalf("Detect() = %#v, want nil", f)
		}
	})

	t.Run("root-level catalog", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, "en.json", "hi.json")

		f := Detect(dir)
		if f == nil {
			t.Fatalf("Detect() = nil, want config")
		}
		if f.Source != "en.json" {
			t.Errorf("Source = %q", f.Source)
		}
		if !reflect.DeepEqual(f.Locales, []string{"hi"}) {
			t.Errorf("Locales = %v, want [hi]", f.Locales)
		}
	})

	t.Run("nothing found returns nil", func(t *testing.T) {
		if f := Detect(t.TempDir()); f != nil {
			t.Fatalf("Detect() = %#v, want nil", f)
		}
	})
}

func TestLoad(t *testing.T) {
	t.Run("missing file returns nil", func(t *testing.T) {
		f, err := Load(t.TempDir())
		if err != nil {
			t.Fatalf("Load error: %v", err)
		}
		if f != nil {
			t.Fatalf("Load expected nil, got %#v", f)
		}
	})

	t.Run("parses a full config", func(t *testing.T) {
		dir := t.TempDir()
		yaml := "source: translations/en-IN.json\n" +
			"output_dir: translations\n" +
			"locales: [hi-IN, te-IN]\n" +
			"dictionaries:\n" +
			"  hi-IN: dictionaries/hi-IN.yaml\n"
		if err := os.WriteFile(filepath.Join(dir, FileName), []byte(yaml), 0644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}

		f, err := Load(dir)
		if err != nil {
			t.Fatalf("Load error: %v", err)
		}
		if f.Source != "translations/en-IN.json" {
			t.Errorf("Source = %q", f.Source)
		}
		if !reflect.DeepEqual(f.Locales, []string{"hi-IN", "te-IN"}) {
			t.Errorf("Locales = %v", f.Locales)
		}
		if f.Dictionaries["hi-IN"] != "dictionaries/hi-IN.yaml" {
			t.Errorf("Dictionaries = %v", f.Dictionaries)
		}
	})

	t.Run("requires a source catalog", func(t *testing.T) {
		dir := t.TempDir()
		yaml := "locales: [hi-IN]\n"
		if err := os.WriteFile(filepath.Join(dir, FileName), []byte(yaml), 0644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}

		_, err := Load(dir)
		if err == nil || !strings.Contains(err.Error(), "source catalog is not set") {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("requires locales", func(t *testing.T) {
		dir := t.TempDir()
		yaml := "source: translations/en-IN.json\n"
		if err := os.WriteFile(filepath.Join(dir, FileName), []byte(yaml), 0644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}

		_, err := Load(dir)
		if err == nil || !strings.Contains(err.Error(), "no target locales configured") {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects empty locale entries", func(t *testing.T) {
		dir := t.TempDir()
		yaml := "source: translations/en-IN.json\nlocales: [\"hi-IN\", \"\"]\n"
		if err := os.WriteFile(filepath.Join(dir, FileName), []byte(yaml), 0644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}

		_, err := Load(dir)
		if err == nil || !strings.Contains(err.Error(), "locale #2 is empty") {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects duplicate locales", func(t *testing.T) {
		dir := t.TempDir()
		yaml := "source: translations/en-IN.json\nlocales: [hi-IN, te-IN, hi-IN]\n"
		if err := os.WriteFile(filepath.Join(dir, FileName), []byte(yaml), 0644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}

		_, err := Load(dir)
		if err == nil || !strings.Contains(err.Error(), `duplicate locale "hi-IN"`) {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects dictionary for an unlisted locale", func(t *testing.T) {
		dir := t.TempDir()
		yaml := "source: translations/en-IN.json\n" +
			"locales: [hi-IN]\n" +
			"dictionaries:\n" +
			"  fr-FR: dictionaries/fr-FR.yaml\n"
		if err := os.WriteFile(filepath.Join(dir, FileName), []byte(yaml), 0644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}

		_, err := Load(dir)
		if err == nil || !strings.Contains(err.Error(), "not a target locale") {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects unsupported dictionary format", func(t *testing.T) {
		dir := t.TempDir()
		yaml := "source: translations/en-IN.json\n" +
			"locales: [hi-IN]\n" +
			"dictionaries:\n" +
			"  hi-IN: dictionaries/hi-IN.csv\n"
		if err := os.WriteFile(filepath.Join(dir, FileName), []byte(yaml), 0644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}

		_, err := Load(dir)
		if err == nil || !strings.Contains(err.Error(), `unsupported format ".csv"`) {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, FileName), []byte("source: [\n"), 0644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}

		if _, err := Load(dir); err == nil {
			t.Fatal("expected parse error")
		}
	})
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	f := &File{
		Source:       filepath.Join("translations", "en-IN.json"),
		Locales:      []string{"hi-IN", "te-IN"},
		Dictionaries: map[string]string{"hi-IN": filepath.Join("dictionaries", "hi-IN.yaml")},
	}

	p, err := f.Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if !filepath.IsAbs(p.Root) {
		t.Fatalf("Root is not absolute: %q", p.Root)
	}
	if p.SourcePath != filepath.Join(p.Root, "translations", "en-IN.json") {
		t.Errorf("SourcePath = %q", p.SourcePath)
	}
	if p.OutputDir != filepath.Join(p.Root, "translations") {
		t.Errorf("OutputDir = %q (default should be the source directory)", p.OutputDir)
	}
	if got := p.OutputPath("hi-IN"); got != filepath.Join(p.Root, "translations", "hi-IN.json") {
		t.Errorf("OutputPath = %q", got)
	}
	if got := p.SourceLocale(); got != "en-IN" {
		t.Errorf("SourceLocale = %q, want en-IN", got)
	}
	if p.Dictionaries["hi-IN"] != filepath.Join(p.Root, "dictionaries", "hi-IN.yaml") {
		t.Errorf("Dictionaries = %v", p.Dictionaries)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	f := &File{
		Source:    filepath.ToSlash(filepath.Join("translations", "en-IN.json")),
		OutputDir: "translations",
		Locales:   []string{"hi-IN", "te-IN"},
	}

	if err := f.Save(dir); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("reading saved config: %v", err)
	}
	if !strings.HasPrefix(string(data), "# locgen project configuration.") {
		t.Errorf("saved config is missing the comment header: %q", data)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !reflect.DeepEqual(loaded, f) {
		t.Errorf("round-trip mismatch: got %#v, want %#v", loaded, f)
	}
}

func TestIsLocaleCode(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{in: "en", want: true},
		{in: "hi-IN", want: true},
		{in: "pt_BR", want: true},
		{in: "eng", want: true},
		{in: "en-I", want: false},
		{in: "_meta", want: false},
		{in: "README", want: false},
		{in: "", want: false},
	}

	for _, tc := range cases {
		if got := isLocaleCode(tc.in); got != tc.want {
			t.Fatalf("isLocaleCode(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
