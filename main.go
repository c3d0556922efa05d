// locgen generates localized JSON string catalogs by dictionary lookup.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wealthwise/locgen/config"
	"github.com/wealthwise/locgen/dictionary"
	"github.com/wealthwise/locgen/i18n"
	"github.com/wealthwise/locgen/jsonfile"
	"github.com/wealthwise/locgen/langmeta"
	"github.com/wealthwise/locgen/translate"
)

// Version information (set via -ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// ANSI colors
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[0;31m"
	colorGreen  = "\033[0;32m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
)

func logInfo(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorBlue+"[INFO]"+colorReset+" "+format+"\n", args...)
}

func logSuccess(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorGreen+"[OK]"+colorReset+" "+format+"\n", args...)
}

func logWarning(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorYellow+"[WARN]"+colorReset+" "+format+"\n", args...)
}

func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorRed+"[ERROR]"+colorReset+" "+format+"\n", args...)
}

// ---------------------------------------------------------------------------
// Global flag
// ---------------------------------------------------------------------------

var rootDir string

// ---------------------------------------------------------------------------
// Root command
// ---------------------------------------------------------------------------

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "locgen",
		Short: "Localized catalog generator: dictionary-based JSON translation",
		Long: `locgen generates localized copies of a JSON string catalog.

Every string value with an exact dictionary match is replaced by its
translation; object keys, numbers, booleans, and unmatched strings are
carried through unchanged. Output catalogs mirror the reference catalog's
structure and key order exactly, so diffs between locales stay readable.

Commands:
  status      Show project info and dictionary coverage
  init        Write a .locgen.yaml for the detected project
  generate    Generate localized catalogs from the reference catalog
  locales     List locales with built-in dictionaries

Dictionaries:
  built-in    Hindi (hi-IN) and Telugu (te-IN) phrase tables
  custom      per-locale YAML/TOML/JSON files declared in .locgen.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global persistent flag, inherited by all subcommands
	root.PersistentFlags().StringVar(&rootDir, "root", ".", "Project root directory")

	root.AddCommand(
		newStatusCmd(),
		newInitCmd(),
		newGenerateCmd(),
		newLocalesCmd(),
		newVersionCmd(),
	)

	return root
}

func main() {
	i18n.Init("")

	if err := newRootCmd().Execute(); err != nil {
		logError("%v", err)
		os.Exit(1)
	}
}

// ---------------------------------------------------------------------------
// version (display version information)
// ---------------------------------------------------------------------------

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display version, commit hash, and build date.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("locgen version %s\n", version)
			fmt.Printf("  commit:    %s\n", commit)
			fmt.Printf("  built:     %s\n", date)
		},
	}
	return cmd
}

// ---------------------------------------------------------------------------
// status (read-only: project info + dictionary coverage)
// ---------------------------------------------------------------------------

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show project info and dictionary coverage",
		Long: `Display the detected project configuration and, for every target
locale, how many phrases of the reference catalog its dictionary covers.`,
		Run: func(cmd *cobra.Command, args []string) {
			runStatus()
		},
	}
	return cmd
}

func runStatus() {
	f, err := config.Load(rootDir)
	if err != nil {
		logError("%v", err)
		os.Exit(1)
	}
	usingConfig := f != nil
	if f == nil {
		f = config.Detect(rootDir)
	}

	fmt.Fprintf(os.Stderr, "\n%sProject%s\n", colorBlue, colorReset)
	fmt.Fprintln(os.Stderr, strings.Repeat("─", 60))

	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		absRoot = rootDir
	}
	fmt.Fprintf(os.Stderr, "  Root:       %s\n", absRoot)

	if f == nil {
		fmt.Fprintf(os.Stderr, "  Source:     (none found)\n")
		fmt.Fprintf(os.Stderr, "  Searched:   %s\n", strings.Join(config.SearchedDirs(), ", "))
		printSuggestedCommands(nil, false)
		return
	}

	configSource := "auto-detected"
	if usingConfig {
		configSource = config.FileName
	}
	fmt.Fprintf(os.Stderr, "  Config:     %s\n", configSource)

	proj, err := f.Resolve(rootDir)
	if err != nil {
		logError("%v", err)
		os.Exit(1)
	}

	locales := targetLocales(proj, "")
	fmt.Fprintf(os.Stderr, "  Source:     %s\n", proj.SourcePath)
	fmt.Fprintf(os.Stderr, "  Output dir: %s\n", proj.OutputDir)
	fmt.Fprintf(os.Stderr, "  Locales:    %s\n", strings.Join(locales, ", "))

	showCoverageTable(proj, locales)
	printSuggestedCommands(proj, usingConfig)
}

// showCoverageTable prints per-locale dictionary coverage of the
// reference catalog.
func showCoverageTable(proj *config.Project, locales []string) {
	src, err := jsonfile.ParseFile(proj.SourcePath)
	if err != nil {
		logError("Cannot read reference catalog: %v", err)
		return
	}
	total := len(src.Strings())

	fmt.Fprintf(os.Stderr, "\n%sDictionary Coverage%s\n", colorBlue, colorReset)
	fmt.Fprintln(os.Stderr, strings.Repeat("─", 60))

	fmt.Fprintf(os.Stderr, "\n%-10s %-12s %-12s %-16s %s\n", "Locale", "Translated", "Untrans.", "Coverage", "Output")
	fmt.Fprintln(os.Stderr, strings.Repeat("─", 60))

	for _, locale := range locales {
		table, err := localeTable(proj, locale)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%-10s %s\n", locale, "dictionary error")
			continue
		}
		if table == nil {
			fmt.Fprintf(os.Stderr, "%-10s %s\n", locale, "no dictionary")
			continue
		}

		matched, _ := translate.Coverage(src, table)
		percent := 0
		if total > 0 {
			percent = matched * 100 / total
		}

		output := "-"
		if fileExists(proj.OutputPath(locale)) {
			output = "written"
		}
		flag := ""
		if info := langmeta.Resolve(locale); info.Flag != "" {
			flag = " " + info.Flag
		}
		fmt.Fprintf(os.Stderr, "%-10s %-12d %-12d %s  %-8s%s\n",
			locale, matched, total-matched, progressBar(percent, 10), output, flag)
	}

	fmt.Fprintln(os.Stderr, strings.Repeat("─", 60))
	fmt.Fprintf(os.Stderr, "Source phrases (%s): %d\n", proj.SourceLocale(), total)
}

func printSuggestedCommands(proj *config.Project, usingConfig bool) {
	fmt.Fprintf(os.Stderr, "\n%sSuggested Commands%s\n", colorBlue, colorReset)
	fmt.Fprintln(os.Stderr, strings.Repeat("─", 60))
	fmt.Fprintln(os.Stderr)

	if proj == nil {
		fmt.Fprintf(os.Stderr, "  # Nothing to do yet: no reference catalog was found.\n")
		fmt.Fprintf(os.Stderr, "  # Add an English catalog (en-IN.json or en.json) under one of:\n")
		fmt.Fprintf(os.Stderr, "  #   %s\n\n", strings.Join(config.SearchedDirs(), ", "))
		return
	}

	if !usingConfig {
		fmt.Fprintf(os.Stderr, "  # Persist the detected configuration\n")
		fmt.Fprintf(os.Stderr, "  locgen init\n\n")
	}

	fmt.Fprintf(os.Stderr, "  # Generate all configured locales\n")
	fmt.Fprintf(os.Stderr, "  locgen generate\n\n")

	fmt.Fprintf(os.Stderr, "  # Generate specific locales only\n")
	fmt.Fprintf(os.Stderr, "  locgen generate --lang hi-IN,te-IN\n\n")

	fmt.Fprintf(os.Stderr, "  # Preview without writing files\n")
	fmt.Fprintf(os.Stderr, "  locgen generate --dry-run\n\n")
}

// ---------------------------------------------------------------------------
// init (detect project, write .locgen.yaml)
// ---------------------------------------------------------------------------

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a .locgen.yaml for the detected project",
		Long: `Detect the reference catalog and write a .locgen.yaml config file.

The generated file records the reference catalog, the output directory,
and the target locales (detected from existing catalog files, falling
back to the built-in dictionary locales). Edit it to add locales or to
point a locale at a custom dictionary file.`,
		Run: func(cmd *cobra.Command, args []string) {
			runInit(force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing "+config.FileName)

	return cmd
}

func runInit(force bool) {
	path := filepath.Join(rootDir, config.FileName)
	if fileExists(path) && !force {
		logError("%s already exists (use --force to overwrite)", path)
		os.Exit(1)
	}

	f := config.Detect(rootDir)
	if f == nil {
		logError("No reference catalog found under %s (searched: %s)",
			rootDir, strings.Join(config.SearchedDirs(), ", "))
		os.Exit(1)
	}
	if len(f.Locales) == 0 {
		f.Locales = dictionary.Locales()
	}

	if err := f.Save(rootDir); err != nil {
		logError("%v", err)
		os.Exit(1)
	}

	logSuccess("Wrote %s", path)
	logInfo("Source:  %s", f.Source)
	logInfo("Locales: %s", strings.Join(f.Locales, ", "))
}

// ---------------------------------------------------------------------------
// generate
// ---------------------------------------------------------------------------

func newGenerateCmd() *cobra.Command {
	// Flags
	var (
		langs   string
		dryRun  bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate localized catalogs from the reference catalog",
		Long: `Generate a localized copy of the reference catalog for each target locale.

Each string value is looked up in the locale's dictionary; exact matches
are replaced, everything else is carried through unchanged. Phrases the
dictionary does not cover stay in the source language, so generated
catalogs are partial translations until the dictionaries are complete.

Examples:
  # Generate all configured locales
  locgen generate

  # Generate specific locales only
  locgen generate --lang hi-IN,te-IN

  # Preview without writing files
  locgen generate --dry-run

  # Log every substituted phrase
  locgen generate --verbose`,
		Run: func(cmd *cobra.Command, args []string) {
			runGenerate(generateArgs{
				langs:   langs,
				dryRun:  dryRun,
				verbose: verbose,
			})
		},
	}

	cmd.Flags().StringVar(&langs, "lang", "", "Locales to generate (comma-separated, default: all configured)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be generated without writing files")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Log every substituted phrase")

	_ = cmd.RegisterFlagCompletionFunc("lang", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var out []string
		for _, locale := range dictionary.Locales() {
			out = append(out, locale+"\t"+langmeta.Label(locale))
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// generateArgs carries all parameters for runGenerate.
type generateArgs struct {
	langs   string
	dryRun  bool
	verbose bool
}

func runGenerate(a generateArgs) {
	proj, err := loadProject()
	if err != nil {
		logError("%v", err)
		os.Exit(1)
	}

	locales := targetLocales(proj, a.langs)
	if len(locales) == 0 {
		logError("No target locales (check --lang)")
		os.Exit(1)
	}

	tasks, err := buildTasks(proj, locales)
	if err != nil {
		logError("%v", err)
		os.Exit(1)
	}

	logInfo("%s", i18n.T("Loading %s translations...", langmeta.Resolve(proj.SourceLocale()).Name))
	src, err := jsonfile.ParseFile(proj.SourcePath)
	if err != nil {
		logError("%v", err)
		os.Exit(1)
	}

	opts := translate.Options{
		DryRun:  a.dryRun,
		Verbose: a.verbose,
		OnLog: func(format string, args ...any) {
			logInfo("%s", i18n.T(format, args...))
		},
		OnError: func(format string, args ...any) {
			logError("%s", i18n.T(format, args...))
		},
	}

	if err := translate.GenerateAll(src, tasks, opts); err != nil {
		// GenerateAll already reported the failure via OnError.
		os.Exit(1)
	}

	if a.dryRun {
		logInfo("%s", i18n.N("Dry run: %d catalog would be generated",
			"Dry run: %d catalogs would be generated", len(tasks), len(tasks)))
		return
	}

	logSuccess("%s", i18n.T("Translation complete!"))
	logWarning("%s", i18n.T("Note: This is a partial translation. Manual review and completion recommended."))
}

// ---------------------------------------------------------------------------
// locales (list built-in dictionaries)
// ---------------------------------------------------------------------------

func newLocalesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locales",
		Short: "List locales with built-in dictionaries",
		Run: func(cmd *cobra.Command, args []string) {
			runLocales()
		},
	}
	return cmd
}

func runLocales() {
	for _, locale := range dictionary.Locales() {
		table, _ := dictionary.ForLocale(locale)
		fmt.Printf("%-8s %s (%d phrases, built-in)\n", locale, localeDisplay(locale), len(table))
	}

	// External dictionaries from the project config, if any.
	proj, err := loadProject()
	if err != nil || len(proj.Dictionaries) == 0 {
		return
	}

	locales := make([]string, 0, len(proj.Dictionaries))
	for locale := range proj.Dictionaries {
		locales = append(locales, locale)
	}
	sort.Strings(locales)

	for _, locale := range locales {
		path := proj.Dictionaries[locale]
		table, err := dictionary.LoadFile(path)
		if err != nil {
			logWarning("%v", err)
			continue
		}
		fmt.Printf("%-8s %s (%d phrases, %s)\n", locale, localeDisplay(locale), len(table), path)
	}
}

// localeDisplay renders a locale's flag, English name and native name
// for listings.
func localeDisplay(locale string) string {
	info := langmeta.Resolve(locale)
	name := info.Name
	if info.Native != "" && info.Native != info.Name {
		name += " / " + info.Native
	}
	if info.Flag != "" {
		name = info.Flag + " " + name
	}
	return name
}

// ---------------------------------------------------------------------------
// Shared helpers
// ---------------------------------------------------------------------------

// loadProject returns the resolved project configuration, preferring
// .locgen.yaml and falling back to auto-detection.
func loadProject() (*config.Project, error) {
	f, err := config.Load(rootDir)
	if err != nil {
		return nil, err
	}
	if f == nil {
		f = config.Detect(rootDir)
	}
	if f == nil {
		return nil, fmt.Errorf("no reference catalog found under %s (searched: %s); run 'locgen init' or create %s",
			rootDir, strings.Join(config.SearchedDirs(), ", "), config.FileName)
	}
	return f.Resolve(rootDir)
}

// targetLocales returns the locales to operate on: the --lang override
// when given, otherwise the configured locales, otherwise every locale
// with a built-in dictionary.
func targetLocales(proj *config.Project, override string) []string {
	if override != "" {
		return splitLocales(override)
	}
	if len(proj.Locales) > 0 {
		return proj.Locales
	}
	return dictionary.Locales()
}

// splitLocales parses a comma-separated locale list, canonicalizing
// each entry.
func splitLocales(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, langmeta.Canonical(part))
	}
	return out
}

// localeTable assembles the lookup table for a locale: the built-in
// table with any configured dictionary file merged on top. Returns
// (nil, nil) when the locale has neither.
func localeTable(proj *config.Project, locale string) (dictionary.Table, error) {
	table, ok := dictionary.ForLocale(locale)

	path := proj.Dictionaries[locale]
	if path == "" {
		if !ok {
			return nil, nil
		}
		return table, nil
	}

	extra, err := dictionary.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if !ok {
		return extra, nil
	}
	return table.Merge(extra), nil
}

// buildTasks assembles the dictionary table and output path for every
// target locale. A locale without a built-in or configured dictionary
// is an error.
func buildTasks(proj *config.Project, locales []string) ([]translate.Task, error) {
	tasks := make([]translate.Task, 0, len(locales))
	for _, locale := range locales {
		table, err := localeTable(proj, locale)
		if err != nil {
			return nil, err
		}
		if table == nil {
			return nil, fmt.Errorf("no dictionary for locale %q (built-in: %s; or add it under dictionaries: in %s)",
				locale, strings.Join(dictionary.Locales(), ", "), config.FileName)
		}

		tasks = append(tasks, translate.Task{
			Locale:     locale,
			LocaleName: langmeta.Resolve(locale).Name,
			Table:      table,
			OutPath:    proj.OutputPath(locale),
		})
	}
	return tasks, nil
}

// progressBar renders a fixed-width colored bar for a percentage,
// clamped to 0-100.
func progressBar(percent, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	color := colorGreen
	switch {
	case percent < 50:
		color = colorRed
	case percent < 100:
		color = colorYellow
	}

	filled := percent * width / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return color + bar + colorReset + fmt.Sprintf(" %3d%%", percent)
}

// fileExists returns true if the file exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
