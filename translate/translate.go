// Package translate implements the substitution engine that produces
// localized copies of a JSON string catalog.
//
// Translation is a pure structural walk: every string leaf of the
// source document is looked up in a dictionary table and replaced when
// an exact entry exists. Object keys, non-string scalars and document
// shape are preserved as-is, and phrases without an entry are carried
// through unchanged. Replacement happens in a single pass: substituted
// values are never looked up again, so chained dictionary entries do
// not cascade.
package translate

import (
	"fmt"

	"github.com/wealthwise/locgen/dictionary"
	"github.com/wealthwise/locgen/jsonfile"
)

// Options controls generation behavior and logging.
type Options struct {
	// DryRun reports coverage without writing output files.
	DryRun bool
	// Verbose logs every substituted phrase.
	Verbose bool
	// OnLog emits progress messages during generation.
	OnLog func(format string, args ...any)
	// OnError emits error messages during generation.
	OnError func(format string, args ...any)
}

func (o *Options) log(format string, args ...any) {
	if o.OnLog != nil {
		o.OnLog(format, args...)
	}
}

func (o *Options) logError(format string, args ...any) {
	if o.OnError != nil {
		o.OnError(format, args...)
	} else if o.OnLog != nil {
		o.OnLog(format, args...)
	}
}

// Task describes one target locale to generate.
type Task struct {
	// Locale is the output locale code (e.g. "hi-IN").
	Locale string
	// LocaleName is the human-readable language name (e.g. "Hindi").
	LocaleName string
	// Table maps source phrases to their localized replacements.
	Table dictionary.Table
	// OutPath is where the localized catalog is written.
	OutPath string
}

func (t Task) displayName() string {
	if t.LocaleName != "" {
		return t.LocaleName
	}
	return t.Locale
}

// Substitute returns a localized copy of doc. String leaves with an
// exact table entry are replaced by their mapped value; everything
// else, including object keys, is copied verbatim. The input document
// is never modified.
func Substitute(doc *jsonfile.Node, table dictionary.Table) *jsonfile.Node {
	if doc == nil {
		return nil
	}

	out := &jsonfile.Node{Kind: doc.Kind, Value: doc.Value}
	switch doc.Kind {
	case jsonfile.ObjectNode:
		out.Keys = make([]string, len(doc.Keys))
		copy(out.Keys, doc.Keys)
		out.Fields = make(map[string]*jsonfile.Node, len(doc.Fields))
		for key, child := range doc.Fields {
			out.Fields[key] = Substitute(child, table)
		}
	case jsonfile.ArrayNode:
		out.Elems = make([]*jsonfile.Node, len(doc.Elems))
		for i, child := range doc.Elems {
			out.Elems[i] = Substitute(child, table)
		}
	case jsonfile.StringNode:
		if repl, ok := table.Lookup(doc.Value); ok {
			out.Value = repl
		}
	}
	return out
}

// Coverage reports how many of doc's string leaves have a table entry.
// Repeated phrases count once per occurrence.
func Coverage(doc *jsonfile.Node, table dictionary.Table) (matched, total int) {
	for _, s := range doc.Strings() {
		total++
		if _, ok := table.Lookup(s); ok {
			matched++
		}
	}
	return matched, total
}

// GenerateAll produces one localized catalog per task, in task order.
// Each task substitutes against the same source document and writes its
// result to the task's output path. The first write failure aborts the
// run; catalogs already written stay on disk.
func GenerateAll(src *jsonfile.Node, tasks []Task, opts Options) error {
	for _, task := range tasks {
		opts.log("Generating %s translations...", task.displayName())

		out := Substitute(src, task.Table)
		matched, total := Coverage(src, task.Table)

		if opts.Verbose {
			for _, s := range src.Strings() {
				if repl, ok := task.Table.Lookup(s); ok {
					opts.log("  %q -> %q", s, repl)
				}
			}
		}

		if opts.DryRun {
			opts.log("Would save: %s (%d/%d phrases translated)", task.OutPath, matched, total)
			continue
		}

		if err := out.WriteFile(task.OutPath); err != nil {
			opts.logError("Error generating %s: %v", task.Locale, err)
			return fmt.Errorf("generating %s: %w", task.Locale, err)
		}
		opts.log("Saved: %s (%d/%d phrases translated)", task.OutPath, matched, total)
	}
	return nil
}
