// Package driver wires the pipeline stages together: load source, lex,
// parse, borrow-check, and collect diagnostics. Each file is processed by
// its own Checker instance, which is what makes the parallel directory
// walk safe.
package driver

import (
	"fmt"
	"io"

	"home/internal/borrow"
	"home/internal/diag"
	"home/internal/diagfmt"
	"home/internal/parser"
	"home/internal/source"
)

// Result is the outcome of checking one file.
type Result struct {
	Path    string
	FileID  source.FileID
	FileSet *source.FileSet
	Bag     *diag.Bag
}

// CheckFile loads path from disk and runs the full pipeline over it.
func CheckFile(path string, maxDiagnostics int) (*Result, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return checkLoaded(fs, id, path, maxDiagnostics), nil
}

// CheckSource runs the pipeline over in-memory content (tests, stdin).
func CheckSource(name string, content []byte, maxDiagnostics int) *Result {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, content)
	return checkLoaded(fs, id, name, maxDiagnostics)
}

func checkLoaded(fs *source.FileSet, id source.FileID, path string, maxDiagnostics int) *Result {
	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}

	// Parse errors do not suppress borrow checking: the checker runs over
	// whatever tree was recovered so one pass reports both kinds of
	// problems.
	prog := parser.ParseFile(fs.Get(id), reporter)

	checker := borrow.NewChecker(maxDiagnostics)
	checker.Check(prog)
	bag.Merge(checker.Bag())
	bag.Sort()

	return &Result{
		Path:    path,
		FileID:  id,
		FileSet: fs,
		Bag:     bag,
	}
}

// Render writes the result's diagnostics in the requested format.
func (r *Result) Render(w io.Writer, format string, useColor bool) error {
	switch format {
	case "pretty":
		opts := diagfmt.DefaultPrettyOpts()
		opts.Color = useColor
		diagfmt.Pretty(w, r.Bag, r.FileSet, opts)
		return nil
	case "json":
		return diagfmt.JSON(w, r.Bag, r.FileSet, diagfmt.JSONOpts{IncludeNotes: true, IncludeFixes: true})
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
