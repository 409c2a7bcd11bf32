// Package diagfmt renders diagnostics for humans (Pretty) and tools
// (JSON). It only reads the Bag and FileSet; nothing here mutates
// diagnostics or performs fixes.
package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"home/internal/diag"
	"home/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan, color.Bold)
	noteColor = color.New(color.FgBlue)
	helpColor = color.New(color.FgGreen)
)

// Pretty renders every diagnostic in the bag in a human-readable form:
//
//	<path>:<line>:<col>: <SEV> [<CODE>]: <message>
//	  <source line>
//	  ^~~~
//	  note: ...
//	  help: ...
//
// Call bag.Sort() beforehand for deterministic output.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		prettyOne(w, d, fs, opts)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	file := fs.Get(d.Primary.File)
	start, _ := fs.Resolve(d.Primary)

	sev := d.Severity.String()
	if opts.Color {
		sev = severityColor(d.Severity).Sprint(sev)
	}

	fmt.Fprintf(w, "%s:%d:%d: %s [%s]: %s\n",
		displayPath(file.Path, opts.PathMode), start.Line, start.Col, sev, d.Code.ID(), d.Message)

	writeSourceContext(w, file, d.Primary, start, opts)

	if opts.ShowNotes {
		for _, note := range d.Notes {
			noteStart, _ := fs.Resolve(note.Span)
			label := "note"
			if opts.Color {
				label = noteColor.Sprint(label)
			}
			fmt.Fprintf(w, "  %s: %s (%s:%d:%d)\n",
				label, note.Msg, displayPath(file.Path, opts.PathMode), noteStart.Line, noteStart.Col)
		}
	}
	if opts.ShowFixes {
		for _, fix := range d.Fixes {
			label := "help"
			if opts.Color {
				label = helpColor.Sprint(label)
			}
			fmt.Fprintf(w, "  %s: %s\n", label, fix.Title)
		}
	}
}

// writeSourceContext prints the offending line with a ^~~~ underline sized
// to the span's display width.
func writeSourceContext(w io.Writer, file *source.File, span source.Span, start source.LineCol, opts PrettyOpts) {
	line := file.GetLine(start.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "  %s\n", line)

	// Columns are byte-based; measure display width of what precedes the
	// span and of the underlined region itself.
	prefixEnd := int(start.Col) - 1
	if prefixEnd > len(line) {
		prefixEnd = len(line)
	}
	pad := runewidth.StringWidth(line[:prefixEnd])

	spanLen := int(span.Len())
	underlineEnd := prefixEnd + spanLen
	if underlineEnd > len(line) {
		underlineEnd = len(line)
	}
	width := runewidth.StringWidth(line[prefixEnd:underlineEnd])
	if width < 1 {
		width = 1
	}

	underline := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		underline = errColor.Sprint(underline)
	}
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", pad), underline)
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errColor
	case diag.SevWarning:
		return warnColor
	default:
		return infoColor
	}
}

func displayPath(path string, mode PathMode) string {
	if mode == PathModeBasename {
		return filepath.Base(path)
	}
	return path
}

// Summary prints the error/warning totals the way `home check` ends.
func Summary(w io.Writer, bag *diag.Bag, useColor bool) {
	errs, warns := 0, 0
	for _, d := range bag.Items() {
		switch d.Severity {
		case diag.SevError:
			errs++
		case diag.SevWarning:
			warns++
		}
	}
	if errs == 0 && warns == 0 {
		return
	}
	line := fmt.Sprintf("%d error(s), %d warning(s)", errs, warns)
	if useColor && errs > 0 {
		line = errColor.Sprint(line)
	}
	fmt.Fprintln(w, line)
}
