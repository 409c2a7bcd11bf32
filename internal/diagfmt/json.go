package diagfmt

import (
	"encoding/json"
	"io"

	"home/internal/diag"
	"home/internal/source"
)

// LocationJSON is a resolved span for JSON output.
type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line"`
	StartCol  uint32 `json:"start_col"`
	EndLine   uint32 `json:"end_line"`
	EndCol    uint32 `json:"end_col"`
}

// NoteJSON is one secondary note.
type NoteJSON struct {
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

// FixJSON is one fix suggestion; edits are omitted from JSON output.
type FixJSON struct {
	Title string `json:"title"`
}

// DiagnosticJSON is one diagnostic record.
type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
	Notes    []NoteJSON   `json:"notes,omitempty"`
	Fixes    []FixJSON    `json:"fixes,omitempty"`
}

// DiagnosticsOutput is the root of the JSON document.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Errors      int              `json:"errors"`
	Warnings    int              `json:"warnings"`
}

// JSON writes the bag as one indented JSON document.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	out := DiagnosticsOutput{Diagnostics: make([]DiagnosticJSON, 0, bag.Len())}

	for _, d := range bag.Items() {
		rec := DiagnosticJSON{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Message:  d.Message,
			Location: locationJSON(d.Primary, fs, opts.PathMode),
		}
		if opts.IncludeNotes {
			for _, note := range d.Notes {
				rec.Notes = append(rec.Notes, NoteJSON{
					Message:  note.Msg,
					Location: locationJSON(note.Span, fs, opts.PathMode),
				})
			}
		}
		if opts.IncludeFixes {
			for _, fix := range d.Fixes {
				rec.Fixes = append(rec.Fixes, FixJSON{Title: fix.Title})
			}
		}
		out.Diagnostics = append(out.Diagnostics, rec)

		switch d.Severity {
		case diag.SevError:
			out.Errors++
		case diag.SevWarning:
			out.Warnings++
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func locationJSON(span source.Span, fs *source.FileSet, mode PathMode) LocationJSON {
	file := fs.Get(span.File)
	start, end := fs.Resolve(span)
	return LocationJSON{
		File:      displayPath(file.Path, mode),
		StartByte: span.Start,
		EndByte:   span.End,
		StartLine: start.Line,
		StartCol:  start.Col,
		EndLine:   end.Line,
		EndCol:    end.Col,
	}
}
