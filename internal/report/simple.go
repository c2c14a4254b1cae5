package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/rdillon73/ebreached/internal/model"
)

// SimpleWriter outputs a human-readable run summary.
// This format is designed for terminal display at the end of a run,
// after the result file has been written.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors because it pipes cleanly to files and other tools; the CLI
// adds color around this writer where a terminal is detected.
type SimpleWriter struct {
	baseWriter

	// verbose enables per-record detail in the output.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables per-record detail.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs the run summary in human-readable format.
func (w *SimpleWriter) Write(report *model.RunReport) (int, error) {
	var sb strings.Builder

	sb.WriteString(strings.Repeat("=", 60) + "\n")
	sb.WriteString("Breach lookup summary\n")
	sb.WriteString(fmt.Sprintf("Run date: %s\n", report.DateStarted.Format("2006-01-02 15:04:05")))
	sb.WriteString(strings.Repeat("=", 60) + "\n")

	for _, result := range report.Results {
		switch result.Status {
		case model.StatusBreached:
			sb.WriteString(fmt.Sprintf("[!] %s: %d breach record(s)\n", result.Email, len(result.Records)))
			if w.verbose {
				for _, rec := range result.Records {
					w.writeRecord(&sb, rec)
				}
			}
		case model.StatusClean:
			sb.WriteString(fmt.Sprintf("[ ] %s: not breached\n", result.Email))
		case model.StatusError:
			sb.WriteString(fmt.Sprintf("[?] %s: skipped (%s)\n", result.Email, result.Error))
		}
	}

	sb.WriteString(strings.Repeat("-", 60) + "\n")
	sb.WriteString(fmt.Sprintf("Checked: %d  Breached: %d  Clean: %d  Failed: %d  Records: %d\n",
		report.EmailCount(),
		report.BreachedCount(),
		report.CleanCount(),
		report.ErrorCount(),
		report.RecordCount(),
	))

	return io.WriteString(w.output, sb.String())
}

// writeRecord appends a single record's detail lines.
// Passwords are not echoed to the terminal; the result file holds them.
func (w *SimpleWriter) writeRecord(sb *strings.Builder, rec model.BreachRecord) {
	detail := "credential exposed"
	if !rec.HasCredential() {
		detail = "no credential material"
	}
	if src := rec.Sources.String(); src != "" {
		detail += ", sources: " + src
	}
	sb.WriteString(fmt.Sprintf("      - %s\n", detail))
}
