package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/rdillon73/ebreached/internal/model"
)

// MarkdownWriter outputs results in Markdown format.
// This format is designed for sharing findings with the account owners:
// a summary table, a verdict chart, and one record table per breached
// address.
//
// Design decision: We use the nao1215/markdown library for fluent,
// type-safe markdown generation including GitHub-flavored alerts and
// mermaid charts.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the run report in Markdown format.
func (w *MarkdownWriter) Write(report *model.RunReport) (int, error) {
	counter := &countingWriter{w: w.output}
	md := markdown.NewMarkdown(counter)

	w.writeHeader(md, report)
	w.writeSummary(md, report)
	w.writeResults(md, report)

	return counter.n, md.Build()
}

// writeHeader writes the report header with run information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.RunReport) {
	md.H1("Email Breach Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Run Date", report.DateStarted.Format("2006-01-02 15:04:05 MST")},
			{"Emails Checked", strconv.Itoa(report.EmailCount())},
			{"Breach Records", strconv.Itoa(report.RecordCount())},
		},
	})
	md.PlainText("")
}

// writeSummary writes the verdict summary section.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, report *model.RunReport) {
	md.H2("Summary")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Verdict", "Count"},
		Rows: [][]string{
			{"🔴 Breached", strconv.Itoa(report.BreachedCount())},
			{"🟢 Not breached", strconv.Itoa(report.CleanCount())},
			{"⚪ Lookup failed", strconv.Itoa(report.ErrorCount())},
		},
	})
	md.PlainText("")

	if report.EmailCount() > 0 {
		w.writePieChart(md, report)
	}
	w.writeAlert(md, report)
}

// writePieChart writes a mermaid pie chart of the verdict distribution.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, report *model.RunReport) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Lookup Verdicts"),
		piechart.WithShowData(true),
	)

	if n := report.BreachedCount(); n > 0 {
		chart.LabelAndIntValue("Breached", uint64(n))
	}
	if n := report.CleanCount(); n > 0 {
		chart.LabelAndIntValue("Not breached", uint64(n))
	}
	if n := report.ErrorCount(); n > 0 {
		chart.LabelAndIntValue("Failed", uint64(n))
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAlert writes an appropriate alert based on the verdicts.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, report *model.RunReport) {
	switch {
	case report.BreachedCount() > 0:
		md.Cautionf(
			"%d address(es) appear in known breaches. Rotate the affected passwords and enable MFA.",
			report.BreachedCount(),
		)
	case report.ErrorCount() > 0:
		md.Warningf(
			"%d lookup(s) failed and carry no verdict. Re-run those addresses before closing the review.",
			report.ErrorCount(),
		)
	default:
		md.Tip("No checked address appears in a known breach.")
	}
	md.PlainText("")
}

// writeResults writes the per-address sections.
func (w *MarkdownWriter) writeResults(md *markdown.Markdown, report *model.RunReport) {
	md.H2("Results")
	md.PlainText("")

	for _, result := range report.Results {
		md.H3(result.Email)
		md.PlainText("")

		switch result.Status {
		case model.StatusClean:
			md.PlainText("No known breach.")
			md.PlainText("")
		case model.StatusError:
			md.PlainText("Lookup failed: " + result.Error)
			md.PlainText("")
		case model.StatusBreached:
			w.writeRecordTable(md, result.Records)
		}
	}
}

// writeRecordTable writes one table row per breach record.
func (w *MarkdownWriter) writeRecordTable(md *markdown.Markdown, records []model.BreachRecord) {
	rows := make([][]string, len(records))
	for i, rec := range records {
		rows[i] = []string{
			maskCredential(rec.Password),
			rec.SHA1,
			rec.Hash,
			rec.Sources.String(),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Password", "SHA1", "Hash", "Sources"},
		Rows:   rows,
	})
	md.PlainText("")
}

// maskCredential hides the middle of a plaintext password. The markdown
// report is meant to be shared with account owners; the full plaintext
// stays in the CSV/JSON output only.
func maskCredential(password string) string {
	if len(password) <= 2 {
		return password
	}

	masked := []rune(password)
	for i := 1; i < len(masked)-1; i++ {
		masked[i] = '*'
	}
	return string(masked)
}
