package report

import (
	"encoding/csv"
	"io"

	"github.com/rdillon73/ebreached/internal/model"
)

// csvHeader is the header row of the result file.
var csvHeader = []string{"Email", "Status", "Password", "SHA1", "Hash", "Sources"}

// CSVWriter outputs results in the flat CSV format.
// This is the default format: one row per breach record, plus one
// "not breached" row per clean address so that a reviewed list shows a
// verdict for every address that was actually checked.
//
// Addresses whose lookup failed are NOT written: they were skipped, not
// cleared, and listing them here would suggest a verdict that was never
// reached. Failures are reported on the console instead.
//
// Design decision: We use the standard library encoding/csv writer: the
// format is trivially flat, and the records may contain commas (source
// lists) that need proper quoting.
type CSVWriter struct {
	baseWriter
}

// NewCSVWriter creates a CSVWriter that outputs to the given writer.
func NewCSVWriter(output io.Writer) *CSVWriter {
	return &CSVWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the run report as CSV.
func (w *CSVWriter) Write(report *model.RunReport) (int, error) {
	counter := &countingWriter{w: w.output}
	cw := csv.NewWriter(counter)

	if err := cw.Write(csvHeader); err != nil {
		return counter.n, err
	}

	for _, result := range report.Results {
		switch result.Status {
		case model.StatusBreached:
			for _, rec := range result.Records {
				row := []string{
					result.Email,
					result.Status.String(),
					rec.Password,
					rec.SHA1,
					rec.Hash,
					rec.Sources.String(),
				}
				if err := cw.Write(row); err != nil {
					return counter.n, err
				}
			}
		case model.StatusClean:
			row := []string{result.Email, result.Status.String(), "", "", "", ""}
			if err := cw.Write(row); err != nil {
				return counter.n, err
			}
		case model.StatusError:
			// skipped lookups carry no verdict
		}
	}

	cw.Flush()
	return counter.n, cw.Error()
}
