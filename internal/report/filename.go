package report

import (
	"fmt"
	"time"
)

// TimestampLayout is the layout of the timestamp embedded in generated
// result filenames. The pattern sorts lexicographically and contains no
// characters that are special on any mainstream filesystem.
const TimestampLayout = "20060102_150405"

// Format identifies a result file format.
type Format int

const (
	// FormatCSV is the default flat format: one row per breach record.
	FormatCSV Format = iota

	// FormatJSON is the full run report, consumable by the compare command.
	FormatJSON

	// FormatMarkdown is a shareable report with tables and a chart.
	FormatMarkdown
)

// Extension returns the file extension for the format, without the dot.
func (f Format) Extension() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatMarkdown:
		return "md"
	default:
		return "csv"
	}
}

// String returns the format name as used in the config file.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatMarkdown:
		return "markdown"
	default:
		return "csv"
	}
}

// Filename builds the generated result filename:
// <prefix>_<YYYYMMDD_HHMMSS>.<ext>. Embedding the run timestamp keeps
// every run's output file distinct so prior results are never overwritten.
func Filename(prefix string, format Format, now time.Time) string {
	return fmt.Sprintf("%s_%s.%s", prefix, now.Format(TimestampLayout), format.Extension())
}
