// Package report provides result generation and output functionality.
//
// This package contains writers for the supported output formats:
//   - CSVWriter: the default flat result file, one row per breach record
//   - JSONWriter: the full run report, consumable by the compare command
//   - MarkdownWriter: a shareable report with tables and a verdict chart
//   - SimpleWriter: human-readable terminal summary
//
// Design decision: We separate result writing from the result data
// structures (which live in the model package) so new output formats can
// be added without modifying the core data structures. Writers implement
// the Writer interface and can be composed with MultiWriter.
package report
