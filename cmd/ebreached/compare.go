package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rdillon73/ebreached/internal/model"
	"github.com/rdillon73/ebreached/internal/report"
	"github.com/spf13/cobra"
)

// Constants for exposure direction and summary messages.
const (
	exposureWorsened  = "worsened"
	exposureImproved  = "improved"
	exposureUnchanged = "unchanged"
)

// NewCompareCmd creates the compare command.
// This command compares two JSON run reports written by 'check --json'.
func NewCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <old.json> <new.json>",
		Short: "Compare two JSON run reports",
		Long: `Compare displays differences between two JSON run reports.

Run 'ebreached check --json' periodically and compare the reports to
see how the exposure of a set of addresses changed over time:
- Addresses that are newly breached since the old report
- Addresses that no longer appear in the breach database
- Addresses whose breach record count changed
- Addresses added to or removed from the checked set

Examples:
  # Compare two runs
  ebreached compare breach_results_20260101_120000.json breach_results_20260201_120000.json

  # Output the comparison in JSON format
  ebreached compare --json old.json new.json`,
		Args: cobra.ExactArgs(2),
		RunE: runCompareCmd,
	}

	cmd.Flags().BoolP("json", "j", false,
		"Output comparison result in JSON format")

	return cmd
}

// ComparisonSummary holds the headline numbers of one run report.
type ComparisonSummary struct {
	DateStarted time.Time `json:"date_started"`
	Emails      int       `json:"emails"`
	Breached    int       `json:"breached"`
	Clean       int       `json:"clean"`
	Failed      int       `json:"failed"`
	Records     int       `json:"records"`
}

// RecordDelta describes a change in breach record count for one address.
type RecordDelta struct {
	Email      string `json:"email"`
	OldRecords int    `json:"old_records"`
	NewRecords int    `json:"new_records"`
}

// ComparisonResult is the outcome of comparing two run reports.
type ComparisonResult struct {
	OldRun ComparisonSummary `json:"old_run"`
	NewRun ComparisonSummary `json:"new_run"`

	// Direction summarizes the exposure change: worsened, improved,
	// or unchanged.
	Direction string `json:"direction"`

	// NewlyBreached lists addresses breached in the new run but not
	// in the old one.
	NewlyBreached []string `json:"newly_breached,omitempty"`

	// NewlyClean lists addresses breached in the old run that no
	// longer appear in the breach database.
	NewlyClean []string `json:"newly_clean,omitempty"`

	// RecordChanges lists addresses breached in both runs whose
	// record count changed.
	RecordChanges []RecordDelta `json:"record_changes,omitempty"`

	// AddedEmails lists addresses checked only in the new run.
	AddedEmails []string `json:"added_emails,omitempty"`

	// RemovedEmails lists addresses checked only in the old run.
	RemovedEmails []string `json:"removed_emails,omitempty"`

	// UnchangedCount is the number of addresses with the same outcome
	// in both runs.
	UnchangedCount int `json:"unchanged_count"`
}

// runCompareCmd executes the compare command.
func runCompareCmd(cmd *cobra.Command, args []string) error {
	oldRep, err := readRunReport(args[0])
	if err != nil {
		return fmt.Errorf("failed to read old report %s: %w", args[0], err)
	}

	newRep, err := readRunReport(args[1])
	if err != nil {
		return fmt.Errorf("failed to read new report %s: %w", args[1], err)
	}

	result := compareReports(oldRep, newRep)

	jsonOutput, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	if jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	return outputComparisonText(cmd.OutOrStdout(), result)
}

// readRunReport reads a JSON run report from disk.
func readRunReport(path string) (*model.RunReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return report.ReadReport(f)
}

// summarize extracts the headline numbers from a run report.
func summarize(rep *model.RunReport) ComparisonSummary {
	return ComparisonSummary{
		DateStarted: rep.DateStarted,
		Emails:      rep.EmailCount(),
		Breached:    rep.BreachedCount(),
		Clean:       rep.CleanCount(),
		Failed:      rep.ErrorCount(),
		Records:     rep.RecordCount(),
	}
}

// compareReports diffs two run reports address by address.
func compareReports(oldRep, newRep *model.RunReport) *ComparisonResult {
	result := &ComparisonResult{
		OldRun: summarize(oldRep),
		NewRun: summarize(newRep),
	}

	for _, newResult := range newRep.Results {
		oldResult, found := oldRep.Result(newResult.Email)
		if !found {
			result.AddedEmails = append(result.AddedEmails, newResult.Email)
			continue
		}

		oldBreached := oldResult.Status == model.StatusBreached
		newBreached := newResult.Status == model.StatusBreached

		switch {
		case newBreached && !oldBreached:
			result.NewlyBreached = append(result.NewlyBreached, newResult.Email)
		case oldBreached && !newBreached:
			result.NewlyClean = append(result.NewlyClean, newResult.Email)
		case oldBreached && newBreached && len(oldResult.Records) != len(newResult.Records):
			result.RecordChanges = append(result.RecordChanges, RecordDelta{
				Email:      newResult.Email,
				OldRecords: len(oldResult.Records),
				NewRecords: len(newResult.Records),
			})
		default:
			result.UnchangedCount++
		}
	}

	for _, oldResult := range oldRep.Results {
		if _, found := newRep.Result(oldResult.Email); !found {
			result.RemovedEmails = append(result.RemovedEmails, oldResult.Email)
		}
	}

	switch {
	case len(result.NewlyBreached) > 0 || hasRecordIncrease(result.RecordChanges):
		result.Direction = exposureWorsened
	case len(result.NewlyClean) > 0:
		result.Direction = exposureImproved
	default:
		result.Direction = exposureUnchanged
	}

	return result
}

// hasRecordIncrease reports whether any address gained breach records.
func hasRecordIncrease(changes []RecordDelta) bool {
	for _, c := range changes {
		if c.NewRecords > c.OldRecords {
			return true
		}
	}
	return false
}

// outputComparisonText outputs the comparison in human-readable text format.
func outputComparisonText(w io.Writer, result *ComparisonResult) error {
	fmt.Fprintln(w, "Run Comparison")
	fmt.Fprintln(w, strings.Repeat("=", 60))

	fmt.Fprintf(w, "\nExposure: %s\n", formatDirection(result.Direction))

	fmt.Fprintf(w, "\nOld run: %s\n", result.OldRun.DateStarted.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "New run: %s\n", result.NewRun.DateStarted.Format("2006-01-02 15:04:05"))

	fmt.Fprintln(w, "\nSummary:")
	fmt.Fprintf(w, "  %-10s  %-10s  %-10s  %-10s\n", "", "Old", "New", "Change")
	fmt.Fprintln(w, "  "+strings.Repeat("-", 45))
	fmt.Fprintf(w, "  %-10s  %-10d  %-10d  %-10s\n", "Checked",
		result.OldRun.Emails, result.NewRun.Emails,
		formatDelta(result.NewRun.Emails-result.OldRun.Emails))
	fmt.Fprintf(w, "  %-10s  %-10d  %-10d  %-10s\n", "Breached",
		result.OldRun.Breached, result.NewRun.Breached,
		formatDelta(result.NewRun.Breached-result.OldRun.Breached))
	fmt.Fprintf(w, "  %-10s  %-10d  %-10d  %-10s\n", "Clean",
		result.OldRun.Clean, result.NewRun.Clean,
		formatDelta(result.NewRun.Clean-result.OldRun.Clean))
	fmt.Fprintf(w, "  %-10s  %-10d  %-10d  %-10s\n", "Failed",
		result.OldRun.Failed, result.NewRun.Failed,
		formatDelta(result.NewRun.Failed-result.OldRun.Failed))
	fmt.Fprintf(w, "  %-10s  %-10d  %-10d  %-10s\n", "Records",
		result.OldRun.Records, result.NewRun.Records,
		formatDelta(result.NewRun.Records-result.OldRun.Records))

	if len(result.NewlyBreached) > 0 {
		fmt.Fprintf(w, "\nNewly Breached (%d):\n", len(result.NewlyBreached))
		for _, email := range result.NewlyBreached {
			fmt.Fprintf(w, "  [+] %s\n", email)
		}
	}

	if len(result.NewlyClean) > 0 {
		fmt.Fprintf(w, "\nNewly Clean (%d):\n", len(result.NewlyClean))
		for _, email := range result.NewlyClean {
			fmt.Fprintf(w, "  [-] %s\n", email)
		}
	}

	if len(result.RecordChanges) > 0 {
		fmt.Fprintf(w, "\nRecord Count Changes (%d):\n", len(result.RecordChanges))
		for _, c := range result.RecordChanges {
			fmt.Fprintf(w, "  [~] %s: %d -> %d (%s)\n",
				c.Email, c.OldRecords, c.NewRecords,
				formatDelta(c.NewRecords-c.OldRecords))
		}
	}

	if len(result.AddedEmails) > 0 {
		fmt.Fprintf(w, "\nAdded to checked set (%d):\n", len(result.AddedEmails))
		for _, email := range result.AddedEmails {
			fmt.Fprintf(w, "  %s\n", email)
		}
	}

	if len(result.RemovedEmails) > 0 {
		fmt.Fprintf(w, "\nRemoved from checked set (%d):\n", len(result.RemovedEmails))
		for _, email := range result.RemovedEmails {
			fmt.Fprintf(w, "  %s\n", email)
		}
	}

	if result.UnchangedCount > 0 {
		fmt.Fprintf(w, "\nUnchanged: %d address(es)\n", result.UnchangedCount)
	}

	return nil
}

// formatDirection formats the exposure direction for display.
func formatDirection(direction string) string {
	switch direction {
	case exposureImproved:
		return "IMPROVED (exposure decreased)"
	case exposureWorsened:
		return "WORSENED (exposure increased)"
	default:
		return "UNCHANGED"
	}
}

// formatDelta formats a numeric delta with sign for display.
func formatDelta(delta int) string {
	if delta > 0 {
		return "+" + strconv.Itoa(delta)
	} else if delta < 0 {
		return strconv.Itoa(delta)
	}
	return "0"
}
