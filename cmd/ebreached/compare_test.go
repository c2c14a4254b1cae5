package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rdillon73/ebreached/internal/model"
	"github.com/rdillon73/ebreached/internal/report"
)

// writeJSONReport writes a run report to a temp file and returns its path.
func writeJSONReport(t *testing.T, rep *model.RunReport) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "report.json")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create report file: %v", err)
	}
	defer f.Close()

	if _, err := report.NewJSONWriter(f).Write(rep); err != nil {
		t.Fatalf("failed to write report: %v", err)
	}
	return path
}

// TestNewCompareCmd tests the compare command creation.
func TestNewCompareCmd(t *testing.T) {
	t.Parallel()

	cmd := NewCompareCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "compare <old.json> <new.json>" {
			t.Errorf("expected use 'compare <old.json> <new.json>', got %q", cmd.Use)
		}
	})

	t.Run("has short description", func(t *testing.T) {
		t.Parallel()
		if cmd.Short == "" {
			t.Error("expected non-empty short description")
		}
	})

	t.Run("has json flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("json")
		if flag == nil {
			t.Fatal("expected json flag")
		}
		if flag.Shorthand != "j" {
			t.Errorf("expected shorthand 'j', got %q", flag.Shorthand)
		}
	})

	t.Run("requires exactly two arguments", func(t *testing.T) {
		t.Parallel()
		cmd := NewCompareCmd()
		cmd.SetArgs([]string{"only-one.json"})
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		if err := cmd.Execute(); err == nil {
			t.Error("expected error with one argument")
		}
	})
}

// TestCompareReports tests the report diffing logic.
func TestCompareReports(t *testing.T) {
	t.Parallel()

	record := func(n int) []model.BreachRecord {
		records := make([]model.BreachRecord, n)
		for i := range records {
			records[i] = model.BreachRecord{Password: "hunter2"}
		}
		return records
	}

	t.Run("newly breached worsens exposure", func(t *testing.T) {
		t.Parallel()

		oldRep := model.NewRunReport(time.Second)
		oldRep.Add(model.NewCleanResult("a@example.com"))

		newRep := model.NewRunReport(time.Second)
		newRep.Add(model.NewBreachedResult("a@example.com", record(1)))

		result := compareReports(oldRep, newRep)

		if len(result.NewlyBreached) != 1 || result.NewlyBreached[0] != "a@example.com" {
			t.Errorf("expected a@example.com newly breached, got %v", result.NewlyBreached)
		}
		if result.Direction != exposureWorsened {
			t.Errorf("expected direction %q, got %q", exposureWorsened, result.Direction)
		}
	})

	t.Run("newly clean improves exposure", func(t *testing.T) {
		t.Parallel()

		oldRep := model.NewRunReport(time.Second)
		oldRep.Add(model.NewBreachedResult("a@example.com", record(1)))

		newRep := model.NewRunReport(time.Second)
		newRep.Add(model.NewCleanResult("a@example.com"))

		result := compareReports(oldRep, newRep)

		if len(result.NewlyClean) != 1 {
			t.Errorf("expected one newly clean address, got %v", result.NewlyClean)
		}
		if result.Direction != exposureImproved {
			t.Errorf("expected direction %q, got %q", exposureImproved, result.Direction)
		}
	})

	t.Run("record count increase worsens exposure", func(t *testing.T) {
		t.Parallel()

		oldRep := model.NewRunReport(time.Second)
		oldRep.Add(model.NewBreachedResult("a@example.com", record(1)))

		newRep := model.NewRunReport(time.Second)
		newRep.Add(model.NewBreachedResult("a@example.com", record(3)))

		result := compareReports(oldRep, newRep)

		if len(result.RecordChanges) != 1 {
			t.Fatalf("expected one record change, got %v", result.RecordChanges)
		}
		change := result.RecordChanges[0]
		if change.OldRecords != 1 || change.NewRecords != 3 {
			t.Errorf("expected 1 -> 3 records, got %d -> %d", change.OldRecords, change.NewRecords)
		}
		if result.Direction != exposureWorsened {
			t.Errorf("expected direction %q, got %q", exposureWorsened, result.Direction)
		}
	})

	t.Run("added and removed addresses", func(t *testing.T) {
		t.Parallel()

		oldRep := model.NewRunReport(time.Second)
		oldRep.Add(model.NewCleanResult("old@example.com"))

		newRep := model.NewRunReport(time.Second)
		newRep.Add(model.NewCleanResult("new@example.com"))

		result := compareReports(oldRep, newRep)

		if len(result.AddedEmails) != 1 || result.AddedEmails[0] != "new@example.com" {
			t.Errorf("expected new@example.com added, got %v", result.AddedEmails)
		}
		if len(result.RemovedEmails) != 1 || result.RemovedEmails[0] != "old@example.com" {
			t.Errorf("expected old@example.com removed, got %v", result.RemovedEmails)
		}
	})

	t.Run("identical runs are unchanged", func(t *testing.T) {
		t.Parallel()

		oldRep := model.NewRunReport(time.Second)
		oldRep.Add(model.NewCleanResult("a@example.com"))
		oldRep.Add(model.NewBreachedResult("b@example.com", record(2)))

		newRep := model.NewRunReport(time.Second)
		newRep.Add(model.NewCleanResult("a@example.com"))
		newRep.Add(model.NewBreachedResult("b@example.com", record(2)))

		result := compareReports(oldRep, newRep)

		if result.UnchangedCount != 2 {
			t.Errorf("expected 2 unchanged addresses, got %d", result.UnchangedCount)
		}
		if result.Direction != exposureUnchanged {
			t.Errorf("expected direction %q, got %q", exposureUnchanged, result.Direction)
		}
	})
}

// TestRunCompareCmd tests the compare command end to end with report files.
func TestRunCompareCmd(t *testing.T) {
	t.Parallel()

	t.Run("text output", func(t *testing.T) {
		t.Parallel()

		oldRep := model.NewRunReport(time.Second)
		oldRep.Add(model.NewCleanResult("a@example.com"))

		newRep := model.NewRunReport(time.Second)
		newRep.Add(model.NewBreachedResult("a@example.com", []model.BreachRecord{
			{Password: "hunter2"},
		}))

		oldPath := writeJSONReport(t, oldRep)
		newPath := writeJSONReport(t, newRep)

		var out bytes.Buffer
		cmd := NewCompareCmd()
		cmd.SetArgs([]string{oldPath, newPath})
		cmd.SetOut(&out)

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := out.String()
		if !strings.Contains(output, "Newly Breached (1)") {
			t.Errorf("expected newly breached section, got:\n%s", output)
		}
		if !strings.Contains(output, "WORSENED") {
			t.Errorf("expected worsened exposure, got:\n%s", output)
		}
	})

	t.Run("json output", func(t *testing.T) {
		t.Parallel()

		oldRep := model.NewRunReport(time.Second)
		oldRep.Add(model.NewCleanResult("a@example.com"))

		newRep := model.NewRunReport(time.Second)
		newRep.Add(model.NewCleanResult("a@example.com"))

		oldPath := writeJSONReport(t, oldRep)
		newPath := writeJSONReport(t, newRep)

		var out bytes.Buffer
		cmd := NewCompareCmd()
		cmd.SetArgs([]string{"-j", oldPath, newPath})
		cmd.SetOut(&out)

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var result ComparisonResult
		if err := json.Unmarshal(out.Bytes(), &result); err != nil {
			t.Fatalf("expected valid JSON output: %v", err)
		}
		if result.Direction != exposureUnchanged {
			t.Errorf("expected direction %q, got %q", exposureUnchanged, result.Direction)
		}
	})

	t.Run("missing report file", func(t *testing.T) {
		t.Parallel()

		newRep := model.NewRunReport(time.Second)
		newRep.Add(model.NewCleanResult("a@example.com"))
		newPath := writeJSONReport(t, newRep)

		cmd := NewCompareCmd()
		cmd.SetArgs([]string{filepath.Join(t.TempDir(), "nope.json"), newPath})
		cmd.SetOut(&bytes.Buffer{})

		if err := cmd.Execute(); err == nil {
			t.Error("expected error for missing report file")
		}
	})
}
