package model

import (
	"errors"
	"testing"
	"time"
)

// TestNewBreachedResult verifies that records are tagged with the queried
// address, since the API omits the email field in some responses.
func TestNewBreachedResult(t *testing.T) {
	t.Parallel()

	records := []BreachRecord{
		{Password: "hunter2"},
		{Email: "other@b.com", SHA1: "abc"},
	}
	result := NewBreachedResult("a@b.com", records)

	if result.Status != StatusBreached {
		t.Errorf("expected StatusBreached, got %v", result.Status)
	}
	for i, rec := range result.Records {
		if rec.Email != "a@b.com" {
			t.Errorf("record %d not tagged with queried email: %q", i, rec.Email)
		}
	}
}

// TestNewCleanResult verifies the clean result shape.
func TestNewCleanResult(t *testing.T) {
	t.Parallel()

	result := NewCleanResult("test@example.com")
	if result.Status != StatusClean {
		t.Errorf("expected StatusClean, got %v", result.Status)
	}
	if len(result.Records) != 0 {
		t.Errorf("expected no records, got %d", len(result.Records))
	}
}

// TestNewErrorResult verifies that the failure message is captured.
func TestNewErrorResult(t *testing.T) {
	t.Parallel()

	result := NewErrorResult("a@b.com", errors.New("connection refused"))
	if result.Status != StatusError {
		t.Errorf("expected StatusError, got %v", result.Status)
	}
	if result.Error != "connection refused" {
		t.Errorf("unexpected error message: %q", result.Error)
	}
}

// TestRunReportCounts verifies the per-status counters and the record total.
func TestRunReportCounts(t *testing.T) {
	t.Parallel()

	report := NewRunReport(time.Second)
	report.Add(NewBreachedResult("a@b.com", []BreachRecord{{Password: "x"}, {Password: "y"}}))
	report.Add(NewCleanResult("clean@example.com"))
	report.Add(NewErrorResult("bad@example.com", errors.New("boom")))

	t.Run("email count", func(t *testing.T) {
		t.Parallel()
		if got := report.EmailCount(); got != 3 {
			t.Errorf("expected 3, got %d", got)
		}
	})

	t.Run("breached count", func(t *testing.T) {
		t.Parallel()
		if got := report.BreachedCount(); got != 1 {
			t.Errorf("expected 1, got %d", got)
		}
	})

	t.Run("clean count", func(t *testing.T) {
		t.Parallel()
		if got := report.CleanCount(); got != 1 {
			t.Errorf("expected 1, got %d", got)
		}
	})

	t.Run("error count", func(t *testing.T) {
		t.Parallel()
		if got := report.ErrorCount(); got != 1 {
			t.Errorf("expected 1, got %d", got)
		}
	})

	t.Run("record count", func(t *testing.T) {
		t.Parallel()
		if got := report.RecordCount(); got != 2 {
			t.Errorf("expected 2, got %d", got)
		}
	})
}

// TestRunReportResult verifies the per-email accessor used by compare.
func TestRunReportResult(t *testing.T) {
	t.Parallel()

	report := NewRunReport(time.Second)
	report.Add(NewCleanResult("clean@example.com"))

	t.Run("present email", func(t *testing.T) {
		t.Parallel()
		result, ok := report.Result("clean@example.com")
		if !ok {
			t.Fatal("expected result to be present")
		}
		if result.Status != StatusClean {
			t.Errorf("expected StatusClean, got %v", result.Status)
		}
	})

	t.Run("absent email", func(t *testing.T) {
		t.Parallel()
		if _, ok := report.Result("missing@example.com"); ok {
			t.Error("expected result to be absent")
		}
	})
}

// TestNewRunReport verifies the report is stamped and starts empty.
func TestNewRunReport(t *testing.T) {
	t.Parallel()

	before := time.Now()
	report := NewRunReport(2 * time.Second)

	if report.DateStarted.Before(before.Add(-time.Second)) {
		t.Error("expected DateStarted to be recent")
	}
	if report.Delay != 2*time.Second {
		t.Errorf("expected delay 2s, got %v", report.Delay)
	}
	if report.EmailCount() != 0 {
		t.Errorf("expected empty report, got %d results", report.EmailCount())
	}
}
