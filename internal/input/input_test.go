package input

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// writeFile writes content to a temp file and returns its path.
func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestEmails exercises every accepted list layout.
func TestEmails(t *testing.T) {
	t.Parallel()

	t.Run("one address per line", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "a@b.com\nc@d.com\ne@f.com\n")
		emails, err := Emails(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		want := []string{"a@b.com", "c@d.com", "e@f.com"}
		if !reflect.DeepEqual(emails, want) {
			t.Errorf("expected %v, got %v", want, emails)
		}
	})

	t.Run("single comma-separated row", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "a@b.com,c@d.com,e@f.com")
		emails, err := Emails(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		want := []string{"a@b.com", "c@d.com", "e@f.com"}
		if !reflect.DeepEqual(emails, want) {
			t.Errorf("expected %v, got %v", want, emails)
		}
	})

	t.Run("csv with uneven rows", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "a@b.com,c@d.com\ne@f.com\n")
		emails, err := Emails(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		want := []string{"a@b.com", "c@d.com", "e@f.com"}
		if !reflect.DeepEqual(emails, want) {
			t.Errorf("expected %v, got %v", want, emails)
		}
	})

	t.Run("whitespace and empty cells are dropped", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, " a@b.com , ,\n\nc@d.com\n")
		emails, err := Emails(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		want := []string{"a@b.com", "c@d.com"}
		if !reflect.DeepEqual(emails, want) {
			t.Errorf("expected %v, got %v", want, emails)
		}
	})

	t.Run("empty file returns ErrEmptyEmailList", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "\n\n")
		if _, err := Emails(path); !errors.Is(err, ErrEmptyEmailList) {
			t.Errorf("expected ErrEmptyEmailList, got %v", err)
		}
	})

	t.Run("missing file returns error", func(t *testing.T) {
		t.Parallel()
		if _, err := Emails(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
			t.Error("expected error for missing file")
		}
	})
}

// TestAPIKey exercises key file reading.
func TestAPIKey(t *testing.T) {
	t.Parallel()

	t.Run("key with surrounding whitespace", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "  my-api-key\n")
		key, err := APIKey(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if key != "my-api-key" {
			t.Errorf("expected 'my-api-key', got %q", key)
		}
	})

	t.Run("whitespace-only file returns ErrEmptyAPIKey", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, " \n\t\n")
		if _, err := APIKey(path); !errors.Is(err, ErrEmptyAPIKey) {
			t.Errorf("expected ErrEmptyAPIKey, got %v", err)
		}
	})

	t.Run("missing file returns error", func(t *testing.T) {
		t.Parallel()
		if _, err := APIKey(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
			t.Error("expected error for missing file")
		}
	})
}
