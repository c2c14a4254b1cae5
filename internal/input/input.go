package input

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Input resolution errors.
var (
	// ErrEmptyEmailList is returned when the list file contains no
	// usable addresses after trimming.
	ErrEmptyEmailList = errors.New("email list file contains no addresses")

	// ErrEmptyAPIKey is returned when the key file is empty after trimming.
	ErrEmptyAPIKey = errors.New("API key not found in the specified file")
)

// Emails reads a list of email addresses from a file.
//
// Accepted layouts, all of which appear in the wild:
//   - one address per line
//   - a single comma-separated line
//   - a CSV whose first row holds one address per cell
//
// All layouts reduce to "parse as CSV, flatten every cell". Cells are
// trimmed and empty cells dropped; the file may end with a trailing
// newline or comma. Returns ErrEmptyEmailList when nothing remains.
func Emails(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided list path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to open email list: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // rows may have different cell counts
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse email list %s: %w", path, err)
	}

	var emails []string
	for _, row := range rows {
		for _, cell := range row {
			email := strings.TrimSpace(cell)
			if email == "" {
				continue
			}
			emails = append(emails, email)
		}
	}

	if len(emails) == 0 {
		return nil, ErrEmptyEmailList
	}

	return emails, nil
}

// APIKey reads the API key from a file, trimming surrounding whitespace.
// Returns ErrEmptyAPIKey when the file holds nothing but whitespace.
func APIKey(path string) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided key path is intentional
	if err != nil {
		return "", fmt.Errorf("failed to read API key file: %w", err)
	}

	key := strings.TrimSpace(string(data))
	if key == "" {
		return "", ErrEmptyAPIKey
	}

	return key, nil
}
