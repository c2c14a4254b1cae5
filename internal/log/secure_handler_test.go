package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// TestSecureHandler_SanitizesSensitiveKeys tests that sensitive keys are sanitized.
func TestSecureHandler_SanitizesSensitiveKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		key      string
		value    string
		wantMask bool
	}{
		{
			name:     "x-rapidapi-key header is sanitized",
			key:      "x-rapidapi-key",
			value:    "short-key",
			wantMask: true,
		},
		{
			name:     "X-RapidAPI-Key (mixed case) is sanitized",
			key:      "X-RapidAPI-Key",
			value:    "short-key",
			wantMask: true,
		},
		{
			name:     "api_key key is sanitized",
			key:      "api_key",
			value:    "short-key",
			wantMask: true,
		},
		{
			name:     "password key is sanitized",
			key:      "password",
			value:    "hunter2",
			wantMask: true,
		},
		{
			name:     "sha1 key is sanitized",
			key:      "sha1",
			value:    "digest",
			wantMask: true,
		},
		{
			name:     "hash key is sanitized",
			key:      "hash",
			value:    "$2y$10$abc",
			wantMask: true,
		},
		{
			name:     "authorization key is sanitized",
			key:      "authorization",
			value:    "Bearer token123",
			wantMask: true,
		},
		{
			name:     "email key is not sanitized",
			key:      "email",
			value:    "a@b.com",
			wantMask: false,
		},
		{
			name:     "key_file path is not sanitized",
			key:      "key_file",
			value:    "/home/analyst/.config/ebreached/apikey",
			wantMask: false,
		},
		{
			name:     "output path is not sanitized",
			key:      "output",
			value:    "breach_results_20240101_120000.csv",
			wantMask: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			handler := NewSecureHandler(slog.NewTextHandler(&buf, nil))
			logger := slog.New(handler)

			logger.Info("test", tt.key, tt.value)
			output := buf.String()

			masked := strings.Contains(output, MaskValue)
			if masked != tt.wantMask {
				t.Errorf("key %q: masked=%v, want %v (output: %s)", tt.key, masked, tt.wantMask, output)
			}
			if tt.wantMask && strings.Contains(output, tt.value) {
				t.Errorf("sensitive value %q leaked into output: %s", tt.value, output)
			}
		})
	}
}

// TestSecureHandler_SanitizesSensitiveValues tests value-pattern matching
// independent of the attribute key.
func TestSecureHandler_SanitizesSensitiveValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    string
		wantMask bool
	}{
		{
			name:     "rapidapi-shaped key is masked by value",
			value:    "a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6ab",
			wantMask: true,
		},
		{
			name:     "bearer token is masked by value",
			value:    "Bearer abc.def",
			wantMask: true,
		},
		{
			name:     "jwt is masked by value",
			value:    "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiIxIn0.sig",
			wantMask: true,
		},
		{
			name:     "email address is not masked",
			value:    "analyst@example.com",
			wantMask: false,
		},
		{
			name:     "hostname is not masked",
			value:    "breachdirectory.p.rapidapi.com",
			wantMask: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(NewSecureHandler(slog.NewTextHandler(&buf, nil)))

			logger.Info("test", "detail", tt.value)
			output := buf.String()

			masked := strings.Contains(output, MaskValue)
			if masked != tt.wantMask {
				t.Errorf("value %q: masked=%v, want %v (output: %s)", tt.value, masked, tt.wantMask, output)
			}
		})
	}
}

// TestSecureHandler_WithAttrs verifies sanitization of pre-bound attributes.
func TestSecureHandler_WithAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSecureHandler(slog.NewTextHandler(&buf, nil)))

	bound := logger.With("api_key", "short-key")
	bound.Info("test")

	output := buf.String()
	if !strings.Contains(output, MaskValue) {
		t.Errorf("expected bound attribute to be masked: %s", output)
	}
	if strings.Contains(output, "short-key") {
		t.Errorf("bound secret leaked into output: %s", output)
	}
}

// TestSecureHandler_Groups verifies recursive sanitization inside groups.
func TestSecureHandler_Groups(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSecureHandler(slog.NewTextHandler(&buf, nil)))

	logger.Info("test", slog.Group("request",
		slog.String("host", "breachdirectory.p.rapidapi.com"),
		slog.String("password", "hunter2"),
	))

	output := buf.String()
	if !strings.Contains(output, MaskValue) {
		t.Errorf("expected grouped secret to be masked: %s", output)
	}
	if strings.Contains(output, "hunter2") {
		t.Errorf("grouped secret leaked into output: %s", output)
	}
	if !strings.Contains(output, "breachdirectory.p.rapidapi.com") {
		t.Errorf("expected non-sensitive group value to survive: %s", output)
	}
}

// TestNewSecureLogger verifies level selection.
func TestNewSecureLogger(t *testing.T) {
	t.Parallel()

	t.Run("verbose logs debug", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := NewSecureLogger(&buf, true)
		logger.Debug("debug message")
		if !strings.Contains(buf.String(), "debug message") {
			t.Error("expected debug message in verbose mode")
		}
	})

	t.Run("non-verbose drops info", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := NewSecureLogger(&buf, false)
		logger.Info("info message")
		if buf.Len() != 0 {
			t.Errorf("expected no output, got %s", buf.String())
		}
	})

	t.Run("non-verbose keeps warnings", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := NewSecureLogger(&buf, false)
		logger.Warn("warning message")
		if !strings.Contains(buf.String(), "warning message") {
			t.Error("expected warning message")
		}
	})
}
