package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that unmarshals from YAML strings such as
// "1s" or "500ms". yaml.v3 has no native duration support, so the config
// file would otherwise require nanosecond integers.
type Duration time.Duration

// UnmarshalYAML parses a duration string via time.ParseDuration.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}

	*d = Duration(parsed)
	return nil
}

// MarshalYAML writes the duration back in its string form.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// OutputFile configures where and how results are written.
type OutputFile struct {
	// Prefix is the filename prefix of the timestamped result file.
	Prefix string `yaml:"prefix,omitempty"`

	// Format selects the result format: csv, json, or markdown.
	Format string `yaml:"format,omitempty"`
}

// File represents the structure of the .ebreached configuration file.
// Every field is optional; unset fields keep their defaults, and CLI
// flags override anything set here.
type File struct {
	// APIHost overrides the RapidAPI host to query.
	APIHost string `yaml:"api_host,omitempty"`

	// KeyFile is the path of a file holding the API key. Keeping the key
	// in a file referenced here avoids repeating --key-file on every run.
	KeyFile string `yaml:"key_file,omitempty"`

	// Delay is the pause between consecutive lookups (e.g. "1s").
	Delay Duration `yaml:"delay,omitempty"`

	// Timeout is the per-request HTTP timeout (e.g. "30s").
	Timeout Duration `yaml:"timeout,omitempty"`

	// Proxy is an optional SOCKS5 proxy in "host:port" format.
	Proxy string `yaml:"proxy,omitempty"`

	// UserAgent overrides the User-Agent header.
	UserAgent string `yaml:"user_agent,omitempty"`

	// Output configures the result file.
	Output OutputFile `yaml:"output,omitempty"`
}

// Apply copies the file's non-zero values onto the config.
// The caller applies CLI flag overrides afterwards, giving the
// precedence order: defaults < config file < flags.
func (f *File) Apply(cfg *Config) {
	if f.APIHost != "" {
		cfg.APIHost = f.APIHost
	}
	if f.KeyFile != "" {
		cfg.APIKeyFile = f.KeyFile
	}
	if f.Delay != 0 {
		cfg.Delay = time.Duration(f.Delay)
	}
	if f.Timeout != 0 {
		cfg.Timeout = time.Duration(f.Timeout)
	}
	if f.Proxy != "" {
		cfg.Proxy = f.Proxy
	}
	if f.UserAgent != "" {
		cfg.UserAgent = f.UserAgent
	}
	if f.Output.Prefix != "" {
		cfg.OutputPrefix = f.Output.Prefix
	}
	switch f.Output.Format {
	case "json":
		cfg.JSONReport = true
	case "markdown":
		cfg.MarkdownReport = true
	}
}
