package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/rdillon73/ebreached/internal/breach"
	"github.com/rdillon73/ebreached/internal/config"
	"github.com/rdillon73/ebreached/internal/input"
	"github.com/rdillon73/ebreached/internal/log"
	"github.com/rdillon73/ebreached/internal/model"
	"github.com/rdillon73/ebreached/internal/report"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// NewCheckCmd creates the check command.
func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check email addresses against the breach database",
		Long: `Check queries the BreachDirectory API for one or more email addresses
and writes the findings to a timestamped result file.

Addresses are checked one at a time with a fixed pause between requests
(the free BreachDirectory plan requires at least one second between
searches). A failed lookup is reported as a warning and does not stop
the run; the remaining addresses are still checked.

The result file lists one row per breach record, including the exposed
password, its SHA-1 digest, the stored hash, and the breach sources
where the API provides them. Addresses without a match get a single
"not breached" row.

Examples:
  # Check a single address
  ebreached check -e user@example.com -f apikey.txt

  # Check every address in a list file
  ebreached check -l emails.txt -f apikey.txt

  # Write a JSON run report (can be fed to 'ebreached compare' later)
  ebreached check -l emails.txt -f apikey.txt --json

  # Route API traffic through a SOCKS5 proxy
  ebreached check -e user@example.com -f apikey.txt -x 127.0.0.1:9050

  # Use a custom configuration file
  ebreached check -c myconfig.yaml -e user@example.com

Configuration file (.ebreached) example:
  key_file: ~/.config/ebreached/apikey.txt
  delay: 1s
  timeout: 30s
  output:
    prefix: breach_results
    format: csv`,
		Args: cobra.NoArgs,
		RunE: runCheckCmd,
	}

	// Input flags
	cmd.Flags().StringP("email", "e", "",
		"Single email address to check (mutually exclusive with --list)")
	cmd.Flags().StringP("list", "l", "",
		"File with addresses to check, one per line or comma separated (mutually exclusive with --email)")

	// API key flags
	cmd.Flags().StringP("api-key", "k", "",
		"BreachDirectory API key (mutually exclusive with --key-file)")
	cmd.Flags().StringP("key-file", "f", "",
		"File containing the API key (mutually exclusive with --api-key)")

	// Request behavior flags
	cmd.Flags().DurationP("delay", "d", config.DefaultDelay,
		"Pause between consecutive lookups")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"HTTP timeout for each lookup request")
	cmd.Flags().StringP("proxy", "x", "",
		"SOCKS5 proxy for API traffic (e.g., 127.0.0.1:9050)")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .ebreached in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Write a JSON run report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Write a Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write the report to this exact path instead of a timestamped filename")
	cmd.Flags().String("prefix", config.DefaultOutputPrefix,
		"Prefix of the generated result filename")

	// Console flags
	cmd.Flags().BoolP("quiet", "q", false,
		"Suppress the banner and progress bar")

	return cmd
}

// runCheckCmd executes the check command.
func runCheckCmd(cmd *cobra.Command, _ []string) error {
	// Build config from the config file and flags
	cfg, err := buildCheckConfig(cmd)
	if err != nil {
		return err
	}

	// Validate configuration before any file or network access
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging with secret redaction
	logger := log.NewSecureLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runCheck(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildCheckConfig creates a Config from the config file and cobra flags.
// Precedence: defaults < config file < explicit flags.
func buildCheckConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	flags := cmd.Flags()

	var err error

	cfg.ConfigFilePath, err = flags.GetString("config")
	if err != nil {
		return nil, err
	}

	// Load the optional config file.
	// If the user explicitly named a config file, error when it is missing.
	// Otherwise silently continue with defaults.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		file.Apply(cfg)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	cfg.Email, err = flags.GetString("email")
	if err != nil {
		return nil, err
	}

	cfg.EmailListPath, err = flags.GetString("list")
	if err != nil {
		return nil, err
	}

	// The key file may come from the config file. A key flag the user
	// actually passed wins over it; a literal --api-key also displaces
	// the file-sourced key_file so the pair never conflicts by accident.
	if flags.Changed("api-key") {
		cfg.APIKey, err = flags.GetString("api-key")
		if err != nil {
			return nil, err
		}
		cfg.APIKeyFile = ""
	}
	if flags.Changed("key-file") {
		cfg.APIKeyFile, err = flags.GetString("key-file")
		if err != nil {
			return nil, err
		}
	}

	if flags.Changed("delay") {
		cfg.Delay, err = flags.GetDuration("delay")
		if err != nil {
			return nil, err
		}
	}

	if flags.Changed("timeout") {
		cfg.Timeout, err = flags.GetDuration("timeout")
		if err != nil {
			return nil, err
		}
	}

	if flags.Changed("proxy") {
		cfg.Proxy, err = flags.GetString("proxy")
		if err != nil {
			return nil, err
		}
	}

	if flags.Changed("prefix") {
		cfg.OutputPrefix, err = flags.GetString("prefix")
		if err != nil {
			return nil, err
		}
	}

	cfg.OutputPath, err = flags.GetString("output")
	if err != nil {
		return nil, err
	}

	// A format flag the user passed wins over the config file's format
	if flags.Changed("json") || flags.Changed("markdown") {
		cfg.JSONReport = false
		cfg.MarkdownReport = false

		cfg.JSONReport, err = flags.GetBool("json")
		if err != nil {
			return nil, err
		}
		cfg.MarkdownReport, err = flags.GetBool("markdown")
		if err != nil {
			return nil, err
		}
	}

	cfg.Quiet, err = flags.GetBool("quiet")
	if err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// runCheck executes the lookup run.
func runCheck(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	emails, err := resolveEmails(cfg)
	if err != nil {
		return err
	}

	apiKey, err := resolveAPIKey(cfg)
	if err != nil {
		return err
	}

	client, err := newLookupClient(cfg, apiKey)
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}

	return runLookups(ctx, cfg, client, emails, logger)
}

// runLookups checks the addresses one at a time and writes the report.
// Per-address failures are logged and skipped; only input and output
// errors abort the run.
func runLookups(ctx context.Context, cfg *config.Config, client *breach.Client, emails []string, logger *slog.Logger) error {
	if !cfg.Quiet {
		printBanner(cfg, len(emails))
	}

	logger.Info("starting check",
		"emails", len(emails),
		"host", cfg.APIHost,
		"delay", cfg.Delay,
		"proxy", cfg.Proxy != "",
	)

	rep := model.NewRunReport(cfg.Delay)

	var bar *progressbar.ProgressBar
	if len(emails) > 1 && !cfg.Quiet {
		bar = newProgressBar(len(emails))
	}

	for _, email := range emails {
		if ctx.Err() != nil {
			logger.Warn("run cancelled, writing partial results",
				"checked", rep.EmailCount(),
				"remaining", len(emails)-rep.EmailCount(),
			)
			break
		}

		records, err := client.Lookup(ctx, email)
		switch {
		case err != nil:
			logger.Warn("lookup failed, skipping address", "email", email, "error", err)
			rep.Add(model.NewErrorResult(email, err))
		case len(records) > 0:
			logger.Debug("address breached", "email", email, "records", len(records))
			rep.Add(model.NewBreachedResult(email, records))
		default:
			logger.Debug("address not breached", "email", email)
			rep.Add(model.NewCleanResult(email))
		}

		if bar != nil {
			_ = bar.Add(1)
		}
	}

	if bar != nil {
		_ = bar.Finish()
		fmt.Fprintln(os.Stderr)
	}

	path, err := writeReportFile(cfg, rep)
	if err != nil {
		return err
	}

	// Console summary after the file is safely on disk
	writer := report.NewSimpleWriter(os.Stdout, report.WithVerbose(cfg.Verbose))
	if _, err := writer.Write(rep); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	fmt.Printf("\nResults saved to: %s\n", path)

	return nil
}

// resolveEmails returns the addresses to check from either the single
// email flag or the list file.
func resolveEmails(cfg *config.Config) ([]string, error) {
	if cfg.Email != "" {
		return []string{cfg.Email}, nil
	}

	emails, err := input.Emails(cfg.EmailListPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read email list %s: %w", cfg.EmailListPath, err)
	}
	return emails, nil
}

// resolveAPIKey returns the API key from either the literal flag or the
// key file.
func resolveAPIKey(cfg *config.Config) (string, error) {
	if cfg.APIKey != "" {
		return cfg.APIKey, nil
	}

	key, err := input.APIKey(cfg.APIKeyFile)
	if err != nil {
		return "", fmt.Errorf("failed to read key file %s: %w", cfg.APIKeyFile, err)
	}
	return key, nil
}

// newLookupClient builds the API client from the config.
func newLookupClient(cfg *config.Config, apiKey string) (*breach.Client, error) {
	opts := []breach.Option{
		breach.WithHost(cfg.APIHost),
		breach.WithTimeout(cfg.Timeout),
		breach.WithDelay(cfg.Delay),
		breach.WithUserAgent(cfg.UserAgent),
	}
	if cfg.Proxy != "" {
		opts = append(opts, breach.WithProxy(cfg.Proxy))
	}

	return breach.NewClient(apiKey, opts...)
}

// printBanner prints the run banner to stderr.
func printBanner(cfg *config.Config, emailCount int) {
	banner := color.New(color.FgCyan, color.Bold)
	_, _ = banner.Fprintln(os.Stderr, "ebreached - email breach lookup")
	fmt.Fprintf(os.Stderr, "API host: %s\n", cfg.APIHost)
	fmt.Fprintf(os.Stderr, "Checking %d address(es), %s between requests\n\n",
		emailCount, cfg.Delay)
}

// newProgressBar creates the progress bar for multi-address runs.
func newProgressBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("checking addresses"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionThrottle(100*time.Millisecond),
	)
}

// writeReportFile writes the run report to disk and returns the path.
func writeReportFile(cfg *config.Config, rep *model.RunReport) (string, error) {
	format := report.FormatCSV
	switch {
	case cfg.JSONReport:
		format = report.FormatJSON
	case cfg.MarkdownReport:
		format = report.FormatMarkdown
	}

	path := cfg.OutputPath
	if path == "" {
		path = report.Filename(cfg.OutputPrefix, format, time.Now())
	}

	// Create directories if they don't exist
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	// Results contain breach data; keep the file owner-readable only
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return "", fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	var w report.Writer
	switch format {
	case report.FormatJSON:
		w = report.NewJSONWriter(f, report.WithPrettyPrint())
	case report.FormatMarkdown:
		w = report.NewMarkdownWriter(f)
	default:
		w = report.NewCSVWriter(f)
	}

	if _, err := w.Write(rep); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	return path, nil
}
