// Package main provides the command-line interface for notifme.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/taishingi/notifme"
	"github.com/taishingi/notifme/internal/config"
	"github.com/taishingi/notifme/internal/logging"
	"github.com/taishingi/notifme/internal/output"

	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	binary    string
	icon      string
	app       string
	timeoutMs int
	jsonFmt   bool
	dryRun    bool
	logLevel  string

	// Build information
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// logOutput receives log records.
var logOutput io.Writer = os.Stderr

// errSendFailed signals a dispatch failure that was already reported.
var errSendFailed = errors.New("notification not sent")

var rootCmd = &cobra.Command{
	Use:           "notifme [summary] [body]",
	Short:         "Send a desktop notification",
	Long:          `notifme sends a desktop notification through notify-send.`,
	Version:       version,
	Args:          cobra.MaximumNArgs(2),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          run,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("notifme %s\ncommit: %s\nbuilt at: %s\n", version, commit, date))

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $XDG_CONFIG_HOME/notifme/config.toml)")
	rootCmd.PersistentFlags().StringVar(&binary, "binary", notifme.DefaultBinary, "notification sender executable")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.Flags().StringVarP(&icon, "icon", "i", notifme.DefaultIcon, "icon name or path")
	rootCmd.Flags().StringVarP(&app, "app", "a", "", "application name")
	rootCmd.Flags().IntVarP(&timeoutMs, "timeout", "t", notifme.DefaultTimeout, "expire time in milliseconds")
	rootCmd.Flags().BoolVarP(&jsonFmt, "json", "j", false, "output in JSON format")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the sender command instead of running it")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errSendFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, n, logger, err := prepare(cmd)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		n.Summary(args[0])
	}
	if len(args) > 1 {
		n.Body(args[1])
	}

	report := output.Report{
		Binary:  cfg.Binary,
		Args:    n.Args(),
		Summary: n.SummaryText(),
		DryRun:  dryRun,
	}
	if dryRun {
		return output.Print(cmd.OutOrStdout(), report, jsonFmt)
	}

	sendErr := n.Send(cmd.Context())
	report.Sent = sendErr == nil
	if sendErr != nil {
		report.Error = sendErr.Error()
		if code, ok := notifme.ExitCode(sendErr); ok {
			report.ExitCode = &code
		}
	} else {
		zero := 0
		report.ExitCode = &zero
	}

	if err := output.Print(cmd.OutOrStdout(), report, jsonFmt); err != nil {
		return err
	}
	if sendErr != nil {
		logger.Warn("notification failed", "error", sendErr)
		return errSendFailed
	}
	return nil
}

// loadConfig resolves the config file and applies explicitly set flags on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("binary") {
		cfg.Binary = binary
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("icon") {
		cfg.Icon = icon
	}
	if flags.Changed("app") {
		cfg.App = app
	}
	if flags.Changed("timeout") {
		cfg.Timeout = timeoutMs
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// prepare loads the config and builds a logger and a notification from it.
func prepare(cmd *cobra.Command) (*config.Config, *notifme.Notification, *slog.Logger, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}

	logger, err := logging.New(logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format, Writer: logOutput})
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, buildNotification(cfg, logger), logger, nil
}

func buildNotification(cfg *config.Config, logger *slog.Logger) *notifme.Notification {
	return notifme.New(
		notifme.WithSender(notifme.NewCommandSender(cfg.Binary)),
		notifme.WithLogger(logger),
	).
		Icon(cfg.Icon).
		App(cfg.App).
		Timeout(cfg.Timeout)
}
