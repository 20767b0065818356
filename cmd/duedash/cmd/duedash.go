package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"duedash/internal/board"
	"duedash/internal/config"
	"duedash/internal/countdown"
	"duedash/internal/feed"
	"duedash/internal/tui"
	"duedash/internal/utils"
)

// Version is set at build time
var Version = "dev"

// Config holds application configuration
type Config struct {
	ConfigPath string // Path to config file (for testing)
	FeedURL    string // Overrides the configured feed URL
	Refresh    int    // Overrides refresh_seconds when > 0
	Verbose    bool
	Once       bool   // Render a single snapshot to stdout and exit
	Query      string // Initial text filter (with --once)
	Status     string // Initial status filter (with --once)
}

// Execute runs the CLI with the given arguments and IO writers
func Execute(args []string, stdout, stderr io.Writer, cfg *Config) int {
	rootCmd := NewDueDash(stdout, stderr, cfg)

	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}

// NewDueDash creates the root command with injectable IO
func NewDueDash(stdout, stderr io.Writer, cfg *Config) *cobra.Command {
	if cfg == nil {
		cfg = &Config{}
	}

	cmd := &cobra.Command{
		Use:     "duedash",
		Short:   "A live deadline dashboard for spreadsheet task feeds",
		Long:    "duedash renders a published spreadsheet export (CSV or TSV) as a terminal dashboard with per-task countdown timers, filtering, calendar export and invoice requests.",
		Version: Version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			applyFlags(cmd, cfg)

			appCfg, err := config.Load(cfg.ConfigPath)
			if err != nil {
				return err
			}
			if cfg.FeedURL != "" {
				appCfg.Feed.URL = cfg.FeedURL
			}
			if cfg.Refresh > 0 {
				appCfg.Feed.RefreshSeconds = cfg.Refresh
			}
			if cfg.Verbose {
				appCfg.Logging.Verbose = true
			}
			if err := appCfg.Validate(); err != nil {
				return err
			}
			utils.SetVerboseMode(appCfg.IsVerbose())

			loader := feed.New(feed.Config{
				FeedURL:  appCfg.Feed.URL,
				ProxyURL: appCfg.GetProxyURL(),
				Location: appCfg.GetLocation(),
			})

			if cfg.Once {
				return runOnce(cmd.Context(), stdout, loader, appCfg, cfg)
			}

			return tui.Run(loader, tui.Options{
				Refresh:         appCfg.GetRefreshInterval(),
				Location:        appCfg.GetLocation(),
				DiscountPercent: appCfg.GetDiscountPercent(),
				BillingEmail:    appCfg.Invoice.BillingEmail,
				ShowSummary:     appCfg.IsSummaryEnabled(),
			})
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringP("config", "c", "", "Path to config file")
	cmd.PersistentFlags().BoolP("verbose", "V", false, "Enable verbose/debug output")
	cmd.Flags().StringP("url", "u", "", "Feed URL (overrides config)")
	cmd.Flags().IntP("refresh", "r", 0, "Refresh interval in seconds (overrides config)")
	cmd.Flags().Bool("once", false, "Print a single snapshot and exit instead of the live dashboard")
	cmd.Flags().StringP("query", "q", "", "Text filter applied to the snapshot (with --once)")
	cmd.Flags().StringP("status", "s", "", "Status filter applied to the snapshot (with --once)")

	cmd.AddCommand(newConfigCmd(stdout, cfg))

	return cmd
}

// applyFlags copies flag values into the config, leaving injected test
// values in place when a flag was not set.
func applyFlags(cmd *cobra.Command, cfg *Config) {
	if v, _ := cmd.Flags().GetString("config"); v != "" {
		cfg.ConfigPath = v
	}
	if v, _ := cmd.Flags().GetString("url"); v != "" {
		cfg.FeedURL = v
	}
	if v, _ := cmd.Flags().GetInt("refresh"); v > 0 {
		cfg.Refresh = v
	}
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		cfg.Verbose = true
	}
	if v, _ := cmd.Flags().GetBool("once"); v {
		cfg.Once = true
	}
	if v, _ := cmd.Flags().GetString("query"); v != "" {
		cfg.Query = v
	}
	if v, _ := cmd.Flags().GetString("status"); v != "" {
		cfg.Status = v
	}
}

// runOnce loads the feed a single time and prints a plain-text board to
// stdout, for cron jobs and scripting.
func runOnce(ctx context.Context, stdout io.Writer, loader *feed.Loader, appCfg *config.Config, cfg *Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	tasks := loader.Load(ctx)
	filtered := board.Filter(tasks, cfg.Query, cfg.Status)
	now := time.Now()
	width := snapshotWidth(stdout)

	if appCfg.IsSummaryEnabled() {
		sum := board.Summarize(filtered, now)
		_, _ = fmt.Fprintf(stdout, "Tasks: %d  Gas: %.2f  Overdue: %d  Due soon: %d\n\n",
			sum.Total, sum.TotalGas, sum.Overdue, sum.DueSoon)
	}

	if len(filtered) == 0 {
		_, _ = fmt.Fprintln(stdout, "No tasks match the current filters.")
		return nil
	}

	for _, t := range filtered {
		delta := countdown.Remaining(now, t.Due)
		line := fmt.Sprintf("%-10s %-14s %-12s %s  %s",
			t.Key, t.State, countdown.Classify(delta), countdown.Split(delta), t.Summary)
		if len(line) > width {
			line = line[:width]
		}
		_, _ = fmt.Fprintln(stdout, line)
	}
	return nil
}

// snapshotWidth returns the terminal width when stdout is a terminal,
// otherwise a fixed width suitable for piping.
func snapshotWidth(stdout io.Writer) int {
	if f, ok := stdout.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return 80
}

// newConfigCmd creates the 'config' subcommand
func newConfigCmd(stdout io.Writer, cfg *Config) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  "Show the active configuration or where it is loaded from.",
		RunE: func(cmd *cobra.Command, args []string) error {
			applyFlags(cmd, cfg)
			appCfg, err := config.Load(cfg.ConfigPath)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(stdout, "feed url:         %s\n", appCfg.Feed.URL)
			_, _ = fmt.Fprintf(stdout, "proxy url:        %s\n", appCfg.GetProxyURL())
			_, _ = fmt.Fprintf(stdout, "refresh seconds:  %d\n", appCfg.GetRefreshSeconds())
			_, _ = fmt.Fprintf(stdout, "timezone:         %s\n", appCfg.Timezone)
			_, _ = fmt.Fprintf(stdout, "discount percent: %g\n", appCfg.GetDiscountPercent())
			_, _ = fmt.Fprintf(stdout, "billing email:    %s\n", appCfg.Invoice.BillingEmail)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfg.ConfigPath
			if path == "" {
				path = filepath.Join(config.GetConfigDir(), "config.yaml")
			}
			_, _ = fmt.Fprintln(stdout, path)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	})

	return configCmd
}
