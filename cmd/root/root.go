// Package root contains the root command for the application
package root

import (
	"fjacquet/invoice-scan/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration, available to all
	// subcommands after PersistentPreRun.
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "invoice-scan",
		Short: "A CLI tool to scan a mailbox for invoice emails and export them to a spreadsheet.",
		Long: `invoice-scan connects to an IMAP mailbox, finds invoice-related emails
among the newest messages, extracts the amount and a heuristic risk score,
and writes one spreadsheet row per invoice email.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to invoice-scan!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)

			if SharedFlags.Output != "" {
				Cfg.Report.Output = SharedFlags.Output
			}
		},
	}

	// SharedFlags holds common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
}
