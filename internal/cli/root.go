// Package cli wires the paperdesk command tree: an interactive trading
// session plus one-shot quote and journal-query commands.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/paperdesk/config"
	"github.com/rustyeddy/paperdesk/journal"
	"github.com/rustyeddy/paperdesk/market"
	"github.com/rustyeddy/paperdesk/yahoo"
)

type RootConfig struct {
	ConfigPath string
	LogLevel   string
	NoColor    bool

	cfg *config.Config
}

// Config returns the loaded desk configuration.
func (rc *RootConfig) Config() *config.Config { return rc.cfg }

// OpenJournal opens the fill journal selected by the config.
func (rc *RootConfig) OpenJournal() (journal.Journal, error) {
	switch rc.cfg.Journal.Type {
	case "sqlite":
		return journal.NewSQLite(rc.cfg.Journal.Path)
	case "csv":
		return journal.NewCSV(rc.cfg.Journal.Path)
	default:
		return journal.Nop{}, nil
	}
}

// PriceSource builds the configured quote client.
func (rc *RootConfig) PriceSource() (market.PriceSource, error) {
	timeout, err := rc.cfg.Quotes.ParseTimeout()
	if err != nil {
		return nil, err
	}
	return yahoo.NewClient(rc.cfg.Quotes.BaseURL, timeout), nil
}

func NewRootCmd() *cobra.Command {
	rc := &RootConfig{}

	cmd := &cobra.Command{
		Use:           "paperdesk",
		Short:         "Paperdesk, a single-trader paper trading desk",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&rc.ConfigPath, "config", "", "Path to config file (optional)")
	cmd.PersistentFlags().StringVar(&rc.LogLevel, "log-level", "warn", "Log level: debug|info|warn|error")
	cmd.PersistentFlags().BoolVar(&rc.NoColor, "no-color", false, "Disable colored output")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level, err := zerolog.ParseLevel(rc.LogLevel)
		if err != nil {
			return fmt.Errorf("log-level: %w", err)
		}
		zerolog.SetGlobalLevel(level)
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.Kitchen,
			NoColor:    rc.NoColor,
		})

		if rc.ConfigPath == "" {
			rc.cfg = config.Default()
			return nil
		}
		cfg, err := config.LoadFromFile(rc.ConfigPath)
		if err != nil {
			return err
		}
		rc.cfg = cfg
		return nil
	}

	cmd.AddCommand(
		newSessionCmd(rc),
		newQuoteCmd(rc),
		newFillsCmd(rc),
	)

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("paperdesk (dev)")
		},
	})

	return cmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
