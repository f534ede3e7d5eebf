package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/paperdesk/journal"
)

func newFillsCmd(rc *RootConfig) *cobra.Command {
	var (
		symbol string
		limit  int
		day    string
	)

	cmd := &cobra.Command{
		Use:   "fills",
		Short: "List journaled fills from past sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if rc.Config().Journal.Type != "sqlite" {
				return fmt.Errorf("fills requires a sqlite journal, config has %q", rc.Config().Journal.Type)
			}

			j, err := journal.NewSQLite(rc.Config().Journal.Path)
			if err != nil {
				return fmt.Errorf("open journal: %w", err)
			}
			defer j.Close()

			var fills []journal.Fill
			if day != "" {
				start, err := time.ParseInLocation("2006-01-02", day, time.Local)
				if err != nil {
					return fmt.Errorf("day: %w", err)
				}
				fills, err = j.ListFillsBetween(start, start.Add(24*time.Hour))
				if err != nil {
					return err
				}
			} else {
				fills, err = j.ListFills(symbol, limit)
				if err != nil {
					return err
				}
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tSYMBOL\tSIDE\tQUANTITY\tPRICE\tTIME\tCASH AFTER")
			for _, f := range fills {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%g\t%.2f\t%s\t%.2f\n",
					f.ID, f.Symbol, f.Side, f.Units, f.Price,
					f.Time.Format(time.RFC3339), f.CashAfter)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&symbol, "symbol", "", "Only fills for this symbol")
	cmd.Flags().IntVar(&limit, "limit", 0, "Stop after this many fills (0 = all)")
	cmd.Flags().StringVar(&day, "day", "", "Only fills executed on YYYY-MM-DD (local time)")

	return cmd
}
