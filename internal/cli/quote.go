package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newQuoteCmd(rc *RootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "quote [symbol...]",
		Short: "Fetch current prices (defaults to the configured universe)",
		RunE: func(cmd *cobra.Command, args []string) error {
			symbols := args
			if len(symbols) == 0 {
				symbols = rc.Config().Symbols
			}

			source, err := rc.PriceSource()
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SYMBOL\tPRICE\tTIME")
			for _, sym := range symbols {
				q, err := source.GetQuote(cmd.Context(), sym)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%s\t%.2f\t%s\n", q.Symbol, q.Price, q.Time.Format("15:04:05"))
			}
			return tw.Flush()
		},
	}
}
