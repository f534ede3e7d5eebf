package report

import (
	"fmt"
	"io"
	"text/tabwriter"
)

const timeFormat = "01/02/06 15:04:05"

// WriteBlotter renders blotter rows as an aligned table.
func WriteBlotter(w io.Writer, rows []BlotterRow) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SYMBOL\tSIDE\tQUANTITY\tPRICE\tTIME")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%g\t%.2f\t%s\n",
			r.Symbol, r.Side, r.Units, r.Price, r.Time.Format(timeFormat))
	}
	return tw.Flush()
}

// WritePL renders P/L rows as an aligned table.
func WritePL(w io.Writer, rows []PLRow) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SYMBOL\tQUANTITY\tPRICE\tWAP\tUPL\tRPL\tTOTAL")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%g\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\n",
			r.Symbol, r.Units, r.Price, r.WAP, r.UnrealizedPL, r.RealizedPL, r.TotalPL)
	}
	return tw.Flush()
}
