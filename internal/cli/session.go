package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/paperdesk/ledger"
	"github.com/rustyeddy/paperdesk/market"
	"github.com/rustyeddy/paperdesk/report"
)

func newSessionCmd(rc *RootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Run an interactive trading session",
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := rc.OpenJournal()
			if err != nil {
				return fmt.Errorf("open journal: %w", err)
			}
			defer j.Close()

			source, err := rc.PriceSource()
			if err != nil {
				return err
			}

			ui := &sessionUI{
				symbols:  rc.Config().Symbols,
				currency: rc.Config().Account.Currency,
				ledger:   ledger.New(rc.Config().Account.Cash, j, log.Logger),
				source:   source,
				quotes:   market.NewQuoteStore(),
				in:       bufio.NewScanner(cmd.InOrStdin()),
				out:      cmd.OutOrStdout(),
			}
			return ui.run(cmd.Context())
		},
	}
}

// sessionUI is the interactive menu loop: trade, show blotter, show P/L,
// show cached quotes, quit. It owns the session ledger. The quotes store
// remembers the last fetched price per symbol for display only; admission
// always happens against live ledger state inside ExecuteTrade.
type sessionUI struct {
	symbols  []string
	currency string
	ledger   *ledger.Ledger
	source   market.PriceSource
	quotes   *market.QuoteStore
	in       *bufio.Scanner
	out      io.Writer
}

func (ui *sessionUI) run(ctx context.Context) error {
	fmt.Fprintln(ui.out, "Welcome to the trading floor")

	for {
		fmt.Fprintln(ui.out)
		fmt.Fprintln(ui.out, "Please select an option")
		fmt.Fprintln(ui.out, "1. Trade")
		fmt.Fprintln(ui.out, "2. Show blotter")
		fmt.Fprintln(ui.out, "3. Show P/L")
		fmt.Fprintln(ui.out, "4. Show quotes")
		fmt.Fprintln(ui.out, "5. Quit")

		choice, ok := ui.prompt("> ")
		if !ok {
			return nil
		}

		switch strings.TrimSpace(choice) {
		case "1":
			if err := ui.trade(ctx); err != nil {
				fmt.Fprintf(ui.out, "Trade not executed: %v\n", err)
			}
		case "2":
			ui.showBlotter()
		case "3":
			if err := ui.showPL(ctx); err != nil {
				fmt.Fprintf(ui.out, "P/L unavailable: %v\n", err)
			}
		case "4":
			ui.showQuotes()
		case "5", "q", "quit":
			fmt.Fprintln(ui.out, "Thank you for trading with us!")
			return nil
		default:
			fmt.Fprintf(ui.out, "Unknown option %q\n", choice)
		}
	}
}

func (ui *sessionUI) trade(ctx context.Context) error {
	fmt.Fprintln(ui.out, "Which symbol would you like to trade?")
	for i, sym := range ui.symbols {
		fmt.Fprintf(ui.out, "%d. %s\n", i+1, sym)
	}
	choice, ok := ui.prompt("> ")
	if !ok {
		return fmt.Errorf("input closed")
	}
	idx, err := strconv.Atoi(strings.TrimSpace(choice))
	if err != nil || idx < 1 || idx > len(ui.symbols) {
		return fmt.Errorf("not a symbol choice: %q", choice)
	}
	symbol := ui.symbols[idx-1]

	answer, ok := ui.prompt("Buy or sell? [b/s] ")
	if !ok {
		return fmt.Errorf("input closed")
	}
	side, err := market.ParseSide(strings.TrimSpace(answer))
	if err != nil {
		return err
	}

	answer, ok = ui.prompt("How many shares? ")
	if !ok {
		return fmt.Errorf("input closed")
	}
	units, err := strconv.ParseFloat(strings.TrimSpace(answer), 64)
	if err != nil {
		return fmt.Errorf("not a quantity: %q", answer)
	}

	q, err := ui.source.GetQuote(ctx, symbol)
	if err != nil {
		return err
	}
	ui.quotes.Set(q)

	answer, ok = ui.prompt(fmt.Sprintf("%s %g %s @ %.2f, confirm? [y/N] ", side, units, symbol, q.Price))
	if !ok || !strings.EqualFold(strings.TrimSpace(answer), "y") {
		fmt.Fprintln(ui.out, "Trade cancelled")
		return nil
	}

	// Validation runs inside ExecuteTrade against the ledger as it is now,
	// not as it was when the quote was fetched.
	rec, err := ui.ledger.ExecuteTrade(symbol, side, units, q.Price)
	if err != nil {
		return err
	}
	fmt.Fprintf(ui.out, "Congratulations, you traded %g shares of %s at $%.2f\n", rec.Units, rec.Symbol, rec.Price)
	return nil
}

func (ui *sessionUI) showBlotter() {
	rows := report.Blotter(ui.ledger.History())
	if len(rows) == 0 {
		fmt.Fprintln(ui.out, "No trades yet")
		return
	}
	if err := report.WriteBlotter(ui.out, rows); err != nil {
		log.Error().Err(err).Msg("render blotter")
	}
}

func (ui *sessionUI) showPL(ctx context.Context) error {
	positions := ui.ledger.Positions()
	symbols := make([]string, 0, len(positions))
	for _, p := range positions {
		symbols = append(symbols, p.Symbol)
	}

	prices, err := market.Quotes(ctx, ui.source, symbols)
	if err != nil {
		return err
	}

	if rows := report.PL(ui.ledger, prices); len(rows) > 0 {
		if err := report.WritePL(ui.out, rows); err != nil {
			return err
		}
	}
	fmt.Fprintf(ui.out, "Total cash on hand: %.2f %s\n", ui.ledger.Cash(), ui.currency)
	return nil
}

func (ui *sessionUI) showQuotes() {
	shown := false
	for _, sym := range ui.symbols {
		q, err := ui.quotes.Get(sym)
		if err != nil {
			continue
		}
		fmt.Fprintf(ui.out, "%s\t%.2f\t(as of %s)\n", q.Symbol, q.Price, q.Time.Format("15:04:05"))
		shown = true
	}
	if !shown {
		fmt.Fprintln(ui.out, "No quotes fetched yet")
	}
}

func (ui *sessionUI) prompt(label string) (string, bool) {
	fmt.Fprint(ui.out, label)
	if !ui.in.Scan() {
		return "", false
	}
	return ui.in.Text(), true
}
