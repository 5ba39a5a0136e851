// Package report renders a finished run for humans: the daily ledger
// table, the performance summary, and a PNG chart. It only ever reads the
// Result handed to it; every number is computed by the pipeline.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/Rhymond/go-money"

	"github.com/zappabad/goldencross/internal/sim"
	"github.com/zappabad/goldencross/internal/strategy"
)

// ReturnPct is the run's percentage return, the single value derived from
// the summary pair rather than carried in the ledger.
func ReturnPct(initialCash, finalValue float64) float64 {
	return (finalValue - initialCash) / initialCash * 100
}

// formatUSD renders a float as a currency string, rounding to cents for
// display only.
func formatUSD(v float64) string {
	return money.New(int64(math.Round(v*100)), money.USD).Display()
}

// WriteLedger prints one row per simulated day in the classic backtest
// layout. Absent averages print as NaN.
func WriteLedger(w io.Writer, ledger []strategy.LedgerRecord) {
	fmt.Fprintf(w, "%-5s %-10s %-10s %-10s %-10s %-15s %-15s %-15s\n",
		"Day", "Price", "SMA_7", "SMA_30", "Action", "Portfolio Value", "Holdings", "Cash")
	fmt.Fprintln(w, strings.Repeat("-", 95))

	for _, entry := range ledger {
		fmt.Fprintf(w, "%-5d $%-9.2f $%-9s $%-9s %-10s $%-14.2f %-15.4f $%-14.2f\n",
			entry.Day,
			entry.Price,
			smaCell(entry.SMA7, entry.SMA7OK),
			smaCell(entry.SMA30, entry.SMA30OK),
			entry.Action,
			entry.PortfolioValue,
			entry.Holdings,
			entry.Cash,
		)
	}
}

// WriteSummary prints the final performance block from the summary pair.
func WriteSummary(w io.Writer, res *sim.Result) {
	fmt.Fprintln(w, strings.Repeat("=", 30))
	fmt.Fprintln(w, "FINAL PERFORMANCE SUMMARY")
	fmt.Fprintln(w, strings.Repeat("=", 30))
	fmt.Fprintf(w, "Initial Portfolio Value: %s\n", formatUSD(res.InitialCash))
	fmt.Fprintf(w, "Final Portfolio Value:   %s\n", formatUSD(res.FinalValue))
	fmt.Fprintf(w, "Return:                  %.2f%%\n", ReturnPct(res.InitialCash, res.FinalValue))
	fmt.Fprintln(w, strings.Repeat("=", 30))
}

func smaCell(v float64, ok bool) string {
	if !ok {
		return "NaN"
	}
	return fmt.Sprintf("%.2f", v)
}
