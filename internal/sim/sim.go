// Package sim wires the simulation stages into a single run.
//
// Control flow is strictly linear: random source feeds the price path,
// the path is annotated with its moving averages, and the annotated path
// drives the strategy engine. Each stage fully consumes its input before
// the next starts; nothing here is concurrent.
package sim

import (
	"github.com/zappabad/goldencross/internal/indicator"
	"github.com/zappabad/goldencross/internal/market"
	"github.com/zappabad/goldencross/internal/prng"
	"github.com/zappabad/goldencross/internal/strategy"
)

// Result is everything a run hands to presentation: the full daily ledger
// and the summary pair. FinalValue is the last ledger entry's portfolio
// value, or InitialCash when the ledger is empty (days == 0).
type Result struct {
	Ledger      []strategy.LedgerRecord
	InitialCash float64
	FinalValue  float64
}

// Run executes the whole pipeline for cfg. The output is bit-for-bit
// reproducible for a given config.
func Run(cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	src := prng.New(cfg.Seed)
	path := market.GeneratePath(market.PathConfig{
		Days:         cfg.Days,
		InitialPrice: cfg.InitialPrice,
		Mu:           cfg.Mu,
		Sigma:        cfg.Sigma,
	}, src)
	path = indicator.Annotate(path)

	ledger, err := strategy.Run(cfg.InitialCash, path)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Ledger:      ledger,
		InitialCash: cfg.InitialCash,
		FinalValue:  cfg.InitialCash,
	}
	if len(ledger) > 0 {
		res.FinalValue = ledger[len(ledger)-1].PortfolioValue
	}
	return res, nil
}
