// Package strategy runs the golden-cross trading rule over an annotated
// price path and produces the daily portfolio ledger.
package strategy

import (
	"errors"
	"fmt"

	"github.com/zappabad/goldencross/internal/market"
)

// ErrNonPositivePrice is returned when a ledger step sees a price at or
// below zero. The engine never trades through bad input.
var ErrNonPositivePrice = errors.New("strategy: non-positive price")

// Engine is the crossover state machine. The portfolio is always entirely
// in cash or entirely in the asset; a buy converts everything at that
// day's price and a sell converts everything back.
//
// Decisions depend on the running position, so days must be fed strictly
// in order. Engine is not safe for concurrent use.
type Engine struct {
	cash     float64
	holdings float64
	position Position
}

// NewEngine returns an Engine holding initialCash and no asset.
func NewEngine(initialCash float64) *Engine {
	return &Engine{cash: initialCash, position: PositionCash}
}

// Position returns the engine's current side.
func (e *Engine) Position() Position { return e.position }

// Step applies the trading rule to one day and returns its ledger record.
//
// A buy fires on a strict sma7 > sma30 from cash, a sell on a strict
// sma7 < sma30 while holding the asset. Everything else, including equal
// averages and days where either average is absent, is a hold.
func (e *Engine) Step(rec market.PriceRecord) (LedgerRecord, error) {
	if rec.Price <= 0 {
		return LedgerRecord{}, fmt.Errorf("day %d: %w (%v)", rec.Day, ErrNonPositivePrice, rec.Price)
	}

	action := ActionHold
	if rec.SMA7OK && rec.SMA30OK {
		switch {
		case rec.SMA7 > rec.SMA30 && e.position == PositionCash:
			e.holdings = e.cash / rec.Price
			e.cash = 0
			e.position = PositionAsset
			action = ActionBuy
		case rec.SMA7 < rec.SMA30 && e.position == PositionAsset:
			e.cash = e.holdings * rec.Price
			e.holdings = 0
			e.position = PositionCash
			action = ActionSell
		}
	}

	return LedgerRecord{
		PriceRecord:    rec,
		Action:         action,
		PortfolioValue: e.cash + e.holdings*rec.Price,
		Holdings:       e.holdings,
		Cash:           e.cash,
	}, nil
}

// Run feeds every record through Step in order and returns the ledger.
// The input must already be annotated; records without averages simply
// hold. A step error aborts the run with no partial ledger.
func Run(initialCash float64, records []market.PriceRecord) ([]LedgerRecord, error) {
	engine := NewEngine(initialCash)
	ledger := make([]LedgerRecord, 0, len(records))
	for _, rec := range records {
		entry, err := engine.Step(rec)
		if err != nil {
			return nil, err
		}
		ledger = append(ledger, entry)
	}
	return ledger, nil
}
