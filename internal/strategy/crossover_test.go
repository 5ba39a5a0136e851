package strategy

import (
	"errors"
	"math"
	"testing"

	"github.com/zappabad/goldencross/internal/market"
)

func day(d int, price, sma7, sma30 float64) market.PriceRecord {
	return market.PriceRecord{
		Day: d, Price: price,
		SMA7: sma7, SMA7OK: true,
		SMA30: sma30, SMA30OK: true,
	}
}

func mustStep(t *testing.T, e *Engine, rec market.PriceRecord) LedgerRecord {
	t.Helper()
	entry, err := e.Step(rec)
	if err != nil {
		t.Fatalf("Step day %d: %v", rec.Day, err)
	}
	return entry
}

func TestStep_HoldWithoutAverages(t *testing.T) {
	e := NewEngine(100000)
	entry := mustStep(t, e, market.PriceRecord{Day: 1, Price: 500})
	if entry.Action != ActionHold {
		t.Fatalf("action = %v, want HOLD", entry.Action)
	}
	if entry.Cash != 100000 || entry.Holdings != 0 || entry.PortfolioValue != 100000 {
		t.Fatalf("entry = %+v, want untouched portfolio", entry)
	}
}

func TestStep_BuyOnGoldenCross(t *testing.T) {
	e := NewEngine(100000)
	entry := mustStep(t, e, day(30, 200, 110, 100))
	if entry.Action != ActionBuy {
		t.Fatalf("action = %v, want BUY", entry.Action)
	}
	if entry.Cash != 0 || entry.Holdings != 500 {
		t.Fatalf("entry = %+v, want 500 units and no cash", entry)
	}
	if e.Position() != PositionAsset {
		t.Fatalf("position = %v, want ASSET", e.Position())
	}

	// Already invested: a continuing golden cross holds.
	next := mustStep(t, e, day(31, 210, 115, 100))
	if next.Action != ActionHold {
		t.Fatalf("second day action = %v, want HOLD", next.Action)
	}
	if next.PortfolioValue != 500*210 {
		t.Fatalf("portfolio = %v, want %v", next.PortfolioValue, 500*210)
	}
}

func TestStep_SellOnDeathCross(t *testing.T) {
	e := NewEngine(100000)
	mustStep(t, e, day(30, 200, 110, 100))
	entry := mustStep(t, e, day(31, 250, 95, 100))
	if entry.Action != ActionSell {
		t.Fatalf("action = %v, want SELL", entry.Action)
	}
	if entry.Holdings != 0 || entry.Cash != 500*250 {
		t.Fatalf("entry = %+v, want all cash", entry)
	}

	// Still in cash: a continuing death cross holds.
	next := mustStep(t, e, day(32, 240, 90, 100))
	if next.Action != ActionHold {
		t.Fatalf("second day action = %v, want HOLD", next.Action)
	}
}

func TestStep_EqualAveragesHold(t *testing.T) {
	e := NewEngine(100000)
	entry := mustStep(t, e, day(30, 200, 100, 100))
	if entry.Action != ActionHold {
		t.Fatalf("action = %v, want HOLD on exact tie", entry.Action)
	}

	// Same tie while invested must also hold.
	mustStep(t, e, day(31, 200, 110, 100))
	entry = mustStep(t, e, day(32, 200, 100, 100))
	if entry.Action != ActionHold {
		t.Fatalf("invested tie action = %v, want HOLD", entry.Action)
	}
}

func TestStep_DeathCrossFromCashHolds(t *testing.T) {
	e := NewEngine(100000)
	entry := mustStep(t, e, day(30, 200, 90, 100))
	if entry.Action != ActionHold {
		t.Fatalf("action = %v, want HOLD (nothing to sell)", entry.Action)
	}
}

func TestStep_NonPositivePrice(t *testing.T) {
	e := NewEngine(100000)
	if _, err := e.Step(day(30, 0, 110, 100)); !errors.Is(err, ErrNonPositivePrice) {
		t.Fatalf("err = %v, want ErrNonPositivePrice", err)
	}
	if _, err := e.Step(day(30, -5, 110, 100)); !errors.Is(err, ErrNonPositivePrice) {
		t.Fatalf("err = %v, want ErrNonPositivePrice", err)
	}
}

func TestRun_ExclusivityAndContinuity(t *testing.T) {
	records := []market.PriceRecord{
		{Day: 1, Price: 100},
		day(2, 100, 101, 100), // buy
		day(3, 120, 105, 100),
		day(4, 110, 98, 100), // sell
		day(5, 115, 99, 100),
		day(6, 130, 102, 100), // buy again
	}
	ledger, err := Run(100000, records)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(ledger) != len(records) {
		t.Fatalf("ledger has %d entries, want %d", len(ledger), len(records))
	}

	wantActions := []Action{ActionHold, ActionBuy, ActionHold, ActionSell, ActionHold, ActionBuy}
	for i, entry := range ledger {
		if entry.Action != wantActions[i] {
			t.Errorf("day %d: action %v, want %v", entry.Day, entry.Action, wantActions[i])
		}
		if entry.Cash != 0 && entry.Holdings != 0 {
			t.Errorf("day %d: cash %v and holdings %v both non-zero", entry.Day, entry.Cash, entry.Holdings)
		}
		want := entry.Cash + entry.Holdings*entry.Price
		if math.Abs(entry.PortfolioValue-want) > 1e-9 {
			t.Errorf("day %d: portfolio %v, want %v", entry.Day, entry.PortfolioValue, want)
		}
		if entry.PortfolioValue < 0 {
			t.Errorf("day %d: negative portfolio %v", entry.Day, entry.PortfolioValue)
		}
	}

	// Buy at 100 (1000 units), sell at 110, buy at 130.
	final := ledger[len(ledger)-1]
	if final.Holdings != 110000.0/130 {
		t.Fatalf("final holdings %v, want %v", final.Holdings, 110000.0/130)
	}
}

func TestRun_AbortsOnBadPrice(t *testing.T) {
	records := []market.PriceRecord{
		day(1, 100, 101, 100),
		day(2, 0, 101, 100),
	}
	ledger, err := Run(100000, records)
	if !errors.Is(err, ErrNonPositivePrice) {
		t.Fatalf("err = %v, want ErrNonPositivePrice", err)
	}
	if ledger != nil {
		t.Fatalf("expected no partial ledger, got %d entries", len(ledger))
	}
}
