package strategy

import "github.com/zappabad/goldencross/internal/market"

// Action is the decision taken on a single day.
type Action uint8

const (
	ActionHold Action = iota
	ActionBuy
	ActionSell
)

func (a Action) String() string {
	switch a {
	case ActionHold:
		return "HOLD"
	case ActionBuy:
		return "BUY"
	case ActionSell:
		return "SELL"
	default:
		return "UNKNOWN"
	}
}

// Position is which side of the market the whole portfolio sits on.
type Position uint8

const (
	PositionCash Position = iota
	PositionAsset
)

func (p Position) String() string {
	switch p {
	case PositionCash:
		return "CASH"
	case PositionAsset:
		return "ASSET"
	default:
		return "UNKNOWN"
	}
}

// LedgerRecord is a priced day plus the decision taken on it and the
// portfolio state after that decision. Produced once per day, never
// mutated afterwards.
type LedgerRecord struct {
	market.PriceRecord
	Action         Action
	PortfolioValue float64
	Holdings       float64
	Cash           float64
}
