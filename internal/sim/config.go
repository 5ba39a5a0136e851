package sim

import (
	"errors"
	"fmt"
)

// Config holds one simulation run. It is a plain value: Run never reads
// anything outside it, so a run is a pure function of (Config).
type Config struct {
	// Days is the number of daily records to simulate.
	Days int
	// InitialPrice is the asset price on day 1.
	InitialPrice float64
	// Mu is the daily drift of the price process.
	Mu float64
	// Sigma is the daily volatility of the price process.
	Sigma float64
	// InitialCash is the starting portfolio balance.
	InitialCash float64
	// Seed initializes the random source exactly.
	Seed uint64
}

// DefaultConfig returns the stock 60-day run.
func DefaultConfig() Config {
	return Config{
		Days:         60,
		InitialPrice: 65000,
		Mu:           0.0005,
		Sigma:        0.04,
		InitialCash:  100000,
		Seed:         123,
	}
}

// Validation errors. All are terminal; an invalid config produces no
// partial output.
var (
	ErrNegativeDays       = errors.New("sim: days must not be negative")
	ErrNonPositivePrice   = errors.New("sim: initial price must be positive")
	ErrNonPositiveCash    = errors.New("sim: initial cash must be positive")
	ErrNegativeVolatility = errors.New("sim: sigma must not be negative")
)

// Validate reports the first configuration problem found, or nil.
func (c Config) Validate() error {
	if c.Days < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeDays, c.Days)
	}
	if c.InitialPrice <= 0 {
		return fmt.Errorf("%w: %v", ErrNonPositivePrice, c.InitialPrice)
	}
	if c.InitialCash <= 0 {
		return fmt.Errorf("%w: %v", ErrNonPositiveCash, c.InitialCash)
	}
	if c.Sigma < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeVolatility, c.Sigma)
	}
	return nil
}
