// Package market generates the synthetic daily price path.
//
// Prices follow a discrete geometric-Brownian-motion recurrence with a
// fixed one-day step. The path is a pure function of the generator
// parameters and the random source handed in, so callers own
// reproducibility by owning the seed.
package market

import (
	"math"

	"github.com/zappabad/goldencross/internal/prng"
)

// PathConfig holds the parameters of the simulated price path.
type PathConfig struct {
	// Days is the number of daily records to produce.
	Days int
	// InitialPrice is the day-1 price, copied into the path exactly.
	InitialPrice float64
	// Mu is the daily drift.
	Mu float64
	// Sigma is the daily volatility.
	Sigma float64
}

// DefaultPathConfig returns the parameters of the stock 60-day run.
func DefaultPathConfig() PathConfig {
	return PathConfig{
		Days:         60,
		InitialPrice: 65000,
		Mu:           0.0005,
		Sigma:        0.04,
	}
}

// GeneratePath produces cfg.Days price records. Day 1 carries
// cfg.InitialPrice unchanged; each later day applies
//
//	price = prev * exp((mu - sigma^2/2)*dt + sigma*sqrt(dt)*N)
//
// with dt = 1 and N drawn from src. One Normal draw is consumed per day
// after the first, even when sigma is zero, so the draw count stays stable
// across parameter changes. Days <= 0 yields an empty path.
func GeneratePath(cfg PathConfig, src *prng.Source) []PriceRecord {
	if cfg.Days <= 0 {
		return nil
	}

	const dt = 1.0
	records := make([]PriceRecord, 0, cfg.Days)
	records = append(records, PriceRecord{Day: 1, Price: cfg.InitialPrice})

	drift := (cfg.Mu - 0.5*cfg.Sigma*cfg.Sigma) * dt
	for day := 2; day <= cfg.Days; day++ {
		shock := cfg.Sigma * math.Sqrt(dt) * src.Normal()
		prev := records[len(records)-1].Price
		records = append(records, PriceRecord{
			Day:   day,
			Price: prev * math.Exp(drift+shock),
		})
	}
	return records
}
