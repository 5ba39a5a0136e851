package cli

import (
	"os"
	"strconv"

	"github.com/zappabad/goldencross/internal/sim"
)

// configFromEnv starts from the stock config and applies any
// GOLDENCROSS_* environment overrides. Unparseable values are ignored in
// favor of the default; flags still win over everything.
func configFromEnv() sim.Config {
	cfg := sim.DefaultConfig()
	if v, ok := envInt("GOLDENCROSS_DAYS"); ok {
		cfg.Days = v
	}
	if v, ok := envFloat("GOLDENCROSS_PRICE"); ok {
		cfg.InitialPrice = v
	}
	if v, ok := envFloat("GOLDENCROSS_MU"); ok {
		cfg.Mu = v
	}
	if v, ok := envFloat("GOLDENCROSS_SIGMA"); ok {
		cfg.Sigma = v
	}
	if v, ok := envFloat("GOLDENCROSS_CASH"); ok {
		cfg.InitialCash = v
	}
	if v, ok := envUint("GOLDENCROSS_SEED"); ok {
		cfg.Seed = v
	}
	return cfg
}

func envInt(key string) (int, bool) {
	v, err := strconv.Atoi(os.Getenv(key))
	return v, err == nil
}

func envUint(key string) (uint64, bool) {
	v, err := strconv.ParseUint(os.Getenv(key), 10, 64)
	return v, err == nil
}

func envFloat(key string) (float64, bool) {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	return v, err == nil
}
