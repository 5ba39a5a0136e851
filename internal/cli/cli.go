// Package cli builds the goldencross command tree. Every subcommand runs
// the pipeline (or loads a saved run) and hands the result to one of the
// presentation surfaces; no command computes numbers of its own.
package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/zappabad/goldencross/internal/report"
	"github.com/zappabad/goldencross/internal/sim"
	"github.com/zappabad/goldencross/internal/storage"
	"github.com/zappabad/goldencross/tui"
)

// NewRootCmd builds the root command with all subcommands attached.
// Flag defaults come from the stock config, overridable through the
// environment (a .env file is honored when present).
func NewRootCmd() *cobra.Command {
	// Missing .env is the normal case.
	_ = godotenv.Load()

	cfg := configFromEnv()
	var dbPath string

	root := &cobra.Command{
		Use:          "goldencross",
		Short:        "Simulate a price path and backtest the golden-cross strategy",
		SilenceUsage: true,
	}

	root.PersistentFlags().IntVar(&cfg.Days, "days", cfg.Days, "number of days to simulate")
	root.PersistentFlags().Float64Var(&cfg.InitialPrice, "price", cfg.InitialPrice, "initial asset price")
	root.PersistentFlags().Float64Var(&cfg.Mu, "mu", cfg.Mu, "daily drift")
	root.PersistentFlags().Float64Var(&cfg.Sigma, "sigma", cfg.Sigma, "daily volatility")
	root.PersistentFlags().Float64Var(&cfg.InitialCash, "cash", cfg.InitialCash, "initial cash balance")
	root.PersistentFlags().Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed")
	root.PersistentFlags().StringVar(&dbPath, "db", os.Getenv("GOLDENCROSS_DB"), "sqlite database for run history (optional)")

	root.AddCommand(newRunCmd(&cfg, &dbPath))
	root.AddCommand(newChartCmd(&cfg))
	root.AddCommand(newTUICmd(&cfg))
	root.AddCommand(newHistoryCmd(&dbPath))

	return root
}

func newRunCmd(cfg *sim.Config, dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the simulation and print the daily ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := sim.Run(*cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			report.WriteLedger(out, res.Ledger)
			fmt.Fprintln(out)
			report.WriteSummary(out, res)

			if *dbPath == "" {
				return nil
			}
			store, err := storage.Open(*dbPath)
			if err != nil {
				return err
			}
			defer store.Close()
			runID, err := store.SaveRun(*cfg, res)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\nSaved as run %d\n", runID)
			return nil
		},
	}
}

func newChartCmd(cfg *sim.Config) *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Run the simulation and write a price/SMA chart PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := sim.Run(*cfg)
			if err != nil {
				return err
			}
			title := fmt.Sprintf("Golden cross backtest (seed %d)", cfg.Seed)
			png, err := report.RenderChart(res.Ledger, title)
			if err != nil {
				return err
			}
			if err := os.WriteFile(outPath, png, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", outPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&outPath, "out", "chart.png", "output PNG path")
	return cmd
}

func newTUICmd(cfg *sim.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the simulation and browse the ledger interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := sim.Run(*cfg)
			if err != nil {
				return err
			}
			return tui.Run(*cfg, res)
		},
	}
}

func newHistoryCmd(dbPath *string) *cobra.Command {
	var runID int64
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List saved runs, or print one run's ledger with --run",
		RunE: func(cmd *cobra.Command, args []string) error {
			if *dbPath == "" {
				return fmt.Errorf("history needs --db (or GOLDENCROSS_DB)")
			}
			store, err := storage.Open(*dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			out := cmd.OutOrStdout()
			if runID > 0 {
				ledger, err := store.LoadLedger(runID)
				if err != nil {
					return err
				}
				if len(ledger) == 0 {
					return fmt.Errorf("run %d not found", runID)
				}
				report.WriteLedger(out, ledger)
				return nil
			}

			runs, err := store.ListRuns()
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(out, "No saved runs.")
				return nil
			}
			fmt.Fprintf(out, "%-5s %-20s %-6s %-10s %-12s %-12s %-8s\n",
				"ID", "Created", "Days", "Seed", "Initial", "Final", "Return")
			for _, r := range runs {
				fmt.Fprintf(out, "%-5d %-20s %-6d %-10d $%-11.2f $%-11.2f %.2f%%\n",
					r.ID,
					r.CreatedAt.Format("2006-01-02 15:04:05"),
					r.Config.Days,
					r.Config.Seed,
					r.Config.InitialCash,
					r.FinalValue,
					report.ReturnPct(r.Config.InitialCash, r.FinalValue),
				)
			}
			return nil
		},
	}
	cmd.Flags().Int64Var(&runID, "run", 0, "print the ledger of this saved run")
	return cmd
}
