// Package storage persists finished runs to SQLite so they can be listed
// and replayed later. The pipeline itself never touches this package; a
// run is saved only after it has fully completed.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	// Register sqlite3 driver
	_ "github.com/mattn/go-sqlite3"

	"github.com/zappabad/goldencross/internal/sim"
	"github.com/zappabad/goldencross/internal/strategy"
)

// Store wraps a SQLite database holding runs and their ledgers.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at dsn and ensures the schema.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", dsn, err)
	}
	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) initSchema() error {
	_, err := s.db.Exec(`
	CREATE TABLE IF NOT EXISTS runs(
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at INTEGER NOT NULL,
		days INTEGER NOT NULL,
		initial_price REAL NOT NULL,
		mu REAL NOT NULL,
		sigma REAL NOT NULL,
		initial_cash REAL NOT NULL,
		seed INTEGER NOT NULL,
		final_value REAL NOT NULL
	);
	CREATE TABLE IF NOT EXISTS ledger(
		run_id INTEGER NOT NULL REFERENCES runs(id),
		day INTEGER NOT NULL,
		price REAL NOT NULL,
		sma7 REAL,
		sma30 REAL,
		action TEXT NOT NULL,
		portfolio_value REAL NOT NULL,
		holdings REAL NOT NULL,
		cash REAL NOT NULL,
		PRIMARY KEY(run_id, day)
	)`)
	if err != nil {
		return fmt.Errorf("storage: init schema: %w", err)
	}
	return nil
}

// RunSummary is one row of the runs table, enough to identify and rank a
// past run without loading its ledger.
type RunSummary struct {
	ID         int64
	CreatedAt  time.Time
	Config     sim.Config
	FinalValue float64
}

// SaveRun stores the config, summary and full ledger of a finished run in
// one transaction and returns the run's id.
func (s *Store) SaveRun(cfg sim.Config, res *sim.Result) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: begin: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(`INSERT INTO runs(created_at,days,initial_price,mu,sigma,initial_cash,seed,final_value)
		VALUES(?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), cfg.Days, cfg.InitialPrice, cfg.Mu, cfg.Sigma,
		cfg.InitialCash, int64(cfg.Seed), res.FinalValue)
	if err != nil {
		return 0, fmt.Errorf("storage: insert run: %w", err)
	}
	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: run id: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO ledger(run_id,day,price,sma7,sma30,action,portfolio_value,holdings,cash)
		VALUES(?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return 0, fmt.Errorf("storage: prepare ledger insert: %w", err)
	}
	defer stmt.Close()

	for _, entry := range res.Ledger {
		if _, err := stmt.Exec(runID, entry.Day, entry.Price,
			nullable(entry.SMA7, entry.SMA7OK), nullable(entry.SMA30, entry.SMA30OK),
			entry.Action.String(), entry.PortfolioValue, entry.Holdings, entry.Cash); err != nil {
			return 0, fmt.Errorf("storage: insert day %d: %w", entry.Day, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: commit: %w", err)
	}
	return runID, nil
}

// ListRuns returns all saved runs, most recent first.
func (s *Store) ListRuns() ([]RunSummary, error) {
	rows, err := s.db.Query(`SELECT id,created_at,days,initial_price,mu,sigma,initial_cash,seed,final_value
		FROM runs ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("storage: list runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var r RunSummary
		var createdAt, seed int64
		if err := rows.Scan(&r.ID, &createdAt, &r.Config.Days, &r.Config.InitialPrice,
			&r.Config.Mu, &r.Config.Sigma, &r.Config.InitialCash, &seed, &r.FinalValue); err != nil {
			return nil, fmt.Errorf("storage: scan run: %w", err)
		}
		r.CreatedAt = time.Unix(createdAt, 0)
		r.Config.Seed = uint64(seed)
		out = append(out, r)
	}
	return out, rows.Err()
}

// LoadLedger returns the full ledger of a saved run in day order.
func (s *Store) LoadLedger(runID int64) ([]strategy.LedgerRecord, error) {
	rows, err := s.db.Query(`SELECT day,price,sma7,sma30,action,portfolio_value,holdings,cash
		FROM ledger WHERE run_id=? ORDER BY day ASC`, runID)
	if err != nil {
		return nil, fmt.Errorf("storage: load ledger %d: %w", runID, err)
	}
	defer rows.Close()

	var out []strategy.LedgerRecord
	for rows.Next() {
		var entry strategy.LedgerRecord
		var sma7, sma30 sql.NullFloat64
		var action string
		if err := rows.Scan(&entry.Day, &entry.Price, &sma7, &sma30,
			&action, &entry.PortfolioValue, &entry.Holdings, &entry.Cash); err != nil {
			return nil, fmt.Errorf("storage: scan ledger row: %w", err)
		}
		entry.SMA7, entry.SMA7OK = sma7.Float64, sma7.Valid
		entry.SMA30, entry.SMA30OK = sma30.Float64, sma30.Valid
		entry.Action = parseAction(action)
		out = append(out, entry)
	}
	return out, rows.Err()
}

func nullable(v float64, ok bool) any {
	if !ok {
		return nil
	}
	return v
}

func parseAction(s string) strategy.Action {
	switch s {
	case "BUY":
		return strategy.ActionBuy
	case "SELL":
		return strategy.ActionSell
	default:
		return strategy.ActionHold
	}
}
