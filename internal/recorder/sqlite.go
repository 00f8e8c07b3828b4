package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"KappaTrend/internal/model"
)

// SQLiteRecorder persists oscillator steps to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so external readers can query while the replay writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS trend_steps (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp  INTEGER NOT NULL,
			source     TEXT,
			epoch      INTEGER NOT NULL,
			series_len INTEGER,
			value      REAL,
			phase      REAL,
			momentum   REAL,
			signal     INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_steps_ts ON trend_steps(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordStep(snap *StepSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	st := snap.State
	_, err := r.db.Exec(`INSERT INTO trend_steps
		(timestamp, source, epoch, series_len, value, phase, momentum, signal)
		VALUES (?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), snap.Source, st.Epoch, snap.SeriesLen,
		st.Value, st.Phase, st.Momentum, int(st.Signal),
	)
	return err
}

// RecentSteps returns up to limit of the most recent steps in epoch order.
func (r *SQLiteRecorder) RecentSteps(limit int) ([]StepSnapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.db.Query(`SELECT source, epoch, series_len, value, phase, momentum, signal
		FROM trend_steps ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent steps: %w", err)
	}
	defer rows.Close()

	var steps []StepSnapshot
	for rows.Next() {
		var snap StepSnapshot
		var sig int
		if err := rows.Scan(&snap.Source, &snap.State.Epoch, &snap.SeriesLen,
			&snap.State.Value, &snap.State.Phase, &snap.State.Momentum, &sig); err != nil {
			return nil, fmt.Errorf("scan step: %w", err)
		}
		snap.State.Signal = model.CrossSignal(sig)
		steps = append(steps, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Reverse into chronological order.
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return steps, nil
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
