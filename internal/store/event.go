package store

// Journal sequencing.
//
// Session, answer, LLM, and sync events each live in their own table,
// and per-table autoincrement IDs say nothing about order across
// tables. Every append therefore draws its sequence number from one
// counter row, which gives the whole journal a single total order: a
// sync failure can be placed before or after the answer that caused
// it by comparing sequences alone.
//
// The counter is plain SQL rather than an ent entity because ent has
// no atomic fetch-and-increment. The UPDATE ... RETURNING makes the
// draw atomic in the database; the mutex keeps concurrent appends from
// this process serialized on top of that.

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

type seqAllocator struct {
	mu sync.Mutex
	db *sql.DB
}

func newSeqAllocator(db *sql.DB) (*seqAllocator, error) {
	const ddl = `CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`
	if _, err := db.Exec(ddl); err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}
	if _, err := db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`); err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}
	return &seqAllocator{db: db}, nil
}

// Next draws the next sequence number.
func (a *seqAllocator) Next(ctx context.Context) (int64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var seq int64
	err := a.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}
