/*
=================================================================================
CHECKPOINT STORE - SQLITE-BACKED WEIGHT SNAPSHOT ARCHIVE
=================================================================================

Serialization of full network snapshots is deliberately out of the core
engine's scope, treated as an external collaborator's responsibility. This
package is that collaborator: a concrete, standing archive of per-tick synapse checkpoints
backed by github.com/mattn/go-sqlite3, the driver other_examples' crownet
pulls in for exactly this kind of local persistence.

The core (synapse, neuron, delayline, stepdriver) never imports this package.
It only consumes the textual field-ordered record synapse.Store.Write/Read
already define -- this package is a thin archival wrapper around
that wire format, one row per (step, synapse) pair.
=================================================================================
*/
package checkpointstore

import (
	"bytes"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/SynapticNetworks/stdp-core/synapse"
)

const schema = `
CREATE TABLE IF NOT EXISTS synapse_checkpoints (
	step          INTEGER NOT NULL,
	synapse_index INTEGER NOT NULL,
	record        TEXT NOT NULL,
	PRIMARY KEY (step, synapse_index)
);
`

// Store is a SQLite-backed archive of per-tick synapse checkpoints.
type Store struct {
	db *sql.DB
}

// Open creates or attaches to a SQLite database file at path, ensuring the
// checkpoint table exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("checkpointstore: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("checkpointstore: create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveTick archives every synapse in [0, synapseCount) from syn at the given
// step, one row per synapse, replacing any prior checkpoint for that
// (step, synapse) pair.
func (s *Store) SaveTick(step uint64, syn *synapse.Store, synapseCount int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("checkpointstore: begin tx: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO synapse_checkpoints(step, synapse_index, record) VALUES (?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("checkpointstore: prepare insert: %w", err)
	}
	defer stmt.Close()

	var buf bytes.Buffer
	for i := 0; i < synapseCount; i++ {
		buf.Reset()
		if err := syn.Write(i, &buf); err != nil {
			tx.Rollback()
			return fmt.Errorf("checkpointstore: write synapse %d: %w", i, err)
		}
		if _, err := stmt.Exec(step, i, buf.String()); err != nil {
			tx.Rollback()
			return fmt.Errorf("checkpointstore: insert synapse %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// LoadTick restores every archived synapse for the given step into syn,
// overwriting syn's state for each synapse index found. It does not modify
// synapses that were never checkpointed at that step.
func (s *Store) LoadTick(step uint64, syn *synapse.Store) error {
	rows, err := s.db.Query(`SELECT synapse_index, record FROM synapse_checkpoints WHERE step = ?`, step)
	if err != nil {
		return fmt.Errorf("checkpointstore: query step %d: %w", step, err)
	}
	defer rows.Close()

	for rows.Next() {
		var idx int
		var record string
		if err := rows.Scan(&idx, &record); err != nil {
			return fmt.Errorf("checkpointstore: scan row: %w", err)
		}
		if err := syn.Read(idx, bytes.NewBufferString(record)); err != nil {
			return fmt.Errorf("checkpointstore: restore synapse %d: %w", idx, err)
		}
	}
	return rows.Err()
}

// Steps returns every step number that has at least one archived checkpoint,
// in ascending order.
func (s *Store) Steps() ([]uint64, error) {
	rows, err := s.db.Query(`SELECT DISTINCT step FROM synapse_checkpoints ORDER BY step ASC`)
	if err != nil {
		return nil, fmt.Errorf("checkpointstore: query steps: %w", err)
	}
	defer rows.Close()

	var steps []uint64
	for rows.Next() {
		var step uint64
		if err := rows.Scan(&step); err != nil {
			return nil, fmt.Errorf("checkpointstore: scan step: %w", err)
		}
		steps = append(steps, step)
	}
	return steps, rows.Err()
}
