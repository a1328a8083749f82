// Package store holds the in-memory demo dataset and the query façade
// over it. It stands in for a remote database client: fixed collections
// of rows, filtered and sorted in memory, with no durability beyond the
// process.
package store

import (
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Record is a single row in a collection. Column values are strings,
// numbers, bools or nil, mirroring the JSON rows a remote client would
// return.
type Record map[string]any

// Clone returns a shallow copy of the record so callers can mutate the
// result of a query without touching the backing collection.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Store owns named, ordered collections of records. It is an injected
// instance, not package state, so tests can build isolated stores.
type Store struct {
	mu          sync.RWMutex
	collections map[string][]Record
	logger      zerolog.Logger
	now         func() time.Time
}

// NewStore returns an empty store.
func NewStore(logger zerolog.Logger) *Store {
	return &Store{
		collections: make(map[string][]Record),
		logger:      logger,
		now:         time.Now,
	}
}

// Register installs a collection under the given table name, replacing
// any existing rows.
func (s *Store) Register(table string, rows []Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[table] = rows
}

// Collection returns a snapshot of the rows for a table. An unknown
// table yields an empty slice, never an error; the demo layer is
// deliberately lenient so callers always get plausible data back.
func (s *Store) Collection(table string) []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows := s.collections[table]
	out := make([]Record, len(rows))
	copy(out, rows)
	return out
}

// Tables returns the names of the registered collections.
func (s *Store) Tables() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	return names
}

// Append adds a row to a table, creating the table if needed. When the
// row has no "id" column a time-based identifier is assigned, matching
// how the demo layer fabricates keys for created records.
func (s *Store) Append(table string, rec Record) Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec = rec.Clone()
	if _, ok := rec["id"]; !ok {
		rec["id"] = strconv.FormatInt(s.now().UnixNano(), 10)
	}
	s.collections[table] = append(s.collections[table], rec)
	s.logger.Info().Str("table", table).Interface("id", rec["id"]).Msg("record inserted")
	return rec.Clone()
}

// Replace merges fields into the row with the given id. It reports
// false when no row matches; an unknown table behaves like an empty
// one.
func (s *Store) Replace(table, id string, fields Record) (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, row := range s.collections[table] {
		if rowID, _ := row["id"].(string); rowID == id {
			updated := row.Clone()
			for k, v := range fields {
				if k == "id" {
					continue
				}
				updated[k] = v
			}
			s.collections[table][i] = updated
			s.logger.Info().Str("table", table).Str("id", id).Msg("record updated")
			return updated.Clone(), true
		}
	}
	s.logger.Info().Str("table", table).Str("id", id).Msg("update target not found")
	return nil, false
}
