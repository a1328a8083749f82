package store

import (
	"fmt"
	"sort"
)

// Direction controls the sort order of a query.
type Direction bool

const (
	Ascending  Direction = true
	Descending Direction = false
)

type filter struct {
	column string
	value  any
}

// Query is an expression built against one collection and evaluated
// once. It imitates the chainable remote-client API the demo layer
// replaces, but as a plain struct rather than nested closures.
type Query struct {
	store   *Store
	table   string
	filters []filter
	orderBy string
	dir     Direction
	limit   int
	limited bool
}

// Result is the terminal shape of every query: data plus an error slot
// that the in-memory store never populates. Keeping the slot makes the
// calling code look the same against a real client.
type Result struct {
	Data []Record
	Err  error
}

// From starts a query against a table. Unknown tables evaluate to an
// empty result.
func (s *Store) From(table string) *Query {
	return &Query{store: s, table: table, dir: Ascending}
}

// Select is a no-op kept for call-site symmetry with the remote client
// the façade imitates.
func (q *Query) Select() *Query { return q }

// Eq adds an equality filter. A column absent from a row never matches,
// so filtering on a non-existent column yields an empty result rather
// than an error.
func (q *Query) Eq(column string, value any) *Query {
	q.filters = append(q.filters, filter{column: column, value: value})
	return q
}

// Order sorts by the natural ordering of the column's values. The sort
// is stable: rows with equal keys keep their seed order, which matters
// here because the demo data has many tied created_at values.
func (q *Query) Order(column string, dir Direction) *Query {
	q.orderBy = column
	q.dir = dir
	return q
}

// Limit truncates the result after filtering and sorting. A limit
// larger than the result set returns everything; negative is treated
// as zero.
func (q *Query) Limit(n int) *Query {
	if n < 0 {
		n = 0
	}
	q.limit = n
	q.limited = true
	return q
}

// Exec evaluates the query: filter, then stable sort, then truncate.
func (q *Query) Exec() Result {
	rows := q.store.Collection(q.table)

	filtered := rows[:0:0]
	for _, row := range rows {
		if q.matches(row) {
			filtered = append(filtered, row)
		}
	}

	if q.orderBy != "" {
		sort.SliceStable(filtered, func(i, j int) bool {
			less := compareValues(filtered[i][q.orderBy], filtered[j][q.orderBy]) < 0
			if q.dir == Descending {
				return compareValues(filtered[j][q.orderBy], filtered[i][q.orderBy]) < 0
			}
			return less
		})
	}

	if q.limited && q.limit < len(filtered) {
		filtered = filtered[:q.limit]
	}

	out := make([]Record, len(filtered))
	for i, row := range filtered {
		out[i] = row.Clone()
	}
	return Result{Data: out}
}

// Single returns the first row matching the filters, or ok=false when
// nothing matches.
func (q *Query) Single() (Record, bool) {
	rows := q.store.Collection(q.table)
	for _, row := range rows {
		if q.matches(row) {
			return row.Clone(), true
		}
	}
	return nil, false
}

// Insert appends a record through the façade. The stored copy, with a
// generated id when the caller supplied none, comes back in the result.
func (q *Query) Insert(rec Record) Result {
	stored := q.store.Append(q.table, rec)
	return Result{Data: []Record{stored}}
}

// Update merges fields into the record with the given id. Not-found is
// reported as an empty result, never as an error.
func (q *Query) Update(id string, fields Record) Result {
	updated, ok := q.store.Replace(q.table, id, fields)
	if !ok {
		return Result{Data: []Record{}}
	}
	return Result{Data: []Record{updated}}
}

func (q *Query) matches(row Record) bool {
	for _, f := range q.filters {
		v, ok := row[f.column]
		if !ok {
			return false
		}
		if !valuesEqual(v, f.value) {
			return false
		}
	}
	return true
}

// valuesEqual compares a row value with a filter value, treating all
// numeric types as float64 the way JSON rows would.
func valuesEqual(a, b any) bool {
	if af, aok := asFloat(a); aok {
		bf, bok := asFloat(b)
		return bok && af == bf
	}
	return a == b
}

// compareValues orders two column values naturally: numbers by value,
// strings lexically, nil before everything else.
func compareValues(a, b any) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}
	if af, aok := asFloat(a); aok {
		if bf, bok := asFloat(b); bok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	}
	as := stringValue(a)
	bs := stringValue(b)
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	default:
		return 0
	}
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case *float64:
		if n == nil {
			return 0, false
		}
		return *n, true
	}
	return 0, false
}

func stringValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
