// Package memory is the process-local record store behind every repository.
// State lives only as long as the process; restarting resets to the seed.
package memory

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/boxaloo/boxaloo/internal/db"
)

// Table is an ordered collection of records of one entity type keyed by a
// string id. Every method runs to completion under the table mutex, so
// callers observe each operation as a single step.
type Table[T any] struct {
	mu     sync.RWMutex
	prefix string
	seq    int
	rows   []T
	idOf   func(*T) string
}

// NewTable creates an empty table whose generated ids look like PREFIX-001.
func NewTable[T any](prefix string, idOf func(*T) string) *Table[T] {
	return &Table[T]{prefix: prefix, idOf: idOf}
}

// List returns a copy of all records in insertion order.
func (t *Table[T]) List() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.rows)
}

// Filter returns the records matching keep, in insertion order.
func (t *Table[T]) Filter(keep func(*T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, 0)
	for i := range t.rows {
		if keep(&t.rows[i]) {
			out = append(out, t.rows[i])
		}
	}
	return out
}

// Get returns the record with the given id.
func (t *Table[T]) Get(id string) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	i := t.indexOf(id)
	if i < 0 {
		var zero T
		return zero, &db.Error{Op: db.OpGet, Key: id, Err: db.ErrKeyNotFound}
	}
	return t.rows[i], nil
}

// Insert reserves the next id, passes it to build and appends the result.
// The sequence only moves forward: ids are never reused, even after Delete.
// If build fails nothing is appended and the reserved id is skipped.
func (t *Table[T]) Insert(build func(id string) (T, error)) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.seq++
	id := t.formatID(t.seq)
	rec, err := build(id)
	if err != nil {
		var zero T
		return zero, err
	}
	if got := t.idOf(&rec); got != id {
		var zero T
		return zero, &db.Error{Op: db.OpInsert, Key: got, Err: fmt.Errorf("builder ignored assigned id %s", id)}
	}
	t.rows = append(t.rows, rec)
	return rec, nil
}

// Update runs mutate on a copy of the record and stores the copy only if
// mutate succeeds. The stored record keeps its id.
func (t *Table[T]) Update(id string, mutate func(*T) error) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var zero T
	i := t.indexOf(id)
	if i < 0 {
		return zero, &db.Error{Op: db.OpUpdate, Key: id, Err: db.ErrKeyNotFound}
	}
	next := t.rows[i]
	if err := mutate(&next); err != nil {
		return zero, err
	}
	if t.idOf(&next) != id {
		return zero, &db.Error{Op: db.OpUpdate, Key: id, Err: fmt.Errorf("mutation changed record id")}
	}
	t.rows[i] = next
	return next, nil
}

// Delete removes the record and reports whether it existed.
func (t *Table[T]) Delete(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	i := t.indexOf(id)
	if i < 0 {
		return false
	}
	t.rows = slices.Delete(t.rows, i, i+1)
	return true
}

// Seed appends fixture records with their own ids and advances the
// sequence past the highest PREFIX-N suffix seen.
func (t *Table[T]) Seed(rows []T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range rows {
		id := t.idOf(&rows[i])
		if id == "" {
			return &db.Error{Op: db.OpSeed, Err: fmt.Errorf("record %d has no id", i)}
		}
		if t.indexOf(id) >= 0 {
			return &db.Error{Op: db.OpSeed, Key: id, Err: db.ErrKeyExists}
		}
		t.rows = append(t.rows, rows[i])
		if n, ok := t.parseID(id); ok && n > t.seq {
			t.seq = n
		}
	}
	return nil
}

// Len returns the number of stored records.
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

func (t *Table[T]) indexOf(id string) int {
	for i := range t.rows {
		if t.idOf(&t.rows[i]) == id {
			return i
		}
	}
	return -1
}

func (t *Table[T]) formatID(n int) string {
	return fmt.Sprintf("%s-%03d", t.prefix, n)
}

func (t *Table[T]) parseID(id string) (int, bool) {
	suffix, ok := strings.CutPrefix(id, t.prefix+"-")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(suffix)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
