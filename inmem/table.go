package inmem

import (
	"errors"
	"fmt"
	"sort"

	"github.com/buzkaaclicker/social"
	"github.com/jinzhu/copier"
)

var errReadOnly = errors.New("write in read-only transaction")

type row[T any] struct {
	seq uint64
	rec T
}

// table keeps records by id and remembers their insertion sequence.
// It is not synchronized; Backend guards it.
type table[T social.Entity] struct {
	lastSeq uint64
	rows    map[string]row[T]
}

func newTable[T social.Entity]() *table[T] {
	return &table[T]{
		lastSeq: 0,
		rows:    make(map[string]row[T]),
	}
}

func clone[T any](rec T) (T, error) {
	var out T
	err := copier.CopyWithOption(&out, &rec, copier.Option{DeepCopy: true})
	if err != nil {
		return out, fmt.Errorf("copy record: %w", err)
	}
	return out, nil
}

// tableTx is the view of a table inside one transaction. Every mutation
// registers its inverse in the transaction journal.
type tableTx[T social.Entity] struct {
	table *table[T]
	tx    *tx
}

func (t tableTx[T]) Insert(rec T) (T, error) {
	var zero T
	if !t.tx.writable {
		return zero, errReadOnly
	}
	id := rec.EntityId()
	if _, ok := t.table.rows[id]; ok {
		return zero, social.ErrDuplicateId
	}
	stored, err := clone(rec)
	if err != nil {
		return zero, err
	}
	t.table.lastSeq++
	t.table.rows[id] = row[T]{seq: t.table.lastSeq, rec: stored}
	t.tx.journal(func() {
		delete(t.table.rows, id)
	})
	return clone(stored)
}

func (t tableTx[T]) ById(id string) (T, bool, error) {
	r, ok := t.table.rows[id]
	if !ok {
		var zero T
		return zero, false, nil
	}
	rec, err := clone(r.rec)
	return rec, err == nil, err
}

func (t tableTx[T]) Scan(filters ...social.Filter) ([]T, error) {
	matched := make([]row[T], 0, len(t.table.rows))
	for _, r := range t.table.rows {
		if social.MatchAll(r.rec, filters) {
			matched = append(matched, r)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].seq < matched[j].seq
	})

	records := make([]T, len(matched))
	for i, r := range matched {
		rec, err := clone(r.rec)
		if err != nil {
			return nil, err
		}
		records[i] = rec
	}
	return records, nil
}

func (t tableTx[T]) Update(id string, mutate func(*T)) (T, bool, error) {
	var zero T
	if !t.tx.writable {
		return zero, false, errReadOnly
	}
	previous, ok := t.table.rows[id]
	if !ok {
		return zero, false, nil
	}
	rec, err := clone(previous.rec)
	if err != nil {
		return zero, false, err
	}
	mutate(&rec)
	if rec.EntityId() != id {
		return zero, false, fmt.Errorf("update changed record id %s to %s", id, rec.EntityId())
	}
	t.table.rows[id] = row[T]{seq: previous.seq, rec: rec}
	t.tx.journal(func() {
		t.table.rows[id] = previous
	})
	out, err := clone(rec)
	return out, err == nil, err
}

func (t tableTx[T]) Remove(id string) (T, bool, error) {
	var zero T
	if !t.tx.writable {
		return zero, false, errReadOnly
	}
	previous, ok := t.table.rows[id]
	if !ok {
		return zero, false, nil
	}
	removed, err := clone(previous.rec)
	if err != nil {
		return zero, false, err
	}
	delete(t.table.rows, id)
	t.tx.journal(func() {
		t.table.rows[id] = previous
	})
	return removed, true, nil
}
