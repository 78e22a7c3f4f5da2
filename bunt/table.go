package bunt

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/buzkaaclicker/social"
	"github.com/tidwall/buntdb"
)

type envelope[T any] struct {
	Seq  uint64 `json:"seq"`
	Data T      `json:"data"`
}

type table[T social.Entity] struct {
	prefix string
	tx     *tx
}

func (t table[T]) key(id string) string {
	return t.prefix + ":" + id
}

func (t table[T]) get(id string) (envelope[T], bool, error) {
	var e envelope[T]
	serialized, err := t.tx.btx.Get(t.key(id))
	if err != nil {
		if errors.Is(err, buntdb.ErrNotFound) {
			return e, false, nil
		}
		return e, false, fmt.Errorf("get %s: %w", t.key(id), err)
	}
	if err := json.Unmarshal([]byte(serialized), &e); err != nil {
		return e, false, fmt.Errorf("deserialize %s: %w", t.key(id), err)
	}
	return e, true, nil
}

func (t table[T]) set(id string, e envelope[T]) error {
	serialized, err := json.Marshal(&e)
	if err != nil {
		return fmt.Errorf("serialize %s: %w", t.key(id), err)
	}
	_, _, err = t.tx.btx.Set(t.key(id), string(serialized), nil)
	if err != nil {
		return fmt.Errorf("set %s: %w", t.key(id), err)
	}
	return nil
}

func (t table[T]) Insert(rec T) (T, error) {
	var zero T
	id := rec.EntityId()
	_, exists, err := t.get(id)
	if err != nil {
		return zero, err
	}
	if exists {
		return zero, social.ErrDuplicateId
	}
	if err := t.set(id, envelope[T]{Seq: t.tx.backend.nextSeq(), Data: rec}); err != nil {
		return zero, err
	}
	return rec, nil
}

func (t table[T]) ById(id string) (T, bool, error) {
	e, ok, err := t.get(id)
	return e.Data, ok, err
}

func (t table[T]) Scan(filters ...social.Filter) ([]T, error) {
	records := make([]T, 0, 16)
	var scanErr error
	err := t.tx.btx.Ascend(t.prefix, func(key, value string) bool {
		var e envelope[T]
		if err := json.Unmarshal([]byte(value), &e); err != nil {
			scanErr = fmt.Errorf("deserialize %s: %w", key, err)
			return false
		}
		if social.MatchAll(e.Data, filters) {
			records = append(records, e.Data)
		}
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("ascend %s: %w", t.prefix, err)
	}
	if scanErr != nil {
		return nil, scanErr
	}
	return records, nil
}

func (t table[T]) Update(id string, mutate func(*T)) (T, bool, error) {
	var zero T
	e, ok, err := t.get(id)
	if err != nil || !ok {
		return zero, false, err
	}
	mutate(&e.Data)
	if e.Data.EntityId() != id {
		return zero, false, fmt.Errorf("update changed record id %s to %s", id, e.Data.EntityId())
	}
	if err := t.set(id, e); err != nil {
		return zero, false, err
	}
	return e.Data, true, nil
}

func (t table[T]) Remove(id string) (T, bool, error) {
	var zero T
	serialized, err := t.tx.btx.Delete(t.key(id))
	if err != nil {
		if errors.Is(err, buntdb.ErrNotFound) {
			return zero, false, nil
		}
		return zero, false, fmt.Errorf("delete %s: %w", t.key(id), err)
	}
	var e envelope[T]
	if err := json.Unmarshal([]byte(serialized), &e); err != nil {
		return zero, false, fmt.Errorf("deserialize deleted %s: %w", t.key(id), err)
	}
	return e.Data, true, nil
}
