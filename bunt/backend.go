// Package bunt provides a store backend on an in-memory buntdb database.
// Records are JSON values under "<kind>:<id>" keys, ordered by a "seq"
// index so scans return insertion order.
package bunt

import (
	"fmt"
	"sync/atomic"

	"github.com/buzkaaclicker/social"
	"github.com/buzkaaclicker/social/store"
	"github.com/tidwall/buntdb"
)

const (
	userPrefix       = "user"
	postPrefix       = "post"
	profilePrefix    = "profile"
	memberTypePrefix = "member_type"
)

type Backend struct {
	Buntdb *buntdb.DB

	lastSeq atomic.Uint64
}

var _ store.Backend = (*Backend)(nil)

// Open creates a backend on a fresh ":memory:" database.
func Open() (*Backend, error) {
	bdb, err := buntdb.Open(":memory:")
	if err != nil {
		return nil, fmt.Errorf("open buntdb: %w", err)
	}
	b := &Backend{Buntdb: bdb}
	if err := b.CreateIndexes(); err != nil {
		_ = bdb.Close()
		return nil, err
	}
	return b, nil
}

// NewStore opens a backend and returns a store on top of it. Closing the
// backend releases the database.
func NewStore() (*store.Store, *Backend, error) {
	b, err := Open()
	if err != nil {
		return nil, nil, err
	}
	s, err := store.New(b)
	if err != nil {
		_ = b.Close()
		return nil, nil, err
	}
	return s, b, nil
}

func (b *Backend) CreateIndexes() error {
	for _, prefix := range []string{userPrefix, postPrefix, profilePrefix, memberTypePrefix} {
		err := b.Buntdb.CreateIndex(prefix, prefix+":*", buntdb.IndexJSON("seq"))
		if err != nil {
			return fmt.Errorf("create %s index: %w", prefix, err)
		}
	}
	return nil
}

func (b *Backend) Close() error {
	return b.Buntdb.Close()
}

func (b *Backend) View(fn func(tx store.Tx) error) error {
	return b.Buntdb.View(func(btx *buntdb.Tx) error {
		return fn(&tx{backend: b, btx: btx})
	})
}

// Update runs fn in a buntdb write transaction, which is rolled back when
// fn returns an error.
func (b *Backend) Update(fn func(tx store.Tx) error) error {
	return b.Buntdb.Update(func(btx *buntdb.Tx) error {
		return fn(&tx{backend: b, btx: btx})
	})
}

func (b *Backend) nextSeq() uint64 {
	return b.lastSeq.Add(1)
}

type tx struct {
	backend *Backend
	btx     *buntdb.Tx
}

func (t *tx) Users() store.Table[social.User] {
	return table[social.User]{prefix: userPrefix, tx: t}
}

func (t *tx) Posts() store.Table[social.Post] {
	return table[social.Post]{prefix: postPrefix, tx: t}
}

func (t *tx) Profiles() store.Table[social.Profile] {
	return table[social.Profile]{prefix: profilePrefix, tx: t}
}

func (t *tx) MemberTypes() store.Table[social.MemberType] {
	return table[social.MemberType]{prefix: memberTypePrefix, tx: t}
}
