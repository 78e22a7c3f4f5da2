// Package inmem provides a map based store backend guarded by a single
// read-write mutex.
package inmem

import (
	"sync"

	"github.com/buzkaaclicker/social"
	"github.com/buzkaaclicker/social/store"
)

type Backend struct {
	users       *table[social.User]
	posts       *table[social.Post]
	profiles    *table[social.Profile]
	memberTypes *table[social.MemberType]
	mutex       sync.RWMutex
}

var _ store.Backend = (*Backend)(nil)

func NewBackend() *Backend {
	return &Backend{
		users:       newTable[social.User](),
		posts:       newTable[social.Post](),
		profiles:    newTable[social.Profile](),
		memberTypes: newTable[social.MemberType](),
		mutex:       sync.RWMutex{},
	}
}

// NewStore returns a store backed by a fresh in-memory backend.
func NewStore() *store.Store {
	s, err := store.New(NewBackend())
	if err != nil {
		// seeding an empty map backend cannot fail
		panic(err)
	}
	return s
}

func (b *Backend) View(fn func(tx store.Tx) error) error {
	b.mutex.RLock()
	defer b.mutex.RUnlock()

	return fn(&tx{backend: b, writable: false})
}

// Update runs fn under the write lock. When fn fails or panics every change
// it made is reverted before the lock is released.
func (b *Backend) Update(fn func(tx store.Tx) error) (err error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	t := &tx{backend: b, writable: true}
	defer func() {
		if r := recover(); r != nil {
			t.rollback()
			panic(r)
		}
	}()
	err = fn(t)
	if err != nil {
		t.rollback()
	}
	return err
}

type tx struct {
	backend  *Backend
	writable bool
	undo     []func()
}

func (t *tx) journal(undo func()) {
	t.undo = append(t.undo, undo)
}

func (t *tx) rollback() {
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.undo = nil
}

func (t *tx) Users() store.Table[social.User] {
	return tableTx[social.User]{table: t.backend.users, tx: t}
}

func (t *tx) Posts() store.Table[social.Post] {
	return tableTx[social.Post]{table: t.backend.posts, tx: t}
}

func (t *tx) Profiles() store.Table[social.Profile] {
	return tableTx[social.Profile]{table: t.backend.profiles, tx: t}
}

func (t *tx) MemberTypes() store.Table[social.MemberType] {
	return tableTx[social.MemberType]{table: t.backend.memberTypes, tx: t}
}
