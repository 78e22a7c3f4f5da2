package store

import (
	"github.com/buzkaaclicker/social"
)

// Table is a keyed collection of one record kind. Implementations hand out
// copies; mutating a returned record never changes stored state.
type Table[T social.Entity] interface {
	// Insert stores rec under rec.EntityId(). It fails with
	// social.ErrDuplicateId when the id is taken.
	Insert(rec T) (T, error)

	ById(id string) (T, bool, error)

	// Scan returns records matching every filter in insertion order.
	Scan(filters ...social.Filter) ([]T, error)

	// Update applies mutate to the stored record and returns the result.
	// The record id must not be changed by mutate.
	Update(id string, mutate func(*T)) (T, bool, error)

	// Remove deletes the record and returns its last state.
	Remove(id string) (T, bool, error)
}

// Tx gives access to all tables inside one backend transaction.
type Tx interface {
	Users() Table[social.User]
	Posts() Table[social.Post]
	Profiles() Table[social.Profile]
	MemberTypes() Table[social.MemberType]
}

// Backend runs closures against its tables. View closures may run
// concurrently with each other; Update closures run exclusively and are
// applied as a whole or, when fn returns an error, not at all.
type Backend interface {
	View(fn func(tx Tx) error) error
	Update(fn func(tx Tx) error) error
}
