// Package social holds the records, filters, errors and store contracts of
// the social graph service. Implementations live in the store package
// (facades) backed by inmem or bunt tables.
package social

// Entity is a record kept in an entity table.
type Entity interface {
	EntityId() string

	// Field returns the value of the field with the given json key.
	Field(key string) (interface{}, bool)
}

// Stores bundles one store per record kind.
type Stores struct {
	Users       UserStore
	Posts       PostStore
	Profiles    ProfileStore
	MemberTypes MemberTypeStore
}
