// Package store implements the record stores on top of a transactional
// Backend and keeps references between records consistent.
package store

import (
	"fmt"

	"github.com/buzkaaclicker/social"
	"github.com/google/uuid"
)

type Store struct {
	backend Backend

	users       *Users
	posts       *Posts
	profiles    *Profiles
	memberTypes *MemberTypes
}

// New wraps the backend and seeds the default member types.
func New(backend Backend) (*Store, error) {
	err := backend.Update(func(tx Tx) error {
		for _, mt := range social.DefaultMemberTypes() {
			_, ok, err := tx.MemberTypes().ById(mt.Id)
			if err != nil {
				return fmt.Errorf("lookup member type: %w", err)
			}
			if ok {
				continue
			}
			if _, err := tx.MemberTypes().Insert(mt); err != nil {
				return fmt.Errorf("insert member type %s: %w", mt.Id, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("seed member types: %w", err)
	}
	return &Store{
		backend:     backend,
		users:       &Users{backend: backend},
		posts:       &Posts{backend: backend},
		profiles:    &Profiles{backend: backend},
		memberTypes: &MemberTypes{backend: backend},
	}, nil
}

func (s *Store) Users() *Users {
	return s.users
}

func (s *Store) Posts() *Posts {
	return s.posts
}

func (s *Store) Profiles() *Profiles {
	return s.profiles
}

func (s *Store) MemberTypes() *MemberTypes {
	return s.memberTypes
}

func (s *Store) Stores() social.Stores {
	return social.Stores{
		Users:       s.users,
		Posts:       s.posts,
		Profiles:    s.profiles,
		MemberTypes: s.memberTypes,
	}
}

func newId() string {
	return uuid.New().String()
}

func scan[T social.Entity](b Backend, table func(Tx) Table[T], filters []social.Filter) ([]T, error) {
	var records []T
	err := b.View(func(tx Tx) error {
		var err error
		records, err = table(tx).Scan(filters...)
		return err
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func findOne[T social.Entity](b Backend, table func(Tx) Table[T], filters []social.Filter) (T, bool, error) {
	records, err := scan(b, table, filters)
	if err != nil || len(records) == 0 {
		var zero T
		return zero, false, err
	}
	return records[0], true, nil
}

func byId[T social.Entity](b Backend, table func(Tx) Table[T], id string, notFound error) (T, error) {
	var (
		record T
		ok     bool
	)
	err := b.View(func(tx Tx) error {
		var err error
		record, ok, err = table(tx).ById(id)
		return err
	})
	if err != nil {
		return record, err
	}
	if !ok {
		return record, notFound
	}
	return record, nil
}

// requireUser fails with notFound when the user does not exist.
func requireUser(tx Tx, id string, notFound error) (social.User, error) {
	user, ok, err := tx.Users().ById(id)
	if err != nil {
		return user, fmt.Errorf("lookup user: %w", err)
	}
	if !ok {
		return user, notFound
	}
	return user, nil
}

func requireMemberType(tx Tx, id string, notFound error) error {
	_, ok, err := tx.MemberTypes().ById(id)
	if err != nil {
		return fmt.Errorf("lookup member type: %w", err)
	}
	if !ok {
		return notFound
	}
	return nil
}
