package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/buzkaaclicker/social"
)

type Users struct {
	backend Backend
}

var _ social.UserStore = (*Users)(nil)

func usersTable(tx Tx) Table[social.User] {
	return tx.Users()
}

func (s *Users) FindMany(ctx context.Context, filters ...social.Filter) ([]social.User, error) {
	users, err := scan(s.backend, usersTable, filters)
	if err != nil {
		return nil, fmt.Errorf("scan users: %w", err)
	}
	for i := range users {
		users[i] = normalizeUser(users[i])
	}
	return users, nil
}

func (s *Users) FindOne(ctx context.Context, filters ...social.Filter) (social.User, bool, error) {
	user, ok, err := findOne(s.backend, usersTable, filters)
	if err != nil {
		return social.User{}, false, fmt.Errorf("scan users: %w", err)
	}
	return normalizeUser(user), ok, nil
}

func (s *Users) ById(ctx context.Context, id string) (social.User, error) {
	user, err := byId(s.backend, usersTable, id, social.ErrUserNotFound)
	if err != nil {
		return social.User{}, wrap(err, "get user")
	}
	return normalizeUser(user), nil
}

func (s *Users) Create(ctx context.Context, user social.User) (social.User, error) {
	user.Id = newId()
	user.SubscribedToUserIds = []string{}

	var created social.User
	err := s.backend.Update(func(tx Tx) error {
		var err error
		created, err = tx.Users().Insert(user)
		return err
	})
	if err != nil {
		return social.User{}, wrap(err, "insert user")
	}
	return normalizeUser(created), nil
}

func (s *Users) Change(ctx context.Context, id string, change social.UserChange) (social.User, error) {
	var changed social.User
	err := s.backend.Update(func(tx Tx) error {
		var (
			ok  bool
			err error
		)
		changed, ok, err = tx.Users().Update(id, change.Apply)
		if err != nil {
			return fmt.Errorf("update user: %w", err)
		}
		if !ok {
			return social.ErrUserNotFound
		}
		return nil
	})
	if err != nil {
		return social.User{}, wrap(err, "change user")
	}
	return normalizeUser(changed), nil
}

func (s *Users) Delete(ctx context.Context, id string) (social.User, error) {
	var deleted social.User
	err := s.backend.Update(func(tx Tx) error {
		var err error
		deleted, err = deleteUser(tx, id)
		return err
	})
	if err != nil {
		return social.User{}, wrap(err, "delete user")
	}
	return normalizeUser(deleted), nil
}

func (s *Users) SubscribeTo(ctx context.Context, followerId string, targetId string) (social.User, error) {
	var target social.User
	err := s.backend.Update(func(tx Tx) error {
		var err error
		target, err = subscribe(tx, followerId, targetId)
		return err
	})
	if err != nil {
		return social.User{}, wrap(err, "subscribe")
	}
	return normalizeUser(target), nil
}

func (s *Users) UnsubscribeFrom(ctx context.Context, followerId string, targetId string) (social.User, error) {
	var target social.User
	err := s.backend.Update(func(tx Tx) error {
		var err error
		target, err = unsubscribe(tx, followerId, targetId)
		return err
	})
	if err != nil {
		return social.User{}, wrap(err, "unsubscribe")
	}
	return normalizeUser(target), nil
}

// Subscriptions are always rendered as a list, never as null.
func normalizeUser(u social.User) social.User {
	if u.SubscribedToUserIds == nil {
		u.SubscribedToUserIds = []string{}
	}
	return u
}

// wrap adds context to backend failures and passes domain errors through
// untouched so their message reaches the caller as is.
func wrap(err error, msg string) error {
	var domainErr *social.Error
	if errors.As(err, &domainErr) {
		return err
	}
	return fmt.Errorf("%s: %w", msg, err)
}
