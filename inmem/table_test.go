package inmem

import (
	"errors"
	"testing"

	"github.com/buzkaaclicker/social"
	"github.com/buzkaaclicker/social/store"
	"github.com/stretchr/testify/assert"
)

func TestTableInsertionOrder(t *testing.T) {
	assert := assert.New(t)
	b := NewBackend()

	ids := []string{"c", "a", "b"}
	err := b.Update(func(tx store.Tx) error {
		for _, id := range ids {
			if _, err := tx.Posts().Insert(social.Post{Id: id, UserId: "u1"}); err != nil {
				return err
			}
		}
		return nil
	})
	if !assert.NoError(err) {
		return
	}

	err = b.View(func(tx store.Tx) error {
		posts, err := tx.Posts().Scan()
		if err != nil {
			return err
		}
		got := make([]string, len(posts))
		for i, p := range posts {
			got[i] = p.Id
		}
		assert.Equal(ids, got)
		return nil
	})
	assert.NoError(err)
}

func TestTableUpdateKeepsPosition(t *testing.T) {
	assert := assert.New(t)
	b := NewBackend()

	err := b.Update(func(tx store.Tx) error {
		for _, id := range []string{"p1", "p2", "p3"} {
			if _, err := tx.Posts().Insert(social.Post{Id: id, Title: "old"}); err != nil {
				return err
			}
		}
		updated, ok, err := tx.Posts().Update("p1", func(p *social.Post) { p.Title = "new" })
		assert.True(ok)
		assert.Equal("new", updated.Title)
		return err
	})
	if !assert.NoError(err) {
		return
	}

	_ = b.View(func(tx store.Tx) error {
		posts, err := tx.Posts().Scan()
		if assert.NoError(err) && assert.Len(posts, 3) {
			assert.Equal("p1", posts[0].Id)
			assert.Equal("new", posts[0].Title)
		}
		return nil
	})
}

func TestTableMissingRecords(t *testing.T) {
	assert := assert.New(t)
	b := NewBackend()

	err := b.Update(func(tx store.Tx) error {
		_, ok, err := tx.Users().ById("nope")
		assert.NoError(err)
		assert.False(ok)

		_, ok, err = tx.Users().Update("nope", func(u *social.User) { u.Email = "x" })
		assert.NoError(err)
		assert.False(ok)

		_, ok, err = tx.Users().Remove("nope")
		assert.NoError(err)
		assert.False(ok)
		return nil
	})
	assert.NoError(err)
}

func TestTableDuplicateId(t *testing.T) {
	assert := assert.New(t)
	b := NewBackend()

	err := b.Update(func(tx store.Tx) error {
		if _, err := tx.Users().Insert(social.User{Id: "u1"}); err != nil {
			return err
		}
		_, err := tx.Users().Insert(social.User{Id: "u1"})
		return err
	})
	assert.ErrorIs(err, social.ErrDuplicateId)
}

func TestTableCopyIsolation(t *testing.T) {
	assert := assert.New(t)
	b := NewBackend()

	original := social.User{Id: "u1", SubscribedToUserIds: []string{"u2"}}
	err := b.Update(func(tx store.Tx) error {
		inserted, err := tx.Users().Insert(original)
		if err != nil {
			return err
		}
		inserted.SubscribedToUserIds[0] = "mutated"
		return nil
	})
	if !assert.NoError(err) {
		return
	}
	original.SubscribedToUserIds[0] = "mutated too"

	_ = b.View(func(tx store.Tx) error {
		u, ok, err := tx.Users().ById("u1")
		if assert.NoError(err) && assert.True(ok) {
			assert.Equal([]string{"u2"}, u.SubscribedToUserIds)
			u.SubscribedToUserIds[0] = "mutated again"
		}
		again, _, _ := tx.Users().ById("u1")
		assert.Equal([]string{"u2"}, again.SubscribedToUserIds)
		return nil
	})
}

func TestTableFilters(t *testing.T) {
	assert := assert.New(t)
	b := NewBackend()

	err := b.Update(func(tx store.Tx) error {
		users := []social.User{
			{Id: "a", Email: "a@x", SubscribedToUserIds: []string{"b"}},
			{Id: "b", Email: "b@x", SubscribedToUserIds: []string{}},
			{Id: "c", Email: "c@x", SubscribedToUserIds: []string{"a", "b"}},
		}
		for _, u := range users {
			if _, err := tx.Users().Insert(u); err != nil {
				return err
			}
		}
		return nil
	})
	if !assert.NoError(err) {
		return
	}

	cases := []struct {
		filters  []social.Filter
		expected []string
	}{
		{filters: nil, expected: []string{"a", "b", "c"}},
		{filters: []social.Filter{social.Equals("email", "b@x")}, expected: []string{"b"}},
		{filters: []social.Filter{social.Contains(social.KeySubscribedToUserIds, "b")}, expected: []string{"a", "c"}},
		{filters: []social.Filter{
			social.Contains(social.KeySubscribedToUserIds, "b"),
			social.Equals(social.KeyId, "c"),
		}, expected: []string{"c"}},
		{filters: []social.Filter{social.Equals("unknown", "a")}, expected: []string{}},
		{filters: []social.Filter{social.Contains("email", "a@x")}, expected: []string{}},
	}
	for _, tc := range cases {
		_ = b.View(func(tx store.Tx) error {
			users, err := tx.Users().Scan(tc.filters...)
			if !assert.NoError(err) {
				return nil
			}
			got := make([]string, len(users))
			for i, u := range users {
				got[i] = u.Id
			}
			assert.Equal(tc.expected, got, tc.filters)
			return nil
		})
	}
}

func TestBackendRollback(t *testing.T) {
	assert := assert.New(t)
	b := NewBackend()

	err := b.Update(func(tx store.Tx) error {
		if _, err := tx.Users().Insert(social.User{Id: "keep", Email: "before"}); err != nil {
			return err
		}
		_, err := tx.Posts().Insert(social.Post{Id: "p1", UserId: "keep"})
		return err
	})
	if !assert.NoError(err) {
		return
	}

	failure := errors.New("boom")
	err = b.Update(func(tx store.Tx) error {
		if _, err := tx.Users().Insert(social.User{Id: "new"}); err != nil {
			return err
		}
		if _, _, err := tx.Users().Update("keep", func(u *social.User) { u.Email = "after" }); err != nil {
			return err
		}
		if _, _, err := tx.Posts().Remove("p1"); err != nil {
			return err
		}
		return failure
	})
	assert.ErrorIs(err, failure)

	_ = b.View(func(tx store.Tx) error {
		users, _ := tx.Users().Scan()
		if assert.Len(users, 1) {
			assert.Equal("keep", users[0].Id)
			assert.Equal("before", users[0].Email)
		}
		_, ok, _ := tx.Posts().ById("p1")
		assert.True(ok)
		return nil
	})
}

func TestBackendRollbackOnPanic(t *testing.T) {
	assert := assert.New(t)
	b := NewBackend()

	assert.Panics(func() {
		_ = b.Update(func(tx store.Tx) error {
			_, _ = tx.Users().Insert(social.User{Id: "u1"})
			panic("kaboom")
		})
	})

	_ = b.View(func(tx store.Tx) error {
		users, _ := tx.Users().Scan()
		assert.Len(users, 0)
		return nil
	})
}

func TestViewIsReadOnly(t *testing.T) {
	assert := assert.New(t)
	b := NewBackend()

	err := b.View(func(tx store.Tx) error {
		_, err := tx.Users().Insert(social.User{Id: "u1"})
		return err
	})
	assert.ErrorIs(err, errReadOnly)
}

func TestUpdateRejectsIdChange(t *testing.T) {
	assert := assert.New(t)
	b := NewBackend()

	err := b.Update(func(tx store.Tx) error {
		if _, err := tx.Users().Insert(social.User{Id: "u1"}); err != nil {
			return err
		}
		_, _, err := tx.Users().Update("u1", func(u *social.User) { u.Id = "u2" })
		return err
	})
	assert.Error(err)

	_ = b.View(func(tx store.Tx) error {
		users, _ := tx.Users().Scan()
		assert.Len(users, 0)
		return nil
	})
}
