package bunt

import (
	"errors"
	"testing"

	"github.com/buzkaaclicker/social"
	"github.com/buzkaaclicker/social/store"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/buntdb"
)

func openTest(t *testing.T) *Backend {
	b, err := Open()
	if err != nil {
		t.Fatalf("open backend: %s", err)
	}
	t.Cleanup(func() {
		_ = b.Close()
	})
	return b
}

func TestScanFollowsInsertionOrder(t *testing.T) {
	assert := assert.New(t)
	b := openTest(t)

	// ids sort differently than they were inserted
	ids := []string{"zz", "aa", "mm", "bb"}
	err := b.Update(func(tx store.Tx) error {
		for _, id := range ids {
			if _, err := tx.Users().Insert(social.User{Id: id}); err != nil {
				return err
			}
		}
		return nil
	})
	if !assert.NoError(err) {
		return
	}

	err = b.View(func(tx store.Tx) error {
		users, err := tx.Users().Scan()
		if err != nil {
			return err
		}
		got := make([]string, len(users))
		for i, u := range users {
			got[i] = u.Id
		}
		assert.Equal(ids, got)
		return nil
	})
	assert.NoError(err)
}

func TestKindsDoNotMix(t *testing.T) {
	assert := assert.New(t)
	b := openTest(t)

	err := b.Update(func(tx store.Tx) error {
		if _, err := tx.Posts().Insert(social.Post{Id: "same", Title: "post"}); err != nil {
			return err
		}
		_, err := tx.Profiles().Insert(social.Profile{Id: "same", City: "Warsaw"})
		return err
	})
	if !assert.NoError(err) {
		return
	}

	_ = b.View(func(tx store.Tx) error {
		posts, err := tx.Posts().Scan()
		if assert.NoError(err) && assert.Len(posts, 1) {
			assert.Equal("post", posts[0].Title)
		}
		profiles, err := tx.Profiles().Scan()
		if assert.NoError(err) && assert.Len(profiles, 1) {
			assert.Equal("Warsaw", profiles[0].City)
		}
		return nil
	})
}

func TestUpdateRollsBackOnError(t *testing.T) {
	assert := assert.New(t)
	b := openTest(t)

	err := b.Update(func(tx store.Tx) error {
		_, err := tx.Users().Insert(social.User{Id: "u1", Email: "before", SubscribedToUserIds: []string{}})
		return err
	})
	if !assert.NoError(err) {
		return
	}

	failure := errors.New("boom")
	err = b.Update(func(tx store.Tx) error {
		if _, _, err := tx.Users().Update("u1", func(u *social.User) { u.Email = "after" }); err != nil {
			return err
		}
		if _, err := tx.Users().Insert(social.User{Id: "u2"}); err != nil {
			return err
		}
		return failure
	})
	assert.ErrorIs(err, failure)

	_ = b.View(func(tx store.Tx) error {
		users, err := tx.Users().Scan()
		if assert.NoError(err) && assert.Len(users, 1) {
			assert.Equal("before", users[0].Email)
		}
		return nil
	})
}

func TestViewCannotWrite(t *testing.T) {
	b := openTest(t)

	err := b.View(func(tx store.Tx) error {
		_, err := tx.Users().Insert(social.User{Id: "u1"})
		return err
	})
	assert.ErrorIs(t, err, buntdb.ErrTxNotWritable)
}

func TestRemoveReturnsSnapshot(t *testing.T) {
	assert := assert.New(t)
	b := openTest(t)

	err := b.Update(func(tx store.Tx) error {
		if _, err := tx.MemberTypes().Insert(social.MemberType{Id: "gold", Discount: 12.5, MonthPostsLimit: 7}); err != nil {
			return err
		}
		removed, ok, err := tx.MemberTypes().Remove("gold")
		assert.True(ok)
		assert.Equal(social.MemberType{Id: "gold", Discount: 12.5, MonthPostsLimit: 7}, removed)
		if err != nil {
			return err
		}
		_, ok, err = tx.MemberTypes().Remove("gold")
		assert.False(ok)
		return err
	})
	assert.NoError(err)
}
