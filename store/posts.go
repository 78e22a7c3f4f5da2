package store

import (
	"context"
	"fmt"

	"github.com/buzkaaclicker/social"
)

type Posts struct {
	backend Backend
}

var _ social.PostStore = (*Posts)(nil)

func postsTable(tx Tx) Table[social.Post] {
	return tx.Posts()
}

func (s *Posts) FindMany(ctx context.Context, filters ...social.Filter) ([]social.Post, error) {
	posts, err := scan(s.backend, postsTable, filters)
	if err != nil {
		return nil, fmt.Errorf("scan posts: %w", err)
	}
	return posts, nil
}

func (s *Posts) FindOne(ctx context.Context, filters ...social.Filter) (social.Post, bool, error) {
	post, ok, err := findOne(s.backend, postsTable, filters)
	if err != nil {
		return social.Post{}, false, fmt.Errorf("scan posts: %w", err)
	}
	return post, ok, nil
}

func (s *Posts) ById(ctx context.Context, id string) (social.Post, error) {
	post, err := byId(s.backend, postsTable, id, social.ErrPostNotFound)
	if err != nil {
		return social.Post{}, wrap(err, "get post")
	}
	return post, nil
}

func (s *Posts) Create(ctx context.Context, post social.Post) (social.Post, error) {
	post.Id = newId()

	var created social.Post
	err := s.backend.Update(func(tx Tx) error {
		if _, err := requireUser(tx, post.UserId, social.ErrUnknownUser); err != nil {
			return err
		}
		var err error
		created, err = tx.Posts().Insert(post)
		return err
	})
	if err != nil {
		return social.Post{}, wrap(err, "insert post")
	}
	return created, nil
}

func (s *Posts) Change(ctx context.Context, id string, change social.PostChange) (social.Post, error) {
	var changed social.Post
	err := s.backend.Update(func(tx Tx) error {
		var (
			ok  bool
			err error
		)
		changed, ok, err = tx.Posts().Update(id, change.Apply)
		if err != nil {
			return fmt.Errorf("update post: %w", err)
		}
		if !ok {
			return social.ErrPostNotFound
		}
		return nil
	})
	if err != nil {
		return social.Post{}, wrap(err, "change post")
	}
	return changed, nil
}

func (s *Posts) Delete(ctx context.Context, id string) (social.Post, error) {
	var deleted social.Post
	err := s.backend.Update(func(tx Tx) error {
		var (
			ok  bool
			err error
		)
		deleted, ok, err = tx.Posts().Remove(id)
		if err != nil {
			return fmt.Errorf("remove post: %w", err)
		}
		if !ok {
			return social.ErrPostNotFound
		}
		return nil
	})
	if err != nil {
		return social.Post{}, wrap(err, "delete post")
	}
	return deleted, nil
}
