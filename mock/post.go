package mock

import (
	"context"

	"github.com/buzkaaclicker/social"
)

type PostStore struct {
	FindManyFn func(ctx context.Context, filters ...social.Filter) ([]social.Post, error)

	FindOneFn func(ctx context.Context, filters ...social.Filter) (social.Post, bool, error)

	ByIdFn func(ctx context.Context, id string) (social.Post, error)

	CreateFn func(ctx context.Context, post social.Post) (social.Post, error)

	ChangeFn func(ctx context.Context, id string, change social.PostChange) (social.Post, error)

	DeleteFn func(ctx context.Context, id string) (social.Post, error)
}

var _ social.PostStore = PostStore{}

func (s PostStore) FindMany(ctx context.Context, filters ...social.Filter) ([]social.Post, error) {
	return s.FindManyFn(ctx, filters...)
}

func (s PostStore) FindOne(ctx context.Context, filters ...social.Filter) (social.Post, bool, error) {
	return s.FindOneFn(ctx, filters...)
}

func (s PostStore) ById(ctx context.Context, id string) (social.Post, error) {
	return s.ByIdFn(ctx, id)
}

func (s PostStore) Create(ctx context.Context, post social.Post) (social.Post, error) {
	return s.CreateFn(ctx, post)
}

func (s PostStore) Change(ctx context.Context, id string, change social.PostChange) (social.Post, error) {
	return s.ChangeFn(ctx, id, change)
}

func (s PostStore) Delete(ctx context.Context, id string) (social.Post, error) {
	return s.DeleteFn(ctx, id)
}
