package mock

import (
	"context"

	"github.com/buzkaaclicker/social"
)

type ProfileStore struct {
	FindManyFn func(ctx context.Context, filters ...social.Filter) ([]social.Profile, error)

	FindOneFn func(ctx context.Context, filters ...social.Filter) (social.Profile, bool, error)

	ByIdFn func(ctx context.Context, id string) (social.Profile, error)

	CreateFn func(ctx context.Context, profile social.Profile) (social.Profile, error)

	ChangeFn func(ctx context.Context, id string, change social.ProfileChange) (social.Profile, error)

	DeleteFn func(ctx context.Context, id string) (social.Profile, error)
}

var _ social.ProfileStore = ProfileStore{}

func (s ProfileStore) FindMany(ctx context.Context, filters ...social.Filter) ([]social.Profile, error) {
	return s.FindManyFn(ctx, filters...)
}

func (s ProfileStore) FindOne(ctx context.Context, filters ...social.Filter) (social.Profile, bool, error) {
	return s.FindOneFn(ctx, filters...)
}

func (s ProfileStore) ById(ctx context.Context, id string) (social.Profile, error) {
	return s.ByIdFn(ctx, id)
}

func (s ProfileStore) Create(ctx context.Context, profile social.Profile) (social.Profile, error) {
	return s.CreateFn(ctx, profile)
}

func (s ProfileStore) Change(ctx context.Context, id string, change social.ProfileChange) (social.Profile, error) {
	return s.ChangeFn(ctx, id, change)
}

func (s ProfileStore) Delete(ctx context.Context, id string) (social.Profile, error) {
	return s.DeleteFn(ctx, id)
}
