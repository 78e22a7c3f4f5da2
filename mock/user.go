package mock

import (
	"context"

	"github.com/buzkaaclicker/social"
)

type UserStore struct {
	FindManyFn func(ctx context.Context, filters ...social.Filter) ([]social.User, error)

	FindOneFn func(ctx context.Context, filters ...social.Filter) (social.User, bool, error)

	ByIdFn func(ctx context.Context, id string) (social.User, error)

	CreateFn func(ctx context.Context, user social.User) (social.User, error)

	ChangeFn func(ctx context.Context, id string, change social.UserChange) (social.User, error)

	DeleteFn func(ctx context.Context, id string) (social.User, error)

	SubscribeToFn func(ctx context.Context, followerId string, targetId string) (social.User, error)

	UnsubscribeFromFn func(ctx context.Context, followerId string, targetId string) (social.User, error)
}

var _ social.UserStore = UserStore{}

func (s UserStore) FindMany(ctx context.Context, filters ...social.Filter) ([]social.User, error) {
	return s.FindManyFn(ctx, filters...)
}

func (s UserStore) FindOne(ctx context.Context, filters ...social.Filter) (social.User, bool, error) {
	return s.FindOneFn(ctx, filters...)
}

func (s UserStore) ById(ctx context.Context, id string) (social.User, error) {
	return s.ByIdFn(ctx, id)
}

func (s UserStore) Create(ctx context.Context, user social.User) (social.User, error) {
	return s.CreateFn(ctx, user)
}

func (s UserStore) Change(ctx context.Context, id string, change social.UserChange) (social.User, error) {
	return s.ChangeFn(ctx, id, change)
}

func (s UserStore) Delete(ctx context.Context, id string) (social.User, error) {
	return s.DeleteFn(ctx, id)
}

func (s UserStore) SubscribeTo(ctx context.Context, followerId string, targetId string) (social.User, error) {
	return s.SubscribeToFn(ctx, followerId, targetId)
}

func (s UserStore) UnsubscribeFrom(ctx context.Context, followerId string, targetId string) (social.User, error) {
	return s.UnsubscribeFromFn(ctx, followerId, targetId)
}
