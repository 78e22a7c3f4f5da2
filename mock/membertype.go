package mock

import (
	"context"

	"github.com/buzkaaclicker/social"
)

type MemberTypeStore struct {
	FindManyFn func(ctx context.Context, filters ...social.Filter) ([]social.MemberType, error)

	FindOneFn func(ctx context.Context, filters ...social.Filter) (social.MemberType, bool, error)

	ByIdFn func(ctx context.Context, id string) (social.MemberType, error)

	CreateFn func(ctx context.Context, memberType social.MemberType) (social.MemberType, error)

	ChangeFn func(ctx context.Context, id string, change social.MemberTypeChange) (social.MemberType, error)

	DeleteFn func(ctx context.Context, id string) (social.MemberType, error)
}

var _ social.MemberTypeStore = MemberTypeStore{}

func (s MemberTypeStore) FindMany(ctx context.Context, filters ...social.Filter) ([]social.MemberType, error) {
	return s.FindManyFn(ctx, filters...)
}

func (s MemberTypeStore) FindOne(ctx context.Context, filters ...social.Filter) (social.MemberType, bool, error) {
	return s.FindOneFn(ctx, filters...)
}

func (s MemberTypeStore) ById(ctx context.Context, id string) (social.MemberType, error) {
	return s.ByIdFn(ctx, id)
}

func (s MemberTypeStore) Create(ctx context.Context, memberType social.MemberType) (social.MemberType, error) {
	return s.CreateFn(ctx, memberType)
}

func (s MemberTypeStore) Change(ctx context.Context, id string, change social.MemberTypeChange) (social.MemberType, error) {
	return s.ChangeFn(ctx, id, change)
}

func (s MemberTypeStore) Delete(ctx context.Context, id string) (social.MemberType, error) {
	return s.DeleteFn(ctx, id)
}
