package social

import "context"

const (
	MemberTypeBasic    = "basic"
	MemberTypeBusiness = "business"
)

type MemberType struct {
	Id              string  `json:"id"`
	Discount        float64 `json:"discount"`
	MonthPostsLimit int     `json:"monthPostsLimit"`
}

// DefaultMemberTypes returns the tiers every new store starts with.
func DefaultMemberTypes() []MemberType {
	return []MemberType{
		{Id: MemberTypeBasic, Discount: 0, MonthPostsLimit: 20},
		{Id: MemberTypeBusiness, Discount: 5, MonthPostsLimit: 100},
	}
}

func (m MemberType) EntityId() string {
	return m.Id
}

func (m MemberType) Field(key string) (interface{}, bool) {
	switch key {
	case KeyId:
		return m.Id, true
	case "discount":
		return m.Discount, true
	case "monthPostsLimit":
		return m.MonthPostsLimit, true
	default:
		return nil, false
	}
}

type MemberTypeChange struct {
	Discount        *float64 `json:"discount"`
	MonthPostsLimit *int     `json:"monthPostsLimit"`
}

func (c MemberTypeChange) Apply(m *MemberType) {
	if c.Discount != nil {
		m.Discount = *c.Discount
	}
	if c.MonthPostsLimit != nil {
		m.MonthPostsLimit = *c.MonthPostsLimit
	}
}

type MemberTypeStore interface {
	FindMany(ctx context.Context, filters ...Filter) ([]MemberType, error)

	FindOne(ctx context.Context, filters ...Filter) (MemberType, bool, error)

	ById(ctx context.Context, id string) (MemberType, error)

	// Create keeps the caller supplied tier id.
	Create(ctx context.Context, memberType MemberType) (MemberType, error)

	Change(ctx context.Context, id string, change MemberTypeChange) (MemberType, error)

	// Delete fails with ErrMemberTypeInUse while profiles reference the tier.
	Delete(ctx context.Context, id string) (MemberType, error)
}
