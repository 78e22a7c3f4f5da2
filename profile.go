package social

import "context"

type Profile struct {
	Id     string `json:"id"`
	Avatar string `json:"avatar"`
	Sex    string `json:"sex"`
	// Unix time in milliseconds.
	Birthday     int64  `json:"birthday"`
	Country      string `json:"country"`
	Street       string `json:"street"`
	City         string `json:"city"`
	MemberTypeId string `json:"memberTypeId"`
	UserId       string `json:"userId"`
}

func (p Profile) EntityId() string {
	return p.Id
}

func (p Profile) Field(key string) (interface{}, bool) {
	switch key {
	case KeyId:
		return p.Id, true
	case "avatar":
		return p.Avatar, true
	case "sex":
		return p.Sex, true
	case "birthday":
		return p.Birthday, true
	case "country":
		return p.Country, true
	case "street":
		return p.Street, true
	case "city":
		return p.City, true
	case KeyMemberTypeId:
		return p.MemberTypeId, true
	case KeyUserId:
		return p.UserId, true
	default:
		return nil, false
	}
}

type ProfileChange struct {
	Avatar       *string `json:"avatar"`
	Sex          *string `json:"sex"`
	Birthday     *int64  `json:"birthday"`
	Country      *string `json:"country"`
	Street       *string `json:"street"`
	City         *string `json:"city"`
	MemberTypeId *string `json:"memberTypeId"`
}

func (c ProfileChange) Apply(p *Profile) {
	if c.Avatar != nil {
		p.Avatar = *c.Avatar
	}
	if c.Sex != nil {
		p.Sex = *c.Sex
	}
	if c.Birthday != nil {
		p.Birthday = *c.Birthday
	}
	if c.Country != nil {
		p.Country = *c.Country
	}
	if c.Street != nil {
		p.Street = *c.Street
	}
	if c.City != nil {
		p.City = *c.City
	}
	if c.MemberTypeId != nil {
		p.MemberTypeId = *c.MemberTypeId
	}
}

type ProfileStore interface {
	FindMany(ctx context.Context, filters ...Filter) ([]Profile, error)

	FindOne(ctx context.Context, filters ...Filter) (Profile, bool, error)

	ById(ctx context.Context, id string) (Profile, error)

	// Create fails with ErrProfileExists when the user already owns a profile,
	// with ErrUnknownMemberType or ErrUnknownUser when a reference does not resolve.
	Create(ctx context.Context, profile Profile) (Profile, error)

	Change(ctx context.Context, id string, change ProfileChange) (Profile, error)

	Delete(ctx context.Context, id string) (Profile, error)
}
