package social

import "context"

type User struct {
	Id                  string   `json:"id"`
	FirstName           string   `json:"firstName"`
	LastName            string   `json:"lastName"`
	Email               string   `json:"email"`
	SubscribedToUserIds []string `json:"subscribedToUserIds"`
}

func (u User) EntityId() string {
	return u.Id
}

func (u User) Field(key string) (interface{}, bool) {
	switch key {
	case KeyId:
		return u.Id, true
	case "firstName":
		return u.FirstName, true
	case "lastName":
		return u.LastName, true
	case "email":
		return u.Email, true
	case KeySubscribedToUserIds:
		return u.SubscribedToUserIds, true
	default:
		return nil, false
	}
}

// UserChange is a partial update, nil fields are left untouched.
type UserChange struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
}

func (c UserChange) Apply(u *User) {
	if c.FirstName != nil {
		u.FirstName = *c.FirstName
	}
	if c.LastName != nil {
		u.LastName = *c.LastName
	}
	if c.Email != nil {
		u.Email = *c.Email
	}
}

type UserStore interface {
	FindMany(ctx context.Context, filters ...Filter) ([]User, error)

	// FindOne returns the first user matching filters. Absence is reported
	// with false, not with an error.
	FindOne(ctx context.Context, filters ...Filter) (User, bool, error)

	ById(ctx context.Context, id string) (User, error)

	Create(ctx context.Context, user User) (User, error)

	Change(ctx context.Context, id string, change UserChange) (User, error)

	// Delete removes the user together with its posts, its profile and every
	// subscription entry that references it.
	Delete(ctx context.Context, id string) (User, error)

	// SubscribeTo adds followerId to the subscriber list of targetId and
	// returns the updated target.
	SubscribeTo(ctx context.Context, followerId string, targetId string) (User, error)

	// UnsubscribeFrom removes followerId from the subscriber list of targetId
	// and returns the updated target.
	UnsubscribeFrom(ctx context.Context, followerId string, targetId string) (User, error)
}
