package social

import "context"

type Post struct {
	Id      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	UserId  string `json:"userId"`
}

func (p Post) EntityId() string {
	return p.Id
}

func (p Post) Field(key string) (interface{}, bool) {
	switch key {
	case KeyId:
		return p.Id, true
	case "title":
		return p.Title, true
	case "content":
		return p.Content, true
	case KeyUserId:
		return p.UserId, true
	default:
		return nil, false
	}
}

type PostChange struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func (c PostChange) Apply(p *Post) {
	if c.Title != nil {
		p.Title = *c.Title
	}
	if c.Content != nil {
		p.Content = *c.Content
	}
}

type PostStore interface {
	FindMany(ctx context.Context, filters ...Filter) ([]Post, error)

	FindOne(ctx context.Context, filters ...Filter) (Post, bool, error)

	ById(ctx context.Context, id string) (Post, error)

	// Create fails with ErrUnknownUser when post.UserId does not name a user.
	Create(ctx context.Context, post Post) (Post, error)

	Change(ctx context.Context, id string, change PostChange) (Post, error)

	Delete(ctx context.Context, id string) (Post, error)
}
