package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Mentor is the primary listed entity of the directory. Categories and the
// social link are stored as raw ObjectID references and never expanded by
// the usecases; callers fetch related documents themselves.
type Mentor struct {
	ID         bson.ObjectID   `bson:"_id,omitempty"          json:"id"`
	FirstName  string          `bson:"first_name"             json:"firstName"`
	LastName   string          `bson:"last_name"              json:"lastName"`
	Email      string          `bson:"email"                  json:"email"`
	Avatar     *string         `bson:"avatar"                 json:"avatar"`
	Categories []bson.ObjectID `bson:"categories"             json:"categories"`
	SocialLink *bson.ObjectID  `bson:"social_links,omitempty" json:"socialLinks,omitempty"`
	CreatedAt  time.Time       `bson:"created_at"             json:"-"`
	UpdatedAt  time.Time       `bson:"updated_at"             json:"-"`
}

// HasCategory reports whether the given category id is already attached.
func (m *Mentor) HasCategory(id bson.ObjectID) bool {
	for _, c := range m.Categories {
		if c == id {
			return true
		}
	}
	return false
}
