package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Category is a mentoring topic mentors can be listed under.
// Names are stored trimmed and lowercased.
type Category struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string        `bson:"name"          json:"name"`
	CreatedAt time.Time     `bson:"created_at"    json:"-"`
	UpdatedAt time.Time     `bson:"updated_at"    json:"-"`
}
