package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// SocialLink holds a mentor's public profiles. Exactly one document may
// exist per mentor, enforced by a unique index on user_id.
type SocialLink struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Behance   *string       `bson:"behance"       json:"behance,omitempty"`
	Twitter   *string       `bson:"twitter"       json:"twitter,omitempty"`
	Instagram *string       `bson:"instagram"     json:"instagram,omitempty"`
	Website   *string       `bson:"website"       json:"website,omitempty"`
	UserID    bson.ObjectID `bson:"user_id"       json:"userId"`
	CreatedAt time.Time     `bson:"created_at"    json:"-"`
	UpdatedAt time.Time     `bson:"updated_at"    json:"-"`
}
