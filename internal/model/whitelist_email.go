package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// WhitelistEmail is an email address pre-approved to become an Admin via
// Google sign-in. It is a signup gate, not a foreign key.
type WhitelistEmail struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string        `bson:"email"         json:"email"`
	CreatedAt time.Time     `bson:"created_at"    json:"-"`
	UpdatedAt time.Time     `bson:"updated_at"    json:"-"`
}
