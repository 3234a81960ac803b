package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Session is a server-side login session. The browser cookie carries only
// the opaque token; the admin is re-fetched by id on every request.
type Session struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	Token     string        `bson:"token"`
	AdminID   bson.ObjectID `bson:"admin_id"`
	ExpiresAt time.Time     `bson:"expires_at"`
	CreatedAt time.Time     `bson:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at"`
}
