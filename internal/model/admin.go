package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Admin represents a platform administrator. Admins are created exclusively
// through the Google sign-in flow; the whitelist decides who may sign up.
type Admin struct {
	ID           bson.ObjectID `bson:"_id,omitempty"  json:"id"`
	DisplayName  string        `bson:"display_name"   json:"displayName"`
	Email        string        `bson:"email"          json:"email"`
	Avatar       string        `bson:"avatar"         json:"avatar,omitempty"`
	IsSuperAdmin bool          `bson:"is_super_admin" json:"isSuperAdmin"`
	GoogleID     string        `bson:"google_id"      json:"-"`
	Confirmed    bool          `bson:"confirmed"      json:"confirmed"`
	CreatedAt    time.Time     `bson:"created_at"     json:"-"`
	UpdatedAt    time.Time     `bson:"updated_at"     json:"-"`
}
