package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// File records an asset uploaded to the blob store. The document is written
// only after the remote upload has succeeded.
type File struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	PublicID  string        `bson:"public_id"     json:"publicId"`
	URL       string        `bson:"url"           json:"url"`
	MimeType  string        `bson:"mime_type"     json:"mimeType"`
	CreatedAt time.Time     `bson:"created_at"    json:"-"`
	UpdatedAt time.Time     `bson:"updated_at"    json:"-"`
}
