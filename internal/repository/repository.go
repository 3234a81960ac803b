// Package repository contains one interface and one MongoDB implementation
// per collection. Constructors create the collection's indexes and treat an
// index-creation failure as fatal; uniqueness is enforced by unique indexes,
// not by pre-checks.
package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ErrInvalidID is returned when a caller-supplied id is not a valid
// ObjectID hex string.
var ErrInvalidID = errors.New("invalid id")

func objectIDFromHex(id string) (bson.ObjectID, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, ErrInvalidID
	}
	return objectID, nil
}
