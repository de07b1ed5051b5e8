// Package model defines domain entities for the application.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the sole persisted entity: one document per unique email.
//
// ID, CreatedAt and UpdatedAt are assigned by the store on insert and are
// never client-settable. Name is a pointer because an absent name is distinct
// from an empty one; a nil Name is omitted from both the stored document and
// the JSON representation.
//
// The createdAt/updatedAt field names match the wire shape produced by the
// store's timestamp convention.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	Name      *string            `bson:"name,omitempty" json:"name,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
