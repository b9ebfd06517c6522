package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role groups a set of permission strings under a name, e.g. "manager".
type Role struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Permissions []string           `bson:"permissions" json:"permissions"`
}

// User is a back-office account that can authenticate and act on staff data.
// The password hash never leaves the server.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
	Role         primitive.ObjectID `bson:"role" json:"role"`
	CreatedAt    time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
}
