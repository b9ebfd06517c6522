package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Staff describes one employee tracked by the incentives program.
type Staff struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Position  string             `bson:"position,omitempty" json:"position,omitempty"`
	Active    bool               `bson:"active" json:"active"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
}
