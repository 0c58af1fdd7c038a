package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a catalog entry. PublicID is the monotonically assigned integer
// id exposed to clients; the mongo ObjectID never leaves the service.
type Product struct {
	ObjectID  primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	PublicID  int64              `bson:"id" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Image     string             `bson:"image" json:"image"`
	Category  string             `bson:"category" json:"category"`
	NewPrice  float64            `bson:"new_price" json:"new_price"`
	OldPrice  float64            `bson:"old_price" json:"old_price"`
	Date      time.Time          `bson:"date" json:"date"`
	Available bool               `bson:"available" json:"available"`
}
