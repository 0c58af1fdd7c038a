package models

import (
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartSlots is the number of zeroed cart entries seeded at signup.
const CartSlots = 300

// User represents an account document. CartData maps a product slot index
// (stringified, since bson document keys are strings) to a quantity; it is
// the only field that mutates after signup.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password" json:"-"`
	CartData     map[string]int     `bson:"cartData" json:"cartData"`
	Date         time.Time          `bson:"date" json:"date"`
}

// NewCartData returns a cart with every slot initialized to zero.
func NewCartData() map[string]int {
	cart := make(map[string]int, CartSlots)
	for i := 0; i < CartSlots; i++ {
		cart[strconv.Itoa(i)] = 0
	}
	return cart
}
