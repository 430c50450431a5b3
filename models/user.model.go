package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered shopper
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password,omitempty" json:"-"`
	IsAdmin  bool               `bson:"is_admin" json:"isAdmin"`
}
