package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product represents a catalog product
type Product struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name         string             `bson:"name" json:"name"`
	Slug         string             `bson:"slug" json:"slug"`
	Category     string             `bson:"category" json:"category"`
	Image        string             `bson:"image" json:"image"`
	Price        float64            `bson:"price" json:"price"`
	Brand        string             `bson:"brand" json:"brand"`
	Rating       float64            `bson:"rating" json:"rating"`
	NumReviews   int                `bson:"num_reviews" json:"numReviews"`
	CountInStock int                `bson:"count_in_stock" json:"countInStock"`
	Description  string             `bson:"description" json:"description"`
}
