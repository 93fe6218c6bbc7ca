// Package models - Market thuộc domain review (review_markets).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Market là một thị trường (quốc gia) chứa các suggestion.
type Market struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	MarketId string `json:"marketId" bson:"marketId" index:"unique"` // Mã nghiệp vụ, dạng "m1"
	Name     string `json:"name" bson:"name"`
	Country  string `json:"country" bson:"country"` // Mã ISO 3166-1 alpha-2

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
