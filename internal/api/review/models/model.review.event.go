// Package models - ReviewEvent thuộc domain review (review_events).
// Lịch sử thao tác review, nguồn dữ liệu cho timeline và thống kê thời gian phản hồi.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReviewEvent ghi lại một thao tác review trên suggestion (review_events).
// Append-only, không update/delete.
type ReviewEvent struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	EventId      string `json:"eventId" bson:"eventId" index:"unique"` // UUID
	SuggestionId string `json:"suggestionId" bson:"suggestionId" index:"single:1,compound:review_event_sugg_created"`
	MarketId     string `json:"marketId" bson:"marketId"`
	Action       string `json:"action" bson:"action"` // status_change | comment | resuggest
	FromStatus   string `json:"fromStatus,omitempty" bson:"fromStatus,omitempty"`
	ToStatus     string `json:"toStatus,omitempty" bson:"toStatus,omitempty"`
	Reviewer     string `json:"reviewer" bson:"reviewer"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:-1,compound:review_event_sugg_created"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
