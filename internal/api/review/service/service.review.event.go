// Package reviewsvc - Service lịch sử thao tác review (review_events).
package reviewsvc

import (
	"context"
	"fmt"

	basesvc "outlet_review/internal/api/base/service"
	reviewmodels "outlet_review/internal/api/review/models"
	"outlet_review/internal/common"
	"outlet_review/internal/global"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

// ReviewEventService ghi và đọc lịch sử thao tác review. Append-only.
type ReviewEventService struct {
	*basesvc.BaseServiceMongoImpl[reviewmodels.ReviewEvent]
}

// NewReviewEventService tạo ReviewEventService mới.
func NewReviewEventService() (*ReviewEventService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ReviewEvents)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.ReviewEvents, common.ErrNotFound)
	}
	return &ReviewEventService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[reviewmodels.ReviewEvent](coll),
	}, nil
}

// LogStatusChange ghi event đổi trạng thái.
func (s *ReviewEventService) LogStatusChange(ctx context.Context, sugg *reviewmodels.Suggestion, fromStatus, toStatus, reviewer string) error {
	_, err := s.InsertOne(ctx, reviewmodels.ReviewEvent{
		EventId:      uuid.NewString(),
		SuggestionId: sugg.SuggestionId,
		MarketId:     sugg.MarketId,
		Action:       reviewmodels.EventStatusChange,
		FromStatus:   fromStatus,
		ToStatus:     toStatus,
		Reviewer:     reviewer,
	})
	return err
}

// LogComment ghi event thêm comment.
func (s *ReviewEventService) LogComment(ctx context.Context, sugg *reviewmodels.Suggestion, reviewer string) error {
	_, err := s.InsertOne(ctx, reviewmodels.ReviewEvent{
		EventId:      uuid.NewString(),
		SuggestionId: sugg.SuggestionId,
		MarketId:     sugg.MarketId,
		Action:       reviewmodels.EventComment,
		Reviewer:     reviewer,
	})
	return err
}

// LogResuggest ghi event yêu cầu match lại.
func (s *ReviewEventService) LogResuggest(ctx context.Context, sugg *reviewmodels.Suggestion, fromStatus, reviewer string) error {
	_, err := s.InsertOne(ctx, reviewmodels.ReviewEvent{
		EventId:      uuid.NewString(),
		SuggestionId: sugg.SuggestionId,
		MarketId:     sugg.MarketId,
		Action:       reviewmodels.EventResuggest,
		FromStatus:   fromStatus,
		ToStatus:     reviewmodels.StatusPending,
		Reviewer:     reviewer,
	})
	return err
}

// FindBySuggestionId trả về lịch sử của một suggestion, mới nhất trước.
func (s *ReviewEventService) FindBySuggestionId(ctx context.Context, suggestionId string, limit int64) ([]reviewmodels.ReviewEvent, error) {
	if limit <= 0 {
		limit = 100
	}
	opts := mongoopts.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)
	return s.Find(ctx, bson.M{"suggestionId": suggestionId}, opts)
}

// FindSince trả về toàn bộ event từ mốc thời gian (Unix ms) trở đi, cũ nhất trước.
func (s *ReviewEventService) FindSince(ctx context.Context, sinceMs int64) ([]reviewmodels.ReviewEvent, error) {
	opts := mongoopts.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	return s.Find(ctx, bson.M{"createdAt": bson.M{"$gte": sinceMs}}, opts)
}
