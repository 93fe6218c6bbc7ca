// Package reviewsvc - Service suggestion review (review_suggestions).
package reviewsvc

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	basemodels "outlet_review/internal/api/base/models"
	basesvc "outlet_review/internal/api/base/service"
	reviewdto "outlet_review/internal/api/review/dto"
	reviewmodels "outlet_review/internal/api/review/models"
	"outlet_review/internal/common"
	"outlet_review/internal/global"
	"outlet_review/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

// SuggestionService xử lý danh sách, lọc và chuyển trạng thái suggestion.
type SuggestionService struct {
	*basesvc.BaseServiceMongoImpl[reviewmodels.Suggestion]
	eventSvc *ReviewEventService
}

// NewSuggestionService tạo SuggestionService mới.
func NewSuggestionService() (*SuggestionService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Suggestions)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Suggestions, common.ErrNotFound)
	}
	eventSvc, err := NewReviewEventService()
	if err != nil {
		return nil, err
	}
	return &SuggestionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[reviewmodels.Suggestion](coll),
		eventSvc:             eventSvc,
	}, nil
}

// MatchesFilter kiểm tra suggestion có khớp điều kiện lọc không.
// Các field có giá trị kết hợp theo AND; searchTerm so khớp substring
// không phân biệt hoa thường trên 4 field tên/địa chỉ.
func MatchesFilter(s *reviewmodels.Suggestion, f *reviewdto.SuggestionFilterInput) bool {
	if f == nil {
		return true
	}
	if f.Status != "" && s.Status != f.Status {
		return false
	}
	if f.MatchCategory != "" && s.MatchCategory != f.MatchCategory {
		return false
	}
	if f.MarketId != "" && s.MarketId != f.MarketId {
		return false
	}
	if f.SearchTerm != "" {
		term := strings.ToLower(f.SearchTerm)
		if !strings.Contains(strings.ToLower(s.SourceName), term) &&
			!strings.Contains(strings.ToLower(s.SuggestedOutletName), term) &&
			!strings.Contains(strings.ToLower(s.SourceAddress), term) &&
			!strings.Contains(strings.ToLower(s.SuggestedAddress), term) {
			return false
		}
	}
	return true
}

// BuildListFilter dựng filter Mongo từ điều kiện lọc. includeSearch bật thêm
// khối $or regex cho searchTerm (substring, không phân biệt hoa thường) để
// đường phân trang lọc hoàn toàn tại DB và total/totalPage phản ánh đúng filter.
func BuildListFilter(f *reviewdto.SuggestionFilterInput, includeSearch bool) bson.M {
	filter := bson.M{}
	if f == nil {
		return filter
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.MatchCategory != "" {
		filter["matchCategory"] = f.MatchCategory
	}
	if f.MarketId != "" {
		filter["marketId"] = f.MarketId
	}
	if includeSearch && f.SearchTerm != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(f.SearchTerm), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"sourceName": re},
			bson.M{"suggestedOutletName": re},
			bson.M{"sourceAddress": re},
			bson.M{"suggestedAddress": re},
		}
	}
	return filter
}

// List trả về danh sách suggestion theo filter, giữ nguyên thứ tự insert.
// Status/category/market lọc ở DB; searchTerm lọc in-memory để đồng nhất
// với MatchesFilter (case-insensitive substring trên 4 field).
func (s *SuggestionService) List(ctx context.Context, f *reviewdto.SuggestionFilterInput) ([]reviewmodels.Suggestion, error) {
	opts := mongoopts.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	items, err := s.Find(ctx, BuildListFilter(f, false), opts)
	if err != nil {
		return nil, err
	}

	if f == nil || f.SearchTerm == "" {
		return items, nil
	}

	filtered := make([]reviewmodels.Suggestion, 0, len(items))
	for i := range items {
		if MatchesFilter(&items[i], f) {
			filtered = append(filtered, items[i])
		}
	}
	return filtered, nil
}

// ListPage trả về một trang suggestion theo filter, thứ tự insert.
// Khác với List, searchTerm ở đây lọc bằng regex ngay tại DB.
func (s *SuggestionService) ListPage(ctx context.Context, f *reviewdto.SuggestionFilterInput, page, limit int64) (*basemodels.PaginateResult[reviewmodels.Suggestion], error) {
	opts := mongoopts.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	return s.FindWithPagination(ctx, BuildListFilter(f, true), page, limit, opts)
}

// SuggestionExists kiểm tra suggestion có tồn tại theo mã nghiệp vụ không.
func (s *SuggestionService) SuggestionExists(ctx context.Context, suggestionId string) (bool, error) {
	return s.DocumentExists(ctx, bson.M{"suggestionId": suggestionId})
}

// GetBySuggestionId tìm suggestion theo mã nghiệp vụ.
func (s *SuggestionService) GetBySuggestionId(ctx context.Context, suggestionId string) (*reviewmodels.Suggestion, error) {
	item, err := s.FindOne(ctx, bson.M{"suggestionId": suggestionId}, nil)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateStatus đổi trạng thái một suggestion trong một thao tác atomic,
// stamp lastUpdatedAt/lastUpdatedBy và ghi review_events.
func (s *SuggestionService) UpdateStatus(ctx context.Context, suggestionId string, newStatus string, reviewer string) (*reviewmodels.Suggestion, error) {
	if !reviewmodels.IsValidStatus(newStatus) {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Trạng thái không hợp lệ: %s", newStatus),
			common.StatusBadRequest,
			nil,
		)
	}
	if reviewer == "" {
		reviewer = reviewmodels.DefaultReviewer
	}

	// Lấy trạng thái cũ để ghi event
	existing, err := s.GetBySuggestionId(ctx, suggestionId)
	if err != nil {
		return nil, err
	}

	now := time.Now().UnixMilli()
	update := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status":        newStatus,
			"lastUpdatedAt": now,
			"lastUpdatedBy": reviewer,
		},
	}

	opts := mongoopts.FindOneAndUpdate().SetReturnDocument(mongoopts.After)
	updated, err := s.FindOneAndUpdate(ctx, bson.M{"suggestionId": suggestionId}, update, opts)
	if err != nil {
		return nil, err
	}

	// Ghi lịch sử thao tác — lỗi log event không chặn kết quả chính
	if logErr := s.eventSvc.LogStatusChange(ctx, &updated, existing.Status, newStatus, reviewer); logErr != nil {
		logger.GetErrorLogger().WithError(logErr).WithField("suggestionId", suggestionId).
			Error("Không ghi được review event cho status change")
	}

	logger.GetAuditLogger().WithFields(map[string]interface{}{
		"suggestionId": suggestionId,
		"fromStatus":   existing.Status,
		"toStatus":     newStatus,
		"reviewer":     reviewer,
	}).Info("Đổi trạng thái suggestion")

	return &updated, nil
}
