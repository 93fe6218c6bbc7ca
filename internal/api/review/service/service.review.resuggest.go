// Package reviewsvc - yêu cầu match lại (resuggest) và gợi ý thay thế.
package reviewsvc

import (
	"context"
	"sort"
	"strings"
	"time"

	basesvc "outlet_review/internal/api/base/service"
	reviewdto "outlet_review/internal/api/review/dto"
	reviewmodels "outlet_review/internal/api/review/models"
	"outlet_review/internal/common"
	"outlet_review/internal/logger"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

// Resuggest đưa suggestion về Pending để pipeline match chạy lại,
// kèm comment ghi lý do. Các field gợi ý hiện tại giữ nguyên cho tới khi
// pipeline sinh kết quả mới.
func (s *SuggestionService) Resuggest(ctx context.Context, suggestionId string, input *reviewdto.ResuggestInput, reviewer string) (*reviewmodels.Suggestion, error) {
	reason := strings.TrimSpace(input.Reason)
	if reason == "" {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			"Lý do resuggest không được để trống",
			common.StatusBadRequest,
			nil,
		)
	}
	if reviewer == "" {
		reviewer = reviewmodels.DefaultReviewer
	}

	existing, err := s.GetBySuggestionId(ctx, suggestionId)
	if err != nil {
		return nil, err
	}

	now := time.Now().UnixMilli()
	text := "Yêu cầu match lại: " + reason
	if c := strings.TrimSpace(input.Comment); c != "" {
		text += " — " + c
	}
	comment := reviewmodels.Comment{
		CommentId:  uuid.NewString(),
		Text:       text,
		Author:     reviewer,
		ReasonCode: reviewmodels.ReasonRequiresValidation,
		Timestamp:  now,
	}

	update := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status":        reviewmodels.StatusPending,
			"lastUpdatedAt": now,
			"lastUpdatedBy": reviewer,
		},
		Push: map[string]interface{}{
			"comments": comment,
		},
	}

	opts := mongoopts.FindOneAndUpdate().SetReturnDocument(mongoopts.After)
	updated, err := s.FindOneAndUpdate(ctx, bson.M{"suggestionId": suggestionId}, update, opts)
	if err != nil {
		return nil, err
	}

	if logErr := s.eventSvc.LogResuggest(ctx, &updated, existing.Status, reviewer); logErr != nil {
		logger.GetErrorLogger().WithError(logErr).WithField("suggestionId", suggestionId).
			Error("Không ghi được review event cho resuggest")
	}

	logger.GetAuditLogger().WithFields(map[string]interface{}{
		"suggestionId": suggestionId,
		"reason":       reason,
		"reviewer":     reviewer,
	}).Info("Yêu cầu match lại suggestion")

	return &updated, nil
}

// Alternatives trả về các suggestion khác trong cùng market, sắp theo matchScore
// giảm dần, dùng làm gợi ý thay thế trong dialog resuggest. searchTerm (nếu có)
// lọc theo substring không phân biệt hoa thường trên tên/địa chỉ outlet gợi ý.
func (s *SuggestionService) Alternatives(ctx context.Context, suggestionId string, searchTerm string, limit int) ([]reviewmodels.Suggestion, error) {
	if limit <= 0 {
		limit = 5
	}

	current, err := s.GetBySuggestionId(ctx, suggestionId)
	if err != nil {
		return nil, err
	}

	filter := bson.M{
		"marketId":     current.MarketId,
		"suggestionId": bson.M{"$ne": suggestionId},
	}
	items, err := s.Find(ctx, filter, nil)
	if err != nil {
		return nil, err
	}

	if term := strings.ToLower(strings.TrimSpace(searchTerm)); term != "" {
		filtered := make([]reviewmodels.Suggestion, 0, len(items))
		for i := range items {
			if strings.Contains(strings.ToLower(items[i].SuggestedOutletName), term) ||
				strings.Contains(strings.ToLower(items[i].SuggestedAddress), term) {
				filtered = append(filtered, items[i])
			}
		}
		items = filtered
	}

	sort.Slice(items, func(i, j int) bool { return items[i].MatchScore > items[j].MatchScore })
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}
