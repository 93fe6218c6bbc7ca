// Package reviewsvc - thao tác comment trên suggestion.
// Comments nhúng trong document suggestion, thêm bằng $push để giữ thứ tự chèn.
package reviewsvc

import (
	"context"
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

// AddComment thêm comment vào suggestion và stamp lastUpdatedAt/lastUpdatedBy.
// Text rỗng (sau khi trim) bị từ chối với lỗi validation; suggestion không đổi.
func (s *SuggestionService) AddComment(ctx context.Context, suggestionId string, input *reviewdto.CommentCreateInput, reviewer string) (*reviewmodels.Suggestion, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			"Nội dung comment không được để trống",
			common.StatusBadRequest,
			nil,
		)
	}
	if reviewer == "" {
		reviewer = reviewmodels.DefaultReviewer
	}

	now := time.Now().UnixMilli()
	comment := reviewmodels.Comment{
		CommentId:  uuid.NewString(),
		Text:       text,
		Author:     reviewer,
		ReasonCode: input.ReasonCode,
		Timestamp:  now,
	}

	update := &basesvc.UpdateData{
		Set: map[string]interface{}{
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

	if logErr := s.eventSvc.LogComment(ctx, &updated, reviewer); logErr != nil {
		logger.GetErrorLogger().WithError(logErr).WithField("suggestionId", suggestionId).
			Error("Không ghi được review event cho comment")
	}

	logger.GetAuditLogger().WithFields(map[string]interface{}{
		"suggestionId": suggestionId,
		"commentId":    comment.CommentId,
		"reasonCode":   comment.ReasonCode,
		"reviewer":     reviewer,
	}).Info("Thêm comment vào suggestion")

	return &updated, nil
}

// ListComments trả về comments của suggestion theo thứ tự chèn.
func (s *SuggestionService) ListComments(ctx context.Context, suggestionId string) ([]reviewmodels.Comment, error) {
	sugg, err := s.GetBySuggestionId(ctx, suggestionId)
	if err != nil {
		return nil, err
	}
	if sugg.Comments == nil {
		return []reviewmodels.Comment{}, nil
	}
	return sugg.Comments, nil
}
