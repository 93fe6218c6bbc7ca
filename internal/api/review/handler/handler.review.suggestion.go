// Package reviewhdl - Handler suggestion review.
package reviewhdl

import (
	"fmt"
	"strconv"

	basehdl "outlet_review/internal/api/base/handler"
	reviewdto "outlet_review/internal/api/review/dto"
	reviewmodels "outlet_review/internal/api/review/models"
	reviewsvc "outlet_review/internal/api/review/service"
	"outlet_review/internal/common"
	"outlet_review/internal/global"
	"outlet_review/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// SuggestionHandler xử lý các route suggestion.
type SuggestionHandler struct {
	SuggestionSvc *reviewsvc.SuggestionService
	EventSvc      *reviewsvc.ReviewEventService
}

// NewSuggestionHandler tạo SuggestionHandler mới.
func NewSuggestionHandler() (*SuggestionHandler, error) {
	svc, err := reviewsvc.NewSuggestionService()
	if err != nil {
		return nil, fmt.Errorf("tạo SuggestionService: %w", err)
	}
	eventSvc, err := reviewsvc.NewReviewEventService()
	if err != nil {
		return nil, fmt.Errorf("tạo ReviewEventService: %w", err)
	}
	return &SuggestionHandler{SuggestionSvc: svc, EventSvc: eventSvc}, nil
}

// reviewerFromRequest lấy tên người review từ header X-Reviewer.
// Không có header → dùng định danh mặc định (chưa có hệ thống đăng nhập).
func reviewerFromRequest(c fiber.Ctx) string {
	if reviewer := c.Get("X-Reviewer"); reviewer != "" {
		return reviewer
	}
	return reviewmodels.DefaultReviewer
}

// validationError chuẩn hóa lỗi validate input thành common.Error.
func validationError(err error) error {
	return common.NewError(
		common.ErrCodeValidationInput,
		fmt.Sprintf("Dữ liệu không hợp lệ: %v", err),
		common.StatusBadRequest,
		nil,
	)
}

// HandleListSuggestions xử lý GET /suggestions.
// Query: status, matchCategory, market, q — kết hợp theo AND.
// Có query page thì trả về kết quả phân trang thay vì mảng đầy đủ.
func (h *SuggestionHandler) HandleListSuggestions(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		filter := reviewdto.SuggestionFilterInput{
			Status:        c.Query("status"),
			MatchCategory: c.Query("matchCategory"),
			MarketId:      c.Query("market"),
			SearchTerm:    c.Query("q"),
		}
		if err := global.Validate.Struct(&filter); err != nil {
			basehdl.HandleResponse(c, nil, validationError(err))
			return nil
		}

		if pageStr := c.Query("page"); pageStr != "" {
			page, err := strconv.ParseInt(pageStr, 10, 64)
			if err != nil || page < 1 {
				basehdl.HandleResponse(c, nil, common.ErrInvalidInput)
				return nil
			}
			limit := int64(20)
			if s := c.Query("limit"); s != "" {
				if n, err := strconv.ParseInt(s, 10, 64); err == nil && n > 0 {
					limit = n
				}
			}
			result, err := h.SuggestionSvc.ListPage(c.Context(), &filter, page, limit)
			basehdl.HandleResponse(c, result, err)
			return nil
		}

		items, err := h.SuggestionSvc.List(c.Context(), &filter)
		basehdl.HandleResponse(c, items, err)
		return nil
	})
}

// HandleGetSuggestion xử lý GET /suggestions/:suggestionId.
func (h *SuggestionHandler) HandleGetSuggestion(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		item, err := h.SuggestionSvc.GetBySuggestionId(c.Context(), c.Params("suggestionId"))
		basehdl.HandleResponse(c, item, err)
		return nil
	})
}

// HandleUpdateStatus xử lý PATCH /suggestions/:suggestionId/status.
func (h *SuggestionHandler) HandleUpdateStatus(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input reviewdto.StatusUpdateInput
		if err := c.Bind().Body(&input); err != nil {
			basehdl.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		if err := global.Validate.Struct(&input); err != nil {
			basehdl.HandleResponse(c, nil, validationError(err))
			return nil
		}

		reviewer := reviewerFromRequest(c)
		updated, err := h.SuggestionSvc.UpdateStatus(c.Context(), c.Params("suggestionId"), input.Status, reviewer)
		if err != nil {
			logger.WithRequest(c).WithError(err).Warn("Đổi trạng thái suggestion thất bại")
		}
		basehdl.HandleResponse(c, updated, err)
		return nil
	})
}

// HandleBulkStatus xử lý POST /suggestions/bulk-status.
// Mỗi suggestion được xử lý độc lập; response luôn 200 với kết quả từng item.
func (h *SuggestionHandler) HandleBulkStatus(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input reviewdto.BulkStatusUpdateInput
		if err := c.Bind().Body(&input); err != nil {
			basehdl.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		if err := global.Validate.Struct(&input); err != nil {
			basehdl.HandleResponse(c, nil, validationError(err))
			return nil
		}

		reviewer := reviewerFromRequest(c)
		result, err := h.SuggestionSvc.BulkUpdateStatus(c.Context(), &input, reviewer)
		basehdl.HandleResponse(c, result, err)
		return nil
	})
}

// HandleResuggest xử lý POST /suggestions/:suggestionId/resuggest.
func (h *SuggestionHandler) HandleResuggest(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input reviewdto.ResuggestInput
		if err := c.Bind().Body(&input); err != nil {
			basehdl.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		if err := global.Validate.Struct(&input); err != nil {
			basehdl.HandleResponse(c, nil, validationError(err))
			return nil
		}

		reviewer := reviewerFromRequest(c)
		updated, err := h.SuggestionSvc.Resuggest(c.Context(), c.Params("suggestionId"), &input, reviewer)
		basehdl.HandleResponse(c, updated, err)
		return nil
	})
}

// HandleListEvents xử lý GET /suggestions/:suggestionId/events.
// Lịch sử thao tác review của suggestion, mới nhất trước. Query: limit (mặc định 100).
func (h *SuggestionHandler) HandleListEvents(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		suggestionId := c.Params("suggestionId")
		// Đảm bảo suggestion tồn tại để trả 404 thay vì mảng rỗng
		exists, err := h.SuggestionSvc.SuggestionExists(c.Context(), suggestionId)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		if !exists {
			basehdl.HandleResponse(c, nil, common.ErrNotFound)
			return nil
		}

		limit := int64(100)
		if s := c.Query("limit"); s != "" {
			if n, err := strconv.ParseInt(s, 10, 64); err == nil && n > 0 {
				limit = n
			}
		}
		items, err := h.EventSvc.FindBySuggestionId(c.Context(), suggestionId, limit)
		basehdl.HandleResponse(c, items, err)
		return nil
	})
}

// HandleAlternatives xử lý GET /suggestions/:suggestionId/alternatives.
// Query: q (lọc theo tên/địa chỉ outlet gợi ý), limit (mặc định 5).
func (h *SuggestionHandler) HandleAlternatives(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		limit := 5
		if s := c.Query("limit"); s != "" {
			if n, err := strconv.Atoi(s); err == nil && n > 0 {
				limit = n
			}
		}
		items, err := h.SuggestionSvc.Alternatives(c.Context(), c.Params("suggestionId"), c.Query("q"), limit)
		basehdl.HandleResponse(c, items, err)
		return nil
	})
}
