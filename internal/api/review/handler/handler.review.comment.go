// Package reviewhdl - Handler comment trên suggestion.
package reviewhdl

import (
	basehdl "outlet_review/internal/api/base/handler"
	reviewdto "outlet_review/internal/api/review/dto"
	"outlet_review/internal/common"
	"outlet_review/internal/global"

	"github.com/gofiber/fiber/v3"
)

// HandleAddComment xử lý POST /suggestions/:suggestionId/comments.
func (h *SuggestionHandler) HandleAddComment(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input reviewdto.CommentCreateInput
		if err := c.Bind().Body(&input); err != nil {
			basehdl.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		if err := global.Validate.Struct(&input); err != nil {
			basehdl.HandleResponse(c, nil, validationError(err))
			return nil
		}

		reviewer := reviewerFromRequest(c)
		updated, err := h.SuggestionSvc.AddComment(c.Context(), c.Params("suggestionId"), &input, reviewer)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleCreatedResponse(c, updated)
		return nil
	})
}

// HandleListComments xử lý GET /suggestions/:suggestionId/comments.
// Comments trả về theo thứ tự chèn.
func (h *SuggestionHandler) HandleListComments(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		comments, err := h.SuggestionSvc.ListComments(c.Context(), c.Params("suggestionId"))
		basehdl.HandleResponse(c, comments, err)
		return nil
	})
}
