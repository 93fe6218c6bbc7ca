package dto

// CommentCreateInput dữ liệu thêm comment vào suggestion.
// Text không được rỗng sau khi trim; ReasonCode là optional.
type CommentCreateInput struct {
	Text       string `json:"text" validate:"required,no_xss"`
	ReasonCode string `json:"reasonCode,omitempty" validate:"omitempty,reason_code"`
}
