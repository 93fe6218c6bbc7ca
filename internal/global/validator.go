package global

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	// Khởi tạo validator
	Validate = validator.New()

	// Đăng ký các custom validator
	_ = Validate.RegisterValidation("no_xss", validateNoXSS)
	_ = Validate.RegisterValidation("review_status", validateReviewStatus)
	_ = Validate.RegisterValidation("match_category", validateMatchCategory)
	_ = Validate.RegisterValidation("reason_code", validateReasonCode)
}

// validateNoXSS kiểm tra XSS
func validateNoXSS(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"onclick=",
		"onmouseover=",
		"eval(",
		"document.cookie",
		"document.write",
		"innerHTML",
		"fromCharCode",
		"window.location",
		"<iframe",
		"<object",
		"<embed",
	}

	value = strings.ToLower(value)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}

// validateReviewStatus kiểm tra trạng thái review hợp lệ
func validateReviewStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "Pending", "Approved", "Rejected", "Flagged":
		return true
	}
	return false
}

// validateMatchCategory kiểm tra phân loại match hợp lệ
func validateMatchCategory(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "High", "Medium", "Low":
		return true
	}
	return false
}

// validateReasonCode kiểm tra mã lý do comment hợp lệ
func validateReasonCode(fl validator.FieldLevel) bool {
	// Rỗng là hợp lệ — reasonCode là optional, dùng kèm omitempty
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch value {
	case "Mismatch", "Incomplete Data", "Duplicate", "Requires Validation", "Other":
		return true
	}
	return false
}
