// Package models - các model thuộc domain review (review_suggestions, review_markets, review_events).
package models

// Trạng thái review của một suggestion.
const (
	StatusPending  = "Pending"  // Chưa review
	StatusApproved = "Approved" // Đã duyệt
	StatusRejected = "Rejected" // Đã từ chối
	StatusFlagged  = "Flagged"  // Đánh dấu cần xem xét thêm
)

// AllStatuses liệt kê các trạng thái hợp lệ, dùng cho validate và thống kê.
var AllStatuses = []string{StatusPending, StatusApproved, StatusRejected, StatusFlagged}

// IsValidStatus kiểm tra giá trị status hợp lệ.
func IsValidStatus(s string) bool {
	for _, v := range AllStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Phân loại độ tin cậy của match theo matchScore.
const (
	CategoryHigh   = "High"
	CategoryMedium = "Medium"
	CategoryLow    = "Low"
)

// Ngưỡng phân loại matchScore. Category được chốt tại thời điểm sinh suggestion,
// không tính lại khi đọc — pipeline sinh suggestion là nơi duy nhất gọi CategoryForScore.
const (
	HighScoreThreshold   = 0.8
	MediumScoreThreshold = 0.5
)

// CategoryForScore trả về phân loại cho một matchScore.
// score > 0.8 → High, score > 0.5 → Medium, còn lại → Low.
func CategoryForScore(score float64) string {
	switch {
	case score > HighScoreThreshold:
		return CategoryHigh
	case score > MediumScoreThreshold:
		return CategoryMedium
	default:
		return CategoryLow
	}
}

// Mã lý do gắn kèm comment khi review.
const (
	ReasonMismatch           = "Mismatch"
	ReasonIncompleteData     = "Incomplete Data"
	ReasonDuplicate          = "Duplicate"
	ReasonRequiresValidation = "Requires Validation"
	ReasonOther              = "Other"
)

// AllReasonCodes liệt kê các mã lý do hợp lệ.
var AllReasonCodes = []string{
	ReasonMismatch,
	ReasonIncompleteData,
	ReasonDuplicate,
	ReasonRequiresValidation,
	ReasonOther,
}

// Loại thao tác ghi vào review_events.
const (
	EventStatusChange = "status_change" // Đổi trạng thái review
	EventComment      = "comment"       // Thêm comment
	EventResuggest    = "resuggest"     // Yêu cầu match lại
)

// Xu hướng revenue share của outlet.
const (
	TrendUp     = "up"
	TrendDown   = "down"
	TrendStable = "stable"
)

// Ngưỡng phân loại DQ score cho thống kê dashboard.
const (
	HighDqThreshold = 0.7 // overallDqScore > 0.7 được coi là chất lượng cao
	LowDqThreshold  = 0.4 // overallDqScore < 0.4 được coi là chất lượng thấp
)

// DefaultReviewer dùng khi request không mang header định danh người review.
const DefaultReviewer = "Current User"
