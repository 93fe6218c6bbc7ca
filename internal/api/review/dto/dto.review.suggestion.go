// Package dto - DTO cho domain review (suggestion, comment, dashboard).
package dto

// SuggestionFilterInput điều kiện lọc danh sách suggestion.
// Các field rỗng bị bỏ qua; các field có giá trị kết hợp theo AND.
type SuggestionFilterInput struct {
	Status        string `query:"status" validate:"omitempty,review_status"`
	MatchCategory string `query:"matchCategory" validate:"omitempty,match_category"`
	MarketId      string `query:"market"`
	SearchTerm    string `query:"q" validate:"omitempty,no_xss"`
}

// IsEmpty cho biết filter không có điều kiện nào.
func (f *SuggestionFilterInput) IsEmpty() bool {
	return f.Status == "" && f.MatchCategory == "" && f.MarketId == "" && f.SearchTerm == ""
}

// StatusUpdateInput dữ liệu đổi trạng thái một suggestion.
type StatusUpdateInput struct {
	Status string `json:"status" validate:"required,review_status"`
}

// BulkStatusUpdateInput dữ liệu đổi trạng thái hàng loạt.
type BulkStatusUpdateInput struct {
	SuggestionIds []string `json:"suggestionIds" validate:"required,min=1,dive,required"`
	Status        string   `json:"status" validate:"required,review_status"`
}

// BulkItemResult kết quả thao tác trên một suggestion trong bulk.
type BulkItemResult struct {
	SuggestionId string `json:"suggestionId"`
	Success      bool   `json:"success"`
	Error        string `json:"error,omitempty"`
}

// BulkResult kết quả tổng hợp của một thao tác bulk.
type BulkResult struct {
	Total     int              `json:"total"`
	Succeeded int              `json:"succeeded"`
	Failed    int              `json:"failed"`
	Items     []BulkItemResult `json:"items"`
}

// ResuggestInput dữ liệu yêu cầu match lại một suggestion.
type ResuggestInput struct {
	Reason  string `json:"reason" validate:"required,no_xss"`
	Comment string `json:"comment,omitempty" validate:"omitempty,no_xss"`
}
