// Package models - Suggestion thuộc domain review (review_suggestions).
// Một suggestion là một cặp outlet nguồn ↔ outlet gợi ý kèm điểm match, DQ metrics
// và trạng thái review. Comments được nhúng trong document suggestion.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DqMetrics chứa các chỉ số chất lượng dữ liệu của một suggestion.
// Tất cả các giá trị nằm trong [0, 1].
type DqMetrics struct {
	SemanticSimilarityScore float64 `json:"semanticSimilarityScore" bson:"semanticSimilarityScore"` // Độ tương đồng ngữ nghĩa tên/địa chỉ
	NullFieldsRatio         float64 `json:"nullFieldsRatio" bson:"nullFieldsRatio"`                 // Tỉ lệ field bị thiếu
	PatternConsistencyIndex float64 `json:"patternConsistencyIndex" bson:"patternConsistencyIndex"` // Độ nhất quán format dữ liệu
	OverallDqScore          float64 `json:"overallDqScore" bson:"overallDqScore"`                   // Điểm DQ tổng hợp
}

// SalesContribution chứa đóng góp doanh số của outlet nguồn (nếu có dữ liệu sales).
type SalesContribution struct {
	Value       float64 `json:"value" bson:"value"`             // Doanh số (USD)
	Volume      int     `json:"volume" bson:"volume"`           // Số đơn vị bán
	Rank        int     `json:"rank" bson:"rank"`               // Hạng trong market
	IsHighValue bool    `json:"isHighValue" bson:"isHighValue"` // rank <= 20
}

// GeoLocation chứa tọa độ của outlet nguồn và outlet gợi ý.
type GeoLocation struct {
	SourceLatitude     float64 `json:"sourceLatitude" bson:"sourceLatitude"`
	SourceLongitude    float64 `json:"sourceLongitude" bson:"sourceLongitude"`
	SuggestedLatitude  float64 `json:"suggestedLatitude" bson:"suggestedLatitude"`
	SuggestedLongitude float64 `json:"suggestedLongitude" bson:"suggestedLongitude"`
}

// RevenueShare chứa tỉ trọng doanh thu của outlet gợi ý (nếu có).
type RevenueShare struct {
	Percentage     float64 `json:"percentage" bson:"percentage"`         // % doanh thu trong market
	MonthlyAverage float64 `json:"monthlyAverage" bson:"monthlyAverage"` // Doanh thu trung bình tháng (USD)
	YearlyTotal    float64 `json:"yearlyTotal" bson:"yearlyTotal"`       // Tổng doanh thu năm (USD)
	Trend          string  `json:"trend" bson:"trend"`                   // up | down | stable
}

// Comment là một ghi chú review nhúng trong suggestion.
// CommentId là UUID, sinh khi thêm comment.
type Comment struct {
	CommentId  string `json:"id" bson:"commentId"`
	Text       string `json:"text" bson:"text"`
	Author     string `json:"author" bson:"author"`
	ReasonCode string `json:"reasonCode,omitempty" bson:"reasonCode,omitempty"`
	Timestamp  int64  `json:"timestamp" bson:"timestamp"` // Unix ms
}

// Suggestion lưu một cặp match outlet cần review (review_suggestions).
type Suggestion struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	// Identity
	SuggestionId string `json:"suggestionId" bson:"suggestionId" index:"unique"` // Mã nghiệp vụ, dạng "sugg-N"

	// Outlet nguồn (hệ thống nội bộ)
	SourceName    string `json:"sourceName" bson:"sourceName"`
	SourceAddress string `json:"sourceAddress" bson:"sourceAddress"`

	// Outlet gợi ý (nguồn dữ liệu ngoài)
	SuggestedOutletName string `json:"suggestedOutletName" bson:"suggestedOutletName"`
	SuggestedAddress    string `json:"suggestedAddress" bson:"suggestedAddress"`

	// Kết quả match
	MatchScore    float64 `json:"matchScore" bson:"matchScore"`
	GeoDistance   float64 `json:"geoDistance" bson:"geoDistance"` // Khoảng cách km giữa 2 outlet
	MatchCategory string  `json:"matchCategory" bson:"matchCategory" index:"single:1"`

	// Trạng thái review
	Status        string `json:"status" bson:"status" index:"single:1,compound:review_sugg_market_status"`
	MarketId      string `json:"marketId" bson:"marketId" index:"single:1,compound:review_sugg_market_status"`
	LastUpdatedBy string `json:"lastUpdatedBy" bson:"lastUpdatedBy"`
	LastUpdatedAt int64  `json:"lastUpdatedAt" bson:"lastUpdatedAt"` // Unix ms — chỉ stamp khi có thao tác review

	// Comments nhúng, thứ tự chèn = thứ tự mảng
	Comments []Comment `json:"comments" bson:"comments"`

	// Metrics
	DqMetrics         DqMetrics          `json:"dqMetrics" bson:"dqMetrics"`
	SalesContribution *SalesContribution `json:"salesContribution,omitempty" bson:"salesContribution,omitempty"`
	GeoLocation       *GeoLocation       `json:"geoLocation,omitempty" bson:"geoLocation,omitempty"`
	RevenueShare      *RevenueShare      `json:"revenueShare,omitempty" bson:"revenueShare,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// IsFinalized cho biết suggestion đã được chốt (Approved hoặc Rejected).
func (s *Suggestion) IsFinalized() bool {
	return s.Status == StatusApproved || s.Status == StatusRejected
}
