package dto

// DqStatistics thống kê chất lượng dữ liệu trên tập suggestion.
// Các percentage nằm trong [0, 1]; tập rỗng → tất cả bằng 0.
type DqStatistics struct {
	AvgSemanticSimilarity  float64 `json:"avgSemanticSimilarity"`
	HighDqPercentage       float64 `json:"highDqPercentage"`       // Tỉ lệ overallDqScore > 0.7
	LowDqFlaggedPercentage float64 `json:"lowDqFlaggedPercentage"` // Tỉ lệ overallDqScore < 0.4
	FinalizedRatio         float64 `json:"finalizedRatio"`         // Tỉ lệ Approved + Rejected
}

// FeedbackStatistics thống kê phản hồi review.
type FeedbackStatistics struct {
	ApprovedPercentage    float64 `json:"approvedPercentage"`
	RejectedPercentage    float64 `json:"rejectedPercentage"`
	FlaggedPercentage     float64 `json:"flaggedPercentage"`
	ResuggestedPercentage float64 `json:"resuggestedPercentage"` // Tỉ lệ suggestion từng bị yêu cầu match lại
	ValidatedPercentage   float64 `json:"validatedPercentage"`   // Tỉ lệ đã rời Pending
	AvgTimeToFeedbackDays float64 `json:"avgTimeToFeedbackDays"` // Trung bình createdAt → thao tác review đầu tiên
	AvgTimeToFinalizeDays float64 `json:"avgTimeToFinalizeDays"` // Trung bình createdAt → Approved/Rejected đầu tiên
}

// MarketBreakdownItem thống kê theo một market.
type MarketBreakdownItem struct {
	MarketId      string  `json:"marketId"`
	MarketName    string  `json:"marketName"`
	Total         int     `json:"total"`
	Pending       int     `json:"pending"`
	Approved      int     `json:"approved"`
	Rejected      int     `json:"rejected"`
	Flagged       int     `json:"flagged"`
	AvgMatchScore float64 `json:"avgMatchScore"`
}

// TimelinePoint số thao tác review trong một ngày.
type TimelinePoint struct {
	Date        string `json:"date"` // YYYY-MM-DD (UTC)
	Reviews     int    `json:"reviews"`
	Approved    int    `json:"approved"`
	Rejected    int    `json:"rejected"`
	Flagged     int    `json:"flagged"`
	Resuggested int    `json:"resuggested"`
}

// ReviewerCount số thao tác của một người review.
type ReviewerCount struct {
	Reviewer string `json:"reviewer"`
	Count    int    `json:"count"`
}

// ReviewerStats thống kê người review. ReviewsByUser sắp theo count giảm dần.
type ReviewerStats struct {
	ActiveReviewers int             `json:"activeReviewers"`
	ReviewsByUser   []ReviewerCount `json:"reviewsByUser"`
}

// DashboardMetrics gộp toàn bộ thống kê cho dashboard.
type DashboardMetrics struct {
	TotalSuggestions   int                   `json:"totalSuggestions"`
	AverageMatchScore  float64               `json:"averageMatchScore"` // 0 khi collection rỗng
	DqStatistics       DqStatistics          `json:"dqStatistics"`
	FeedbackStatistics FeedbackStatistics    `json:"feedbackStatistics"`
	MarketBreakdown    []MarketBreakdownItem `json:"marketBreakdown"`
	TimelineData       []TimelinePoint       `json:"timelineData"`
	ReviewerStats      ReviewerStats         `json:"reviewerStats"`
	GeneratedAt        int64                 `json:"generatedAt"` // Unix ms
}

// DashboardOverview là bản rút gọn cho thanh tổng quan.
type DashboardOverview struct {
	Total              int     `json:"total"`
	Pending            int     `json:"pending"`
	Approved           int     `json:"approved"`
	Rejected           int     `json:"rejected"`
	Flagged            int     `json:"flagged"`
	ApprovedPercentage float64 `json:"approvedPercentage"` // 0 khi collection rỗng
	AverageMatchScore  float64 `json:"averageMatchScore"`  // 0 khi collection rỗng
	ActiveReviewers    int     `json:"activeReviewers"`
}
