// Package reviewsvc - Test các hàm tính thống kê dashboard.
package reviewsvc

import (
	"math"
	"testing"
	"time"

	reviewmodels "outlet_review/internal/api/review/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeDqStatistics_EmptyInput(t *testing.T) {
	stats := ComputeDqStatistics(nil)
	if stats.AvgSemanticSimilarity != 0 || stats.HighDqPercentage != 0 ||
		stats.LowDqFlaggedPercentage != 0 || stats.FinalizedRatio != 0 {
		t.Errorf("Tập rỗng phải trả về toàn 0 (không NaN), got %+v", stats)
	}
}

func TestComputeDqStatistics_Values(t *testing.T) {
	suggestions := []reviewmodels.Suggestion{
		{
			Status:    reviewmodels.StatusApproved,
			DqMetrics: reviewmodels.DqMetrics{SemanticSimilarityScore: 0.8, OverallDqScore: 0.9},
		},
		{
			Status:    reviewmodels.StatusPending,
			DqMetrics: reviewmodels.DqMetrics{SemanticSimilarityScore: 0.6, OverallDqScore: 0.3},
		},
		{
			Status:    reviewmodels.StatusFlagged,
			DqMetrics: reviewmodels.DqMetrics{SemanticSimilarityScore: 0.4, OverallDqScore: 0.5},
		},
		{
			Status:    reviewmodels.StatusRejected,
			DqMetrics: reviewmodels.DqMetrics{SemanticSimilarityScore: 0.2, OverallDqScore: 0.7},
		},
	}

	stats := ComputeDqStatistics(suggestions)
	if !almostEqual(stats.AvgSemanticSimilarity, 0.5) {
		t.Errorf("AvgSemanticSimilarity = %v, muốn 0.5", stats.AvgSemanticSimilarity)
	}
	// Chỉ 0.9 > 0.7 (ngưỡng strict: 0.7 không tính)
	if !almostEqual(stats.HighDqPercentage, 0.25) {
		t.Errorf("HighDqPercentage = %v, muốn 0.25", stats.HighDqPercentage)
	}
	// Chỉ 0.3 < 0.4
	if !almostEqual(stats.LowDqFlaggedPercentage, 0.25) {
		t.Errorf("LowDqFlaggedPercentage = %v, muốn 0.25", stats.LowDqFlaggedPercentage)
	}
	// Approved + Rejected = 2/4; Flagged chưa phải finalized
	if !almostEqual(stats.FinalizedRatio, 0.5) {
		t.Errorf("FinalizedRatio = %v, muốn 0.5", stats.FinalizedRatio)
	}
}

func TestComputeAverageMatchScore(t *testing.T) {
	if avg := ComputeAverageMatchScore(nil); avg != 0 {
		t.Errorf("Tập rỗng phải trả về 0 (không NaN), got %v", avg)
	}
	suggestions := []reviewmodels.Suggestion{
		{MatchScore: 0.6},
		{MatchScore: 0.8},
	}
	if avg := ComputeAverageMatchScore(suggestions); !almostEqual(avg, 0.7) {
		t.Errorf("AverageMatchScore = %v, muốn 0.7", avg)
	}
}

func TestComputeFeedbackStatistics_EmptyInput(t *testing.T) {
	stats := ComputeFeedbackStatistics(nil, nil)
	if stats.ApprovedPercentage != 0 || stats.AvgTimeToFeedbackDays != 0 || stats.AvgTimeToFinalizeDays != 0 {
		t.Errorf("Tập rỗng phải trả về toàn 0, got %+v", stats)
	}
}

func TestComputeFeedbackStatistics_Percentages(t *testing.T) {
	suggestions := []reviewmodels.Suggestion{
		{SuggestionId: "s1", Status: reviewmodels.StatusPending},
		{SuggestionId: "s2", Status: reviewmodels.StatusApproved},
		{SuggestionId: "s3", Status: reviewmodels.StatusApproved},
		{SuggestionId: "s4", Status: reviewmodels.StatusRejected},
	}

	stats := ComputeFeedbackStatistics(suggestions, nil)
	if !almostEqual(stats.ApprovedPercentage, 0.5) {
		t.Errorf("ApprovedPercentage = %v, muốn 0.5", stats.ApprovedPercentage)
	}
	if !almostEqual(stats.RejectedPercentage, 0.25) {
		t.Errorf("RejectedPercentage = %v, muốn 0.25", stats.RejectedPercentage)
	}
	if !almostEqual(stats.FlaggedPercentage, 0) {
		t.Errorf("FlaggedPercentage = %v, muốn 0", stats.FlaggedPercentage)
	}
	// Validated = khác Pending = 3/4
	if !almostEqual(stats.ValidatedPercentage, 0.75) {
		t.Errorf("ValidatedPercentage = %v, muốn 0.75", stats.ValidatedPercentage)
	}
}

func TestComputeFeedbackStatistics_TimeToFeedback(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	const halfDayMs = 12 * 60 * 60 * 1000
	suggestions := []reviewmodels.Suggestion{
		{SuggestionId: "s1", Status: reviewmodels.StatusApproved, CreatedAt: base},
		{SuggestionId: "s2", Status: reviewmodels.StatusPending, CreatedAt: base},
	}
	reviewEvents := []reviewmodels.ReviewEvent{
		// s1: comment trước (feedback đầu tiên sau nửa ngày), chốt Approved sau 2 ngày
		{SuggestionId: "s1", Action: reviewmodels.EventComment, CreatedAt: base + halfDayMs},
		{
			SuggestionId: "s1",
			Action:       reviewmodels.EventStatusChange,
			ToStatus:     reviewmodels.StatusApproved,
			CreatedAt:    base + 4*halfDayMs,
		},
		// Event của suggestion không có trong tập thì bỏ qua
		{SuggestionId: "unknown", Action: reviewmodels.EventComment, CreatedAt: base + 100},
	}

	stats := ComputeFeedbackStatistics(suggestions, reviewEvents)
	// Chỉ s1 có event → avg = 0.5 ngày / 2 ngày
	if !almostEqual(stats.AvgTimeToFeedbackDays, 0.5) {
		t.Errorf("AvgTimeToFeedbackDays = %v, muốn 0.5", stats.AvgTimeToFeedbackDays)
	}
	if !almostEqual(stats.AvgTimeToFinalizeDays, 2) {
		t.Errorf("AvgTimeToFinalizeDays = %v, muốn 2", stats.AvgTimeToFinalizeDays)
	}
}

func TestComputeFeedbackStatistics_ResuggestedPercentage(t *testing.T) {
	suggestions := []reviewmodels.Suggestion{
		{SuggestionId: "s1", Status: reviewmodels.StatusPending},
		{SuggestionId: "s2", Status: reviewmodels.StatusPending},
	}
	reviewEvents := []reviewmodels.ReviewEvent{
		// s1 bị resuggest hai lần nhưng chỉ tính một suggestion
		{SuggestionId: "s1", Action: reviewmodels.EventResuggest, CreatedAt: 1},
		{SuggestionId: "s1", Action: reviewmodels.EventResuggest, CreatedAt: 2},
	}
	stats := ComputeFeedbackStatistics(suggestions, reviewEvents)
	if !almostEqual(stats.ResuggestedPercentage, 0.5) {
		t.Errorf("ResuggestedPercentage = %v, muốn 0.5", stats.ResuggestedPercentage)
	}
}

func TestComputeOverview(t *testing.T) {
	suggestions := []reviewmodels.Suggestion{
		{Status: reviewmodels.StatusPending, MatchScore: 0.5},
		{Status: reviewmodels.StatusPending, MatchScore: 0.7},
		{Status: reviewmodels.StatusApproved, MatchScore: 0.9},
		{Status: reviewmodels.StatusRejected, MatchScore: 0.3},
		{Status: reviewmodels.StatusFlagged, MatchScore: 0.6},
	}
	reviewEvents := []reviewmodels.ReviewEvent{
		{Reviewer: "alice"},
		{Reviewer: "bob"},
	}
	out := ComputeOverview(suggestions, reviewEvents)
	if out.Total != 5 || out.Pending != 2 || out.Approved != 1 || out.Rejected != 1 || out.Flagged != 1 {
		t.Errorf("Overview sai: %+v", out)
	}
	if !almostEqual(out.ApprovedPercentage, 0.2) {
		t.Errorf("ApprovedPercentage = %v, muốn 0.2", out.ApprovedPercentage)
	}
	if !almostEqual(out.AverageMatchScore, 0.6) {
		t.Errorf("AverageMatchScore = %v, muốn 0.6", out.AverageMatchScore)
	}
	if out.ActiveReviewers != 2 {
		t.Errorf("ActiveReviewers = %d, muốn 2", out.ActiveReviewers)
	}
}

func TestComputeOverview_EmptyInput(t *testing.T) {
	out := ComputeOverview(nil, nil)
	if out.Total != 0 || out.ApprovedPercentage != 0 || out.AverageMatchScore != 0 {
		t.Errorf("Tập rỗng phải trả về toàn 0 (không NaN), got %+v", out)
	}
}

func TestComputeMarketBreakdown(t *testing.T) {
	markets := []reviewmodels.Market{
		{MarketId: "m2", Name: "United Kingdom"},
		{MarketId: "m1", Name: "United States"},
	}
	suggestions := []reviewmodels.Suggestion{
		{MarketId: "m1", Status: reviewmodels.StatusPending, MatchScore: 0.6},
		{MarketId: "m1", Status: reviewmodels.StatusApproved, MatchScore: 0.8},
		{MarketId: "m2", Status: reviewmodels.StatusRejected, MatchScore: 0.4},
		// Market không có trong danh sách thì bỏ qua
		{MarketId: "m9", Status: reviewmodels.StatusPending, MatchScore: 0.5},
	}

	items := ComputeMarketBreakdown(suggestions, markets)
	if len(items) != 2 {
		t.Fatalf("Phải có 2 market, got %d", len(items))
	}
	// Sắp theo marketId tăng dần
	if items[0].MarketId != "m1" || items[1].MarketId != "m2" {
		t.Errorf("Kết quả phải sắp theo marketId: %v, %v", items[0].MarketId, items[1].MarketId)
	}
	if items[0].Total != 2 || items[0].Pending != 1 || items[0].Approved != 1 {
		t.Errorf("Breakdown m1 sai: %+v", items[0])
	}
	if !almostEqual(items[0].AvgMatchScore, 0.7) {
		t.Errorf("AvgMatchScore m1 = %v, muốn 0.7", items[0].AvgMatchScore)
	}
	if items[1].Total != 1 || items[1].Rejected != 1 {
		t.Errorf("Breakdown m2 sai: %+v", items[1])
	}

	// Tổng các market đã biết = tổng suggestion trừ market lạ
	if items[0].Total+items[1].Total != 3 {
		t.Errorf("Tổng breakdown = %d, muốn 3", items[0].Total+items[1].Total)
	}
}

func TestComputeMarketBreakdown_EmptyMarketStillListed(t *testing.T) {
	markets := []reviewmodels.Market{{MarketId: "m1", Name: "United States"}}
	items := ComputeMarketBreakdown(nil, markets)
	if len(items) != 1 {
		t.Fatalf("Market không có suggestion vẫn phải xuất hiện, got %d items", len(items))
	}
	if items[0].Total != 0 || items[0].AvgMatchScore != 0 {
		t.Errorf("Market rỗng phải có count 0: %+v", items[0])
	}
}

func TestComputeTimeline_ZeroFilledWindow(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 30, 0, 0, time.UTC)
	points := ComputeTimeline(nil, now)
	if len(points) != 7 {
		t.Fatalf("Timeline phải có đúng 7 ngày, got %d", len(points))
	}
	if points[0].Date != "2026-08-25" {
		t.Errorf("Ngày đầu tiên = %q, muốn 2026-08-25", points[0].Date)
	}
	if points[6].Date != "2026-08-31" {
		t.Errorf("Ngày cuối (hôm nay) = %q, muốn 2026-08-31", points[6].Date)
	}
	for _, p := range points {
		if p.Reviews != 0 || p.Approved != 0 || p.Rejected != 0 || p.Flagged != 0 || p.Resuggested != 0 {
			t.Errorf("Không có event thì mọi count phải bằng 0: %+v", p)
		}
	}
}

func TestComputeTimeline_BucketsStatusChanges(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 30, 0, 0, time.UTC)
	today := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC).UnixMilli()
	twoDaysAgo := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC).UnixMilli()
	outsideWindow := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC).UnixMilli()

	reviewEvents := []reviewmodels.ReviewEvent{
		{Action: reviewmodels.EventStatusChange, ToStatus: reviewmodels.StatusApproved, CreatedAt: today},
		{Action: reviewmodels.EventStatusChange, ToStatus: reviewmodels.StatusRejected, CreatedAt: today},
		{Action: reviewmodels.EventStatusChange, ToStatus: reviewmodels.StatusFlagged, CreatedAt: twoDaysAgo},
		{Action: reviewmodels.EventResuggest, CreatedAt: twoDaysAgo},
		// Comment không được tính vào timeline
		{Action: reviewmodels.EventComment, CreatedAt: today},
		// Ngoài cửa sổ 7 ngày thì bỏ qua
		{Action: reviewmodels.EventStatusChange, ToStatus: reviewmodels.StatusApproved, CreatedAt: outsideWindow},
	}

	points := ComputeTimeline(reviewEvents, now)
	last := points[6]
	if last.Reviews != 2 || last.Approved != 1 || last.Rejected != 1 {
		t.Errorf("Bucket hôm nay sai: %+v", last)
	}
	// 2026-08-29 là index 4
	if points[4].Reviews != 2 || points[4].Flagged != 1 || points[4].Resuggested != 1 {
		t.Errorf("Bucket 2026-08-29 sai: %+v", points[4])
	}
	var total int
	for _, p := range points {
		total += p.Reviews
	}
	if total != 4 {
		t.Errorf("Tổng reviews trong cửa sổ = %d, muốn 4", total)
	}
}

func TestComputeReviewerStats(t *testing.T) {
	reviewEvents := []reviewmodels.ReviewEvent{
		{Reviewer: "alice"},
		{Reviewer: "bob"},
		{Reviewer: "bob"},
		{Reviewer: "bob"},
		{Reviewer: "alice"},
		{Reviewer: ""}, // thiếu reviewer thì bỏ qua
	}
	stats := ComputeReviewerStats(reviewEvents)
	if stats.ActiveReviewers != 2 {
		t.Errorf("ActiveReviewers = %d, muốn 2", stats.ActiveReviewers)
	}
	if len(stats.ReviewsByUser) != 2 {
		t.Fatalf("ReviewsByUser phải có 2 người, got %d", len(stats.ReviewsByUser))
	}
	// Sắp theo count giảm dần
	if stats.ReviewsByUser[0].Reviewer != "bob" || stats.ReviewsByUser[0].Count != 3 {
		t.Errorf("Người review nhiều nhất phải đứng đầu: %+v", stats.ReviewsByUser[0])
	}
	if stats.ReviewsByUser[1].Reviewer != "alice" || stats.ReviewsByUser[1].Count != 2 {
		t.Errorf("Kết quả alice sai: %+v", stats.ReviewsByUser[1])
	}
}

func TestComputeDashboardMetrics_Aggregates(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	suggestions := []reviewmodels.Suggestion{
		{SuggestionId: "s1", MarketId: "m1", Status: reviewmodels.StatusApproved, MatchScore: 0.9},
	}
	markets := []reviewmodels.Market{{MarketId: "m1", Name: "United States"}}

	metrics := ComputeDashboardMetrics(suggestions, markets, nil, nil, now)
	if metrics.TotalSuggestions != 1 {
		t.Errorf("TotalSuggestions = %d, muốn 1", metrics.TotalSuggestions)
	}
	if !almostEqual(metrics.AverageMatchScore, 0.9) {
		t.Errorf("AverageMatchScore = %v, muốn 0.9", metrics.AverageMatchScore)
	}
	if len(metrics.TimelineData) != 7 {
		t.Errorf("TimelineData phải có 7 điểm, got %d", len(metrics.TimelineData))
	}
	if len(metrics.MarketBreakdown) != 1 {
		t.Errorf("MarketBreakdown phải có 1 market, got %d", len(metrics.MarketBreakdown))
	}
	if metrics.GeneratedAt != now.UnixMilli() {
		t.Errorf("GeneratedAt = %d, muốn %d", metrics.GeneratedAt, now.UnixMilli())
	}
}
