// Package reviewsvc - Service thống kê dashboard.
// Số liệu được tính in-memory trên toàn bộ tập suggestion + lịch sử review,
// cache lại và invalidate qua events bus khi dữ liệu review thay đổi.
package reviewsvc

import (
	"context"
	"sort"
	"sync"
	"time"

	"outlet_review/internal/api/events"
	reviewdto "outlet_review/internal/api/review/dto"
	reviewmodels "outlet_review/internal/api/review/models"
	"outlet_review/internal/global"
	"outlet_review/internal/logger"
)

// timelineDays là số ngày hiển thị trên timeline (bao gồm hôm nay).
const timelineDays = 7

// DashboardService tính và cache thống kê dashboard.
type DashboardService struct {
	suggestionSvc *SuggestionService
	marketSvc     *MarketService
	eventSvc      *ReviewEventService

	mu     sync.Mutex
	cached *reviewdto.DashboardMetrics
}

// NewDashboardService tạo DashboardService mới và đăng ký invalidation hook.
func NewDashboardService() (*DashboardService, error) {
	suggestionSvc, err := NewSuggestionService()
	if err != nil {
		return nil, err
	}
	marketSvc, err := NewMarketService()
	if err != nil {
		return nil, err
	}
	eventSvc, err := NewReviewEventService()
	if err != nil {
		return nil, err
	}

	s := &DashboardService{
		suggestionSvc: suggestionSvc,
		marketSvc:     marketSvc,
		eventSvc:      eventSvc,
	}

	// Invalidate cache khi dữ liệu review thay đổi
	events.OnDataChanged(func(ctx context.Context, e events.DataChangeEvent) {
		if e.CollectionName == global.MongoDB_ColNames.Suggestions ||
			e.CollectionName == global.MongoDB_ColNames.ReviewEvents {
			s.Invalidate()
		}
	})

	return s, nil
}

// Invalidate xóa metrics đã cache; lần đọc kế tiếp sẽ tính lại.
func (s *DashboardService) Invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}

// Metrics trả về thống kê dashboard, dùng cache nếu còn.
func (s *DashboardService) Metrics(ctx context.Context) (*reviewdto.DashboardMetrics, error) {
	s.mu.Lock()
	if s.cached != nil {
		cached := s.cached
		s.mu.Unlock()
		return cached, nil
	}
	s.mu.Unlock()

	suggestions, err := s.suggestionSvc.Find(ctx, nil, nil)
	if err != nil {
		return nil, err
	}
	markets, err := s.marketSvc.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	since := now.UTC().Truncate(24*time.Hour).AddDate(0, 0, -(timelineDays - 1))
	reviewEvents, err := s.eventSvc.FindSince(ctx, since.UnixMilli())
	if err != nil {
		return nil, err
	}
	// Thống kê thời gian phản hồi cần toàn bộ lịch sử, không chỉ cửa sổ timeline
	allEvents, err := s.eventSvc.Find(ctx, nil, nil)
	if err != nil {
		return nil, err
	}

	metrics := ComputeDashboardMetrics(suggestions, markets, allEvents, reviewEvents, now)

	s.mu.Lock()
	s.cached = metrics
	s.mu.Unlock()

	logger.GetAppLogger().WithField("totalSuggestions", metrics.TotalSuggestions).
		Debug("Đã tính lại dashboard metrics")

	return metrics, nil
}

// Overview trả về khối tổng quan: đếm theo trạng thái, approvedPercentage,
// averageMatchScore, số người review đang hoạt động.
func (s *DashboardService) Overview(ctx context.Context) (*reviewdto.DashboardOverview, error) {
	suggestions, err := s.suggestionSvc.Find(ctx, nil, nil)
	if err != nil {
		return nil, err
	}
	reviewEvents, err := s.eventSvc.Find(ctx, nil, nil)
	if err != nil {
		return nil, err
	}
	return ComputeOverview(suggestions, reviewEvents), nil
}

// ============================================================
// Các hàm tính toán thuần — không chạm DB, test trực tiếp được
// ============================================================

// ComputeDashboardMetrics gộp toàn bộ thống kê từ dữ liệu đã load.
// windowEvents là events trong cửa sổ timeline; allEvents là toàn bộ lịch sử.
func ComputeDashboardMetrics(
	suggestions []reviewmodels.Suggestion,
	markets []reviewmodels.Market,
	allEvents []reviewmodels.ReviewEvent,
	windowEvents []reviewmodels.ReviewEvent,
	now time.Time,
) *reviewdto.DashboardMetrics {
	return &reviewdto.DashboardMetrics{
		TotalSuggestions:   len(suggestions),
		AverageMatchScore:  ComputeAverageMatchScore(suggestions),
		DqStatistics:       ComputeDqStatistics(suggestions),
		FeedbackStatistics: ComputeFeedbackStatistics(suggestions, allEvents),
		MarketBreakdown:    ComputeMarketBreakdown(suggestions, markets),
		TimelineData:       ComputeTimeline(windowEvents, now),
		ReviewerStats:      ComputeReviewerStats(allEvents),
		GeneratedAt:        now.UnixMilli(),
	}
}

// ComputeAverageMatchScore tính matchScore trung bình; tập rỗng trả về 0, không NaN.
func ComputeAverageMatchScore(suggestions []reviewmodels.Suggestion) float64 {
	if len(suggestions) == 0 {
		return 0
	}
	var sum float64
	for i := range suggestions {
		sum += suggestions[i].MatchScore
	}
	return sum / float64(len(suggestions))
}

// ComputeOverview tính khối tổng quan: đếm theo trạng thái + các chỉ số nhanh.
func ComputeOverview(suggestions []reviewmodels.Suggestion, reviewEvents []reviewmodels.ReviewEvent) *reviewdto.DashboardOverview {
	out := &reviewdto.DashboardOverview{Total: len(suggestions)}
	for i := range suggestions {
		switch suggestions[i].Status {
		case reviewmodels.StatusPending:
			out.Pending++
		case reviewmodels.StatusApproved:
			out.Approved++
		case reviewmodels.StatusRejected:
			out.Rejected++
		case reviewmodels.StatusFlagged:
			out.Flagged++
		}
	}
	if out.Total > 0 {
		out.ApprovedPercentage = float64(out.Approved) / float64(out.Total)
	}
	out.AverageMatchScore = ComputeAverageMatchScore(suggestions)
	out.ActiveReviewers = ComputeReviewerStats(reviewEvents).ActiveReviewers
	return out
}

// ComputeDqStatistics tính thống kê chất lượng dữ liệu.
// Tập rỗng trả về toàn 0, không NaN.
func ComputeDqStatistics(suggestions []reviewmodels.Suggestion) reviewdto.DqStatistics {
	n := len(suggestions)
	if n == 0 {
		return reviewdto.DqStatistics{}
	}

	var sumSemantic float64
	var highDq, lowDq, finalized int
	for i := range suggestions {
		s := &suggestions[i]
		sumSemantic += s.DqMetrics.SemanticSimilarityScore
		if s.DqMetrics.OverallDqScore > reviewmodels.HighDqThreshold {
			highDq++
		}
		if s.DqMetrics.OverallDqScore < reviewmodels.LowDqThreshold {
			lowDq++
		}
		if s.IsFinalized() {
			finalized++
		}
	}

	fn := float64(n)
	return reviewdto.DqStatistics{
		AvgSemanticSimilarity:  sumSemantic / fn,
		HighDqPercentage:       float64(highDq) / fn,
		LowDqFlaggedPercentage: float64(lowDq) / fn,
		FinalizedRatio:         float64(finalized) / fn,
	}
}

// dayMs là số millisecond trong một ngày, dùng quy đổi thống kê thời gian.
const dayMs = float64(24 * time.Hour / time.Millisecond)

// ComputeFeedbackStatistics tính thống kê phản hồi review.
// Thời gian phản hồi (đơn vị ngày) tính từ createdAt của suggestion tới event
// đầu tiên của nó; thời gian chốt tính tới status_change đầu tiên sang
// Approved/Rejected.
func ComputeFeedbackStatistics(suggestions []reviewmodels.Suggestion, reviewEvents []reviewmodels.ReviewEvent) reviewdto.FeedbackStatistics {
	n := len(suggestions)
	if n == 0 {
		return reviewdto.FeedbackStatistics{}
	}

	var approved, rejected, flagged, validated int
	createdAt := make(map[string]int64, n)
	for i := range suggestions {
		s := &suggestions[i]
		createdAt[s.SuggestionId] = s.CreatedAt
		switch s.Status {
		case reviewmodels.StatusApproved:
			approved++
		case reviewmodels.StatusRejected:
			rejected++
		case reviewmodels.StatusFlagged:
			flagged++
		}
		if s.Status != reviewmodels.StatusPending {
			validated++
		}
	}

	firstEvent := make(map[string]int64)
	firstFinalize := make(map[string]int64)
	resuggested := make(map[string]struct{})
	for i := range reviewEvents {
		e := &reviewEvents[i]
		if _, known := createdAt[e.SuggestionId]; !known {
			continue
		}
		if t, ok := firstEvent[e.SuggestionId]; !ok || e.CreatedAt < t {
			firstEvent[e.SuggestionId] = e.CreatedAt
		}
		if e.Action == reviewmodels.EventStatusChange &&
			(e.ToStatus == reviewmodels.StatusApproved || e.ToStatus == reviewmodels.StatusRejected) {
			if t, ok := firstFinalize[e.SuggestionId]; !ok || e.CreatedAt < t {
				firstFinalize[e.SuggestionId] = e.CreatedAt
			}
		}
		if e.Action == reviewmodels.EventResuggest {
			resuggested[e.SuggestionId] = struct{}{}
		}
	}

	avgDeltaDays := func(marks map[string]int64) float64 {
		if len(marks) == 0 {
			return 0
		}
		var sum float64
		var count int
		for id, t := range marks {
			delta := t - createdAt[id]
			if delta < 0 {
				delta = 0
			}
			sum += float64(delta)
			count++
		}
		return sum / float64(count) / dayMs
	}

	fn := float64(n)
	return reviewdto.FeedbackStatistics{
		ApprovedPercentage:    float64(approved) / fn,
		RejectedPercentage:    float64(rejected) / fn,
		FlaggedPercentage:     float64(flagged) / fn,
		ResuggestedPercentage: float64(len(resuggested)) / fn,
		ValidatedPercentage:   float64(validated) / fn,
		AvgTimeToFeedbackDays: avgDeltaDays(firstEvent),
		AvgTimeToFinalizeDays: avgDeltaDays(firstFinalize),
	}
}

// ComputeMarketBreakdown đếm suggestion theo market. Chỉ market có trong
// danh sách markets được trả về, theo thứ tự marketId.
func ComputeMarketBreakdown(suggestions []reviewmodels.Suggestion, markets []reviewmodels.Market) []reviewdto.MarketBreakdownItem {
	byMarket := make(map[string]*reviewdto.MarketBreakdownItem, len(markets))
	scoreSum := make(map[string]float64, len(markets))

	out := make([]reviewdto.MarketBreakdownItem, 0, len(markets))
	for i := range markets {
		m := &markets[i]
		byMarket[m.MarketId] = &reviewdto.MarketBreakdownItem{
			MarketId:   m.MarketId,
			MarketName: m.Name,
		}
	}

	for i := range suggestions {
		s := &suggestions[i]
		item, ok := byMarket[s.MarketId]
		if !ok {
			continue
		}
		item.Total++
		scoreSum[s.MarketId] += s.MatchScore
		switch s.Status {
		case reviewmodels.StatusPending:
			item.Pending++
		case reviewmodels.StatusApproved:
			item.Approved++
		case reviewmodels.StatusRejected:
			item.Rejected++
		case reviewmodels.StatusFlagged:
			item.Flagged++
		}
	}

	ids := make([]string, 0, len(byMarket))
	for id := range byMarket {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		item := byMarket[id]
		if item.Total > 0 {
			item.AvgMatchScore = scoreSum[id] / float64(item.Total)
		}
		out = append(out, *item)
	}
	return out
}

// ComputeTimeline đếm thao tác review theo ngày (UTC) cho 7 ngày gần nhất,
// cũ nhất trước, ngày không có thao tác vẫn xuất hiện với count 0.
// Status_change được tách theo trạng thái đích; resuggest đếm riêng.
func ComputeTimeline(reviewEvents []reviewmodels.ReviewEvent, now time.Time) []reviewdto.TimelinePoint {
	start := now.UTC().Truncate(24 * time.Hour).AddDate(0, 0, -(timelineDays - 1))

	points := make([]reviewdto.TimelinePoint, timelineDays)
	index := make(map[string]int, timelineDays)
	for i := 0; i < timelineDays; i++ {
		date := start.AddDate(0, 0, i).Format("2006-01-02")
		points[i] = reviewdto.TimelinePoint{Date: date}
		index[date] = i
	}

	for i := range reviewEvents {
		e := &reviewEvents[i]
		date := time.UnixMilli(e.CreatedAt).UTC().Format("2006-01-02")
		idx, ok := index[date]
		if !ok {
			continue
		}
		switch e.Action {
		case reviewmodels.EventStatusChange:
			points[idx].Reviews++
			switch e.ToStatus {
			case reviewmodels.StatusApproved:
				points[idx].Approved++
			case reviewmodels.StatusRejected:
				points[idx].Rejected++
			case reviewmodels.StatusFlagged:
				points[idx].Flagged++
			}
		case reviewmodels.EventResuggest:
			points[idx].Reviews++
			points[idx].Resuggested++
		}
	}

	return points
}

// ComputeReviewerStats đếm thao tác theo người review, nhiều nhất trước.
func ComputeReviewerStats(reviewEvents []reviewmodels.ReviewEvent) reviewdto.ReviewerStats {
	byUser := make(map[string]int)
	for i := range reviewEvents {
		if reviewEvents[i].Reviewer == "" {
			continue
		}
		byUser[reviewEvents[i].Reviewer]++
	}

	counts := make([]reviewdto.ReviewerCount, 0, len(byUser))
	for reviewer, count := range byUser {
		counts = append(counts, reviewdto.ReviewerCount{Reviewer: reviewer, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Reviewer < counts[j].Reviewer
	})

	return reviewdto.ReviewerStats{
		ActiveReviewers: len(byUser),
		ReviewsByUser:   counts,
	}
}
