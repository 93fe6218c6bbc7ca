// Package reviewsvc - seed dữ liệu mẫu cho môi trường development (InitMode).
package reviewsvc

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	reviewmodels "outlet_review/internal/api/review/models"
	"outlet_review/internal/logger"
)

// seedMarkets là danh sách thị trường mẫu.
var seedMarkets = []reviewmodels.Market{
	{MarketId: "m1", Name: "United States", Country: "US"},
	{MarketId: "m2", Name: "United Kingdom", Country: "GB"},
	{MarketId: "m3", Name: "Germany", Country: "DE"},
	{MarketId: "m4", Name: "France", Country: "FR"},
	{MarketId: "m5", Name: "Japan", Country: "JP"},
}

var seedOutletPrefixes = []string{
	"Golden Dragon", "Blue Lagoon", "Sunset", "Riverside", "Metro",
	"Royal Oak", "Harbor View", "Cedar Hill", "Silver Fox", "Corner Stone",
}

var seedOutletSuffixes = []string{
	"Restaurant", "Bar & Grill", "Cafe", "Bistro", "Pub", "Lounge", "Tavern", "Eatery",
}

var seedStreets = []string{
	"Main Street", "High Street", "Park Avenue", "Oak Lane", "Station Road",
	"Market Square", "River Walk", "Church Street", "Broadway", "King's Road",
}

// seedCityCenters là tọa độ trung tâm theo market, để toạ độ outlet nằm trong vùng hợp lý.
var seedCityCenters = map[string][2]float64{
	"m1": {40.7128, -74.0060},  // New York
	"m2": {51.5074, -0.1278},   // London
	"m3": {52.5200, 13.4050},   // Berlin
	"m4": {48.8566, 2.3522},    // Paris
	"m5": {35.6762, 139.6503},  // Tokyo
}

// SeedMarkets upsert các market mẫu (idempotent).
func (s *MarketService) SeedMarkets(ctx context.Context) error {
	for _, m := range seedMarkets {
		if _, err := s.Upsert(ctx, map[string]interface{}{"marketId": m.MarketId}, map[string]interface{}{
			"marketId": m.MarketId,
			"name":     m.Name,
			"country":  m.Country,
		}); err != nil {
			return fmt.Errorf("seed market %s: %w", m.MarketId, err)
		}
	}
	logger.GetAppLogger().Infof("Đã seed %d markets", len(seedMarkets))
	return nil
}

// SeedSuggestions sinh count suggestion mẫu nếu collection đang rỗng.
// Generator dùng seed cố định để dữ liệu development tái lập được.
func (s *SuggestionService) SeedSuggestions(ctx context.Context, count int) error {
	if count <= 0 {
		count = 50
	}

	existing, err := s.CountDocuments(ctx, nil)
	if err != nil {
		return err
	}
	if existing > 0 {
		logger.GetAppLogger().Infof("Collection suggestions đã có %d documents, bỏ qua seed", existing)
		return nil
	}

	rng := rand.New(rand.NewSource(42))
	now := time.Now().UnixMilli()
	const dayMs = int64(24 * time.Hour / time.Millisecond)

	docs := make([]reviewmodels.Suggestion, 0, count)
	for i := 1; i <= count; i++ {
		marketId := seedMarkets[rng.Intn(len(seedMarkets))].MarketId
		name := seedOutletPrefixes[rng.Intn(len(seedOutletPrefixes))] + " " +
			seedOutletSuffixes[rng.Intn(len(seedOutletSuffixes))]
		street := fmt.Sprintf("%d %s", 1+rng.Intn(200), seedStreets[rng.Intn(len(seedStreets))])

		// matchScore trong [0.3, 0.99)
		matchScore := 0.3 + rng.Float64()*0.69

		center := seedCityCenters[marketId]
		geo := &reviewmodels.GeoLocation{
			SourceLatitude:     center[0] + (rng.Float64()-0.5)*0.1,
			SourceLongitude:    center[1] + (rng.Float64()-0.5)*0.1,
			SuggestedLatitude:  center[0] + (rng.Float64()-0.5)*0.1,
			SuggestedLongitude: center[1] + (rng.Float64()-0.5)*0.1,
		}

		semantic := 0.4 + rng.Float64()*0.6
		nullRatio := rng.Float64() * 0.5
		pattern := 0.5 + rng.Float64()*0.5
		overall := semantic*0.5 + (1-nullRatio)*0.25 + pattern*0.25

		sugg := reviewmodels.Suggestion{
			SuggestionId:        fmt.Sprintf("sugg-%d", i),
			SourceName:          name,
			SourceAddress:       street,
			SuggestedOutletName: name, // cùng tên, khác format địa chỉ — mô phỏng match thật
			SuggestedAddress:    street + ", " + seedMarketName(marketId),
			MatchScore:          matchScore,
			GeoDistance:         GeoDistanceKm(geo),
			MatchCategory:       reviewmodels.CategoryForScore(matchScore),
			Status:              reviewmodels.StatusPending,
			MarketId:            marketId,
			Comments:            []reviewmodels.Comment{},
			DqMetrics: reviewmodels.DqMetrics{
				SemanticSimilarityScore: semantic,
				NullFieldsRatio:         nullRatio,
				PatternConsistencyIndex: pattern,
				OverallDqScore:          overall,
			},
			GeoLocation: geo,
			CreatedAt:   now - int64(rng.Intn(30))*dayMs,
		}

		// ~20% suggestion có sẵn một comment mẫu
		if rng.Float64() < 0.2 {
			sugg.Comments = append(sugg.Comments, reviewmodels.Comment{
				CommentId:  fmt.Sprintf("seed-comment-%d", i),
				Text:       "Cần đối chiếu lại địa chỉ với dữ liệu nguồn",
				Author:     reviewmodels.DefaultReviewer,
				ReasonCode: reviewmodels.ReasonIncompleteData,
				Timestamp:  sugg.CreatedAt,
			})
		}

		// ~60% outlet có dữ liệu sales
		if rng.Float64() < 0.6 {
			rank := 1 + rng.Intn(100)
			sugg.SalesContribution = &reviewmodels.SalesContribution{
				Value:       float64(10000 + rng.Intn(990000)),
				Volume:      100 + rng.Intn(9900),
				Rank:        rank,
				IsHighValue: rank <= 20,
			}
		}

		// ~50% outlet gợi ý có revenue share
		if rng.Float64() < 0.5 {
			monthly := float64(5000 + rng.Intn(95000))
			trend := reviewmodels.TrendStable
			switch rng.Intn(3) {
			case 0:
				trend = reviewmodels.TrendUp
			case 1:
				trend = reviewmodels.TrendDown
			}
			sugg.RevenueShare = &reviewmodels.RevenueShare{
				Percentage:     rng.Float64() * 15,
				MonthlyAverage: monthly,
				YearlyTotal:    monthly * 12,
				Trend:          trend,
			}
		}

		docs = append(docs, sugg)
	}

	if _, err := s.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("seed suggestions: %w", err)
	}
	logger.GetAppLogger().Infof("Đã seed %d suggestions", len(docs))
	return nil
}

func seedMarketName(marketId string) string {
	for _, m := range seedMarkets {
		if m.MarketId == marketId {
			return m.Name
		}
	}
	return marketId
}
