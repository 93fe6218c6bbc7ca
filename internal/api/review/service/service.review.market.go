// Package reviewsvc - Service thị trường (review_markets).
package reviewsvc

import (
	"context"
	"fmt"

	basesvc "outlet_review/internal/api/base/service"
	reviewmodels "outlet_review/internal/api/review/models"
	"outlet_review/internal/common"
	"outlet_review/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

// MarketService đọc danh sách thị trường.
type MarketService struct {
	*basesvc.BaseServiceMongoImpl[reviewmodels.Market]
}

// NewMarketService tạo MarketService mới.
func NewMarketService() (*MarketService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Markets)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Markets, common.ErrNotFound)
	}
	return &MarketService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[reviewmodels.Market](coll),
	}, nil
}

// ListAll trả về tất cả market theo marketId tăng dần.
func (s *MarketService) ListAll(ctx context.Context) ([]reviewmodels.Market, error) {
	opts := mongoopts.Find().SetSort(bson.D{{Key: "marketId", Value: 1}})
	return s.Find(ctx, bson.M{}, opts)
}

// GetByMarketId tìm market theo mã nghiệp vụ.
func (s *MarketService) GetByMarketId(ctx context.Context, marketId string) (*reviewmodels.Market, error) {
	item, err := s.FindOne(ctx, bson.M{"marketId": marketId}, nil)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
