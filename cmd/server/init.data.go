package main

import (
	"context"
	"fmt"

	reviewsvc "outlet_review/internal/api/review/service"
	"outlet_review/internal/global"
	"outlet_review/internal/logger"
)

// InitDefaultData khởi tạo dữ liệu mặc định cho hệ thống review.
// Danh sách market luôn được đồng bộ (upsert, idempotent); dữ liệu suggestion
// mẫu chỉ được seed khi bật INITMODE và collection còn trống.
func InitDefaultData() {
	log := logger.GetAppLogger()
	log.Info("[INIT] Starting InitDefaultData...")

	if err := initDefaultData(); err != nil {
		log.Fatalf("Failed to initialize default data: %v", err)
	}

	log.Info("[INIT] InitDefaultData completed successfully")
}

func initDefaultData() error {
	log := logger.GetAppLogger()
	ctx := context.Background()

	// 1. Đồng bộ danh sách market mặc định
	marketSvc, err := reviewsvc.NewMarketService()
	if err != nil {
		return fmt.Errorf("tạo MarketService: %w", err)
	}
	if err := marketSvc.SeedMarkets(ctx); err != nil {
		return fmt.Errorf("seed markets: %w", err)
	}
	log.Info("[INIT] Step 1: Markets synchronized")

	// 2. Seed dữ liệu suggestion mẫu (chỉ khi INITMODE)
	if !global.MongoDB_ServerConfig.InitMode {
		log.Info("[INIT] Step 2: INITMODE disabled, skipping sample suggestions")
		return nil
	}

	suggestionSvc, err := reviewsvc.NewSuggestionService()
	if err != nil {
		return fmt.Errorf("tạo SuggestionService: %w", err)
	}
	count := global.MongoDB_ServerConfig.SeedSuggestionCount
	if err := suggestionSvc.SeedSuggestions(ctx, count); err != nil {
		return fmt.Errorf("seed suggestions: %w", err)
	}
	log.Infof("[INIT] Step 2: Sample suggestions seeded (target count: %d)", count)

	return nil
}
