// Package reviewsvc - thao tác bulk trên suggestion.
// Mỗi suggestion được xử lý độc lập trong goroutine riêng; lỗi của một item
// không hủy các item còn lại, kết quả được gộp về BulkResult.
package reviewsvc

import (
	"context"
	"sort"
	"sync"

	reviewdto "outlet_review/internal/api/review/dto"
	"outlet_review/internal/logger"
)

// BulkUpdateStatus đổi trạng thái cho nhiều suggestion cùng lúc.
// Trả về kết quả từng item theo thứ tự suggestionIds đầu vào.
func (s *SuggestionService) BulkUpdateStatus(ctx context.Context, input *reviewdto.BulkStatusUpdateInput, reviewer string) (*reviewdto.BulkResult, error) {
	return s.bulkApply(ctx, input.SuggestionIds, func(ctx context.Context, suggestionId string) error {
		_, err := s.UpdateStatus(ctx, suggestionId, input.Status, reviewer)
		return err
	})
}

// bulkApply chạy apply cho từng suggestionId song song và gộp kết quả.
func (s *SuggestionService) bulkApply(ctx context.Context, suggestionIds []string, apply func(ctx context.Context, suggestionId string) error) (*reviewdto.BulkResult, error) {
	type indexedResult struct {
		index int
		item  reviewdto.BulkItemResult
	}

	results := make(chan indexedResult, len(suggestionIds))
	var wg sync.WaitGroup

	for i, id := range suggestionIds {
		wg.Add(1)
		go func(index int, suggestionId string) {
			defer wg.Done()
			item := reviewdto.BulkItemResult{SuggestionId: suggestionId, Success: true}
			if err := apply(ctx, suggestionId); err != nil {
				item.Success = false
				item.Error = err.Error()
			}
			results <- indexedResult{index: index, item: item}
		}(i, id)
	}

	wg.Wait()
	close(results)

	collected := make([]indexedResult, 0, len(suggestionIds))
	for r := range results {
		collected = append(collected, r)
	}
	// Giữ thứ tự đầu vào để client map kết quả theo vị trí
	sort.Slice(collected, func(i, j int) bool { return collected[i].index < collected[j].index })

	out := &reviewdto.BulkResult{
		Total: len(suggestionIds),
		Items: make([]reviewdto.BulkItemResult, 0, len(collected)),
	}
	for _, r := range collected {
		if r.item.Success {
			out.Succeeded++
		} else {
			out.Failed++
		}
		out.Items = append(out.Items, r.item)
	}

	logger.GetAuditLogger().WithFields(map[string]interface{}{
		"total":     out.Total,
		"succeeded": out.Succeeded,
		"failed":    out.Failed,
	}).Info("Thao tác bulk trên suggestions")

	return out, nil
}
