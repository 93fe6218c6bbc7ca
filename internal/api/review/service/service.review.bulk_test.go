// Package reviewsvc - Test gộp kết quả thao tác bulk.
package reviewsvc

import (
	"context"
	"errors"
	"testing"
)

func TestBulkApply_PartialFailure(t *testing.T) {
	svc := &SuggestionService{}
	ids := []string{"sugg-a", "sugg-b", "sugg-c"}

	result, err := svc.bulkApply(context.Background(), ids, func(ctx context.Context, suggestionId string) error {
		if suggestionId == "sugg-b" {
			return errors.New("không tìm thấy suggestion")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("bulkApply không được trả lỗi tổng: %v", err)
	}

	if result.Total != 3 || result.Succeeded != 2 || result.Failed != 1 {
		t.Errorf("Kết quả gộp sai: total=%d succeeded=%d failed=%d", result.Total, result.Succeeded, result.Failed)
	}
	if len(result.Items) != 3 {
		t.Fatalf("Phải có kết quả cho từng item, got %d", len(result.Items))
	}

	// Giữ nguyên thứ tự đầu vào dù chạy song song
	for i, id := range ids {
		if result.Items[i].SuggestionId != id {
			t.Errorf("Item %d phải là %q, got %q", i, id, result.Items[i].SuggestionId)
		}
	}
	if result.Items[0].Success != true || result.Items[2].Success != true {
		t.Error("sugg-a và sugg-c phải thành công")
	}
	if result.Items[1].Success {
		t.Error("sugg-b phải thất bại")
	}
	if result.Items[1].Error == "" {
		t.Error("Item thất bại phải mang thông điệp lỗi")
	}
}

func TestBulkApply_AllSucceed(t *testing.T) {
	svc := &SuggestionService{}
	ids := []string{"sugg-1", "sugg-2"}

	result, err := svc.bulkApply(context.Background(), ids, func(ctx context.Context, suggestionId string) error {
		return nil
	})
	if err != nil {
		t.Fatalf("bulkApply lỗi: %v", err)
	}
	if result.Succeeded != 2 || result.Failed != 0 {
		t.Errorf("Kết quả sai: %+v", result)
	}
	for _, item := range result.Items {
		if !item.Success || item.Error != "" {
			t.Errorf("Item phải thành công và không có error: %+v", item)
		}
	}
}

func TestBulkApply_EmptyInput(t *testing.T) {
	svc := &SuggestionService{}
	result, err := svc.bulkApply(context.Background(), nil, func(ctx context.Context, suggestionId string) error {
		t.Error("apply không được gọi khi danh sách rỗng")
		return nil
	})
	if err != nil {
		t.Fatalf("bulkApply lỗi: %v", err)
	}
	if result.Total != 0 || len(result.Items) != 0 {
		t.Errorf("Danh sách rỗng phải trả kết quả rỗng: %+v", result)
	}
}
