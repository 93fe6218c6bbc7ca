// Package reviewsvc - Test logic lọc suggestion.
package reviewsvc

import (
	"context"
	"errors"
	"testing"

	reviewdto "outlet_review/internal/api/review/dto"
	reviewmodels "outlet_review/internal/api/review/models"
	"outlet_review/internal/common"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func sampleSuggestion() *reviewmodels.Suggestion {
	return &reviewmodels.Suggestion{
		SuggestionId:        "sugg-1",
		SourceName:          "Starbucks Coffee #214",
		SourceAddress:       "100 Main Street, New York",
		SuggestedOutletName: "Starbucks - Main St",
		SuggestedAddress:    "100 Main St, NY",
		MatchScore:          0.92,
		MatchCategory:       reviewmodels.CategoryHigh,
		Status:              reviewmodels.StatusPending,
		MarketId:            "m1",
	}
}

func TestMatchesFilter_NilAndEmptyFilter(t *testing.T) {
	s := sampleSuggestion()
	if !MatchesFilter(s, nil) {
		t.Error("Filter nil phải match mọi suggestion")
	}
	if !MatchesFilter(s, &reviewdto.SuggestionFilterInput{}) {
		t.Error("Filter rỗng phải match mọi suggestion")
	}
}

func TestMatchesFilter_SingleField(t *testing.T) {
	s := sampleSuggestion()

	if !MatchesFilter(s, &reviewdto.SuggestionFilterInput{Status: reviewmodels.StatusPending}) {
		t.Error("Phải match khi status trùng")
	}
	if MatchesFilter(s, &reviewdto.SuggestionFilterInput{Status: reviewmodels.StatusApproved}) {
		t.Error("Không được match khi status khác")
	}
	if !MatchesFilter(s, &reviewdto.SuggestionFilterInput{MatchCategory: reviewmodels.CategoryHigh}) {
		t.Error("Phải match khi matchCategory trùng")
	}
	if MatchesFilter(s, &reviewdto.SuggestionFilterInput{MarketId: "m2"}) {
		t.Error("Không được match khi marketId khác")
	}
}

func TestMatchesFilter_SearchTermCaseInsensitive(t *testing.T) {
	s := sampleSuggestion()

	// Khớp substring trên sourceName, không phân biệt hoa thường
	if !MatchesFilter(s, &reviewdto.SuggestionFilterInput{SearchTerm: "starbucks"}) {
		t.Error("SearchTerm 'starbucks' phải match sourceName")
	}
	if !MatchesFilter(s, &reviewdto.SuggestionFilterInput{SearchTerm: "MAIN ST"}) {
		t.Error("SearchTerm 'MAIN ST' phải match address (case-insensitive)")
	}
	// Khớp trên suggestedOutletName
	if !MatchesFilter(s, &reviewdto.SuggestionFilterInput{SearchTerm: "- main"}) {
		t.Error("SearchTerm phải match suggestedOutletName")
	}
	if MatchesFilter(s, &reviewdto.SuggestionFilterInput{SearchTerm: "mcdonald"}) {
		t.Error("SearchTerm không khớp field nào thì không được match")
	}
}

func TestMatchesFilter_CombinedAnd(t *testing.T) {
	s := sampleSuggestion()

	// Tất cả điều kiện đều khớp → match
	f := &reviewdto.SuggestionFilterInput{
		Status:        reviewmodels.StatusPending,
		MatchCategory: reviewmodels.CategoryHigh,
		MarketId:      "m1",
		SearchTerm:    "starbucks",
	}
	if !MatchesFilter(s, f) {
		t.Error("Tất cả điều kiện khớp phải match")
	}

	// Một điều kiện sai → không match (AND, không phải OR)
	f.MarketId = "m2"
	if MatchesFilter(s, f) {
		t.Error("Một điều kiện sai thì không được match (kết hợp AND)")
	}
}

func TestBuildListFilter_Fields(t *testing.T) {
	if got := BuildListFilter(nil, true); len(got) != 0 {
		t.Errorf("Filter nil phải ra filter rỗng, nhận %v", got)
	}

	f := &reviewdto.SuggestionFilterInput{
		Status:     reviewmodels.StatusPending,
		MarketId:   "m1",
		SearchTerm: "starbucks",
	}
	filter := BuildListFilter(f, false)
	if filter["status"] != reviewmodels.StatusPending {
		t.Errorf("status phải vào filter, nhận %v", filter["status"])
	}
	if filter["marketId"] != "m1" {
		t.Errorf("marketId phải vào filter, nhận %v", filter["marketId"])
	}
	if _, ok := filter["$or"]; ok {
		t.Error("includeSearch=false không được sinh khối $or")
	}
}

func TestBuildListFilter_SearchRegex(t *testing.T) {
	f := &reviewdto.SuggestionFilterInput{SearchTerm: "Main St. (NY)"}
	filter := BuildListFilter(f, true)

	or, ok := filter["$or"].(bson.A)
	if !ok {
		t.Fatalf("searchTerm phải sinh khối $or, nhận %v", filter["$or"])
	}
	if len(or) != 4 {
		t.Fatalf("$or phải phủ 4 field tên/địa chỉ, nhận %d", len(or))
	}

	first, ok := or[0].(bson.M)
	if !ok {
		t.Fatalf("Phần tử $or phải là bson.M, nhận %T", or[0])
	}
	re, ok := first["sourceName"].(primitive.Regex)
	if !ok {
		t.Fatalf("Điều kiện sourceName phải là regex, nhận %T", first["sourceName"])
	}
	if re.Options != "i" {
		t.Errorf("Regex phải không phân biệt hoa thường, options = %q", re.Options)
	}
	if re.Pattern != `Main St\. \(NY\)` {
		t.Errorf("Ký tự đặc biệt trong searchTerm phải được escape, pattern = %q", re.Pattern)
	}
}

// Cả hai guard dưới đây phải từ chối trước khi chạm tới collection:
// service rỗng (chưa gắn collection) sẽ panic nếu guard bị bỏ qua.

func TestAddComment_RejectsBlankText(t *testing.T) {
	svc := &SuggestionService{}
	updated, err := svc.AddComment(context.Background(), "sugg-1", &reviewdto.CommentCreateInput{Text: "   "}, "")
	if updated != nil {
		t.Error("Text toàn khoảng trắng không được tạo comment")
	}

	var cerr *common.Error
	if !errors.As(err, &cerr) {
		t.Fatalf("Muốn *common.Error, nhận %v", err)
	}
	if cerr.StatusCode != common.StatusBadRequest {
		t.Errorf("Muốn status %d, nhận %d", common.StatusBadRequest, cerr.StatusCode)
	}
	if cerr.Code != common.ErrCodeValidationInput {
		t.Errorf("Muốn code %v, nhận %v", common.ErrCodeValidationInput, cerr.Code)
	}
}

func TestUpdateStatus_RejectsInvalidStatus(t *testing.T) {
	svc := &SuggestionService{}
	updated, err := svc.UpdateStatus(context.Background(), "sugg-1", "Done", "alice")
	if updated != nil {
		t.Error("Trạng thái không hợp lệ không được cập nhật suggestion")
	}

	var cerr *common.Error
	if !errors.As(err, &cerr) {
		t.Fatalf("Muốn *common.Error, nhận %v", err)
	}
	if cerr.StatusCode != common.StatusBadRequest {
		t.Errorf("Muốn status %d, nhận %d", common.StatusBadRequest, cerr.StatusCode)
	}
}
