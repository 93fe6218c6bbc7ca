// Package models - Test phân loại matchScore và trạng thái review.
package models

import "testing"

func TestCategoryForScore_Thresholds(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{0.95, CategoryHigh},
		{0.81, CategoryHigh},
		{0.8, CategoryMedium}, // ngưỡng là so sánh strict (>), 0.8 chưa phải High
		{0.65, CategoryMedium},
		{0.51, CategoryMedium},
		{0.5, CategoryLow}, // 0.5 chưa phải Medium
		{0.3, CategoryLow},
		{0, CategoryLow},
	}
	for _, c := range cases {
		if got := CategoryForScore(c.score); got != c.want {
			t.Errorf("CategoryForScore(%v) = %q, muốn %q", c.score, got, c.want)
		}
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range AllStatuses {
		if !IsValidStatus(s) {
			t.Errorf("IsValidStatus(%q) phải là true", s)
		}
	}
	for _, s := range []string{"", "pending", "Done", "APPROVED"} {
		if IsValidStatus(s) {
			t.Errorf("IsValidStatus(%q) phải là false (status phân biệt hoa thường)", s)
		}
	}
}

func TestSuggestionIsFinalized(t *testing.T) {
	cases := []struct {
		status string
		want   bool
	}{
		{StatusPending, false},
		{StatusFlagged, false},
		{StatusApproved, true},
		{StatusRejected, true},
	}
	for _, c := range cases {
		s := Suggestion{Status: c.status}
		if got := s.IsFinalized(); got != c.want {
			t.Errorf("IsFinalized với status %q = %v, muốn %v", c.status, got, c.want)
		}
	}
}
