// Package global - Test các custom validator.
package global

import "testing"

type statusInput struct {
	Status string `validate:"omitempty,review_status"`
}

type commentInput struct {
	Text       string `validate:"required,no_xss"`
	ReasonCode string `validate:"omitempty,reason_code"`
}

type categoryInput struct {
	MatchCategory string `validate:"omitempty,match_category"`
}

func TestValidateReviewStatus(t *testing.T) {
	InitValidator()

	for _, s := range []string{"Pending", "Approved", "Rejected", "Flagged"} {
		if err := Validate.Struct(&statusInput{Status: s}); err != nil {
			t.Errorf("Status %q phải hợp lệ: %v", s, err)
		}
	}
	for _, s := range []string{"pending", "Done", "APPROVED"} {
		if err := Validate.Struct(&statusInput{Status: s}); err == nil {
			t.Errorf("Status %q phải bị từ chối", s)
		}
	}
	// omitempty: rỗng thì bỏ qua validate
	if err := Validate.Struct(&statusInput{}); err != nil {
		t.Errorf("Status rỗng với omitempty phải hợp lệ: %v", err)
	}
}

func TestValidateNoXSS(t *testing.T) {
	InitValidator()

	safe := []string{
		"Địa chỉ không khớp với nguồn",
		"Approved sau khi kiểm tra hiện trường",
	}
	for _, text := range safe {
		if err := Validate.Struct(&commentInput{Text: text}); err != nil {
			t.Errorf("Text an toàn %q phải hợp lệ: %v", text, err)
		}
	}

	dangerous := []string{
		"<script>alert(1)</script>",
		"click <IFRAME src=x>",
		"javascript:void(0)",
		"x onerror=alert(1)",
	}
	for _, text := range dangerous {
		if err := Validate.Struct(&commentInput{Text: text}); err == nil {
			t.Errorf("Text nguy hiểm %q phải bị từ chối", text)
		}
	}
}

func TestValidateReasonCode(t *testing.T) {
	InitValidator()

	valid := []string{"", "Mismatch", "Incomplete Data", "Duplicate", "Requires Validation", "Other"}
	for _, code := range valid {
		if err := Validate.Struct(&commentInput{Text: "ok", ReasonCode: code}); err != nil {
			t.Errorf("ReasonCode %q phải hợp lệ: %v", code, err)
		}
	}
	for _, code := range []string{"mismatch", "Unknown", "Spam"} {
		if err := Validate.Struct(&commentInput{Text: "ok", ReasonCode: code}); err == nil {
			t.Errorf("ReasonCode %q phải bị từ chối", code)
		}
	}
}

func TestValidateMatchCategory(t *testing.T) {
	InitValidator()

	for _, c := range []string{"High", "Medium", "Low"} {
		if err := Validate.Struct(&categoryInput{MatchCategory: c}); err != nil {
			t.Errorf("MatchCategory %q phải hợp lệ: %v", c, err)
		}
	}
	if err := Validate.Struct(&categoryInput{MatchCategory: "high"}); err == nil {
		t.Error("MatchCategory phân biệt hoa thường, 'high' phải bị từ chối")
	}
}
