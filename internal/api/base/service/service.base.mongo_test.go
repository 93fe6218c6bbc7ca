// Package basesvc - Test chuyển đổi dữ liệu partial update.
package basesvc

import "testing"

func TestToUpdateData_PassthroughPointer(t *testing.T) {
	in := &UpdateData{Set: map[string]interface{}{"status": "Approved"}}
	out, err := ToUpdateData(in)
	if err != nil {
		t.Fatalf("ToUpdateData lỗi: %v", err)
	}
	if out != in {
		t.Error("UpdateData pointer phải được trả về nguyên vẹn")
	}
}

func TestToUpdateData_ValueToPointer(t *testing.T) {
	in := UpdateData{Unset: map[string]interface{}{"salesContribution": ""}}
	out, err := ToUpdateData(in)
	if err != nil {
		t.Fatalf("ToUpdateData lỗi: %v", err)
	}
	if out == nil || out.Unset == nil {
		t.Fatal("UpdateData value phải được chuyển thành pointer giữ nguyên Unset")
	}
	if _, ok := out.Unset["salesContribution"]; !ok {
		t.Error("Unset phải giữ key salesContribution")
	}
}

func TestToUpdateData_PlainMapWrappedInSet(t *testing.T) {
	out, err := ToUpdateData(map[string]interface{}{
		"status":        "Rejected",
		"lastUpdatedBy": "alice",
	})
	if err != nil {
		t.Fatalf("ToUpdateData lỗi: %v", err)
	}
	if out.Set == nil {
		t.Fatal("Map thường phải được wrap trong $set")
	}
	if out.Set["status"] != "Rejected" || out.Set["lastUpdatedBy"] != "alice" {
		t.Errorf("Nội dung $set sai: %v", out.Set)
	}
	if out.Unset != nil || out.Push != nil {
		t.Error("Map thường không được sinh ra $unset/$push")
	}
}

func TestIsZeroTimestamp(t *testing.T) {
	cases := []struct {
		value interface{}
		want  bool
	}{
		{int64(0), true},
		{int32(0), true},
		{0, true},
		{float64(0), true},
		{nil, true},
		{int64(1756600000000), false},
		{float64(1756600000000), false},
		{"0", false}, // string không phải timestamp hợp lệ, không coi là zero
	}
	for _, c := range cases {
		if got := isZeroTimestamp(c.value); got != c.want {
			t.Errorf("isZeroTimestamp(%#v) = %v, muốn %v", c.value, got, c.want)
		}
	}
}
