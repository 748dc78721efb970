// Package models - Test chuẩn hóa level và ánh xạ flag key.
package models

import "testing"

func TestNormalizeLevel(t *testing.T) {
	cases := []struct {
		input string
		want  string
		ok    bool
	}{
		{"junior", "junior", true},
		{"mid", "mid", true},
		{"middle", "mid", true},
		{"senior", "senior", true},
		{"expert", "", false},
		{"Junior", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := NormalizeLevel(c.input)
		if got != c.want || ok != c.ok {
			t.Errorf("NormalizeLevel(%q) = (%q, %v), mong (%q, %v)", c.input, got, ok, c.want, c.ok)
		}
	}
}

func TestLevelFlagKey(t *testing.T) {
	cases := []struct {
		input string
		want  string
		ok    bool
	}{
		{"junior", "junior", true},
		{"mid", "middle", true},
		{"middle", "middle", true},
		{"senior", "senior", true},
		{"lead", "", false},
	}
	for _, c := range cases {
		got, ok := LevelFlagKey(c.input)
		if got != c.want || ok != c.ok {
			t.Errorf("LevelFlagKey(%q) = (%q, %v), mong (%q, %v)", c.input, got, ok, c.want, c.ok)
		}
	}
}

func TestCategoryLevelFlags_IsReady(t *testing.T) {
	flags := CategoryLevelFlags{Junior: true, Senior: true}
	if !flags.IsReady("junior") {
		t.Error("Cờ junior đã bật nhưng IsReady trả về false")
	}
	if flags.IsReady("middle") {
		t.Error("Cờ middle chưa bật nhưng IsReady trả về true")
	}
	if !flags.IsReady("senior") {
		t.Error("Cờ senior đã bật nhưng IsReady trả về false")
	}
	if flags.IsReady("mid") {
		t.Error("IsReady chỉ nhận flag key, \"mid\" phải trả về false")
	}
}
