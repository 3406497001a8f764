package inputval

import (
	"testing"

	"github.com/dalemusser/evidencehub/internal/domain/models"
)

func TestParseWeek(t *testing.T) {
	tests := []struct {
		in   string
		def  int
		want int
	}{
		{"5", 1, 5},
		{" 12 ", 1, 12},
		{"1", 1, 1},
		{"17", 1, 17},
		{"0", 1, models.MinWeek},
		{"-3", 1, models.MinWeek},
		{"18", 1, models.MaxWeek},
		{"999", 1, models.MaxWeek},
		{"", 4, 4},
		{"abc", 7, 7},
		{"3.5", 2, 2},
	}
	for _, tt := range tests {
		if got := ParseWeek(tt.in, tt.def); got != tt.want {
			t.Errorf("ParseWeek(%q, %d) = %d, want %d", tt.in, tt.def, got, tt.want)
		}
	}
}

func TestSplitTags(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"   ", nil},
		{",,,", nil},
		{"hiragana", []string{"hiragana"}},
		{"hiragana,writing,practice", []string{"hiragana", "writing", "practice"}},
		{" hiragana , writing ", []string{"hiragana", "writing"}},
		{"a,,b", []string{"a", "b"}},
	}
	for _, tt := range tests {
		got := SplitTags(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("SplitTags(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("SplitTags(%q) = %v, want %v", tt.in, got, tt.want)
				break
			}
		}
	}
}
