package aoc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBlocks(t *testing.T) {
	tests := []struct {
		in   string
		want [][]string
	}{
		{
			in:   "a\nb\n\nc\n",
			want: [][]string{{"a", "b"}, {"c"}},
		},
		{
			in:   "\n\na\n\n\n\nb\nc",
			want: [][]string{{"a"}, {"b", "c"}},
		},
		{
			in:   "",
			want: nil,
		},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, Blocks(tt.in)); diff != "" {
			t.Errorf("Blocks(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestFold(t *testing.T) {
	got := Fold([]string{"a", "bb", "ccc"}, func(n int, s string) int { return n + len(s) }, 10)
	if got != 16 {
		t.Errorf("Fold = %d, want 16", got)
	}
}

func TestOr(t *testing.T) {
	if got := Or("", "", "x", "y"); got != "x" {
		t.Errorf("Or = %q, want %q", got, "x")
	}
	if got := Or(0, 0); got != 0 {
		t.Errorf("Or = %d, want 0", got)
	}
}

func TestMath(t *testing.T) {
	if got := AbsDiff[uint8](3, 250); got != 247 {
		t.Errorf("AbsDiff = %d, want 247", got)
	}
	if got := Abs(-4); got != 4 {
		t.Errorf("Abs = %d, want 4", got)
	}
	if diff := cmp.Diff([]int{1, 0, 9}, Digits("109")); diff != "" {
		t.Errorf("Digits mismatch (-want +got):\n%s", diff)
	}
}
