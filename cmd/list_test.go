package cmd

import "testing"

func TestCountLabel(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0 entries"},
		{1, "1 entry"},
		{2, "2 entries"},
		{120, "120 entries"},
	}
	for _, tt := range tests {
		got := countLabel(tt.n)
		if got != tt.want {
			t.Errorf("countLabel(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
