package core

import "testing"

func TestAlienRowColor(t *testing.T) {
	tests := []struct {
		row  int
		want Color
	}{
		{0, ColorAlienTop},
		{1, ColorAlienMid},
		{2, ColorAlienMid},
		{3, ColorAlienLow},
		{4, ColorAlienLow},
		{5, ColorAlienTop},
		{-1, ColorAlienMid},
	}

	for _, tt := range tests {
		if got := AlienRowColor(tt.row); got != tt.want {
			t.Errorf("AlienRowColor(%d) = %d, expected %d", tt.row, got, tt.want)
		}
	}
}
