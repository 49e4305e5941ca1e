package shooter

import "testing"

func TestXPForLevel(t *testing.T) {
	tests := []struct {
		level    int
		expected int
	}{
		{1, 100},
		{2, 150},
		{3, 225},
		{4, 337},
		{5, 506},
	}

	for _, tt := range tests {
		if got := xpForLevel(tt.level); got != tt.expected {
			t.Errorf("xpForLevel(%d) = %d, expected %d", tt.level, got, tt.expected)
		}
	}
}

func TestRunStatsAddXP(t *testing.T) {
	tests := []struct {
		name         string
		grants       []int
		expectLevel  int
		expectXP     int
		expectNext   int
		expectGained int
	}{
		{"below threshold", []int{50}, 1, 50, 100, 0},
		{"one level with overflow", []int{120}, 2, 20, 150, 1},
		{"exact thresholds", []int{100, 150}, 3, 0, 225, 2},
		{"multi level in one grant", []int{475}, 4, 0, 337, 3},
		{"zero and negative ignored", []int{0, -20}, 1, 0, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewRunStats()
			gained := 0
			for _, g := range tt.grants {
				gained += s.AddXP(g)
			}
			if s.Level != tt.expectLevel {
				t.Errorf("Level = %d, expected %d", s.Level, tt.expectLevel)
			}
			if s.CurrentXP != tt.expectXP {
				t.Errorf("CurrentXP = %d, expected %d", s.CurrentXP, tt.expectXP)
			}
			if s.XPToNextLevel != tt.expectNext {
				t.Errorf("XPToNextLevel = %d, expected %d", s.XPToNextLevel, tt.expectNext)
			}
			if gained != tt.expectGained {
				t.Errorf("levels gained = %d, expected %d", gained, tt.expectGained)
			}
		})
	}
}
