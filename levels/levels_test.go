package levels

import "testing"

func TestCumulativeXPKnownValues(t *testing.T) {
	cases := []struct {
		level int
		xp    int
	}{
		{1, 0},
		{2, 83},
		{3, 174},
		{10, 1154},
		{50, 101333},
		{92, 6517253},
		{99, 13034431},
		{126, 188884740},
	}
	for _, tc := range cases {
		if got := CumulativeXP(tc.level); got != tc.xp {
			t.Errorf("CumulativeXP(%d) = %d, want %d", tc.level, got, tc.xp)
		}
	}
}

func TestCumulativeXPStrictlyIncreasing(t *testing.T) {
	prev := CumulativeXP(1)
	for level := 2; level <= MaxLevel; level++ {
		cur := CumulativeXP(level)
		if cur <= prev {
			t.Fatalf("curve not strictly increasing at level %d: %d <= %d", level, cur, prev)
		}
		prev = cur
	}
}

func TestForXPRoundTrip(t *testing.T) {
	for level := 1; level <= 100; level++ {
		if got := ForXP(CumulativeXP(level)); got != level {
			t.Errorf("ForXP(CumulativeXP(%d)) = %d", level, got)
		}
	}
}

func TestForXPBoundaries(t *testing.T) {
	if got := ForXP(0); got != 1 {
		t.Errorf("ForXP(0) = %d, want 1", got)
	}
	if got := ForXP(-5); got != 1 {
		t.Errorf("ForXP(-5) = %d, want 1", got)
	}
	if got := ForXP(82); got != 1 {
		t.Errorf("ForXP(82) = %d, want 1", got)
	}
	if got := ForXP(83); got != 2 {
		t.Errorf("ForXP(83) = %d, want 2", got)
	}
	if got := ForXP(1 << 40); got != MaxLevel {
		t.Errorf("ForXP(huge) = %d, want %d", got, MaxLevel)
	}
}

func TestProgressForXP(t *testing.T) {
	p := ProgressForXP(50)
	if p.Level != 1 {
		t.Errorf("level = %d, want 1", p.Level)
	}
	if p.XPInto != 50 {
		t.Errorf("xp into level = %d, want 50", p.XPInto)
	}
	if p.XPNeed != 83 {
		t.Errorf("xp needed = %d, want 83", p.XPNeed)
	}
	if p.Percent != 100*50/83 {
		t.Errorf("percent = %d, want %d", p.Percent, 100*50/83)
	}

	// At the very top of the curve there is no next level to fill.
	top := ProgressForXP(CumulativeXP(MaxLevel))
	if top.Level != MaxLevel || top.Percent != 100 {
		t.Errorf("top of curve: got level %d percent %d", top.Level, top.Percent)
	}
}
