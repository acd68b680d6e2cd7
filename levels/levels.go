// Package levels implements the XP curve that maps cumulative experience
// points to player levels. The curve is the classic RuneScape formula, kept
// bit-identical so that progress imported from other tools lines up.
package levels

import "math"

// MaxLevel is the highest attainable level on the curve.
const MaxLevel = 126

// CumulativeXP returns the total XP required to reach the given level.
// Level 1 requires 0 XP. Levels outside [1, MaxLevel] are clamped.
func CumulativeXP(level int) int {
	if level < 1 {
		level = 1
	}
	if level > MaxLevel {
		level = MaxLevel
	}

	points := 0
	for i := 1; i < level; i++ {
		points += i + int(300*math.Pow(2, float64(i)/7))
	}
	return points / 4
}

// ForXP returns the largest level whose threshold does not exceed xp.
func ForXP(xp int) int {
	if xp < 0 {
		return 1
	}
	level := 1
	for level < MaxLevel && CumulativeXP(level+1) <= xp {
		level++
	}
	return level
}

// Progress describes where a given XP total sits within its level.
type Progress struct {
	Level   int `json:"level"`
	XPInto  int `json:"xpIntoLevel"`
	XPNeed  int `json:"xpNeededForLevel"`
	Percent int `json:"progressPercent"`
}

// ProgressForXP computes level plus progress toward the next level.
func ProgressForXP(xp int) Progress {
	level := ForXP(xp)
	into := xp - CumulativeXP(level)
	need := CumulativeXP(level+1) - CumulativeXP(level)

	// need can only be zero at MaxLevel; treat a full bar as done.
	percent := 100
	if need > 0 {
		percent = 100 * into / need
	}
	return Progress{
		Level:   level,
		XPInto:  into,
		XPNeed:  need,
		Percent: percent,
	}
}
