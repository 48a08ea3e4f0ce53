package tetris

// MaxLevel is the highest reachable level.
const MaxLevel = 19

// LinesPerLevel is the number of cleared lines needed to advance a level.
const LinesPerLevel = 10

// gravityIntervals is the number of ticks between automatic drops for
// each level. Non-increasing; the last entry is the floor.
var gravityIntervals = [MaxLevel + 1]int{
	50, 48, 46, 44, 42, 40, 38, 36, 34, 32,
	30, 28, 26, 24, 22, 20, 16, 12, 8, 4,
}

// lineScores is the base award for clearing n lines in one tick.
var lineScores = [5]int{0, 40, 100, 300, 1200}

// GravityInterval returns the ticks between gravity steps at the given
// level. Levels outside [0, MaxLevel] are clamped.
func GravityInterval(level int) int {
	return gravityIntervals[clampLevel(level)]
}

// LineScore returns the points for clearing n lines at once on level.
func LineScore(n, level int) int {
	if n <= 0 {
		return 0
	}
	if n >= len(lineScores) {
		n = len(lineScores) - 1
	}
	return lineScores[n] * (clampLevel(level) + 1)
}

func clampLevel(level int) int {
	if level < 0 {
		return 0
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}
