package services

import "math"

// Level progression: every 1000 points is one level, starting at 1.
const pointsPerLevel = 1000

func Level(points int) int {
	if points < 0 {
		points = 0
	}
	return points/pointsPerLevel + 1
}

// ProgressToNextLevel reports how far into the current level the points
// reach, as a fraction in [0, 1).
func ProgressToNextLevel(points int) float64 {
	if points < 0 {
		points = 0
	}
	return float64(points%pointsPerLevel) / float64(pointsPerLevel)
}

func XPToNextLevel(points int) int {
	if points < 0 {
		points = 0
	}
	return Level(points)*pointsPerLevel - points
}

// WorkoutXP awards experience for a completed session: 1.5 XP per
// minute plus 0.1 XP per calorie, truncated.
func WorkoutXP(durationMinutes int, caloriesBurned int) int {
	return int(math.Floor(float64(durationMinutes)*1.5 + float64(caloriesBurned)*0.1))
}

// Progression is the member-facing level summary.
type Progression struct {
	Points        int     `json:"points"`
	Level         int     `json:"level"`
	Progress      float64 `json:"progress"`
	XPToNextLevel int     `json:"xpToNextLevel"`
	StreakDays    int     `json:"streakDays"`
}

func BuildProgression(points int, streakDays int) Progression {
	return Progression{
		Points:        points,
		Level:         Level(points),
		Progress:      ProgressToNextLevel(points),
		XPToNextLevel: XPToNextLevel(points),
		StreakDays:    streakDays,
	}
}
