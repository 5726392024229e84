package services

import "testing"

func TestWorkoutXPCombinesDurationAndCalories(t *testing.T) {
	cases := []struct {
		name     string
		duration int
		calories int
		want     int
	}{
		{name: "typical session", duration: 60, calories: 450, want: 135},
		{name: "duration only", duration: 40, calories: 0, want: 60},
		{name: "truncates fractions", duration: 1, calories: 3, want: 1},
		{name: "zero everything", duration: 0, calories: 0, want: 0},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			if got := WorkoutXP(testCase.duration, testCase.calories); got != testCase.want {
				t.Fatalf("expected %d XP, got %d", testCase.want, got)
			}
		})
	}
}

func TestLevelStartsAtOneAndStepsEveryThousandPoints(t *testing.T) {
	cases := []struct {
		points int
		want   int
	}{
		{points: 0, want: 1},
		{points: 999, want: 1},
		{points: 1000, want: 2},
		{points: 3400, want: 4},
		{points: -5, want: 1},
	}

	for _, testCase := range cases {
		if got := Level(testCase.points); got != testCase.want {
			t.Fatalf("expected level %d for %d points, got %d", testCase.want, testCase.points, got)
		}
	}
}

func TestBuildProgressionSummary(t *testing.T) {
	progression := BuildProgression(3400, 12)

	if progression.Level != 4 {
		t.Fatalf("expected level 4, got %d", progression.Level)
	}
	if progression.Progress != 0.4 {
		t.Fatalf("expected progress 0.4, got %v", progression.Progress)
	}
	if progression.XPToNextLevel != 600 {
		t.Fatalf("expected 600 XP to next level, got %d", progression.XPToNextLevel)
	}
	if progression.StreakDays != 12 {
		t.Fatalf("expected streak 12, got %d", progression.StreakDays)
	}
}
