package models

const (
	ExerciseLevelBeginner     = "Beginner"
	ExerciseLevelIntermediate = "Intermediate"
	ExerciseLevelPro          = "Pro"
	ExerciseLevelElite        = "Elite"
)

const (
	ExerciseTypeStrength    = "Strength"
	ExerciseTypeCardio      = "Cardio"
	ExerciseTypeMuscle      = "Muscle"
	ExerciseTypeFlexibility = "Flexibility"
)

// GlobalBranchID marks an exercise as part of the shared default
// library, visible to every branch.
const GlobalBranchID = ""

// Exercise is a library entry members build daily plans from. Custom
// exercises belong to one branch; defaults carry GlobalBranchID.
type Exercise struct {
	ID                       string  `gorm:"primaryKey" json:"id"`
	BranchID                 string  `gorm:"index" json:"branchId"`
	Name                     string  `gorm:"not null" json:"name"`
	Description              string  `json:"description"`
	DefaultCaloriesPerMinute float64 `gorm:"not null" json:"defaultCaloriesPerMinute"`
	DefaultDurationMinutes   int     `gorm:"not null" json:"defaultDurationMinutes"`
	Level                    string  `gorm:"not null" json:"level"`
	Type                     string  `gorm:"not null" json:"type"`
	ImageURL                 string  `json:"imageUrl,omitempty"`
}

func ValidExerciseLevel(level string) bool {
	switch level {
	case ExerciseLevelBeginner, ExerciseLevelIntermediate, ExerciseLevelPro, ExerciseLevelElite:
		return true
	default:
		return false
	}
}

func ValidExerciseType(exerciseType string) bool {
	switch exerciseType {
	case ExerciseTypeStrength, ExerciseTypeCardio, ExerciseTypeMuscle, ExerciseTypeFlexibility:
		return true
	default:
		return false
	}
}
