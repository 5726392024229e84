package db

import "gorm.io/gorm"

type Repositories struct {
	Branches     *BranchRepository
	Users        *UserRepository
	Workouts     *WorkoutRepository
	BodyLogs     *BodyLogRepository
	Posts        *PostRepository
	Exercises    *ExerciseRepository
	Plans        *PlanRepository
	Appointments *AppointmentRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Branches:     NewBranchRepository(database),
		Users:        NewUserRepository(database),
		Workouts:     NewWorkoutRepository(database),
		BodyLogs:     NewBodyLogRepository(database),
		Posts:        NewPostRepository(database),
		Exercises:    NewExerciseRepository(database),
		Plans:        NewPlanRepository(database),
		Appointments: NewAppointmentRepository(database),
	}
}
