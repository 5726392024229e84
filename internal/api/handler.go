package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/hypergym/hypergym/internal/db"
	"github.com/hypergym/hypergym/internal/media"
	"github.com/hypergym/hypergym/internal/models"
	"github.com/hypergym/hypergym/internal/services"
)

const (
	contextUserKey = "current_user"

	authTokenTTL = 7 * 24 * time.Hour
)

type Handler struct {
	repositories *db.Repositories
	secretKey    []byte

	authService        *services.AuthService
	userService        *services.UserService
	branchService      *services.BranchService
	workoutService     *services.WorkoutService
	bodyLogService     *services.BodyLogService
	postService        *services.PostService
	exerciseService    *services.ExerciseService
	planService        *services.PlanService
	appointmentService *services.AppointmentService
	leaderboardService *services.LeaderboardService

	captionService *services.CaptionService
	uploader       *media.Uploader
}

// NewHandler wires the repositories and services behind the HTTP
// surface. The uploader may be nil; the upload endpoints then answer
// 503 instead of the server refusing to start.
func NewHandler(database *gorm.DB, secretKey []byte, captions *services.CaptionService, uploader *media.Uploader) *Handler {
	repositories := db.NewRepositories(database)

	return &Handler{
		repositories:       repositories,
		secretKey:          secretKey,
		authService:        services.NewAuthService(repositories.Users),
		userService:        services.NewUserService(repositories.Users),
		branchService:      services.NewBranchService(repositories.Branches),
		workoutService:     services.NewWorkoutService(repositories.Workouts),
		bodyLogService:     services.NewBodyLogService(repositories.BodyLogs),
		postService:        services.NewPostService(repositories.Posts),
		exerciseService:    services.NewExerciseService(repositories.Exercises),
		planService:        services.NewPlanService(repositories.Plans, repositories.Exercises),
		appointmentService: services.NewAppointmentService(repositories.Appointments, repositories.Users),
		leaderboardService: services.NewLeaderboardService(repositories.Users, repositories.BodyLogs),
		captionService:     captions,
		uploader:           uploader,
	}
}

func currentUser(c *fiber.Ctx) (models.User, bool) {
	user, ok := c.Locals(contextUserKey).(models.User)
	return user, ok
}
