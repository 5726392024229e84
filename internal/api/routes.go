package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Get("/me", handler.AuthRequired, handler.Me)

	api.Get("/branches", handler.AuthRequired, handler.GetBranches)

	users := api.Group("/users", handler.AuthRequired)
	users.Get("", handler.GetUsers)
	users.Get("/:id", handler.GetUser)
	users.Put("/:id", handler.UpdateUser)

	workouts := api.Group("/workouts", handler.AuthRequired)
	workouts.Get("", handler.GetWorkouts)
	workouts.Post("", handler.LogWorkout)

	bodyLogs := api.Group("/body-logs", handler.AuthRequired)
	bodyLogs.Get("", handler.GetBodyLogs)
	bodyLogs.Post("", handler.AddBodyLog)

	posts := api.Group("/posts", handler.AuthRequired)
	posts.Get("", handler.GetPosts)
	posts.Post("", handler.CreatePost)
	posts.Post("/:id/like", handler.LikePost)

	api.Get("/leaderboard/fat-loss", handler.AuthRequired, handler.GetFatLossLeaderboard)
	api.Get("/progression", handler.AuthRequired, handler.GetProgression)

	exercises := api.Group("/exercises", handler.AuthRequired)
	exercises.Get("", handler.GetExercises)
	exercises.Post("", handler.CoachOrAdmin, handler.CreateExercise)

	plan := api.Group("/plan", handler.AuthRequired)
	plan.Get("", handler.GetPlan)
	plan.Post("", handler.AddToPlan)
	plan.Patch("/:id", handler.UpdatePlanEntry)
	plan.Delete("/:id", handler.RemovePlanEntry)

	appointments := api.Group("/appointments", handler.AuthRequired)
	appointments.Get("", handler.GetAppointments)
	appointments.Post("", handler.CoachOrAdmin, handler.ScheduleAppointment)
	appointments.Delete("/:id", handler.CancelAppointment)

	api.Post("/captions", handler.AuthRequired, handler.GenerateCaption)

	uploads := api.Group("/uploads", handler.AuthRequired)
	uploads.Post("/avatar", handler.UploadAvatar)
	uploads.Post("/progress", handler.UploadProgressPhoto)
	uploads.Post("/post-image", handler.UploadPostImage)
}
