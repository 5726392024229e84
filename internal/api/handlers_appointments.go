package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/hypergym/hypergym/internal/services"
)

func (handler *Handler) GetAppointments(c *fiber.Ctx) error {
	requester, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	appointments, err := handler.appointmentService.VisibleAppointments(requester)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(appointments)
}

type scheduleAppointmentInput struct {
	CoachID   string    `json:"coachId"`
	MemberID  string    `json:"memberId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Type      string    `json:"type"`
}

// ScheduleAppointment books a coach/member slot. Coaches may only book
// for themselves; admins may book on behalf of any coach.
func (handler *Handler) ScheduleAppointment(c *fiber.Ctx) error {
	requester, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := scheduleAppointmentInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if requester.IsCoach() && input.CoachID != requester.ID {
		return apiError(c, fiber.StatusForbidden, "coaches can only schedule their own slots")
	}

	appointment, err := handler.appointmentService.Schedule(services.AppointmentInput{
		CoachID:   input.CoachID,
		MemberID:  input.MemberID,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Type:      input.Type,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(appointment)
}

func (handler *Handler) CancelAppointment(c *fiber.Ctx) error {
	requester, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := handler.appointmentService.Cancel(requester, c.Params("id")); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
