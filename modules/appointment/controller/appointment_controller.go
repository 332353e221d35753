package controller

import (
	"clinic-appointment-api/core/controller"
	"clinic-appointment-api/modules/appointment/dto"
	"clinic-appointment-api/modules/appointment/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AppointmentController handles appointment HTTP requests.
type AppointmentController struct {
	controller.BaseController
	AppointmentService service.AppointmentServiceInterface
}

func NewAppointmentController(svc service.AppointmentServiceInterface) *AppointmentController {
	return &AppointmentController{
		BaseController:     controller.NewBaseController(),
		AppointmentService: svc,
	}
}

// List handles GET /appointments
// @Summary List all appointments with their doctors
// @Tags Appointment
// @Produce json
// @Router /appointments [get]
func (c *AppointmentController) List(ctx echo.Context) error {
	result, appErr := c.AppointmentService.List(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result)
}

// Get handles GET /appointments/:id
// @Summary Get an appointment by ID
// @Tags Appointment
// @Produce json
// @Param id path string true "Appointment ID"
// @Router /appointments/{id} [get]
func (c *AppointmentController) Get(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(ctx, "Invalid appointment ID")
	}

	result, appErr := c.AppointmentService.GetByID(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result)
}

// Create handles POST /appointments
// @Summary Book an appointment
// @Tags Appointment
// @Accept json
// @Produce json
// @Param request body dto.CreateAppointmentRequest true "Appointment fields"
// @Router /appointments [post]
func (c *AppointmentController) Create(ctx echo.Context) error {
	var req dto.CreateAppointmentRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(ctx, "Invalid request body")
	}

	result, appErr := c.AppointmentService.Create(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.CreatedResponse(ctx, result)
}

// Delete handles DELETE /appointments/:id
// @Summary Delete an appointment
// @Tags Appointment
// @Produce json
// @Param id path string true "Appointment ID"
// @Router /appointments/{id} [delete]
func (c *AppointmentController) Delete(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(ctx, "Invalid appointment ID")
	}

	if appErr := c.AppointmentService.Delete(ctx.Request().Context(), id); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.MessageResponse(ctx, "Appointment deleted")
}
