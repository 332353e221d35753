package controller

import (
	"net/http"

	"clinic-appointment-api/core/controller"
	"clinic-appointment-api/modules/doctor/dto"
	"clinic-appointment-api/modules/doctor/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// DoctorController handles doctor HTTP requests.
type DoctorController struct {
	controller.BaseController
	DoctorService service.DoctorServiceInterface
}

func NewDoctorController(svc service.DoctorServiceInterface) *DoctorController {
	return &DoctorController{
		BaseController: controller.NewBaseController(),
		DoctorService:  svc,
	}
}

// List handles GET /doctors
// @Summary List all doctors
// @Tags Doctor
// @Produce json
// @Router /doctors [get]
func (c *DoctorController) List(ctx echo.Context) error {
	result, appErr := c.DoctorService.List(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result)
}

// Get handles GET /doctors/:id
// @Summary Get a doctor by ID
// @Tags Doctor
// @Produce json
// @Param id path string true "Doctor ID"
// @Router /doctors/{id} [get]
func (c *DoctorController) Get(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(ctx, "Invalid doctor ID")
	}

	result, appErr := c.DoctorService.GetByID(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result)
}

// GetSlots handles GET /doctors/:id/slots?date=YYYY-MM-DD
// @Summary Get a doctor's free 30-minute slots for a day
// @Tags Doctor
// @Produce json
// @Param id path string true "Doctor ID"
// @Param date query string true "Calendar day (YYYY-MM-DD)"
// @Router /doctors/{id}/slots [get]
func (c *DoctorController) GetSlots(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(ctx, "Invalid doctor ID")
	}

	slots, appErr := c.DoctorService.GetAvailableSlots(ctx.Request().Context(), id, ctx.QueryParam("date"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return ctx.JSON(http.StatusOK, &dto.SlotsResponse{Success: true, AvailableSlots: slots})
}

// Create handles POST /doctors
// @Summary Register a doctor
// @Tags Doctor
// @Accept json
// @Produce json
// @Param request body dto.CreateDoctorRequest true "Doctor fields"
// @Router /doctors [post]
func (c *DoctorController) Create(ctx echo.Context) error {
	var req dto.CreateDoctorRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(ctx, "Invalid request body")
	}

	result, appErr := c.DoctorService.Create(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.CreatedResponse(ctx, result)
}

// Delete handles DELETE /doctors/:id
// @Summary Delete a doctor
// @Tags Doctor
// @Produce json
// @Param id path string true "Doctor ID"
// @Router /doctors/{id} [delete]
func (c *DoctorController) Delete(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(ctx, "Invalid doctor ID")
	}

	if appErr := c.DoctorService.Delete(ctx.Request().Context(), id); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.MessageResponse(ctx, "Doctor deleted successfully")
}
