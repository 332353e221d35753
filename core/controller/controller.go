package controller

import (
	"net/http"

	"clinic-appointment-api/core/errors"
	"clinic-appointment-api/core/logger"

	"github.com/labstack/echo/v4"
)

// Response is the JSON envelope every endpoint answers with: data on success,
// a human-readable message on failure (or for bare confirmations).
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

type BaseController interface {
	SuccessResponse(c echo.Context, data any) error
	CreatedResponse(c echo.Context, data any) error
	MessageResponse(c echo.Context, message string) error
	BadRequest(c echo.Context, message string) error
	ErrorResponse(c echo.Context, appErr *errors.AppError) error
}

type responseHandler struct{}

func NewBaseController() BaseController {
	return &responseHandler{}
}

func (h *responseHandler) SuccessResponse(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, &Response{Success: true, Data: data})
}

func (h *responseHandler) CreatedResponse(c echo.Context, data any) error {
	return c.JSON(http.StatusCreated, &Response{Success: true, Data: data})
}

func (h *responseHandler) MessageResponse(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, &Response{Success: true, Message: message})
}

func (h *responseHandler) BadRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, &Response{Success: false, Message: message})
}

// ErrorResponse maps an AppError code onto an HTTP status. A booked slot is
// answered with 400, not 409, matching the public API contract. Store errors
// surface only the AppError message, never the underlying cause.
func (h *responseHandler) ErrorResponse(c echo.Context, appErr *errors.AppError) error {
	status := http.StatusInternalServerError
	code := errors.ErrInternalServer
	msg := "internal server error"

	if appErr != nil {
		code = appErr.Code
		if appErr.Message != "" {
			msg = appErr.Message
		}
		switch appErr.Code {
		case errors.ErrInvalidInput, errors.ErrSlotAlreadyBooked:
			status = http.StatusBadRequest
		case errors.ErrNotFound:
			status = http.StatusNotFound
		default:
			status = http.StatusInternalServerError
		}
	}

	logger.Error("BaseController:ErrorResponse",
		"status", status,
		"code", code,
		"message", msg,
	)
	return c.JSON(status, &Response{Success: false, Message: msg})
}
