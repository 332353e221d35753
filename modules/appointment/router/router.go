package router

import (
	"clinic-appointment-api/modules/appointment/controller"

	"github.com/labstack/echo/v4"
)

type AppointmentRouter struct {
	Controller *controller.AppointmentController
}

func NewAppointmentRouter(ctrl *controller.AppointmentController) *AppointmentRouter {
	return &AppointmentRouter{Controller: ctrl}
}

func (r *AppointmentRouter) Setup(e *echo.Echo) {
	appointments := e.Group("/api/v1/appointments")
	appointments.GET("", r.Controller.List)
	appointments.POST("", r.Controller.Create)
	appointments.GET("/:id", r.Controller.Get)
	appointments.DELETE("/:id", r.Controller.Delete)
}
