package router

import (
	"clinic-appointment-api/modules/doctor/controller"

	"github.com/labstack/echo/v4"
)

type DoctorRouter struct {
	Controller *controller.DoctorController
}

func NewDoctorRouter(ctrl *controller.DoctorController) *DoctorRouter {
	return &DoctorRouter{Controller: ctrl}
}

func (r *DoctorRouter) Setup(e *echo.Echo) {
	doctors := e.Group("/api/v1/doctors")
	doctors.GET("", r.Controller.List)
	doctors.POST("", r.Controller.Create)
	doctors.GET("/:id", r.Controller.Get)
	doctors.GET("/:id/slots", r.Controller.GetSlots)
	doctors.DELETE("/:id", r.Controller.Delete)
}
