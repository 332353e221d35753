package appointment

import (
	"clinic-appointment-api/core/database"
	"clinic-appointment-api/modules/appointment/controller"
	"clinic-appointment-api/modules/appointment/repository"
	"clinic-appointment-api/modules/appointment/router"
	"clinic-appointment-api/modules/appointment/service"
	doctorRepository "clinic-appointment-api/modules/doctor/repository"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.Database) {
	repo := repository.NewAppointmentRepository(db)
	doctorRepo := doctorRepository.NewDoctorRepository(db)
	svc := service.NewAppointmentService(repo, doctorRepo)
	ctrl := controller.NewAppointmentController(svc)
	router.NewAppointmentRouter(ctrl).Setup(e)
}
