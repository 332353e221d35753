package doctor

import (
	"clinic-appointment-api/core/database"
	apptRepository "clinic-appointment-api/modules/appointment/repository"
	"clinic-appointment-api/modules/doctor/controller"
	"clinic-appointment-api/modules/doctor/repository"
	"clinic-appointment-api/modules/doctor/router"
	"clinic-appointment-api/modules/doctor/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.Database) {
	repo := repository.NewDoctorRepository(db)
	apptRepo := apptRepository.NewAppointmentRepository(db)
	svc := service.NewDoctorService(repo, apptRepo)
	ctrl := controller.NewDoctorController(svc)
	router.NewDoctorRouter(ctrl).Setup(e)
}
