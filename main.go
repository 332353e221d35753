package main

import (
	"clinic-appointment-api/core/logger"
	"clinic-appointment-api/core/server"
)

// @title Clinic Appointment API
// @version 1.0
// @description Medical appointment scheduling: doctors, working hours and 30-minute booking slots.

// @host localhost:8080
// @BasePath /api/v1

func main() {
	if err := server.Run(); err != nil {
		logger.Fatal("run server error", err)
	}
}
