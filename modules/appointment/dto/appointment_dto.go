package dto

import "time"

type CreateAppointmentRequest struct {
	DoctorID        string `json:"doctorId"`
	Date            string `json:"date"`
	Duration        int    `json:"duration"`
	AppointmentType string `json:"appointmentType"`
	PatientName     string `json:"patientName"`
	Notes           string `json:"notes"`
}

// DoctorInfo is the joined doctor summary embedded in appointment responses.
// Nil when the referenced doctor no longer exists.
type DoctorInfo struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization,omitempty"`
}

type AppointmentResponse struct {
	ID              string      `json:"id"`
	DoctorID        string      `json:"doctorId"`
	Doctor          *DoctorInfo `json:"doctor,omitempty"`
	Date            time.Time   `json:"date"`
	Duration        int         `json:"duration"`
	AppointmentType string      `json:"appointmentType"`
	PatientName     string      `json:"patientName"`
	Notes           string      `json:"notes,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
}
