package entity

import (
	"time"

	"github.com/google/uuid"
)

// Appointment is a booked visit. DoctorID is a non-owning reference: deleting
// the doctor does not remove the appointment.
type Appointment struct {
	ID              uuid.UUID `db:"id" json:"id"`
	DoctorID        uuid.UUID `db:"doctor_id" json:"doctor_id"`
	Date            time.Time `db:"date" json:"date"`
	DurationMinutes int       `db:"duration_minutes" json:"duration_minutes"`
	AppointmentType string    `db:"appointment_type" json:"appointment_type"`
	PatientName     string    `db:"patient_name" json:"patient_name"`
	Notes           *string   `db:"notes" json:"notes,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// AppointmentWithDoctor carries the joined doctor columns for display. The
// doctor side is nullable because the reference may dangle after a doctor
// deletion.
type AppointmentWithDoctor struct {
	Appointment
	DoctorName           *string `db:"doctor_name"`
	DoctorSpecialization *string `db:"doctor_specialization"`
}
