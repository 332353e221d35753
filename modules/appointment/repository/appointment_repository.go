package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"clinic-appointment-api/core/database"
	"clinic-appointment-api/core/logger"
	"clinic-appointment-api/modules/appointment/entity"

	"github.com/google/uuid"
)

// ErrSlotTaken is returned by Create when another appointment already holds
// the same (doctor_id, date) pair.
var ErrSlotTaken = errors.New("appointment slot already taken")

// AppointmentRepositoryInterface defines the appointment record-store
// contract, including the range and exact-time queries the slot calculator
// and booking coordinator depend on.
type AppointmentRepositoryInterface interface {
	Create(ctx context.Context, appointment *entity.Appointment) (*entity.Appointment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.AppointmentWithDoctor, error)
	List(ctx context.Context) ([]entity.AppointmentWithDoctor, error)
	FindByDoctorAndRange(ctx context.Context, doctorID uuid.UUID, from, to time.Time) ([]entity.Appointment, error)
	FindByDoctorAndExactTime(ctx context.Context, doctorID uuid.UUID, at time.Time) ([]entity.Appointment, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type AppointmentRepository struct {
	DB database.Database
}

func NewAppointmentRepository(db database.Database) *AppointmentRepository {
	return &AppointmentRepository{DB: db}
}

// Create inserts the appointment atomically against concurrent bookings of
// the same slot: the unique (doctor_id, date) constraint plus ON CONFLICT DO
// NOTHING means exactly one of two racing inserts returns a row, the other
// gets ErrSlotTaken.
func (r *AppointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) (*entity.Appointment, error) {
	query := `
		INSERT INTO appointments (doctor_id, date, duration_minutes, appointment_type, patient_name, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (doctor_id, date) DO NOTHING
		RETURNING id, doctor_id, date, duration_minutes, appointment_type, patient_name, notes, created_at, updated_at
	`

	var created entity.Appointment
	err := r.DB.GetContext(ctx, &created, query,
		appointment.DoctorID, appointment.Date, appointment.DurationMinutes,
		appointment.AppointmentType, appointment.PatientName, appointment.Notes)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrSlotTaken
		}
		logger.Error("AppointmentRepository:Create", err)
		return nil, err
	}
	return &created, nil
}

// GetByID returns (nil, nil) when no appointment exists with the given id.
// The doctor columns come from a LEFT JOIN and stay NULL for dangling
// references.
func (r *AppointmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.AppointmentWithDoctor, error) {
	query := `
		SELECT a.id, a.doctor_id, a.date, a.duration_minutes, a.appointment_type,
		       a.patient_name, a.notes, a.created_at, a.updated_at,
		       d.name AS doctor_name, d.specialization AS doctor_specialization
		FROM appointments a
		LEFT JOIN doctors d ON d.id = a.doctor_id
		WHERE a.id = $1
	`

	var appointment entity.AppointmentWithDoctor
	err := r.DB.GetContext(ctx, &appointment, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("AppointmentRepository:GetByID", err)
		return nil, err
	}
	return &appointment, nil
}

func (r *AppointmentRepository) List(ctx context.Context) ([]entity.AppointmentWithDoctor, error) {
	query := `
		SELECT a.id, a.doctor_id, a.date, a.duration_minutes, a.appointment_type,
		       a.patient_name, a.notes, a.created_at, a.updated_at,
		       d.name AS doctor_name, d.specialization AS doctor_specialization
		FROM appointments a
		LEFT JOIN doctors d ON d.id = a.doctor_id
		ORDER BY a.date
	`

	var appointments []entity.AppointmentWithDoctor
	err := r.DB.SelectContext(ctx, &appointments, query)
	if err != nil {
		logger.Error("AppointmentRepository:List", err)
		return nil, err
	}
	return appointments, nil
}

// FindByDoctorAndRange returns the doctor's appointments with date in
// [from, to), ordered by date. Used to subtract bookings from the working
// window.
func (r *AppointmentRepository) FindByDoctorAndRange(ctx context.Context, doctorID uuid.UUID, from, to time.Time) ([]entity.Appointment, error) {
	query := `
		SELECT id, doctor_id, date, duration_minutes, appointment_type,
		       patient_name, notes, created_at, updated_at
		FROM appointments
		WHERE doctor_id = $1 AND date >= $2 AND date < $3
		ORDER BY date
	`

	var appointments []entity.Appointment
	err := r.DB.SelectContext(ctx, &appointments, query, doctorID, from, to)
	if err != nil {
		logger.Error("AppointmentRepository:FindByDoctorAndRange", err)
		return nil, err
	}
	return appointments, nil
}

// FindByDoctorAndExactTime matches on timestamp equality only; duration and
// interval overlap are intentionally not considered.
func (r *AppointmentRepository) FindByDoctorAndExactTime(ctx context.Context, doctorID uuid.UUID, at time.Time) ([]entity.Appointment, error) {
	query := `
		SELECT id, doctor_id, date, duration_minutes, appointment_type,
		       patient_name, notes, created_at, updated_at
		FROM appointments
		WHERE doctor_id = $1 AND date = $2
	`

	var appointments []entity.Appointment
	err := r.DB.SelectContext(ctx, &appointments, query, doctorID, at)
	if err != nil {
		logger.Error("AppointmentRepository:FindByDoctorAndExactTime", err)
		return nil, err
	}
	return appointments, nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `DELETE FROM appointments WHERE id = $1 RETURNING id`

	var deleted uuid.UUID
	err := r.DB.GetContext(ctx, &deleted, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		logger.Error("AppointmentRepository:Delete", err)
		return false, err
	}
	return true, nil
}
