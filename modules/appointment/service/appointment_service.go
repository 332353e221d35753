package service

import (
	"context"
	"time"

	"clinic-appointment-api/core/constants"
	"clinic-appointment-api/core/errors"
	"clinic-appointment-api/core/logger"
	"clinic-appointment-api/modules/appointment/dto"
	"clinic-appointment-api/modules/appointment/mapper"
	"clinic-appointment-api/modules/appointment/repository"
	doctorrepo "clinic-appointment-api/modules/doctor/repository"

	"github.com/google/uuid"
)

type AppointmentServiceInterface interface {
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, *errors.AppError)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, *errors.AppError)
	List(ctx context.Context) ([]dto.AppointmentResponse, *errors.AppError)
	Delete(ctx context.Context, id uuid.UUID) *errors.AppError
}

// AppointmentService is the booking coordinator: it validates the request,
// resolves the doctor, rejects conflicting bookings and commits the record.
type AppointmentService struct {
	repo       repository.AppointmentRepositoryInterface
	doctorRepo doctorrepo.DoctorRepositoryInterface
}

func NewAppointmentService(repo repository.AppointmentRepositoryInterface, doctorRepo doctorrepo.DoctorRepositoryInterface) *AppointmentService {
	return &AppointmentService{repo: repo, doctorRepo: doctorRepo}
}

func (s *AppointmentService) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	doctorID, date, appErr := validateCreateAppointment(req)
	if appErr != nil {
		return nil, appErr
	}

	doctor, err := s.doctorRepo.GetByID(ctx, doctorID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get doctor failed", err)
	}
	if doctor == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Doctor not found", nil)
	}

	if appErr := withinWorkingHours(date, doctor.WorkStart, doctor.WorkEnd); appErr != nil {
		return nil, appErr
	}

	// Friendly pre-check on exact timestamp equality. The unique
	// (doctor_id, date) constraint behind repo.Create is the actual guard
	// against concurrent double booking; this read only produces a clean
	// rejection on the common path.
	existing, err := s.repo.FindByDoctorAndExactTime(ctx, doctorID, date)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get appointments failed", err)
	}
	if len(existing) > 0 {
		return nil, errors.NewAppError(errors.ErrSlotAlreadyBooked, "Time slot already booked", nil)
	}

	created, err := s.repo.Create(ctx, mapper.ToAppointmentEntity(req, doctorID, date))
	if err != nil {
		if err == repository.ErrSlotTaken {
			return nil, errors.NewAppError(errors.ErrSlotAlreadyBooked, "Time slot already booked", nil)
		}
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create appointment failed", err)
	}

	logger.Info("AppointmentService:Create:Success",
		"appointment_id", created.ID,
		"doctor_id", doctorID,
		"date", created.Date,
	)
	return mapper.ToAppointmentResponse(created), nil
}

func (s *AppointmentService) GetByID(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	appointment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get appointment failed", err)
	}
	if appointment == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Appointment not found", nil)
	}
	return mapper.ToAppointmentWithDoctorResponse(appointment), nil
}

func (s *AppointmentService) List(ctx context.Context) ([]dto.AppointmentResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	appointments, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get appointments failed", err)
	}
	return mapper.ToAppointmentWithDoctorResponses(appointments), nil
}

func (s *AppointmentService) Delete(ctx context.Context, id uuid.UUID) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "delete appointment failed", err)
	}
	if !deleted {
		return errors.NewAppError(errors.ErrNotFound, "Appointment not found", nil)
	}

	logger.Info("AppointmentService:Delete:Success", "appointment_id", id)
	return nil
}

// validateCreateAppointment runs before any store mutation and returns the
// parsed doctor id and timestamp on success.
func validateCreateAppointment(req *dto.CreateAppointmentRequest) (uuid.UUID, time.Time, *errors.AppError) {
	if req.DoctorID == "" {
		return uuid.Nil, time.Time{}, errors.NewAppError(errors.ErrInvalidInput, "doctorId is required", nil)
	}
	doctorID, err := uuid.Parse(req.DoctorID)
	if err != nil {
		return uuid.Nil, time.Time{}, errors.NewAppError(errors.ErrInvalidInput, "doctorId must be a valid UUID", err)
	}
	if req.Date == "" {
		return uuid.Nil, time.Time{}, errors.NewAppError(errors.ErrInvalidInput, "date is required", nil)
	}
	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		return uuid.Nil, time.Time{}, errors.NewAppError(errors.ErrInvalidInput, "date must be an RFC3339 timestamp", err)
	}
	if req.Duration <= 0 {
		return uuid.Nil, time.Time{}, errors.NewAppError(errors.ErrInvalidInput, "duration must be a positive number of minutes", nil)
	}
	if req.PatientName == "" {
		return uuid.Nil, time.Time{}, errors.NewAppError(errors.ErrInvalidInput, "patientName is required", nil)
	}
	if req.AppointmentType == "" {
		return uuid.Nil, time.Time{}, errors.NewAppError(errors.ErrInvalidInput, "appointmentType is required", nil)
	}
	return doctorID, date, nil
}

// withinWorkingHours checks the appointment's time-of-day against the
// doctor's window [start, end). Working hours are read at booking time, not
// frozen into the appointment.
func withinWorkingHours(date time.Time, workStart, workEnd string) *errors.AppError {
	start, err := time.Parse(constants.TimeOfDayLayout, workStart)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "doctor working hours are malformed", err)
	}
	end, err := time.Parse(constants.TimeOfDayLayout, workEnd)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "doctor working hours are malformed", err)
	}

	minuteOfDay := date.Hour()*60 + date.Minute()
	startMinute := start.Hour()*60 + start.Minute()
	endMinute := end.Hour()*60 + end.Minute()
	if minuteOfDay < startMinute || minuteOfDay >= endMinute {
		return errors.NewAppError(errors.ErrInvalidInput, "Appointment time is outside the doctor's working hours", nil)
	}
	return nil
}
