package service

import (
	"context"
	"time"

	"clinic-appointment-api/core/constants"
	"clinic-appointment-api/core/errors"
	"clinic-appointment-api/core/logger"
	apptrepo "clinic-appointment-api/modules/appointment/repository"
	"clinic-appointment-api/modules/doctor/dto"
	"clinic-appointment-api/modules/doctor/mapper"
	"clinic-appointment-api/modules/doctor/repository"

	"github.com/google/uuid"
)

type DoctorServiceInterface interface {
	Create(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, *errors.AppError)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, *errors.AppError)
	List(ctx context.Context) ([]dto.DoctorResponse, *errors.AppError)
	Delete(ctx context.Context, id uuid.UUID) *errors.AppError
	GetAvailableSlots(ctx context.Context, id uuid.UUID, date string) ([]string, *errors.AppError)
}

type DoctorService struct {
	repo     repository.DoctorRepositoryInterface
	apptRepo apptrepo.AppointmentRepositoryInterface
}

func NewDoctorService(repo repository.DoctorRepositoryInterface, apptRepo apptrepo.AppointmentRepositoryInterface) *DoctorService {
	return &DoctorService{repo: repo, apptRepo: apptRepo}
}

func (s *DoctorService) Create(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if appErr := validateCreateDoctor(req); appErr != nil {
		return nil, appErr
	}

	created, err := s.repo.Create(ctx, mapper.ToDoctorEntity(req))
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create doctor failed", err)
	}

	logger.Info("DoctorService:Create:Success", "doctor_id", created.ID)
	return mapper.ToDoctorResponse(created), nil
}

func (s *DoctorService) GetByID(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	doctor, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get doctor failed", err)
	}
	if doctor == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Doctor not found", nil)
	}
	return mapper.ToDoctorResponse(doctor), nil
}

func (s *DoctorService) List(ctx context.Context) ([]dto.DoctorResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	doctors, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get doctors failed", err)
	}
	return mapper.ToDoctorResponses(doctors), nil
}

// Delete removes the doctor only; existing appointments keep their doctor_id
// reference and continue to show up in appointment listings.
func (s *DoctorService) Delete(ctx context.Context, id uuid.UUID) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "delete doctor failed", err)
	}
	if !deleted {
		return errors.NewAppError(errors.ErrNotFound, "Doctor not found", nil)
	}

	logger.Info("DoctorService:Delete:Success", "doctor_id", id)
	return nil
}

// GetAvailableSlots loads the doctor, collects the day's booked appointments
// inside the working window and feeds both into the slot calculator.
func (s *DoctorService) GetAvailableSlots(ctx context.Context, id uuid.UUID, date string) ([]string, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if date == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Date query parameter is required", nil)
	}
	day, err := time.Parse(constants.DateLayout, date)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Date must be formatted as YYYY-MM-DD", err)
	}

	doctor, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get doctor failed", err)
	}
	if doctor == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Doctor not found", nil)
	}

	windowStart, err := atTimeOfDay(day, doctor.WorkStart)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "doctor working hours are malformed", err)
	}
	windowEnd, err := atTimeOfDay(day, doctor.WorkEnd)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "doctor working hours are malformed", err)
	}

	appointments, err := s.apptRepo.FindByDoctorAndRange(ctx, id, windowStart, windowEnd)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get appointments failed", err)
	}

	booked := make([]time.Time, len(appointments))
	for i, a := range appointments {
		booked[i] = a.Date
	}

	slots, err := ComputeAvailableSlots(doctor.WorkStart, doctor.WorkEnd, day, booked, constants.SlotDurationMinutes)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "compute slots failed", err)
	}

	logger.Info("DoctorService:GetAvailableSlots",
		"doctor_id", id,
		"date", date,
		"booked", len(booked),
		"free", len(slots),
	)
	return slots, nil
}

func validateCreateDoctor(req *dto.CreateDoctorRequest) *errors.AppError {
	if req.Name == "" || req.Specialization == "" || req.WorkingHours.Start == "" || req.WorkingHours.End == "" {
		return errors.NewAppError(errors.ErrInvalidInput, "All fields are required", nil)
	}
	start, err := time.Parse(constants.TimeOfDayLayout, req.WorkingHours.Start)
	if err != nil {
		return errors.NewAppError(errors.ErrInvalidInput, "Working hours start must be formatted as HH:MM", err)
	}
	end, err := time.Parse(constants.TimeOfDayLayout, req.WorkingHours.End)
	if err != nil {
		return errors.NewAppError(errors.ErrInvalidInput, "Working hours end must be formatted as HH:MM", err)
	}
	if !start.Before(end) {
		return errors.NewAppError(errors.ErrInvalidInput, "Working hours start must be before end", nil)
	}
	return nil
}
