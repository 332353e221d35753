package repository

import (
	"context"
	"database/sql"

	"clinic-appointment-api/core/database"
	"clinic-appointment-api/core/logger"
	"clinic-appointment-api/modules/doctor/entity"

	"github.com/google/uuid"
)

// DoctorRepositoryInterface defines the doctor record-store contract.
type DoctorRepositoryInterface interface {
	Create(ctx context.Context, doctor *entity.Doctor) (*entity.Doctor, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error)
	List(ctx context.Context) ([]entity.Doctor, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type DoctorRepository struct {
	DB database.Database
}

func NewDoctorRepository(db database.Database) *DoctorRepository {
	return &DoctorRepository{DB: db}
}

func (r *DoctorRepository) Create(ctx context.Context, doctor *entity.Doctor) (*entity.Doctor, error) {
	query := `
		INSERT INTO doctors (name, specialization, work_start, work_end)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, specialization, work_start, work_end, created_at, updated_at
	`

	var created entity.Doctor
	err := r.DB.GetContext(ctx, &created, query,
		doctor.Name, doctor.Specialization, doctor.WorkStart, doctor.WorkEnd)
	if err != nil {
		logger.Error("DoctorRepository:Create", err)
		return nil, err
	}
	return &created, nil
}

// GetByID returns (nil, nil) when no doctor exists with the given id.
func (r *DoctorRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	query := `
		SELECT id, name, specialization, work_start, work_end, created_at, updated_at
		FROM doctors WHERE id = $1
	`

	var doctor entity.Doctor
	err := r.DB.GetContext(ctx, &doctor, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("DoctorRepository:GetByID", err)
		return nil, err
	}
	return &doctor, nil
}

func (r *DoctorRepository) List(ctx context.Context) ([]entity.Doctor, error) {
	query := `
		SELECT id, name, specialization, work_start, work_end, created_at, updated_at
		FROM doctors
		ORDER BY name
	`

	var doctors []entity.Doctor
	err := r.DB.SelectContext(ctx, &doctors, query)
	if err != nil {
		logger.Error("DoctorRepository:List", err)
		return nil, err
	}
	return doctors, nil
}

// Delete removes the doctor record only. Appointments referencing the doctor
// stay behind with a dangling doctor_id.
func (r *DoctorRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `DELETE FROM doctors WHERE id = $1 RETURNING id`

	var deleted uuid.UUID
	err := r.DB.GetContext(ctx, &deleted, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		logger.Error("DoctorRepository:Delete", err)
		return false, err
	}
	return true, nil
}
