package mapper

import (
	"time"

	"clinic-appointment-api/modules/appointment/dto"
	"clinic-appointment-api/modules/appointment/entity"

	"github.com/google/uuid"
)

func ToAppointmentEntity(req *dto.CreateAppointmentRequest, doctorID uuid.UUID, date time.Time) *entity.Appointment {
	a := &entity.Appointment{
		DoctorID:        doctorID,
		Date:            date,
		DurationMinutes: req.Duration,
		AppointmentType: req.AppointmentType,
		PatientName:     req.PatientName,
	}
	if req.Notes != "" {
		notes := req.Notes
		a.Notes = &notes
	}
	return a
}

func ToAppointmentResponse(a *entity.Appointment) *dto.AppointmentResponse {
	resp := &dto.AppointmentResponse{
		ID:              a.ID.String(),
		DoctorID:        a.DoctorID.String(),
		Date:            a.Date,
		Duration:        a.DurationMinutes,
		AppointmentType: a.AppointmentType,
		PatientName:     a.PatientName,
		CreatedAt:       a.CreatedAt,
	}
	if a.Notes != nil {
		resp.Notes = *a.Notes
	}
	return resp
}

func ToAppointmentWithDoctorResponse(a *entity.AppointmentWithDoctor) *dto.AppointmentResponse {
	resp := ToAppointmentResponse(&a.Appointment)
	if a.DoctorName != nil {
		info := &dto.DoctorInfo{
			ID:   a.DoctorID.String(),
			Name: *a.DoctorName,
		}
		if a.DoctorSpecialization != nil {
			info.Specialization = *a.DoctorSpecialization
		}
		resp.Doctor = info
	}
	return resp
}

func ToAppointmentWithDoctorResponses(appointments []entity.AppointmentWithDoctor) []dto.AppointmentResponse {
	out := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		out[i] = *ToAppointmentWithDoctorResponse(&appointments[i])
	}
	return out
}
