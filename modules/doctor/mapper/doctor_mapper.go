package mapper

import (
	"clinic-appointment-api/modules/doctor/dto"
	"clinic-appointment-api/modules/doctor/entity"
)

func ToDoctorEntity(req *dto.CreateDoctorRequest) *entity.Doctor {
	d := &entity.Doctor{
		Name:      req.Name,
		WorkStart: req.WorkingHours.Start,
		WorkEnd:   req.WorkingHours.End,
	}
	if req.Specialization != "" {
		spec := req.Specialization
		d.Specialization = &spec
	}
	return d
}

func ToDoctorResponse(d *entity.Doctor) *dto.DoctorResponse {
	resp := &dto.DoctorResponse{
		ID:   d.ID.String(),
		Name: d.Name,
		WorkingHours: dto.WorkingHours{
			Start: d.WorkStart,
			End:   d.WorkEnd,
		},
		CreatedAt: d.CreatedAt,
	}
	if d.Specialization != nil {
		resp.Specialization = *d.Specialization
	}
	return resp
}

func ToDoctorResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	out := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		out[i] = *ToDoctorResponse(&doctors[i])
	}
	return out
}
