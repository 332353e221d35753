package dto

import "time"

// WorkingHours is the wire shape of a doctor's daily window.
type WorkingHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type CreateDoctorRequest struct {
	Name           string       `json:"name"`
	Specialization string       `json:"specialization"`
	WorkingHours   WorkingHours `json:"workingHours"`
}

type DoctorResponse struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Specialization string       `json:"specialization,omitempty"`
	WorkingHours   WorkingHours `json:"workingHours"`
	CreatedAt      time.Time    `json:"createdAt"`
}

// SlotsResponse is the availability payload. availableSlots sits at the top
// level of the envelope rather than under data.
type SlotsResponse struct {
	Success        bool     `json:"success"`
	AvailableSlots []string `json:"availableSlots"`
}
