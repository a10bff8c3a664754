package requests

import "time"

type Appointment struct {
	PatientID string    `json:"patient_id" validate:"required,object_id"`
	DentistID string    `json:"dentist_id" validate:"required,object_id"`
	BranchID  string    `json:"branch_id" validate:"required,object_id"`
	StartAt   time.Time `json:"start_at" validate:"required"`
	EndAt     time.Time `json:"end_at" validate:"required"`
	Reason    string    `json:"reason" validate:"max=255"`
	Notes     string    `json:"notes"`
}

type ChangeAppointmentStatus struct {
	Status       string `json:"status" validate:"required,oneof=scheduled confirmed completed cancelled"`
	CancelReason string `json:"cancel_reason" validate:"max=255"`
}

type FindAllAppointments struct {
	BranchID  string
	DentistID string
	PatientID string
	Status    string
	DateRange
	Pagination
}
