package requests

import "io"

type Patient struct {
	FirstName      string   `json:"first_name" validate:"required,max=100"`
	LastName       string   `json:"last_name" validate:"required,max=100"`
	BirthDate      string   `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Gender         string   `json:"gender" validate:"omitempty,oneof=male female other"`
	Phone          string   `json:"phone" validate:"omitempty,phone_number"`
	Email          string   `json:"email" validate:"omitempty,email"`
	Address        string   `json:"address" validate:"max=255"`
	BranchID       string   `json:"branch_id" validate:"required,object_id"`
	Allergies      []string `json:"allergies" validate:"omitempty,dive,max=100"`
	MedicalHistory string   `json:"medical_history"`
	Notes          string   `json:"notes"`
}

type FindAllPatients struct {
	Search   string
	BranchID string
	Pagination
}

type UploadAttachment struct {
	PatientID   string
	FileName    string
	ContentType string
	Size        int64
	Description string
	File        io.Reader
}
