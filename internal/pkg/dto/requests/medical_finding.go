package requests

import "time"

type MedicalFinding struct {
	PatientID     string     `json:"patient_id" validate:"required,object_id"`
	AppointmentID string     `json:"appointment_id" validate:"omitempty,object_id"`
	DentistID     string     `json:"dentist_id" validate:"omitempty,object_id"`
	ToothNumber   int        `json:"tooth_number" validate:"tooth_number"`
	Surface       string     `json:"surface" validate:"omitempty,oneof=mesial distal occlusal buccal lingual incisal palatal"`
	Type          string     `json:"type" validate:"required,oneof=caries filling extraction root_canal crown implant periodontal other"`
	Diagnosis     string     `json:"diagnosis" validate:"required,max=500"`
	Treatment     string     `json:"treatment" validate:"max=500"`
	Notes         string     `json:"notes"`
	RecordedAt    *time.Time `json:"recorded_at"`
}
