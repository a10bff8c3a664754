package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MedicalFinding struct {
	ID            primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	PatientID     primitive.ObjectID  `json:"patient_id" bson:"patientId"`
	AppointmentID *primitive.ObjectID `json:"appointment_id,omitempty" bson:"appointmentId,omitempty"`
	DentistID     primitive.ObjectID  `json:"dentist_id" bson:"dentistId"`
	ToothNumber   int                 `json:"tooth_number" bson:"toothNumber"`
	Surface       string              `json:"surface,omitempty" bson:"surface,omitempty"`
	Type          string              `json:"type" bson:"type"`
	Diagnosis     string              `json:"diagnosis" bson:"diagnosis"`
	Treatment     string              `json:"treatment,omitempty" bson:"treatment,omitempty"`
	Notes         string              `json:"notes,omitempty" bson:"notes,omitempty"`
	RecordedAt    time.Time           `json:"recorded_at" bson:"recordedAt"`
	TimeModel     `bson:",inline"`
}
