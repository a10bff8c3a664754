package responses

import "time"

type AttachmentURL struct {
	AttachmentID string    `json:"attachment_id"`
	FileName     string    `json:"file_name"`
	URL          string    `json:"url"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type CreditBalance struct {
	PatientID string `json:"patient_id"`
	Balance   int64  `json:"balance"`
}

// ToothStatus is the latest finding recorded for one tooth.
type ToothStatus struct {
	ToothNumber int       `json:"tooth_number"`
	Type        string    `json:"type"`
	Surface     string    `json:"surface,omitempty"`
	Diagnosis   string    `json:"diagnosis"`
	Treatment   string    `json:"treatment,omitempty"`
	FindingID   string    `json:"finding_id"`
	RecordedAt  time.Time `json:"recorded_at"`
}

type DentalChart struct {
	PatientID string        `json:"patient_id"`
	Teeth     []ToothStatus `json:"teeth"`
}
