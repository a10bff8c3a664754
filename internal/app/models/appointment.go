package models

import (
	"dental-clinic-service/internal/pkg/constvars"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Appointment struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	PatientID      primitive.ObjectID `json:"patient_id" bson:"patientId"`
	DentistID      primitive.ObjectID `json:"dentist_id" bson:"dentistId"`
	BranchID       primitive.ObjectID `json:"branch_id" bson:"branchId"`
	StartAt        time.Time          `json:"start_at" bson:"startAt"`
	EndAt          time.Time          `json:"end_at" bson:"endAt"`
	Reason         string             `json:"reason,omitempty" bson:"reason,omitempty"`
	Status         string             `json:"status" bson:"status"`
	Notes          string             `json:"notes,omitempty" bson:"notes,omitempty"`
	CancelReason   string             `json:"cancel_reason,omitempty" bson:"cancelReason,omitempty"`
	ReminderSentAt *time.Time         `json:"reminder_sent_at,omitempty" bson:"reminderSentAt,omitempty"`
	TimeModel      `bson:",inline"`
}

// CanTransitionTo reports whether the appointment may move to the given status.
func (a *Appointment) CanTransitionTo(status string) bool {
	for _, next := range constvars.AppointmentStatusTransitions[a.Status] {
		if next == status {
			return true
		}
	}
	return false
}

func (a *Appointment) IsTerminal() bool {
	return a.Status == constvars.AppointmentStatusCompleted || a.Status == constvars.AppointmentStatusCancelled
}
