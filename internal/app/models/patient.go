package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Patient struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FileNumber     string             `json:"file_number" bson:"fileNumber"`
	FirstName      string             `json:"first_name" bson:"firstName"`
	LastName       string             `json:"last_name" bson:"lastName"`
	BirthDate      *time.Time         `json:"birth_date,omitempty" bson:"birthDate,omitempty"`
	Gender         string             `json:"gender,omitempty" bson:"gender,omitempty"`
	Phone          string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Email          string             `json:"email,omitempty" bson:"email,omitempty"`
	Address        string             `json:"address,omitempty" bson:"address,omitempty"`
	BranchID       primitive.ObjectID `json:"branch_id" bson:"branchId"`
	Allergies      []string           `json:"allergies" bson:"allergies"`
	MedicalHistory string             `json:"medical_history,omitempty" bson:"medicalHistory,omitempty"`
	Notes          string             `json:"notes,omitempty" bson:"notes,omitempty"`
	CreditBalance  int64              `json:"credit_balance" bson:"creditBalance"`
	Attachments    []Attachment       `json:"attachments" bson:"attachments"`
	TimeModel      `bson:",inline"`
}

func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}

type Attachment struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	FileName    string             `json:"file_name" bson:"fileName"`
	ObjectKey   string             `json:"-" bson:"objectKey"`
	ContentType string             `json:"content_type" bson:"contentType"`
	Size        int64              `json:"size" bson:"size"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	UploadedBy  string             `json:"uploaded_by" bson:"uploadedBy"`
	UploadedAt  time.Time          `json:"uploaded_at" bson:"uploadedAt"`
}
