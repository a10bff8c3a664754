package models

import "time"

type TimeModel struct {
	CreatedAt time.Time  `json:"created_at" bson:"createdAt"`
	UpdatedAt time.Time  `json:"updated_at" bson:"updatedAt"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" bson:"deletedAt,omitempty"`
}

func (m *TimeModel) SetCreatedAtUpdatedAt() {
	currentTime := time.Now()
	m.CreatedAt = currentTime
	m.UpdatedAt = currentTime
}

func (m *TimeModel) SetUpdatedAt() {
	m.UpdatedAt = time.Now()
}

func (m *TimeModel) SetDeletedAt() {
	currentTime := time.Now()
	m.DeletedAt = &currentTime
	m.SetUpdatedAt()
}
