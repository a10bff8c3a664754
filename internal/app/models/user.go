package models

import (
	"dental-clinic-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty"`
	Email     string               `bson:"email"`
	FullName  string               `bson:"fullName"`
	Password  string               `bson:"password"`
	Role      string               `bson:"role"`
	Phone     string               `bson:"phone,omitempty"`
	BranchIDs []primitive.ObjectID `bson:"branchIds"`
	Active    bool                 `bson:"active"`
	TimeModel `bson:",inline"`
}

func (u *User) ConvertIntoResponse() responses.User {
	branchIDs := make([]string, len(u.BranchIDs))
	for i, branchID := range u.BranchIDs {
		branchIDs[i] = branchID.Hex()
	}
	return responses.User{
		ID:        u.ID.Hex(),
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role,
		Phone:     u.Phone,
		BranchIDs: branchIDs,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (u *User) BranchIDStrings() []string {
	return u.ConvertIntoResponse().BranchIDs
}
