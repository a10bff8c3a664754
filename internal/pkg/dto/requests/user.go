package requests

type CreateUser struct {
	Email     string   `json:"email" validate:"required,email"`
	FullName  string   `json:"full_name" validate:"required,max=100"`
	Password  string   `json:"password" validate:"required,password"`
	Role      string   `json:"role" validate:"required,oneof=admin dentist receptionist inventory_manager"`
	Phone     string   `json:"phone" validate:"omitempty,phone_number"`
	BranchIDs []string `json:"branch_ids" validate:"omitempty,dive,object_id"`
}

type UpdateUser struct {
	FullName  string   `json:"full_name" validate:"required,max=100"`
	Password  string   `json:"password" validate:"omitempty,password"`
	Role      string   `json:"role" validate:"required,oneof=admin dentist receptionist inventory_manager"`
	Phone     string   `json:"phone" validate:"omitempty,phone_number"`
	BranchIDs []string `json:"branch_ids" validate:"omitempty,dive,object_id"`
}

type FindAllUsers struct {
	Role string
	Pagination
}
