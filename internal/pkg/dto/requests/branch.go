package requests

type Branch struct {
	Name    string `json:"name" validate:"required,max=100"`
	Code    string `json:"code" validate:"required,branch_code"`
	Address string `json:"address" validate:"max=255"`
	Phone   string `json:"phone" validate:"omitempty,phone_number"`
	Active  *bool  `json:"active"`
}
