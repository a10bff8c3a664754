package requests

type Treatment struct {
	Code   string `json:"code" validate:"required,max=20"`
	Name   string `json:"name" validate:"required,max=100"`
	Price  int64  `json:"price" validate:"gte=0"`
	Active *bool  `json:"active"`
}
