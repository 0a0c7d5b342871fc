package dto

type CreateCustomerRequest struct {
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Document *string `json:"document"`
}
