package models

// ContactInput is the public contact-form payload.
type ContactInput struct {
	Name    string  `json:"name" form:"name"`
	Email   string  `json:"email" form:"email"`
	Phone   *string `json:"phone,omitempty" form:"phone"`
	Message string  `json:"message" form:"message"`
}
