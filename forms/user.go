package forms

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
)

// UserForm represents the base form structure for user-related forms
type UserForm struct{}

// RegisterForm contains the fields required for user registration
type RegisterForm struct {
	Name     string `form:"name" json:"name" binding:"required,min=4,max=100"`
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required,min=6,max=72"`
}

// UpdateUserForm contains the fields a user may change on their own record.
// Both fields are optional; an empty password keeps the current one.
type UpdateUserForm struct {
	Name     string `form:"name" json:"name" binding:"omitempty,min=4,max=100"`
	Password string `form:"password" json:"password" binding:"omitempty,min=6,max=72"`
}

// Name validates and returns appropriate error messages for name field validation
func (f UserForm) Name(tag string) (message string) {
	switch tag {
	case "required":
		return "Please enter your name"
	case "min", "max":
		return "Your name should be between 4 and 100 characters"
	default:
		return "Something went wrong, please try again later"
	}
}

// Email validates and returns appropriate error messages for email field validation
func (f UserForm) Email(tag string) (message string) {
	switch tag {
	case "required":
		return "Please enter your email"
	case "min", "max", "email":
		return "Please enter a valid email"
	default:
		return "Something went wrong, please try again later"
	}
}

// Password validates and returns appropriate error messages for password field validation
func (f UserForm) Password(tag string) (message string) {
	switch tag {
	case "required":
		return "Please enter your password"
	case "min", "max":
		return "Your password should be between 6 and 72 characters"
	default:
		return "Something went wrong, please try again later"
	}
}

// Register validates the registration form and returns appropriate error messages
func (f UserForm) Register(err error) string {
	switch err.(type) {
	case validator.ValidationErrors:

		if _, ok := err.(*json.UnmarshalTypeError); ok {
			return "Something went wrong, please try again later"
		}

		for _, err := range err.(validator.ValidationErrors) {
			switch err.Field() {
			case "Name":
				return f.Name(err.Tag())
			case "Email":
				return f.Email(err.Tag())
			case "Password":
				return f.Password(err.Tag())
			}
		}

	default:
		return "Invalid request"
	}

	return "Something went wrong, please try again later"
}

// Update validates the update form and returns appropriate error messages
func (f UserForm) Update(err error) string {
	switch err.(type) {
	case validator.ValidationErrors:

		for _, err := range err.(validator.ValidationErrors) {
			switch err.Field() {
			case "Name":
				return f.Name(err.Tag())
			case "Password":
				return f.Password(err.Tag())
			}
		}

	default:
		return "Invalid request"
	}

	return "Something went wrong, please try again later"
}
