package forms

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
)

// AuthForm represents the base form structure for authentication forms
type AuthForm struct{}

// LoginForm contains the fields required for user login
type LoginForm struct {
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required,min=6,max=72"`
}

// RefreshForm carries the refresh token presented to the refresh operation
type RefreshForm struct {
	RefreshToken string `form:"refresh_token" json:"refresh_token" binding:"required"`
}

// Email validates and returns appropriate error messages for email field validation
func (f AuthForm) Email(tag string) (message string) {
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
func (f AuthForm) Password(tag string) (message string) {
	switch tag {
	case "required":
		return "Please enter your password"
	case "min", "max":
		return "Your password should be between 6 and 72 characters"
	default:
		return "Something went wrong, please try again later"
	}
}

// Login validates the login form and returns appropriate error messages
func (f AuthForm) Login(err error) string {
	switch err.(type) {
	case validator.ValidationErrors:

		if _, ok := err.(*json.UnmarshalTypeError); ok {
			return "Something went wrong, please try again later"
		}

		for _, err := range err.(validator.ValidationErrors) {
			if err.Field() == "Email" {
				return f.Email(err.Tag())
			}
			if err.Field() == "Password" {
				return f.Password(err.Tag())
			}
		}

	default:
		return "Invalid request"
	}

	return "Something went wrong, please try again later"
}

// Refresh validates the refresh form and returns appropriate error messages
func (f AuthForm) Refresh(err error) string {
	switch err.(type) {
	case validator.ValidationErrors:
		return "Please provide a refresh token"
	default:
		return "Invalid request"
	}
}
