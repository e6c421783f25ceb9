package forms

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
)

// MessageForm represents the base form structure for message-related forms
type MessageForm struct{}

// CreateMessageForm carries a new direct message. The sender is taken from
// the authenticated context, never from the form.
type CreateMessageForm struct {
	ToID    string `form:"to_id" json:"to_id" binding:"required,len=24,hexadecimal"`
	Content string `form:"content" json:"content" binding:"required,min=1,max=255"`
}

// UpdateMessageForm carries the mutable fields of an existing message
type UpdateMessageForm struct {
	Content string `form:"content" json:"content" binding:"omitempty,min=1,max=255"`
	Read    *bool  `form:"read" json:"read" binding:"omitempty"`
}

// Content returns the appropriate error message for content validation tags
func (f MessageForm) Content(tag string) string {
	switch tag {
	case "required":
		return "Please provide message content"
	case "min", "max":
		return "Message content can be from 1 to 255 characters"
	default:
		return "Something went wrong, please try again later"
	}
}

// ToID returns the appropriate error message for recipient validation tags
func (f MessageForm) ToID(tag string) string {
	switch tag {
	case "required":
		return "Please provide a recipient"
	case "len", "hexadecimal":
		return "Recipient id must be a valid identifier"
	default:
		return "Something went wrong, please try again later"
	}
}

// Create validates a CreateMessageForm and returns appropriate error messages
func (f MessageForm) Create(err error) string {
	switch err.(type) {
	case validator.ValidationErrors:
		if _, ok := err.(*json.UnmarshalTypeError); ok {
			return "Something went wrong, please try again later"
		}

		for _, err := range err.(validator.ValidationErrors) {
			switch err.Field() {
			case "Content":
				return f.Content(err.Tag())
			case "ToID":
				return f.ToID(err.Tag())
			}
		}
	default:
		return "Invalid request"
	}
	return "Something went wrong, please try again later"
}

// Update validates an UpdateMessageForm and returns appropriate error messages
func (f MessageForm) Update(err error) string {
	switch err.(type) {
	case validator.ValidationErrors:
		for _, err := range err.(validator.ValidationErrors) {
			if err.Field() == "Content" {
				return f.Content(err.Tag())
			}
		}
	default:
		return "Invalid request"
	}
	return "Something went wrong, please try again later"
}
