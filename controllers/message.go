package controllers

import (
	"errors"
	"net/http"

	"github.com/guilhermerodrigues17/messages-backend/forms"
	"github.com/guilhermerodrigues17/messages-backend/models"
	"github.com/guilhermerodrigues17/messages-backend/service"
	"github.com/gin-gonic/gin"
)

type MessageController struct {
	message *service.MessageService
}

var msgForm = new(forms.MessageForm)

func NewMessageController(message *service.MessageService) *MessageController {
	return &MessageController{message: message}
}

// List returns messages newest first, bounded by limit/offset query params
func (ctrl MessageController) List(c *gin.Context) {
	var pagination forms.PaginationForm
	if err := c.ShouldBindQuery(&pagination); err != nil {
		abortWithError(c, http.StatusNotAcceptable, "Limit can be from 1 to 100 and offset must not be negative")
		return
	}

	limit, offset := pagination.Window()
	msgs, err := ctrl.message.List(c.Request.Context(), limit, offset)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Something went wrong, please try again later")
		return
	}

	c.JSON(http.StatusOK, msgs)
}

// One returns a single message
func (ctrl MessageController) One(c *gin.Context) {
	msgID, err := models.ParseMessageID(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Id must be a valid identifier")
		return
	}

	msg, err := ctrl.message.One(c.Request.Context(), msgID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			abortWithError(c, http.StatusNotFound, "Message not found...")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Something went wrong, please try again later")
		return
	}

	c.JSON(http.StatusOK, msg)
}

// Send stores a new direct message from the authenticated requester
func (ctrl MessageController) Send(c *gin.Context) {
	var createForm forms.CreateMessageForm
	if validationErr := c.ShouldBindJSON(&createForm); validationErr != nil {
		abortWithError(c, http.StatusNotAcceptable, msgForm.Create(validationErr))
		return
	}

	reqID, err := requesterID(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Please login first")
		return
	}

	msg, err := ctrl.message.Send(c.Request.Context(), createForm, reqID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			abortWithError(c, http.StatusNotFound, "Recipient not found...")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Something went wrong, please try again later")
		return
	}

	c.JSON(http.StatusCreated, msg)
}

// Update changes a message. Requesters may only change messages they sent.
func (ctrl MessageController) Update(c *gin.Context) {
	msgID, err := models.ParseMessageID(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Id must be a valid identifier")
		return
	}

	var updateForm forms.UpdateMessageForm
	if validationErr := c.ShouldBindJSON(&updateForm); validationErr != nil {
		abortWithError(c, http.StatusNotAcceptable, msgForm.Update(validationErr))
		return
	}

	reqID, err := requesterID(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Please login first")
		return
	}

	msg, err := ctrl.message.Update(c.Request.Context(), msgID, updateForm, reqID)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			abortWithError(c, http.StatusNotFound, "Message not found...")
		case errors.Is(err, models.ErrForbidden):
			abortWithError(c, http.StatusForbidden, "You can only update your own messages...")
		default:
			abortWithError(c, http.StatusInternalServerError, "Something went wrong, please try again later")
		}
		return
	}

	c.JSON(http.StatusOK, msg)
}

// Remove deletes a message. Requesters may only delete messages they sent.
func (ctrl MessageController) Remove(c *gin.Context) {
	msgID, err := models.ParseMessageID(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Id must be a valid identifier")
		return
	}

	reqID, err := requesterID(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Please login first")
		return
	}

	if err := ctrl.message.Remove(c.Request.Context(), msgID, reqID); err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			abortWithError(c, http.StatusNotFound, "Message not found...")
		case errors.Is(err, models.ErrForbidden):
			abortWithError(c, http.StatusForbidden, "You can only remove your own messages...")
		default:
			abortWithError(c, http.StatusInternalServerError, "Something went wrong, please try again later")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message removed successfully"})
}
