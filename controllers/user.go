package controllers

import (
	"errors"
	"net/http"

	"github.com/guilhermerodrigues17/messages-backend/forms"
	"github.com/guilhermerodrigues17/messages-backend/models"
	"github.com/guilhermerodrigues17/messages-backend/service"
	"github.com/gin-gonic/gin"
)

// UserController handles user-related HTTP requests and responses
type UserController struct {
	user *service.UserService
}

// NewUserController creates and returns a new UserController instance
func NewUserController(user *service.UserService) *UserController {
	return &UserController{user: user}
}

var userForm = new(forms.UserForm)

// Register handles new user registration requests, validates input and creates a new user account
func (ctrl UserController) Register(c *gin.Context) {
	var registerForm forms.RegisterForm

	if err := c.ShouldBindJSON(&registerForm); err != nil {
		abortWithError(c, http.StatusNotAcceptable, userForm.Register(err))
		return
	}

	user, err := ctrl.user.Register(c.Request.Context(), registerForm)
	if err != nil {
		if errors.Is(err, models.ErrEmailTaken) {
			abortWithError(c, http.StatusConflict, "This email already exists!")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Something went wrong, please try again later")
		return
	}

	c.JSON(http.StatusCreated, user)
}

// List returns all user records
func (ctrl UserController) List(c *gin.Context) {
	users, err := ctrl.user.List(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Something went wrong, please try again later")
		return
	}

	c.JSON(http.StatusOK, users)
}

// One returns a single user record
func (ctrl UserController) One(c *gin.Context) {
	userID, err := models.ParseUserID(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Id must be a valid identifier")
		return
	}

	user, err := ctrl.user.One(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			abortWithError(c, http.StatusNotFound, "User not found...")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Something went wrong, please try again later")
		return
	}

	c.JSON(http.StatusOK, user)
}

// Update changes the name or password of a user record. Requesters may only
// change their own record.
func (ctrl UserController) Update(c *gin.Context) {
	userID, err := models.ParseUserID(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Id must be a valid identifier")
		return
	}

	var updateForm forms.UpdateUserForm
	if validationErr := c.ShouldBindJSON(&updateForm); validationErr != nil {
		abortWithError(c, http.StatusNotAcceptable, userForm.Update(validationErr))
		return
	}

	reqID, err := requesterID(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Please login first")
		return
	}

	user, err := ctrl.user.Update(c.Request.Context(), userID, updateForm, reqID)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			abortWithError(c, http.StatusNotFound, "User not found...")
		case errors.Is(err, models.ErrForbidden):
			abortWithError(c, http.StatusForbidden, "You can only change your own data...")
		default:
			abortWithError(c, http.StatusInternalServerError, "Something went wrong, please try again later")
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

// Remove deletes a user record. Requesters may only delete their own record.
func (ctrl UserController) Remove(c *gin.Context) {
	userID, err := models.ParseUserID(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Id must be a valid identifier")
		return
	}

	reqID, err := requesterID(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Please login first")
		return
	}

	if err := ctrl.user.Remove(c.Request.Context(), userID, reqID); err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			abortWithError(c, http.StatusNotFound, "User not found...")
		case errors.Is(err, models.ErrForbidden):
			abortWithError(c, http.StatusForbidden, "You can only change your own data...")
		default:
			abortWithError(c, http.StatusInternalServerError, "Something went wrong, please try again later")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User removed successfully"})
}

// UploadPicture stores a profile picture for the authenticated user
func (ctrl UserController) UploadPicture(c *gin.Context) {
	reqID, err := requesterID(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Please login first")
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "It is necessary to send some file...")
		return
	}

	user, err := ctrl.user.UploadPicture(c.Request.Context(), reqID, file)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidFile):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, models.ErrNotFound):
			abortWithError(c, http.StatusNotFound, "User not found...")
		default:
			abortWithError(c, http.StatusInternalServerError, "Something went wrong, please try again later")
		}
		return
	}

	c.JSON(http.StatusOK, user)
}
