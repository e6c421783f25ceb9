package controllers

import (
	"errors"
	"net/http"

	"github.com/guilhermerodrigues17/messages-backend/forms"
	"github.com/guilhermerodrigues17/messages-backend/models"
	"github.com/guilhermerodrigues17/messages-backend/service"
	"github.com/gin-gonic/gin"
)

// claimsContextKey is where RequireAuth stores the verified token claims
// for the duration of the request.
const claimsContextKey = "tokenPayload"

// AuthController handles authentication related operations
type AuthController struct {
	auth *service.AuthService
}

// NewAuthController creates and returns a new AuthController instance
func NewAuthController(auth *service.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

var authForm = new(forms.AuthForm)

// Login handles user authentication requests, validates credentials and
// returns a token pair. Unknown email and wrong password produce the same
// response.
func (ctrl AuthController) Login(c *gin.Context) {
	var loginForm forms.LoginForm

	if validationErr := c.ShouldBindJSON(&loginForm); validationErr != nil {
		abortWithError(c, http.StatusNotAcceptable, authForm.Login(validationErr))
		return
	}

	pair, err := ctrl.auth.Login(c.Request.Context(), loginForm.Email, loginForm.Password)
	if err != nil {
		if errors.Is(err, models.ErrUnauthorized) {
			abortWithError(c, http.StatusUnauthorized, "Invalid login details")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Something went wrong, please try again later")
		return
	}

	c.JSON(http.StatusOK, pair)
}

// Refresh exchanges a valid refresh token for a new token pair
func (ctrl AuthController) Refresh(c *gin.Context) {
	var refreshForm forms.RefreshForm

	if validationErr := c.ShouldBindJSON(&refreshForm); validationErr != nil {
		abortWithError(c, http.StatusNotAcceptable, authForm.Refresh(validationErr))
		return
	}

	pair, err := ctrl.auth.Refresh(c.Request.Context(), refreshForm.RefreshToken)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid authorization, please login again")
		return
	}

	c.JSON(http.StatusOK, pair)
}

// RequireAuth is the authentication middleware attached to each route that
// needs an authenticated caller. On success the verified claims are stored
// in the request context; any failure aborts with a generic 401.
func (ctrl AuthController) RequireAuth(c *gin.Context) {
	claims, err := ctrl.auth.Authenticate(c.Request.Context(), c.Request)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Please login first")
		return
	}

	c.Set(claimsContextKey, claims)
	c.Next()
}

// TokenClaims returns the verified claims attached by RequireAuth.
// It panics when called outside a guarded route.
func TokenClaims(c *gin.Context) *models.AccessClaims {
	return c.MustGet(claimsContextKey).(*models.AccessClaims)
}

// requesterID resolves the authenticated user id from the request context
func requesterID(c *gin.Context) (models.UserID, error) {
	return models.ParseUserID(TokenClaims(c).Subject)
}
