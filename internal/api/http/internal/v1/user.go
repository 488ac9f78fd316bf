package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) initUsersRoutes(api *gin.RouterGroup) {
	api.POST("/sign-up", h.signUp)
	api.POST("/sign-in", h.signIn)
	api.POST("/refresh", h.refresh)
	api.DELETE("/sign-out", h.userIdentityMiddleware, h.signOut)
}

type signUpCredentials struct {
	Email                string `json:"email" binding:"required,email"`
	Password             string `json:"password" binding:"required"`
	PasswordConfirmation string `json:"password_confirmation" binding:"required,eqfield=Password"`
}

type signUpRequest struct {
	Credentials *signUpCredentials `json:"credentials" binding:"required"`
}

type signInCredentials struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type signInRequest struct {
	Credentials *signInCredentials `json:"credentials" binding:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type userItemResponse struct {
	User userResponse `json:"user"`
}

type userAuthResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken uuid.UUID `json:"refresh_token"`
}

type signInResponse struct {
	User         userResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken uuid.UUID    `json:"refresh_token"`
}

// @Summary Sign Up
// @Tags Auth
// @Description Register a new account
// @ModuleID signUp
// @Accept  json
// @Produce  json
// @Param input body signUpRequest true "credentials"
// @Success 201 {object} userItemResponse
// @Failure 400 {object} ErrorStruct
// @Failure 409 {object} ErrorStruct
// @Failure 422 {object} ValidationErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /sign-up [post]
func (h *Handler) signUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindErr(err))
		return
	}

	user, err := h.services.Users.SignUp(c.Request.Context(), req.Credentials.Email, req.Credentials.Password)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, userItemResponse{User: newUserResponse(user)})
}

// @Summary Sign In
// @Tags Auth
// @Description Exchange credentials for an access and a refresh token
// @ModuleID signIn
// @Accept  json
// @Produce  json
// @Param input body signInRequest true "credentials"
// @Success 201 {object} signInResponse
// @Failure 400 {object} ErrorStruct
// @Failure 401 {object} ErrorStruct
// @Failure 422 {object} ValidationErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /sign-in [post]
func (h *Handler) signIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindErr(err))
		return
	}

	user, tokens, err := h.services.Users.SignIn(c.Request.Context(),
		req.Credentials.Email,
		req.Credentials.Password,
		c.Request.UserAgent(),
		c.ClientIP(),
	)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, signInResponse{
		User:         newUserResponse(user),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	})
}

// @Summary Refresh Tokens
// @Tags Auth
// @Description Rotate a refresh token. The old one stops working.
// @ModuleID refresh
// @Accept  json
// @Produce  json
// @Param input body refreshRequest true "refresh token"
// @Success 201 {object} userAuthResponse
// @Failure 400 {object} ErrorStruct
// @Failure 401 {object} ErrorStruct
// @Failure 422 {object} ValidationErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /refresh [post]
func (h *Handler) refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindErr(err))
		return
	}

	tokens, err := h.services.Users.Refresh(c.Request.Context(), req.RefreshToken, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, userAuthResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	})
}

// @Summary Sign Out
// @Tags Auth
// @Description Revoke the access token used for this request
// @ModuleID signOut
// @Produce  json
// @Success 204
// @Failure 401 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security UserAuth
// @Router /sign-out [delete]
func (h *Handler) signOut(c *gin.Context) {
	claims, err := getClaims(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.services.Users.SignOut(c.Request.Context(), claims); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
