package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/technova-labs/portal-go/internal/api/middleware"
	"github.com/technova-labs/portal-go/internal/application"
	"github.com/technova-labs/portal-go/internal/domain/user"
	"github.com/technova-labs/portal-go/pkg/response"
)

type AuthHandler struct {
	service *application.UserService
}

func NewAuthHandler(service *application.UserService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register godoc
// @Summary Register a portal account
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.RegisterInput true "account"
// @Success 201 {object} user.User
// @Failure 400 {object} response.ValidationErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var input user.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, validationErrors(err))
		return
	}

	u, err := h.service.Register(input)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrUsernameTaken), errors.Is(err, application.ErrEmailTaken):
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Registration failed"})
		}
		return
	}

	c.JSON(http.StatusCreated, u)
}

// Login godoc
// @Summary Log in and receive a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.LoginInput true "credentials"
// @Success 200 {object} response.TokenResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input user.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, validationErrors(err))
		return
	}

	u, token, err := h.service.Login(input.Username, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid credentials"})
		return
	}

	c.SetCookie("token", token, 24*3600, "/", "", false, true)
	c.JSON(http.StatusOK, response.TokenResponse{
		Token:    token,
		UID:      u.ID,
		Username: u.Username,
		Role:     string(u.Role),
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Logged out"})
}

// Me returns the authenticated account.
func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	u, err := h.service.GetUser(claims.UserID)
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "User not found"})
		return
	}

	c.JSON(http.StatusOK, u)
}
