package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/artifyhq/artify-backend/internal/application"
	"github.com/artifyhq/artify-backend/pkg/response"
	"github.com/artifyhq/artify-backend/pkg/validation"
)

// AuthHandler exposes registration and login. Both endpoints issue a bearer
// token so a fresh account can call the API immediately.
type AuthHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.UserService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

// Only presence is validated here: the contract is that any non-empty
// triple registers, and login decides credential validity itself so a
// malformed address still answers 401 rather than 400.
type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type authResponse struct {
	Token string `json:"token"`
	User  any    `json:"user"`
}

// Register POST /api/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "all fields are required", validation.ToDetails(err))
		return
	}
	res, err := h.Svc.Register(req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrEmailExists),
			errors.Is(err, application.ErrUsernameExists),
			errors.Is(err, application.ErrMissingFields):
			response.Error(c, http.StatusBadRequest, err.Error(), nil)
		default:
			h.Logger.WithError(err).Error("register failed")
			response.Error(c, http.StatusInternalServerError, "server error", nil)
		}
		return
	}
	response.Success(c, http.StatusCreated, authResponse{Token: res.Token, User: res.User}, "User registered successfully")
}

// Login POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "email and password are required", validation.ToDetails(err))
		return
	}
	res, err := h.Svc.Login(req.Email, req.Password)
	if err != nil {
		// Unknown email and wrong password are indistinguishable on purpose.
		response.Error(c, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}
	response.Success(c, http.StatusOK, authResponse{Token: res.Token, User: res.User}, "Login successful")
}
