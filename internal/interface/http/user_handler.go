package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/oksasatya/go-user-token-api/internal/application"
	"github.com/oksasatya/go-user-token-api/internal/interface/middleware"
	"github.com/oksasatya/go-user-token-api/pkg/response"
	"github.com/oksasatya/go-user-token-api/pkg/validation"
)

const msgBadCredentials = "unable to log in with provided credentials"

type UserHandler struct {
	Svc    *userapp.Service
	Logger *logrus.Logger
}

func NewUserHandler(svc *userapp.Service, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type createUserRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email,max=255"`
	Password string `json:"password" form:"password" binding:"required,pwd,max=72"`
	Name     string `json:"name" form:"name" binding:"max=255"`
}

type tokenRequest struct {
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// userResponse is the public representation of a user; it has no password field.
type userResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Create POST /user/create {email, password, name}
func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.CreateUser(c.Request.Context(), userapp.CreateUserInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	switch {
	case errors.Is(err, userapp.ErrEmailTaken):
		response.Error(c, http.StatusBadRequest, "invalid payload", map[string]string{"email": err.Error()})
		return
	case errors.Is(err, userapp.ErrPasswordTooLong):
		response.Error(c, http.StatusBadRequest, "invalid payload", map[string]string{"password": "must be at most 72 bytes long"})
		return
	case err != nil:
		h.internalError(c, err, "create user failed")
		return
	}
	c.JSON(http.StatusCreated, userResponse{Email: u.Email, Name: u.Name})
}

// Token POST /user/token {email, password}
func (h *UserHandler) Token(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	token, err := h.Svc.IssueToken(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, userapp.ErrInvalidCredentials) {
		response.Error(c, http.StatusBadRequest, msgBadCredentials, map[string]string{"non_field_errors": msgBadCredentials})
		return
	}
	if err != nil {
		h.internalError(c, err, "issue token failed")
		return
	}
	c.JSON(http.StatusOK, tokenResponse{Token: token})
}

// Me GET /user/me (token required)
func (h *UserHandler) Me(c *gin.Context) {
	u, err := h.Svc.GetProfile(c.Request.Context(), c.GetString(middleware.CtxUserIDKey))
	if errors.Is(err, userapp.ErrUserNotFound) {
		response.Error(c, http.StatusNotFound, "user not found", nil)
		return
	}
	if err != nil {
		h.internalError(c, err, "load profile failed")
		return
	}
	c.JSON(http.StatusOK, userResponse{Email: u.Email, Name: u.Name})
}

func (h *UserHandler) internalError(c *gin.Context, err error, msg string) {
	if h.Logger != nil {
		h.Logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error(msg)
	}
	response.Error(c, http.StatusInternalServerError, "internal error", nil)
}
