package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-credential-auth/internal/application"
	"github.com/oksasatya/go-credential-auth/internal/domain/entity"
	"github.com/oksasatya/go-credential-auth/pkg/helpers"
	"github.com/oksasatya/go-credential-auth/pkg/response"
	"github.com/oksasatya/go-credential-auth/pkg/validation"
)

// AuthService is satisfied by *application.Service.
type AuthService interface {
	Register(ctx context.Context, c entity.Credential) error
	Authenticate(ctx context.Context, c entity.Credential) (helpers.IssuedToken, error)
}

type AuthHandler struct {
	Svc    AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type credentialRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type registerResponse struct {
	Email string `json:"email"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type failure struct {
	status  int
	code    string
	message string
}

// Not-found and wrong-password share one entry so callers cannot tell them apart.
var failures = map[application.Kind]failure{
	application.KindValidation:        {http.StatusBadRequest, "validation", "invalid payload"},
	application.KindConflict:          {http.StatusConflict, "conflict", "email already registered"},
	application.KindNotFound:          {http.StatusUnauthorized, "invalid_credentials", "invalid credentials"},
	application.KindInvalidCredential: {http.StatusUnauthorized, "invalid_credentials", "invalid credentials"},
	application.KindStore:             {http.StatusInternalServerError, "internal", "internal server error"},
	application.KindSigning:           {http.StatusInternalServerError, "internal", "internal server error"},
}

var unknownFailure = failure{http.StatusInternalServerError, "internal", "internal server error"}

func failureFor(err error) failure {
	if f, ok := failures[application.KindOf(err)]; ok {
		return f
	}
	return unknownFailure
}

func validationDetails(err error) map[string]string {
	switch {
	case errors.Is(err, application.ErrEmptyEmail):
		return map[string]string{"email": "is required"}
	case errors.Is(err, application.ErrEmptyPassword):
		return map[string]string{"password": "is required"}
	case errors.Is(err, helpers.ErrPasswordTooLong):
		return map[string]string{"password": "must be at most 72 bytes"}
	}
	return nil
}

func (h *AuthHandler) fail(c *gin.Context, err error) {
	f := failureFor(err)
	if f.status >= http.StatusInternalServerError {
		incr(metricErrorsInternal)
		helpers.LogError(h.Logger, "request failed", err, logrus.Fields{
			"request_id": c.GetString("request_id"),
			"path":       c.FullPath(),
		})
	}
	var details map[string]string
	if f.code == "validation" {
		details = validationDetails(err)
	}
	response.Error[any](c, f.status, f.message, response.ErrorBody{Code: f.code, Details: details})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req credentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", response.ErrorBody{Code: "validation", Details: validation.ToDetails(err)})
		return
	}

	err := h.Svc.Register(c.Request.Context(), entity.Credential{Email: req.Email, Password: req.Password})
	if err != nil {
		if application.KindOf(err) == application.KindConflict {
			incr(metricRegisterConflict)
		}
		h.fail(c, err)
		return
	}

	incr(metricRegisterOK)
	response.Success(c, http.StatusCreated, registerResponse{Email: req.Email}, "registered", nil)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", response.ErrorBody{Code: "validation", Details: validation.ToDetails(err)})
		return
	}

	tok, err := h.Svc.Authenticate(c.Request.Context(), entity.Credential{Email: req.Email, Password: req.Password})
	if err != nil {
		switch application.KindOf(err) {
		case application.KindNotFound, application.KindInvalidCredential:
			incr(metricLoginFailed)
		}
		h.fail(c, err)
		return
	}

	incr(metricLoginOK)
	response.Success(c, http.StatusOK, loginResponse{Token: tok.Token, ExpiresAt: tok.ExpiresAt}, "login successful", nil)
}
