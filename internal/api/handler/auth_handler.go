package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medtrack/medication-reminder/internal/api/metrics"
	"github.com/medtrack/medication-reminder/internal/core/domain"
	"github.com/medtrack/medication-reminder/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type signUpRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
}

type signInRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}

type sessionResponse struct {
	User    *domain.User `json:"user"`
	Loading bool         `json:"loading"`
}

// SignUp creates a new user account and signs it in.
//
// @Summary      Sign up
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signUpRequest  true  "User details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /auth/signup [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("signup", "invalid").Inc()
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	session, err := h.authService.SignUp(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		status, result := http.StatusInternalServerError, "error"
		switch {
		case errors.Is(err, domain.ErrUserExists):
			status, result = http.StatusConflict, "user_exists"
		case errors.Is(err, domain.ErrValidation):
			status, result = http.StatusUnprocessableEntity, "invalid"
		}
		metrics.AuthAttemptsTotal.WithLabelValues("signup", result).Inc()
		if status == http.StatusInternalServerError {
			return err
		}
		return c.JSON(status, errorResponse{Error: err.Error()})
	}

	metrics.AuthAttemptsTotal.WithLabelValues("signup", "ok").Inc()
	return c.JSON(http.StatusCreated, authResponse{Token: session.Token, User: &session.User})
}

// SignIn authenticates a user, makes it the active session and returns a JWT.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signInRequest  true  "Credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/signin [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	session, err := h.authService.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.AuthAttemptsTotal.WithLabelValues("signin", "invalid_credentials").Inc()
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
		}
		metrics.AuthAttemptsTotal.WithLabelValues("signin", "error").Inc()
		return err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("signin", "ok").Inc()
	return c.JSON(http.StatusOK, authResponse{Token: session.Token, User: &session.User})
}

// SignOut clears the active session.
//
// @Summary      Sign out
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401   {object}  errorResponse
// @Router       /auth/signout [post]
func (h *AuthHandler) SignOut(c echo.Context) error {
	if _, err := ctxUserID(c); err != nil {
		return err
	}
	if err := h.authService.SignOut(c.Request().Context()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Session returns the active session user.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  sessionResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	user, ok := h.authService.Current()
	if !ok {
		return domain.ErrNoSession
	}
	return c.JSON(http.StatusOK, sessionResponse{User: &user, Loading: h.authService.Loading()})
}
