package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/medtrack/medication-reminder/internal/core/domain"
)

func TestHTTPErrorHandler(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"validation", domain.Invalid("name is required"), http.StatusUnprocessableEntity, "validation failed: name is required"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"user exists", domain.ErrUserExists, http.StatusConflict, "user already exists"},
		{"in flight", domain.ErrActionInFlight, http.StatusConflict, "action already in progress"},
		{"no session", domain.ErrNoSession, http.StatusUnauthorized, "no active session"},
		{"medication not found", fmt.Errorf("update: %w", domain.ErrMedicationNotFound), http.StatusNotFound, "medication not found"},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "not found"},
		{"echo error", echo.NewHTTPError(http.StatusBadRequest, "invalid payload"), http.StatusBadRequest, "invalid payload"},
		{"store failure", fmt.Errorf("%w: boom", domain.ErrStore), http.StatusInternalServerError, "internal server error"},
		{"unknown", errors.New("kaboom"), http.StatusInternalServerError, "internal server error"},
	}

	handler := NewHTTPErrorHandler(zerolog.Nop())
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			handler(tc.err, c)

			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			var body errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if body.Error != tc.msg {
				t.Fatalf("expected %q, got %q", tc.msg, body.Error)
			}
		})
	}
}
