package ports

import (
	"context"

	"github.com/medtrack/medication-reminder/internal/core/domain"
)

// Session is the active authenticated user plus the bearer token issued for it.
type Session struct {
	User  domain.User `json:"user"`
	Token string      `json:"token,omitempty"`
}

type AuthService interface {
	SignIn(ctx context.Context, email, password string) (Session, error)
	SignUp(ctx context.Context, name, email, password string) (Session, error)
	SignOut(ctx context.Context) error
	Current() (domain.User, bool)
	Authorize(ctx context.Context, userID string) (domain.User, error)
	Loading() bool
}
