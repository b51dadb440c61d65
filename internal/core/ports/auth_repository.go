package ports

import (
	"context"

	"github.com/medtrack/medication-reminder/internal/core/domain"
)

// AuthRepository defines the user directory persistence.
// Create returns domain.ErrUserExists when the email is taken.
type AuthRepository interface {
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindByID(ctx context.Context, id string) (domain.User, error)
	Create(ctx context.Context, user domain.User) error
}
