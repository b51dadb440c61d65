package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/medtrack/medication-reminder/internal/core/domain"
)

// AuthRepository is an in-memory user directory keyed by exact email.
type AuthRepository struct {
	mu      sync.RWMutex
	byEmail map[string]domain.User
}

func NewAuthRepository() *AuthRepository {
	return &AuthRepository{byEmail: make(map[string]domain.User)}
}

func (r *AuthRepository) Create(_ context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(user.ID) == "" {
		return errors.New("user id required")
	}
	if _, exists := r.byEmail[user.Email]; exists {
		return domain.ErrUserExists
	}
	r.byEmail[user.Email] = user
	return nil
}

func (r *AuthRepository) FindByEmail(_ context.Context, email string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byEmail[email]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *AuthRepository) FindByID(_ context.Context, id string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound
}
