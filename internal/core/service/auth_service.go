package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/medtrack/medication-reminder/internal/core/domain"
	"github.com/medtrack/medication-reminder/internal/core/ports"
)

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

// AuthService implements sign-up, sign-in and sign-out and holds the single
// active session of the process. It starts with no session.
type AuthService struct {
	repo      ports.AuthRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
	now       func() time.Time

	mu       sync.RWMutex
	session  *domain.User
	inFlight atomic.Int32
}

func NewAuthService(repo ports.AuthRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		repo:      repo,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
		now:       time.Now,
	}
}

// SignIn establishes the session for the directory entry matching email and
// password exactly. Any mismatch is reported as ErrInvalidCredentials.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (ports.Session, error) {
	s.inFlight.Add(1)
	defer s.inFlight.Add(-1)

	if email == "" || password == "" {
		return ports.Session{}, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ports.Session{}, domain.ErrInvalidCredentials
		}
		return ports.Session{}, storeErr("find user", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return ports.Session{}, domain.ErrInvalidCredentials
	}

	return s.establish(user)
}

// SignUp adds a directory entry and makes it the active session.
func (s *AuthService) SignUp(ctx context.Context, name, email, password string) (ports.Session, error) {
	s.inFlight.Add(1)
	defer s.inFlight.Add(-1)

	user, err := s.newUser(name, email, password)
	if err != nil {
		return ports.Session{}, err
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return ports.Session{}, err
		}
		return ports.Session{}, storeErr("create user", err)
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user signed up")
	return s.establish(user)
}

// SignOut clears the session. The directory entry is kept.
func (s *AuthService) SignOut(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session != nil {
		s.logger.Info().Str("user_id", s.session.ID).Msg("user signed out")
	}
	s.session = nil
	return nil
}

// Current returns the active session user, if any.
func (s *AuthService) Current() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return domain.User{}, false
	}
	return *s.session, true
}

// Authorize confirms that userID owns the active session and is still present
// in the directory. It returns ErrNoSession otherwise; a directory entry that
// has disappeared also ends the session.
func (s *AuthService) Authorize(ctx context.Context, userID string) (domain.User, error) {
	current, ok := s.Current()
	if !ok || userID == "" || current.ID != userID {
		return domain.User{}, domain.ErrNoSession
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.mu.Lock()
			if s.session != nil && s.session.ID == userID {
				s.session = nil
			}
			s.mu.Unlock()
			s.logger.Warn().Str("user_id", userID).Msg("session user no longer in directory")
			return domain.User{}, domain.ErrNoSession
		}
		return domain.User{}, storeErr("find user", err)
	}
	return user.Public(), nil
}

func (s *AuthService) Loading() bool {
	return s.inFlight.Load() > 0
}

// Seed adds a directory entry unless the email is already registered. It
// does not touch the session.
func (s *AuthService) Seed(ctx context.Context, name, email, password string) error {
	user, err := s.newUser(name, email, password)
	if err != nil {
		return err
	}
	if err := s.repo.Create(ctx, user); err != nil && !errors.Is(err, domain.ErrUserExists) {
		return storeErr("seed user", err)
	}
	return nil
}

func (s *AuthService) newUser(name, email, password string) (domain.User, error) {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return domain.User{}, domain.Invalid("name is required")
	case email == "":
		return domain.User{}, domain.Invalid("email is required")
	case password == "":
		return domain.User{}, domain.Invalid("password is required")
	case len(password) > maxPasswordBytes:
		return domain.User{}, domain.Invalid("password must be at most %d bytes", maxPasswordBytes)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, storeErr("hash password", err)
	}

	return domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	}, nil
}

func (s *AuthService) establish(user domain.User) (ports.Session, error) {
	public := user.Public()

	token, err := s.generateToken(public)
	if err != nil {
		return ports.Session{}, err
	}

	s.mu.Lock()
	s.session = &public
	s.mu.Unlock()

	s.logger.Info().Str("user_id", public.ID).Msg("session established")
	return ports.Session{User: public, Token: token}, nil
}

func (s *AuthService) generateToken(user domain.User) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"name":  user.Name,
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
