package identity

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/loandesk/loandesk/internal/recordid"
)

// ErrInvalidPassword indicates the supplied password does not match the stored hash.
var ErrInvalidPassword = errors.New("invalid password")

// Service manages user registration and authentication.
type Service struct {
	repo Repository
}

// NewService creates a new identity service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register stores a new user with a bcrypt password hash. Registration fails
// with ErrUsernameTaken when the username is already present.
func (s *Service) Register(ctx context.Context, creds Credentials) (User, error) {
	if _, err := s.repo.FindByUsername(ctx, creds.Username); err == nil {
		return User{}, ErrUsernameTaken
	} else if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	user := User{
		ID:           recordid.New(),
		Username:     creds.Username,
		Phone:        creds.Phone,
		Email:        creds.Email,
		PasswordHash: hash,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return User{}, err
	}

	return user, nil
}

// Authenticate verifies the username/password pair and returns the stored user.
func (s *Service) Authenticate(ctx context.Context, username, password string) (User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return User{}, err
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return User{}, ErrInvalidPassword
	}

	return user, nil
}

// List returns the API projection of every registered user.
func (s *Service) List(ctx context.Context) ([]Profile, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	profiles := make([]Profile, 0, len(users))
	for _, user := range users {
		profiles = append(profiles, Profile{Username: user.Username, Email: user.Email, Phone: user.Phone})
	}
	return profiles, nil
}
