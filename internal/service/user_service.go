package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"fizzquiz/internal/models"
	"fizzquiz/internal/security"
	"fizzquiz/internal/validation"
)

// UserStore is the user persistence the service depends on
type UserStore interface {
	CreateUser(username, passwordHash, email string) (*models.User, error)
	CreateOAuthUser(username, email, provider, subject string) (*models.User, error)
	GetUserByID(id int64) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUserByOAuth(provider, subject string) (*models.User, error)
	GetUsers(username string) ([]models.User, error)
	UpdateUser(user *models.User) (*models.User, error)
	DeleteUser(id int64) error
}

// UserService handles user accounts and authentication
type UserService struct {
	users  UserStore
	tokens *security.TokenManager
	email  *EmailService
}

// NewUserService creates a new user service
func NewUserService(users UserStore, tokens *security.TokenManager, email *EmailService) *UserService {
	return &UserService{users: users, tokens: tokens, email: email}
}

// UserUpdate carries the optional fields of a partial user update
type UserUpdate struct {
	Username *string
	Password *string
	Email    *string
}

// Register validates and creates a new user with a hashed password
func (s *UserService) Register(username, password, email string) (*models.User, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, err
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, err
	}
	if err := validation.ValidateEmail(email); err != nil {
		return nil, err
	}

	existing, err := s.users.GetUserByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("user %q: %w", username, ErrUsernameTaken)
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.users.CreateUser(username, hash, email)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("user registered")

	if s.email != nil && s.email.IsEnabled() && user.HasEmail() {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := s.email.SendWelcomeEmail(ctx, user.Email, user.Username); err != nil {
				log.Warn().Err(err).Str("to", user.Email).Msg("welcome email failed")
			}
		}()
	}

	return user, nil
}

// Login verifies credentials and issues a signed bearer token
func (s *UserService) Login(username, password string) (*models.User, string, time.Time, error) {
	user, err := s.users.GetUserByUsername(username)
	if err != nil {
		return nil, "", time.Time{}, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil || !security.CheckPassword(password, user.PasswordHash) {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, "", time.Time{}, fmt.Errorf("failed to issue token: %w", err)
	}

	log.Info().Int64("user_id", user.ID).Msg("user logged in")

	return user, token, expiresAt, nil
}

// LoginOAuth finds or provisions a user for a verified OAuth identity and
// issues a signed bearer token
func (s *UserService) LoginOAuth(provider, subject, email, name string) (*models.User, string, time.Time, error) {
	user, err := s.users.GetUserByOAuth(provider, subject)
	if err != nil {
		return nil, "", time.Time{}, fmt.Errorf("failed to get user: %w", err)
	}

	if user == nil {
		username := uniqueOAuthUsername(s.users, name, subject)
		user, err = s.users.CreateOAuthUser(username, email, provider, subject)
		if err != nil {
			return nil, "", time.Time{}, fmt.Errorf("failed to provision user: %w", err)
		}
		log.Info().Int64("user_id", user.ID).Str("provider", provider).Msg("oauth user provisioned")
	}

	token, expiresAt, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, "", time.Time{}, fmt.Errorf("failed to issue token: %w", err)
	}

	return user, token, expiresAt, nil
}

// GetUsers lists users, optionally filtered by exact username
func (s *UserService) GetUsers(username string) ([]models.User, error) {
	users, err := s.users.GetUsers(username)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(id int64) (*models.User, error) {
	user, err := s.users.GetUserByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	return user, nil
}

// UpdateUser applies a partial update to a user
func (s *UserService) UpdateUser(id int64, update UserUpdate) (*models.User, error) {
	user, err := s.users.GetUserByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}

	if update.Username != nil && *update.Username != user.Username {
		if err := validation.ValidateUsername(*update.Username); err != nil {
			return nil, err
		}
		existing, err := s.users.GetUserByUsername(*update.Username)
		if err != nil {
			return nil, fmt.Errorf("failed to check username: %w", err)
		}
		if existing != nil {
			return nil, fmt.Errorf("user %q: %w", *update.Username, ErrUsernameTaken)
		}
		user.Username = *update.Username
	}
	if update.Password != nil {
		if err := validation.ValidatePassword(*update.Password); err != nil {
			return nil, err
		}
		hash, err := security.HashPassword(*update.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hash
	}
	if update.Email != nil {
		if err := validation.ValidateEmail(*update.Email); err != nil {
			return nil, err
		}
		user.Email = *update.Email
	}

	updated, err := s.users.UpdateUser(user)
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return updated, nil
}

// DeleteUser removes a user
func (s *UserService) DeleteUser(id int64) error {
	user, err := s.users.GetUserByID(id)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return fmt.Errorf("user %d: %w", id, ErrNotFound)
	}

	if err := s.users.DeleteUser(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// uniqueOAuthUsername derives a username for an OAuth-provisioned account,
// falling back to a subject-based suffix on collision
func uniqueOAuthUsername(users UserStore, name, subject string) string {
	base := ""
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			base += string(r)
		}
	}
	if len(base) < 3 {
		base = "player"
	}
	if len(base) > 40 {
		base = base[:40]
	}

	if existing, err := users.GetUserByUsername(base); err == nil && existing == nil {
		return base
	}

	suffix := subject
	if len(suffix) > 8 {
		suffix = suffix[len(suffix)-8:]
	}
	return fmt.Sprintf("%s_%s", base, suffix)
}
