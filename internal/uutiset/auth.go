package uutiset

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Authenticate verifies credentials against the stored bcrypt hash. Unknown
// email and wrong password produce the same ErrInvalidCredentials. On success
// only the user's public fields are returned; no token or session is created.
func (m *Manager) Authenticate(ctx context.Context, email, password string) (*User, error) {
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := m.db.UserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("db get user by email: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	result := NewUser(user)
	return &result, nil
}

// HashPassword produces a bcrypt hash with the given cost. A cost outside
// bcrypt's range falls back to the library default.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}
