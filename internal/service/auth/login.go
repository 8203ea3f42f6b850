package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/tallyapp/tally-backend/internal/domain"
)

// Login authenticates a user by username or email plus password.
// Returns ErrUnauthorized if the account is not found or the password is
// wrong; callers cannot distinguish the two cases.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.UsernameOrEmail = strings.TrimSpace(input.UsernameOrEmail)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.findAccount(ctx, input.UsernameOrEmail)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login find account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID.String()))

	return result, nil
}

// findAccount resolves a login identifier, trying username first and falling
// back to email when the identifier looks like one.
func (s *Service) findAccount(ctx context.Context, identifier string) (*domain.User, error) {
	user, err := s.users.GetByUsername(ctx, identifier)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	if !strings.Contains(identifier, "@") {
		return nil, domain.ErrNotFound
	}
	return s.users.GetByEmail(ctx, identifier)
}
