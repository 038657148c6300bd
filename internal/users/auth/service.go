// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hotink/hotink/internal/platform/apperr"
	"github.com/hotink/hotink/internal/platform/sec"
)

// # Contracts & Types

// TokenProvider signs access tokens.
type TokenProvider interface {
	GenerateAccessToken(userID, name string, accountID int64, role string, timeToLive time.Duration) (string, error)
}

// Service implements login and identity lookups.
type Service struct {
	userRepository UserRepository
	roleRepository RoleRepository
	tokenProvider  TokenProvider
	logger         *slog.Logger
}

func NewService(users UserRepository, roles RoleRepository, tokens TokenProvider, logger *slog.Logger) *Service {
	return &Service{
		userRepository: users,
		roleRepository: roles,
		tokenProvider:  tokens,
		logger:         logger,
	}
}

// LoginInput holds the credentials of a login attempt.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginSession is a successful login.
type LoginSession struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int          `json:"expires_in"`
	Role        sec.UserRole `json:"role"`
	User        *User        `json:"user"`
}

/*
Login verifies credentials and issues an access token.

The token carries the user's account and the highest role held on it.
Unknown emails, wrong passwords, inactive users and users without a role on
their account all get the same UNAUTHORIZED answer.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *LoginSession: the signed token and the user
  - error: UNAUTHORIZED or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {
	invalid := apperr.Unauthorized("Invalid login credentials")

	user, err := service.userRepository.FindByEmail(context, strings.TrimSpace(input.Email))
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, invalid
		}
		return nil, err
	}

	if !user.IsActive || user.AccountID == nil || !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, invalid
	}

	roles, err := service.roleRepository.Roles(context, *user.AccountID, user.ID)
	if err != nil {
		return nil, err
	}
	role := sec.HighestRole(roles)
	if role == "" {
		return nil, invalid
	}

	accessToken, err := service.tokenProvider.GenerateAccessToken(user.ID, user.DisplayName(), *user.AccountID, string(role), AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	service.logger.Info("user_logged_in",
		slog.String("user_id", user.ID),
		slog.Int64("account_id", *user.AccountID),
		slog.String("role", string(role)),
	)

	return &LoginSession{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int(AccessTokenTTL.Seconds()),
		Role:        role,
		User:        user,
	}, nil
}

// Me returns the user behind the current token.
func (service *Service) Me(context context.Context, userID string) (*User, error) {
	return service.userRepository.FindByID(context, userID)
}
