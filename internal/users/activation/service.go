// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package activation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hotink/hotink/internal/platform/apperr"
	"github.com/hotink/hotink/internal/platform/mail"
	"github.com/hotink/hotink/internal/platform/sec"
	"github.com/hotink/hotink/internal/platform/validate"
	"github.com/hotink/hotink/internal/users/auth"
	"github.com/hotink/hotink/pkg/pointer"
	"github.com/hotink/hotink/pkg/uuid"
)

// Notifier hands a message to the mail system without waiting for delivery.
type Notifier interface {
	Dispatch(message mail.Message)
}

type Service struct {
	users    auth.UserRepository
	roles    auth.RoleRepository
	tokens   TokenStore
	notifier Notifier
	baseURL  string
	logger   *slog.Logger
}

// NewService wires the workflow. baseURL prefixes the activation links.
func NewService(users auth.UserRepository, roles auth.RoleRepository, tokens TokenStore, notifier Notifier, baseURL string, logger *slog.Logger) *Service {
	return &Service{
		users:    users,
		roles:    roles,
		tokens:   tokens,
		notifier: notifier,
		baseURL:  strings.TrimRight(baseURL, "/"),
		logger:   logger,
	}
}

// Pending lists the account's users that never changed since creation.
func (service *Service) Pending(context context.Context, accountID int64) ([]*auth.User, error) {
	return service.users.ListPending(context, accountID)
}

/*
Invite adds someone to the account's staff by email.

Parameters:
  - context: context.Context
  - accountID: the inviting account
  - input: InviteInput

Returns:
  - *Result: notice, outcome and the refreshed pending list
  - error: only for infrastructure failures; input problems are outcomes
*/
func (service *Service) Invite(context context.Context, accountID int64, input InviteInput) (*Result, error) {
	result, err := service.invite(context, accountID, input)
	if err != nil {
		return nil, err
	}

	if result.Pending, err = service.users.ListPending(context, accountID); err != nil {
		return nil, err
	}
	return result, nil
}

func (service *Service) invite(context context.Context, accountID int64, input InviteInput) (*Result, error) {
	email := strings.TrimSpace(input.Email)
	if !IsPlausibleEmail(email) {
		return &Result{Notice: InvalidEmailNotice, Outcome: OutcomeInvalidEmail}, nil
	}

	existing, err := service.users.FindByEmail(context, email)
	if err == nil {
		if err := service.roles.Grant(context, accountID, existing.ID, sec.RoleStaff); err != nil {
			return nil, err
		}
		service.logger.Info("staff_granted",
			slog.Int64("account_id", accountID),
			slog.String("user_id", existing.ID),
		)
		return &Result{
			Notice:  fmt.Sprintf(GrantedNoticeFormat, existing.DisplayName()),
			Outcome: OutcomeGranted,
			User:    existing,
		}, nil
	}
	if !apperr.IsNotFound(err) {
		return nil, err
	}

	user := &auth.User{
		ID:        uuid.New(),
		AccountID: pointer.To(accountID),
		Name:      strings.TrimSpace(input.Name),
		Email:     email,
	}
	if err := service.users.Create(context, user); err != nil {
		service.logger.Warn("staff_invite_failed",
			slog.Int64("account_id", accountID),
			slog.Any("error", err),
		)
		return &Result{Notice: InviteFailedNotice, Outcome: OutcomeFailed}, nil
	}

	token, err := service.tokens.Issue(context, user.ID)
	if err != nil {
		service.logger.Error("activation_token_issue_failed",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
		return &Result{Notice: InviteFailedNotice, Outcome: OutcomeFailed, User: user}, nil
	}

	service.notifier.Dispatch(service.instructions(user, token))

	service.logger.Info("staff_invited",
		slog.Int64("account_id", accountID),
		slog.String("user_id", user.ID),
	)
	return &Result{Notice: InvitedNotice, Outcome: OutcomeInvited, User: user}, nil
}

func (service *Service) instructions(user *auth.User, token string) mail.Message {
	link := fmt.Sprintf("%s/api/v1/user-activations/%s", service.baseURL, token)
	return mail.Message{
		To:      user.Email,
		Subject: "Activate your Hot Ink account",
		Body: "You have been invited to join a Hot Ink newsroom.\n\n" +
			"Choose your name and password here within the next day:\n\n" +
			link + "\n",
	}
}

// accountRedirect is where a link of a user without an account leads.
func accountRedirect(token string) string {
	return "/api/v1/account-activations/" + token
}

// resolve loads the user behind a token. Unknown or expired tokens and
// deleted users are all NOT_FOUND with the same message.
func (service *Service) resolve(context context.Context, token string) (*auth.User, error) {
	userID, err := service.tokens.Resolve(context, token)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.NotFoundMessage(CouldNotLocateNotice)
		}
		return nil, err
	}

	user, err := service.users.FindByID(context, userID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.NotFoundMessage(CouldNotLocateNotice)
		}
		return nil, err
	}
	return user, nil
}

// Edit resolves an activation link to its user.
func (service *Service) Edit(context context.Context, token string) (*EditResult, error) {
	user, err := service.resolve(context, token)
	if err != nil {
		return nil, err
	}

	if user.AccountID == nil {
		return &EditResult{Redirect: accountRedirect(token)}, nil
	}
	return &EditResult{User: user}, nil
}

/*
Update completes an activation: the user picks a name and password, becomes
active, and is granted staff on their account. The token is then consumed.

Returns:
  - *UpdateResult: the welcome notice, or a redirect for users without an account
  - error: VALIDATION_ERROR when the form is invalid; nothing is saved
*/
func (service *Service) Update(context context.Context, token string, input UpdateInput) (*UpdateResult, error) {
	user, err := service.resolve(context, token)
	if err != nil {
		return nil, err
	}

	if user.AccountID == nil {
		return &UpdateResult{Redirect: accountRedirect(token)}, nil
	}

	name := strings.TrimSpace(input.Name)
	validator := &validate.Validator{}
	validator.Required(FieldName, name).
		MaxLen(FieldName, name, MaxNameLength).
		Required(FieldPassword, input.Password).
		MinLen(FieldPassword, input.Password, MinPasswordLength)
	validator.Custom(FieldPasswordConfirmation, input.Password != input.PasswordConfirmation, "Does not match password")
	if err := validator.Err(); err != nil {
		return nil, err
	}

	hash, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	user.Name = name
	user.PasswordHash = hash
	user.IsActive = true
	if err := service.users.Update(context, user); err != nil {
		return nil, err
	}

	if err := service.roles.Grant(context, pointer.Val(user.AccountID), user.ID, sec.RoleStaff); err != nil {
		return nil, err
	}

	if err := service.tokens.Consume(context, token); err != nil {
		service.logger.Warn("activation_token_consume_failed",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
	}

	service.logger.Info("staff_activated",
		slog.Int64("account_id", pointer.Val(user.AccountID)),
		slog.String("user_id", user.ID),
	)
	return &UpdateResult{Notice: WelcomeNotice, User: user}, nil
}

// Destroy revokes an invitation by deleting the pending user. Any failure
// becomes the "not revoked" notice.
func (service *Service) Destroy(context context.Context, accountID int64, userID string) (*Result, error) {
	result := &Result{Notice: RevokedNotice, Outcome: OutcomeRevoked}

	if err := service.users.DeletePending(context, accountID, userID); err != nil {
		service.logger.Warn("invitation_revoke_failed",
			slog.Int64("account_id", accountID),
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		result = &Result{Notice: NotRevokedNotice, Outcome: OutcomeNotRevoked}
	} else {
		service.logger.Info("invitation_revoked",
			slog.Int64("account_id", accountID),
			slog.String("user_id", userID),
		)
	}

	pending, err := service.users.ListPending(context, accountID)
	if err != nil {
		return nil, err
	}
	result.Pending = pending
	return result, nil
}
