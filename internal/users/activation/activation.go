// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package activation implements the staff invitation workflow.

A manager invites someone by email. An address that already belongs to a
user just grants that user the staff role on the account. A new address
creates an inactive user scoped to the account and mails them a perishable
activation link; following it lets them pick a name and password, which
activates the user and grants staff.

Every operation that changes the invitation list answers with a notice and
the current list of pending users, on success and failure alike.

Two concurrent invitations of the same new address can both miss the email
lookup. The unique email constraint rejects the second insert, which then
reports "Error sending email".
*/
package activation

import (
	"regexp"
	"time"

	"github.com/hotink/hotink/internal/users/auth"
)

const (
	// TokenTTL is how long an activation link stays valid.
	TokenTTL = 24 * time.Hour

	// TokenLength is the byte length of an activation token.
	TokenLength = 32

	MinPasswordLength = 8
	MaxNameLength     = 200

	FieldEmail                = "email"
	FieldName                 = "name"
	FieldPassword             = "password"
	FieldPasswordConfirmation = "password_confirmation"
)

// # Notices

const (
	InvalidEmailNotice   = "Sorry, can't work with that, it's not an email address"
	InvitedNotice        = "Account invitation emailed"
	InviteFailedNotice   = "Error sending email"
	GrantedNoticeFormat  = "%s is officially a staff member."
	WelcomeNotice        = "Welcome to Hot Ink!"
	RevokedNotice        = "Invitation revoked"
	NotRevokedNotice     = "Error: Invitation NOT revoked"
	CouldNotLocateNotice = "We're sorry, but we could not locate your account. " +
		"If you are having issues try copying and pasting the URL " +
		"from your email into your browser or restarting the process."
)

// emailPattern accepts local@domain with a two-letter or well-known TLD.
var emailPattern = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@(?:[A-Z0-9-]+\.)+(?:[A-Z]{2}|com|org|net|gov|mil|biz|info|mobi|name|aero|jobs|museum)$`)

// Outcome classifies how an invitation ended.
type Outcome string

const (
	OutcomeInvalidEmail Outcome = "invalid_email"
	OutcomeGranted      Outcome = "granted"
	OutcomeInvited      Outcome = "invited"
	OutcomeFailed       Outcome = "failed"
	OutcomeRevoked      Outcome = "revoked"
	OutcomeNotRevoked   Outcome = "not_revoked"
)

// Result is the answer to an operation on the invitation list.
type Result struct {
	Notice  string       `json:"notice"`
	Outcome Outcome      `json:"outcome"`
	User    *auth.User   `json:"user,omitempty"`
	Pending []*auth.User `json:"pending"`
}

// EditResult resolves an activation link.
type EditResult struct {
	User *auth.User `json:"user,omitempty"`

	// Redirect is set when the user has no account; the link belongs to the
	// account sign-up flow instead.
	Redirect string `json:"redirect,omitempty"`
}

// UpdateResult is the answer to a completed activation.
type UpdateResult struct {
	Notice   string     `json:"notice,omitempty"`
	User     *auth.User `json:"user,omitempty"`
	Redirect string     `json:"redirect,omitempty"`
}

// InviteInput is the invitation form.
type InviteInput struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// UpdateInput is the activation form.
type UpdateInput struct {
	Name                 string `json:"name"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// IsPlausibleEmail reports whether value looks like an email address.
func IsPlausibleEmail(value string) bool {
	return emailPattern.MatchString(value)
}
