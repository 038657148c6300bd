// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements user identity for Hot Ink.

A user belongs to at most one account and holds one or more roles on it
(staff, manager, admin). Users are created inactive by the staff invitation
workflow and become able to log in once they choose a password.
*/
package auth

import (
	"time"
)

// # Domain Entities

// User is a person who can log in to an account.
type User struct {
	ID           string    `json:"id"`
	AccountID    *int64    `json:"account_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DisplayName falls back to the email for users who have not picked a name.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

// # Field Identifiers

const (
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldName     = "name"
)
