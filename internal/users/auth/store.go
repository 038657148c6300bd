// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"

	"github.com/hotink/hotink/internal/platform/sec"
)

// UserRepository defines the data access contract for users.
type UserRepository interface {
	FindByID(context context.Context, id string) (*User, error)

	// FindByEmail matches the address exactly.
	FindByEmail(context context.Context, email string) (*User, error)

	Create(context context.Context, user *User) error

	// Update persists name, password hash and the active flag.
	Update(context context.Context, user *User) error

	// ListPending returns the users of an account never modified since they
	// were created, oldest first.
	ListPending(context context.Context, accountID int64) ([]*User, error)

	// DeletePending hard-deletes a pending user of the account.
	DeletePending(context context.Context, accountID int64, userID string) error
}

// RoleRepository manages the roles users hold on accounts.
type RoleRepository interface {
	// Grant is idempotent: granting a held role changes nothing.
	Grant(context context.Context, accountID int64, userID string, role sec.UserRole) error

	Roles(context context.Context, accountID int64, userID string) ([]sec.UserRole, error)
}
