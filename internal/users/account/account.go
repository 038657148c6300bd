// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package account manages the newsroom accounts that own every document, category,
author and mediafile, together with the staff who work on them.

A caller only ever sees the account carried by their token; the router enforces
that before any handler in this package runs.
*/
package account

import (
	"context"
	"time"

	"github.com/hotink/hotink/internal/platform/sec"
)

// # Domain Entities

// Account is a newsroom.
type Account struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	TimeZone  string    `json:"time_zone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Location resolves the account's time zone, falling back to UTC when the
// stored name is unknown to the host.
func (a *Account) Location() *time.Location {
	location, err := time.LoadLocation(a.TimeZone)
	if err != nil {
		return time.UTC
	}
	return location
}

// StaffMember is a user of the account with the roles they hold on it.
type StaffMember struct {
	UserID   string         `json:"user_id"`
	Name     string         `json:"name"`
	Email    string         `json:"email"`
	IsActive bool           `json:"is_active"`
	Roles    []sec.UserRole `json:"roles"`
}

// # Constants

const (
	MaxNameLength = 200

	FieldName     = "name"
	FieldTimeZone = "time_zone"
)

// # Repository Contracts

// Repository defines the persistence contract for accounts.
type Repository interface {
	/*
		FindByID retrieves an account.

		Returns:
		  - *Account
		  - error: apperr.NotFound when the account does not exist
	*/
	FindByID(context context.Context, id int64) (*Account, error)

	// Update persists name and time zone.
	Update(context context.Context, account *Account) error

	// ListStaff returns the users holding at least one role on the account,
	// ordered by name.
	ListStaff(context context.Context, accountID int64) ([]*StaffMember, error)
}
