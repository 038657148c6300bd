// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/hotink/hotink/internal/platform/apperr"
	"github.com/hotink/hotink/internal/platform/database/schema"
	"github.com/hotink/hotink/internal/platform/dberr"
	"github.com/hotink/hotink/internal/platform/postgres"
	"github.com/hotink/hotink/internal/platform/sec"
)

// # User Repository

// PostgresUserRepository implements [UserRepository] using pgx.
type PostgresUserRepository struct {
	db postgres.Querier
}

// NewUserRepository creates a PostgreSQL implementation of [UserRepository].
func NewUserRepository(db postgres.Querier) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

var userColumns = strings.Join(schema.UserAccount.Columns(), ", ")

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*User, error) {
	user := &User{}
	err := row.Scan(
		&user.ID,
		&user.AccountID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (repository *PostgresUserRepository) FindByID(context context.Context, id string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, userColumns, schema.UserAccount.Table, schema.UserAccount.ID)

	user, err := scanUser(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "User")
	}
	return user, nil
}

func (repository *PostgresUserRepository) FindByEmail(context context.Context, email string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, userColumns, schema.UserAccount.Table, schema.UserAccount.Email)

	user, err := scanUser(repository.db.QueryRow(context, query, email))
	if err != nil {
		return nil, dberr.Wrap(err, "User")
	}
	return user, nil
}

/*
Create persists a new user.

Returns:
  - error: CONFLICT when the email is already taken
*/
func (repository *PostgresUserRepository) Create(context context.Context, user *User) error {
	u := schema.UserAccount
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING %s, %s
	`,
		u.Table, u.ID, u.AccountID, u.Name, u.Email, u.PasswordHash, u.IsActive, u.CreatedAt, u.UpdatedAt,
		u.CreatedAt, u.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		user.ID, user.AccountID, user.Name, user.Email, user.PasswordHash, user.IsActive,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	return dberr.Wrap(err, "User")
}

func (repository *PostgresUserRepository) Update(context context.Context, user *User) error {
	u := schema.UserAccount
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		u.Table, u.Name, u.PasswordHash, u.IsActive, u.UpdatedAt,
		u.ID,
		u.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, user.ID, user.Name, user.PasswordHash, user.IsActive).Scan(&user.UpdatedAt)
	return dberr.Wrap(err, "User")
}

func (repository *PostgresUserRepository) ListPending(context context.Context, accountID int64) ([]*User, error) {
	u := schema.UserAccount
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s = %s ORDER BY %s ASC`,
		userColumns, u.Table, u.AccountID, u.CreatedAt, u.UpdatedAt, u.CreatedAt,
	)

	rows, err := repository.db.Query(context, query, accountID)
	if err != nil {
		return nil, dberr.Wrap(err, "User")
	}
	defer rows.Close()

	users := make([]*User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "User")
		}
		users = append(users, user)
	}
	return users, dberr.Wrap(rows.Err(), "User")
}

func (repository *PostgresUserRepository) DeletePending(context context.Context, accountID int64, userID string) error {
	u := schema.UserAccount
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2 AND %s = %s`,
		u.Table, u.AccountID, u.ID, u.CreatedAt, u.UpdatedAt,
	)

	tag, err := repository.db.Exec(context, query, accountID, userID)
	if err != nil {
		return dberr.Wrap(err, "Invitation")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Invitation")
	}
	return nil
}

// # Role Repository

// PostgresRoleRepository implements [RoleRepository] using pgx.
type PostgresRoleRepository struct {
	db postgres.Querier
}

func NewRoleRepository(db postgres.Querier) *PostgresRoleRepository {
	return &PostgresRoleRepository{db: db}
}

func (repository *PostgresRoleRepository) Grant(context context.Context, accountID int64, userID string, role sec.UserRole) error {
	r := schema.UserAccountRole
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, $3, NOW())
		ON CONFLICT (%s, %s, %s) DO NOTHING
	`,
		r.Table, r.AccountID, r.UserID, r.Role, r.CreatedAt,
		r.AccountID, r.UserID, r.Role,
	)

	_, err := repository.db.Exec(context, query, accountID, userID, string(role))
	return dberr.Wrap(err, "Account")
}

func (repository *PostgresRoleRepository) Roles(context context.Context, accountID int64, userID string) ([]sec.UserRole, error) {
	r := schema.UserAccountRole
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s = $2`, r.Role, r.Table, r.AccountID, r.UserID)

	rows, err := repository.db.Query(context, query, accountID, userID)
	if err != nil {
		return nil, dberr.Wrap(err, "Role")
	}
	defer rows.Close()

	roles := make([]sec.UserRole, 0)
	for rows.Next() {
		var role string
		if err := rows.Scan(&role); err != nil {
			return nil, dberr.Wrap(err, "Role")
		}
		roles = append(roles, sec.UserRole(role))
	}
	return roles, dberr.Wrap(rows.Err(), "Role")
}
