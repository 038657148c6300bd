// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"fmt"

	"github.com/hotink/hotink/internal/platform/database/schema"
	"github.com/hotink/hotink/internal/platform/dberr"
	"github.com/hotink/hotink/internal/platform/postgres"
	"github.com/hotink/hotink/internal/platform/sec"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db postgres.Querier
}

// NewRepository creates a PostgreSQL implementation of [Repository].
func NewRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*Account, error) {
	a := schema.CoreAccount
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		a.ID, a.Name, a.TimeZone, a.CreatedAt, a.UpdatedAt, a.Table, a.ID,
	)

	account := &Account{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&account.ID, &account.Name, &account.TimeZone, &account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "Account")
	}
	return account, nil
}

/*
Update saves the account's name and time zone.

Returns:
  - error: CONFLICT when another account already uses the name
*/
func (repository *PostgresRepository) Update(context context.Context, account *Account) error {
	a := schema.CoreAccount
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = $3, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`, a.Table, a.Name, a.TimeZone, a.UpdatedAt, a.ID, a.UpdatedAt)

	err := repository.db.QueryRow(context, query, account.ID, account.Name, account.TimeZone).Scan(&account.UpdatedAt)
	return dberr.Wrap(err, "Account")
}

func (repository *PostgresRepository) ListStaff(context context.Context, accountID int64) ([]*StaffMember, error) {
	u, r := schema.UserAccount, schema.UserAccountRole
	query := fmt.Sprintf(`
		SELECT u.%s, u.%s, u.%s, u.%s, ARRAY_AGG(r.%s ORDER BY r.%s)
		FROM %s r
		JOIN %s u ON u.%s = r.%s
		WHERE r.%s = $1
		GROUP BY u.%s
		ORDER BY u.%s ASC, u.%s ASC
	`,
		u.ID, u.Name, u.Email, u.IsActive, r.Role, r.Role,
		r.Table,
		u.Table, u.ID, r.UserID,
		r.AccountID,
		u.ID,
		u.Name, u.Email,
	)

	rows, err := repository.db.Query(context, query, accountID)
	if err != nil {
		return nil, dberr.Wrap(err, "Staff")
	}
	defer rows.Close()

	staff := make([]*StaffMember, 0)
	for rows.Next() {
		member := &StaffMember{}
		var roles []string
		if err := rows.Scan(&member.UserID, &member.Name, &member.Email, &member.IsActive, &roles); err != nil {
			return nil, dberr.Wrap(err, "Staff")
		}
		for _, role := range roles {
			member.Roles = append(member.Roles, sec.UserRole(role))
		}
		staff = append(staff, member)
	}
	return staff, dberr.Wrap(rows.Err(), "Staff")
}
