// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"log/slog"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/hotink/hotink/internal/platform/validate"
)

// # Service Layer

// Service orchestrates account reads and settings changes.
type Service struct {
	repository Repository
	logger     *slog.Logger
}

func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{repository: repository, logger: logger}
}

func (service *Service) Get(context context.Context, id int64) (*Account, error) {
	return service.repository.FindByID(context, id)
}

// UpdateInput holds the mutable account settings. Nil fields are left alone.
type UpdateInput struct {
	Name     *string `json:"name"`
	TimeZone *string `json:"time_zone"`
}

/*
Update applies a partial change to the account settings.

Parameters:
  - context: context.Context
  - id: int64
  - input: UpdateInput

Returns:
  - *Account: the saved account
  - error: VALIDATION_ERROR for a blank name or an unknown IANA zone
*/
func (service *Service) Update(context context.Context, id int64, input UpdateInput) (*Account, error) {
	account, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	validator := &validate.Validator{}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		validator.Required(FieldName, name).MaxLen(FieldName, name, MaxNameLength)
		account.Name = name
	}
	if input.TimeZone != nil {
		zone := strings.TrimSpace(*input.TimeZone)
		_, zoneErr := time.LoadLocation(zone)
		validator.Required(FieldTimeZone, zone).
			Custom(FieldTimeZone, zone != "" && zoneErr != nil, "Unknown time zone")
		account.TimeZone = zone
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repository.Update(context, account); err != nil {
		return nil, err
	}

	service.logger.Info("account_updated",
		slog.Int64("account_id", account.ID),
		slog.String("time_zone", account.TimeZone),
	)
	return account, nil
}

// Staff lists the users working on the account.
func (service *Service) Staff(context context.Context, accountID int64) ([]*StaffMember, error) {
	return service.repository.ListStaff(context, accountID)
}
