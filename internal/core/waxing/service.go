// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package waxing

import (
	"context"
	"log/slog"
	"strings"

	"github.com/hotink/hotink/internal/platform/apperr"
	"github.com/hotink/hotink/internal/platform/validate"
)

// CreateInput attaches one mediafile.
type CreateInput struct {
	DocumentID  int64  `json:"document_id"`
	MediafileID int64  `json:"mediafile_id"`
	Caption     string `json:"caption"`
}

// BatchFailure reports one mediafile id that could not be attached.
type BatchFailure struct {
	MediafileID int64  `json:"mediafile_id"`
	Code        string `json:"code"`
	Message     string `json:"message"`
}

// BatchResult lists what a batch attach created and what it skipped.
type BatchResult struct {
	Created []*Waxing      `json:"created"`
	Failed  []BatchFailure `json:"failed"`
}

type Service struct {
	repo    Repository
	indexer DeltaMarker
	logger  *slog.Logger
}

func NewService(repo Repository, indexer DeltaMarker, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		indexer: indexer,
		logger:  logger,
	}
}

func (service *Service) Get(context context.Context, accountID, id int64) (*Waxing, error) {
	return service.repo.Get(context, accountID, id)
}

func (service *Service) ListByDocument(context context.Context, accountID, documentID int64) ([]*Waxing, error) {
	return service.repo.ListByDocument(context, accountID, documentID)
}

// Create attaches one mediafile to one document of the account.
func (service *Service) Create(context context.Context, accountID int64, input CreateInput) (*Waxing, error) {
	input.Caption = strings.TrimSpace(input.Caption)

	validator := &validate.Validator{}
	validator.Positive(FieldDocumentID, input.DocumentID).
		Positive(FieldMediafileID, input.MediafileID).
		MaxLen(FieldCaption, input.Caption, MaxCaptionLength)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	waxing := &Waxing{
		AccountID:   accountID,
		DocumentID:  input.DocumentID,
		MediafileID: input.MediafileID,
		Caption:     input.Caption,
	}
	if err := service.repo.Create(context, waxing); err != nil {
		return nil, err
	}

	service.logger.Info("waxing_created",
		slog.Int64("account_id", accountID),
		slog.Int64("document_id", waxing.DocumentID),
		slog.Int64("mediafile_id", waxing.MediafileID),
	)
	service.markDelta(context, accountID, waxing.DocumentID)
	return waxing, nil
}

/*
CreateBatch attaches several mediafiles to one document.

Each id is inserted on its own. A failure is recorded in the result and the
loop moves on; links created before it are kept.
*/
func (service *Service) CreateBatch(context context.Context, accountID, documentID int64, mediafileIDs []int64) (*BatchResult, error) {
	validator := &validate.Validator{}
	validator.Positive(FieldDocumentID, documentID)
	validator.Custom(FieldMediafileIDs, len(mediafileIDs) == 0, "Required")
	validator.Custom(FieldMediafileIDs, len(mediafileIDs) > MaxBatchSize, "Too many mediafiles")
	if err := validator.Err(); err != nil {
		return nil, err
	}

	result := &BatchResult{Created: make([]*Waxing, 0, len(mediafileIDs)), Failed: make([]BatchFailure, 0)}
	for _, mediafileID := range mediafileIDs {
		waxing := &Waxing{AccountID: accountID, DocumentID: documentID, MediafileID: mediafileID}

		err := (&validate.Validator{}).Positive(FieldMediafileID, mediafileID).Err()
		if err == nil {
			err = service.repo.Create(context, waxing)
		}
		if err != nil {
			result.Failed = append(result.Failed, failure(mediafileID, err))
			continue
		}
		result.Created = append(result.Created, waxing)
	}

	service.logger.Info("waxings_created",
		slog.Int64("account_id", accountID),
		slog.Int64("document_id", documentID),
		slog.Int("created", len(result.Created)),
		slog.Int("failed", len(result.Failed)),
	)
	if len(result.Created) > 0 {
		service.markDelta(context, accountID, documentID)
	}
	return result, nil
}

func failure(mediafileID int64, err error) BatchFailure {
	if appErr := apperr.As(err); appErr != nil && appErr.HTTPStatus < 500 {
		return BatchFailure{MediafileID: mediafileID, Code: appErr.Code, Message: appErr.Message}
	}
	return BatchFailure{MediafileID: mediafileID, Code: "INTERNAL_ERROR", Message: "Could not attach mediafile"}
}

func (service *Service) UpdateCaption(context context.Context, accountID, id int64, caption string) (*Waxing, error) {
	caption = strings.TrimSpace(caption)
	if err := (&validate.Validator{}).MaxLen(FieldCaption, caption, MaxCaptionLength).Err(); err != nil {
		return nil, err
	}

	waxing, err := service.repo.UpdateCaption(context, accountID, id, caption)
	if err != nil {
		return nil, err
	}
	service.markDelta(context, accountID, waxing.DocumentID)
	return waxing, nil
}

// Destroy detaches the mediafile from its document. The mediafile remains.
func (service *Service) Destroy(context context.Context, accountID, id int64) error {
	waxing, err := service.repo.Delete(context, accountID, id)
	if err != nil {
		return err
	}

	service.logger.Info("waxing_destroyed",
		slog.Int64("account_id", accountID),
		slog.Int64("waxing_id", id),
		slog.Int64("document_id", waxing.DocumentID),
	)
	service.markDelta(context, accountID, waxing.DocumentID)
	return nil
}

func (service *Service) markDelta(context context.Context, accountID, documentID int64) {
	if err := service.indexer.MarkDelta(context, accountID, documentID); err != nil {
		service.logger.Warn("search_delta_mark_failed",
			slog.Int64("document_id", documentID),
			slog.Any("error", err),
		)
	}
}
