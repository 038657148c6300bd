// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package waxing

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hotink/hotink/internal/platform/apperr"
	requestutil "github.com/hotink/hotink/internal/platform/request"
	"github.com/hotink/hotink/internal/platform/respond"
	"github.com/hotink/hotink/pkg/convert"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listWaxings)
	router.Post("/", handler.createWaxing)
	router.Get("/{id}", handler.getWaxing)
	router.Patch("/{id}", handler.updateWaxing)
	router.Delete("/{id}", handler.destroyWaxing)
}

// GET /api/v1/accounts/{accountID}/waxings?document_id=N.
func (handler *Handler) listWaxings(writer http.ResponseWriter, request *http.Request) {
	accountID, err := requestutil.AccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	documentID := requestutil.QueryInt64(request, "document_id")
	if documentID == nil {
		respond.Error(writer, request, apperr.ValidationError("document_id is required",
			apperr.FieldError{Field: FieldDocumentID, Message: "Required"}))
		return
	}

	waxings, err := handler.service.ListByDocument(request.Context(), accountID, *documentID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, waxings)
}

// createRequest accepts a single link or a batch for one document.
type createRequest struct {
	Waxing       *CreateInput `json:"waxing"`
	DocumentID   any          `json:"document_id"`
	MediafileIDs []any        `json:"mediafile_ids"`
}

/*
POST /api/v1/accounts/{accountID}/waxings.

Request (Body), either:
  - {"waxing": {"document_id": 1, "mediafile_id": 2, "caption": "..."}}
  - {"document_id": 1, "mediafile_ids": [2, 3, "4"]}

Response:
  - 201: Waxing for a single link
  - 200: BatchResult for a batch, with per-id failures
  - 400: VALIDATION_ERROR
  - 404: NOT_FOUND when the document or mediafile is not in the account
*/
func (handler *Handler) createWaxing(writer http.ResponseWriter, request *http.Request) {
	accountID, err := requestutil.AccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if input.Waxing != nil {
		waxing, err := handler.service.Create(request.Context(), accountID, *input.Waxing)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.Created(writer, waxing)
		return
	}

	documentID, ok := convert.AnyToInt64(input.DocumentID)
	if !ok {
		respond.Error(writer, request, apperr.ValidationError("Expected a waxing or a document_id with mediafile_ids",
			apperr.FieldError{Field: FieldDocumentID, Message: "Required"}))
		return
	}

	// Unparseable ids become 0 and are reported as per-id failures.
	mediafileIDs := make([]int64, 0, len(input.MediafileIDs))
	for _, raw := range input.MediafileIDs {
		id, _ := convert.AnyToInt64(raw)
		mediafileIDs = append(mediafileIDs, id)
	}

	result, err := handler.service.CreateBatch(request.Context(), accountID, documentID, mediafileIDs)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}

func (handler *Handler) getWaxing(writer http.ResponseWriter, request *http.Request) {
	accountID, err := requestutil.AccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	waxing, err := handler.service.Get(request.Context(), accountID, id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, waxing)
}

func (handler *Handler) updateWaxing(writer http.ResponseWriter, request *http.Request) {
	accountID, err := requestutil.AccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input struct {
		Caption string `json:"caption"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	waxing, err := handler.service.UpdateCaption(request.Context(), accountID, id, input.Caption)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, waxing)
}

func (handler *Handler) destroyWaxing(writer http.ResponseWriter, request *http.Request) {
	accountID, err := requestutil.AccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Destroy(request.Context(), accountID, id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
