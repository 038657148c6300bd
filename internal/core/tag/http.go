// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/hotink/hotink/internal/platform/request"
	"github.com/hotink/hotink/internal/platform/respond"
	"github.com/hotink/hotink/pkg/pointer"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listTags)
}

// GET /api/v1/accounts/{accountID}/tags?prefix=ci&limit=20.
func (handler *Handler) listTags(writer http.ResponseWriter, request *http.Request) {
	accountID, err := requestutil.AccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	limit := int(pointer.Fallback(requestutil.QueryInt64(request, "limit"), DefaultLimit))

	tags, err := handler.service.List(request.Context(), accountID, request.URL.Query().Get("prefix"), limit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, tags)
}
