// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/hotink/hotink/internal/platform/request"
	"github.com/hotink/hotink/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listCategories)
	router.Post("/", handler.createCategory)
	router.Get("/{id}", handler.getCategory)
}

func (handler *Handler) listCategories(writer http.ResponseWriter, request *http.Request) {
	accountID, err := requestutil.AccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	categories, err := handler.service.List(request.Context(), accountID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, categories)
}

func (handler *Handler) getCategory(writer http.ResponseWriter, request *http.Request) {
	accountID, err := requestutil.AccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	categoryID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	category, err := handler.service.Get(request.Context(), accountID, categoryID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, category)
}

func (handler *Handler) createCategory(writer http.ResponseWriter, request *http.Request) {
	accountID, err := requestutil.AccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input struct {
		Name string `json:"name"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	category, err := handler.service.Create(request.Context(), accountID, input.Name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, category)
}
