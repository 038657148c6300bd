// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/hotink/hotink/internal/platform/request"
	"github.com/hotink/hotink/internal/platform/respond"
	"github.com/hotink/hotink/pkg/pagination"
)

const authorsPerPage = 50

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the author endpoints on an account-scoped router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listAuthors)
	router.Post("/", handler.createAuthor)
	router.Get("/{id}", handler.getAuthor)
}

func (handler *Handler) listAuthors(writer http.ResponseWriter, request *http.Request) {
	accountID, err := requestutil.AccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	page := pagination.FromQuery(request.URL.Query(), authorsPerPage)
	filter := Filter{Query: request.URL.Query().Get("q")}

	authors, total, err := handler.service.List(request.Context(), accountID, filter, page.PerPage, page.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, authors, page.Meta(total))
}

func (handler *Handler) getAuthor(writer http.ResponseWriter, request *http.Request) {
	accountID, err := requestutil.AccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	authorID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	author, err := handler.service.Get(request.Context(), accountID, authorID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, author)
}

func (handler *Handler) createAuthor(writer http.ResponseWriter, request *http.Request) {
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

	author, err := handler.service.FindOrCreate(request.Context(), accountID, input.Name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, author)
}
