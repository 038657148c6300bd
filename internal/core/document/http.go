// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package document

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/hotink/hotink/internal/platform/request"
	"github.com/hotink/hotink/internal/platform/respond"
	"github.com/hotink/hotink/pkg/convert"
	"github.com/hotink/hotink/pkg/pagination"
	"github.com/hotink/hotink/pkg/query"
)

const documentsPerPage = pagination.DefaultPerPage

// # HTTP Handlers

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the document endpoints on an account-scoped router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listDocuments)
	router.Post("/", handler.createDocument)

	router.Route("/{id}", func(r chi.Router) {
		r.Get("/", handler.getDocument)
		r.Patch("/", handler.updateDocument)
		r.Delete("/", handler.deleteDocument)

		r.Post("/publish", handler.publishDocument)
		r.Post("/unpublish", handler.unpublishDocument)
		r.Put("/authors-list", handler.setAuthorsList)
		r.Put("/categories", handler.setCategories)

		r.Get("/authorships", handler.listAuthorships)
		r.Post("/authorships", handler.addAuthorship)
		r.Patch("/authorships/{authorshipID}", handler.updateAuthorship)
		r.Delete("/authorships/{authorshipID}", handler.removeAuthorship)
	})
}

// # Request Payloads

type createRequest struct {
	CreateInput
	Categories any `json:"categories_attributes"`
}

type updateRequest struct {
	Kind         *Kind                  `json:"kind"`
	Title        *string                `json:"title"`
	Subtitle     *string                `json:"subtitle"`
	Bodytext     *string                `json:"bodytext"`
	SectionID    *int64                 `json:"section_id"`
	ClearSection bool                   `json:"clear_section"`
	Tags         []string               `json:"tags"`
	Status       *string                `json:"status"`
	AuthorsList  *string                `json:"authors_list"`
	Authorships  []AuthorshipAttributes `json:"authorships_attributes"`
	Categories   any                    `json:"categories_attributes"`
}

func optionalToggles(raw any) (CategoryToggles, error) {
	if raw == nil {
		return nil, nil
	}
	return ParseCategoryToggles(raw)
}

// # Document Endpoints

func (handler *Handler) listDocuments(writer http.ResponseWriter, request *http.Request) {
	accountID, err := requestutil.AccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	page := pagination.FromQuery(request.URL.Query(), documentsPerPage)
	queryValues := request.URL.Query()

	filter := Filter{
		Query:      queryValues.Get("q"),
		Kind:       Kind(queryValues.Get("kind")),
		Categories: query.Int64Slice(queryValues["category_id"]),
		Tags:       query.StringSlice(queryValues.Get("tag")),
	}
	if raw := queryValues.Get("published"); raw != "" {
		published := convert.ToBool(raw)
		filter.Published = &published
	}

	documents, total, err := handler.service.List(request.Context(), accountID, filter, page.PerPage, page.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, documents, page.Meta(total))
}

func (handler *Handler) getDocument(writer http.ResponseWriter, request *http.Request) {
	accountID, documentID, ok := scope(writer, request)
	if !ok {
		return
	}

	doc, err := handler.service.Get(request.Context(), accountID, documentID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, doc)
}

func (handler *Handler) createDocument(writer http.ResponseWriter, request *http.Request) {
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

	toggles, err := optionalToggles(input.Categories)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	input.CreateInput.Categories = toggles

	doc, err := handler.service.Create(request.Context(), accountID, input.CreateInput)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, doc)
}

func (handler *Handler) updateDocument(writer http.ResponseWriter, request *http.Request) {
	accountID, documentID, ok := scope(writer, request)
	if !ok {
		return
	}

	var input updateRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	toggles, err := optionalToggles(input.Categories)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	doc, err := handler.service.Update(request.Context(), accountID, documentID, UpdateInput{
		Kind:         input.Kind,
		Title:        input.Title,
		Subtitle:     input.Subtitle,
		Bodytext:     input.Bodytext,
		SectionID:    input.SectionID,
		ClearSection: input.ClearSection,
		Tags:         input.Tags,
		Status:       input.Status,
		AuthorsList:  input.AuthorsList,
		Authorships:  input.Authorships,
		Categories:   toggles,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, doc)
}

func (handler *Handler) deleteDocument(writer http.ResponseWriter, request *http.Request) {
	accountID, documentID, ok := scope(writer, request)
	if !ok {
		return
	}

	if err := handler.service.Delete(request.Context(), accountID, documentID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) publishDocument(writer http.ResponseWriter, request *http.Request) {
	accountID, documentID, ok := scope(writer, request)
	if !ok {
		return
	}

	input := PublishInput{Status: StatusPublished}
	if err := requestutil.DecodeOptionalJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	doc, err := handler.service.Publish(request.Context(), accountID, documentID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, doc)
}

func (handler *Handler) unpublishDocument(writer http.ResponseWriter, request *http.Request) {
	accountID, documentID, ok := scope(writer, request)
	if !ok {
		return
	}

	doc, err := handler.service.Unpublish(request.Context(), accountID, documentID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, doc)
}

func (handler *Handler) setAuthorsList(writer http.ResponseWriter, request *http.Request) {
	accountID, documentID, ok := scope(writer, request)
	if !ok {
		return
	}

	var input struct {
		AuthorsList string `json:"authors_list"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	doc, err := handler.service.SetAuthorsList(request.Context(), accountID, documentID, input.AuthorsList)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, doc)
}

func (handler *Handler) setCategories(writer http.ResponseWriter, request *http.Request) {
	accountID, documentID, ok := scope(writer, request)
	if !ok {
		return
	}

	var raw any
	if err := requestutil.DecodeJSON(request, &raw); err != nil {
		respond.Error(writer, request, err)
		return
	}

	toggles, err := ParseCategoryToggles(raw)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	doc, err := handler.service.ApplyCategoryToggles(request.Context(), accountID, documentID, toggles)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, doc)
}

// scope resolves the account and document ids, writing the error response
// itself when either is missing.
func scope(writer http.ResponseWriter, request *http.Request) (int64, int64, bool) {
	accountID, err := requestutil.AccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return 0, 0, false
	}

	documentID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return 0, 0, false
	}
	return accountID, documentID, true
}
