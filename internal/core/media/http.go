// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hotink/hotink/internal/platform/apperr"
	requestutil "github.com/hotink/hotink/internal/platform/request"
	"github.com/hotink/hotink/internal/platform/respond"
	"github.com/hotink/hotink/pkg/pagination"
)

// multipartOverhead leaves room for the form fields next to the file.
const multipartOverhead = 1 << 20

// mediafilesPerPage fills a four-column picker grid.
const mediafilesPerPage = 24

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listMediafiles)
	router.Post("/", handler.uploadMediafile)
	router.Get("/{id}", handler.getMediafile)
	router.Get("/{id}/file", handler.downloadMediafile)
	router.Delete("/{id}", handler.deleteMediafile)
}

/*
GET /api/v1/accounts/{accountID}/mediafiles.

Request:
  - q: title or file name fragment
  - kind: file | image
  - document_id: hide files already attached to this document
*/
func (handler *Handler) listMediafiles(writer http.ResponseWriter, request *http.Request) {
	accountID, err := requestutil.AccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	page := pagination.FromQuery(request.URL.Query(), mediafilesPerPage)
	filter := Filter{
		Query:             request.URL.Query().Get("q"),
		Kind:              Kind(request.URL.Query().Get("kind")),
		ExcludeDocumentID: requestutil.QueryInt64(request, "document_id"),
	}

	mediafiles, total, err := handler.service.List(request.Context(), accountID, filter, page.PerPage, page.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, mediafiles, page.Meta(total))
}

func (handler *Handler) getMediafile(writer http.ResponseWriter, request *http.Request) {
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

	mediafile, err := handler.service.Get(request.Context(), accountID, id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, mediafile)
}

/*
POST /api/v1/accounts/{accountID}/mediafiles.

Request (multipart/form-data):
  - file: the upload
  - kind, title, description, link_alternate, date (YYYY-MM-DD or RFC 3339)
  - settings[thumb], settings[small], settings[medium], settings[large]: geometries

Response:
  - 201: Mediafile
  - 400: VALIDATION_ERROR
  - 503: SERVICE_UNAVAILABLE when no object store is configured
*/
func (handler *Handler) uploadMediafile(writer http.ResponseWriter, request *http.Request) {
	accountID, err := requestutil.AccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	request.Body = http.MaxBytesReader(writer, request.Body, MaxUploadBytes+multipartOverhead)
	if err := request.ParseMultipartForm(multipartOverhead); err != nil {
		respond.Error(writer, request, apperr.ValidationError("Expected a multipart form no larger than 20MB"))
		return
	}

	file, header, err := request.FormFile("file")
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Missing file", apperr.FieldError{Field: FieldFile, Message: "Required"}))
		return
	}
	defer file.Close()

	body, err := io.ReadAll(file)
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Could not read the upload"))
		return
	}

	input := UploadInput{
		Kind:          Kind(request.FormValue("kind")),
		Title:         request.FormValue("title"),
		Description:   request.FormValue("description"),
		LinkAlternate: request.FormValue("link_alternate"),
		FileName:      header.Filename,
		ContentType:   header.Header.Get("Content-Type"),
		Body:          body,
		Settings: Settings{
			Thumb:  request.FormValue("settings[thumb]"),
			Small:  request.FormValue("settings[small]"),
			Medium: request.FormValue("settings[medium]"),
			Large:  request.FormValue("settings[large]"),
		},
	}

	if raw := strings.TrimSpace(request.FormValue("date")); raw != "" {
		date, err := parseDate(raw)
		if err != nil {
			respond.Error(writer, request, apperr.ValidationError("Invalid date", apperr.FieldError{Field: "date", Message: "Use YYYY-MM-DD"}))
			return
		}
		input.Date = &date
	}

	mediafile, err := handler.service.Upload(request.Context(), accountID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, mediafile)
}

// downloadMediafile streams the bytes of one style (?style=thumb).
func (handler *Handler) downloadMediafile(writer http.ResponseWriter, request *http.Request) {
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

	body, contentType, err := handler.service.Open(request.Context(), accountID, id, request.URL.Query().Get("style"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	defer body.Close()

	if contentType != "" {
		writer.Header().Set("Content-Type", contentType)
	}
	writer.WriteHeader(http.StatusOK)
	_, _ = io.Copy(writer, body)
}

func (handler *Handler) deleteMediafile(writer http.ResponseWriter, request *http.Request) {
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

	if err := handler.service.Delete(request.Context(), accountID, id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func parseDate(raw string) (time.Time, error) {
	if date, err := time.Parse(time.DateOnly, raw); err == nil {
		return date, nil
	}
	return time.Parse(time.RFC3339, raw)
}
