// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package activation

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

// RegisterRoutes mounts the manager-facing invitation list. The caller is
// expected to scope the router to an account and require the manager role.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listPending)
	router.Post("/", handler.invite)
	router.Delete("/{userID}", handler.revoke)
}

// RegisterPublicRoutes mounts the token-addressed activation form.
func (handler *Handler) RegisterPublicRoutes(router chi.Router) {
	router.Get("/{token}", handler.edit)
	router.Put("/{token}", handler.update)
}

// noticeStatus maps an outcome to the status its notice is sent with.
func noticeStatus(outcome Outcome) int {
	switch outcome {
	case OutcomeInvalidEmail:
		return http.StatusBadRequest
	case OutcomeInvited:
		return http.StatusCreated
	default:
		return http.StatusOK
	}
}

func (handler *Handler) listPending(writer http.ResponseWriter, request *http.Request) {
	accountID, err := requestutil.AccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	pending, err := handler.service.Pending(request.Context(), accountID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, pending)
}

/*
POST /api/v1/accounts/{accountID}/user-activations.

Request:
  - Body: {"user_activation": {"email": "...", "name": "..."}}

Response:
  - 201: invitation emailed
  - 200: existing user granted staff, or the invitation failed
  - 400: not an email address
*/
func (handler *Handler) invite(writer http.ResponseWriter, request *http.Request) {
	accountID, err := requestutil.AccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var body struct {
		UserActivation InviteInput `json:"user_activation"`
	}
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Invite(request.Context(), accountID, body.UserActivation)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Notice(writer, noticeStatus(result.Outcome), result.Notice, result)
}

func (handler *Handler) revoke(writer http.ResponseWriter, request *http.Request) {
	accountID, err := requestutil.AccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Destroy(request.Context(), accountID, requestutil.Param(request, "userID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Notice(writer, noticeStatus(result.Outcome), result.Notice, result)
}

/*
GET /api/v1/user-activations/{token}.

Response:
  - 200: the pending user
  - 303: the user has no account; Location points at the account activation
  - 404: unknown or expired token
*/
func (handler *Handler) edit(writer http.ResponseWriter, request *http.Request) {
	result, err := handler.service.Edit(request.Context(), requestutil.Param(request, "token"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if result.Redirect != "" {
		http.Redirect(writer, request, result.Redirect, http.StatusSeeOther)
		return
	}
	respond.OK(writer, result.User)
}

/*
PUT /api/v1/user-activations/{token}.

Request:
  - Body: {"user": {"name": "...", "password": "...", "password_confirmation": "..."}}

Response:
  - 200: welcome notice with the activated user
  - 400: VALIDATION_ERROR
  - 404: unknown or expired token
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var body struct {
		User UpdateInput `json:"user"`
	}
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Update(request.Context(), requestutil.Param(request, "token"), body.User)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if result.Redirect != "" {
		http.Redirect(writer, request, result.Redirect, http.StatusSeeOther)
		return
	}
	respond.Notice(writer, http.StatusOK, result.Notice, result.User)
}
