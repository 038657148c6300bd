// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hotink/hotink/internal/platform/middleware"
	requestutil "github.com/hotink/hotink/internal/platform/request"
	"github.com/hotink/hotink/internal/platform/respond"
	"github.com/hotink/hotink/internal/platform/sec"
)

// Handler implements the HTTP layer for account settings.
type Handler struct {
	accountService *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{accountService: service}
}

// RegisterRoutes mounts the endpoints on an account-scoped router.
//
// # Endpoints
//   - GET   /      : the account
//   - PATCH /      : rename or change the time zone (manager)
//   - GET   /staff : users with their roles
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.getAccount)
	router.With(middleware.RequireRole(sec.RoleManager)).Patch("/", handler.updateAccount)
	router.Get("/staff", handler.listStaff)
}

// GET /api/v1/accounts/{accountID}.
func (handler *Handler) getAccount(writer http.ResponseWriter, request *http.Request) {
	accountID, err := requestutil.AccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	account, err := handler.accountService.Get(request.Context(), accountID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, account)
}

/*
PATCH /api/v1/accounts/{accountID}.

Request:
  - Body: {"account": {"name": "...", "time_zone": "America/Toronto"}}

Response:
  - 200: Account
  - 400: VALIDATION_ERROR
  - 403: caller is not a manager
  - 409: CONFLICT when the name is taken
*/
func (handler *Handler) updateAccount(writer http.ResponseWriter, request *http.Request) {
	accountID, err := requestutil.AccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var body struct {
		Account UpdateInput `json:"account"`
	}
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	account, err := handler.accountService.Update(request.Context(), accountID, body.Account)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, account)
}

func (handler *Handler) listStaff(writer http.ResponseWriter, request *http.Request) {
	accountID, err := requestutil.AccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	staff, err := handler.accountService.Staff(request.Context(), accountID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, staff)
}
