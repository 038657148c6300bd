// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package document

import (
	"net/http"

	requestutil "github.com/hotink/hotink/internal/platform/request"
	"github.com/hotink/hotink/internal/platform/respond"
)

// # Authorship Endpoints

func (handler *Handler) listAuthorships(writer http.ResponseWriter, request *http.Request) {
	accountID, documentID, ok := scope(writer, request)
	if !ok {
		return
	}

	authorships, err := handler.service.ListAuthorships(request.Context(), accountID, documentID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, authorships)
}

func (handler *Handler) addAuthorship(writer http.ResponseWriter, request *http.Request) {
	accountID, documentID, ok := scope(writer, request)
	if !ok {
		return
	}

	var input AuthorshipInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	authorship, err := handler.service.AddAuthorship(request.Context(), accountID, documentID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, authorship)
}

func (handler *Handler) updateAuthorship(writer http.ResponseWriter, request *http.Request) {
	accountID, documentID, ok := scope(writer, request)
	if !ok {
		return
	}

	authorshipID, err := requestutil.ID(request, "authorshipID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input struct {
		StaffPosition *string `json:"staff_position"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	authorship, err := handler.service.UpdateAuthorship(request.Context(), accountID, documentID, authorshipID, input.StaffPosition)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, authorship)
}

func (handler *Handler) removeAuthorship(writer http.ResponseWriter, request *http.Request) {
	accountID, documentID, ok := scope(writer, request)
	if !ok {
		return
	}

	authorshipID, err := requestutil.ID(request, "authorshipID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.RemoveAuthorship(request.Context(), accountID, documentID, authorshipID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
