// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package requestutil_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotink/hotink/internal/platform/apperr"
	"github.com/hotink/hotink/internal/platform/ctxutil"
	requestutil "github.com/hotink/hotink/internal/platform/request"
	"github.com/hotink/hotink/internal/platform/validate"
)

func withParam(request *http.Request, key, value string) *http.Request {
	routeContext := chi.NewRouteContext()
	routeContext.URLParams.Add(key, value)
	return request.WithContext(context.WithValue(request.Context(), chi.RouteCtxKey, routeContext))
}

/*
TestID verifies numeric parsing of path parameters.
*/
func TestID(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int64
		wantErr bool
	}{
		{"valid", "42", 42, false},
		{"zero", "0", 0, true},
		{"negative", "-3", 0, true},
		{"word", "abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := withParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", tt.raw)
			got, err := requestutil.ID(request, "id")
			if tt.wantErr {
				assert.True(t, apperr.IsNotFound(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeJSON_Invalid(t *testing.T) {
	request := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{"))
	var target map[string]any
	assert.ErrorIs(t, requestutil.DecodeJSON(request, &target), validate.ErrInvalidJSON)
}

func TestDecodeOptionalJSON(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		contentLength int64
		want          string
		wantErr       error
	}{
		{"empty", "", 0, "kept", nil},
		{"sized body", `{"status":""}`, 13, "", nil},
		{"chunked body", `{"status":""}`, -1, "", nil},
		{"chunked empty", "", -1, "kept", nil},
		{"broken", "{", -1, "kept", validate.ErrInvalidJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			request.ContentLength = tt.contentLength

			target := struct {
				Status string `json:"status"`
			}{Status: "kept"}
			err := requestutil.DecodeOptionalJSON(request, &target)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, target.Status)
		})
	}
}

func TestAccountID(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := requestutil.AccountID(request)
	assert.Error(t, err)

	request = request.WithContext(ctxutil.WithAccountID(request.Context(), 9))
	id, err := requestutil.AccountID(request)
	require.NoError(t, err)
	assert.Equal(t, int64(9), id)
}

func TestQueryInt64(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/?document_id=12&bad=x", nil)
	assert.Equal(t, int64(12), *requestutil.QueryInt64(request, "document_id"))
	assert.Nil(t, requestutil.QueryInt64(request, "bad"))
	assert.Nil(t, requestutil.QueryInt64(request, "missing"))
}
