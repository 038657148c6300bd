// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package document

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotink/hotink/internal/platform/ctxutil"
)

func newTestRouter(f *fixture, accountID int64) http.Handler {
	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(ctxutil.WithAccountID(r.Context(), accountID)))
		})
	})
	router.Route("/documents", NewHandler(f.service).RegisterRoutes)
	return router
}

/*
TestHandler_SetCategories verifies the JSON object contract of the toggle endpoint.
*/
func TestHandler_SetCategories(t *testing.T) {
	f := newFixture(t)
	doc := f.createDocument(t, 1)
	router := newTestRouter(f, 1)
	path := "/documents/" + strconv.FormatInt(doc.ID, 10) + "/categories"

	tests := []struct {
		name string
		body string
		want int
	}{
		{"object", `{"5":"0","7":1}`, http.StatusOK},
		{"array", `[5,7]`, http.StatusBadRequest},
		{"string", `"5"`, http.StatusBadRequest},
		{"broken", `{`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPut, path, strings.NewReader(tt.body)))
			assert.Equal(t, tt.want, recorder.Code)
		})
	}
}

func TestHandler_PublishDefaultsToPublished(t *testing.T) {
	f := newFixture(t)
	doc := f.createDocument(t, 1)
	router := newTestRouter(f, 1)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/documents/"+strconv.FormatInt(doc.ID, 10)+"/publish", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data Document `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.True(t, body.Data.IsPublished())
}

func TestHandler_PublishChunkedBodyUnpublishes(t *testing.T) {
	f := newFixture(t)
	doc := f.createDocument(t, 1)
	router := newTestRouter(f, 1)
	path := "/documents/" + strconv.FormatInt(doc.ID, 10) + "/publish"

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, path, nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{"status":""}`))
	request.ContentLength = -1
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data Document `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.False(t, body.Data.IsPublished())
	assert.NotNil(t, body.Data.PublishedAt)
}

func TestHandler_OtherAccountNotFound(t *testing.T) {
	f := newFixture(t)
	doc := f.createDocument(t, 1)
	router := newTestRouter(f, 2)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/documents/"+strconv.FormatInt(doc.ID, 10), nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
