// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/hotink/hotink/internal/platform/ctxutil"
	"github.com/hotink/hotink/internal/platform/middleware"
	"github.com/hotink/hotink/internal/platform/sec"
)

type stubVerifier struct {
	claims *sec.AuthClaims
}

func (verifier stubVerifier) VerifyToken(token string) (*sec.AuthClaims, error) {
	if token != "good" {
		return nil, errors.New("bad token")
	}
	return verifier.claims, nil
}

type stubConfig struct {
	dev     bool
	origins []string
}

func (c stubConfig) IsDevelopment() bool      { return c.dev }
func (c stubConfig) AllowedOrigins() []string { return c.origins }

func scopedRouter(claims *sec.AuthClaims) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Authenticate(stubVerifier{claims: claims}))
	router.Route("/accounts/{accountID}", func(r chi.Router) {
		r.Use(middleware.RequireAccount)
		r.With(middleware.RequireRole(sec.RoleManager)).Get("/invites", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		r.Get("/docs", func(w http.ResponseWriter, r *http.Request) {
			id, _ := ctxutil.GetAccountID(r.Context())
			if id == 3 {
				w.WriteHeader(http.StatusOK)
				return
			}
			w.WriteHeader(http.StatusTeapot)
		})
	})
	return router
}

/*
TestRequireAccount verifies tenant scoping and role gates.
*/
func TestRequireAccount(t *testing.T) {
	staff := &sec.AuthClaims{UserID: "u1", AccountID: 3, Role: string(sec.RoleStaff)}

	tests := []struct {
		name   string
		path   string
		header string
		want   int
	}{
		{"anonymous", "/accounts/3/docs", "", http.StatusUnauthorized},
		{"bad token", "/accounts/3/docs", "Bearer nope", http.StatusUnauthorized},
		{"own account", "/accounts/3/docs", "Bearer good", http.StatusOK},
		{"other account", "/accounts/4/docs", "Bearer good", http.StatusNotFound},
		{"garbage id", "/accounts/x/docs", "Bearer good", http.StatusNotFound},
		{"role too low", "/accounts/3/invites", "Bearer good", http.StatusForbidden},
	}

	router := scopedRouter(staff)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				request.Header.Set("Authorization", tt.header)
			}
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)
			assert.Equal(t, tt.want, recorder.Code)
		})
	}
}

func TestCORS(t *testing.T) {
	handler := middleware.CORS(stubConfig{origins: []string{"https://desk.hotink.net"}})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}),
	)

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("Origin", "https://desk.hotink.net")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.Equal(t, "https://desk.hotink.net", recorder.Header().Get("Access-Control-Allow-Origin"))

	request.Header.Set("Origin", "https://evil.example")
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
}

func TestRealIP(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("X-Forwarded-For", "10.0.0.1, 10.0.0.2")
	assert.Equal(t, "10.0.0.1", middleware.RealIP(request))
}
