package auth_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nikolayk812/tuffpuff/internal/auth"
	"github.com/nikolayk812/tuffpuff/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier map[string]domain.Identity

func (s stubVerifier) Verify(_ context.Context, token string) (domain.Identity, error) {
	identity, ok := s[token]
	if !ok {
		return domain.Identity{}, domain.ErrUnauthorized
	}
	return identity, nil
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	customer := domain.User{ID: uuid.New(), IdentityUID: "customer", Email: gofakeit.Email(), Role: domain.RoleUser}
	admin := domain.User{ID: uuid.New(), IdentityUID: "admin", Email: gofakeit.Email(), Role: domain.RoleAdmin}

	users := &memUsers{users: []domain.User{customer, admin}}
	verifier := stubVerifier{
		"customer": {Subject: "customer"},
		"admin":    {Subject: "admin"},
		"stranger": {Subject: "stranger"},
	}
	mw := auth.NewMiddleware(verifier, users, slog.New(slog.DiscardHandler))

	whoami := func(c *gin.Context) {
		user, ok := auth.CurrentUser(c)
		if !ok {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, user.ID.String())
	}

	router := gin.New()
	router.GET("/private", mw.RequireAuth(), whoami)
	router.GET("/admin", mw.RequireAuth(), mw.RequireAdmin(), whoami)
	router.GET("/optional", mw.OptionalAuth(), whoami)

	tests := []struct {
		name       string
		path       string
		token      string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "private without token",
			path:       "/private",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"success":false,"error":"Authentication required"}`,
		},
		{
			name:       "private with bad token",
			path:       "/private",
			token:      "bogus",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"success":false,"error":"Invalid or expired token"}`,
		},
		{
			name:       "private with unsynced user",
			path:       "/private",
			token:      "stranger",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"success":false,"error":"User does not exist in database. Please sync."}`,
		},
		{
			name:       "private with customer",
			path:       "/private",
			token:      "customer",
			wantStatus: http.StatusOK,
			wantBody:   customer.ID.String(),
		},
		{
			name:       "admin with customer",
			path:       "/admin",
			token:      "customer",
			wantStatus: http.StatusForbidden,
			wantBody:   `{"success":false,"error":"Admin access required"}`,
		},
		{
			name:       "admin with admin",
			path:       "/admin",
			token:      "admin",
			wantStatus: http.StatusOK,
			wantBody:   admin.ID.String(),
		},
		{
			name:       "optional without token",
			path:       "/optional",
			wantStatus: http.StatusOK,
			wantBody:   "anonymous",
		},
		{
			name:       "optional with bad token",
			path:       "/optional",
			token:      "bogus",
			wantStatus: http.StatusOK,
			wantBody:   "anonymous",
		},
		{
			name:       "optional with customer",
			path:       "/optional",
			token:      "customer",
			wantStatus: http.StatusOK,
			wantBody:   customer.ID.String(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if rec.Code == http.StatusOK {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			} else {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestRequireAuthLookupFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mw := auth.NewMiddleware(stubVerifier{"t": {Subject: "t"}}, &memUsers{findErr: errors.New("pool closed")}, slog.New(slog.DiscardHandler))

	router := gin.New()
	router.GET("/private", mw.RequireAuth(), func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer t")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Internal server error"}`, rec.Body.String())
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		cookie string
		want   string
	}{
		{name: "header", header: "Bearer abc", want: "abc"},
		{name: "header wins over cookie", header: "Bearer abc", cookie: "def", want: "abc"},
		{name: "cookie", cookie: "def", want: "def"},
		{name: "basic auth ignored", header: "Basic Zm9vOmJhcg==", want: ""},
		{name: "nothing", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, "/", nil)
			require.NoError(t, err)

			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "accessToken", Value: tt.cookie})
			}

			assert.Equal(t, tt.want, auth.BearerToken(req))
		})
	}
}
