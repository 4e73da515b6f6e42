package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"resort/config"
	"resort/infras/jwt"
	jwtMocks "resort/infras/jwt/mocks"
	"resort/infras/otel/mocks"
	"resort/permissions"
	"resort/shared/constant"
	"resort/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var testPermissions = &permissions.PermissionData{
	Endpoints: []permissions.Permission{
		{Path: "/v1/hotels", Method: http.MethodGet, Skip: true},
		{Path: "/v1/hotels", Method: http.MethodPost, Permissions: []string{"superadmin", "admin"}},
		{Path: "/v1/auth/me", Method: http.MethodGet},
	},
}

type whoami struct {
	user string
	role string
}

func newRouter(t *testing.T, validator func(m *jwtMocks.MockJWT)) (*chi.Mux, *whoami) {
	t.Helper()

	ctrl := gomock.NewController(t)
	jwtService := jwtMocks.NewMockJWT(ctrl)
	if validator != nil {
		validator(jwtService)
	}

	cfg := &config.Config{}
	cfg.App.APIKey = "internal-key"

	auth := middleware.NewAuthRoleMiddleware(jwtService, mocks.NewOtel(), testPermissions, cfg)
	seen := &whoami{}

	handler := func(w http.ResponseWriter, r *http.Request) {
		seen.user, _ = r.Context().Value(constant.ContextKeyUserID).(string)
		seen.role, _ = r.Context().Value(constant.ContextKeyUserRole).(string)
		w.WriteHeader(http.StatusNoContent)
	}

	router := chi.NewRouter()
	router.Group(func(r chi.Router) {
		r.Use(auth.APIKey, auth.Auth, auth.RBAC)
		r.Route("/v1", func(r chi.Router) {
			r.Get("/hotels", handler)
			r.Post("/hotels", handler)
			r.Get("/auth/me", handler)
		})
	})

	return router, seen
}

func serve(router http.Handler, method, path string, headers map[string]string) int {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec.Code
}

func TestAuth_PublicRoute(t *testing.T) {
	router, seen := newRouter(t, func(m *jwtMocks.MockJWT) {
		m.EXPECT().ValidateToken(gomock.Any(), "guest-token", jwt.AccessToken).
			Return(&jwt.Claims{UserID: "g1", Email: "guest@resort.test", Role: "guest"}, nil)
		m.EXPECT().ValidateToken(gomock.Any(), "stale", jwt.AccessToken).Return(nil, jwt.ErrExpiredToken)
	})

	assert.Equal(t, http.StatusNoContent, serve(router, http.MethodGet, "/v1/hotels", nil))
	assert.Empty(t, seen.user)

	assert.Equal(t, http.StatusNoContent, serve(router, http.MethodGet, "/v1/hotels", map[string]string{"Authorization": "Bearer guest-token"}))
	assert.Equal(t, "g1", seen.user)

	assert.Equal(t, http.StatusNoContent, serve(router, http.MethodGet, "/v1/hotels", map[string]string{"Authorization": "Bearer stale"}))
}

func TestAuth_ProtectedRoute(t *testing.T) {
	router, seen := newRouter(t, func(m *jwtMocks.MockJWT) {
		m.EXPECT().ValidateToken(gomock.Any(), "admin-token", jwt.AccessToken).
			Return(&jwt.Claims{UserID: "a1", Email: "admin@resort.test", Role: "admin"}, nil)
		m.EXPECT().ValidateToken(gomock.Any(), "guest-token", jwt.AccessToken).
			Return(&jwt.Claims{UserID: "g1", Email: "guest@resort.test", Role: "guest"}, nil).Times(2)
		m.EXPECT().ValidateToken(gomock.Any(), "expired", jwt.AccessToken).Return(nil, jwt.ErrExpiredToken)
	})

	assert.Equal(t, http.StatusUnauthorized, serve(router, http.MethodPost, "/v1/hotels", nil))
	assert.Equal(t, http.StatusUnauthorized, serve(router, http.MethodPost, "/v1/hotels", map[string]string{"Authorization": "Token abc"}))
	assert.Equal(t, http.StatusUnauthorized, serve(router, http.MethodPost, "/v1/hotels", map[string]string{"Authorization": "Bearer expired"}))

	assert.Equal(t, http.StatusForbidden, serve(router, http.MethodPost, "/v1/hotels", map[string]string{"Authorization": "Bearer guest-token"}))

	assert.Equal(t, http.StatusNoContent, serve(router, http.MethodPost, "/v1/hotels", map[string]string{"Authorization": "Bearer admin-token"}))
	assert.Equal(t, "admin", seen.role)

	assert.Equal(t, http.StatusNoContent, serve(router, http.MethodGet, "/v1/auth/me", map[string]string{"Authorization": "Bearer guest-token"}))
	assert.Equal(t, "g1", seen.user)
}

func TestAuth_APIKey(t *testing.T) {
	router, _ := newRouter(t, nil)

	assert.Equal(t, http.StatusNoContent, serve(router, http.MethodPost, "/v1/hotels", map[string]string{"X-API-Key": "internal-key"}))
	assert.Equal(t, http.StatusForbidden, serve(router, http.MethodPost, "/v1/hotels", map[string]string{"X-API-Key": "guessed"}))
}
