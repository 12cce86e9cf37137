package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"pms/config"
	"pms/infras/jwt"
	"pms/infras/otel"
	"pms/internal/domains/auth/service/mocks"
	"pms/permissions"
	"pms/shared/constant"
	"pms/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const routeTable = `{"endpoints":[
	{"path":"/v1/auth/login","method":"POST","skip":true},
	{"path":"/v1/rooms","method":"GET","permissions":[]},
	{"path":"/v1/rooms/{id}","method":"DELETE","permissions":["admin"]}
]}`

type authFixture struct {
	router  http.Handler
	authSvc *mocks.MockAuth
	tokens  jwt.JWT
}

func newAuthFixture(t *testing.T, tweak func(*config.Config)) authFixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Name = "pms"
	cfg.App.APIKey = "internal-key"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60

	if tweak != nil {
		tweak(cfg)
	}

	table, err := permissions.Parse([]byte(routeTable))
	require.NoError(t, err)

	authSvc := mocks.NewMockAuth(gomock.NewController(t))
	tokens := jwt.New(cfg)
	authRole := middleware.NewAuthRoleMiddleware(tokens, authSvc, otel.New(cfg), table, cfg)

	whoami := func(w http.ResponseWriter, r *http.Request) {
		role, _ := r.Context().Value(constant.ContextKeyUserRole).(string)
		_, _ = w.Write([]byte(role))
	}

	router := chi.NewRouter()
	router.Route("/v1", func(group chi.Router) {
		group.Use(authRole.APIKey, authRole.Auth, authRole.RBAC)
		group.Post("/auth/login", whoami)
		group.Get("/rooms", whoami)
		group.Delete("/rooms/{id}", whoami)
		group.Get("/unlisted", whoami)
	})

	return authFixture{router: router, authSvc: authSvc, tokens: tokens}
}

func (f authFixture) bearer(t *testing.T, role string) string {
	t.Helper()

	pair, err := f.tokens.GenerateTokenPair("user-1", "desk@hotel.test", role)
	require.NoError(t, err)

	return "Bearer " + pair.AccessToken
}

func (f authFixture) do(method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	return rec
}

func TestAuth_PublicRoute(t *testing.T) {
	f := newAuthFixture(t, nil)

	rec := f.do(http.MethodPost, "/v1/auth/login", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_BearerAndRoles(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		role       string
		revoked    bool
		revokedErr error
		wantStatus int
	}{
		{name: "any role on open route", method: http.MethodGet, path: "/v1/rooms", role: "staff", wantStatus: http.StatusOK},
		{name: "admin only route as admin", method: http.MethodDelete, path: "/v1/rooms/r1", role: "admin", wantStatus: http.StatusOK},
		{name: "admin only route as staff", method: http.MethodDelete, path: "/v1/rooms/r1", role: "staff", wantStatus: http.StatusForbidden},
		{name: "route missing from table", method: http.MethodGet, path: "/v1/unlisted", role: "admin", wantStatus: http.StatusForbidden},
		{name: "revoked token", method: http.MethodGet, path: "/v1/rooms", role: "staff", revoked: true, wantStatus: http.StatusUnauthorized},
		{name: "revocation store down", method: http.MethodGet, path: "/v1/rooms", role: "staff", revokedErr: errors.New("dial tcp"), wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture(t, nil)
			f.authSvc.EXPECT().IsRevoked(gomock.Any(), gomock.Any()).Return(tt.revoked, tt.revokedErr)

			rec := f.do(tt.method, tt.path, map[string]string{"Authorization": f.bearer(t, tt.role)})

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.role, rec.Body.String())
			}
		})
	}
}

func TestAuth_RejectsBadHeaders(t *testing.T) {
	f := newAuthFixture(t, nil)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing"},
		{name: "wrong scheme", header: "Basic abc"},
		{name: "garbage token", header: "Bearer not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(http.MethodGet, "/v1/rooms", map[string]string{"Authorization": tt.header})

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestAPIKey(t *testing.T) {
	f := newAuthFixture(t, nil)

	rec := f.do(http.MethodDelete, "/v1/rooms/r1", map[string]string{"X-API-Key": "internal-key"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, constant.RoleAdmin, rec.Body.String())

	rec = f.do(http.MethodDelete, "/v1/rooms/r1", map[string]string{"X-API-Key": "guess"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuth_DevelopmentBypass(t *testing.T) {
	f := newAuthFixture(t, func(cfg *config.Config) {
		cfg.Server.Env = config.EnvDevelopment
		cfg.App.AuthBypass = true
	})

	rec := f.do(http.MethodDelete, "/v1/rooms/r1", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, constant.RoleAdmin, rec.Body.String())
}
