package middleware_test

import (
	"cowork/config"
	"cowork/infras/jwt"
	jwtMocks "cowork/infras/jwt/mocks"
	"cowork/infras/otel/mocks"
	"cowork/permissions"
	"cowork/shared/constant"
	"cowork/transport/http/middleware"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const table = `{"endpoints": [
	{"path": "/health", "method": "GET", "skip": true},
	{"path": "/v1/bookings/", "method": "GET", "permissions": ["staff", "admin"]},
	{"path": "/v1/bookings/mybookings", "method": "GET", "permissions": ["member", "staff"]}
]}`

func newRouter(t *testing.T, apiKey string) (http.Handler, *jwtMocks.MockJWT) {
	ctrl := gomock.NewController(t)
	jwtService := jwtMocks.NewMockJWT(ctrl)

	data, err := permissions.Load([]byte(table))
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.App.APIKey = apiKey

	authRole := middleware.NewAuthRoleMiddleware(jwtService, mocks.NewOtel(), data, cfg)

	echoUser := func(w http.ResponseWriter, r *http.Request) {
		userID, _ := r.Context().Value(constant.ContextKeyUserID).(string)
		_, _ = w.Write([]byte(userID))
	}

	router := chi.NewRouter()
	router.Use(authRole.APIKey, authRole.Auth, authRole.RBAC)
	router.Get("/health", echoUser)
	router.Route("/v1", func(r chi.Router) {
		r.Route("/bookings", func(r chi.Router) {
			r.Get("/", echoUser)
			r.Get("/mybookings", echoUser)
		})
	})

	return router, jwtService
}

func TestAuthRole(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		headers   map[string]string
		setupMock func(j *jwtMocks.MockJWT)
		wantCode  int
		wantBody  string
	}{
		{
			name:      "skipped route needs no token",
			path:      "/health",
			setupMock: func(_ *jwtMocks.MockJWT) {},
			wantCode:  http.StatusOK,
		},
		{
			name:      "missing token",
			path:      "/v1/bookings/mybookings",
			setupMock: func(_ *jwtMocks.MockJWT) {},
			wantCode:  http.StatusUnauthorized,
		},
		{
			name:    "expired token",
			path:    "/v1/bookings/mybookings",
			headers: map[string]string{"Authorization": "Bearer stale"},
			setupMock: func(j *jwtMocks.MockJWT) {
				j.EXPECT().ValidateToken(gomock.Any(), "stale", jwt.AccessToken).Return(nil, jwt.ErrExpiredToken)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:    "claims without user",
			path:    "/v1/bookings/mybookings",
			headers: map[string]string{"Authorization": "Bearer anon"},
			setupMock: func(j *jwtMocks.MockJWT) {
				j.EXPECT().ValidateToken(gomock.Any(), "anon", jwt.AccessToken).Return(&jwt.Claims{Role: constant.RoleMember}, nil)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:    "member reaches own bookings",
			path:    "/v1/bookings/mybookings",
			headers: map[string]string{"Authorization": "Bearer good"},
			setupMock: func(j *jwtMocks.MockJWT) {
				j.EXPECT().ValidateToken(gomock.Any(), "good", jwt.AccessToken).Return(&jwt.Claims{UserID: "m1", Role: constant.RoleMember}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: "m1",
		},
		{
			name:    "member blocked from staff listing",
			path:    "/v1/bookings/",
			headers: map[string]string{"Authorization": "Bearer good"},
			setupMock: func(j *jwtMocks.MockJWT) {
				j.EXPECT().ValidateToken(gomock.Any(), "good", jwt.AccessToken).Return(&jwt.Claims{UserID: "m1", Role: constant.RoleMember}, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:    "staff reaches listing",
			path:    "/v1/bookings/",
			headers: map[string]string{"Authorization": "Bearer staff"},
			setupMock: func(j *jwtMocks.MockJWT) {
				j.EXPECT().ValidateToken(gomock.Any(), "staff", jwt.AccessToken).Return(&jwt.Claims{UserID: "s1", Role: constant.RoleStaff}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: "s1",
		},
		{
			name:      "valid api key bypasses user auth",
			path:      "/v1/bookings/",
			headers:   map[string]string{"X-API-Key": "internal-key"},
			setupMock: func(_ *jwtMocks.MockJWT) {},
			wantCode:  http.StatusOK,
		},
		{
			name:      "wrong api key",
			path:      "/v1/bookings/",
			headers:   map[string]string{"X-API-Key": "guess"},
			setupMock: func(_ *jwtMocks.MockJWT) {},
			wantCode:  http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, jwtService := newRouter(t, "internal-key")
			tt.setupMock(jwtService)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			for key, value := range tt.headers {
				req.Header.Set(key, value)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestAPIKey_EmptyConfiguredKeyRejects(t *testing.T) {
	router, _ := newRouter(t, "")

	req := httptest.NewRequest(http.MethodGet, "/v1/bookings/", nil)
	req.Header.Set("X-API-Key", "anything")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
