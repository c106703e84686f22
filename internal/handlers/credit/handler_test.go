package credit_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"cowork/infras/otel/mocks"
	"cowork/internal/domains/ledger/model/dto"
	"cowork/internal/domains/ledger/service"
	serviceMocks "cowork/internal/domains/ledger/service/mocks"
	"cowork/internal/handlers/credit"
	"cowork/shared/constant"
)

func newRouter(t *testing.T, userID string) (http.Handler, *serviceMocks.MockLedger) {
	ctrl := gomock.NewController(t)
	svc := serviceMocks.NewMockLedger(ctrl)

	handler := credit.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if userID != constant.Empty {
				r = r.WithContext(context.WithValue(r.Context(), constant.ContextKeyUserID, userID))
			}

			next.ServeHTTP(w, r)
		})
	})
	router.Route("/v1", handler.Router)

	return router, svc
}

func TestHandler_GetMyCredits(t *testing.T) {
	t.Run("balance", func(t *testing.T) {
		router, svc := newRouter(t, "m1")

		svc.EXPECT().AvailablePersonal(gomock.Any(), "m1").Return(dto.PersonalBalanceResponse{
			MemberID:  "m1",
			Allocated: decimal.NewFromInt(10),
			Used:      decimal.NewFromInt(2),
			Available: decimal.NewFromInt(8),
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/credits/me", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"available_credits":"8"`)
	})

	t.Run("anonymous", func(t *testing.T) {
		router, _ := newRouter(t, "")

		req := httptest.NewRequest(http.MethodGet, "/v1/credits/me", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestHandler_GetOrganizationCredits(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		setupMock  func(svc *serviceMocks.MockLedger)
		wantStatus int
	}{
		{
			name:  "requested month",
			query: "?month=2026-09",
			setupMock: func(svc *serviceMocks.MockLedger) {
				svc.EXPECT().AvailableOrganization(gomock.Any(), "o1", gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, month time.Time) (dto.OrganizationBalanceResponse, error) {
						assert.Equal(t, time.September, month.Month())

						return dto.OrganizationBalanceResponse{OrganizationID: "o1"}, nil
					})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "malformed month",
			query:      "?month=september",
			setupMock:  func(_ *serviceMocks.MockLedger) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:  "outsider",
			query: "",
			setupMock: func(svc *serviceMocks.MockLedger) {
				svc.EXPECT().AvailableOrganization(gomock.Any(), "o1", gomock.Any()).Return(dto.OrganizationBalanceResponse{}, service.ErrOrganizationForbidden)
			},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t, "m1")
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodGet, "/v1/organizations/o1/credits"+tt.query, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
