package booking_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"cowork/infras/otel/mocks"
	"cowork/internal/domains/booking/model"
	"cowork/internal/domains/booking/model/dto"
	serviceMocks "cowork/internal/domains/booking/service/mocks"
	"cowork/internal/handlers/booking"
	"cowork/shared/constant"
	gDto "cowork/shared/dto"
	"cowork/shared/failure"
)

func newRouter(t *testing.T, userID string) (http.Handler, *serviceMocks.MockBooking) {
	ctrl := gomock.NewController(t)
	svc := serviceMocks.NewMockBooking(ctrl)

	handler := booking.New(svc, mocks.NewOtel())

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

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Kind string `json:"kind"`
	}

	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Kind
}

func TestHandler_CreateBooking(t *testing.T) {
	validBody := `{"room_id":"r1","start_time":"2026-10-20T09:00:00Z","end_time":"2026-10-20T10:00:00Z","billing_target":"personal"}`

	tests := []struct {
		name       string
		body       string
		setupMock  func(svc *serviceMocks.MockBooking)
		wantStatus int
		wantKind   string
	}{
		{
			name: "created",
			body: validBody,
			setupMock: func(svc *serviceMocks.MockBooking) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error) {
						assert.Equal(t, "r1", req.RoomID)

						return dto.BookingResponse{ID: "b1", RoomID: "r1", CreditsCharged: decimal.NewFromInt(2)}, nil
					})
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "malformed timestamp",
			body:       `{"room_id":"r1","start_time":"2026-10-20 09:00","end_time":"2026-10-20T10:00:00Z"}`,
			setupMock:  func(_ *serviceMocks.MockBooking) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown billing target",
			body:       `{"room_id":"r1","start_time":"2026-10-20T09:00:00Z","end_time":"2026-10-20T10:00:00Z","billing_target":"corporate"}`,
			setupMock:  func(_ *serviceMocks.MockBooking) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "room unavailable",
			body: validBody,
			setupMock: func(svc *serviceMocks.MockBooking) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.BookingResponse{}, model.ErrRoomUnavailable)
			},
			wantStatus: http.StatusConflict,
			wantKind:   model.KindRoomUnavailable,
		},
		{
			name: "internal error is opaque",
			body: validBody,
			setupMock: func(svc *serviceMocks.MockBooking) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.BookingResponse{}, errors.New("pq: connection reset"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t, "m1")
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodPost, "/v1/bookings/", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantKind != "" {
				assert.Equal(t, tt.wantKind, decodeError(t, rec))
			}

			if tt.wantStatus == http.StatusInternalServerError {
				assert.NotContains(t, rec.Body.String(), "pq:")
			}
		})
	}
}

func TestHandler_GetMyBookings(t *testing.T) {
	t.Run("filters by caller", func(t *testing.T) {
		router, svc := newRouter(t, "m1")

		svc.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error) {
				assert.Equal(t, constant.DefaultValueSortBy, params.SortBy)

				where, args := filter.GetWhereClause()
				assert.Contains(t, where, "room_bookings.requester_id = :requester_id")
				assert.Equal(t, "m1", args[model.FieldRequesterID])
				assert.Equal(t, model.StatusConfirmed, args[model.FieldStatus])

				return dto.GetBookingsResponse{}, nil
			})

		req := httptest.NewRequest(http.MethodGet, "/v1/bookings/mybookings?status=confirmed&sort_by=password", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing identity", func(t *testing.T) {
		router, _ := newRouter(t, "")

		req := httptest.NewRequest(http.MethodGet, "/v1/bookings/mybookings", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestHandler_CancelBooking(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   string
	}{
		{name: "cancelled", wantStatus: http.StatusOK},
		{name: "not owner", err: model.ErrNotOwner, wantStatus: http.StatusForbidden, wantKind: model.KindNotOwner},
		{name: "window expired", err: model.ErrCancellationWindowExpired, wantStatus: http.StatusConflict, wantKind: model.KindCancellationWindowExpired},
		{name: "not found", err: model.ErrBookingNotFound, wantStatus: http.StatusNotFound, wantKind: failure.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t, "m1")

			svc.EXPECT().Cancel(gomock.Any(), "b1").Return(dto.CancelBookingResponse{BookingID: "b1", RefundedCredits: decimal.NewFromInt(2)}, tt.err)

			req := httptest.NewRequest(http.MethodPost, "/v1/bookings/b1/cancel", nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantKind != "" {
				assert.Equal(t, tt.wantKind, decodeError(t, rec))
			}
		})
	}
}

func TestHandler_GetGuestReport(t *testing.T) {
	report := dto.GuestReportResponse{
		Month: "2026-10",
		Rows:  []dto.GuestReportRow{{BookingID: "b1", GuestName: "Dana"}},
	}

	t.Run("json", func(t *testing.T) {
		router, svc := newRouter(t, "s1")

		svc.EXPECT().GuestReport(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, month time.Time) (dto.GuestReportResponse, error) {
				assert.Equal(t, time.October, month.Month())

				return report, nil
			})

		req := httptest.NewRequest(http.MethodGet, "/v1/bookings/external?month=2026-10", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"month":"2026-10"`)
	})

	t.Run("csv", func(t *testing.T) {
		router, svc := newRouter(t, "s1")

		svc.EXPECT().GuestReport(gomock.Any(), gomock.Any()).Return(report, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/bookings/external?month=2026-10&format=csv", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, constant.ContentTypeCSV, rec.Header().Get(constant.RequestHeaderContentType))
		assert.Contains(t, rec.Body.String(), "b1")
	})

	t.Run("malformed month", func(t *testing.T) {
		router, _ := newRouter(t, "s1")

		req := httptest.NewRequest(http.MethodGet, "/v1/bookings/external?month=10-2026", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_ExportGuestReport(t *testing.T) {
	router, svc := newRouter(t, "s1")

	svc.EXPECT().ExportGuestReport(gomock.Any(), gomock.Any()).Return(dto.ExportResponse{URL: "https://bucket/guests.csv", Rows: 3}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/bookings/external/export?month=2026-10", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "https://bucket/guests.csv")
}
