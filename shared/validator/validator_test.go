package validator_test

import (
	"cowork/shared/failure"
	"cowork/shared/validator"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type bookingLikeRequest struct {
	RoomID        string `json:"room_id"        validate:"required"`
	StartTime     string `json:"start_time"     validate:"required,rfc3339"`
	BillingTarget string `json:"billing_target" validate:"billingtarget"`
	Email         string `json:"email"          validate:"omitempty,email"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		data    bookingLikeRequest
		wantMsg string
	}{
		{
			name: "valid",
			data: bookingLikeRequest{RoomID: "r1", StartTime: "2026-10-20T09:00:00Z", BillingTarget: "organization"},
		},
		{
			name: "empty billing target allowed",
			data: bookingLikeRequest{RoomID: "r1", StartTime: "2026-10-20T09:00:00+07:00"},
		},
		{
			name:    "missing room",
			data:    bookingLikeRequest{StartTime: "2026-10-20T09:00:00Z"},
			wantMsg: "RoomID is required",
		},
		{
			name:    "floating local time rejected",
			data:    bookingLikeRequest{RoomID: "r1", StartTime: "2026-10-20 09:00"},
			wantMsg: "StartTime must be an RFC3339 timestamp",
		},
		{
			name:    "unknown billing target",
			data:    bookingLikeRequest{RoomID: "r1", StartTime: "2026-10-20T09:00:00Z", BillingTarget: "corporate"},
			wantMsg: "BillingTarget must be one of personal organization external",
		},
		{
			name:    "invalid email",
			data:    bookingLikeRequest{RoomID: "r1", StartTime: "2026-10-20T09:00:00Z", Email: "nope"},
			wantMsg: "Email must be a valid email address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			assert.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidate_DecodesBody(t *testing.T) {
	var req bookingLikeRequest

	err := validator.Validate(strings.NewReader(`{"room_id":"r1","start_time":"2026-10-20T09:00:00Z"}`), &req)
	assert.NoError(t, err)
	assert.Equal(t, "r1", req.RoomID)

	err = validator.Validate(strings.NewReader(`{"room_id":`), &req)
	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("guest@example.com", "email"))
	assert.Error(t, validator.ValidateVar("", "required"))
	assert.NoError(t, validator.ValidateVar("", "empty"))
}
