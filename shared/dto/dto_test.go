package dto_test

import (
	"cowork/shared/constant"
	"cowork/shared/dto"
	"cowork/shared/model"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "creator",
		ModifiedBy: "modifier",
	})

	assert.Equal(t, createdAt.Format(constant.DateFormat), metadata.CreatedAt)
	assert.Equal(t, modifiedAt.Format(constant.DateFormat), metadata.ModifiedAt)
	assert.Equal(t, "creator", metadata.CreatedBy)
	assert.Equal(t, "modifier", metadata.ModifiedBy)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		query          url.Values
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:     "all parameters",
			query:    url.Values{"page": {"2"}, "limit": {"20"}, "sort_by": {"start_time"}, "sort_dir": {"asc"}},
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "start_time", SortDir: dto.SortDirAsc},
		},
		{
			name:           "defaults applied",
			query:          url.Values{},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "invalid values ignored",
			query:    url.Values{"page": {"-1"}, "limit": {"abc"}, "sort_dir": {"sideways"}},
			expected: dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &http.Request{URL: &url.URL{RawQuery: tt.query.Encode()}}

			params := dto.QueryParams{}
			params.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "eq with table",
			filter:    dto.Filter{Field: "status", Value: "confirmed", Operator: dto.FilterOperatorEq, Table: "room_bookings"},
			wantWhere: "room_bookings.status = :status",
			wantArgs:  map[string]any{"status": "confirmed"},
		},
		{
			name:      "less with arg name",
			filter:    dto.Filter{ArgName: "range_end", Field: "start_time", Value: 10, Operator: dto.FilterOperatorLess},
			wantWhere: "start_time < :range_end",
			wantArgs:  map[string]any{"range_end": 10},
		},
		{
			name:      "greater",
			filter:    dto.Filter{Field: "end_time", Value: 5, Operator: dto.FilterOperatorGreater},
			wantWhere: "end_time > :end_time",
			wantArgs:  map[string]any{"end_time": 5},
		},
		{
			name:      "in slice",
			filter:    dto.Filter{Field: "status", Value: []string{"a", "b"}, Operator: dto.FilterOperatorIn},
			wantWhere: "status IN (:status_0, :status_1) ",
			wantArgs:  map[string]any{"status_0": "a", "status_1": "b"},
		},
		{
			name:      "is null",
			filter:    dto.Filter{Field: "guest_name", Operator: dto.FilterIsNull},
			wantWhere: "guest_name IS NULL",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_Nested(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "room_id", Value: "r1", Operator: dto.FilterOperatorEq},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{Field: "billing_target", Value: "external", Operator: dto.FilterOperatorEq},
					dto.Filter{Field: "guest_name", Operator: dto.FilterIsNotNull},
				},
			},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(room_id = :room_id AND (billing_target = :billing_target OR guest_name IS NOT NULL))", where)
	assert.Equal(t, map[string]any{"room_id": "r1", "billing_target": "external"}, args)
}

func TestQueryParams_RestrictSortBy(t *testing.T) {
	params := dto.QueryParams{SortBy: "start_time; DROP TABLE room_bookings", SortDir: dto.SortDirAsc}
	params.RestrictSortBy("created_at", "start_time", "created_at")

	assert.Equal(t, "created_at", params.SortBy)
	assert.Equal(t, dto.SortDirAsc, params.SortDir)

	params = dto.QueryParams{SortBy: "start_time"}
	params.RestrictSortBy("created_at", "start_time", "created_at")

	assert.Equal(t, "start_time", params.SortBy)
	assert.Equal(t, constant.DefaultValueSortDir, params.SortDir)
}

func TestMetadata_FromModel_ZeroModified(t *testing.T) {
	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), CreatedBy: "m1"})

	assert.NotEmpty(t, metadata.CreatedAt)
	assert.Empty(t, metadata.ModifiedAt)
}

func TestFilterGroup_DefaultsToAnd(t *testing.T) {
	group := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "room_id", Value: "r1", Operator: dto.FilterOperatorEq},
			dto.Filter{Field: "status", Value: "confirmed", Operator: dto.FilterOperatorEq},
			dto.Filter{Field: "ignored", Value: 1, Operator: "unknown"},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(room_id = :room_id AND status = :status)", where)
	assert.Len(t, args, 2)
}

func TestQueryParams_LimitCapped(t *testing.T) {
	req := &http.Request{URL: &url.URL{RawQuery: "limit=5000"}}

	params := dto.QueryParams{}
	params.FromRequest(req, true)

	assert.Equal(t, constant.MaxValueLimit, params.Limit)
	assert.Equal(t, constant.DefaultValuePage, params.Page)
}
