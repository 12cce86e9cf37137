package dto_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"pms/shared/constant"
	"pms/shared/dto"
	"pms/shared/model"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "creator",
		ModifiedBy: "modifier",
	})

	assert.NotEmpty(t, metadata.CreatedAt)
	assert.NotEmpty(t, metadata.ModifiedAt)
	assert.Equal(t, "creator", metadata.CreatedBy)
	assert.Equal(t, "modifier", metadata.ModifiedBy)
}

func TestNewMetadata(t *testing.T) {
	metadata := dto.NewMetadata("user-1")

	assert.Equal(t, "user-1", metadata.CreatedBy)
	assert.Equal(t, "user-1", metadata.ModifiedBy)
	assert.Equal(t, metadata.CreatedAt, metadata.ModifiedAt)
}

func TestFormatDay(t *testing.T) {
	assert.Equal(t, "2025-01-10", dto.FormatDay(time.Date(2025, 1, 10, 23, 0, 0, 0, time.UTC)))
	assert.Empty(t, dto.FormatDay(time.Time{}))
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:     "all parameters",
			query:    "page=2&limit=20&sort_by=check_in&sort_dir=desc",
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "check_in", SortDir: dto.SortDirDesc},
		},
		{
			name:           "defaults applied",
			query:          "",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "invalid numbers and direction ignored",
			query:    "page=abc&limit=-3&sort_dir=sideways",
			expected: dto.QueryParams{},
		},
		{
			name:     "limit capped",
			query:    "limit=5000&sort_dir=asc",
			expected: dto.QueryParams{Limit: dto.MaxLimit, SortDir: dto.SortDirAsc},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/v1/bookings?"+tt.query, nil)

			var params dto.QueryParams
			params.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestQueryParams_ApplySort(t *testing.T) {
	columns := dto.SortColumns{
		"check_in":   "check_in",
		"guest_name": "LOWER(guest_name)",
	}

	params := dto.QueryParams{SortBy: "guest_name"}
	params.ApplySort(columns, "check_in", dto.SortDirAsc)
	assert.Equal(t, "LOWER(guest_name)", params.SortBy)
	assert.Equal(t, dto.SortDirAsc, params.SortDir)

	params = dto.QueryParams{SortBy: "password; DROP TABLE", SortDir: dto.SortDirDesc}
	params.ApplySort(columns, "check_in", dto.SortDirAsc)
	assert.Equal(t, "check_in", params.SortBy)
	assert.Equal(t, dto.SortDirDesc, params.SortDir)
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
			filter:    dto.Filter{Field: "status", Value: "confirmed", Operator: dto.FilterOperatorEq, Table: "bookings"},
			wantWhere: "bookings.status = :status",
			wantArgs:  map[string]any{"status": "confirmed"},
		},
		{
			name:      "like",
			filter:    dto.Filter{Field: "name", Value: "Ann", Operator: dto.FilterOperatorLike},
			wantWhere: "LOWER(CAST(name AS TEXT)) LIKE LOWER(:name) ESCAPE '!'",
			wantArgs:  map[string]any{"name": "%Ann%"},
		},
		{
			name:      "like escapes wildcards",
			filter:    dto.Filter{Field: "number", Value: "10_%", Operator: dto.FilterOperatorLike},
			wantWhere: "LOWER(CAST(number AS TEXT)) LIKE LOWER(:number) ESCAPE '!'",
			wantArgs:  map[string]any{"number": "%10!_!%%"},
		},
		{
			name:      "in scalar",
			filter:    dto.Filter{Field: "status", Value: "a", Operator: dto.FilterOperatorIn},
			wantWhere: "status IN (:status_0)",
			wantArgs:  map[string]any{"status_0": "a"},
		},
		{
			name:      "in empty slice",
			filter:    dto.Filter{Field: "status", Value: []string{}, Operator: dto.FilterOperatorIn},
			wantWhere: "1 = 0",
			wantArgs:  map[string]any{},
		},
		{
			name:      "unknown operator",
			filter:    dto.Filter{Field: "status", Value: "a", Operator: "between"},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
		{
			name:      "in slice",
			filter:    dto.Filter{Field: "status", Value: []string{"a", "b"}, Operator: dto.FilterOperatorIn},
			wantWhere: "status IN (:status_0, :status_1)",
			wantArgs:  map[string]any{"status_0": "a", "status_1": "b"},
		},
		{
			name:      "strict less with arg name",
			filter:    dto.Filter{ArgName: "to", Field: "check_in", Value: "2025-01-13", Operator: dto.FilterOperatorLess},
			wantWhere: "check_in < :to",
			wantArgs:  map[string]any{"to": "2025-01-13"},
		},
		{
			name:      "strict greater",
			filter:    dto.Filter{Field: "check_out", Value: "2025-01-10", Operator: dto.FilterOperatorGreater},
			wantWhere: "check_out > :check_out",
			wantArgs:  map[string]any{"check_out": "2025-01-10"},
		},
		{
			name:      "is null",
			filter:    dto.Filter{Field: "deleted_at", Operator: dto.FilterIsNull},
			wantWhere: "deleted_at IS NULL",
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

func TestFilterGroup_GetWhereClause(t *testing.T) {
	search := dto.FilterGroup{Operator: dto.FilterGroupOperatorOr}
	search.Add(
		dto.Filter{ArgName: "s1", Field: "guest_name", Value: "ann", Operator: dto.FilterOperatorLike},
		dto.Filter{ArgName: "s2", Field: "room_id", Value: "ann", Operator: dto.FilterOperatorLike},
	)

	group := dto.FilterGroup{}
	group.Add(
		dto.Filter{Field: "status", Value: "confirmed", Operator: dto.FilterOperatorEq},
		search,
		dto.FilterGroup{},
	)

	where, args := group.GetWhereClause()

	assert.Equal(t,
		"(status = :status AND (LOWER(CAST(guest_name AS TEXT)) LIKE LOWER(:s1) ESCAPE '!' OR LOWER(CAST(room_id AS TEXT)) LIKE LOWER(:s2) ESCAPE '!'))",
		where,
	)
	assert.Len(t, args, 3)

	empty := dto.FilterGroup{}
	where, args = empty.GetWhereClause()
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestOverlaps(t *testing.T) {
	where, args := dto.Overlaps("bookings", "check_in", "check_out", "2025-01-10", "2025-01-13").GetWhereClause()

	assert.Equal(t, "(bookings.check_in < :range_to AND bookings.check_out > :range_from)", where)
	assert.Equal(t, map[string]any{"range_to": "2025-01-13", "range_from": "2025-01-10"}, args)
}
