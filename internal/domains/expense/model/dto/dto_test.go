package dto_test

import (
	"net/http"
	"testing"
	"time"

	"pms/internal/domains/expense/model/dto"
	"pms/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriod_Bounds(t *testing.T) {
	tests := []struct {
		name     string
		period   dto.Period
		wantFrom time.Time
		wantTo   time.Time
		wantErr  bool
	}{
		{name: "open", period: dto.Period{}},
		{
			name:     "closed",
			period:   dto.Period{From: "2025-03-01", To: "2025-03-31"},
			wantFrom: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			wantTo:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		},
		{name: "reversed", period: dto.Period{From: "2025-03-31", To: "2025-03-01"}, wantErr: true},
		{name: "malformed", period: dto.Period{From: "03/01/2025"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to, err := tt.period.Bounds()
			if tt.wantErr {
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantFrom, from)
			assert.Equal(t, tt.wantTo, to)
		})
	}
}

func TestListExpensesRequest_ToFilter(t *testing.T) {
	filter, err := dto.ListExpensesRequest{
		Category: "supplies",
		Period:   dto.Period{From: "2025-03-01", To: "2025-03-31"},
	}.ToFilter()
	require.NoError(t, err)

	where, args := filter.GetWhereClause()

	assert.Equal(t, "(expenses.category = :category AND expenses.date >= :date_from AND expenses.date <= :date_to)", where)
	assert.Equal(t, "supplies", args["category"])
}

func TestPeriodFilter_Open(t *testing.T) {
	filter, err := dto.PeriodFilter(dto.Period{})
	require.NoError(t, err)

	where, _ := filter.GetWhereClause()
	assert.Empty(t, where)
}
