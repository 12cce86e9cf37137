package main

import (
	"bytes"
	"strings"
	"testing"

	"pms/internal/domains/availability"
	"pms/internal/domains/availability/model/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weekCalendar() dto.CalendarResponse {
	days := []string{"2025-03-03", "2025-03-04", "2025-03-05"}

	return dto.CalendarResponse{
		View:     availability.ViewWeek,
		Anchor:   "2025-03-03",
		Previous: "2025-02-24",
		Next:     "2025-03-10",
		Days:     days,
		Rows: []dto.RowResponse{
			{
				RoomNumber: "101",
				RoomType:   "standard",
				Cells: []dto.CellResponse{
					{Date: days[0], State: availability.CellCheckIn},
					{Date: days[1], State: availability.CellOccupied},
					{Date: days[2], State: availability.CellCheckOut},
				},
			},
			{
				RoomNumber: "202",
				RoomType:   "suite",
				Cells: []dto.CellResponse{
					{Date: days[0], State: availability.CellMaintenance},
					{Date: days[1], State: availability.CellMaintenance},
					{Date: days[2], State: "unknown"},
				},
			},
		},
	}
}

func TestRenderCalendar(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		header   []string
		row101   []string
		row202   []string
		legendOf string
	}{
		{
			name:     "wide terminal uses long codes",
			width:    120,
			header:   []string{"ROOM", "TYPE", "03-03", "03-04", "03-05"},
			row101:   []string{"101", "standard", "IN", "OCC", "OUT"},
			row202:   []string{"202", "suite", "MNT", "MNT", "?"},
			legendOf: "TRN turnover",
		},
		{
			name:     "narrow terminal uses single characters",
			width:    20,
			header:   []string{"ROOM", "TYPE", "03", "04", "05"},
			row101:   []string{"101", "standard", "[", "#", "]"},
			row202:   []string{"202", "suite", "M", "M", "?"},
			legendOf: "X turnover",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer

			require.NoError(t, renderCalendar(&out, weekCalendar(), tt.width))

			lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
			require.Len(t, lines, 7)

			assert.Equal(t, "week view from 2025-03-03 (previous 2025-02-24, next 2025-03-10)", lines[0])
			assert.Equal(t, tt.header, strings.Fields(lines[2]))
			assert.Equal(t, tt.row101, strings.Fields(lines[3]))
			assert.Equal(t, tt.row202, strings.Fields(lines[4]))
			assert.Contains(t, lines[6], tt.legendOf)
		})
	}
}
