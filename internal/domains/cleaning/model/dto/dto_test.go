package dto_test

import (
	"testing"
	"time"

	"pms/internal/domains/cleaning/model"
	"pms/internal/domains/cleaning/model/dto"
	roomModel "pms/internal/domains/room/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var room = roomModel.Room{ID: "room-1", Number: "101", Type: roomModel.TypeDeluxe, Floor: 1, Status: roomModel.StatusCleaning}

func TestParseSchedule(t *testing.T) {
	scheduled, err := dto.ParseSchedule("")
	require.NoError(t, err)
	assert.Nil(t, scheduled)

	scheduled, err = dto.ParseSchedule("2025-03-01T09:30:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 1, 7, 30, 0, 0, time.UTC), *scheduled)

	_, err = dto.ParseSchedule("2025-03-01")
	assert.Error(t, err)
}

func TestCreateCleaningTaskRequest_ToModel(t *testing.T) {
	scheduled := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		req          dto.CreateCleaningTaskRequest
		scheduled    *time.Time
		wantStatus   string
		wantPriority string
	}{
		{
			name:         "defaults",
			req:          dto.CreateCleaningTaskRequest{RoomID: "room-1"},
			wantStatus:   model.StatusPending,
			wantPriority: model.PriorityMedium,
		},
		{
			name:         "schedule makes it scheduled",
			req:          dto.CreateCleaningTaskRequest{RoomID: "room-1", Priority: model.PriorityUrgent},
			scheduled:    &scheduled,
			wantStatus:   model.StatusScheduled,
			wantPriority: model.PriorityUrgent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := tt.req.ToModel("user-1", room, tt.scheduled)

			assert.NotEmpty(t, task.ID)
			assert.Equal(t, "101", task.RoomNumber)
			assert.Equal(t, roomModel.TypeDeluxe, task.RoomType)
			assert.Equal(t, 1, task.Floor)
			assert.Equal(t, tt.wantStatus, task.Status)
			assert.Equal(t, tt.wantPriority, task.Priority)
			assert.Equal(t, "user-1", task.CreatedBy)
		})
	}
}

func TestListCleaningTasksRequest_ToFilter(t *testing.T) {
	where, args := dto.ListCleaningTasksRequest{Status: "all", Priority: model.PriorityHigh}.ToFilter().GetWhereClause()

	assert.Equal(t, "(cleaning_tasks.priority = :priority)", where)
	assert.Equal(t, model.PriorityHigh, args["priority"])
}

func TestOpenTaskFilter(t *testing.T) {
	where, args := dto.OpenTaskFilter("room-1").GetWhereClause()

	assert.Equal(t, "(cleaning_tasks.room_id = :room_id AND cleaning_tasks.status IN (:open_status_0, :open_status_1, :open_status_2))", where)
	assert.Equal(t, model.StatusInProgress, args["open_status_2"])
}

func TestEligibleRoomsResponse_FromModels(t *testing.T) {
	var res dto.EligibleRoomsResponse

	res.FromModels([]roomModel.Room{
		{ID: "a", Status: roomModel.StatusAvailable},
		{ID: "b", Status: roomModel.StatusMaintenance},
		{ID: "c", Status: roomModel.StatusCleaning},
	})

	require.Len(t, res.Rooms, 2)
	assert.Equal(t, "c", res.Rooms[1].ID)
}
