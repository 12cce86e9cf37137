package dto

import (
	"time"

	"pms/internal/domains/cleaning/model"
	roomModel "pms/internal/domains/room/model"
	roomDto "pms/internal/domains/room/model/dto"
	"pms/shared"
	"pms/shared/constant"
	gDto "pms/shared/dto"

	"github.com/google/uuid"
)

var SortColumns = gDto.SortColumns{
	"room_number":   model.TableName + "." + model.FieldRoomNumber,
	"status":        model.TableName + "." + model.FieldStatus,
	"priority":      model.TableName + "." + model.FieldPriority,
	"scheduled_for": model.TableName + "." + model.FieldScheduledFor,
	"created_at":    model.TableName + "." + model.FieldCreatedAt,
}

const DefaultSort = "created_at"

// ParseSchedule reads an optional RFC 3339 timestamp.
func ParseSchedule(value string) (*time.Time, error) {
	if value == constant.Empty {
		return nil, nil // nolint:nilnil
	}

	scheduled, err := time.Parse(constant.DateFormat, value)
	if err != nil {
		return nil, err // nolint:wrapcheck
	}

	scheduled = scheduled.UTC()

	return &scheduled, nil
}

type CreateCleaningTaskRequest struct {
	RoomID           string `json:"room_id"           validate:"required"`
	Status           string `json:"status"            validate:"omitempty,oneof=pending scheduled"`
	Priority         string `json:"priority"          validate:"omitempty,oneof=low medium high urgent"`
	AssignedTo       string `json:"assigned_to"       validate:"omitempty,max=100"`
	Notes            string `json:"notes"             validate:"omitempty,max=500"`
	ScheduledFor     string `json:"scheduled_for"     validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	EstimatedMinutes int    `json:"estimated_minutes" validate:"gte=0,lte=1440"`
}

// ToModel copies the room details onto the task. A schedule makes a pending task scheduled.
func (c *CreateCleaningTaskRequest) ToModel(user string, room roomModel.Room, scheduledFor *time.Time) model.CleaningTask {
	status := c.Status
	if status == constant.Empty {
		status = model.StatusPending
	}

	if status == model.StatusPending && scheduledFor != nil {
		status = model.StatusScheduled
	}

	priority := c.Priority
	if priority == constant.Empty {
		priority = model.PriorityMedium
	}

	return model.CleaningTask{
		ID:               uuid.NewString(),
		RoomID:           room.ID,
		RoomNumber:       room.Number,
		RoomType:         room.Type,
		Floor:            room.Floor,
		Status:           status,
		Priority:         priority,
		AssignedTo:       c.AssignedTo,
		Notes:            c.Notes,
		ScheduledFor:     scheduledFor,
		EstimatedMinutes: c.EstimatedMinutes,
		Metadata:         gDto.NewMetadata(user),
	}
}

type UpdateCleaningTaskRequest struct {
	Priority         string  `db:"priority"          json:"priority"          validate:"omitempty,oneof=low medium high urgent"`
	AssignedTo       *string `db:"assigned_to"       json:"assigned_to"       validate:"omitempty,max=100"`
	Notes            *string `db:"notes"             json:"notes"             validate:"omitempty,max=500"`
	ScheduledFor     string  `db:"-"                 json:"scheduled_for"     validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	EstimatedMinutes *int    `db:"estimated_minutes" json:"estimated_minutes" validate:"omitempty,gte=0,lte=1440"`
}

func (u *UpdateCleaningTaskRequest) IsEmpty() bool {
	return u.Priority == constant.Empty && u.AssignedTo == nil && u.Notes == nil &&
		u.ScheduledFor == constant.Empty && u.EstimatedMinutes == nil
}

type ListCleaningTasksRequest struct {
	Search   string
	Status   string
	Priority string
	RoomID   string
}

func (l ListCleaningTasksRequest) ToFilter() gDto.FilterGroup {
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if search, ok := shared.SearchGroup(l.Search, model.TableName, model.FieldRoomNumber, model.FieldAssignedTo); ok {
		filter.Add(search)
	}

	if status, ok := shared.FilterUnlessAll(model.FieldStatus, l.Status, model.TableName); ok {
		filter.Add(status)
	}

	if priority, ok := shared.FilterUnlessAll(model.FieldPriority, l.Priority, model.TableName); ok {
		filter.Add(priority)
	}

	if l.RoomID != constant.Empty {
		filter.Add(gDto.Filter{Field: model.FieldRoomID, Value: l.RoomID, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	return filter
}

// OpenTaskFilter matches unfinished tasks of a room.
func OpenTaskFilter(roomID string) gDto.FilterGroup {
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
	filter.Add(
		gDto.Filter{Field: model.FieldRoomID, Value: roomID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		gDto.Filter{ArgName: "open_status", Field: model.FieldStatus, Value: model.OpenStatuses, Operator: gDto.FilterOperatorIn, Table: model.TableName},
	)

	return filter
}

func formatTime(value *time.Time) string {
	if value == nil {
		return constant.Empty
	}

	return value.UTC().Format(constant.DateFormat)
}

type CleaningTaskResponse struct {
	ID               string `json:"id"`
	RoomID           string `json:"room_id"`
	RoomNumber       string `json:"room_number"`
	RoomType         string `json:"room_type"`
	Floor            int    `json:"floor"`
	Status           string `json:"status"`
	Priority         string `json:"priority"`
	AssignedTo       string `json:"assigned_to"`
	Notes            string `json:"notes"`
	ScheduledFor     string `json:"scheduled_for,omitempty"`
	EstimatedMinutes int    `json:"estimated_minutes"`
	StartedAt        string `json:"started_at,omitempty"`
	CompletedAt      string `json:"completed_at,omitempty"`
	VerifiedAt       string `json:"verified_at,omitempty"`
	gDto.Metadata
}

func (r *CleaningTaskResponse) FromModel(model model.CleaningTask) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.RoomNumber = model.RoomNumber
	r.RoomType = model.RoomType
	r.Floor = model.Floor
	r.Status = model.Status
	r.Priority = model.Priority
	r.AssignedTo = model.AssignedTo
	r.Notes = model.Notes
	r.ScheduledFor = formatTime(model.ScheduledFor)
	r.EstimatedMinutes = model.EstimatedMinutes
	r.StartedAt = formatTime(model.StartedAt)
	r.CompletedAt = formatTime(model.CompletedAt)
	r.VerifiedAt = formatTime(model.VerifiedAt)
	r.Metadata.FromModel(model.Metadata)
}

type GetCleaningTasksResponse struct {
	Tasks     []CleaningTaskResponse `json:"tasks"`
	TotalPage int                    `json:"total_page"`
	TotalData int                    `json:"total_data"`
}

func (r *GetCleaningTasksResponse) FromModels(models []model.CleaningTask, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Tasks = make([]CleaningTaskResponse, len(models))
	for i, mod := range models {
		r.Tasks[i].FromModel(mod)
	}
}

type EligibleRoomsResponse struct {
	Rooms []roomDto.RoomResponse `json:"rooms"`
}

func (r *EligibleRoomsResponse) FromModels(models []roomModel.Room) {
	r.Rooms = []roomDto.RoomResponse{}

	for _, room := range models {
		if !room.Cleanable() {
			continue
		}

		var res roomDto.RoomResponse
		res.FromModel(room)
		r.Rooms = append(r.Rooms, res)
	}
}
