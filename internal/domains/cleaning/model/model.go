package model

import (
	"time"

	"pms/shared/model"
)

const (
	TableName  = "cleaning_tasks"
	EntityName = "cleaning_task"

	FieldID               = "id"
	FieldRoomID           = "room_id"
	FieldRoomNumber       = "room_number"
	FieldStatus           = "status"
	FieldPriority         = "priority"
	FieldAssignedTo       = "assigned_to"
	FieldScheduledFor     = "scheduled_for"
	FieldEstimatedMinutes = "estimated_minutes"
	FieldStartedAt        = "started_at"
	FieldCompletedAt      = "completed_at"
	FieldVerifiedAt       = "verified_at"
	FieldCreatedAt        = "created_at"
)

const (
	StatusPending    = "pending"
	StatusScheduled  = "scheduled"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusVerified   = "verified"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// OpenStatuses are the statuses of tasks still waiting for work.
var OpenStatuses = []string{StatusPending, StatusScheduled, StatusInProgress}

var next = map[string]string{
	StatusPending:    StatusInProgress,
	StatusScheduled:  StatusInProgress,
	StatusInProgress: StatusCompleted,
	StatusCompleted:  StatusVerified,
}

type CleaningTask struct {
	ID               string     `db:"id"`
	RoomID           string     `db:"room_id"`
	RoomNumber       string     `db:"room_number"`
	RoomType         string     `db:"room_type"`
	Floor            int        `db:"floor"`
	Status           string     `db:"status"`
	Priority         string     `db:"priority"`
	AssignedTo       string     `db:"assigned_to"`
	Notes            string     `db:"notes"`
	ScheduledFor     *time.Time `db:"scheduled_for"`
	EstimatedMinutes int        `db:"estimated_minutes"`
	StartedAt        *time.Time `db:"started_at"`
	CompletedAt      *time.Time `db:"completed_at"`
	VerifiedAt       *time.Time `db:"verified_at"`
	model.Metadata
}

// Next returns the status that follows current, or false when the task is done.
func Next(current string) (string, bool) {
	status, ok := next[current]

	return status, ok
}

// StampField names the timestamp column recorded when a task enters status.
func StampField(status string) string {
	switch status {
	case StatusInProgress:
		return FieldStartedAt
	case StatusCompleted:
		return FieldCompletedAt
	case StatusVerified:
		return FieldVerifiedAt
	default:
		return ""
	}
}
