package model

import (
	"time"

	"pms/shared/model"
)

const (
	TableName  = "staff"
	EntityName = "staff"

	FieldID         = "id"
	FieldName       = "name"
	FieldEmail      = "email"
	FieldRole       = "role"
	FieldDepartment = "department"
	FieldStatus     = "status"
	FieldAvatar     = "avatar"
	FieldStartDate  = "start_date"
	FieldCreatedAt  = "created_at"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Staff struct {
	ID         string    `db:"id"`
	Name       string    `db:"name"`
	Email      string    `db:"email"`
	Phone      string    `db:"phone"`
	Role       string    `db:"role"`
	Department string    `db:"department"`
	Status     string    `db:"status"`
	Avatar     string    `db:"avatar"`
	StartDate  time.Time `db:"start_date"`
	model.Metadata
}
