package model

import (
	"time"

	"pms/shared/constant"
	"pms/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID        = "id"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldName      = "name"
	FieldRole      = "role"
	FieldActive    = "active"
	FieldLastLogin = "last_login"
	FieldCreatedAt = "created_at"
)

type User struct {
	ID        string     `db:"id"`
	Email     string     `db:"email"`
	Password  string     `db:"password"`
	Name      string     `db:"name"`
	Role      string     `db:"role"`
	Active    bool       `db:"active"`
	LastLogin *time.Time `db:"last_login"`
	model.Metadata
}

// ValidRole reports whether role is one of the roles known to the permission table.
func ValidRole(role string) bool {
	switch role {
	case constant.RoleAdmin, constant.RoleManager, constant.RoleStaff:
		return true
	default:
		return false
	}
}
