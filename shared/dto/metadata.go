package dto

import (
	"time"

	"pms/shared/constant"
	"pms/shared/model"
	"pms/shared/timezone"
)

type Metadata struct {
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at"`
	CreatedBy  string `json:"created_by"`
	ModifiedBy string `json:"modified_by"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	m.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
	m.ModifiedAt = timezone.Format(model.ModifiedAt, constant.DateFormat)
	m.CreatedBy = model.CreatedBy
	m.ModifiedBy = model.ModifiedBy
}

// NewMetadata stamps both audit pairs with the same user and instant.
func NewMetadata(user string) model.Metadata {
	now := timezone.Now()

	return model.Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  user,
		ModifiedBy: user,
	}
}

// FormatDay renders a calendar date, or an empty string for the zero time.
func FormatDay(day time.Time) string {
	if day.IsZero() {
		return constant.Empty
	}

	return day.Format(constant.DayFormat)
}
