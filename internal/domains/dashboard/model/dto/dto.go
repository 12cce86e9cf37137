package dto

import (
	bookingModel "pms/internal/domains/booking/model"
	bookingDto "pms/internal/domains/booking/model/dto"
	"pms/internal/domains/dashboard"
)

const (
	DefaultSeriesDays = 30
	MaxSeriesDays     = 90
)

type MetricsResponse struct {
	dashboard.Metrics
	Currency string `json:"currency"`
}

type UpcomingResponse struct {
	Bookings []bookingDto.BookingResponse `json:"bookings"`
}

func (r *UpcomingResponse) FromModels(models []bookingModel.Booking) {
	r.Bookings = make([]bookingDto.BookingResponse, len(models))

	for i, booking := range models {
		r.Bookings[i].FromModel(booking)
	}
}

type SummaryResponse struct {
	dashboard.Summary
	Currency string `json:"currency"`
}

type OccupancyRequest struct {
	Days int `json:"days" validate:"omitempty,min=1,max=90"`
}

func (o *OccupancyRequest) Normalize() {
	if o.Days == 0 {
		o.Days = DefaultSeriesDays
	}
}

type OccupancyResponse struct {
	Days   int               `json:"days"`
	Points []dashboard.Point `json:"points"`
}
