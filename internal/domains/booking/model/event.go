package model

import "time"

const (
	EventCreated    = "booking.created"
	EventCheckedIn  = "booking.checked_in"
	EventCheckedOut = "booking.checked_out"
	EventCancelled  = "booking.cancelled"
	EventNoShow     = "booking.no_show"
)

var statusEvents = map[string]string{
	StatusCheckedIn:  EventCheckedIn,
	StatusCheckedOut: EventCheckedOut,
	StatusCancelled:  EventCancelled,
	StatusNoShow:     EventNoShow,
}

// Event is the payload published on the booking topic.
type Event struct {
	Type       string    `json:"type"`
	BookingID  string    `json:"booking_id"`
	RoomID     string    `json:"room_id"`
	GuestID    string    `json:"guest_id"`
	GuestName  string    `json:"guest_name"`
	CheckIn    string    `json:"check_in"`
	CheckOut   string    `json:"check_out"`
	Status     string    `json:"status"`
	Actor      string    `json:"actor"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventFor returns the event type emitted when a booking enters status.
func EventFor(status string) (string, bool) {
	event, ok := statusEvents[status]

	return event, ok
}
