package events

import (
	store "github.com/furia-fc/team-sync/repos/store"
)

// EventRequest is the payload for creating an event.
type EventRequest struct {
	Type             string `json:"type" validate:"oneof=TRAINING MATCH BIRTHDAY CUSTOM"`
	Date             string `json:"date" validate:"required"`
	Title            string `json:"title" validate:"required"`
	Description      string `json:"description"`
	Location         string `json:"location"`
	IsRecurring      bool   `json:"isRecurring"`
	RecurringType    string `json:"recurringType" validate:"omitempty,oneof=weekly monthly"`
	RecurringEndDate string `json:"recurringEndDate"`
	RivalID          string `json:"rivalId"`
	RivalName        string `json:"rivalName"`
}

// EventUpdateRequest carries partial edits to a live event. Nil fields are
// left untouched.
type EventUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	Date        *string `json:"date"`
	RivalID     *string `json:"rivalId"`
	RivalName   *string `json:"rivalName"`
}

// VoteRequest is the payload for an attendance vote.
type VoteRequest struct {
	Status      string `json:"status" validate:"oneof=attending not-attending pending"`
	Comment     string `json:"comment"`
	WithCar     bool   `json:"withCar"`
	CanGiveRide bool   `json:"canGiveRide"`
}

// EventView is an event plus the full attendance picture, including the
// synthetic not-voted rows for roster members who never opened the poll.
type EventView struct {
	Event       store.Event        `json:"event"`
	Attendances []store.Attendance `json:"attendances"`
}
