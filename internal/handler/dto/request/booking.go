package request

import (
	"room-booking/internal/domain/booking"
	"room-booking/internal/usecase/commands"
)

type IdentifyRequest struct {
	Name string `json:"name" binding:"required"`
	Room string `json:"room" binding:"required"`
}

type ChooseDateRequest struct {
	Month string `json:"month" binding:"required"`
	Day   int    `json:"day" binding:"required"`
	Room  string `json:"room" binding:"required"`
}

type FreeSlotsQuery struct {
	Duration int `form:"duration" binding:"required,oneof=1 2 3"`
}

type BookSlotRequest struct {
	Start string `json:"start" binding:"required,hhmm"`
	End   string `json:"end" binding:"required,hhmm"`
}

func (r BookSlotRequest) ToCommand(owner booking.Owner, month string, day int) commands.BookRangeRequest {
	return commands.BookRangeRequest{
		Owner: owner,
		Month: month,
		Day:   day,
		Start: r.Start,
		End:   r.End,
	}
}

// Range is "HH:MM-HH:MM"; its format is checked by the booking command.
type BookCustomRequest struct {
	Range string `json:"range" binding:"required"`
}

func (r BookCustomRequest) ToCommand(owner booking.Owner, month string, day int) commands.BookCustomRequest {
	return commands.BookCustomRequest{
		Owner: owner,
		Month: month,
		Day:   day,
		Range: r.Range,
	}
}

type TopUsersQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}
