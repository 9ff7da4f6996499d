package response

import (
	"time"

	"room-booking/internal/domain/booking"
	"room-booking/internal/pkg/session"
	"room-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type SessionResponse struct {
	Name  string `json:"name"`
	Room  string `json:"room"`
	Month string `json:"month,omitempty"`
	Day   int    `json:"day,omitempty"`
}

func FromIdentity(id session.Identity) SessionResponse {
	return SessionResponse{
		Name:  id.Name,
		Room:  id.Room,
		Month: id.Month,
		Day:   id.Day,
	}
}

type MonthsResponse struct {
	Months []string `json:"months"`
}

type BookingResponse struct {
	ID        int64     `json:"id"`
	UserName  string    `json:"userName"`
	UserRoom  string    `json:"userRoom"`
	Month     string    `json:"month"`
	Day       int       `json:"day"`
	Start     string    `json:"start"`
	End       string    `json:"end"`
	Slot      string    `json:"slot"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromBooking(b *booking.Booking) *BookingResponse {
	return &BookingResponse{
		ID:        b.ID(),
		UserName:  b.Owner().Name(),
		UserRoom:  b.Owner().Room(),
		Month:     b.Month().String(),
		Day:       b.Day().Int(),
		Start:     b.Slot().Start().String(),
		End:       b.Slot().End().String(),
		Slot:      b.Slot().String(),
		CreatedAt: b.CreatedAt(),
	}
}

func FromBookingViews(views []*queries.BookingView) ([]*BookingResponse, error) {
	out := make([]*BookingResponse, 0, len(views))
	if len(views) == 0 {
		return out, nil
	}
	if err := copier.Copy(&out, views); err != nil {
		return nil, err
	}
	for _, r := range out {
		r.Slot = r.Start + "-" + r.End
	}
	return out, nil
}

type SlotResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type FreeSlotsResponse struct {
	Month    string          `json:"month"`
	Day      int             `json:"day"`
	Duration int             `json:"duration"`
	Slots    []*SlotResponse `json:"slots"`
}

func FromSlotViews(views []*queries.SlotView) ([]*SlotResponse, error) {
	out := make([]*SlotResponse, 0, len(views))
	if len(views) == 0 {
		return out, nil
	}
	if err := copier.Copy(&out, views); err != nil {
		return nil, err
	}
	return out, nil
}

type UserCountResponse struct {
	UserName string `json:"userName"`
	Count    int    `json:"count"`
}

func FromUserCountViews(views []*queries.UserCountView) ([]*UserCountResponse, error) {
	out := make([]*UserCountResponse, 0, len(views))
	if len(views) == 0 {
		return out, nil
	}
	if err := copier.Copy(&out, views); err != nil {
		return nil, err
	}
	return out, nil
}

type SupportResponse struct {
	Contact string `json:"contact"`
	Hours   string `json:"hours"`
}
