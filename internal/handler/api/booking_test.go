//go:build unit

package api_test

import (
	"errors"
	"net/http"

	"room-booking/internal/domain/booking"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/handler/httperr"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"
	"room-booking/tests/common/builder"
	commontest "room-booking/tests/common/httptest"
	"room-booking/tests/common/sessiontest"

	"go.uber.org/mock/gomock"
)

func (s *handlerSuite) TestMonths() {
	s.Run("success: lists calendar months", func() {
		s.mockQueries.EXPECT().Months(gomock.Any()).Return(booking.DefaultMonths)

		rec := s.as(s.identified(), http.MethodGet, "/api/months", nil)

		var response resdto.MonthsResponse
		commontest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(booking.DefaultMonths, response.Months)
	})

	s.Run("error: 400 with identify step when anonymous", func() {
		rec := s.anonymous(http.MethodGet, "/api/months", nil)
		commontest.AssertStepResponse(s.T(), rec, http.StatusBadRequest, httperr.StepIdentify)
	})
}

func (s *handlerSuite) TestChooseDate() {
	url := "/api/booking/date"
	reqBody := map[string]any{"month": november, "day": 3, "room": "7"}

	s.Run("success: stores the date and the re-entered room", func() {
		moved, err := s.owner().WithRoom("Room 7")
		s.Require().NoError(err)
		s.mockCommands.EXPECT().ChooseDate(s.owner(), november, 3, "7").
			Return(commands.DateChoice{Owner: moved, Month: booking.Month(november), Day: booking.Day(3)}, nil)

		rec := s.as(s.identified(), http.MethodPost, url, reqBody)

		var response resdto.SessionResponse
		commontest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(resdto.SessionResponse{Name: "Ann", Room: "Room 7", Month: november, Day: 3}, response)

		id := sessiontest.Decode(s.T(), s.sessions, commontest.ExtractCookie(rec, cookieName))
		s.True(id.HasDate())
		s.Equal("Room 7", id.Room)
	})

	s.Run("success: keeps the session id", func() {
		current := s.identified()
		current.ID = [16]byte{1, 2, 3}
		s.mockCommands.EXPECT().ChooseDate(s.owner(), november, 3, "7").
			Return(commands.DateChoice{Owner: s.owner(), Month: booking.Month(november), Day: booking.Day(3)}, nil)

		rec := s.as(current, http.MethodPost, url, reqBody)

		commontest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		id := sessiontest.Decode(s.T(), s.sessions, commontest.ExtractCookie(rec, cookieName))
		s.Equal(current.ID, id.ID)
	})

	s.Run("error: 400 with date step on unknown month", func() {
		s.mockCommands.EXPECT().ChooseDate(s.owner(), "Smarch", 3, "7").
			Return(commands.DateChoice{}, errs.Mark(booking.ErrInvalidMonth, commands.ErrInvalidDate))

		rec := s.as(s.identified(), http.MethodPost, url, map[string]any{"month": "Smarch", "day": 3, "room": "7"})

		commontest.AssertStepResponse(s.T(), rec, http.StatusBadRequest, httperr.StepDate)
	})

	s.Run("error: 400 with date step on missing room", func() {
		rec := s.as(s.identified(), http.MethodPost, url, map[string]any{"month": november, "day": 3})
		commontest.AssertStepResponse(s.T(), rec, http.StatusBadRequest, httperr.StepDate)
	})

	s.Run("error: 400 with identify step when anonymous", func() {
		rec := s.anonymous(http.MethodPost, url, reqBody)
		commontest.AssertStepResponse(s.T(), rec, http.StatusBadRequest, httperr.StepIdentify)
	})
}

func (s *handlerSuite) TestFreeSlots() {
	s.Run("success: returns free templates for the session date", func() {
		s.mockQueries.EXPECT().FreeSlots(gomock.Any(), november, 3, 2).Return([]*queries.SlotView{
			{Start: "07:00", End: "09:00"},
			{Start: "11:00", End: "13:00"},
		}, nil)

		rec := s.as(s.dated(), http.MethodGet, "/api/booking/slots?duration=2", nil)

		var response resdto.FreeSlotsResponse
		commontest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(november, response.Month)
		s.Equal(3, response.Day)
		s.Equal(2, response.Duration)
		s.Require().Len(response.Slots, 2)
		s.Equal(resdto.SlotResponse{Start: "11:00", End: "13:00"}, *response.Slots[1])
	})

	s.Run("success: a fully booked day yields an empty list", func() {
		s.mockQueries.EXPECT().FreeSlots(gomock.Any(), november, 3, 3).Return(nil, nil)

		rec := s.as(s.dated(), http.MethodGet, "/api/booking/slots?duration=3", nil)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"month":"Ноябрь 2025","day":3,"duration":3,"slots":[]}`, rec.Body.String())
	})

	s.Run("error: 400 with slot step on invalid duration", func() {
		for _, q := range []string{"", "?duration=4", "?duration=0", "?duration=two"} {
			rec := s.as(s.dated(), http.MethodGet, "/api/booking/slots"+q, nil)
			commontest.AssertStepResponse(s.T(), rec, http.StatusBadRequest, httperr.StepSlot)
		}
	})

	s.Run("error: 400 with date step before a date is chosen", func() {
		rec := s.as(s.identified(), http.MethodGet, "/api/booking/slots?duration=1", nil)
		commontest.AssertStepResponse(s.T(), rec, http.StatusBadRequest, httperr.StepDate)
	})

	s.Run("error: 400 with identify step when anonymous", func() {
		rec := s.anonymous(http.MethodGet, "/api/booking/slots?duration=1", nil)
		commontest.AssertStepResponse(s.T(), rec, http.StatusBadRequest, httperr.StepIdentify)
	})
}

func (s *handlerSuite) TestBookSlot() {
	url := "/api/booking/slot"
	reqBody := map[string]any{"start": "09:00", "end": "11:00"}
	want := commands.BookRangeRequest{Owner: s.owner(), Month: november, Day: 3, Start: "09:00", End: "11:00"}

	s.Run("success: 201 with the created booking", func() {
		created := builder.NewBookingBuilder().WithID(42).WithDate(november, 3).MustBuildDomain()
		s.mockCommands.EXPECT().BookSlot(gomock.Any(), want).Return(&commands.BookingResult{Booking: created}, nil)

		rec := s.as(s.dated(), http.MethodPost, url, reqBody)

		var response resdto.BookingResponse
		commontest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(int64(42), response.ID)
		s.Equal("09:00-11:00", response.Slot)
		s.Equal("Room 12", response.UserRoom)
	})

	s.Run("error: 409 with slot step when taken", func() {
		s.mockCommands.EXPECT().BookSlot(gomock.Any(), want).
			Return(nil, errs.Mark(booking.ErrSlotTaken, commands.ErrSlotTaken))

		rec := s.as(s.dated(), http.MethodPost, url, reqBody)

		commontest.AssertStepResponse(s.T(), rec, http.StatusConflict, httperr.StepSlot)
	})

	s.Run("error: 422 with slot step outside the window", func() {
		late := commands.BookRangeRequest{Owner: s.owner(), Month: november, Day: 3, Start: "22:00", End: "23:30"}
		s.mockCommands.EXPECT().BookSlot(gomock.Any(), late).
			Return(nil, errs.Mark(booking.ErrOutsideWindow, commands.ErrRangeNotAllowed))

		rec := s.as(s.dated(), http.MethodPost, url, map[string]any{"start": "22:00", "end": "23:30"})

		commontest.AssertStepResponse(s.T(), rec, http.StatusUnprocessableEntity, httperr.StepSlot)
	})

	s.Run("error: 400 with slot step on malformed times", func() {
		for _, body := range []map[string]any{
			{"start": "9am", "end": "11:00"},
			{"start": "09:00", "end": "25:00"},
			{"start": "09:00"},
		} {
			rec := s.as(s.dated(), http.MethodPost, url, body)
			commontest.AssertStepResponse(s.T(), rec, http.StatusBadRequest, httperr.StepSlot)
		}
	})

	s.Run("error: 400 with date step before a date is chosen", func() {
		rec := s.as(s.identified(), http.MethodPost, url, reqBody)
		commontest.AssertStepResponse(s.T(), rec, http.StatusBadRequest, httperr.StepDate)
	})
}

func (s *handlerSuite) TestBookCustom() {
	url := "/api/booking/custom"

	s.Run("success: 201 with the created booking", func() {
		created := builder.NewBookingBuilder().WithID(7).WithRange("12:00", "15:00").MustBuildDomain()
		s.mockCommands.EXPECT().BookCustomRange(gomock.Any(), commands.BookCustomRequest{
			Owner: s.owner(), Month: november, Day: 3, Range: "12:00-15:00",
		}).Return(&commands.BookingResult{Booking: created}, nil)

		rec := s.as(s.dated(), http.MethodPost, url, map[string]any{"range": "12:00-15:00"})

		var response resdto.BookingResponse
		commontest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("12:00-15:00", response.Slot)
	})

	s.Run("error: 400 with slot step on malformed range", func() {
		s.mockCommands.EXPECT().BookCustomRange(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(booking.ErrInvalidClockTime, commands.ErrMalformedRange))

		rec := s.as(s.dated(), http.MethodPost, url, map[string]any{"range": "noon till three"})

		commontest.AssertStepResponse(s.T(), rec, http.StatusBadRequest, httperr.StepSlot)
	})

	s.Run("error: 400 with slot step on empty range", func() {
		rec := s.as(s.dated(), http.MethodPost, url, map[string]any{"range": ""})
		commontest.AssertStepResponse(s.T(), rec, http.StatusBadRequest, httperr.StepSlot)
	})

	s.Run("error: 500 on store failure", func() {
		s.mockCommands.EXPECT().BookCustomRange(gomock.Any(), gomock.Any()).
			Return(nil, errs.Wrap(errors.New("connection reset"), "reserve booking"))

		rec := s.as(s.dated(), http.MethodPost, url, map[string]any{"range": "12:00-15:00"})

		commontest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
