//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"room-booking/internal/domain/booking"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/handler/httperr"
	"room-booking/internal/usecase/queries"
	commontest "room-booking/tests/common/httptest"

	"go.uber.org/mock/gomock"
)

func bookingViews() []*queries.BookingView {
	created := time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC)
	return []*queries.BookingView{
		{ID: 3, UserName: "Ann", UserRoom: "Room 12", Month: november, Day: 5, Start: "07:00", End: "09:00", CreatedAt: created},
		{ID: 1, UserName: "Ann", UserRoom: "Room 12", Month: "Декабрь 2025", Day: 2, Start: "09:00", End: "11:00", CreatedAt: created},
	}
}

func (s *handlerSuite) TestMyBookings() {
	s.Run("success: keeps the order the query returns", func() {
		s.mockQueries.EXPECT().MyBookings(gomock.Any(), s.owner()).Return(bookingViews(), nil)

		rec := s.as(s.identified(), http.MethodGet, "/api/bookings/mine", nil)

		var response []*resdto.BookingResponse
		commontest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal(int64(3), response[0].ID)
		s.Equal("07:00-09:00", response[0].Slot)
		s.Equal(int64(1), response[1].ID)
		s.Equal(time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC), response[1].CreatedAt.UTC())
	})

	s.Run("success: no bookings is an empty array", func() {
		s.mockQueries.EXPECT().MyBookings(gomock.Any(), s.owner()).Return(nil, nil)

		rec := s.as(s.identified(), http.MethodGet, "/api/bookings/mine", nil)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("error: 400 with identify step when anonymous", func() {
		rec := s.anonymous(http.MethodGet, "/api/bookings/mine", nil)
		commontest.AssertStepResponse(s.T(), rec, http.StatusBadRequest, httperr.StepIdentify)
	})
}

func (s *handlerSuite) TestCancel() {
	s.Run("success: 204 for the owner", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), int64(5), s.owner()).Return(nil)

		rec := s.as(s.identified(), http.MethodDelete, "/api/bookings/5", nil)

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 on a malformed id", func() {
		for _, id := range []string{"abc", "0", "-3"} {
			rec := s.as(s.identified(), http.MethodDelete, "/api/bookings/"+id, nil)
			commontest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
		}
	})

	s.Run("error: 500 on store failure", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), int64(5), s.owner()).Return(errors.New("boom"))

		rec := s.as(s.identified(), http.MethodDelete, "/api/bookings/5", nil)

		commontest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})

	s.Run("error: 400 with identify step when anonymous", func() {
		rec := s.anonymous(http.MethodDelete, "/api/bookings/5", nil)
		commontest.AssertStepResponse(s.T(), rec, http.StatusBadRequest, httperr.StepIdentify)
	})
}

func (s *handlerSuite) TestSchedule() {
	s.Run("success: months need no session", func() {
		s.mockQueries.EXPECT().Months(gomock.Any()).Return(booking.DefaultMonths)

		rec := s.anonymous(http.MethodGet, "/api/schedule", nil)

		var response resdto.MonthsResponse
		commontest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Months, len(booking.DefaultMonths))
	})

	s.Run("success: day schedule decodes the month label", func() {
		s.mockQueries.EXPECT().DaySchedule(gomock.Any(), november, 5).Return(bookingViews()[:1], nil)

		rec := s.anonymous(http.MethodGet, "/api/schedule/"+url.PathEscape(november)+"/5", nil)

		var response []*resdto.BookingResponse
		commontest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal("Ann", response[0].UserName)
	})

	s.Run("error: 400 with date step on a bad day", func() {
		rec := s.anonymous(http.MethodGet, "/api/schedule/"+url.PathEscape(november)+"/first", nil)
		commontest.AssertStepResponse(s.T(), rec, http.StatusBadRequest, httperr.StepDate)
	})

	s.Run("success: month outside the calendar is an empty day", func() {
		s.mockQueries.EXPECT().DaySchedule(gomock.Any(), "Smarch", 5).Return([]*queries.BookingView{}, nil)

		rec := s.anonymous(http.MethodGet, "/api/schedule/Smarch/5", nil)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})
}

func (s *handlerSuite) TestTopUsers() {
	s.Run("success: default limit", func() {
		s.mockQueries.EXPECT().TopUsers(gomock.Any(), 0).Return([]*queries.UserCountView{
			{UserName: "A", Count: 5},
			{UserName: "B", Count: 3},
		}, nil)

		rec := s.anonymous(http.MethodGet, "/api/top", nil)

		var response []*resdto.UserCountResponse
		commontest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal([]*resdto.UserCountResponse{{UserName: "A", Count: 5}, {UserName: "B", Count: 3}}, response)
	})

	s.Run("success: explicit limit", func() {
		s.mockQueries.EXPECT().TopUsers(gomock.Any(), 2).Return(nil, nil)

		rec := s.anonymous(http.MethodGet, "/api/top?limit=2", nil)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("error: 400 on a negative limit", func() {
		rec := s.anonymous(http.MethodGet, "/api/top?limit=-1", nil)
		commontest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid limit")
	})
}

func (s *handlerSuite) TestSupport() {
	rec := s.anonymous(http.MethodGet, "/api/support", nil)

	var response resdto.SupportResponse
	commontest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Equal(resdto.SupportResponse{Contact: s.cfg.Support.Contact, Hours: s.cfg.Support.Hours}, response)
}
