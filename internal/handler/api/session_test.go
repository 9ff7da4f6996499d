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
	commontest "room-booking/tests/common/httptest"
	"room-booking/tests/common/sessiontest"
	"room-booking/tests/common/testutil"
)

func (s *handlerSuite) TestIdentify() {
	url := "/api/session"
	reqBody := map[string]any{"name": "Ann", "room": "12"}

	s.Run("success: issues a cookie with name and room only", func() {
		s.mockCommands.EXPECT().Identify("Ann", "12").Return(s.owner(), nil)

		rec := s.anonymous(http.MethodPost, url, reqBody)

		var response resdto.SessionResponse
		commontest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Ann", response.Name)
		s.Equal("Room 12", response.Room)
		s.Empty(response.Month)

		id := sessiontest.Decode(s.T(), s.sessions, commontest.ExtractCookie(rec, cookieName))
		s.True(id.IsIdentified())
		s.False(id.HasDate())
	})

	s.Run("success: re-identifying drops a chosen date", func() {
		s.mockCommands.EXPECT().Identify("Ann", "12").Return(s.owner(), nil)

		rec := s.as(s.dated(), http.MethodPost, url, reqBody)

		commontest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		id := sessiontest.Decode(s.T(), s.sessions, commontest.ExtractCookie(rec, cookieName))
		s.Empty(id.Month)
		s.Zero(id.Day)
	})

	s.Run("error: 400 with identify step on missing fields", func() {
		for _, mutate := range []func(map[string]any){
			testutil.Field("name", nil),
			testutil.Field("room", nil),
			testutil.Field("name", ""),
		} {
			rec := s.anonymous(http.MethodPost, url, testutil.BodyMap(s.T(), reqBody, mutate))
			commontest.AssertStepResponse(s.T(), rec, http.StatusBadRequest, httperr.StepIdentify)
		}
	})

	s.Run("error: 400 with identify step on blank values", func() {
		s.mockCommands.EXPECT().Identify("  ", "12").
			Return(booking.Owner{}, errs.Mark(booking.ErrEmptyName, commands.ErrIdentityRequired))

		rec := s.anonymous(http.MethodPost, url, map[string]any{"name": "  ", "room": "12"})

		commontest.AssertStepResponse(s.T(), rec, http.StatusBadRequest, httperr.StepIdentify)
		s.Nil(commontest.ExtractCookie(rec, cookieName))
	})

	s.Run("error: 500 on unexpected failure", func() {
		s.mockCommands.EXPECT().Identify("Ann", "12").Return(booking.Owner{}, errors.New("boom"))

		rec := s.anonymous(http.MethodPost, url, reqBody)

		commontest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *handlerSuite) TestCurrentSession() {
	s.Run("success: returns the identity", func() {
		rec := s.as(s.dated(), http.MethodGet, "/api/session", nil)

		var response resdto.SessionResponse
		commontest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(resdto.SessionResponse{Name: "Ann", Room: "Room 12", Month: november, Day: 3}, response)
	})

	s.Run("error: 400 with identify step without a cookie", func() {
		rec := s.anonymous(http.MethodGet, "/api/session", nil)
		commontest.AssertStepResponse(s.T(), rec, http.StatusBadRequest, httperr.StepIdentify)
	})

	s.Run("error: a forged cookie is ignored and cleared", func() {
		rec := commontest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/session", nil,
			commontest.WithCookie(&http.Cookie{Name: cookieName, Value: "not-a-token"}))

		commontest.AssertStepResponse(s.T(), rec, http.StatusBadRequest, httperr.StepIdentify)
		commontest.AssertCookieCleared(s.T(), rec, cookieName)
	})
}

func (s *handlerSuite) TestLogout() {
	rec := s.as(s.identified(), http.MethodDelete, "/api/session", nil)

	s.Equal(http.StatusNoContent, rec.Code)
	commontest.AssertCookieCleared(s.T(), rec, cookieName)
}
