//go:build unit

package api_test

import (
	"net/http"
	"net/http/httptest"

	resdto "room-booking/internal/handler/dto/response"
	commontest "room-booking/tests/common/httptest"

	"go.uber.org/mock/gomock"
)

func (s *handlerSuite) adminRequest(method, path, user, pass string) *httptest.ResponseRecorder {
	if user == "" && pass == "" {
		return commontest.PerformRequest(s.T(), s.router, method, path, nil)
	}
	return commontest.PerformRequest(s.T(), s.router, method, path, nil, commontest.WithBasicAuth(user, pass))
}

func (s *handlerSuite) TestAdminBookings() {
	s.Run("success: lists every booking", func() {
		s.mockQueries.EXPECT().AllBookings(gomock.Any()).Return(bookingViews(), nil)

		rec := s.adminRequest(http.MethodGet, "/api/admin/bookings", adminUser, adminPass)

		var response []*resdto.BookingResponse
		commontest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("success: deletes any booking", func() {
		s.mockCommands.EXPECT().AdminDelete(gomock.Any(), int64(9)).Return(nil)

		rec := s.adminRequest(http.MethodDelete, "/api/admin/bookings/9", adminUser, adminPass)

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 401 with a challenge", func() {
		cases := []struct {
			name, user, pass string
		}{
			{name: "no credentials"},
			{name: "wrong password", user: adminUser, pass: "nope"},
			{name: "wrong user", user: "root", pass: adminPass},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := s.adminRequest(http.MethodGet, "/api/admin/bookings", tc.user, tc.pass)
				commontest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Admin credentials required")
				commontest.AssertBasicChallenge(s.T(), rec, "admin")
			})
		}
	})

	s.Run("error: 404 while no password is configured", func() {
		cfg := s.cfg
		cfg.Admin.PasswordHash = ""
		s.router = s.newRouter(cfg)

		rec := s.adminRequest(http.MethodGet, "/api/admin/bookings", adminUser, adminPass)

		commontest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}
