//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"room-booking/internal/domain/booking"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/shared"
	sharedmock "room-booking/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const november = "Ноябрь 2025"

type BookingCommandsTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	store     *sharedmock.MockBookingStore
	publisher *sharedmock.MockEventPublisher
	clock     *clock.MockClock
	uc        commands.BookingCommands
	owner     booking.Owner
	ctx       context.Context
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = sharedmock.NewMockBookingStore(s.ctrl)
	s.publisher = sharedmock.NewMockEventPublisher(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC))
	s.ctx = context.Background()

	cal, err := booking.NewCalendar(booking.DefaultMonths)
	s.Require().NoError(err)
	s.uc = commands.NewBookingUseCase(s.store, s.publisher, cal, s.clock)

	owner, err := booking.NewOwner("Ann", "Room 12")
	s.Require().NoError(err)
	s.owner = owner
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBookingCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

// =============================================================================
// Identify / ChooseDate
// =============================================================================

func (s *BookingCommandsTestSuite) TestIdentify() {
	owner, err := s.uc.Identify("  Ann ", "12")
	s.Require().NoError(err)
	s.Equal("Ann", owner.Name())
	s.Equal("Room 12", owner.Room())

	for _, tc := range []struct{ name, room string }{
		{"", "12"},
		{"Ann", ""},
		{"   ", "  "},
	} {
		_, err := s.uc.Identify(tc.name, tc.room)
		s.True(errs.Is(err, commands.ErrIdentityRequired), "name=%q room=%q: %v", tc.name, tc.room, err)
	}
}

func (s *BookingCommandsTestSuite) TestChooseDate() {
	testCases := []struct {
		name        string
		month       string
		day         int
		room        string
		expectedErr error
	}{
		{name: "valid date", month: november, day: 5, room: "7"},
		{name: "last day", month: "Июнь 2026", day: 31, room: "7"},
		{name: "unknown month", month: "Июль 2026", day: 5, room: "7", expectedErr: commands.ErrInvalidDate},
		{name: "day zero", month: november, day: 0, room: "7", expectedErr: commands.ErrInvalidDate},
		{name: "day 32", month: november, day: 32, room: "7", expectedErr: commands.ErrInvalidDate},
		{name: "missing room", month: november, day: 5, room: " ", expectedErr: commands.ErrIdentityRequired},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			choice, err := s.uc.ChooseDate(s.owner, tc.month, tc.day, tc.room)
			if tc.expectedErr != nil {
				s.True(errs.Is(err, tc.expectedErr), "got %v", err)
				return
			}
			s.Require().NoError(err)
			s.Equal(booking.Month(tc.month), choice.Month)
			s.Equal(booking.Day(tc.day), choice.Day)
			s.Equal("Ann", choice.Owner.Name())
			s.Equal("Room 7", choice.Owner.Room(), "room from the date step replaces the stored one")
		})
	}
}

// =============================================================================
// BookSlot / BookCustomRange
// =============================================================================

func (s *BookingCommandsTestSuite) TestBookSlot_Success() {
	s.store.EXPECT().Reserve(s.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, b *booking.Booking) (int64, error) {
		s.Equal(booking.Month(november), b.Month())
		s.Equal(booking.Day(5), b.Day())
		s.Equal("10:00-12:00", b.Slot().String())
		s.True(b.IsOwnedBy(s.owner))
		return 11, nil
	})
	s.publisher.EXPECT().Publish(s.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, ev shared.BookingEvent) error {
		s.Equal(shared.EventBookingCreated, ev.Type)
		s.Equal(int64(11), ev.BookingID)
		s.Equal("Room 12", ev.UserRoom)
		s.Equal("10:00", ev.Start)
		s.Equal("12:00", ev.End)
		s.Equal(november+"/5", ev.Key())
		return nil
	})

	res, err := s.uc.BookSlot(s.ctx, commands.BookRangeRequest{
		Owner: s.owner, Month: november, Day: 5, Start: "10:00", End: "12:00",
	})

	s.Require().NoError(err)
	s.Equal(int64(11), res.Booking.ID())
	s.True(res.Booking.CreatedAt().Equal(s.clock.Now()))
}

func (s *BookingCommandsTestSuite) TestBookSlot_Rejections() {
	testCases := []struct {
		name        string
		req         commands.BookRangeRequest
		expectedErr error
	}{
		{
			name:        "malformed start",
			req:         commands.BookRangeRequest{Month: november, Day: 5, Start: "10am", End: "12:00"},
			expectedErr: commands.ErrMalformedRange,
		},
		{
			name:        "before the window",
			req:         commands.BookRangeRequest{Month: november, Day: 5, Start: "06:59", End: "09:00"},
			expectedErr: commands.ErrRangeNotAllowed,
		},
		{
			name:        "after the window",
			req:         commands.BookRangeRequest{Month: november, Day: 5, Start: "12:00", End: "23:01"},
			expectedErr: commands.ErrRangeNotAllowed,
		},
		{
			name:        "empty range",
			req:         commands.BookRangeRequest{Month: november, Day: 5, Start: "10:00", End: "10:00"},
			expectedErr: commands.ErrRangeNotAllowed,
		},
		{
			name:        "unknown month",
			req:         commands.BookRangeRequest{Month: "Smarch", Day: 5, Start: "10:00", End: "12:00"},
			expectedErr: commands.ErrInvalidDate,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.req.Owner = s.owner
			res, err := s.uc.BookSlot(s.ctx, tc.req)
			s.Nil(res)
			s.True(errs.Is(err, tc.expectedErr), "expected %v, got %v", tc.expectedErr, err)
		})
	}
}

func (s *BookingCommandsTestSuite) TestBookSlot_RequiresIdentity() {
	_, err := s.uc.BookSlot(s.ctx, commands.BookRangeRequest{Month: november, Day: 5, Start: "10:00", End: "12:00"})
	s.True(errs.Is(err, commands.ErrIdentityRequired))
}

func (s *BookingCommandsTestSuite) TestBookSlot_Overlap() {
	s.store.EXPECT().Reserve(s.ctx, gomock.Any()).Return(int64(0), booking.ErrSlotTaken)

	_, err := s.uc.BookSlot(s.ctx, commands.BookRangeRequest{
		Owner: s.owner, Month: november, Day: 5, Start: "11:00", End: "13:00",
	})

	s.True(errs.Is(err, commands.ErrSlotTaken), "got %v", err)
}

func (s *BookingCommandsTestSuite) TestBookSlot_StoreFailure() {
	s.store.EXPECT().Reserve(s.ctx, gomock.Any()).Return(int64(0), errors.New("disk full"))

	_, err := s.uc.BookSlot(s.ctx, commands.BookRangeRequest{
		Owner: s.owner, Month: november, Day: 5, Start: "11:00", End: "13:00",
	})

	s.Require().Error(err)
	s.False(errs.Is(err, commands.ErrSlotTaken))
	s.Contains(err.Error(), "disk full")
}

func (s *BookingCommandsTestSuite) TestBookSlot_PublishFailureDoesNotFailBooking() {
	s.store.EXPECT().Reserve(s.ctx, gomock.Any()).Return(int64(3), nil)
	s.publisher.EXPECT().Publish(s.ctx, gomock.Any()).Return(errors.New("broker down"))

	res, err := s.uc.BookSlot(s.ctx, commands.BookRangeRequest{
		Owner: s.owner, Month: november, Day: 5, Start: "07:00", End: "23:00",
	})

	s.Require().NoError(err)
	s.Equal(int64(3), res.Booking.ID())
}

func (s *BookingCommandsTestSuite) TestBookCustomRange() {
	s.Run("success", func() {
		s.store.EXPECT().Reserve(s.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, b *booking.Booking) (int64, error) {
			s.Equal("09:30-10:15", b.Slot().String())
			return 21, nil
		})
		s.publisher.EXPECT().Publish(s.ctx, gomock.Any()).Return(nil)

		res, err := s.uc.BookCustomRange(s.ctx, commands.BookCustomRequest{
			Owner: s.owner, Month: november, Day: 5, Range: "09:30-10:15",
		})
		s.Require().NoError(err)
		s.Equal(int64(21), res.Booking.ID())
	})

	for _, tc := range []struct {
		rng         string
		expectedErr error
	}{
		{"09:30", commands.ErrMalformedRange},
		{"09:30-10:15-11:00", commands.ErrMalformedRange},
		{"ab:cd-10:00", commands.ErrMalformedRange},
		{"12:00-10:00", commands.ErrRangeNotAllowed},
		{"22:00-23:30", commands.ErrRangeNotAllowed},
	} {
		s.Run(tc.rng, func() {
			_, err := s.uc.BookCustomRange(s.ctx, commands.BookCustomRequest{
				Owner: s.owner, Month: november, Day: 5, Range: tc.rng,
			})
			s.True(errs.Is(err, tc.expectedErr), "expected %v, got %v", tc.expectedErr, err)
		})
	}
}

// =============================================================================
// Cancel / AdminDelete
// =============================================================================

func (s *BookingCommandsTestSuite) TestCancel_Owned() {
	s.store.EXPECT().DeleteOwned(s.ctx, int64(4), s.owner).Return(true, nil)
	s.publisher.EXPECT().Publish(s.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, ev shared.BookingEvent) error {
		s.Equal(shared.EventBookingCanceled, ev.Type)
		s.Equal(int64(4), ev.BookingID)
		return nil
	})

	s.NoError(s.uc.Cancel(s.ctx, 4, s.owner))
}

func (s *BookingCommandsTestSuite) TestCancel_MissingOrForeignIsNoop() {
	s.store.EXPECT().DeleteOwned(s.ctx, int64(4), s.owner).Return(false, nil)

	s.NoError(s.uc.Cancel(s.ctx, 4, s.owner))
}

func (s *BookingCommandsTestSuite) TestCancel_StoreFailure() {
	s.store.EXPECT().DeleteOwned(s.ctx, int64(4), s.owner).Return(false, errors.New("locked"))

	s.Error(s.uc.Cancel(s.ctx, 4, s.owner))
}

func (s *BookingCommandsTestSuite) TestAdminDelete() {
	s.store.EXPECT().Delete(s.ctx, int64(9)).Return(true, nil)
	s.publisher.EXPECT().Publish(s.ctx, gomock.Any()).Return(nil)

	s.NoError(s.uc.AdminDelete(s.ctx, 9))
}

func (s *BookingCommandsTestSuite) TestAdminDelete_MissingIDPublishesNothing() {
	s.store.EXPECT().Delete(s.ctx, int64(404)).Return(false, nil)
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	s.NoError(s.uc.AdminDelete(s.ctx, 404))
}

func TestAdminDelete_StoreFailureSkipsEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := sharedmock.NewMockBookingStore(ctrl)
	publisher := sharedmock.NewMockEventPublisher(ctrl)
	cal, err := booking.NewCalendar(booking.DefaultMonths)
	require.NoError(t, err)
	uc := commands.NewBookingUseCase(store, publisher, cal, clock.NewRealClock())

	store.EXPECT().Delete(gomock.Any(), int64(9)).Return(false, errors.New("gone"))

	assert.Error(t, uc.AdminDelete(context.Background(), 9))
}
