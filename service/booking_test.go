package service

import (
	"context"
	"testing"
	"time"

	apperrors "travel-webapp/errors"
	"travel-webapp/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Insert(ctx context.Context, booking *model.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) ListForUser(ctx context.Context, userId primitive.ObjectID) ([]model.BookingWithDestination, error) {
	args := m.Called(ctx, userId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BookingWithDestination), args.Error(1)
}

func (m *MockBookingRepository) Cancel(ctx context.Context, userId, bookingId primitive.ObjectID) (*model.Booking, error) {
	args := m.Called(ctx, userId, bookingId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func TestBookingService_Create_MissingFields(t *testing.T) {
	repo := &MockBookingRepository{}
	service := NewBookingService(repo)
	userId := primitive.NewObjectID()
	destId := primitive.NewObjectID().Hex()

	cases := []struct {
		description string
		input       CreateBookingInput
	}{
		{"missing destination", CreateBookingInput{Checkin: "2024-06-01", Checkout: "2024-06-10"}},
		{"missing checkin", CreateBookingInput{DestinationId: destId, Checkout: "2024-06-10"}},
		{"missing checkout", CreateBookingInput{DestinationId: destId, Checkin: "2024-06-01"}},
	}

	for _, tc := range cases {
		_, err := service.Create(context.Background(), userId, tc.input)
		assert.Truef(t, apperrors.IsValidation(err), tc.description)
	}
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestBookingService_Create_InvalidDates(t *testing.T) {
	repo := &MockBookingRepository{}
	service := NewBookingService(repo)
	userId := primitive.NewObjectID()
	destId := primitive.NewObjectID().Hex()

	cases := []struct {
		description string
		checkin     string
		checkout    string
	}{
		{"unparseable checkin", "junk", "2024-06-10"},
		{"unparseable checkout", "2024-06-01", "junk"},
		{"checkin after checkout", "2024-06-10", "2024-06-01"},
	}

	for _, tc := range cases {
		_, err := service.Create(context.Background(), userId, CreateBookingInput{
			DestinationId: destId,
			Checkin:       tc.checkin,
			Checkout:      tc.checkout,
		})
		assert.Truef(t, apperrors.IsValidation(err), tc.description)
	}
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestBookingService_Create_Success(t *testing.T) {
	repo := &MockBookingRepository{}
	service := NewBookingService(repo)
	ctx := context.Background()
	userId := primitive.NewObjectID()
	destId := primitive.NewObjectID()

	repo.On("Insert", ctx, mock.AnythingOfType("*model.Booking")).Return(nil).Once()

	booking, err := service.Create(ctx, userId, CreateBookingInput{
		DestinationId: destId.Hex(),
		Checkin:       "2024-06-01",
		Checkout:      "2024-06-10",
		GuestName:     "Jane Doe",
	})

	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusPending, booking.Status)
	assert.Equal(t, userId, booking.UserId)
	assert.Equal(t, destId, booking.DestinationId)
	assert.Equal(t, "Jane Doe", booking.GuestName)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), booking.Checkin)
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), booking.Checkout)
	assert.False(t, booking.CreatedAt.IsZero())
	assert.Equal(t, booking.CreatedAt, booking.UpdatedAt)
	repo.AssertExpectations(t)
}

// Same-day stays are allowed: the rule is checkin <= checkout.
func TestBookingService_Create_SameDay(t *testing.T) {
	repo := &MockBookingRepository{}
	service := NewBookingService(repo)
	ctx := context.Background()

	repo.On("Insert", ctx, mock.AnythingOfType("*model.Booking")).Return(nil).Once()

	booking, err := service.Create(ctx, primitive.NewObjectID(), CreateBookingInput{
		DestinationId: primitive.NewObjectID().Hex(),
		Checkin:       "2024-06-01",
		Checkout:      "2024-06-01",
	})

	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusPending, booking.Status)
}

func TestBookingService_CancelOwnership(t *testing.T) {
	repo := &MockBookingRepository{}
	service := NewBookingService(repo)
	ctx := context.Background()
	owner := primitive.NewObjectID()
	other := primitive.NewObjectID()
	bookingId := primitive.NewObjectID()

	cancelled := &model.Booking{Id: bookingId, UserId: owner, Status: model.BookingStatusCancelled}
	repo.On("Cancel", ctx, owner, bookingId).Return(cancelled, nil).Once()
	repo.On("Cancel", ctx, other, bookingId).Return(nil, apperrors.ErrNotFound).Once()

	booking, err := service.Cancel(ctx, owner, bookingId.Hex())
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusCancelled, booking.Status)

	_, err = service.Cancel(ctx, other, bookingId.Hex())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	repo.AssertExpectations(t)
}

func TestBookingService_Cancel_MalformedId(t *testing.T) {
	repo := &MockBookingRepository{}
	service := NewBookingService(repo)

	_, err := service.Cancel(context.Background(), primitive.NewObjectID(), "not-an-object-id")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	repo.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingService_ListForUser(t *testing.T) {
	repo := &MockBookingRepository{}
	service := NewBookingService(repo)
	ctx := context.Background()
	userId := primitive.NewObjectID()

	newest := model.BookingWithDestination{Booking: model.Booking{Id: primitive.NewObjectID(), CreatedAt: time.Now()}}
	oldest := model.BookingWithDestination{Booking: model.Booking{Id: primitive.NewObjectID(), CreatedAt: time.Now().Add(-time.Hour)}}
	repo.On("ListForUser", ctx, userId).Return([]model.BookingWithDestination{newest, oldest}, nil).Once()

	bookings, err := service.ListForUser(ctx, userId)

	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.True(t, bookings[0].CreatedAt.After(bookings[1].CreatedAt))
}
