package service

import (
	"context"
	"time"

	apperrors "travel-webapp/errors"
	"travel-webapp/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingRepository interface {
	Insert(ctx context.Context, booking *model.Booking) error
	ListForUser(ctx context.Context, userId primitive.ObjectID) ([]model.BookingWithDestination, error)
	Cancel(ctx context.Context, userId, bookingId primitive.ObjectID) (*model.Booking, error)
}

// BookingService owns the booking lifecycle: create as pending, cancel by
// owner. Nothing here transitions a booking to confirmed.
type BookingService struct {
	bookings BookingRepository
}

func NewBookingService(bookings BookingRepository) *BookingService {
	return &BookingService{bookings: bookings}
}

type CreateBookingInput struct {
	DestinationId string
	Checkin       string
	Checkout      string
	GuestName     string
}

const dateLayout = "2006-01-02"

func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// Create validates the input shape and persists a pending booking. It does
// not check that the destination exists, and it does not look for other
// bookings overlapping the same dates.
func (s *BookingService) Create(ctx context.Context, userId primitive.ObjectID, input CreateBookingInput) (*model.Booking, error) {
	if input.DestinationId == "" || input.Checkin == "" || input.Checkout == "" {
		return nil, apperrors.NewValidationError("missing fields")
	}

	destinationId, err := primitive.ObjectIDFromHex(input.DestinationId)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid destination id")
	}

	checkin, checkinErr := parseDate(input.Checkin)
	checkout, checkoutErr := parseDate(input.Checkout)
	if checkinErr != nil || checkoutErr != nil || checkin.After(checkout) {
		return nil, apperrors.NewValidationError("invalid dates")
	}

	now := time.Now()
	booking := &model.Booking{
		Id:            primitive.NewObjectID(),
		UserId:        userId,
		DestinationId: destinationId,
		GuestName:     input.GuestName,
		Checkin:       checkin,
		Checkout:      checkout,
		Status:        model.BookingStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.bookings.Insert(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// ListForUser returns the user's bookings newest-created first, joined with
// destination display data.
func (s *BookingService) ListForUser(ctx context.Context, userId primitive.ObjectID) ([]model.BookingWithDestination, error) {
	return s.bookings.ListForUser(ctx, userId)
}

// Cancel marks a booking cancelled when it is owned by userId. An unknown id
// and someone else's booking both come back as ErrNotFound.
func (s *BookingService) Cancel(ctx context.Context, userId primitive.ObjectID, bookingIdHex string) (*model.Booking, error) {
	bookingId, err := primitive.ObjectIDFromHex(bookingIdHex)
	if err != nil {
		return nil, apperrors.ErrNotFound
	}
	return s.bookings.Cancel(ctx, userId, bookingId)
}
