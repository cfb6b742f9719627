package service

import (
	"context"
	"strconv"
	"time"

	apperrors "travel-webapp/errors"
	"travel-webapp/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReviewRepository interface {
	Insert(ctx context.Context, review *model.Review) error
	ListForDestination(ctx context.Context, destinationId primitive.ObjectID) ([]model.ReviewWithUser, error)
	ListForUser(ctx context.Context, userId primitive.ObjectID) ([]model.ReviewWithDestination, error)
}

// ReviewService records and lists reviews. Rating bounds are not checked and
// an empty comment is allowed.
type ReviewService struct {
	reviews ReviewRepository
}

func NewReviewService(reviews ReviewRepository) *ReviewService {
	return &ReviewService{reviews: reviews}
}

type CreateReviewInput struct {
	DestinationId string
	Rating        string
	Comment       string
}

func (s *ReviewService) Create(ctx context.Context, userId primitive.ObjectID, input CreateReviewInput) (*model.Review, error) {
	destinationId, err := primitive.ObjectIDFromHex(input.DestinationId)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid destination id")
	}

	rating, err := strconv.Atoi(input.Rating)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid rating")
	}

	review := &model.Review{
		Id:            primitive.NewObjectID(),
		UserId:        userId,
		DestinationId: destinationId,
		Rating:        rating,
		Comment:       input.Comment,
		CreatedAt:     time.Now(),
	}
	if err := s.reviews.Insert(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) ListForDestination(ctx context.Context, destinationIdHex string) ([]model.ReviewWithUser, error) {
	destinationId, err := primitive.ObjectIDFromHex(destinationIdHex)
	if err != nil {
		return nil, apperrors.ErrNotFound
	}
	return s.reviews.ListForDestination(ctx, destinationId)
}

func (s *ReviewService) ListForUser(ctx context.Context, userId primitive.ObjectID) ([]model.ReviewWithDestination, error) {
	return s.reviews.ListForUser(ctx, userId)
}
