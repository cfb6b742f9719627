package service

import (
	"context"

	apperrors "travel-webapp/errors"
	"travel-webapp/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DestinationRepository interface {
	Search(ctx context.Context, term string) ([]model.Destination, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Destination, error)
}

// CatalogService reads the pre-seeded destination catalog. There are no
// write operations on it anywhere in the app.
type CatalogService struct {
	destinations DestinationRepository
}

func NewCatalogService(destinations DestinationRepository) *CatalogService {
	return &CatalogService{destinations: destinations}
}

// List returns all destinations, or the ones whose name or location contains
// the search term when one is given.
func (s *CatalogService) List(ctx context.Context, search string) ([]model.Destination, error) {
	return s.destinations.Search(ctx, search)
}

func (s *CatalogService) Get(ctx context.Context, idHex string) (*model.Destination, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, apperrors.ErrNotFound
	}
	return s.destinations.GetByID(ctx, id)
}
