package client

import (
	"context"

	"github.com/dmitrijs2005/everli/internal/client/models"
)

type Client interface {
	Authenticate(ctx context.Context) error
	ResolveLocation(ctx context.Context) error
	ListStores(ctx context.Context, location string) ([]models.Store, error)
	ListAvailability(ctx context.Context, store models.Store) ([]models.Availability, error)
	Token() string
	UserID() string
	Location() string
}
