// Package services contains application services for the Everli CLI.
// They orchestrate client.Client calls and keep no state of their own.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/everli/internal/client/client"
	"github.com/dmitrijs2005/everli/internal/client/models"
	"github.com/dmitrijs2005/everli/internal/logging"
)

var ErrStoreNotFound = errors.New("store not found")

// SlotService answers the questions the CLI asks about stores and slots.
//
// Contract:
//   - Stores: stores of a location ("" = the session location).
//   - StoreAvailability: slots of one store, looked up by id in a fresh listing.
//   - EarliestSlots: first valid slot per store, stores without one omitted.
type SlotService interface {
	Stores(ctx context.Context, location string) ([]models.Store, error)
	StoreAvailability(ctx context.Context, location, storeID string) (models.Store, []models.Availability, error)
	EarliestSlots(ctx context.Context, location string) ([]EarliestSlot, error)
}

// EarliestSlot pairs a store with its first bookable slot.
type EarliestSlot struct {
	Store models.Store
	Date  string
	Slot  models.Slot
}

type slotService struct {
	client client.Client
	log    logging.Logger
}

func NewSlotService(c client.Client, log logging.Logger) SlotService {
	return &slotService{client: c, log: log}
}

func (s *slotService) Stores(ctx context.Context, location string) ([]models.Store, error) {
	stores, err := s.client.ListStores(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	return stores, nil
}

func (s *slotService) StoreAvailability(ctx context.Context, location, storeID string) (models.Store, []models.Availability, error) {
	stores, err := s.Stores(ctx, location)
	if err != nil {
		return models.Store{}, nil, err
	}

	for _, st := range stores {
		if st.ID != storeID {
			continue
		}
		days, err := s.client.ListAvailability(ctx, st)
		if err != nil {
			return st, nil, fmt.Errorf("list availability of store %s: %w", storeID, err)
		}
		return st, days, nil
	}

	return models.Store{}, nil, fmt.Errorf("%w: %s", ErrStoreNotFound, storeID)
}

// EarliestSlots queries stores one after another. A store whose availability
// cannot be fetched is logged and skipped.
func (s *slotService) EarliestSlots(ctx context.Context, location string) ([]EarliestSlot, error) {
	stores, err := s.Stores(ctx, location)
	if err != nil {
		return nil, err
	}

	out := make([]EarliestSlot, 0, len(stores))
	for _, st := range stores {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		days, err := s.client.ListAvailability(ctx, st)
		if err != nil {
			s.log.Warn(ctx, "skipping store", "store", st.ID, "error", err)
			continue
		}

		day, slot, ok := models.FirstSlot(days)
		if !ok {
			continue
		}
		out = append(out, EarliestSlot{Store: st, Date: day.Date, Slot: slot})
	}

	return out, nil
}
