package repository

import (
	"context"

	"flights/internal/domain/entity"
)

// FlightRepository defines the interface for flight list persistence.
// Load returns the whole list in insertion order and Save overwrites it in full.
type FlightRepository interface {
	Load(ctx context.Context) ([]entity.Flight, error)
	Save(ctx context.Context, flights []entity.Flight) error
	Close(ctx context.Context) error
}
