package usecase

import (
	"context"
	"fmt"
	"time"

	"flights/internal/domain/entity"
	"flights/internal/domain/repository"
	"flights/pkg/logger"
	"flights/pkg/metrics"
)

// FlightService runs one command against a flight list: load, operate, and
// save only when the list was changed.
type FlightService struct {
	repo    repository.FlightRepository
	metrics *metrics.Metrics
	logger  logger.Logger
}

// NewFlightService creates a new flight service
func NewFlightService(repo repository.FlightRepository, m *metrics.Metrics, logger logger.Logger) *FlightService {
	return &FlightService{
		repo:    repo,
		metrics: m,
		logger:  logger,
	}
}

// Add appends one flight and persists the whole list
func (s *FlightService) Add(ctx context.Context, destination, departureDate, aircraftType string) ([]entity.Flight, error) {
	s.metrics.CommandsTotal.WithLabelValues("add").Inc()

	flights, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	flights = AppendFlight(flights, destination, departureDate, aircraftType)
	s.logger.Info("Flight added", "destination", destination, "departureDate", departureDate, "aircraftType", aircraftType, "total", len(flights))

	if err := s.save(ctx, flights); err != nil {
		return nil, err
	}
	s.metrics.FlightsAdded.Inc()
	return flights, nil
}

// List returns the full list without writing anything back
func (s *FlightService) List(ctx context.Context) ([]entity.Flight, error) {
	s.metrics.CommandsTotal.WithLabelValues("display").Inc()
	return s.load(ctx)
}

// Select returns the flights departing on date without writing anything back
func (s *FlightService) Select(ctx context.Context, date string) ([]entity.Flight, error) {
	s.metrics.CommandsTotal.WithLabelValues("select").Inc()

	flights, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	selected := SelectByDate(flights, date)
	s.metrics.FlightsSelected.Add(float64(len(selected)))
	s.logger.Debug("Flights selected", "date", date, "matched", len(selected), "total", len(flights))
	return selected, nil
}

func (s *FlightService) load(ctx context.Context) ([]entity.Flight, error) {
	start := time.Now()
	flights, err := s.repo.Load(ctx)
	s.metrics.ObserveStorage("load", start)
	if err != nil {
		s.metrics.ErrorsCount.WithLabelValues("load").Inc()
		return nil, fmt.Errorf("load flights: %w", err)
	}
	return flights, nil
}

func (s *FlightService) save(ctx context.Context, flights []entity.Flight) error {
	start := time.Now()
	err := s.repo.Save(ctx, flights)
	s.metrics.ObserveStorage("save", start)
	if err != nil {
		s.metrics.ErrorsCount.WithLabelValues("save").Inc()
		return fmt.Errorf("save flights: %w", err)
	}
	return nil
}
