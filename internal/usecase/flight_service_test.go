package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"flights/internal/domain/entity"
	"flights/internal/domain/repository"
	repo "flights/internal/interface/repository"
	"flights/pkg/logger"
	"flights/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRepository records calls made by the service
type memoryRepository struct {
	flights   []entity.Flight
	loadErr   error
	saveErr   error
	saveCalls int
}

func (m *memoryRepository) Load(ctx context.Context) ([]entity.Flight, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return append([]entity.Flight{}, m.flights...), nil
}

func (m *memoryRepository) Save(ctx context.Context, flights []entity.Flight) error {
	m.saveCalls++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.flights = append([]entity.Flight{}, flights...)
	return nil
}

func (m *memoryRepository) Close(ctx context.Context) error { return nil }

func newService(r repository.FlightRepository) (*FlightService, *metrics.Metrics) {
	m := metrics.NewMetrics("flights")
	return NewFlightService(r, m, logger.NewNop()), m
}

func TestFlightService_Add(t *testing.T) {
	mem := &memoryRepository{flights: []entity.Flight{entity.NewFlight("Oslo", "2024-01-01", "E190")}}
	svc, m := newService(mem)

	flights, err := svc.Add(context.Background(), "Paris", "2024-01-02", "A320")
	require.NoError(t, err)

	assert.Len(t, flights, 2)
	assert.Equal(t, 1, mem.saveCalls)
	assert.Equal(t, entity.NewFlight("Paris", "2024-01-02", "A320"), mem.flights[1])
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FlightsAdded))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CommandsTotal.WithLabelValues("add")))
}

func TestFlightService_ReadOnlyCommandsNeverSave(t *testing.T) {
	mem := &memoryRepository{flights: sampleFlights()}
	svc, m := newService(mem)
	ctx := context.Background()

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	selected, err := svc.Select(ctx, "2024-02-02")
	require.NoError(t, err)
	assert.Len(t, selected, 2)

	assert.Zero(t, mem.saveCalls)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.FlightsSelected))
}

func TestFlightService_LoadErrorIsFatal(t *testing.T) {
	loadErr := &repository.ParseError{Path: "flights.json", Err: errors.New("bad json")}
	mem := &memoryRepository{loadErr: loadErr}
	svc, m := newService(mem)

	_, err := svc.Add(context.Background(), "Paris", "2024-01-01", "A320")
	require.Error(t, err)

	var parseErr *repository.ParseError
	assert.True(t, errors.As(err, &parseErr))
	assert.Zero(t, mem.saveCalls)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ErrorsCount.WithLabelValues("load")))
}

func TestFlightService_SaveError(t *testing.T) {
	mem := &memoryRepository{saveErr: &repository.IOError{Op: "write", Path: "flights.json", Err: os.ErrPermission}}
	svc, m := newService(mem)

	_, err := svc.Add(context.Background(), "Paris", "2024-01-01", "A320")
	require.Error(t, err)

	var ioErr *repository.IOError
	assert.True(t, errors.As(err, &ioErr))
	assert.True(t, errors.Is(err, os.ErrPermission))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.FlightsAdded))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ErrorsCount.WithLabelValues("save")))
}

func TestFlightService_ReadOnlyCommandsKeepFileBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flights.json")
	// deliberately not in the canonical layout
	original := []byte(`[{"destination":"Paris","departure_date":"2024-01-01","aircraft_type":"A320","gate":"B12"}]`)
	require.NoError(t, os.WriteFile(path, original, 0o644))

	svc, _ := newService(repo.NewJSONFlightRepository(path, logger.NewNop()))
	ctx := context.Background()

	_, err := svc.List(ctx)
	require.NoError(t, err)
	_, err = svc.Select(ctx, "2024-01-01")
	require.NoError(t, err)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, after)
}

func TestFlightService_AddThenSelectScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flights.json")
	svc, _ := newService(repo.NewJSONFlightRepository(path, logger.NewNop()))
	ctx := context.Background()

	_, err := svc.Add(ctx, "Paris", "2024-01-01", "A320")
	require.NoError(t, err)
	_, err = svc.Add(ctx, "Berlin", "2024-02-02", "B737")
	require.NoError(t, err)

	selected, err := svc.Select(ctx, "2024-02-02")
	require.NoError(t, err)
	assert.Equal(t, []entity.Flight{entity.NewFlight("Berlin", "2024-02-02", "B737")}, selected)
}
