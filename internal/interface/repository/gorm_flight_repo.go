package repository

import (
	"context"
	"time"

	"flights/internal/domain/entity"
	"flights/internal/domain/repository"
	"flights/pkg/logger"

	"gorm.io/gorm"
)

// FlightRow GORM model for database mapping
type FlightRow struct {
	ID            uint   `gorm:"primaryKey"`
	ListName      string `gorm:"column:list_name;uniqueIndex:idx_list_position"`
	Position      int    `gorm:"column:position;uniqueIndex:idx_list_position"`
	Destination   string `gorm:"column:destination"`
	DepartureDate string `gorm:"column:departure_date"`
	AircraftType  string `gorm:"column:aircraft_type"`
	CreatedAt     time.Time
}

// TableName overrides the default table name
func (FlightRow) TableName() string {
	return "flight_records"
}

// GormFlightRepository implements FlightRepository on a SQL table
type GormFlightRepository struct {
	db     *gorm.DB
	name   string
	logger logger.Logger
}

// NewGormFlightRepository creates a repository for the list called name
func NewGormFlightRepository(db *gorm.DB, name string, log logger.Logger) *GormFlightRepository {
	return &GormFlightRepository{
		db:     db,
		name:   name,
		logger: log.With("backend", "postgres", "list", name),
	}
}

// Migrate creates or updates the flight_records table
func (r *GormFlightRepository) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&FlightRow{}); err != nil {
		return &repository.IOError{Op: "migrate", Path: r.name, Err: err}
	}
	return nil
}

// Load returns the rows of the list ordered by position
func (r *GormFlightRepository) Load(ctx context.Context) ([]entity.Flight, error) {
	var rows []FlightRow
	result := r.db.WithContext(ctx).
		Where("list_name = ?", r.name).
		Order("position").
		Find(&rows)
	if result.Error != nil {
		r.logger.Error("Failed to load flight list", "error", result.Error)
		return nil, &repository.IOError{Op: "select", Path: r.name, Err: result.Error}
	}

	flights := make([]entity.Flight, 0, len(rows))
	for _, row := range rows {
		flights = append(flights, entity.NewFlight(row.Destination, row.DepartureDate, row.AircraftType))
	}

	r.logger.Debug("Loaded flights", "count", len(flights))
	return flights, nil
}

// Save replaces every row of the list inside one transaction
func (r *GormFlightRepository) Save(ctx context.Context, flights []entity.Flight) error {
	now := time.Now()
	rows := make([]FlightRow, 0, len(flights))
	for i, f := range flights {
		rows = append(rows, FlightRow{
			ListName:      r.name,
			Position:      i,
			Destination:   f.Destination,
			DepartureDate: f.DepartureDate,
			AircraftType:  f.AircraftType,
			CreatedAt:     now,
		})
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("list_name = ?", r.name).Delete(&FlightRow{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, 100).Error
	})
	if err != nil {
		r.logger.Error("Failed to save flight list", "error", err)
		return &repository.IOError{Op: "replace", Path: r.name, Err: err}
	}

	r.logger.Debug("Saved flights", "count", len(flights))
	return nil
}

// Close releases the connection pool
func (r *GormFlightRepository) Close(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
