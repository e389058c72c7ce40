package repository

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"unicode/utf8"

	"flights/internal/domain/entity"
	"flights/internal/domain/repository"
	"flights/pkg/logger"
	"flights/pkg/utils"
)

// JSONFlightRepository keeps a flight list as a JSON array in a single file.
//
// Save truncates and rewrites the file in place. There is no write-then-rename
// and no locking, so a failed write can leave a partial file and concurrent
// writers overwrite each other.
type JSONFlightRepository struct {
	path   string
	logger logger.Logger
}

// NewJSONFlightRepository creates a repository bound to path
func NewJSONFlightRepository(path string, log logger.Logger) *JSONFlightRepository {
	return &JSONFlightRepository{
		path:   path,
		logger: log.With("backend", "json", "path", path),
	}
}

// Path returns the backing file path
func (r *JSONFlightRepository) Path() string {
	return r.path
}

// Load reads the whole list. A missing file yields an empty list.
func (r *JSONFlightRepository) Load(ctx context.Context) ([]entity.Flight, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.logger.Debug("Data file does not exist, starting with an empty list")
			return []entity.Flight{}, nil
		}
		r.logger.Error("Failed to read data file", "error", err)
		return nil, &repository.IOError{Op: "read", Path: r.path, Err: err}
	}

	if !utf8.Valid(data) {
		r.logger.Error("Data file is not valid UTF-8")
		return nil, &repository.ParseError{Path: r.path, Err: errors.New("invalid UTF-8")}
	}

	var flights []entity.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		r.logger.Error("Failed to parse data file", "error", err)
		return nil, &repository.ParseError{Path: r.path, Err: err}
	}
	if flights == nil {
		// a literal null is valid JSON but not a list
		return nil, &repository.ParseError{Path: r.path, Err: errors.New("expected a JSON array")}
	}

	r.logger.Debug("Loaded flights", "count", len(flights))
	return flights, nil
}

// Save overwrites the file with the full list
func (r *JSONFlightRepository) Save(ctx context.Context, flights []entity.Flight) error {
	if flights == nil {
		flights = []entity.Flight{}
	}

	data, err := utils.MarshalPretty(flights)
	if err != nil {
		return &repository.IOError{Op: "encode", Path: r.path, Err: err}
	}

	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		r.logger.Error("Failed to write data file", "error", err)
		return &repository.IOError{Op: "write", Path: r.path, Err: err}
	}

	r.logger.Debug("Saved flights", "count", len(flights), "bytes", len(data))
	return nil
}

// Close is a no-op for file storage
func (r *JSONFlightRepository) Close(ctx context.Context) error {
	return nil
}
