package repository

import (
	"context"
	"errors"
	"time"

	"flights/internal/domain/entity"
	"flights/internal/domain/repository"
	"flights/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const flightListsCollection = "flight_lists"

// flightListDocument stores one whole list so that ordering and full
// replacement map onto a single document write.
type flightListDocument struct {
	Name      string          `bson:"_id"`
	Flights   []entity.Flight `bson:"flights"`
	UpdatedAt time.Time       `bson:"updatedAt"`
}

// MongoFlightRepository implements FlightRepository on a MongoDB collection
type MongoFlightRepository struct {
	client     *mongo.Client
	collection *mongo.Collection
	name       string
	logger     logger.Logger
}

// NewMongoFlightRepository creates a repository for the list called name
func NewMongoFlightRepository(client *mongo.Client, db *mongo.Database, name string, log logger.Logger) *MongoFlightRepository {
	return &MongoFlightRepository{
		client:     client,
		collection: db.Collection(flightListsCollection),
		name:       name,
		logger:     log.With("backend", "mongo", "list", name),
	}
}

// Load returns the stored list, or an empty list when none was saved yet
func (r *MongoFlightRepository) Load(ctx context.Context) ([]entity.Flight, error) {
	var doc flightListDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": r.name}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			r.logger.Debug("No stored list, starting with an empty list")
			return []entity.Flight{}, nil
		}
		r.logger.Error("Failed to load flight list", "error", err)
		return nil, &repository.IOError{Op: "find", Path: r.name, Err: err}
	}

	if doc.Flights == nil {
		doc.Flights = []entity.Flight{}
	}
	r.logger.Debug("Loaded flights", "count", len(doc.Flights))
	return doc.Flights, nil
}

// Save replaces the stored list
func (r *MongoFlightRepository) Save(ctx context.Context, flights []entity.Flight) error {
	if flights == nil {
		flights = []entity.Flight{}
	}

	doc := flightListDocument{
		Name:      r.name,
		Flights:   flights,
		UpdatedAt: time.Now(),
	}

	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": r.name}, doc, opts)
	if err != nil {
		r.logger.Error("Failed to save flight list", "error", err)
		return &repository.IOError{Op: "replace", Path: r.name, Err: err}
	}

	r.logger.Debug("Saved flights", "count", len(flights))
	return nil
}

// Close disconnects the underlying client
func (r *MongoFlightRepository) Close(ctx context.Context) error {
	if r.client == nil {
		return nil
	}
	return r.client.Disconnect(ctx)
}
