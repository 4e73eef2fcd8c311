package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"coworking/database"
	"coworking/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const queryTimeout = 5 * time.Second

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new instance of MongoBookingRepo.
func NewMongoBookingRepo(db *mongo.Database) BookingRepository {
	repo := &MongoBookingRepo{coll: db.Collection("bookings")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create booking indexes: %v\n", err)
	}
	return repo
}

// CreateBooking inserts a new booking document.
func (repo *MongoBookingRepo) CreateBooking(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("error creating booking: %w", err)
	}
	return nil
}

// GetBookingByID retrieves a booking by its ID.
func (repo *MongoBookingRepo) GetBookingByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var booking models.Booking
	err := repo.coll.FindOne(ctx, bson.M{"id": bookingID}).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("booking %s: %w", bookingID, database.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching booking %s: %w", bookingID, err)
	}
	return &booking, nil
}

// UpdateBooking replaces the mutable fields of an existing booking document.
func (repo *MongoBookingRepo) UpdateBooking(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"start":                 booking.Start,
		"end":                   booking.End,
		"is_flexible":           booking.IsFlexible,
		"remaining_flexibility": booking.RemainingFlexibility,
		"price":                 booking.Price,
		"status":                booking.Status,
		"updated_at":            booking.UpdatedAt,
	}}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": booking.ID}, update)
	if err != nil {
		return fmt.Errorf("error updating booking %s: %w", booking.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("booking %s: %w", booking.ID, database.ErrNotFound)
	}
	return nil
}

// CompleteElapsed transitions elapsed active bookings to completed in one batch.
func (repo *MongoBookingRepo) CompleteElapsed(ctx context.Context, today string, nowMinutes int) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":     models.BookingStatusCompleted,
		"updated_at": time.Now().UTC(),
	}}
	res, err := repo.coll.UpdateMany(ctx, elapsedFilter(today, nowMinutes), update)
	if err != nil {
		return 0, fmt.Errorf("error completing elapsed bookings: %w", err)
	}
	return res.ModifiedCount, nil
}
