package bookingRepo

import (
	"context"
	"errors"
	"fmt"

	"coworking/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// elapsedFilter matches active bookings whose interval has ended by today/nowMinutes.
// The end boundary is inclusive.
func elapsedFilter(today string, nowMinutes int) bson.M {
	return bson.M{
		"status": models.BookingStatusActive,
		"$or": bson.A{
			bson.M{"date": bson.M{"$lt": today}},
			bson.M{"date": today, "end": bson.M{"$lte": nowMinutes}},
		},
	}
}

func activeByWorkspaceFilter(workspaceID, date string) bson.M {
	filter := bson.M{
		"workspace_id": workspaceID,
		"status":       models.BookingStatusActive,
	}
	if date != "" {
		filter["date"] = date
	}
	return filter
}

// FindActiveByWorkspaceAndDate returns every active booking of a workspace on a date.
func (repo *MongoBookingRepo) FindActiveByWorkspaceAndDate(ctx context.Context, workspaceID, date string) ([]models.Booking, error) {
	return repo.find(ctx, activeByWorkspaceFilter(workspaceID, date), options.Find().SetSort(bson.D{{Key: "start", Value: 1}}))
}

// FindActiveByUserAndDate returns the user's active booking on a date, or nil if there is none.
func (repo *MongoBookingRepo) FindActiveByUserAndDate(ctx context.Context, userID, date string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{
		"user_id": userID,
		"date":    date,
		"status":  models.BookingStatusActive,
	}
	var booking models.Booking
	err := repo.coll.FindOne(ctx, filter).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching active booking for user %s on %s: %w", userID, date, err)
	}
	return &booking, nil
}

// ListByUser returns the user's bookings ordered by date and start.
func (repo *MongoBookingRepo) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "start", Value: 1}})
	return repo.find(ctx, bson.M{"user_id": userID}, opts)
}

// ListActiveByWorkspace returns active bookings of a workspace; an empty date means every date.
func (repo *MongoBookingRepo) ListActiveByWorkspace(ctx context.Context, workspaceID, date string) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "start", Value: 1}})
	return repo.find(ctx, activeByWorkspaceFilter(workspaceID, date), opts)
}

// ListAll returns every booking, newest first.
func (repo *MongoBookingRepo) ListAll(ctx context.Context) ([]models.Booking, error) {
	return repo.find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
}

func (repo *MongoBookingRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}
