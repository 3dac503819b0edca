package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"pawcare/database"
	"pawcare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	bookingColl *mongo.Collection
	petLinkColl *mongo.Collection
}

// NewMongoBookingRepo constructs a new instance of MongoBookingRepo.
func NewMongoBookingRepo() BookingRepository {
	db := database.DB()
	return &MongoBookingRepo{
		bookingColl: db.Collection("bookings"),
		petLinkColl: db.Collection("booking_pets"),
	}
}

func (repo *MongoBookingRepo) Create(booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.bookingColl.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("error inserting booking: %w", err)
	}
	return nil
}

func (repo *MongoBookingRepo) CreateMany(bookings []models.Booking) error {
	if len(bookings) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	docs := make([]interface{}, 0, len(bookings))
	for i := range bookings {
		docs = append(docs, bookings[i])
	}
	if _, err := repo.bookingColl.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("error bulk inserting %d bookings: %w", len(bookings), err)
	}
	return nil
}

func (repo *MongoBookingRepo) GetByID(bookingID string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var booking models.Booking
	filter := bson.M{"id": bookingID}
	if err := repo.bookingColl.FindOne(ctx, filter).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching booking with id %s: %w", bookingID, err)
	}
	return &booking, nil
}

func (repo *MongoBookingRepo) ListForSeries(seriesID string) ([]models.Booking, error) {
	filter := bson.M{"recurring_series_id": seriesID}
	opts := options.Find().SetSort(bson.D{{Key: "scheduled_date", Value: 1}})
	return repo.find(filter, opts)
}

func (repo *MongoBookingRepo) ListForOwner(ownerID string, limit int64) ([]models.Booking, error) {
	filter := bson.M{"owner_id": ownerID}
	opts := options.Find().SetSort(bson.D{{Key: "scheduled_date", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	return repo.find(filter, opts)
}

func (repo *MongoBookingRepo) ListForProvider(providerID string, limit int64) ([]models.Booking, error) {
	filter := bson.M{"provider_id": providerID}
	opts := options.Find().SetSort(bson.D{{Key: "scheduled_date", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	return repo.find(filter, opts)
}

func (repo *MongoBookingRepo) find(filter bson.M, opts *options.FindOptions) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.bookingColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("error decoding booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return bookings, nil
}

func (repo *MongoBookingRepo) CountFutureForSeries(seriesID, fromDate string) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"recurring_series_id": seriesID,
		"scheduled_date":      bson.M{"$gte": fromDate},
	}
	count, err := repo.bookingColl.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("error counting future bookings for series %s: %w", seriesID, err)
	}
	return int(count), nil
}

func (repo *MongoBookingRepo) UpdateStatusFrom(bookingID string, allowedFrom []string, to string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":     bookingID,
		"status": bson.M{"$in": allowedFrom},
	}
	update := bson.M{"$set": bson.M{"status": to}}
	res, err := repo.bookingColl.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("error updating booking %s status: %w", bookingID, err)
	}
	return res.MatchedCount > 0, nil
}

func (repo *MongoBookingRepo) Cancel(bookingID string, stamp CancelStamp) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	set := bson.M{
		"status":              models.BookingStatusCancelled,
		"cancelled_at":        stamp.CancelledAt,
		"cancellation_reason": stamp.Reason,
		"refund_amount":       stamp.RefundAmount,
	}
	if stamp.RefundStatus != "" {
		set["refund_status"] = stamp.RefundStatus
	}
	res, err := repo.bookingColl.UpdateOne(ctx, bson.M{"id": bookingID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("error cancelling booking %s: %w", bookingID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("booking %s not found", bookingID)
	}
	return nil
}

func (repo *MongoBookingRepo) CancelForSeries(seriesID string, futureOnly bool, fromDate string, stamp CancelStamp) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{
		"recurring_series_id": seriesID,
		"status":              bson.M{"$in": []string{models.BookingStatusPending, models.BookingStatusAccepted}},
	}
	if futureOnly {
		filter["scheduled_date"] = bson.M{"$gte": fromDate}
	}
	update := bson.M{"$set": bson.M{
		"status":              models.BookingStatusCancelled,
		"cancelled_at":        stamp.CancelledAt,
		"cancellation_reason": stamp.Reason,
	}}
	res, err := repo.bookingColl.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("error cancelling bookings for series %s: %w", seriesID, err)
	}
	return res.ModifiedCount, nil
}

func (repo *MongoBookingRepo) LinkPets(links []models.BookingPet) error {
	if len(links) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	docs := make([]interface{}, 0, len(links))
	for i := range links {
		docs = append(docs, links[i])
	}
	if _, err := repo.petLinkColl.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("error inserting booking pet links: %w", err)
	}
	return nil
}

func (repo *MongoBookingRepo) PetsForBooking(bookingID string) ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.petLinkColl.Find(ctx, bson.M{"booking_id": bookingID})
	if err != nil {
		return nil, fmt.Errorf("error finding pet links for booking %s: %w", bookingID, err)
	}
	defer cursor.Close(ctx)

	var petIDs []string
	for cursor.Next(ctx) {
		var link models.BookingPet
		if err := cursor.Decode(&link); err != nil {
			return nil, fmt.Errorf("error decoding pet link: %w", err)
		}
		petIDs = append(petIDs, link.PetID)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return petIDs, nil
}

func (repo *MongoBookingRepo) DeleteForSeries(seriesID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := repo.bookingColl.DeleteMany(ctx, bson.M{"recurring_series_id": seriesID}); err != nil {
		return fmt.Errorf("error deleting bookings for series %s: %w", seriesID, err)
	}
	return nil
}
