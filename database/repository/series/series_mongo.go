package seriesRepo

import (
	"context"
	"fmt"
	"time"

	"pawcare/database"
	"pawcare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoSeriesRepo implements SeriesRepository using MongoDB.
type MongoSeriesRepo struct {
	coll *mongo.Collection
}

// NewMongoSeriesRepo constructs a new instance of MongoSeriesRepo.
func NewMongoSeriesRepo() SeriesRepository {
	return &MongoSeriesRepo{
		coll: database.DB().Collection("recurring_series"),
	}
}

func (repo *MongoSeriesRepo) Create(series *models.RecurringSeries) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, series); err != nil {
		return fmt.Errorf("error inserting recurring series: %w", err)
	}
	return nil
}

func (repo *MongoSeriesRepo) GetByID(seriesID string) (*models.RecurringSeries, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var series models.RecurringSeries
	filter := bson.M{"id": seriesID}
	if err := repo.coll.FindOne(ctx, filter).Decode(&series); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching series with id %s: %w", seriesID, err)
	}
	return &series, nil
}

func (repo *MongoSeriesRepo) ListActive() ([]models.RecurringSeries, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{"is_active": true})
	if err != nil {
		return nil, fmt.Errorf("error listing active series: %w", err)
	}
	defer cursor.Close(ctx)

	var result []models.RecurringSeries
	for cursor.Next(ctx) {
		var s models.RecurringSeries
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("error decoding series: %w", err)
		}
		result = append(result, s)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return result, nil
}

func (repo *MongoSeriesRepo) IncrementOccurrences(seriesID string, by int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"id": seriesID}
	update := bson.M{"$inc": bson.M{"occurrences_created": by}}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error incrementing occurrences for series %s: %w", seriesID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("series %s not found", seriesID)
	}
	return nil
}

func (repo *MongoSeriesRepo) SetInactive(seriesID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"id": seriesID}
	update := bson.M{"$set": bson.M{"is_active": false}}
	if _, err := repo.coll.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("error deactivating series %s: %w", seriesID, err)
	}
	return nil
}

func (repo *MongoSeriesRepo) Delete(seriesID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.DeleteOne(ctx, bson.M{"id": seriesID}); err != nil {
		return fmt.Errorf("error deleting series %s: %w", seriesID, err)
	}
	return nil
}
