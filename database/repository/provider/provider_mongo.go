package providerRepo

import (
	"context"
	"fmt"
	"time"

	"pawcare/database"
	"pawcare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoProviderRepo implements ProviderRepository using MongoDB.
type MongoProviderRepo struct {
	coll *mongo.Collection
}

// NewMongoProviderRepo constructs a new instance of MongoProviderRepo.
func NewMongoProviderRepo() ProviderRepository {
	return &MongoProviderRepo{
		coll: database.DB().Collection("providers"),
	}
}

func (repo *MongoProviderRepo) Create(provider *models.Provider) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, provider); err != nil {
		return fmt.Errorf("error inserting provider: %w", err)
	}
	return nil
}

func (repo *MongoProviderRepo) GetByID(providerID string) (*models.Provider, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var provider models.Provider
	if err := repo.coll.FindOne(ctx, bson.M{"id": providerID}).Decode(&provider); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching provider with id %s: %w", providerID, err)
	}
	return &provider, nil
}

func (repo *MongoProviderRepo) Search(q SearchQuery) ([]models.Provider, error) {
	filter := bson.M{"is_active": true}
	if q.ServiceType != "" {
		filter["service_types"] = q.ServiceType
	}
	if q.City != "" {
		filter["city"] = q.City
	}
	if q.NameQuery != "" {
		filter["name"] = bson.M{"$regex": primitive.Regex{Pattern: q.NameQuery, Options: "i"}}
	}
	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}})
	return repo.find(filter, opts)
}

func (repo *MongoProviderRepo) List() ([]models.Provider, error) {
	return repo.find(bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
}

func (repo *MongoProviderRepo) find(filter bson.M, opts *options.FindOptions) ([]models.Provider, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding providers: %w", err)
	}
	defer cursor.Close(ctx)

	var providers []models.Provider
	for cursor.Next(ctx) {
		var p models.Provider
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("error decoding provider: %w", err)
		}
		providers = append(providers, p)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return providers, nil
}

func (repo *MongoProviderRepo) SetActive(providerID string, active bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"id": providerID}
	update := bson.M{"$set": bson.M{"is_active": active}}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error updating provider %s active flag: %w", providerID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("provider %s not found", providerID)
	}
	return nil
}
