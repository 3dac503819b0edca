package policyRepo

import (
	"context"
	"fmt"
	"time"

	"pawcare/database"
	"pawcare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoPolicyRepo implements PolicyRepository using MongoDB.
type MongoPolicyRepo struct {
	coll *mongo.Collection
}

// NewMongoPolicyRepo constructs a new instance of MongoPolicyRepo.
func NewMongoPolicyRepo() PolicyRepository {
	return &MongoPolicyRepo{
		coll: database.DB().Collection("cancellation_policies"),
	}
}

func (repo *MongoPolicyRepo) GetByID(policyID string) (*models.CancellationPolicy, error) {
	return repo.findOne(bson.M{"id": policyID})
}

func (repo *MongoPolicyRepo) GetByName(name string) (*models.CancellationPolicy, error) {
	return repo.findOne(bson.M{"name": name})
}

func (repo *MongoPolicyRepo) findOne(filter bson.M) (*models.CancellationPolicy, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var policy models.CancellationPolicy
	if err := repo.coll.FindOne(ctx, filter).Decode(&policy); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching cancellation policy: %w", err)
	}
	return &policy, nil
}

func (repo *MongoPolicyRepo) List() ([]models.CancellationPolicy, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error listing cancellation policies: %w", err)
	}
	defer cursor.Close(ctx)

	var policies []models.CancellationPolicy
	for cursor.Next(ctx) {
		var p models.CancellationPolicy
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("error decoding cancellation policy: %w", err)
		}
		policies = append(policies, p)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return policies, nil
}
