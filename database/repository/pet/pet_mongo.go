package petRepo

import (
	"context"
	"fmt"
	"time"

	"pawcare/database"
	"pawcare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoPetRepo implements PetRepository using MongoDB.
type MongoPetRepo struct {
	coll *mongo.Collection
}

// NewMongoPetRepo constructs a new instance of MongoPetRepo.
func NewMongoPetRepo() PetRepository {
	return &MongoPetRepo{
		coll: database.DB().Collection("pets"),
	}
}

func (repo *MongoPetRepo) Create(pet *models.Pet) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, pet); err != nil {
		return fmt.Errorf("error inserting pet: %w", err)
	}
	return nil
}

func (repo *MongoPetRepo) GetByID(petID string) (*models.Pet, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var pet models.Pet
	if err := repo.coll.FindOne(ctx, bson.M{"id": petID}).Decode(&pet); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching pet with id %s: %w", petID, err)
	}
	return &pet, nil
}

func (repo *MongoPetRepo) ListForOwner(ownerID string) ([]models.Pet, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return nil, fmt.Errorf("error listing pets for owner %s: %w", ownerID, err)
	}
	defer cursor.Close(ctx)

	var pets []models.Pet
	for cursor.Next(ctx) {
		var p models.Pet
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("error decoding pet: %w", err)
		}
		pets = append(pets, p)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return pets, nil
}
