package userRepo

import (
	"context"
	"fmt"
	"time"

	"pawcare/database"
	"pawcare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo constructs a new instance of MongoUserRepo.
func NewMongoUserRepo() UserRepository {
	return &MongoUserRepo{
		coll: database.DB().Collection("users"),
	}
}

func (repo *MongoUserRepo) Create(user *models.User) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("error inserting user: %w", err)
	}
	return nil
}

func (repo *MongoUserRepo) GetByID(userID string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var user models.User
	if err := repo.coll.FindOne(ctx, bson.M{"id": userID}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching user with id %s: %w", userID, err)
	}
	return &user, nil
}

func (repo *MongoUserRepo) List() ([]models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	for cursor.Next(ctx) {
		var u models.User
		if err := cursor.Decode(&u); err != nil {
			return nil, fmt.Errorf("error decoding user: %w", err)
		}
		users = append(users, u)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return users, nil
}
