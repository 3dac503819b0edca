package notificationRepo

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

// MongoNotificationRepo implements NotificationRepository using MongoDB.
type MongoNotificationRepo struct {
	coll *mongo.Collection
}

// NewMongoNotificationRepo constructs a new instance of MongoNotificationRepo.
func NewMongoNotificationRepo() NotificationRepository {
	return &MongoNotificationRepo{
		coll: database.DB().Collection("notifications"),
	}
}

func (repo *MongoNotificationRepo) Create(notification *models.Notification) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, notification); err != nil {
		return fmt.Errorf("error inserting notification: %w", err)
	}
	return nil
}

func (repo *MongoNotificationRepo) ListForRecipient(recipientID string, limit int64) ([]models.Notification, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	cursor, err := repo.coll.Find(ctx, bson.M{"recipient_id": recipientID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing notifications for %s: %w", recipientID, err)
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	for cursor.Next(ctx) {
		var n models.Notification
		if err := cursor.Decode(&n); err != nil {
			return nil, fmt.Errorf("error decoding notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return notifications, nil
}

func (repo *MongoNotificationRepo) MarkRead(notificationID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"id": notificationID}
	update := bson.M{"$set": bson.M{"is_read": true}}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error marking notification %s read: %w", notificationID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("notification %s not found", notificationID)
	}
	return nil
}

func (repo *MongoNotificationRepo) CountUnread(recipientID string) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := repo.coll.CountDocuments(ctx, bson.M{"recipient_id": recipientID, "is_read": false})
	if err != nil {
		return 0, fmt.Errorf("error counting unread notifications for %s: %w", recipientID, err)
	}
	return count, nil
}
