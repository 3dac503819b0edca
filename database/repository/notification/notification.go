package notificationRepo

import "pawcare/models"

// NotificationRepository defines data access for the in-app notification feed.
type NotificationRepository interface {
	Create(notification *models.Notification) error
	ListForRecipient(recipientID string, limit int64) ([]models.Notification, error)
	MarkRead(notificationID string) error
	CountUnread(recipientID string) (int64, error)
}
