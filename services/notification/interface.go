package notification

import (
	"context"
	"fmt"
	"time"

	notificationRepo "pawcare/database/repository/notification"
	providerRepo "pawcare/database/repository/provider"
	userRepo "pawcare/database/repository/user"
	"pawcare/models"
	"pawcare/utils"

	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NotificationService writes in-app notification rows and pushes them to the
// recipient's device when an FCM token is on file. Push delivery is best
// effort; its failure never fails the calling operation.
type NotificationService interface {
	NotifyUser(userID, notifType, title, message string) error
	NotifyProvider(providerID, notifType, title, message string) error
	Feed(recipientID string, limit int64) ([]models.Notification, error)
	MarkRead(notificationID string) error
	UnreadCount(recipientID string) (int64, error)
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo      notificationRepo.NotificationRepository
	Users     userRepo.UserRepository
	Providers providerRepo.ProviderRepository

	Now func() time.Time
}

func (svc *DefaultNotificationService) now() time.Time {
	if svc.Now != nil {
		return svc.Now()
	}
	return time.Now()
}

func (svc *DefaultNotificationService) NotifyUser(userID, notifType, title, message string) error {
	if err := svc.record(userID, notifType, title, message); err != nil {
		return err
	}
	var token string
	if svc.Users != nil {
		if u, err := svc.Users.GetByID(userID); err == nil && u != nil {
			token = u.FCMToken
		}
	}
	svc.push(token, title, message, map[string]string{"type": notifType, "role": "user"})
	return nil
}

func (svc *DefaultNotificationService) NotifyProvider(providerID, notifType, title, message string) error {
	if err := svc.record(providerID, notifType, title, message); err != nil {
		return err
	}
	var token string
	if svc.Providers != nil {
		if p, err := svc.Providers.GetByID(providerID); err == nil && p != nil {
			token = p.FCMToken
		}
	}
	svc.push(token, title, message, map[string]string{"type": notifType, "role": "provider"})
	return nil
}

func (svc *DefaultNotificationService) record(recipientID, notifType, title, message string) error {
	n := &models.Notification{
		ID:          uuid.New().String(),
		RecipientID: recipientID,
		Type:        notifType,
		Title:       title,
		Message:     message,
		IsRead:      false,
		CreatedAt:   svc.now(),
	}
	if err := svc.Repo.Create(n); err != nil {
		return fmt.Errorf("failed to record notification for %s: %w", recipientID, err)
	}
	return nil
}

// push sends an FCM message if push dispatch is configured and the recipient
// has a token.
func (svc *DefaultNotificationService) push(token, title, body string, data map[string]string) {
	if utils.FCMClient == nil || token == "" {
		return
	}
	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		utils.GetLogger().Warn("failed to send push notification", zap.Error(err))
	}
}

func (svc *DefaultNotificationService) Feed(recipientID string, limit int64) ([]models.Notification, error) {
	return svc.Repo.ListForRecipient(recipientID, limit)
}

func (svc *DefaultNotificationService) MarkRead(notificationID string) error {
	return svc.Repo.MarkRead(notificationID)
}

func (svc *DefaultNotificationService) UnreadCount(recipientID string) (int64, error) {
	return svc.Repo.CountUnread(recipientID)
}
