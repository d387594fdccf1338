package services

import (
	"errors"
	"time"

	"github.com/vReis72/nutri-vita-plan-sub000/config"
	"github.com/vReis72/nutri-vita-plan-sub000/models"
)

func CreateNotification(recipientProfileID uint, title, message string) error {
	notification := models.Notification{
		RecipientID: recipientProfileID,
		Title:       title,
		Message:     message,
		Date:        time.Now(),
	}
	return config.DB.Create(&notification).Error
}

func ListNotifications(recipientProfileID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := config.DB.
		Where("recipient_id = ?", recipientProfileID).
		Order("date DESC").
		Find(&notifications).Error
	return notifications, err
}

// MarkNotificationRead flips the read flag. The recipient filter keeps
// one user from touching another's notifications.
func MarkNotificationRead(recipientProfileID, notificationID uint) error {
	result := config.DB.Model(&models.Notification{}).
		Where("id = ? AND recipient_id = ?", notificationID, recipientProfileID).
		Update("read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected != 1 {
		return errors.New("notification not found")
	}
	return nil
}
