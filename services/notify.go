package services

import (
	"inventory-app/models"
	"inventory-app/utils"

	"gorm.io/gorm"
)

// notifyPrivileged inserts one notification row per admin/manager user.
func notifyPrivileged(tx *gorm.DB, message string, notificationType string) error {
	var admins []models.User
	if err := tx.Where("role = ? OR role = ?", models.RoleAdmin, models.RoleManager).Find(&admins).Error; err != nil {
		return err
	}

	for _, admin := range admins {
		notification := models.Notification{
			UserID:           admin.ID,
			Message:          message,
			NotificationType: notificationType,
		}
		if err := tx.Create(&notification).Error; err != nil {
			return err
		}
	}

	return nil
}

func notifyUser(tx *gorm.DB, userID uint, requestID *uint, message string, notificationType string) error {
	notification := models.Notification{
		UserID:           userID,
		RelatedRequestID: requestID,
		Message:          message,
		NotificationType: notificationType,
	}
	return tx.Create(&notification).Error
}

// mailAdmins sends a best-effort email to privileged users that have an
// address on file. Delivery failure never fails the request.
func mailAdmins(db *gorm.DB, subject string, body string) {
	var admins []models.User
	if err := db.Where("(role = ? OR role = ?) AND email <> ''", models.RoleAdmin, models.RoleManager).Find(&admins).Error; err != nil {
		return
	}

	emails := make([]string, 0, len(admins))
	for _, admin := range admins {
		emails = append(emails, admin.Email)
	}

	utils.SendMail(emails, subject, body)
}
