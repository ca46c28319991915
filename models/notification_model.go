package models

import "gorm.io/gorm"

type Notification struct {
	gorm.Model
	UserID           uint   `json:"user_id" gorm:"index"`
	RelatedRequestID *uint  `json:"related_request_id"`
	Message          string `json:"message"`
	NotificationType string `json:"notification_type" gorm:"default:system"`
	IsRead           bool   `json:"is_read" gorm:"default:false"`
}
