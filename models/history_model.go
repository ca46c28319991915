package models

import "gorm.io/gorm"

// ActivityLog is the audit trail for workflow mutations (grouping,
// status moves). ActionDetails holds a JSON snapshot of the change.
type ActivityLog struct {
	gorm.Model
	UserID        uint   `json:"user_id"`
	ActionType    string `json:"action_type"`
	ActionDetails string `json:"action_details"`
	ActionTarget  string `json:"action_target"`
}
