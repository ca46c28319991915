package models

import (
	"time"

	"inventory-app/types"

	"gorm.io/gorm"
)

type Plating struct {
	gorm.Model
	AssemblyID  uint                `json:"assembly_id" gorm:"index"`
	ProductName string              `json:"product_name"`
	ProductCode string              `json:"product_code"`
	Notes       string              `json:"notes"`
	StartTime   time.Time           `json:"plating_start_time"`
	EndTime     *time.Time          `json:"plating_end_time"`
	Status      types.PlatingStatus `json:"status" gorm:"type:varchar(16);default:pending"`
}
