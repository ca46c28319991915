package models

import (
	"time"

	"inventory-app/types"

	"gorm.io/gorm"
)

// Assembly is derived from exactly one batch group. PIC is the person in
// charge of the assembly run.
type Assembly struct {
	gorm.Model
	GroupID         uint                 `json:"group_id" gorm:"uniqueIndex"`
	PicID           uint                 `json:"pic_id"`
	StartTime       time.Time            `json:"start_time"`
	CompletionTime  *time.Time           `json:"completion_time"`
	ProductQuantity int                  `json:"product_quantity"`
	ProductName     string               `json:"product_name"`
	ProductCode     string               `json:"product_code"`
	Notes           string               `json:"notes"`
	Status          types.AssemblyStatus `json:"status" gorm:"type:varchar(16);default:processing"`
}
