package models

import (
	"time"

	"inventory-app/types"

	"gorm.io/gorm"
)

type FinishedProduct struct {
	gorm.Model
	PlatingID      uint                `json:"plating_id"`
	AssemblyID     uint                `json:"assembly_id"`
	GroupID        uint                `json:"group_id"`
	ProductName    string              `json:"product_name"`
	ProductCode    string              `json:"product_code"`
	Quantity       int                 `json:"quantity"`
	CompletionDate time.Time           `json:"completion_date"`
	CreatedBy      uint                `json:"created_by"`
	Status         types.ProductStatus `json:"status" gorm:"type:varchar(16);default:in_stock"`
	DefectCount    int                 `json:"defect_count"`
	QRCode         string              `json:"qr_code" gorm:"unique"`
}

// UsableCount is derived, never stored.
func (p *FinishedProduct) UsableCount() int {
	usable := p.Quantity - p.DefectCount
	if usable < 0 {
		return 0
	}
	return usable
}

type QualityCheck struct {
	gorm.Model
	ProductID   uint                 `json:"product_id" gorm:"index"`
	Status      types.QualityVerdict `json:"status" gorm:"type:varchar(8)"`
	DefectCount int                  `json:"defect_count"`
	CheckedBy   uint                 `json:"checked_by"`
	CheckDate   time.Time            `json:"check_date"`
	Notes       string               `json:"notes"`
}
