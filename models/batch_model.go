package models

import (
	"time"

	"inventory-app/types"

	"gorm.io/gorm"
)

type Batch struct {
	gorm.Model
	PartName           string            `json:"part_name"`
	MachineName        string            `json:"machine_name"`
	MoldCode           string            `json:"mold_code"`
	Quantity           int               `json:"quantity"`
	WarehouseEntryTime time.Time         `json:"warehouse_entry_time"`
	Status             types.BatchStatus `json:"status" gorm:"type:varchar(32);default:ungrouped"`
	CreatedBy          uint              `json:"created_by"`
}

type BatchGroup struct {
	gorm.Model
	Reference string             `json:"reference" gorm:"unique"`
	CreatedBy uint               `json:"created_by"`
	Members   []BatchGroupMember `json:"members" gorm:"foreignKey:GroupID"`
}

// A batch may belong to only one group ever, enforced by the unique
// index on BatchID.
type BatchGroupMember struct {
	gorm.Model
	GroupID uint `json:"group_id" gorm:"index"`
	BatchID uint `json:"batch_id" gorm:"uniqueIndex"`
}
