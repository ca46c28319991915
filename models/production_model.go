package models

import (
	"time"

	"inventory-app/types"

	"gorm.io/gorm"
)

type Machine struct {
	gorm.Model
	Name   string              `json:"name" gorm:"unique"`
	Status types.MachineStatus `json:"status" gorm:"type:varchar(16);default:stopping"`
}

type Mold struct {
	gorm.Model
	Code string `json:"code" gorm:"unique"`
}

// ProductionRun is one machine/mold stamping run consuming a material.
type ProductionRun struct {
	gorm.Model
	MaterialID     uint            `json:"material_id"`
	MachineID      uint            `json:"machine_id"`
	MoldID         uint            `json:"mold_id"`
	CreatedBy      uint            `json:"created_by"`
	Status         types.RunStatus `json:"status" gorm:"type:varchar(16);default:running"`
	ExpectedOutput int             `json:"expected_output"`
	ActualOutput   int             `json:"actual_output"`
	StartDate      time.Time       `json:"start_date"`
	EndDate        *time.Time      `json:"end_date"`
	IsHidden       bool            `json:"is_hidden" gorm:"default:false"`
}

type MachineStopLog struct {
	gorm.Model
	MachineID uint   `json:"machine_id"`
	Reason    string `json:"reason"`
	StopTime  string `json:"stop_time"`
	StopDate  string `json:"stop_date"`
	UserID    uint   `json:"user_id"`
}
