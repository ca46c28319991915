package models

import (
	"encoding/json"
	"time"

	"inventory-app/types"

	"gorm.io/gorm"
)

type Material struct {
	gorm.Model
	PacketNo     string    `json:"packet_no" gorm:"unique"`
	PartName     string    `json:"part_name"`
	MaterialCode string    `json:"material_code"`
	Length       float64   `json:"length"`
	Width        float64   `json:"width"`
	MaterialType string    `json:"material_type"`
	Quantity     int       `json:"quantity"`
	Supplier     string    `json:"supplier"`
	UpdatedBy    string    `json:"updated_by"`
	LastUpdated  time.Time `json:"last_updated"`
}

// MaterialRequest is a pending add/edit/delete proposal against a
// Material, resolved exactly once by an admin.
type MaterialRequest struct {
	gorm.Model
	RequestType  types.RequestType   `json:"request_type" gorm:"type:varchar(16)"`
	MaterialID   *uint               `json:"material_id"`
	RequestData  string              `json:"request_data"`
	UserID       uint                `json:"user_id"`
	Status       types.RequestStatus `json:"status" gorm:"type:varchar(16);default:pending"`
	AdminID      *uint               `json:"admin_id"`
	AdminNotes   string              `json:"admin_notes"`
	ResponseDate *time.Time          `json:"response_date"`
}

// MaterialPayload is the closed shape carried by add and edit requests.
// Delete requests carry no payload, only the material reference.
type MaterialPayload struct {
	PacketNo     string  `json:"packet_no" validate:"required"`
	PartName     string  `json:"part_name" validate:"required"`
	MaterialCode string  `json:"material_code" validate:"required"`
	Length       float64 `json:"length" validate:"required,gt=0"`
	Width        float64 `json:"width" validate:"required,gt=0"`
	MaterialType string  `json:"material_type" validate:"required"`
	Quantity     int     `json:"quantity" validate:"required,gt=0"`
	Supplier     string  `json:"supplier" validate:"required"`
}

// Payload decodes the stored request data. A corrupt blob degrades to an
// empty payload on read paths; write paths validate before storing.
func (r *MaterialRequest) Payload() MaterialPayload {
	var p MaterialPayload
	if r.RequestData == "" {
		return p
	}
	if err := json.Unmarshal([]byte(r.RequestData), &p); err != nil {
		return MaterialPayload{}
	}
	return p
}
