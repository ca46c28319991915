package services

import (
	"time"

	"inventory-app/models"
	"inventory-app/types"

	"gorm.io/gorm"
)

type PlatingService struct {
	DB *gorm.DB
}

func NewPlatingService(db *gorm.DB) *PlatingService {
	return &PlatingService{DB: db}
}

// PlatingPatch carries the optional fields of a plating update. Status
// is deliberately absent: completion only happens through
// CompletePlating so the end time is always stamped with it.
type PlatingPatch struct {
	ProductName *string    `json:"product_name"`
	ProductCode *string    `json:"product_code"`
	Notes       *string    `json:"notes"`
	StartTime   *time.Time `json:"plating_start_time"`
}

func (p PlatingPatch) updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if p.ProductName != nil {
		updates["product_name"] = *p.ProductName
	}
	if p.ProductCode != nil {
		updates["product_code"] = *p.ProductCode
	}
	if p.Notes != nil {
		updates["notes"] = *p.Notes
	}
	if p.StartTime != nil {
		updates["start_time"] = *p.StartTime
	}
	return updates
}

func (s *PlatingService) UpdatePlating(platingID uint, patch PlatingPatch) error {
	updates := patch.updates()
	if len(updates) == 0 {
		return ErrValidation("No fields to update")
	}

	var plating models.Plating
	if err := s.DB.First(&plating, platingID).Error; err != nil {
		return wrapNotFound(err, "Plating record not found")
	}

	if err := s.DB.Model(&plating).Updates(updates).Error; err != nil {
		return ErrStorage(err)
	}
	return nil
}

// CompletePlating is the one-way pending -> completed move; the end time
// is stamped only here.
func (s *PlatingService) CompletePlating(actor types.Actor, platingID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var plating models.Plating
		if err := tx.First(&plating, platingID).Error; err != nil {
			return wrapNotFound(err, "Plating record not found")
		}

		if !plating.Status.CanTransition(types.PlatingCompleted) {
			return ErrConflict("Plating %d is already completed", platingID)
		}

		now := time.Now()
		updates := map[string]interface{}{
			"status":   types.PlatingCompleted,
			"end_time": &now,
		}
		if err := tx.Model(&plating).Updates(updates).Error; err != nil {
			return ErrStorage(err)
		}

		return nil
	})
}

// PlatingView joins plating rows with their assembly context for lists.
type PlatingView struct {
	models.Plating
	GroupID         uint   `json:"group_id"`
	ProductQuantity int    `json:"product_quantity"`
	PicID           uint   `json:"pic_id"`
	PicName         string `json:"pic_name"`
}

func (s *PlatingService) ListPlating() ([]PlatingView, error) {
	var rows []PlatingView
	err := s.DB.Model(&models.Plating{}).
		Select("platings.*, assemblies.group_id, assemblies.product_quantity, assemblies.pic_id, users.username AS pic_name").
		Joins("JOIN assemblies ON assemblies.id = platings.assembly_id").
		Joins("JOIN users ON users.id = assemblies.pic_id").
		Order("platings.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, ErrStorage(err)
	}
	return rows, nil
}

func (s *PlatingService) GetPlating(platingID uint) (*PlatingView, error) {
	var row PlatingView
	err := s.DB.Model(&models.Plating{}).
		Select("platings.*, assemblies.group_id, assemblies.product_quantity, assemblies.pic_id, users.username AS pic_name").
		Joins("JOIN assemblies ON assemblies.id = platings.assembly_id").
		Joins("JOIN users ON users.id = assemblies.pic_id").
		Where("platings.id = ?", platingID).
		First(&row).Error
	if err != nil {
		return nil, wrapNotFound(err, "Plating record not found")
	}
	return &row, nil
}

func (s *PlatingService) GetPlatingByAssembly(assemblyID uint) (*PlatingView, error) {
	var row PlatingView
	err := s.DB.Model(&models.Plating{}).
		Select("platings.*, assemblies.group_id, assemblies.product_quantity, assemblies.pic_id, users.username AS pic_name").
		Joins("JOIN assemblies ON assemblies.id = platings.assembly_id").
		Joins("JOIN users ON users.id = assemblies.pic_id").
		Where("platings.assembly_id = ?", assemblyID).
		First(&row).Error
	if err != nil {
		return nil, wrapNotFound(err, "No plating record found for this assembly")
	}
	return &row, nil
}
