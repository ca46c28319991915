package services

import (
	"encoding/json"
	"fmt"
	"time"

	"inventory-app/controllers/idgen"
	"inventory-app/models"
	"inventory-app/types"

	"gorm.io/gorm"
)

type BatchService struct {
	DB *gorm.DB
}

func NewBatchService(db *gorm.DB) *BatchService {
	return &BatchService{DB: db}
}

type BatchInput struct {
	PartName           string    `json:"part_name" validate:"required"`
	MachineName        string    `json:"machine_name" validate:"required"`
	MoldCode           string    `json:"mold_code" validate:"required"`
	Quantity           int       `json:"quantity" validate:"required,gt=0"`
	WarehouseEntryTime time.Time `json:"warehouse_entry_time" validate:"required"`
}

// CreateBatch registers a raw production batch and fans out a
// notification to every privileged user.
func (s *BatchService) CreateBatch(actor types.Actor, input BatchInput) (*models.Batch, error) {
	batch := models.Batch{
		PartName:           input.PartName,
		MachineName:        input.MachineName,
		MoldCode:           input.MoldCode,
		Quantity:           input.Quantity,
		WarehouseEntryTime: input.WarehouseEntryTime,
		Status:             types.BatchUngrouped,
		CreatedBy:          actor.ID,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&batch).Error; err != nil {
			return ErrStorage(err)
		}

		message := fmt.Sprintf("New batch created: %s (%d units)", batch.PartName, batch.Quantity)
		if err := notifyPrivileged(tx, message, "system"); err != nil {
			return ErrStorage(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &batch, nil
}

// GroupBatches bundles ungrouped batches into a new group as one
// all-or-nothing unit. If any batch is already grouped the whole
// operation is rejected naming the conflicting batch.
func (s *BatchService) GroupBatches(actor types.Actor, batchIDs []uint, statusLabel string) (*models.BatchGroup, error) {
	if len(batchIDs) == 0 {
		return nil, ErrValidation("Invalid batch IDs")
	}

	target := types.BatchGrouped
	if statusLabel != "" {
		parsed, err := types.ParseBatchStatus(statusLabel)
		if err != nil {
			return nil, ErrValidation("Invalid target status %q", statusLabel)
		}
		target = parsed
	}
	if target != types.BatchGrouped {
		return nil, ErrValidation("Grouping may only move batches to %q", types.BatchGrouped)
	}

	group := models.BatchGroup{
		Reference: idgen.GenerateCode("GRP"),
		CreatedBy: actor.ID,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var batches []models.Batch
		if err := tx.Where("id IN ?", batchIDs).Find(&batches).Error; err != nil {
			return ErrStorage(err)
		}

		if len(batches) != len(batchIDs) {
			found := make(map[uint]bool, len(batches))
			for _, b := range batches {
				found[b.ID] = true
			}
			for _, id := range batchIDs {
				if !found[id] {
					return ErrNotFound("Batch %d not found", id)
				}
			}
		}

		for _, b := range batches {
			if b.Status == types.BatchGrouped {
				return ErrConflict("Batch %q has already been grouped", b.PartName)
			}
			if !b.Status.CanTransition(types.BatchGrouped) {
				return ErrConflict("Batch %q cannot be grouped from status %q", b.PartName, b.Status)
			}
		}

		if err := tx.Create(&group).Error; err != nil {
			return ErrStorage(err)
		}

		for _, b := range batches {
			member := models.BatchGroupMember{GroupID: group.ID, BatchID: b.ID}
			if err := tx.Create(&member).Error; err != nil {
				return ErrStorage(err)
			}

			if err := tx.Model(&models.Batch{}).Where("id = ?", b.ID).
				Update("status", types.BatchGrouped).Error; err != nil {
				return ErrStorage(err)
			}
		}

		details, _ := json.Marshal(map[string]interface{}{
			"batch_ids": batchIDs,
			"group_id":  group.ID,
		})
		logEntry := models.ActivityLog{
			UserID:        actor.ID,
			ActionType:    "BATCH_GROUP",
			ActionDetails: string(details),
			ActionTarget:  "batches",
		}
		if err := tx.Create(&logEntry).Error; err != nil {
			return ErrStorage(err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &group, nil
}

// UpdateBatchStatus moves a single batch along the transition table.
func (s *BatchService) UpdateBatchStatus(actor types.Actor, batchID uint, statusLabel string) error {
	target, err := types.ParseBatchStatus(statusLabel)
	if err != nil {
		return ErrValidation("Invalid batch status %q", statusLabel)
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var batch models.Batch
		if err := tx.First(&batch, batchID).Error; err != nil {
			return wrapNotFound(err, "Batch not found")
		}

		if !batch.Status.CanTransition(target) {
			return ErrConflict("Batch %q cannot move from %q to %q", batch.PartName, batch.Status, target)
		}

		if err := tx.Model(&batch).Update("status", target).Error; err != nil {
			return ErrStorage(err)
		}

		details, _ := json.Marshal(map[string]interface{}{
			"batch_id":   batchID,
			"new_status": target,
		})
		logEntry := models.ActivityLog{
			UserID:        actor.ID,
			ActionType:    "BATCH_STATUS_UPDATE",
			ActionDetails: string(details),
			ActionTarget:  "batches",
		}
		if err := tx.Create(&logEntry).Error; err != nil {
			return ErrStorage(err)
		}

		return nil
	})
}

// GroupedBatch is a batch row joined with its group id for list views.
type GroupedBatch struct {
	models.Batch
	GroupID uint `json:"group_id"`
}

func (s *BatchService) ListGrouped() ([]GroupedBatch, error) {
	var rows []GroupedBatch
	err := s.DB.Model(&models.Batch{}).
		Select("batches.*, batch_group_members.group_id").
		Joins("JOIN batch_group_members ON batch_group_members.batch_id = batches.id").
		Where("batches.status = ?", types.BatchGrouped).
		Order("batch_group_members.group_id, batches.id").
		Scan(&rows).Error
	if err != nil {
		return nil, ErrStorage(err)
	}
	return rows, nil
}

func (s *BatchService) GroupMembers(groupID uint) ([]models.Batch, error) {
	var batches []models.Batch
	err := s.DB.
		Joins("JOIN batch_group_members ON batch_group_members.batch_id = batches.id").
		Where("batch_group_members.group_id = ?", groupID).
		Find(&batches).Error
	if err != nil {
		return nil, ErrStorage(err)
	}
	return batches, nil
}
