package services

import (
	"time"

	"inventory-app/models"
	"inventory-app/types"

	"gorm.io/gorm"
)

type ProductionService struct {
	DB *gorm.DB
}

func NewProductionService(db *gorm.DB) *ProductionService {
	return &ProductionService{DB: db}
}

// RunView joins a production run with the names behind its foreign keys.
type RunView struct {
	models.ProductionRun
	MaterialName      string `json:"material_name"`
	MachineName       string `json:"machine_name"`
	MoldCode          string `json:"mold_code"`
	CreatedByUsername string `json:"created_by_username"`
}

func (s *ProductionService) runQuery() *gorm.DB {
	return s.DB.Model(&models.ProductionRun{}).
		Select(`production_runs.*,
			materials.part_name AS material_name,
			machines.name AS machine_name,
			molds.code AS mold_code,
			users.username AS created_by_username`).
		Joins("LEFT JOIN materials ON materials.id = production_runs.material_id").
		Joins("LEFT JOIN machines ON machines.id = production_runs.machine_id").
		Joins("LEFT JOIN molds ON molds.id = production_runs.mold_id").
		Joins("LEFT JOIN users ON users.id = production_runs.created_by")
}

// ListRuns returns visible runs, optionally filtered by status. Archived
// runs stay hidden from every listing.
func (s *ProductionService) ListRuns(status string) ([]RunView, error) {
	query := s.runQuery().
		Where("production_runs.is_hidden = ?", false).
		Order("production_runs.created_at DESC")

	if status != "" && status != "all" {
		query = query.Where("production_runs.status = ?", status)
	}

	var rows []RunView
	if err := query.Scan(&rows).Error; err != nil {
		return nil, ErrStorage(err)
	}
	return rows, nil
}

func (s *ProductionService) GetRun(id uint) (*RunView, error) {
	var row RunView
	if err := s.runQuery().Where("production_runs.id = ?", id).First(&row).Error; err != nil {
		return nil, wrapNotFound(err, "Production run not found")
	}
	return &row, nil
}

type RunInput struct {
	MaterialID     uint `json:"material_id"`
	MachineID      uint `json:"machine_id"`
	MoldID         uint `json:"mold_id"`
	ExpectedOutput int  `json:"expected_output"`
}

// CreateRun starts a stamping run and flips the machine to running in the
// same transaction.
func (s *ProductionService) CreateRun(actor types.Actor, input RunInput) (*RunView, error) {
	if input.MaterialID == 0 || input.MachineID == 0 || input.MoldID == 0 {
		return nil, ErrValidation("Material, machine, and mold are required")
	}

	run := models.ProductionRun{
		MaterialID:     input.MaterialID,
		MachineID:      input.MachineID,
		MoldID:         input.MoldID,
		CreatedBy:      actor.ID,
		Status:         types.RunRunning,
		ExpectedOutput: input.ExpectedOutput,
		StartDate:      time.Now(),
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var material models.Material
		if err := tx.First(&material, input.MaterialID).Error; err != nil {
			return wrapNotFound(err, "Material not found")
		}
		var machine models.Machine
		if err := tx.First(&machine, input.MachineID).Error; err != nil {
			return wrapNotFound(err, "Machine not found")
		}
		var mold models.Mold
		if err := tx.First(&mold, input.MoldID).Error; err != nil {
			return wrapNotFound(err, "Mold not found")
		}

		if err := tx.Create(&run).Error; err != nil {
			return ErrStorage(err)
		}

		if err := tx.Model(&machine).Update("status", types.MachineRunning).Error; err != nil {
			return ErrStorage(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetRun(run.ID)
}

type RunPatch struct {
	Status       *string `json:"status"`
	ActualOutput *int    `json:"actual_output"`
}

// UpdateRun adjusts a run's status or output count. Stopping stamps the
// end date and stops the machine, resuming clears the end date and
// restarts it.
func (s *ProductionService) UpdateRun(runID uint, patch RunPatch) (*RunView, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var run models.ProductionRun
		if err := tx.First(&run, runID).Error; err != nil {
			return wrapNotFound(err, "Production run not found")
		}

		updates := map[string]interface{}{}
		if patch.ActualOutput != nil {
			if *patch.ActualOutput < 0 {
				return ErrValidation("Actual output cannot be negative")
			}
			updates["actual_output"] = *patch.ActualOutput
		}

		machineStatus := types.MachineStatus("")
		if patch.Status != nil {
			status := types.RunStatus(*patch.Status)
			if status != types.RunRunning && status != types.RunStopping {
				return ErrValidation("Invalid production status %q", *patch.Status)
			}
			updates["status"] = status

			if status == types.RunStopping && run.Status != types.RunStopping {
				now := time.Now()
				updates["end_date"] = &now
				machineStatus = types.MachineStopping
			} else if status == types.RunRunning && run.Status == types.RunStopping {
				updates["end_date"] = nil
				machineStatus = types.MachineRunning
			}
		}

		if len(updates) == 0 {
			return nil
		}

		if err := tx.Model(&run).Updates(updates).Error; err != nil {
			return ErrStorage(err)
		}

		if machineStatus != "" {
			if err := tx.Model(&models.Machine{}).Where("id = ?", run.MachineID).
				Update("status", machineStatus).Error; err != nil {
				return ErrStorage(err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetRun(runID)
}

// ArchiveRun hides a run from listings, stopping it and its machine if
// it was still running.
func (s *ProductionService) ArchiveRun(runID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var run models.ProductionRun
		if err := tx.First(&run, runID).Error; err != nil {
			return wrapNotFound(err, "Production run not found")
		}

		now := time.Now()
		updates := map[string]interface{}{
			"status":    types.RunStopping,
			"end_date":  &now,
			"is_hidden": true,
		}
		if err := tx.Model(&run).Updates(updates).Error; err != nil {
			return ErrStorage(err)
		}

		if run.Status == types.RunRunning {
			if err := tx.Model(&models.Machine{}).Where("id = ?", run.MachineID).
				Update("status", types.MachineStopping).Error; err != nil {
				return ErrStorage(err)
			}
		}
		return nil
	})
}

// StopMachine records the stop reason and flips the machine status.
func (s *ProductionService) StopMachine(actor types.Actor, machineID uint, reason, stopTime, stopDate string) error {
	if reason == "" {
		return ErrValidation("Reason is required")
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var machine models.Machine
		if err := tx.First(&machine, machineID).Error; err != nil {
			return wrapNotFound(err, "Machine not found")
		}

		stopLog := models.MachineStopLog{
			MachineID: machineID,
			Reason:    reason,
			StopTime:  stopTime,
			StopDate:  stopDate,
			UserID:    actor.ID,
		}
		if err := tx.Create(&stopLog).Error; err != nil {
			return ErrStorage(err)
		}

		if err := tx.Model(&machine).Update("status", types.MachineStopping).Error; err != nil {
			return ErrStorage(err)
		}
		return nil
	})
}
