package services

import (
	"time"

	"inventory-app/models"
	"inventory-app/types"

	"gorm.io/gorm"
)

// workflowTimeLayout is the operator-facing timestamp format used by the
// shop-floor clients: "15:04:05 - 02/01/2006".
const workflowTimeLayout = "15:04:05 - 02/01/2006"

// ParseWorkflowTime parses an operator timestamp. An empty value defaults
// to now; a malformed one is an error rather than silently becoming now,
// so operator typos surface instead of being masked.
func ParseWorkflowTime(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now(), nil
	}
	t, err := time.ParseInLocation(workflowTimeLayout, raw, time.Local)
	if err != nil {
		return time.Time{}, ErrValidation("Invalid timestamp %q, expected HH:MM:SS - DD/MM/YYYY", raw)
	}
	return t, nil
}

type AssemblyService struct {
	DB *gorm.DB
}

func NewAssemblyService(db *gorm.DB) *AssemblyService {
	return &AssemblyService{DB: db}
}

type AssemblyInput struct {
	GroupID         uint   `json:"group_id" validate:"required"`
	PicID           uint   `json:"pic_id" validate:"required"`
	StartTime       string `json:"start_time"`
	CompletionTime  string `json:"completion_time"`
	ProductQuantity int    `json:"product_quantity" validate:"required,gt=0"`
	ProductName     string `json:"product_name"`
	ProductCode     string `json:"product_code"`
	Notes           string `json:"notes"`
}

// CreateAssembly opens the assembly stage for a batch group and moves
// the member batches into processing.
func (s *AssemblyService) CreateAssembly(actor types.Actor, input AssemblyInput) (*models.Assembly, error) {
	startTime, err := ParseWorkflowTime(input.StartTime)
	if err != nil {
		return nil, err
	}

	var completionTime *time.Time
	if input.CompletionTime != "" {
		t, err := ParseWorkflowTime(input.CompletionTime)
		if err != nil {
			return nil, err
		}
		completionTime = &t
	}

	assembly := models.Assembly{
		GroupID:         input.GroupID,
		PicID:           input.PicID,
		StartTime:       startTime,
		CompletionTime:  completionTime,
		ProductQuantity: input.ProductQuantity,
		ProductName:     input.ProductName,
		ProductCode:     input.ProductCode,
		Notes:           input.Notes,
		Status:          types.AssemblyProcessing,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var group models.BatchGroup
		if err := tx.First(&group, input.GroupID).Error; err != nil {
			return wrapNotFound(err, "Batch group not found")
		}

		var existing models.Assembly
		if err := tx.Where("group_id = ?", input.GroupID).First(&existing).Error; err == nil {
			return ErrConflict("Group %d already has an assembly", input.GroupID)
		}

		if err := tx.Create(&assembly).Error; err != nil {
			return ErrStorage(err)
		}

		// Member batches enter processing alongside the assembly.
		var members []models.BatchGroupMember
		if err := tx.Where("group_id = ?", input.GroupID).Find(&members).Error; err != nil {
			return ErrStorage(err)
		}
		for _, m := range members {
			if err := tx.Model(&models.Batch{}).Where("id = ? AND status = ?", m.BatchID, types.BatchGrouped).
				Update("status", types.BatchInProcess).Error; err != nil {
				return ErrStorage(err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &assembly, nil
}

// AssemblyPatch carries the optional fields of an assembly update.
type AssemblyPatch struct {
	PicID           *uint      `json:"pic_id"`
	StartTime       *time.Time `json:"start_time"`
	CompletionTime  *time.Time `json:"completion_time"`
	ProductQuantity *int       `json:"product_quantity"`
	ProductName     *string    `json:"product_name"`
	ProductCode     *string    `json:"product_code"`
	Notes           *string    `json:"notes"`
}

func (p AssemblyPatch) updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if p.PicID != nil {
		updates["pic_id"] = *p.PicID
	}
	if p.StartTime != nil {
		updates["start_time"] = *p.StartTime
	}
	if p.CompletionTime != nil {
		updates["completion_time"] = *p.CompletionTime
	}
	if p.ProductQuantity != nil {
		updates["product_quantity"] = *p.ProductQuantity
	}
	if p.ProductName != nil {
		updates["product_name"] = *p.ProductName
	}
	if p.ProductCode != nil {
		updates["product_code"] = *p.ProductCode
	}
	if p.Notes != nil {
		updates["notes"] = *p.Notes
	}
	return updates
}

func (s *AssemblyService) UpdateAssembly(assemblyID uint, patch AssemblyPatch) error {
	updates := patch.updates()
	if len(updates) == 0 {
		return ErrValidation("No fields to update")
	}

	var assembly models.Assembly
	if err := s.DB.First(&assembly, assemblyID).Error; err != nil {
		return wrapNotFound(err, "Assembly not found")
	}

	if err := s.DB.Model(&assembly).Updates(updates).Error; err != nil {
		return ErrStorage(err)
	}
	return nil
}

// AssemblyView joins an assembly with its group reference and PIC name.
type AssemblyView struct {
	models.Assembly
	GroupReference string `json:"group_reference"`
	PicUsername    string `json:"pic_username"`
	PicFullName    string `json:"pic_full_name"`
}

func (s *AssemblyService) assemblyQuery() *gorm.DB {
	return s.DB.Model(&models.Assembly{}).
		Select(`assemblies.*,
			batch_groups.reference AS group_reference,
			users.username AS pic_username,
			users.full_name AS pic_full_name`).
		Joins("LEFT JOIN batch_groups ON batch_groups.id = assemblies.group_id").
		Joins("LEFT JOIN users ON users.id = assemblies.pic_id")
}

func (s *AssemblyService) ListAssemblies(status string) ([]AssemblyView, error) {
	query := s.assemblyQuery().Order("assemblies.created_at DESC")
	if status != "" && status != "all" {
		query = query.Where("assemblies.status = ?", status)
	}

	var rows []AssemblyView
	if err := query.Scan(&rows).Error; err != nil {
		return nil, ErrStorage(err)
	}
	return rows, nil
}

func (s *AssemblyService) GetAssembly(assemblyID uint) (*AssemblyView, error) {
	var row AssemblyView
	if err := s.assemblyQuery().Where("assemblies.id = ?", assemblyID).First(&row).Error; err != nil {
		return nil, wrapNotFound(err, "Assembly not found")
	}
	return &row, nil
}

func (s *AssemblyService) GetAssemblyByGroup(groupID uint) (*AssemblyView, error) {
	var row AssemblyView
	if err := s.assemblyQuery().Where("assemblies.group_id = ?", groupID).First(&row).Error; err != nil {
		return nil, wrapNotFound(err, "Assembly not found")
	}
	return &row, nil
}

// AssemblyBatches returns the source batches behind an assembly.
func (s *AssemblyService) AssemblyBatches(assemblyID uint) ([]models.Batch, error) {
	var assembly models.Assembly
	if err := s.DB.First(&assembly, assemblyID).Error; err != nil {
		return nil, wrapNotFound(err, "Assembly not found")
	}

	var batches []models.Batch
	err := s.DB.
		Joins("JOIN batch_group_members ON batch_group_members.batch_id = batches.id").
		Where("batch_group_members.group_id = ?", assembly.GroupID).
		Find(&batches).Error
	if err != nil {
		return nil, ErrStorage(err)
	}
	return batches, nil
}

// TransferToPlating closes the assembly stage and opens plating as one
// transaction. The assembly keeps its prior status when anything fails,
// so a retry is safe.
func (s *AssemblyService) TransferToPlating(actor types.Actor, assemblyID uint) (*models.Plating, error) {
	var plating models.Plating

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var assembly models.Assembly
		if err := tx.First(&assembly, assemblyID).Error; err != nil {
			return wrapNotFound(err, "Assembly not found")
		}

		if !assembly.Status.CanTransition(types.AssemblyPlating) {
			return ErrConflict("Assembly %d is already in plating", assemblyID)
		}

		if err := tx.Model(&assembly).Update("status", types.AssemblyPlating).Error; err != nil {
			return ErrStorage(err)
		}

		plating = models.Plating{
			AssemblyID:  assembly.ID,
			ProductName: assembly.ProductName,
			ProductCode: assembly.ProductCode,
			Notes:       assembly.Notes,
			StartTime:   time.Now(),
			Status:      types.PlatingPending,
		}
		if err := tx.Create(&plating).Error; err != nil {
			return ErrStorage(err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &plating, nil
}
