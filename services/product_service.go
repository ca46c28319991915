package services

import (
	"fmt"
	"time"

	"inventory-app/controllers/idgen"
	"inventory-app/models"
	"inventory-app/types"

	"gorm.io/gorm"
)

type ProductService struct {
	DB *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{DB: db}
}

type FinishedProductInput struct {
	PlatingID   uint   `json:"plating_id" validate:"required"`
	AssemblyID  uint   `json:"assembly_id" validate:"required"`
	GroupID     uint   `json:"group_id" validate:"required"`
	ProductName string `json:"product_name" validate:"required"`
	ProductCode string `json:"product_code" validate:"required"`
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
}

// CreateFinishedProduct closes the plating stage into a stock record.
// Every pipeline reference must be present before anything is written.
func (s *ProductService) CreateFinishedProduct(actor types.Actor, input FinishedProductInput) (*models.FinishedProduct, error) {
	product := models.FinishedProduct{
		PlatingID:      input.PlatingID,
		AssemblyID:     input.AssemblyID,
		GroupID:        input.GroupID,
		ProductName:    input.ProductName,
		ProductCode:    input.ProductCode,
		Quantity:       input.Quantity,
		CompletionDate: time.Now(),
		CreatedBy:      actor.ID,
		Status:         types.ProductInStock,
		QRCode:         idgen.GenerateCode("FP"),
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var plating models.Plating
		if err := tx.First(&plating, input.PlatingID).Error; err != nil {
			return wrapNotFound(err, "Plating record not found")
		}

		if err := tx.Create(&product).Error; err != nil {
			return ErrStorage(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &product, nil
}

// QualityCheckInput is the inspector's verdict. DefectCount is a pointer
// so "absent" and "zero" are distinguishable: NG requires a count.
type QualityCheckInput struct {
	Verdict     string `json:"status"`
	DefectCount *int   `json:"defect_count"`
}

// RecordQualityCheck validates the verdict fully before the transaction
// opens, then updates the product's stored status and appends a history
// row atomically.
func (s *ProductService) RecordQualityCheck(actor types.Actor, productID uint, input QualityCheckInput) (*models.QualityCheck, error) {
	verdict := types.QualityVerdict(input.Verdict)
	if !verdict.Valid() {
		return nil, ErrValidation("Status must be either OK or NG")
	}

	var product models.FinishedProduct
	if err := s.DB.First(&product, productID).Error; err != nil {
		return nil, wrapNotFound(err, "Product not found")
	}

	defectCount := 0
	if verdict == types.VerdictNG {
		if input.DefectCount == nil {
			return nil, ErrValidation("Defect count is required when status is NG")
		}
		defectCount = *input.DefectCount
		if defectCount < 0 {
			return nil, ErrValidation("Defect count must be a non-negative number")
		}
		if defectCount > product.Quantity {
			return nil, ErrValidation("Defect count cannot exceed total quantity")
		}
	}

	notes := fmt.Sprintf("Quality check by %s: %s", actor.Username, verdict)
	if verdict == types.VerdictNG {
		notes = fmt.Sprintf("%s - %d defective units", notes, defectCount)
	}

	check := models.QualityCheck{
		ProductID:   product.ID,
		Status:      verdict,
		DefectCount: defectCount,
		CheckedBy:   actor.ID,
		CheckDate:   time.Now(),
		Notes:       notes,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		productStatus := types.ProductInStock
		if verdict == types.VerdictNG {
			productStatus = types.ProductDefective
		}

		updates := map[string]interface{}{
			"status":       productStatus,
			"defect_count": defectCount,
		}
		if err := tx.Model(&product).Updates(updates).Error; err != nil {
			return ErrStorage(err)
		}

		if err := tx.Create(&check).Error; err != nil {
			return ErrStorage(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &check, nil
}

// The display status when no check exists yet.
const QualityPending = "Pending"

// ProductView decorates a finished product with its derived quality
// fields: the latest check wins, and usable count is always recomputed.
type ProductView struct {
	models.FinishedProduct
	QualityStatus string `json:"quality_status"`
	InspectorID   uint   `json:"inspector_id,omitempty"`
	UsableCount   int    `json:"usable_count"`
}

func (s *ProductService) decorate(products []models.FinishedProduct) ([]ProductView, error) {
	ids := make([]uint, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}

	// Latest check per product, resolved in memory; check volumes are
	// small and this stays portable across drivers.
	latest := make(map[uint]models.QualityCheck)
	if len(ids) > 0 {
		var checks []models.QualityCheck
		if err := s.DB.Where("product_id IN ?", ids).Order("check_date, id").Find(&checks).Error; err != nil {
			return nil, ErrStorage(err)
		}
		for _, c := range checks {
			latest[c.ProductID] = c
		}
	}

	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		view := ProductView{
			FinishedProduct: p,
			QualityStatus:   QualityPending,
			UsableCount:     p.UsableCount(),
		}
		if c, ok := latest[p.ID]; ok {
			view.QualityStatus = string(c.Status)
			view.InspectorID = c.CheckedBy
			view.DefectCount = c.DefectCount
			usable := p.Quantity - c.DefectCount
			if usable < 0 {
				usable = 0
			}
			view.UsableCount = usable
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *ProductService) ListFinishedProducts() ([]ProductView, error) {
	var products []models.FinishedProduct
	if err := s.DB.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, ErrStorage(err)
	}
	return s.decorate(products)
}

// ProductHistory bundles the full pipeline trail behind one product.
type ProductHistory struct {
	Assembly      *models.Assembly      `json:"assembly"`
	Plating       *models.Plating       `json:"plating"`
	Batches       []models.Batch        `json:"batches"`
	QualityChecks []models.QualityCheck `json:"quality_checks"`
}

func (s *ProductService) GetFinishedProduct(productID uint) (*ProductView, *ProductHistory, error) {
	var product models.FinishedProduct
	if err := s.DB.First(&product, productID).Error; err != nil {
		return nil, nil, wrapNotFound(err, "Finished product not found")
	}

	views, err := s.decorate([]models.FinishedProduct{product})
	if err != nil {
		return nil, nil, err
	}

	history := ProductHistory{}

	var assembly models.Assembly
	if err := s.DB.First(&assembly, product.AssemblyID).Error; err == nil {
		history.Assembly = &assembly
	}

	var plating models.Plating
	if err := s.DB.First(&plating, product.PlatingID).Error; err == nil {
		history.Plating = &plating
	}

	s.DB.Joins("JOIN batch_group_members ON batch_group_members.batch_id = batches.id").
		Where("batch_group_members.group_id = ?", product.GroupID).
		Find(&history.Batches)

	if err := s.DB.Where("product_id = ?", product.ID).
		Order("check_date DESC").Find(&history.QualityChecks).Error; err != nil {
		return nil, nil, ErrStorage(err)
	}

	return &views[0], &history, nil
}
