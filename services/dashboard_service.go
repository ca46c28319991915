package services

import (
	"inventory-app/models"

	"gorm.io/gorm"
)

type DashboardService struct {
	DB *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db}
}

type MaterialTypeCount struct {
	PartName string `json:"part_name"`
	Count    int64  `json:"count"`
}

type DashboardData struct {
	TotalMaterials  int64               `json:"total_materials"`
	TotalSuppliers  int64               `json:"total_suppliers"`
	RecentMaterials []models.Material   `json:"recent_materials"`
	MaterialTypes   []MaterialTypeCount `json:"material_types"`
	SystemUsers     int64               `json:"system_users"`
	PendingRequests int64               `json:"pending_requests"`
	BatchesInStock  int64               `json:"batches_in_stock"`
}

func (s *DashboardService) GetDashboardData() (*DashboardData, error) {
	data := DashboardData{}

	if err := s.DB.Model(&models.Material{}).Count(&data.TotalMaterials).Error; err != nil {
		return nil, ErrStorage(err)
	}

	if err := s.DB.Model(&models.Material{}).Distinct("supplier").Count(&data.TotalSuppliers).Error; err != nil {
		return nil, ErrStorage(err)
	}

	if err := s.DB.Order("id DESC").Limit(5).Find(&data.RecentMaterials).Error; err != nil {
		return nil, ErrStorage(err)
	}

	if err := s.DB.Model(&models.Material{}).
		Select("part_name, COUNT(*) AS count").
		Group("part_name").
		Scan(&data.MaterialTypes).Error; err != nil {
		return nil, ErrStorage(err)
	}

	if err := s.DB.Model(&models.User{}).Count(&data.SystemUsers).Error; err != nil {
		return nil, ErrStorage(err)
	}

	if err := s.DB.Model(&models.MaterialRequest{}).Where("status = ?", "pending").Count(&data.PendingRequests).Error; err != nil {
		return nil, ErrStorage(err)
	}

	if err := s.DB.Model(&models.Batch{}).Count(&data.BatchesInStock).Error; err != nil {
		return nil, ErrStorage(err)
	}

	return &data, nil
}
