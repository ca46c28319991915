package database

import (
	"inventory-app/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserSession{},
		&models.Material{},
		&models.MaterialRequest{},
		&models.Batch{},
		&models.BatchGroup{},
		&models.BatchGroupMember{},
		&models.Machine{},
		&models.Mold{},
		&models.ProductionRun{},
		&models.MachineStopLog{},
		&models.Assembly{},
		&models.Plating{},
		&models.FinishedProduct{},
		&models.QualityCheck{},
		&models.Notification{},
		&models.ActivityLog{},
	)
}
