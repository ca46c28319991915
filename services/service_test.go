package services

import (
	"fmt"
	"testing"
	"time"

	"inventory-app/controllers/idgen"
	"inventory-app/models"
	"inventory-app/types"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	idgen.Init()
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
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
	))

	return db
}

// seedUser creates a user and returns the matching actor.
func seedUser(t *testing.T, db *gorm.DB, username, role string) types.Actor {
	t.Helper()

	user := models.User{
		Username: username,
		Password: "hashed",
		FullName: "Test " + username,
		Role:     role,
	}
	require.NoError(t, db.Create(&user).Error)

	return types.Actor{ID: user.ID, Username: user.Username, FullName: user.FullName, Role: user.Role}
}

func seedBatch(t *testing.T, db *gorm.DB, partName string, quantity int, status types.BatchStatus) models.Batch {
	t.Helper()

	batch := models.Batch{
		PartName:           partName,
		MachineName:        "Stamping Machine 1",
		MoldCode:           "MD-01",
		Quantity:           quantity,
		WarehouseEntryTime: time.Now(),
		Status:             status,
	}
	require.NoError(t, db.Create(&batch).Error)
	return batch
}

func seedMaterial(t *testing.T, db *gorm.DB, packetNo string, quantity int) models.Material {
	t.Helper()

	material := models.Material{
		PacketNo:     packetNo,
		PartName:     "Hinge Plate",
		MaterialCode: "HP-STL-01",
		Length:       120,
		Width:        45,
		MaterialType: "Steel",
		Quantity:     quantity,
		Supplier:     "Minh Phat Metals",
		UpdatedBy:    "system",
		LastUpdated:  time.Now(),
	}
	require.NoError(t, db.Create(&material).Error)
	return material
}

func payloadJSON(packetNo string) string {
	return fmt.Sprintf(`{
		"packet_no": %q,
		"part_name": "Hinge Plate",
		"material_code": "HP-STL-01",
		"length": 120,
		"width": 45,
		"material_type": "Steel",
		"quantity": 250,
		"supplier": "Minh Phat Metals"
	}`, packetNo)
}
