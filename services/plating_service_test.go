package services

import (
	"testing"
	"time"

	"inventory-app/models"
	"inventory-app/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// seedPipeline walks batch -> group -> assembly -> plating and returns
// the plating row.
func seedPipeline(t *testing.T, db *gorm.DB, admin types.Actor) models.Plating {
	t.Helper()

	batchSvc := NewBatchService(db)
	assemblySvc := NewAssemblyService(db)

	b := seedBatch(t, db, "Hinge", 100, types.BatchUngrouped)
	group := createGroup(t, batchSvc, admin, []uint{b.ID})

	assembly, err := assemblySvc.CreateAssembly(admin, AssemblyInput{
		GroupID:         group.ID,
		PicID:           admin.ID,
		ProductQuantity: 100,
		ProductName:     "Door Hinge",
		ProductCode:     "DH-01",
	})
	require.NoError(t, err)

	plating, err := assemblySvc.TransferToPlating(admin, assembly.ID)
	require.NoError(t, err)
	return *plating
}

func TestCompletePlatingStampsEndTime(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "admin", models.RoleAdmin)
	svc := NewPlatingService(db)

	plating := seedPipeline(t, db, admin)

	require.NoError(t, svc.CompletePlating(admin, plating.ID))

	var reloaded models.Plating
	require.NoError(t, db.First(&reloaded, plating.ID).Error)
	assert.Equal(t, types.PlatingCompleted, reloaded.Status)
	require.NotNil(t, reloaded.EndTime)
	assert.WithinDuration(t, time.Now(), *reloaded.EndTime, 2*time.Second)

	// Completed is terminal.
	err := svc.CompletePlating(admin, plating.ID)
	require.Error(t, err)
	assert.Equal(t, 400, StatusOf(err))
}

func TestUpdatePlatingNeverTouchesStatus(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "admin", models.RoleAdmin)
	svc := NewPlatingService(db)

	plating := seedPipeline(t, db, admin)

	notes := "extra polish pass"
	require.NoError(t, svc.UpdatePlating(plating.ID, PlatingPatch{Notes: &notes}))

	var reloaded models.Plating
	require.NoError(t, db.First(&reloaded, plating.ID).Error)
	assert.Equal(t, "extra polish pass", reloaded.Notes)
	assert.Equal(t, types.PlatingPending, reloaded.Status)
	assert.Nil(t, reloaded.EndTime)
}

func TestGetPlatingByAssembly(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "admin", models.RoleAdmin)
	svc := NewPlatingService(db)

	plating := seedPipeline(t, db, admin)

	row, err := svc.GetPlatingByAssembly(plating.AssemblyID)
	require.NoError(t, err)
	assert.Equal(t, plating.ID, row.ID)
	assert.Equal(t, "admin", row.PicName)
	assert.Equal(t, 100, row.ProductQuantity)

	_, err = svc.GetPlatingByAssembly(999)
	require.Error(t, err)
	assert.Equal(t, 404, StatusOf(err))
}
