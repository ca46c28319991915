package services

import (
	"testing"
	"time"

	"inventory-app/models"
	"inventory-app/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWorkflowTime(t *testing.T) {
	parsed, err := ParseWorkflowTime("14:30:00 - 25/12/2025")
	require.NoError(t, err)
	assert.Equal(t, 14, parsed.Hour())
	assert.Equal(t, 30, parsed.Minute())
	assert.Equal(t, 25, parsed.Day())
	assert.Equal(t, time.December, parsed.Month())
	assert.Equal(t, 2025, parsed.Year())

	// Empty defaults to now.
	now, err := ParseWorkflowTime("")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), now, time.Second)

	// Malformed input is an error, not a silent fallback.
	_, err = ParseWorkflowTime("25/12/2025 14:30")
	require.Error(t, err)
	assert.Equal(t, 400, StatusOf(err))
}

func createGroup(t *testing.T, svc *BatchService, actor types.Actor, batchIDs []uint) *models.BatchGroup {
	t.Helper()
	group, err := svc.GroupBatches(actor, batchIDs, "")
	require.NoError(t, err)
	return group
}

func TestCreateAssemblyMovesBatchesIntoProcessing(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "admin", models.RoleAdmin)
	batchSvc := NewBatchService(db)
	svc := NewAssemblyService(db)

	b1 := seedBatch(t, db, "Hinge", 100, types.BatchUngrouped)
	b2 := seedBatch(t, db, "Bracket", 200, types.BatchUngrouped)
	group := createGroup(t, batchSvc, admin, []uint{b1.ID, b2.ID})

	assembly, err := svc.CreateAssembly(admin, AssemblyInput{
		GroupID:         group.ID,
		PicID:           admin.ID,
		ProductQuantity: 250,
		ProductName:     "Door Hinge",
		ProductCode:     "DH-01",
	})
	require.NoError(t, err)
	assert.Equal(t, types.AssemblyProcessing, assembly.Status)

	var batches []models.Batch
	require.NoError(t, db.Find(&batches).Error)
	for _, b := range batches {
		assert.Equal(t, types.BatchInProcess, b.Status)
	}
}

func TestCreateAssemblyRejectsSecondAssemblyForGroup(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "admin", models.RoleAdmin)
	batchSvc := NewBatchService(db)
	svc := NewAssemblyService(db)

	b := seedBatch(t, db, "Hinge", 100, types.BatchUngrouped)
	group := createGroup(t, batchSvc, admin, []uint{b.ID})

	input := AssemblyInput{GroupID: group.ID, PicID: admin.ID, ProductQuantity: 100}
	_, err := svc.CreateAssembly(admin, input)
	require.NoError(t, err)

	_, err = svc.CreateAssembly(admin, input)
	require.Error(t, err)
	assert.Equal(t, 400, StatusOf(err))
}

func TestCreateAssemblyUnknownGroup(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "admin", models.RoleAdmin)
	svc := NewAssemblyService(db)

	_, err := svc.CreateAssembly(admin, AssemblyInput{GroupID: 42, PicID: admin.ID, ProductQuantity: 10})
	require.Error(t, err)
	assert.Equal(t, 404, StatusOf(err))
}

func TestTransferToPlatingIsOneWay(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "admin", models.RoleAdmin)
	batchSvc := NewBatchService(db)
	svc := NewAssemblyService(db)

	b := seedBatch(t, db, "Hinge", 100, types.BatchUngrouped)
	group := createGroup(t, batchSvc, admin, []uint{b.ID})

	assembly, err := svc.CreateAssembly(admin, AssemblyInput{
		GroupID:         group.ID,
		PicID:           admin.ID,
		ProductQuantity: 100,
		ProductName:     "Door Hinge",
		ProductCode:     "DH-01",
		Notes:           "first run",
	})
	require.NoError(t, err)

	plating, err := svc.TransferToPlating(admin, assembly.ID)
	require.NoError(t, err)
	assert.Equal(t, types.PlatingPending, plating.Status)
	assert.Equal(t, assembly.ID, plating.AssemblyID)
	assert.Equal(t, "Door Hinge", plating.ProductName)
	assert.Equal(t, "DH-01", plating.ProductCode)
	assert.Nil(t, plating.EndTime)

	var reloaded models.Assembly
	require.NoError(t, db.First(&reloaded, assembly.ID).Error)
	assert.Equal(t, types.AssemblyPlating, reloaded.Status)

	// A second transfer is rejected and no duplicate plating appears.
	_, err = svc.TransferToPlating(admin, assembly.ID)
	require.Error(t, err)
	assert.Equal(t, 400, StatusOf(err))

	var count int64
	db.Model(&models.Plating{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestUpdateAssemblyPatch(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "admin", models.RoleAdmin)
	batchSvc := NewBatchService(db)
	svc := NewAssemblyService(db)

	b := seedBatch(t, db, "Hinge", 100, types.BatchUngrouped)
	group := createGroup(t, batchSvc, admin, []uint{b.ID})
	assembly, err := svc.CreateAssembly(admin, AssemblyInput{GroupID: group.ID, PicID: admin.ID, ProductQuantity: 100})
	require.NoError(t, err)

	newName := "Cabinet Hinge"
	newQty := 90
	require.NoError(t, svc.UpdateAssembly(assembly.ID, AssemblyPatch{
		ProductName:     &newName,
		ProductQuantity: &newQty,
	}))

	var reloaded models.Assembly
	require.NoError(t, db.First(&reloaded, assembly.ID).Error)
	assert.Equal(t, "Cabinet Hinge", reloaded.ProductName)
	assert.Equal(t, 90, reloaded.ProductQuantity)

	// An empty patch is rejected.
	err = svc.UpdateAssembly(assembly.ID, AssemblyPatch{})
	require.Error(t, err)
	assert.Equal(t, 400, StatusOf(err))
}
