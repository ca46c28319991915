package services

import (
	"testing"

	"inventory-app/models"
	"inventory-app/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBatchNotifiesPrivilegedUsers(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "admin", models.RoleAdmin)
	manager := seedUser(t, db, "manager", models.RoleManager)
	operator := seedUser(t, db, "operator", models.RoleRegular)

	svc := NewBatchService(db)
	batch, err := svc.CreateBatch(operator, BatchInput{
		PartName:    "Hinge",
		MachineName: "Stamping Machine 1",
		MoldCode:    "MD-01",
		Quantity:    300,
	})
	require.NoError(t, err)
	assert.Equal(t, types.BatchUngrouped, batch.Status)

	var notifications []models.Notification
	require.NoError(t, db.Find(&notifications).Error)
	require.Len(t, notifications, 2)

	recipients := map[uint]bool{}
	for _, n := range notifications {
		recipients[n.UserID] = true
		assert.Contains(t, n.Message, "Hinge")
		assert.Contains(t, n.Message, "300")
	}
	assert.True(t, recipients[admin.ID])
	assert.True(t, recipients[manager.ID])
	assert.False(t, recipients[operator.ID])
}

func TestGroupBatchesMovesAllMembers(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "admin", models.RoleAdmin)
	svc := NewBatchService(db)

	b1 := seedBatch(t, db, "Hinge", 100, types.BatchUngrouped)
	b2 := seedBatch(t, db, "Bracket", 200, types.BatchUngrouped)

	group, err := svc.GroupBatches(admin, []uint{b1.ID, b2.ID}, types.BatchGroupedLabel)
	require.NoError(t, err)
	assert.NotEmpty(t, group.Reference)

	var batches []models.Batch
	require.NoError(t, db.Find(&batches).Error)
	for _, b := range batches {
		assert.Equal(t, types.BatchGrouped, b.Status)
	}

	var members []models.BatchGroupMember
	require.NoError(t, db.Where("group_id = ?", group.ID).Find(&members).Error)
	assert.Len(t, members, 2)

	var logs []models.ActivityLog
	require.NoError(t, db.Where("action_type = ?", "BATCH_GROUP").Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, admin.ID, logs[0].UserID)
}

func TestGroupBatchesRejectsAlreadyGrouped(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "admin", models.RoleAdmin)
	svc := NewBatchService(db)

	fresh := seedBatch(t, db, "Hinge", 100, types.BatchUngrouped)
	taken := seedBatch(t, db, "Bracket", 200, types.BatchGrouped)

	_, err := svc.GroupBatches(admin, []uint{fresh.ID, taken.ID}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Bracket")
	assert.Equal(t, 400, StatusOf(err))

	// Nothing committed: the fresh batch stays ungrouped and no group
	// exists.
	var reloaded models.Batch
	require.NoError(t, db.First(&reloaded, fresh.ID).Error)
	assert.Equal(t, types.BatchUngrouped, reloaded.Status)

	var groupCount int64
	db.Model(&models.BatchGroup{}).Count(&groupCount)
	assert.Zero(t, groupCount)
}

func TestGroupBatchesMissingBatch(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "admin", models.RoleAdmin)
	svc := NewBatchService(db)

	b := seedBatch(t, db, "Hinge", 100, types.BatchUngrouped)

	_, err := svc.GroupBatches(admin, []uint{b.ID, 999}, "")
	require.Error(t, err)
	assert.Equal(t, 404, StatusOf(err))
}

func TestGroupBatchesEmptyInput(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "admin", models.RoleAdmin)
	svc := NewBatchService(db)

	_, err := svc.GroupBatches(admin, nil, "")
	require.Error(t, err)
	assert.Equal(t, 400, StatusOf(err))
}

func TestUpdateBatchStatusFollowsTransitions(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "admin", models.RoleAdmin)
	svc := NewBatchService(db)

	b := seedBatch(t, db, "Hinge", 100, types.BatchUngrouped)

	// ungrouped -> archived is allowed.
	require.NoError(t, svc.UpdateBatchStatus(admin, b.ID, string(types.BatchArchived)))

	// archived is terminal.
	err := svc.UpdateBatchStatus(admin, b.ID, string(types.BatchGrouped))
	require.Error(t, err)
	assert.Equal(t, 400, StatusOf(err))
}

func TestListGroupedReturnsGroupID(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "admin", models.RoleAdmin)
	svc := NewBatchService(db)

	b1 := seedBatch(t, db, "Hinge", 100, types.BatchUngrouped)
	b2 := seedBatch(t, db, "Bracket", 200, types.BatchUngrouped)
	group, err := svc.GroupBatches(admin, []uint{b1.ID, b2.ID}, "")
	require.NoError(t, err)

	rows, err := svc.ListGrouped()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, group.ID, row.GroupID)
	}
}
