package services

import (
	"encoding/json"
	"testing"

	"inventory-app/models"
	"inventory-app/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRequestValidation(t *testing.T) {
	db := newTestDB(t)
	operator := seedUser(t, db, "operator", models.RoleRegular)
	svc := NewRequestService(db)

	_, err := svc.CreateRequest(operator, RequestInput{RequestType: "destroy"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid request type")

	// Edit and delete need a material reference.
	_, err = svc.CreateRequest(operator, RequestInput{RequestType: "edit"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Material ID is required")

	// Add needs a payload with every field.
	_, err = svc.CreateRequest(operator, RequestInput{
		RequestType: "add",
		RequestData: json.RawMessage(`{"packet_no": "PKT-0100"}`),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Missing required fields")
}

func TestCreateRequestNotifiesAdmins(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "admin", models.RoleAdmin)
	operator := seedUser(t, db, "operator", models.RoleRegular)
	svc := NewRequestService(db)

	request, err := svc.CreateRequest(operator, RequestInput{
		RequestType: "add",
		RequestData: json.RawMessage(payloadJSON("PKT-0100")),
	})
	require.NoError(t, err)
	assert.Equal(t, types.RequestPending, request.Status)

	var notifications []models.Notification
	require.NoError(t, db.Where("user_id = ?", admin.ID).Find(&notifications).Error)
	require.Len(t, notifications, 1)
	assert.Contains(t, notifications[0].Message, "operator")
}

func TestApproveAddCreatesMaterial(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "admin", models.RoleAdmin)
	operator := seedUser(t, db, "operator", models.RoleRegular)
	svc := NewRequestService(db)

	request, err := svc.CreateRequest(operator, RequestInput{
		RequestType: "add",
		RequestData: json.RawMessage(payloadJSON("PKT-0100")),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Resolve(admin, request.ID, "approved", ""))

	var material models.Material
	require.NoError(t, db.Where("packet_no = ?", "PKT-0100").First(&material).Error)
	assert.Equal(t, "operator", material.UpdatedBy)

	var reloaded models.MaterialRequest
	require.NoError(t, db.First(&reloaded, request.ID).Error)
	assert.Equal(t, types.RequestApproved, reloaded.Status)
	require.NotNil(t, reloaded.AdminID)
	assert.Equal(t, admin.ID, *reloaded.AdminID)
	assert.NotNil(t, reloaded.ResponseDate)

	// The requester hears back.
	var notifications []models.Notification
	require.NoError(t, db.Where("user_id = ?", operator.ID).Find(&notifications).Error)
	require.Len(t, notifications, 1)
	assert.Contains(t, notifications[0].Message, "approved")
}

func TestResolveIsExactlyOnce(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "admin", models.RoleAdmin)
	operator := seedUser(t, db, "operator", models.RoleRegular)
	svc := NewRequestService(db)

	request, err := svc.CreateRequest(operator, RequestInput{
		RequestType: "add",
		RequestData: json.RawMessage(payloadJSON("PKT-0100")),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Resolve(admin, request.ID, "rejected", "not needed"))

	err = svc.Resolve(admin, request.ID, "approved", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already processed")

	// Rejection never touched material state.
	var count int64
	db.Model(&models.Material{}).Count(&count)
	assert.Zero(t, count)
}

func TestApproveAddRevalidatesPacketNo(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "admin", models.RoleAdmin)
	operator := seedUser(t, db, "operator", models.RoleRegular)
	svc := NewRequestService(db)

	request, err := svc.CreateRequest(operator, RequestInput{
		RequestType: "add",
		RequestData: json.RawMessage(payloadJSON("PKT-0100")),
	})
	require.NoError(t, err)

	// The packet number gets taken between submission and approval.
	seedMaterial(t, db, "PKT-0100", 500)

	err = svc.Resolve(admin, request.ID, "approved", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be approved")

	// The failed approval rolled back: the request is still pending.
	var reloaded models.MaterialRequest
	require.NoError(t, db.First(&reloaded, request.ID).Error)
	assert.Equal(t, types.RequestPending, reloaded.Status)
}

func TestApproveDeleteRemovesMaterial(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "admin", models.RoleAdmin)
	operator := seedUser(t, db, "operator", models.RoleRegular)
	svc := NewRequestService(db)

	material := seedMaterial(t, db, "PKT-0200", 500)

	request, err := svc.CreateRequest(operator, RequestInput{
		RequestType: "delete",
		MaterialID:  &material.ID,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Resolve(admin, request.ID, "approved", ""))

	var count int64
	db.Model(&models.Material{}).Where("packet_no = ?", "PKT-0200").Count(&count)
	assert.Zero(t, count)
}

func TestResolveRejectsUnknownDecision(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "admin", models.RoleAdmin)
	svc := NewRequestService(db)

	err := svc.Resolve(admin, 1, "maybe", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid status")
}

func TestListRequestsScopedByRole(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "admin", models.RoleAdmin)
	alice := seedUser(t, db, "alice", models.RoleRegular)
	bob := seedUser(t, db, "bob", models.RoleRegular)
	svc := NewRequestService(db)

	_, err := svc.CreateRequest(alice, RequestInput{
		RequestType: "add",
		RequestData: json.RawMessage(payloadJSON("PKT-0300")),
	})
	require.NoError(t, err)
	_, err = svc.CreateRequest(bob, RequestInput{
		RequestType: "add",
		RequestData: json.RawMessage(payloadJSON("PKT-0301")),
	})
	require.NoError(t, err)

	adminView, err := svc.ListRequests(admin, "pending")
	require.NoError(t, err)
	assert.Len(t, adminView, 2)

	aliceView, err := svc.ListRequests(alice, "pending")
	require.NoError(t, err)
	require.Len(t, aliceView, 1)
	assert.Equal(t, "alice", aliceView[0].UserUsername)

	// Bob cannot read Alice's request directly either.
	_, err = svc.GetRequest(bob, aliceView[0].ID)
	require.Error(t, err)
	assert.Equal(t, 404, StatusOf(err))
}
