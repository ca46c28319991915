package services

import (
	"testing"

	"inventory-app/models"
	"inventory-app/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createFinishedProduct(t *testing.T, svc *ProductService, admin types.Actor, plating models.Plating, quantity int) *models.FinishedProduct {
	t.Helper()

	product, err := svc.CreateFinishedProduct(admin, FinishedProductInput{
		PlatingID:   plating.ID,
		AssemblyID:  plating.AssemblyID,
		GroupID:     1,
		ProductName: "Door Hinge",
		ProductCode: "DH-01",
		Quantity:    quantity,
	})
	require.NoError(t, err)
	return product
}

func TestCreateFinishedProductRequiresPlating(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "admin", models.RoleAdmin)
	svc := NewProductService(db)

	_, err := svc.CreateFinishedProduct(admin, FinishedProductInput{
		PlatingID:   77,
		AssemblyID:  1,
		GroupID:     1,
		ProductName: "Door Hinge",
		ProductCode: "DH-01",
		Quantity:    100,
	})
	require.Error(t, err)
	assert.Equal(t, 404, StatusOf(err))
}

func TestCreateFinishedProductAssignsQRCode(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "admin", models.RoleAdmin)
	svc := NewProductService(db)

	plating := seedPipeline(t, db, admin)
	product := createFinishedProduct(t, svc, admin, plating, 100)

	assert.Equal(t, types.ProductInStock, product.Status)
	assert.Contains(t, product.QRCode, "FP-")
	assert.Equal(t, 100, product.UsableCount())
}

func TestQualityCheckNGRequiresDefectCount(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "admin", models.RoleAdmin)
	svc := NewProductService(db)

	plating := seedPipeline(t, db, admin)
	product := createFinishedProduct(t, svc, admin, plating, 100)

	_, err := svc.RecordQualityCheck(admin, product.ID, QualityCheckInput{Verdict: "NG"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Defect count is required")

	negative := -3
	_, err = svc.RecordQualityCheck(admin, product.ID, QualityCheckInput{Verdict: "NG", DefectCount: &negative})
	require.Error(t, err)

	tooMany := 150
	_, err = svc.RecordQualityCheck(admin, product.ID, QualityCheckInput{Verdict: "NG", DefectCount: &tooMany})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot exceed total quantity")

	_, err = svc.RecordQualityCheck(admin, product.ID, QualityCheckInput{Verdict: "maybe"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OK or NG")
}

func TestQualityCheckUpdatesProductAndHistory(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "admin", models.RoleAdmin)
	svc := NewProductService(db)

	plating := seedPipeline(t, db, admin)
	product := createFinishedProduct(t, svc, admin, plating, 100)

	defects := 15
	check, err := svc.RecordQualityCheck(admin, product.ID, QualityCheckInput{Verdict: "NG", DefectCount: &defects})
	require.NoError(t, err)
	assert.Equal(t, types.VerdictNG, check.Status)
	assert.Contains(t, check.Notes, "admin")
	assert.Contains(t, check.Notes, "15 defective units")

	var reloaded models.FinishedProduct
	require.NoError(t, db.First(&reloaded, product.ID).Error)
	assert.Equal(t, types.ProductDefective, reloaded.Status)
	assert.Equal(t, 15, reloaded.DefectCount)
	assert.Equal(t, 85, reloaded.UsableCount())
}

func TestProductViewDerivesFromLatestCheck(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "admin", models.RoleAdmin)
	svc := NewProductService(db)

	plating := seedPipeline(t, db, admin)
	product := createFinishedProduct(t, svc, admin, plating, 100)

	// No checks yet: displayed quality is Pending.
	views, err := svc.ListFinishedProducts()
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, QualityPending, views[0].QualityStatus)
	assert.Equal(t, 100, views[0].UsableCount)

	_, err = svc.RecordQualityCheck(admin, product.ID, QualityCheckInput{Verdict: "OK"})
	require.NoError(t, err)

	defects := 10
	_, err = svc.RecordQualityCheck(admin, product.ID, QualityCheckInput{Verdict: "NG", DefectCount: &defects})
	require.NoError(t, err)

	// The later NG check wins over the earlier OK.
	views, err = svc.ListFinishedProducts()
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "NG", views[0].QualityStatus)
	assert.Equal(t, 90, views[0].UsableCount)
	assert.Equal(t, admin.ID, views[0].InspectorID)
}

func TestGetFinishedProductHistory(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "admin", models.RoleAdmin)
	svc := NewProductService(db)

	plating := seedPipeline(t, db, admin)

	var assembly models.Assembly
	require.NoError(t, db.First(&assembly, plating.AssemblyID).Error)

	product, err := svc.CreateFinishedProduct(admin, FinishedProductInput{
		PlatingID:   plating.ID,
		AssemblyID:  assembly.ID,
		GroupID:     assembly.GroupID,
		ProductName: "Door Hinge",
		ProductCode: "DH-01",
		Quantity:    100,
	})
	require.NoError(t, err)

	_, err = svc.RecordQualityCheck(admin, product.ID, QualityCheckInput{Verdict: "OK"})
	require.NoError(t, err)

	view, history, err := svc.GetFinishedProduct(product.ID)
	require.NoError(t, err)
	assert.Equal(t, "OK", view.QualityStatus)
	require.NotNil(t, history.Assembly)
	assert.Equal(t, assembly.ID, history.Assembly.ID)
	require.NotNil(t, history.Plating)
	assert.Equal(t, plating.ID, history.Plating.ID)
	assert.Len(t, history.Batches, 1)
	assert.Len(t, history.QualityChecks, 1)
}
