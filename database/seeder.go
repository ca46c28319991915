package database

import (
	"fmt"
	"time"

	"inventory-app/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RunSeeders fills an empty database with the baseline rows the frontend
// expects: the default accounts, the shop-floor machines and molds, and
// a handful of sample materials.
func RunSeeders(db *gorm.DB) {
	SeedUsers(db)
	SeedMachines(db)
	SeedMolds(db)
	SeedMaterials(db)
}

func SeedUsers(db *gorm.DB) {
	users := []struct {
		Username string
		Password string
		FullName string
		Role     string
	}{
		{"admin", "admin123", "System Administrator", models.RoleAdmin},
		{"manager", "manager123", "Warehouse Manager", models.RoleManager},
		{"operator", "operator123", "Line Operator", models.RoleRegular},
	}

	for _, u := range users {
		var existing models.User
		if err := db.Where("username = ?", u.Username).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				hashed, hashErr := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
				if hashErr != nil {
					continue
				}
				db.Create(&models.User{
					Username: u.Username,
					Password: string(hashed),
					FullName: u.FullName,
					Role:     u.Role,
				})
			}
		}
	}
}

func SeedMachines(db *gorm.DB) {
	for i := 1; i <= 5; i++ {
		name := fmt.Sprintf("Stamping Machine %d", i)
		var existing models.Machine
		if err := db.Where("name = ?", name).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&models.Machine{Name: name})
			}
		}
	}
}

func SeedMolds(db *gorm.DB) {
	for i := 1; i <= 8; i++ {
		code := fmt.Sprintf("MD-%02d", i)
		var existing models.Mold
		if err := db.Where("code = ?", code).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&models.Mold{Code: code})
			}
		}
	}
}

func SeedMaterials(db *gorm.DB) {
	materials := []models.Material{
		{PacketNo: "PKT-0001", PartName: "Hinge Plate", MaterialCode: "HP-STL-01", Length: 120, Width: 45, MaterialType: "Steel", Quantity: 500, Supplier: "Minh Phat Metals"},
		{PacketNo: "PKT-0002", PartName: "Bracket Arm", MaterialCode: "BA-ALU-02", Length: 85, Width: 30, MaterialType: "Aluminium", Quantity: 350, Supplier: "Thanh Cong Alloys"},
		{PacketNo: "PKT-0003", PartName: "Lock Housing", MaterialCode: "LH-ZNC-03", Length: 60, Width: 60, MaterialType: "Zinc", Quantity: 200, Supplier: "Minh Phat Metals"},
	}

	for _, m := range materials {
		var existing models.Material
		if err := db.Where("packet_no = ?", m.PacketNo).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				m.UpdatedBy = "system"
				m.LastUpdated = time.Now()
				db.Create(&m)
			}
		}
	}
}
