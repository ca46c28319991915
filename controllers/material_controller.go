package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"inventory-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type MaterialController struct {
	DB *gorm.DB
}

func NewMaterialController(db *gorm.DB) *MaterialController {
	return &MaterialController{DB: db}
}

func (c *MaterialController) GetAllMaterials(ctx *fiber.Ctx) error {
	var materials []models.Material
	query := c.DB.Order("last_updated DESC")

	if search := ctx.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("packet_no LIKE ? OR part_name LIKE ? OR material_code LIKE ?", like, like, like)
	}
	if supplier := ctx.Query("supplier"); supplier != "" {
		query = query.Where("supplier = ?", supplier)
	}

	if err := query.Find(&materials).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": materials})
}

func (c *MaterialController) GetMaterialByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid ID"})
	}

	var material models.Material
	if err := c.DB.First(&material, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Material not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": material})
}

func (c *MaterialController) CreateMaterial(ctx *fiber.Ctx) error {
	var input models.MaterialPayload
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	var count int64
	c.DB.Model(&models.Material{}).Where("packet_no = ?", input.PacketNo).Count(&count)
	if count > 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "A material with this packet number already exists"})
	}

	material := models.Material{
		PacketNo:     input.PacketNo,
		PartName:     input.PartName,
		MaterialCode: input.MaterialCode,
		Length:       input.Length,
		Width:        input.Width,
		MaterialType: input.MaterialType,
		Quantity:     input.Quantity,
		Supplier:     input.Supplier,
		UpdatedBy:    actor(ctx).Username,
		LastUpdated:  time.Now(),
	}

	if err := c.DB.Create(&material).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Material created successfully",
		"data":    material,
	})
}

func (c *MaterialController) UpdateMaterial(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid ID"})
	}

	var material models.Material
	if err := c.DB.First(&material, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Material not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	var input models.MaterialPayload
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	if input.PacketNo != material.PacketNo {
		var count int64
		c.DB.Model(&models.Material{}).Where("packet_no = ? AND id != ?", input.PacketNo, material.ID).Count(&count)
		if count > 0 {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "A material with this packet number already exists"})
		}
	}

	material.PacketNo = input.PacketNo
	material.PartName = input.PartName
	material.MaterialCode = input.MaterialCode
	material.Length = input.Length
	material.Width = input.Width
	material.MaterialType = input.MaterialType
	material.Quantity = input.Quantity
	material.Supplier = input.Supplier
	material.UpdatedBy = actor(ctx).Username
	material.LastUpdated = time.Now()

	if err := c.DB.Save(&material).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Material updated successfully",
		"data":    material,
	})
}

func (c *MaterialController) DeleteMaterial(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid ID"})
	}

	var material models.Material
	if err := c.DB.First(&material, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Material not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	if err := c.DB.Delete(&material).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Material deleted successfully"})
}

func (c *MaterialController) BulkDeleteMaterials(ctx *fiber.Ctx) error {
	var input struct {
		IDs []uint `json:"ids"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	if len(input.IDs) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "No material IDs provided"})
	}

	result := c.DB.Delete(&models.Material{}, input.IDs)
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": result.Error.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("%d materials deleted", result.RowsAffected),
	})
}

func (c *MaterialController) ExportMaterials(ctx *fiber.Ctx) error {
	var materials []models.Material
	if err := c.DB.Order("packet_no ASC").Find(&materials).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	// Buat file Excel baru
	f := excelize.NewFile()
	sheet := "Sheet1"

	// Buat header
	f.SetCellValue(sheet, "A1", "Packet No")
	f.SetCellValue(sheet, "B1", "Part Name")
	f.SetCellValue(sheet, "C1", "Material Code")
	f.SetCellValue(sheet, "D1", "Length")
	f.SetCellValue(sheet, "E1", "Width")
	f.SetCellValue(sheet, "F1", "Material Type")
	f.SetCellValue(sheet, "G1", "Quantity")
	f.SetCellValue(sheet, "H1", "Supplier")
	f.SetCellValue(sheet, "I1", "Updated By")
	f.SetCellValue(sheet, "J1", "Last Updated")

	for i, m := range materials {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), m.PacketNo)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), m.PartName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", i+2), m.MaterialCode)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", i+2), m.Length)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", i+2), m.Width)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", i+2), m.MaterialType)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", i+2), m.Quantity)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", i+2), m.Supplier)
		f.SetCellValue(sheet, fmt.Sprintf("I%d", i+2), m.UpdatedBy)
		f.SetCellValue(sheet, fmt.Sprintf("J%d", i+2), m.LastUpdated.Format("2006-01-02 15:04:05"))
	}

	// Simpan file ke dalam response
	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="materials.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(http.StatusInternalServerError).SendString("Gagal generate Excel")
	}

	return nil
}
