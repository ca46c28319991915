package controllers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"inventory-app/models"
	"inventory-app/services"
	"inventory-app/types"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type BatchController struct {
	DB      *gorm.DB
	service *services.BatchService
}

func NewBatchController(db *gorm.DB) *BatchController {
	return &BatchController{DB: db, service: services.NewBatchService(db)}
}

func (c *BatchController) GetAllBatches(ctx *fiber.Ctx) error {
	var batches []models.Batch
	query := c.DB.Order("warehouse_entry_time DESC")

	if status := ctx.Query("status"); status != "" {
		parsed, err := types.ParseBatchStatus(status)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid batch status"})
		}
		query = query.Where("status = ?", parsed)
	}

	if err := query.Find(&batches).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": batches})
}

func (c *BatchController) GetUngroupedBatches(ctx *fiber.Ctx) error {
	var batches []models.Batch
	if err := c.DB.Where("status = ?", types.BatchUngrouped).
		Order("warehouse_entry_time ASC").
		Find(&batches).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": batches})
}

func (c *BatchController) GetGroupedBatches(ctx *fiber.Ctx) error {
	rows, err := c.service.ListGrouped()
	if err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": rows})
}

func (c *BatchController) GetBatchByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid ID"})
	}

	var batch models.Batch
	if err := c.DB.First(&batch, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Batch not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": batch})
}

func (c *BatchController) GetGroupMembers(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid ID"})
	}

	batches, err := c.service.GroupMembers(uint(id))
	if err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": batches})
}

func (c *BatchController) CreateBatch(ctx *fiber.Ctx) error {
	var input services.BatchInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	batch, err := c.service.CreateBatch(actor(ctx), input)
	if err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Batch created successfully",
		"data":    batch,
	})
}

func (c *BatchController) GroupBatches(ctx *fiber.Ctx) error {
	var input struct {
		BatchIDs []uint `json:"batch_ids"`
		Status   string `json:"status"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	group, err := c.service.GroupBatches(actor(ctx), input.BatchIDs, input.Status)
	if err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Batches grouped successfully",
		"data":    fiber.Map{"group_id": group.ID, "reference": group.Reference},
	})
}

func (c *BatchController) UpdateBatchStatus(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid ID"})
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	if err := c.service.UpdateBatchStatus(actor(ctx), uint(id), input.Status); err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Batch status updated"})
}

type BatchUploadResult struct {
	TotalRows     int      `json:"total_rows"`
	SuccessCount  int      `json:"success_count"`
	ErrorCount    int      `json:"error_count"`
	ErrorMessages []string `json:"error_messages"`
}

// CreateBatchFromExcel imports batches from an uploaded spreadsheet.
// Expected columns: Part Name, Machine Name, Mold Code, Quantity,
// Warehouse Entry Time (2006-01-02 15:04:05).
func (c *BatchController) CreateBatchFromExcel(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "File is required",
		})
	}

	if !strings.HasSuffix(strings.ToLower(file.Filename), ".xlsx") &&
		!strings.HasSuffix(strings.ToLower(file.Filename), ".xls") {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Only Excel files (.xlsx, .xls) are allowed",
		})
	}

	fileContent, err := file.Open()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to open file",
		})
	}
	defer fileContent.Close()

	f, err := excelize.OpenReader(fileContent)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to read Excel file",
		})
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "No sheets found in Excel file",
		})
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to read rows",
		})
	}

	if len(rows) < 2 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Excel file must contain header and at least one data row",
		})
	}

	result := BatchUploadResult{
		TotalRows:     len(rows) - 1,
		ErrorMessages: []string{},
	}

	for i, row := range rows[1:] {
		rowNum := i + 2
		if len(row) < 5 {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages, fmt.Sprintf("Row %d: missing columns", rowNum))
			continue
		}

		quantity, err := strconv.Atoi(strings.TrimSpace(row[3]))
		if err != nil || quantity <= 0 {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages, fmt.Sprintf("Row %d: invalid quantity %q", rowNum, row[3]))
			continue
		}

		entryTime, err := time.ParseInLocation("2006-01-02 15:04:05", strings.TrimSpace(row[4]), time.Local)
		if err != nil {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages, fmt.Sprintf("Row %d: invalid entry time %q", rowNum, row[4]))
			continue
		}

		input := services.BatchInput{
			PartName:           strings.TrimSpace(row[0]),
			MachineName:        strings.TrimSpace(row[1]),
			MoldCode:           strings.TrimSpace(row[2]),
			Quantity:           quantity,
			WarehouseEntryTime: entryTime,
		}
		if input.PartName == "" || input.MachineName == "" || input.MoldCode == "" {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages, fmt.Sprintf("Row %d: missing required fields", rowNum))
			continue
		}

		if _, err := c.service.CreateBatch(actor(ctx), input); err != nil {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages, fmt.Sprintf("Row %d: %s", rowNum, err.Error()))
			continue
		}
		result.SuccessCount++
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": result})
}
