package services

import (
	"encoding/json"
	"fmt"
	"time"

	"inventory-app/models"
	"inventory-app/types"

	"github.com/go-playground/validator"
	"gorm.io/gorm"
)

type RequestService struct {
	DB *gorm.DB
}

func NewRequestService(db *gorm.DB) *RequestService {
	return &RequestService{DB: db}
}

type RequestInput struct {
	RequestType string          `json:"request_type"`
	MaterialID  *uint           `json:"material_id"`
	RequestData json.RawMessage `json:"request_data"`
}

// parsePayload validates the raw payload into the closed shape for the
// request type. Delete requests carry no payload.
func parsePayload(requestType types.RequestType, raw json.RawMessage) (*models.MaterialPayload, error) {
	if requestType == types.RequestDelete {
		return nil, nil
	}

	var payload models.MaterialPayload
	if len(raw) == 0 {
		return nil, ErrValidation("Request data is required for %s requests", requestType)
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, ErrValidation("Invalid request data format")
	}

	validate := validator.New()
	if err := validate.Struct(payload); err != nil {
		return nil, ErrValidation("Missing required fields in request data: %s", err.Error())
	}

	return &payload, nil
}

// CreateRequest files a pending material mutation for admin review and
// notifies every privileged user.
func (s *RequestService) CreateRequest(actor types.Actor, input RequestInput) (*models.MaterialRequest, error) {
	requestType := types.RequestType(input.RequestType)
	if !requestType.Valid() {
		return nil, ErrValidation("Invalid request type")
	}

	if (requestType == types.RequestEdit || requestType == types.RequestDelete) && input.MaterialID == nil {
		return nil, ErrValidation("Material ID is required for edit/delete requests")
	}

	payload, err := parsePayload(requestType, input.RequestData)
	if err != nil {
		return nil, err
	}

	requestData := ""
	if payload != nil {
		encoded, _ := json.Marshal(payload)
		requestData = string(encoded)
	}

	request := models.MaterialRequest{
		RequestType: requestType,
		MaterialID:  input.MaterialID,
		RequestData: requestData,
		UserID:      actor.ID,
		Status:      types.RequestPending,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if requestType != types.RequestAdd {
			var material models.Material
			if err := tx.First(&material, *input.MaterialID).Error; err != nil {
				return wrapNotFound(err, "Material not found")
			}
		}

		if err := tx.Create(&request).Error; err != nil {
			return ErrStorage(err)
		}

		message := fmt.Sprintf("New %s material request from %s", requestType, actor.Username)
		if err := notifyPrivileged(tx, message, "request"); err != nil {
			return ErrStorage(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	mailAdmins(s.DB, "New material request",
		fmt.Sprintf("A new <b>%s</b> material request was submitted by %s.", requestType, actor.Username))

	return &request, nil
}

// Resolve approves or rejects a pending request exactly once. Business
// rules are re-validated against current data at approval time, and the
// material mutation commits in the same transaction as the request's
// status update. Rejection never touches material state.
func (s *RequestService) Resolve(actor types.Actor, requestID uint, decision string, adminNotes string) error {
	status := types.RequestStatus(decision)
	if status != types.RequestApproved && status != types.RequestRejected {
		return ErrValidation("Invalid status")
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var request models.MaterialRequest
		if err := tx.First(&request, requestID).Error; err != nil {
			return wrapNotFound(err, "Request not found")
		}

		if !request.Status.CanTransition(status) {
			return ErrConflict("Request already processed")
		}

		now := time.Now()
		updates := map[string]interface{}{
			"status":        status,
			"admin_id":      actor.ID,
			"admin_notes":   adminNotes,
			"response_date": &now,
		}
		if err := tx.Model(&request).Updates(updates).Error; err != nil {
			return ErrStorage(err)
		}

		if status == types.RequestApproved {
			if err := s.applyApproved(tx, &request); err != nil {
				return err
			}
		}

		message := s.resolutionMessage(tx, &request, status, adminNotes)
		requestRef := request.ID
		if err := notifyUser(tx, request.UserID, &requestRef, message, "request"); err != nil {
			return ErrStorage(err)
		}

		return nil
	})
}

// applyApproved performs the requested material mutation with business
// rules checked against current data, not submission-time data.
func (s *RequestService) applyApproved(tx *gorm.DB, request *models.MaterialRequest) error {
	var requester models.User
	updatedBy := "system"
	if err := tx.First(&requester, request.UserID).Error; err == nil {
		updatedBy = requester.Username
	}

	switch request.RequestType {
	case types.RequestAdd:
		payload, err := parsePayload(request.RequestType, json.RawMessage(request.RequestData))
		if err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.Material{}).Where("packet_no = ?", payload.PacketNo).Count(&count).Error; err != nil {
			return ErrStorage(err)
		}
		if count > 0 {
			return ErrConflict("A material with this packet number already exists. The request cannot be approved.")
		}

		material := models.Material{
			PacketNo:     payload.PacketNo,
			PartName:     payload.PartName,
			MaterialCode: payload.MaterialCode,
			Length:       payload.Length,
			Width:        payload.Width,
			MaterialType: payload.MaterialType,
			Quantity:     payload.Quantity,
			Supplier:     payload.Supplier,
			UpdatedBy:    updatedBy,
			LastUpdated:  time.Now(),
		}
		if err := tx.Create(&material).Error; err != nil {
			return ErrStorage(err)
		}

	case types.RequestEdit:
		payload, err := parsePayload(request.RequestType, json.RawMessage(request.RequestData))
		if err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.Material{}).
			Where("packet_no = ? AND id <> ?", payload.PacketNo, *request.MaterialID).
			Count(&count).Error; err != nil {
			return ErrStorage(err)
		}
		if count > 0 {
			return ErrConflict("Another material with this packet number already exists. The request cannot be approved.")
		}

		updates := map[string]interface{}{
			"packet_no":     payload.PacketNo,
			"part_name":     payload.PartName,
			"material_code": payload.MaterialCode,
			"length":        payload.Length,
			"width":         payload.Width,
			"material_type": payload.MaterialType,
			"quantity":      payload.Quantity,
			"supplier":      payload.Supplier,
			"updated_by":    updatedBy,
			"last_updated":  time.Now(),
		}
		if err := tx.Model(&models.Material{}).Where("id = ?", *request.MaterialID).Updates(updates).Error; err != nil {
			return ErrStorage(err)
		}

	case types.RequestDelete:
		if err := tx.Delete(&models.Material{}, *request.MaterialID).Error; err != nil {
			return ErrStorage(err)
		}
	}

	return nil
}

func (s *RequestService) resolutionMessage(tx *gorm.DB, request *models.MaterialRequest, status types.RequestStatus, adminNotes string) string {
	materialInfo := ""
	if request.MaterialID != nil {
		var material models.Material
		if err := tx.Unscoped().First(&material, *request.MaterialID).Error; err == nil {
			materialInfo = fmt.Sprintf(" %q", material.PartName)
		}
	}

	var message string
	if status == types.RequestApproved {
		message = fmt.Sprintf("Your %s material request%s has been approved", request.RequestType, materialInfo)
	} else {
		message = fmt.Sprintf("Your %s material request%s has been rejected", request.RequestType, materialInfo)
	}

	if status == types.RequestRejected && adminNotes != "" {
		message += ". Reason: " + adminNotes
	}

	return message
}

// RequestView joins a request with requester identity for list views.
type RequestView struct {
	models.MaterialRequest
	UserUsername string `json:"user_username"`
	UserFullName string `json:"user_full_name"`
}

// ListRequests returns requests visible to the actor: privileged users
// see everything in the given status, others only their own.
func (s *RequestService) ListRequests(actor types.Actor, status string) ([]RequestView, error) {
	query := s.DB.Model(&models.MaterialRequest{}).
		Select("material_requests.*, users.username AS user_username, users.full_name AS user_full_name").
		Joins("JOIN users ON users.id = material_requests.user_id").
		Where("material_requests.status = ?", status).
		Order("material_requests.created_at DESC")

	if !actor.IsPrivileged() {
		query = query.Where("material_requests.user_id = ?", actor.ID)
	}

	var rows []RequestView
	if err := query.Scan(&rows).Error; err != nil {
		return nil, ErrStorage(err)
	}
	return rows, nil
}

func (s *RequestService) GetRequest(actor types.Actor, requestID uint) (*RequestView, error) {
	query := s.DB.Model(&models.MaterialRequest{}).
		Select("material_requests.*, users.username AS user_username, users.full_name AS user_full_name").
		Joins("JOIN users ON users.id = material_requests.user_id").
		Where("material_requests.id = ?", requestID)

	if !actor.IsPrivileged() {
		query = query.Where("material_requests.user_id = ?", actor.ID)
	}

	var row RequestView
	if err := query.First(&row).Error; err != nil {
		return nil, wrapNotFound(err, "Request not found")
	}
	return &row, nil
}
