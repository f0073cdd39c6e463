package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/medtrack/inventory-server/internal/domain"
	"github.com/medtrack/inventory-server/internal/service"
	customError "github.com/medtrack/inventory-server/pkg/errors"
	"github.com/medtrack/inventory-server/pkg/response"

	"github.com/go-playground/validator/v10"
)

// CatalogHandler serves the configuration surfaces: device types with their
// linked criteria, check criteria, and label templates.
type CatalogHandler struct {
	service   *service.AdminService
	validator *validator.Validate
}

func NewCatalogHandler(service *service.AdminService) *CatalogHandler {
	return &CatalogHandler{
		service:   service,
		validator: validator.New(),
	}
}

// Device types

func (h *CatalogHandler) ListDeviceTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.service.ListDeviceTypes(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list device types", err)
		return
	}

	response.Success(w, types)
}

func (h *CatalogHandler) CreateDeviceType(w http.ResponseWriter, r *http.Request) {
	var req domain.DeviceTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		response.BadRequest(w, "Validation failed", err)
		return
	}

	id, err := h.service.CreateDeviceType(r.Context(), &req, actingUser(r))
	if err != nil {
		response.InternalServerError(w, "Failed to create device type", err)
		return
	}

	response.Created(w, map[string]int64{"id": id})
}

func (h *CatalogHandler) UpdateDeviceType(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid device type id", err)
		return
	}

	var req domain.DeviceTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		response.BadRequest(w, "Validation failed", err)
		return
	}

	if err := h.service.UpdateDeviceType(r.Context(), id, &req); err != nil {
		response.InternalServerError(w, "Failed to update device type", err)
		return
	}

	response.Success(w, nil)
}

func (h *CatalogHandler) DeleteDeviceType(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid device type id", err)
		return
	}

	if err := h.service.DeactivateDeviceType(r.Context(), id); err != nil {
		response.InternalServerError(w, "Failed to delete device type", err)
		return
	}

	response.Success(w, nil)
}

func (h *CatalogHandler) ListTypeCriteria(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid device type id", err)
		return
	}

	criteria, err := h.service.ListTypeCriteria(r.Context(), id)
	if err != nil {
		response.InternalServerError(w, "Failed to list type criteria", err)
		return
	}

	response.Success(w, criteria)
}

func (h *CatalogHandler) SetTypeCriteria(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid device type id", err)
		return
	}

	var req domain.SetTypeCriteriaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		response.BadRequest(w, "Validation failed", err)
		return
	}

	if err := h.service.SetTypeCriteria(r.Context(), id, req.CriteriaIDs); err != nil {
		response.InternalServerError(w, "Failed to set type criteria", err)
		return
	}

	response.Success(w, nil)
}

// Check criteria

func (h *CatalogHandler) ListCriteria(w http.ResponseWriter, r *http.Request) {
	criteria, err := h.service.ListCriteria(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list criteria", err)
		return
	}

	response.Success(w, criteria)
}

func (h *CatalogHandler) CreateCriteria(w http.ResponseWriter, r *http.Request) {
	var req domain.CriteriaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		response.BadRequest(w, "Validation failed", err)
		return
	}

	id, err := h.service.CreateCriteria(r.Context(), &req, actingUser(r))
	if err != nil {
		if errors.Is(err, customError.ErrCriteriaKeyExists) {
			response.Conflict(w, "Criteria key already exists", err)
			return
		}
		response.InternalServerError(w, "Failed to create criteria", err)
		return
	}

	response.Created(w, map[string]int64{"id": id})
}

func (h *CatalogHandler) UpdateCriteria(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid criteria id", err)
		return
	}

	var req domain.CriteriaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		response.BadRequest(w, "Validation failed", err)
		return
	}

	if err := h.service.UpdateCriteria(r.Context(), id, &req); err != nil {
		if errors.Is(err, customError.ErrCriteriaKeyExists) {
			response.Conflict(w, "Criteria key already exists", err)
			return
		}
		response.InternalServerError(w, "Failed to update criteria", err)
		return
	}

	response.Success(w, nil)
}

func (h *CatalogHandler) DeleteCriteria(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid criteria id", err)
		return
	}

	if err := h.service.DeactivateCriteria(r.Context(), id); err != nil {
		response.InternalServerError(w, "Failed to delete criteria", err)
		return
	}

	response.Success(w, nil)
}

// Label templates

func (h *CatalogHandler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.service.ListTemplates(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list templates", err)
		return
	}

	response.Success(w, templates)
}

func (h *CatalogHandler) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	var req domain.TemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		response.BadRequest(w, "Validation failed", err)
		return
	}

	id, err := h.service.CreateTemplate(r.Context(), &req, actingUser(r))
	if err != nil {
		response.InternalServerError(w, "Failed to create template", err)
		return
	}

	response.Created(w, map[string]int64{"id": id})
}
