package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/medtrack/inventory-server/internal/domain"
	"github.com/medtrack/inventory-server/internal/service"
	customError "github.com/medtrack/inventory-server/pkg/errors"
	"github.com/medtrack/inventory-server/pkg/response"

	"github.com/go-playground/validator/v10"
)

type DeviceHandler struct {
	service   *service.InventoryService
	validator *validator.Validate
}

func NewDeviceHandler(service *service.InventoryService) *DeviceHandler {
	return &DeviceHandler{
		service:   service,
		validator: validator.New(),
	}
}

// List handles GET /api/devices
func (h *DeviceHandler) List(w http.ResponseWriter, r *http.Request) {
	opts := domain.DeviceListOptions{
		Page:         queryInt(r, "page", 0),
		Limit:        queryInt(r, "limit", 0),
		Query:        strings.TrimSpace(r.URL.Query().Get("q")),
		DepartmentID: queryInt64Ptr(r, "department_id"),
		Sort:         r.URL.Query().Get("sort"),
	}

	result, err := h.service.ListDevices(r.Context(), opts)
	if err != nil {
		response.InternalServerError(w, "Failed to list devices", err)
		return
	}

	response.Success(w, result)
}

// Create handles POST /api/devices
func (h *DeviceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.DeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		response.BadRequest(w, "Validation failed", err)
		return
	}

	id, err := h.service.CreateDevice(r.Context(), &req, actingUser(r))
	if err != nil {
		response.InternalServerError(w, "Failed to create device", err)
		return
	}

	response.Created(w, map[string]int64{"id": id})
}

// Search handles GET /api/devices/search (QR scan lookup by serial)
func (h *DeviceHandler) Search(w http.ResponseWriter, r *http.Request) {
	serial := strings.TrimSpace(r.URL.Query().Get("serial"))
	if serial == "" {
		response.BadRequest(w, "Serial parameter is required", customError.ErrSerialRequired)
		return
	}

	device, err := h.service.FindDeviceBySerial(r.Context(), serial)
	if err != nil {
		if errors.Is(err, customError.ErrDeviceNotFound) {
			response.NotFound(w, "Device not found")
			return
		}
		response.InternalServerError(w, "Failed to search devices", err)
		return
	}

	response.Success(w, device)
}

// Get handles GET /api/devices/{id}
func (h *DeviceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid device id", err)
		return
	}

	device, err := h.service.GetDevice(r.Context(), id)
	if err != nil {
		if errors.Is(err, customError.ErrDeviceNotFound) {
			response.NotFound(w, "Device not found")
			return
		}
		response.InternalServerError(w, "Failed to get device", err)
		return
	}

	response.Success(w, device)
}

// Update handles PUT /api/devices/{id}
func (h *DeviceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid device id", err)
		return
	}

	var req domain.DeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		response.BadRequest(w, "Validation failed", err)
		return
	}

	if err := h.service.UpdateDevice(r.Context(), id, &req); err != nil {
		response.InternalServerError(w, "Failed to update device", err)
		return
	}

	response.Success(w, nil)
}

// Delete handles DELETE /api/devices/{id}
func (h *DeviceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid device id", err)
		return
	}

	if err := h.service.DeleteDevice(r.Context(), id); err != nil {
		if errors.Is(err, customError.ErrDeviceNotFound) {
			response.NotFound(w, "Device not found")
			return
		}
		response.InternalServerError(w, "Failed to delete device", err)
		return
	}

	response.Success(w, nil)
}
