package handler

import (
	"encoding/json"
	"net/http"

	"github.com/medtrack/inventory-server/internal/domain"
	"github.com/medtrack/inventory-server/internal/service"
	"github.com/medtrack/inventory-server/pkg/response"

	"github.com/go-playground/validator/v10"
)

type DepartmentHandler struct {
	service   *service.InventoryService
	validator *validator.Validate
}

func NewDepartmentHandler(service *service.InventoryService) *DepartmentHandler {
	return &DepartmentHandler{
		service:   service,
		validator: validator.New(),
	}
}

// List handles GET /api/departments
func (h *DepartmentHandler) List(w http.ResponseWriter, r *http.Request) {
	departments, err := h.service.ListDepartments(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list departments", err)
		return
	}

	response.Success(w, departments)
}

// Create handles POST /api/departments
func (h *DepartmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.DepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		response.BadRequest(w, "Validation failed", err)
		return
	}

	id, err := h.service.CreateDepartment(r.Context(), &req, actingUser(r))
	if err != nil {
		response.InternalServerError(w, "Failed to create department", err)
		return
	}

	response.Created(w, map[string]int64{"id": id})
}

// Update handles PUT /api/departments/{id}
func (h *DepartmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid department id", err)
		return
	}

	var req domain.DepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		response.BadRequest(w, "Validation failed", err)
		return
	}

	if err := h.service.UpdateDepartment(r.Context(), id, &req); err != nil {
		response.InternalServerError(w, "Failed to update department", err)
		return
	}

	response.Success(w, nil)
}

// Delete handles DELETE /api/departments/{id}
func (h *DepartmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid department id", err)
		return
	}

	if err := h.service.DeleteDepartment(r.Context(), id); err != nil {
		response.InternalServerError(w, "Failed to delete department", err)
		return
	}

	response.Success(w, nil)
}
