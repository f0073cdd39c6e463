package handler

import (
	"encoding/json"
	"net/http"

	"github.com/medtrack/inventory-server/internal/domain"
	"github.com/medtrack/inventory-server/internal/service"
	"github.com/medtrack/inventory-server/pkg/response"

	"github.com/go-playground/validator/v10"
)

// UserHandler covers account administration. Login and sessions are handled
// by the auth layer in front of this service.
type UserHandler struct {
	service   *service.AdminService
	validator *validator.Validate
}

func NewUserHandler(service *service.AdminService) *UserHandler {
	return &UserHandler{
		service:   service,
		validator: validator.New(),
	}
}

// List handles GET /api/users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list users", err)
		return
	}

	response.Success(w, users)
}

// Create handles POST /api/users
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		response.BadRequest(w, "Validation failed", err)
		return
	}

	id, err := h.service.CreateUser(r.Context(), &req, actingUser(r))
	if err != nil {
		response.InternalServerError(w, "Failed to create user", err)
		return
	}

	response.Created(w, map[string]int64{"id": id})
}

// Update handles PUT /api/users/{id}
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid user id", err)
		return
	}

	var req domain.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		response.BadRequest(w, "Validation failed", err)
		return
	}

	if err := h.service.UpdateUser(r.Context(), id, &req); err != nil {
		response.InternalServerError(w, "Failed to update user", err)
		return
	}

	response.Success(w, nil)
}

// Delete handles DELETE /api/users/{id}
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid user id", err)
		return
	}

	if err := h.service.DeleteUser(r.Context(), id); err != nil {
		response.InternalServerError(w, "Failed to delete user", err)
		return
	}

	response.Success(w, nil)
}
