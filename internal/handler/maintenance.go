package handler

import (
	"net/http"
	"strings"

	"github.com/medtrack/inventory-server/internal/config"
	"github.com/medtrack/inventory-server/internal/service"
	"github.com/medtrack/inventory-server/pkg/response"
)

// MaintenanceHandler serves the due-maintenance badge summary and list.
// Both endpoints are lenient: bad parameters are clamped and fetch failures
// render as zero/empty payloads.
type MaintenanceHandler struct {
	service *service.MaintenanceService
	config  *config.Config
}

func NewMaintenanceHandler(service *service.MaintenanceService, config *config.Config) *MaintenanceHandler {
	return &MaintenanceHandler{
		service: service,
		config:  config,
	}
}

// GetSummary handles GET /api/maintenance/summary
func (h *MaintenanceHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	days := queryInt(r, "days", h.config.Maintenance.DefaultWindowDays)

	summary := h.service.GetSummary(r.Context(), days)
	response.Success(w, summary)
}

// ListDue handles GET /api/maintenance/due
func (h *MaintenanceHandler) ListDue(w http.ResponseWriter, r *http.Request) {
	includeNoDate := r.URL.Query().Get("include_no_date")

	params := service.DueListParams{
		Days:          queryInt(r, "days", h.config.Maintenance.DefaultWindowDays),
		Limit:         queryInt(r, "limit", 10),
		Offset:        queryInt(r, "offset", 0),
		DepartmentID:  queryInt64Ptr(r, "department_id"),
		DeviceTypeID:  queryInt64Ptr(r, "device_type_id"),
		Status:        strings.TrimSpace(r.URL.Query().Get("status")),
		IncludeNoDate: includeNoDate == "1" || includeNoDate == "true",
	}

	result := h.service.ListDue(r.Context(), params)
	response.Success(w, result)
}
