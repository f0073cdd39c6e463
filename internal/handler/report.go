package handler

import (
	"encoding/json"
	"net/http"

	"github.com/medtrack/inventory-server/internal/domain"
	"github.com/medtrack/inventory-server/internal/service"
	"github.com/medtrack/inventory-server/pkg/response"

	"github.com/go-playground/validator/v10"
)

type ReportHandler struct {
	service   *service.ReportService
	validator *validator.Validate
}

func NewReportHandler(service *service.ReportService) *ReportHandler {
	return &ReportHandler{
		service:   service,
		validator: validator.New(),
	}
}

// GetReport handles GET /api/reports
func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	if period == "" {
		period = domain.PeriodMonth
	}

	// "all" means no department filter
	var departmentID *int64
	if raw := r.URL.Query().Get("department_id"); raw != "" && raw != "all" {
		departmentID = queryInt64Ptr(r, "department_id")
	}

	report, err := h.service.BuildReport(r.Context(), period, departmentID)
	if err != nil {
		response.InternalServerError(w, "Failed to build report", err)
		return
	}

	response.Success(w, report)
}

// GetStats handles GET /api/stats
func (h *ReportHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.BuildStats(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to build stats", err)
		return
	}

	response.Success(w, stats)
}

// ListChecks handles GET /api/checks
func (h *ReportHandler) ListChecks(w http.ResponseWriter, r *http.Request) {
	checks, err := h.service.ListChecks(r.Context(), queryInt64Ptr(r, "device_id"))
	if err != nil {
		response.InternalServerError(w, "Failed to list checks", err)
		return
	}

	response.Success(w, checks)
}

// CreateCheck handles POST /api/checks
func (h *ReportHandler) CreateCheck(w http.ResponseWriter, r *http.Request) {
	var req domain.CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		response.BadRequest(w, "Validation failed", err)
		return
	}

	id, err := h.service.CreateCheck(r.Context(), &req, actingUser(r))
	if err != nil {
		response.InternalServerError(w, "Failed to create check", err)
		return
	}

	response.Created(w, map[string]int64{"id": id})
}
