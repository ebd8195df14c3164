package httpapi

import (
	"log"
	"net/http"
	"time"

	"github.com/pr-poehali-dev/employee-monitoring-app/internal/models"
	"github.com/pr-poehali-dev/employee-monitoring-app/internal/service"
)

// AccessHandler serves /api/access: movement registration on POST, employee
// history and roster status on GET.
type AccessHandler struct {
	service service.AccessManager
	logger  *log.Logger
}

func NewAccessHandler(svc service.AccessManager, logger *log.Logger) *AccessHandler {
	return &AccessHandler{
		service: svc,
		logger:  logger,
	}
}

func (h *AccessHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodOptions:
		writePreflight(w, "GET, POST, OPTIONS", "Content-Type, X-User-Id")
	case http.MethodPost:
		h.handleRegisterMovement(w, r)
	case http.MethodGet:
		if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
			h.handleEmployeeHistory(w, r, employeeID)
			return
		}
		h.handleRosterStatus(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

type registerMovementRequest struct {
	EmployeeID   uint   `json:"employee_id"`
	EventType    string `json:"event_type"`
	CheckpointID *uint  `json:"checkpoint_id"`
}

type movementAcceptedResponse struct {
	Success       bool      `json:"success"`
	EventID       uint      `json:"event_id"`
	EmployeeName  string    `json:"employee_name"`
	EventDatetime time.Time `json:"event_datetime"`
	IsLate        bool      `json:"is_late"`
}

type movementRejectedResponse struct {
	Success bool   `json:"success"`
	Reason  string `json:"reason"`
}

func (h *AccessHandler) handleRegisterMovement(w http.ResponseWriter, r *http.Request) {
	var req registerMovementRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.EmployeeID == 0 || req.EventType == "" {
		writeError(w, http.StatusBadRequest, "employee_id и event_type обязательны")
		return
	}

	result, err := h.service.RegisterMovement(r.Context(), service.RegisterMovementInput{
		EmployeeID:   req.EmployeeID,
		EventType:    models.EventType(req.EventType),
		CheckpointID: req.CheckpointID,
	})
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	if !result.Allowed {
		writeJSON(w, http.StatusForbidden, movementRejectedResponse{
			Success: false,
			Reason:  result.Reason,
		})
		return
	}

	writeJSON(w, http.StatusOK, movementAcceptedResponse{
		Success:       true,
		EventID:       result.EventID,
		EmployeeName:  result.EmployeeName,
		EventDatetime: result.EventDatetime,
		IsLate:        result.IsLate,
	})
}

func (h *AccessHandler) handleEmployeeHistory(w http.ResponseWriter, r *http.Request, rawEmployeeID string) {
	employeeID, err := parseUintID(rawEmployeeID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid employee id")
		return
	}

	entries, err := h.service.EmployeeHistory(r.Context(), employeeID)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

func (h *AccessHandler) handleRosterStatus(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.RosterStatus(r.Context())
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}
