package httpapi

import (
	"log"
	"net/http"
	"time"

	"github.com/pr-poehali-dev/employee-monitoring-app/internal/service"
)

// ReportHandler serves /api/reports. The type query parameter selects the
// view: daily (default), history or violations.
type ReportHandler struct {
	service service.ReportManager
	logger  *log.Logger
	now     func() time.Time
}

func NewReportHandler(svc service.ReportManager, logger *log.Logger) *ReportHandler {
	return &ReportHandler{
		service: svc,
		logger:  logger,
		now:     time.Now,
	}
}

func (h *ReportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodOptions:
		writePreflight(w, "GET, OPTIONS", "Content-Type")
	case http.MethodGet:
		h.handleReport(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

type reportPeriod struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type dailyReportResponse struct {
	ReportType string                   `json:"report_type"`
	Date       string                   `json:"date"`
	Data       []service.DailyReportRow `json:"data"`
}

type historyReportResponse struct {
	ReportType string                  `json:"report_type"`
	EmployeeID uint                    `json:"employee_id"`
	Period     reportPeriod            `json:"period"`
	Data       []service.MovementEntry `json:"data"`
}

type violationsReportResponse struct {
	ReportType string                 `json:"report_type"`
	Period     reportPeriod           `json:"period"`
	Data       []service.ViolationRow `json:"data"`
}

func (h *ReportHandler) handleReport(w http.ResponseWriter, r *http.Request) {
	reportType := r.URL.Query().Get("type")
	if reportType == "" {
		reportType = "daily"
	}

	switch reportType {
	case "daily":
		h.handleDailyReport(w, r)
	case "history":
		h.handleHistoryReport(w, r)
	case "violations":
		h.handleViolationsReport(w, r)
	default:
		writeError(w, http.StatusBadRequest, "Неизвестный тип отчёта")
	}
}

func (h *ReportHandler) handleDailyReport(w http.ResponseWriter, r *http.Request) {
	date, err := parseDateParam(r.URL.Query().Get("date"), "date", h.now())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rows, err := h.service.DailyReport(r.Context(), date)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dailyReportResponse{
		ReportType: "daily",
		Date:       date.Format("2006-01-02"),
		Data:       rows,
	})
}

func (h *ReportHandler) handleHistoryReport(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	rawEmployeeID := query.Get("employee_id")
	if rawEmployeeID == "" {
		writeError(w, http.StatusBadRequest, "employee_id обязателен")
		return
	}
	employeeID, err := parseUintID(rawEmployeeID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid employee id")
		return
	}

	dateFrom, err := parseDateParam(query.Get("date_from"), "date_from", h.now())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	dateTo, err := parseDateParam(query.Get("date_to"), "date_to", h.now())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	entries, err := h.service.MovementHistory(r.Context(), employeeID, dateFrom, dateTo)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, historyReportResponse{
		ReportType: "history",
		EmployeeID: employeeID,
		Period: reportPeriod{
			From: dateFrom.Format("2006-01-02"),
			To:   dateTo.Format("2006-01-02"),
		},
		Data: entries,
	})
}

func (h *ReportHandler) handleViolationsReport(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateFrom, err := parseDateParam(query.Get("date_from"), "date_from", h.now().AddDate(0, 0, -7))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	dateTo, err := parseDateParam(query.Get("date_to"), "date_to", h.now())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rows, err := h.service.ViolationsReport(r.Context(), dateFrom, dateTo)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, violationsReportResponse{
		ReportType: "violations",
		Period: reportPeriod{
			From: dateFrom.Format("2006-01-02"),
			To:   dateTo.Format("2006-01-02"),
		},
		Data: rows,
	})
}
