package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pr-poehali-dev/employee-monitoring-app/internal/apperror"
	"github.com/pr-poehali-dev/employee-monitoring-app/internal/models"

	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// DailyReport summarizes one calendar day for every active employee: first
// entry, last exit, entry/exit counts and worked hours. Employees without
// events that day are still listed with empty bounds and zero hours.
func (s *ReportService) DailyReport(ctx context.Context, date time.Time) ([]DailyReportRow, error) {
	rows := []DailyReportRow{}
	err := s.db.WithContext(ctx).Raw(`
		SELECT e.id AS employee_id, e.full_name, e.position,
		       MIN(CASE WHEN ml.event_type = 'entry' THEN ml.event_datetime END) AS first_entry,
		       MAX(CASE WHEN ml.event_type = 'exit' THEN ml.event_datetime END) AS last_exit,
		       COUNT(CASE WHEN ml.event_type = 'entry' THEN 1 END) AS entries_count,
		       COUNT(CASE WHEN ml.event_type = 'exit' THEN 1 END) AS exits_count
		FROM employees e
		LEFT JOIN movement_log ml
		       ON e.id = ml.employee_id AND DATE(ml.event_datetime) = ?
		WHERE e.is_active = true
		GROUP BY e.id, e.full_name, e.position
		ORDER BY e.full_name`,
		date.Format(dateLayout),
	).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("load daily report: %w", err)
	}

	for i := range rows {
		rows[i].HoursWorked = hoursBetween(rows[i].FirstEntry, rows[i].LastExit)
	}

	return rows, nil
}

// MovementHistory returns the employee's events whose date falls within
// [dateFrom, dateTo], newest first.
func (s *ReportService) MovementHistory(ctx context.Context, employeeID uint, dateFrom, dateTo time.Time) ([]MovementEntry, error) {
	if employeeID == 0 {
		return nil, apperror.New(apperror.CodeValidation, "employee_id must be a positive integer")
	}

	entries := []MovementEntry{}
	err := s.db.WithContext(ctx).Raw(`
		SELECT ml.id, ml.employee_id, ml.checkpoint_id, ml.event_type,
		       ml.event_datetime, ml.deny_reason,
		       e.full_name, c.name AS checkpoint_name
		FROM movement_log ml
		JOIN employees e ON ml.employee_id = e.id
		LEFT JOIN checkpoints c ON ml.checkpoint_id = c.id
		WHERE ml.employee_id = ? AND DATE(ml.event_datetime) BETWEEN ? AND ?
		ORDER BY ml.event_datetime DESC, ml.id DESC`,
		employeeID, dateFrom.Format(dateLayout), dateTo.Format(dateLayout),
	).Scan(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("load movement history: %w", err)
	}

	return entries, nil
}

type violationQueryRow struct {
	EmployeeID    uint
	FullName      string
	Position      string
	WorkDate      time.Time
	FirstEntry    time.Time
	WorkStartTime models.TimeOfDay
	IsLate        bool
}

// ViolationsReport lists every (employee, day) pair in the range whose
// earliest entry came after the employee's scheduled work start. Days
// without a single entry event never appear.
func (s *ReportService) ViolationsReport(ctx context.Context, dateFrom, dateTo time.Time) ([]ViolationRow, error) {
	queried := []violationQueryRow{}
	err := s.db.WithContext(ctx).Raw(`
		SELECT e.id AS employee_id, e.full_name, e.position,
		       DATE(ml.event_datetime) AS work_date,
		       MIN(CASE WHEN ml.event_type = 'entry' THEN ml.event_datetime END) AS first_entry,
		       e.work_start_time,
		       CASE WHEN MIN(CASE WHEN ml.event_type = 'entry' THEN ml.event_datetime END) >
		                 (DATE(ml.event_datetime) + e.work_start_time)
		            THEN true ELSE false END AS is_late
		FROM movement_log ml
		JOIN employees e ON ml.employee_id = e.id
		WHERE DATE(ml.event_datetime) BETWEEN ? AND ?
		GROUP BY e.id, e.full_name, e.position, DATE(ml.event_datetime), e.work_start_time
		HAVING MIN(CASE WHEN ml.event_type = 'entry' THEN ml.event_datetime END) IS NOT NULL
		ORDER BY work_date DESC, e.full_name`,
		dateFrom.Format(dateLayout), dateTo.Format(dateLayout),
	).Scan(&queried).Error
	if err != nil {
		return nil, fmt.Errorf("load violations report: %w", err)
	}

	return filterViolations(queried), nil
}

func filterViolations(rows []violationQueryRow) []ViolationRow {
	violations := []ViolationRow{}
	for _, row := range rows {
		if !row.IsLate {
			continue
		}
		violations = append(violations, ViolationRow{
			EmployeeID:    row.EmployeeID,
			FullName:      row.FullName,
			Position:      row.Position,
			WorkDate:      row.WorkDate.Format(dateLayout),
			FirstEntry:    row.FirstEntry,
			WorkStartTime: string(row.WorkStartTime),
			IsLate:        true,
		})
	}
	return violations
}
