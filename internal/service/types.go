package service

import (
	"context"
	"time"

	"github.com/pr-poehali-dev/employee-monitoring-app/internal/models"
)

type PresenceStatus string

const (
	PresenceActive  PresenceStatus = "active"
	PresenceOffline PresenceStatus = "offline"
)

type RegisterMovementInput struct {
	EmployeeID   uint
	EventType    models.EventType
	CheckpointID *uint
}

// MovementResult is the outcome of a check-in/check-out attempt. A denial is
// a normal outcome, not an error: the denied event is already persisted and
// Reason explains it to the caller.
type MovementResult struct {
	Allowed       bool
	Reason        string
	EventID       uint
	EmployeeName  string
	EventDatetime time.Time
	IsLate        bool
}

type MovementEntry struct {
	ID             uint             `json:"id"`
	EmployeeID     uint             `json:"employee_id"`
	CheckpointID   *uint            `json:"checkpoint_id"`
	EventType      models.EventType `json:"event_type"`
	EventDatetime  time.Time        `json:"event_datetime"`
	DenyReason     *string          `json:"deny_reason"`
	FullName       string           `json:"full_name"`
	CheckpointName *string          `json:"checkpoint_name"`
}

type RosterEntry struct {
	ID       uint           `json:"id"`
	FullName string         `json:"full_name"`
	Position string         `json:"position"`
	Phone    string         `json:"phone"`
	Status   PresenceStatus `json:"status"`
}

type DailyReportRow struct {
	EmployeeID   uint       `json:"id"`
	FullName     string     `json:"full_name"`
	Position     string     `json:"position"`
	FirstEntry   *time.Time `json:"first_entry"`
	LastExit     *time.Time `json:"last_exit"`
	EntriesCount int        `json:"entries_count"`
	ExitsCount   int        `json:"exits_count"`
	HoursWorked  float64    `json:"hours_worked"`
}

type ViolationRow struct {
	EmployeeID    uint      `json:"id"`
	FullName      string    `json:"full_name"`
	Position      string    `json:"position"`
	WorkDate      string    `json:"work_date"`
	FirstEntry    time.Time `json:"first_entry"`
	WorkStartTime string    `json:"work_start_time"`
	IsLate        bool      `json:"is_late"`
}

type AccessManager interface {
	RegisterMovement(ctx context.Context, input RegisterMovementInput) (MovementResult, error)
	EmployeeHistory(ctx context.Context, employeeID uint) ([]MovementEntry, error)
	RosterStatus(ctx context.Context) ([]RosterEntry, error)
}

type ReportManager interface {
	DailyReport(ctx context.Context, date time.Time) ([]DailyReportRow, error)
	MovementHistory(ctx context.Context, employeeID uint, dateFrom, dateTo time.Time) ([]MovementEntry, error)
	ViolationsReport(ctx context.Context, dateFrom, dateTo time.Time) ([]ViolationRow, error)
}
