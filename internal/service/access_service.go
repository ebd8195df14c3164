package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pr-poehali-dev/employee-monitoring-app/internal/apperror"
	"github.com/pr-poehali-dev/employee-monitoring-app/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Denial reasons are persisted with the event and shown to the operator
// verbatim, so they stay in the wording the checkpoint terminals expect.
const (
	ReasonEmployeeNotFound    = "Сотрудник не найден"
	ReasonEmployeeDeactivated = "Сотрудник деактивирован"
	ReasonAccessDenied        = "Доступ запрещен"
)

type AccessService struct {
	db                  *gorm.DB
	primaryCheckpointID uint
}

func NewAccessService(db *gorm.DB, primaryCheckpointID uint) *AccessService {
	return &AccessService{
		db:                  db,
		primaryCheckpointID: primaryCheckpointID,
	}
}

// RegisterMovement checks the employee's eligibility and appends one row to
// the movement log. Eligibility failures are recorded as denied events and
// returned as a rejected result, not as an error.
func (s *AccessService) RegisterMovement(ctx context.Context, input RegisterMovementInput) (MovementResult, error) {
	if input.EmployeeID == 0 {
		return MovementResult{}, apperror.New(apperror.CodeValidation, "employee_id must be a positive integer")
	}
	if !models.ValidRequestType(input.EventType) {
		return MovementResult{}, apperror.New(apperror.CodeValidation, "event_type must be one of: entry, exit")
	}

	checkpointID := s.primaryCheckpointID
	if input.CheckpointID != nil {
		checkpointID = *input.CheckpointID
	}

	var employee models.Employee
	err := s.db.WithContext(ctx).First(&employee, input.EmployeeID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return s.deny(ctx, input.EmployeeID, checkpointID, ReasonEmployeeNotFound)
	case err != nil:
		return MovementResult{}, fmt.Errorf("load employee: %w", err)
	}

	if !employee.IsActive {
		return s.deny(ctx, employee.ID, checkpointID, ReasonEmployeeDeactivated)
	}
	if !employee.AccessGranted {
		return s.deny(ctx, employee.ID, checkpointID, ReasonAccessDenied)
	}

	event, err := s.appendEvent(ctx, employee.ID, checkpointID, input.EventType, nil)
	if err != nil {
		return MovementResult{}, err
	}

	isLate := false
	if input.EventType == models.EventTypeEntry {
		late, err := arrivedAfter(event.EventDatetime, string(employee.WorkStartTime))
		if err != nil {
			return MovementResult{}, fmt.Errorf("employee %d: %w", employee.ID, err)
		}
		isLate = late
	}

	return MovementResult{
		Allowed:       true,
		EventID:       event.ID,
		EmployeeName:  employee.FullName,
		EventDatetime: event.EventDatetime,
		IsLate:        isLate,
	}, nil
}

func (s *AccessService) deny(ctx context.Context, employeeID, checkpointID uint, reason string) (MovementResult, error) {
	if _, err := s.appendEvent(ctx, employeeID, checkpointID, models.EventTypeDenied, &reason); err != nil {
		return MovementResult{}, err
	}

	return MovementResult{
		Allowed: false,
		Reason:  reason,
	}, nil
}

func (s *AccessService) appendEvent(ctx context.Context, employeeID, checkpointID uint, eventType models.EventType, denyReason *string) (models.MovementEvent, error) {
	event := models.MovementEvent{
		EmployeeID:    employeeID,
		CheckpointID:  &checkpointID,
		EventType:     eventType,
		EventDatetime: time.Now(),
		DenyReason:    denyReason,
	}

	if err := s.db.WithContext(ctx).Create(&event).Error; err != nil {
		return models.MovementEvent{}, mapDatabaseError(err)
	}
	return event, nil
}

// EmployeeHistory returns the employee's 50 most recent events, newest first.
func (s *AccessService) EmployeeHistory(ctx context.Context, employeeID uint) ([]MovementEntry, error) {
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
		WHERE ml.employee_id = ?
		ORDER BY ml.event_datetime DESC, ml.id DESC
		LIMIT 50`,
		employeeID,
	).Scan(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("load employee history: %w", err)
	}

	return entries, nil
}

// RosterStatus reports every active employee's presence derived from their
// most recent event today: entry means active, anything else (exit, denied,
// or no event at all) means offline.
func (s *AccessService) RosterStatus(ctx context.Context) ([]RosterEntry, error) {
	entries := []RosterEntry{}
	err := s.db.WithContext(ctx).Raw(`
		SELECT e.id, e.full_name, e.position, e.phone,
		       CASE WHEN ml.event_type = 'entry' THEN 'active' ELSE 'offline' END AS status
		FROM employees e
		LEFT JOIN LATERAL (
			SELECT event_type FROM movement_log
			WHERE employee_id = e.id AND DATE(event_datetime) = CURRENT_DATE
			ORDER BY event_datetime DESC, id DESC
			LIMIT 1
		) ml ON true
		WHERE e.is_active = true
		ORDER BY e.full_name`,
	).Scan(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("load roster status: %w", err)
	}

	return entries, nil
}

func mapDatabaseError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return apperror.New(apperror.CodeValidation, "invalid checkpoint reference")
	}
	return err
}
