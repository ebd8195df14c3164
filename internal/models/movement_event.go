package models

import "time"

type EventType string

const (
	EventTypeEntry  EventType = "entry"
	EventTypeExit   EventType = "exit"
	EventTypeDenied EventType = "denied"
)

// ValidRequestType reports whether t may be supplied by a caller.
// The denied type is assigned internally and never accepted from input.
func ValidRequestType(t EventType) bool {
	return t == EventTypeEntry || t == EventTypeExit
}

// MovementEvent is one row of the append-only movement log. Rows are never
// updated or deleted; event_datetime is set from the server clock on insert.
// employee_id carries no foreign key: a denied attempt for an id that is not
// in the roster must still be recorded for audit.
type MovementEvent struct {
	ID            uint        `gorm:"primaryKey"`
	EmployeeID    uint        `gorm:"not null;index"`
	CheckpointID  *uint       `gorm:"index"`
	Checkpoint    *Checkpoint `gorm:"foreignKey:CheckpointID"`
	EventType     EventType   `gorm:"type:varchar(10);not null"`
	EventDatetime time.Time   `gorm:"not null;index"`
	DenyReason    *string     `gorm:"type:varchar(200)"`
}

func (MovementEvent) TableName() string {
	return "movement_log"
}
