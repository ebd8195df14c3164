package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// TimeOfDay holds a Postgres time-of-day column as "HH:MM:SS". Drivers
// disagree on how they surface TIME values, so it scans from string, bytes
// and time.Time alike.
type TimeOfDay string

func (t *TimeOfDay) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*t = ""
	case string:
		*t = TimeOfDay(v)
	case []byte:
		*t = TimeOfDay(v)
	case time.Time:
		*t = TimeOfDay(v.Format("15:04:05"))
	default:
		return fmt.Errorf("cannot scan %T into TimeOfDay", value)
	}
	return nil
}

func (t TimeOfDay) Value() (driver.Value, error) {
	return string(t), nil
}

// Employee is the HR roster row. This service only reads it; employee
// management lives in the admin application that owns the table.
type Employee struct {
	ID            uint      `gorm:"primaryKey"`
	FullName      string    `gorm:"type:varchar(200);not null"`
	Position      string    `gorm:"type:varchar(200)"`
	Phone         string    `gorm:"type:varchar(50)"`
	AccessGranted bool      `gorm:"not null"`
	WorkStartTime TimeOfDay `gorm:"type:time;not null"`
	WorkEndTime   TimeOfDay `gorm:"type:time;not null"`
	IsActive      bool      `gorm:"not null;index"`
}
