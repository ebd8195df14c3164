package models

// Checkpoint is a physical access point. Static reference data.
type Checkpoint struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(200);not null"`
}
