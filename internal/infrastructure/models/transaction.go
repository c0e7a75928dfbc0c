package models

import (
	"time"

	"github.com/google/uuid"
)

// Transaction rows are append-only; no soft delete column.
type Transaction struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null"`
	Type        string    `gorm:"type:varchar(50);not null"`
	Status      string    `gorm:"type:varchar(50);not null"`
	Amount      float64   `gorm:"type:numeric(20,2);not null"`
	Description string    `gorm:"type:varchar(255)"`
	Reference   string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	CompletedAt *time.Time
	CreatedAt   time.Time
}
