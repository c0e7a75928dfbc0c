package models

import (
	"time"

	"github.com/google/uuid"
)

type Investment struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	InvestorID     uuid.UUID `gorm:"type:uuid;index;not null"`
	ProjectID      uuid.UUID `gorm:"type:uuid;index;not null"`
	Amount         float64   `gorm:"type:numeric(20,2);not null"`
	ExpectedReturn float64   `gorm:"type:numeric(20,2);not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
