package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Project struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	BusinessID      uuid.UUID `gorm:"type:uuid;index;not null"`
	Title           string    `gorm:"type:varchar(255);not null"`
	Description     string    `gorm:"type:text"`
	AmountRequested float64   `gorm:"type:numeric(20,2);not null"`
	AmountRaised    float64   `gorm:"type:numeric(20,2);not null;default:0"`
	DurationMonths  int       `gorm:"not null"`
	ExpectedROI     float64   `gorm:"type:numeric(6,2);not null"`
	Status          string    `gorm:"type:varchar(50);not null;default:'PENDING'"`
	Documents       []byte    `gorm:"type:jsonb"`
	FundedAt        *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}
