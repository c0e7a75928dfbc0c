package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(50);not null"`

	FirstName   string     `gorm:"type:varchar(100)"`
	LastName    string     `gorm:"type:varchar(100)"`
	Phone       string     `gorm:"type:varchar(50)"`
	Address     string     `gorm:"type:varchar(255)"`
	DateOfBirth *time.Time `gorm:"type:timestamp"`
	IDNumber    string     `gorm:"type:varchar(100)"`
	IDDocument  string     `gorm:"type:varchar(500)"`

	BusinessName      *string `gorm:"type:varchar(255)"`
	CACNumber         *string `gorm:"type:varchar(100)"`
	TaxID             *string `gorm:"type:varchar(100)"`
	BusinessAddress   *string `gorm:"type:varchar(255)"`
	BusinessDocuments []byte  `gorm:"type:jsonb"`

	KYCCompleted bool `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}
