package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ProjectStatus represents the funding lifecycle of a project
type ProjectStatus string

const (
	ProjectStatusPending  ProjectStatus = "PENDING"
	ProjectStatusApproved ProjectStatus = "APPROVED"
	ProjectStatusFunded   ProjectStatus = "FUNDED"
	ProjectStatusRejected ProjectStatus = "REJECTED"
)

// Project is a fundraising campaign owned by a BUSINESS user.
// Status moves PENDING -> APPROVED -> FUNDED once cumulative investment
// reaches the requested amount.
type Project struct {
	ID              uuid.UUID     `json:"id"`
	BusinessID      uuid.UUID     `json:"businessId"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	AmountRequested float64       `json:"amountRequested"`
	AmountRaised    float64       `json:"amountRaised"`
	DurationMonths  int           `json:"durationMonths"`
	ExpectedROI     float64       `json:"expectedRoi"` // whole-number percentage
	Status          ProjectStatus `json:"status"`
	Documents       null.JSON     `json:"documents,omitempty"`
	FundedAt        null.Time     `json:"fundedAt,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
	DeletedAt       *time.Time    `json:"-"`
}

// CreateProjectInput represents input for creating a project
type CreateProjectInput struct {
	Title           string      `json:"title" binding:"required,min=3,max=255"`
	Description     string      `json:"description" binding:"required"`
	AmountRequested float64     `json:"amountRequested" binding:"required,gt=0"`
	DurationMonths  int         `json:"durationMonths" binding:"required,gt=0"`
	ExpectedROI     float64     `json:"expectedRoi" binding:"required,gt=0"`
	Documents       interface{} `json:"documents,omitempty"`
}
