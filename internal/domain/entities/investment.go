package entities

import (
	"time"

	"github.com/google/uuid"
)

// Investment links an INVESTOR to a project. ExpectedReturn is
// amount * expectedROI / 100, fixed at investment time.
type Investment struct {
	ID             uuid.UUID `json:"id"`
	InvestorID     uuid.UUID `json:"investorId"`
	ProjectID      uuid.UUID `json:"projectId"`
	Amount         float64   `json:"amount"`
	ExpectedReturn float64   `json:"expectedReturn"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// InvestInput represents input for investing in a project
type InvestInput struct {
	ProjectID uuid.UUID `json:"projectId" binding:"required"`
	Amount    float64   `json:"amount" binding:"required,gt=0"`
}

// ExpectedReturn computes the return recorded for a contribution at the
// given whole-number ROI percentage.
func ExpectedReturn(amount, roi float64) float64 {
	return amount * roi / 100
}
