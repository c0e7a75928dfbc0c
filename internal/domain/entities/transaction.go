package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// TransactionType represents the direction of a money movement
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "DEPOSIT"
	TransactionTypeWithdrawal TransactionType = "WITHDRAWAL"
	TransactionTypeInvestment TransactionType = "INVESTMENT"
)

// TransactionStatus represents transaction processing status
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusCompleted TransactionStatus = "COMPLETED"
	TransactionStatusFailed    TransactionStatus = "FAILED"
)

// Transaction is an append-only record of money movement for a user.
type Transaction struct {
	ID          uuid.UUID         `json:"id"`
	UserID      uuid.UUID         `json:"userId"`
	Type        TransactionType   `json:"type"`
	Status      TransactionStatus `json:"status"`
	Amount      float64           `json:"amount"`
	Description string            `json:"description"`
	Reference   string            `json:"reference"`
	CompletedAt null.Time         `json:"completedAt,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
}
