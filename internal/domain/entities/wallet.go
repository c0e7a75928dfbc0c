package entities

import (
	"time"

	"github.com/google/uuid"
)

// Wallet holds a user's balance. Every user has exactly one wallet,
// created with a zero balance at registration.
type Wallet struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"userId"`
	Balance   float64    `json:"balance"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"-"`
}

// DepositInput represents input for a wallet deposit
type DepositInput struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}
