package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// UserRole represents user roles
type UserRole string

const (
	UserRoleAdmin    UserRole = "ADMIN"
	UserRoleInvestor UserRole = "INVESTOR"
	UserRoleBusiness UserRole = "BUSINESS"
)

// User represents a platform user. Role is fixed at creation; KYCCompleted
// only ever transitions false -> true.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`

	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	DateOfBirth null.Time `json:"dateOfBirth,omitempty"`
	IDNumber    string    `json:"idNumber"`
	IDDocument  string    `json:"idDocument"`

	// Business-only fields, populated through the business-profile path
	BusinessName      null.String `json:"businessName,omitempty"`
	CACNumber         null.String `json:"cacNumber,omitempty"`
	TaxID             null.String `json:"taxId,omitempty"`
	BusinessAddress   null.String `json:"businessAddress,omitempty"`
	BusinessDocuments null.JSON   `json:"businessDocuments,omitempty"`

	KYCCompleted bool       `json:"kycCompleted"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	DeletedAt    *time.Time `json:"-"`
}

// RegisterInput represents input for user registration
type RegisterInput struct {
	Email     string   `json:"email" binding:"required,email"`
	Password  string   `json:"password" binding:"required,min=8"`
	FirstName string   `json:"firstName" binding:"required,min=2,max=100"`
	LastName  string   `json:"lastName" binding:"required,min=2,max=100"`
	Role      UserRole `json:"role" binding:"required"`
}

// LoginInput represents input for user login
type LoginInput struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	UseSession bool   `json:"useSession"` // If true, store tokens in Redis and return SessionID
}

// AuthResponse represents authentication response
type AuthResponse struct {
	AccessToken  string           `json:"accessToken,omitempty"`
	RefreshToken string           `json:"refreshToken,omitempty"`
	SessionID    string           `json:"sessionId,omitempty"`
	User         *ProfileResponse `json:"user"`
}

// ChangePasswordInput represents input for changing user password.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" binding:"required,min=8"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

// UpdateProfileInput is a partial patch of the generic profile fields.
// Nil fields are left untouched.
type UpdateProfileInput struct {
	FirstName   *string    `json:"firstName,omitempty"`
	LastName    *string    `json:"lastName,omitempty"`
	Phone       *string    `json:"phone,omitempty"`
	Address     *string    `json:"address,omitempty"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	IDNumber    *string    `json:"idNumber,omitempty"`
	IDDocument  *string    `json:"idDocument,omitempty"`
}

// UpdateBusinessProfileInput extends the generic patch with business-only
// fields. The whole patch is rejected for non-BUSINESS users, business
// fields present or not.
type UpdateBusinessProfileInput struct {
	UpdateProfileInput

	BusinessName      *string     `json:"businessName,omitempty"`
	CACNumber         *string     `json:"cacNumber,omitempty"`
	TaxID             *string     `json:"taxId,omitempty"`
	BusinessAddress   *string     `json:"businessAddress,omitempty"`
	BusinessDocuments interface{} `json:"businessDocuments,omitempty"`
}

// ProfileResponse is the fixed profile projection returned to the owner.
type ProfileResponse struct {
	ID                uuid.UUID   `json:"id"`
	Email             string      `json:"email"`
	Role              UserRole    `json:"role"`
	FirstName         string      `json:"firstName"`
	LastName          string      `json:"lastName"`
	Phone             string      `json:"phone"`
	Address           string      `json:"address"`
	DateOfBirth       null.Time   `json:"dateOfBirth,omitempty"`
	IDNumber          string      `json:"idNumber"`
	IDDocument        string      `json:"idDocument"`
	BusinessName      null.String `json:"businessName,omitempty"`
	CACNumber         null.String `json:"cacNumber,omitempty"`
	TaxID             null.String `json:"taxId,omitempty"`
	BusinessAddress   null.String `json:"businessAddress,omitempty"`
	BusinessDocuments null.JSON   `json:"businessDocuments,omitempty"`
	KYCCompleted      bool        `json:"kycCompleted"`
	CreatedAt         time.Time   `json:"createdAt"`
}

// UserSummary is the non-sensitive projection used on admin listings.
// Documents and business fields are deliberately excluded.
type UserSummary struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Role         UserRole  `json:"role"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Phone        string    `json:"phone"`
	KYCCompleted bool      `json:"kycCompleted"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Profile builds the owner-facing projection.
func (u *User) Profile() *ProfileResponse {
	return &ProfileResponse{
		ID:                u.ID,
		Email:             u.Email,
		Role:              u.Role,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		Phone:             u.Phone,
		Address:           u.Address,
		DateOfBirth:       u.DateOfBirth,
		IDNumber:          u.IDNumber,
		IDDocument:        u.IDDocument,
		BusinessName:      u.BusinessName,
		CACNumber:         u.CACNumber,
		TaxID:             u.TaxID,
		BusinessAddress:   u.BusinessAddress,
		BusinessDocuments: u.BusinessDocuments,
		KYCCompleted:      u.KYCCompleted,
		CreatedAt:         u.CreatedAt,
	}
}

// Summary builds the admin listing projection.
func (u *User) Summary() *UserSummary {
	return &UserSummary{
		ID:           u.ID,
		Email:        u.Email,
		Role:         u.Role,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Phone:        u.Phone,
		KYCCompleted: u.KYCCompleted,
		CreatedAt:    u.CreatedAt,
	}
}
