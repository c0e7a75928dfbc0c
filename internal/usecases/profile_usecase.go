package usecases

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"bizfundraiser.backend/internal/domain/entities"
	domainerrors "bizfundraiser.backend/internal/domain/errors"
	"bizfundraiser.backend/internal/domain/repositories"
)

// Base identity fields every role must provide before KYC completes.
var kycBaseFields = []string{"firstName", "lastName", "phone", "address", "idNumber", "idDocument"}

// Business accounts additionally need their registration details.
var kycBusinessFields = []string{"businessName", "cacNumber", "taxId", "businessAddress"}

// RequiredKYCFields returns the required-field set for a role.
func RequiredKYCFields(role entities.UserRole) []string {
	if role == entities.UserRoleBusiness {
		fields := make([]string, 0, len(kycBaseFields)+len(kycBusinessFields))
		fields = append(fields, kycBaseFields...)
		return append(fields, kycBusinessFields...)
	}
	return kycBaseFields
}

// ProfileUsecase handles profile management and KYC completion
type ProfileUsecase struct {
	userRepo repositories.UserRepository
}

// NewProfileUsecase creates a new profile usecase
func NewProfileUsecase(userRepo repositories.UserRepository) *ProfileUsecase {
	return &ProfileUsecase{userRepo: userRepo}
}

// GetProfile returns the profile projection for a user
func (u *ProfileUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*entities.ProfileResponse, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Profile(), nil
}

// UpdateProfile applies a partial update of the generic profile fields.
// Any authenticated user may update their own generic profile.
func (u *ProfileUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, input *entities.UpdateProfileInput) (*entities.ProfileResponse, error) {
	updates := genericProfileUpdates(input)
	if err := u.userRepo.UpdateFields(ctx, userID, updates); err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Profile(), nil
}

// UpdateBusinessProfile applies a partial update including business-only
// fields. The role gate applies to the whole call: a non-BUSINESS user is
// rejected even when the patch carries no business fields.
func (u *ProfileUsecase) UpdateBusinessProfile(ctx context.Context, userID uuid.UUID, input *entities.UpdateBusinessProfileInput) (*entities.ProfileResponse, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role != entities.UserRoleBusiness {
		return nil, domainerrors.Forbidden("Only business accounts can update a business profile")
	}

	updates := genericProfileUpdates(&input.UpdateProfileInput)
	if input.BusinessName != nil {
		updates["business_name"] = *input.BusinessName
	}
	if input.CACNumber != nil {
		updates["cac_number"] = *input.CACNumber
	}
	if input.TaxID != nil {
		updates["tax_id"] = *input.TaxID
	}
	if input.BusinessAddress != nil {
		updates["business_address"] = *input.BusinessAddress
	}
	if input.BusinessDocuments != nil {
		docs, err := json.Marshal(input.BusinessDocuments)
		if err != nil {
			return nil, domainerrors.BadRequest("Invalid business documents payload")
		}
		updates["business_documents"] = docs
	}

	if err := u.userRepo.UpdateFields(ctx, userID, updates); err != nil {
		return nil, err
	}

	user, err = u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Profile(), nil
}

// CompleteKYC validates the role-dependent required fields and marks KYC
// complete. Repeat calls re-validate and re-set the flag; the flag never
// reverts to false.
func (u *ProfileUsecase) CompleteKYC(ctx context.Context, userID uuid.UUID) (*entities.ProfileResponse, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var missing []string
	for _, field := range RequiredKYCFields(user.Role) {
		if kycFieldValue(user, field) == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, domainerrors.ForbiddenFields("KYC incomplete: required fields missing", missing)
	}

	if err := u.userRepo.UpdateFields(ctx, userID, map[string]interface{}{"kyc_completed": true}); err != nil {
		return nil, err
	}

	user, err = u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Profile(), nil
}

// ListUsers returns the non-sensitive projection of all users, newest
// first. Route-level middleware restricts this to admins.
func (u *ProfileUsecase) ListUsers(ctx context.Context) ([]*entities.UserSummary, error) {
	users, err := u.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]*entities.UserSummary, 0, len(users))
	for _, user := range users {
		summaries = append(summaries, user.Summary())
	}
	return summaries, nil
}

func genericProfileUpdates(input *entities.UpdateProfileInput) map[string]interface{} {
	updates := map[string]interface{}{}
	if input.FirstName != nil {
		updates["first_name"] = *input.FirstName
	}
	if input.LastName != nil {
		updates["last_name"] = *input.LastName
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.Address != nil {
		updates["address"] = *input.Address
	}
	if input.DateOfBirth != nil {
		updates["date_of_birth"] = *input.DateOfBirth
	}
	if input.IDNumber != nil {
		updates["id_number"] = *input.IDNumber
	}
	if input.IDDocument != nil {
		updates["id_document"] = *input.IDDocument
	}
	return updates
}

func kycFieldValue(user *entities.User, field string) string {
	switch field {
	case "firstName":
		return user.FirstName
	case "lastName":
		return user.LastName
	case "phone":
		return user.Phone
	case "address":
		return user.Address
	case "idNumber":
		return user.IDNumber
	case "idDocument":
		return user.IDDocument
	case "businessName":
		return user.BusinessName.String
	case "cacNumber":
		return user.CACNumber.String
	case "taxId":
		return user.TaxID.String
	case "businessAddress":
		return user.BusinessAddress.String
	default:
		return ""
	}
}
