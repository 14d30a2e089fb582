package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"farmgate/internal/registration/models"
	dErrors "farmgate/pkg/domain-errors"
	"farmgate/pkg/platform/sentinel"
	"farmgate/pkg/requestcontext"
	"farmgate/pkg/secrets"
)

const farmerRoleName = "farmer"

// createFarmer validates the farmer block, normalizes the phone number and
// persists the new account. Uniqueness is checked up front for a clear
// message and backed by store constraints for races.
func (s *Service) createFarmer(ctx context.Context, in *models.FarmerInput, operator *models.Operator) (*models.Farmer, error) {
	if in == nil {
		return nil, dErrors.New(dErrors.CodeValidation, "missing required field: farmer")
	}
	for _, f := range []struct{ name, value string }{
		{"username", in.Username},
		{"email", in.Email},
		{"password", in.Password},
		{"first_name", in.FirstName},
		{"last_name", in.LastName},
	} {
		if strings.TrimSpace(f.value) == "" {
			return nil, dErrors.New(dErrors.CodeValidation, "missing required farmer field: "+f.name)
		}
	}

	if !operator.HasIndustry() {
		return nil, dErrors.New(dErrors.CodePrecondition,
			fmt.Sprintf("operator %s has no industry assigned; assign an industry before registering farmers", operator.Username))
	}

	phone, err := s.normalizePhone(in.Phone)
	if err != nil {
		return nil, err
	}

	if _, err := s.stores.Farmers.GetByUsername(ctx, in.Username); err == nil {
		return nil, dErrors.New(dErrors.CodeConflict, "username already exists: "+in.Username)
	} else if !errors.Is(err, sentinel.ErrNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if _, err := s.stores.Farmers.GetByEmail(ctx, in.Email); err == nil {
		return nil, dErrors.New(dErrors.CodeConflict, "email already exists: "+in.Email)
	} else if !errors.Is(err, sentinel.ErrNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if phone != "" {
		if _, err := s.stores.Farmers.GetByPhone(ctx, phone); err == nil {
			return nil, dErrors.New(dErrors.CodeConflict, "phone number already registered: "+phone)
		} else if !errors.Is(err, sentinel.ErrNotFound) {
			return nil, fmt.Errorf("check phone: %w", err)
		}
	}

	role, err := s.stores.Roles.GetByName(ctx, farmerRoleName)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodePrecondition,
				"system role 'farmer' does not exist; seed roles before registering farmers")
		}
		return nil, fmt.Errorf("look up farmer role: %w", err)
	}

	hash, err := secrets.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	farmer := &models.Farmer{
		ID:           uuid.New(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Phone:        phone,
		Address:      in.Address,
		Village:      in.Village,
		District:     in.District,
		State:        in.State,
		Taluka:       in.Taluka,
		RoleID:       role.ID,
		IndustryID:   operator.IndustryID,
		CreatedBy:    operator.ID,
		CreatedAt:    requestcontext.Now(ctx),
	}

	if err := s.stores.Farmers.Create(ctx, farmer); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeConflict,
				"farmer with the same username, email or phone already exists")
		}
		return nil, fmt.Errorf("create farmer: %w", err)
	}
	return farmer, nil
}

// normalizePhone strips formatting from a phone number and validates the
// result. The country dial prefix is removed when the number carries it.
// Empty input is "no phone", not an error.
func (s *Service) normalizePhone(raw string) (string, error) {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	phone := digits.String()
	if phone == "" {
		return "", nil
	}

	prefix := s.countryDialPrefix
	if len(phone) == 10+len(prefix) && strings.HasPrefix(phone, prefix) {
		phone = phone[len(prefix):]
	}
	if len(phone) != 10 {
		return "", dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("invalid phone number format: %q must normalize to 10 digits", raw))
	}
	return phone, nil
}
