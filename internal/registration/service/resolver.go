package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"farmgate/internal/registration/models"
	dErrors "farmgate/pkg/domain-errors"
	"farmgate/pkg/platform/sentinel"
)

// Reference resolution rules. The asymmetry here is deliberate and load
// bearing for bulk-import compatibility: an id-based lookup that misses is a
// hard validation failure, while free-text resolution degrades to "no match"
// with a log line and registration continues.

const autoCreatedDescription = "Auto-created during farmer registration"

// resolveSoilType returns the soil type id for the merged farm input, or nil
// when nothing resolves.
func (s *Service) resolveSoilType(ctx context.Context, id *int64, name *string) (*int64, error) {
	if id != nil {
		st, err := s.stores.SoilTypes.GetByID(ctx, *id)
		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return nil, dErrors.New(dErrors.CodeValidation,
					fmt.Sprintf("soil type id %d does not exist", *id))
			}
			return nil, fmt.Errorf("look up soil type: %w", err)
		}
		return &st.ID, nil
	}
	if name == nil || strings.TrimSpace(*name) == "" {
		return nil, nil
	}

	trimmed := strings.TrimSpace(*name)
	if cached, ok := s.cache.GetID(ctx, "soil_type", strings.ToLower(trimmed)); ok {
		return &cached, nil
	}

	st, created, err := s.findOrCreateSoilType(ctx, trimmed)
	if err != nil {
		s.logger.WarnContext(ctx, "soil type resolution failed, leaving unset",
			"name", trimmed, "error", err)
		return nil, nil
	}
	// Only pre-existing rows are cached. A row created here is not durable
	// until the surrounding transaction commits; caching its id would poison
	// later requests if the transaction rolls back.
	if !created {
		s.cache.SetID(ctx, "soil_type", strings.ToLower(trimmed), st.ID)
	}
	return &st.ID, nil
}

func (s *Service) findOrCreateSoilType(ctx context.Context, name string) (st *models.SoilType, created bool, err error) {
	st, err = s.stores.SoilTypes.FindByName(ctx, name)
	if err == nil {
		return st, false, nil
	}
	if !errors.Is(err, sentinel.ErrNotFound) {
		return nil, false, err
	}

	st = &models.SoilType{Name: name, Description: autoCreatedDescription}
	if err := s.stores.SoilTypes.Create(ctx, st); err != nil {
		// Lost a creation race; the winner's row is authoritative.
		if errors.Is(err, sentinel.ErrConflict) {
			winner, ferr := s.stores.SoilTypes.FindByName(ctx, name)
			return winner, false, ferr
		}
		return nil, false, err
	}
	return st, true, nil
}

// resolveIrrigationType returns the resolved entity so the caller can check
// the type name when deriving plants per acre.
func (s *Service) resolveIrrigationType(ctx context.Context, id *int64, name *string) (*models.IrrigationType, error) {
	if id != nil {
		it, err := s.stores.IrrigationTypes.GetByID(ctx, *id)
		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return nil, dErrors.New(dErrors.CodeValidation,
					fmt.Sprintf("irrigation type id %d does not exist", *id))
			}
			return nil, fmt.Errorf("look up irrigation type: %w", err)
		}
		return it, nil
	}
	if name == nil || strings.TrimSpace(*name) == "" {
		return nil, nil
	}

	trimmed := strings.TrimSpace(*name)
	it, err := s.stores.IrrigationTypes.FindByName(ctx, trimmed)
	if err == nil {
		return it, nil
	}
	if !errors.Is(err, sentinel.ErrNotFound) {
		s.logger.WarnContext(ctx, "irrigation type resolution failed, leaving unset",
			"name", trimmed, "error", err)
		return nil, nil
	}

	it = &models.IrrigationType{Name: trimmed, Description: autoCreatedDescription}
	if err := s.stores.IrrigationTypes.Create(ctx, it); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			if winner, ferr := s.stores.IrrigationTypes.FindByName(ctx, trimmed); ferr == nil {
				return winner, nil
			}
		}
		s.logger.WarnContext(ctx, "irrigation type auto-create failed, leaving unset",
			"name", trimmed, "error", err)
		return nil, nil
	}
	return it, nil
}

// plantationStrategy is one step of the free-text lookup cascade.
type plantationStrategy func(ctx context.Context) (*models.PlantationType, error)

// resolvePlantationType resolves a plantation type from an id or free text.
// Free text cascades: code in the operator's industry, name in the industry,
// code across industries, name across industries, then auto-create scoped to
// the operator's industry.
func (s *Service) resolvePlantationType(ctx context.Context, operator *models.Operator, id *int64, text *string) (*models.PlantationType, error) {
	if id != nil {
		pt, err := s.stores.PlantationTypes.GetByID(ctx, *id)
		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return nil, dErrors.New(dErrors.CodeValidation,
					fmt.Sprintf("plantation type id %d does not exist", *id))
			}
			return nil, fmt.Errorf("look up plantation type: %w", err)
		}
		return pt, nil
	}
	if text == nil || strings.TrimSpace(*text) == "" {
		return nil, nil
	}
	hint := strings.TrimSpace(*text)

	var strategies []plantationStrategy
	if operator.HasIndustry() {
		industryID := *operator.IndustryID
		strategies = append(strategies,
			func(ctx context.Context) (*models.PlantationType, error) {
				return s.stores.PlantationTypes.FindByCode(ctx, industryID, hint)
			},
			func(ctx context.Context) (*models.PlantationType, error) {
				return s.stores.PlantationTypes.FindByName(ctx, industryID, hint)
			},
		)
	}
	strategies = append(strategies,
		func(ctx context.Context) (*models.PlantationType, error) {
			return s.stores.PlantationTypes.FindByCodeAny(ctx, hint)
		},
		func(ctx context.Context) (*models.PlantationType, error) {
			return s.stores.PlantationTypes.FindByNameAny(ctx, hint)
		},
	)

	for _, try := range strategies {
		pt, err := try(ctx)
		if err == nil {
			return pt, nil
		}
		if !errors.Is(err, sentinel.ErrNotFound) {
			s.logger.WarnContext(ctx, "plantation type lookup failed, leaving unset",
				"hint", hint, "error", err)
			return nil, nil
		}
	}

	pt := &models.PlantationType{
		IndustryID:  operator.IndustryID,
		Code:        hint,
		Name:        titleWords(hint),
		IsActive:    true,
		Description: autoCreatedDescription,
	}
	if err := s.stores.PlantationTypes.Create(ctx, pt); err != nil {
		if errors.Is(err, sentinel.ErrConflict) && operator.HasIndustry() {
			if winner, ferr := s.stores.PlantationTypes.FindByCode(ctx, *operator.IndustryID, hint); ferr == nil {
				return winner, nil
			}
		}
		s.logger.WarnContext(ctx, "plantation type auto-create failed, leaving unset",
			"hint", hint, "error", err)
		return nil, nil
	}
	return pt, nil
}

type plantingStrategy func(ctx context.Context) (*models.PlantingMethod, error)

// resolvePlantingMethod mirrors the plantation cascade. Auto-created methods
// are linked to the resolved plantation type when one exists.
func (s *Service) resolvePlantingMethod(ctx context.Context, operator *models.Operator, plantationType *models.PlantationType, id *int64, text *string) (*models.PlantingMethod, error) {
	if id != nil {
		pm, err := s.stores.PlantingMethods.GetByID(ctx, *id)
		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return nil, dErrors.New(dErrors.CodeValidation,
					fmt.Sprintf("planting method id %d does not exist", *id))
			}
			return nil, fmt.Errorf("look up planting method: %w", err)
		}
		return pm, nil
	}
	if text == nil || strings.TrimSpace(*text) == "" {
		return nil, nil
	}
	hint := strings.TrimSpace(*text)

	var strategies []plantingStrategy
	if operator.HasIndustry() {
		industryID := *operator.IndustryID
		strategies = append(strategies,
			func(ctx context.Context) (*models.PlantingMethod, error) {
				return s.stores.PlantingMethods.FindByCode(ctx, industryID, hint)
			},
			func(ctx context.Context) (*models.PlantingMethod, error) {
				return s.stores.PlantingMethods.FindByName(ctx, industryID, hint)
			},
		)
	}
	strategies = append(strategies,
		func(ctx context.Context) (*models.PlantingMethod, error) {
			return s.stores.PlantingMethods.FindByCodeAny(ctx, hint)
		},
		func(ctx context.Context) (*models.PlantingMethod, error) {
			return s.stores.PlantingMethods.FindByNameAny(ctx, hint)
		},
	)

	for _, try := range strategies {
		pm, err := try(ctx)
		if err == nil {
			return pm, nil
		}
		if !errors.Is(err, sentinel.ErrNotFound) {
			s.logger.WarnContext(ctx, "planting method lookup failed, leaving unset",
				"hint", hint, "error", err)
			return nil, nil
		}
	}

	pm := &models.PlantingMethod{
		IndustryID:  operator.IndustryID,
		Code:        hint,
		Name:        titleWords(hint),
		IsActive:    true,
		Description: autoCreatedDescription,
	}
	if plantationType != nil {
		pm.PlantationTypeID = &plantationType.ID
	}
	if err := s.stores.PlantingMethods.Create(ctx, pm); err != nil {
		if errors.Is(err, sentinel.ErrConflict) && operator.HasIndustry() {
			if winner, ferr := s.stores.PlantingMethods.FindByCode(ctx, *operator.IndustryID, hint); ferr == nil {
				return winner, nil
			}
		}
		s.logger.WarnContext(ctx, "planting method auto-create failed, leaving unset",
			"hint", hint, "error", err)
		return nil, nil
	}
	return pm, nil
}

// resolveCropType finds or creates the crop type for the merged farm input.
// When plantation data resolved, identity is the full (name, plantation,
// planting) triple; a row found by name alone with no links yet is
// backfilled rather than duplicated.
func (s *Service) resolveCropType(ctx context.Context, id *int64, name *string, plantationType *models.PlantationType, plantingMethod *models.PlantingMethod) (*int64, error) {
	if id != nil {
		ct, err := s.stores.CropTypes.GetByID(ctx, *id)
		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return nil, dErrors.New(dErrors.CodeValidation,
					fmt.Sprintf("crop type id %d does not exist", *id))
			}
			return nil, fmt.Errorf("look up crop type: %w", err)
		}
		return &ct.ID, nil
	}
	if name == nil || strings.TrimSpace(*name) == "" {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*name)

	var ptID, pmID *int64
	if plantationType != nil {
		ptID = &plantationType.ID
	}
	if plantingMethod != nil {
		pmID = &plantingMethod.ID
	}

	ct, err := s.findOrCreateCropType(ctx, trimmed, ptID, pmID)
	if err != nil {
		s.logger.WarnContext(ctx, "crop type resolution failed, leaving unset",
			"name", trimmed, "error", err)
		return nil, nil
	}
	return &ct.ID, nil
}

func (s *Service) findOrCreateCropType(ctx context.Context, name string, ptID, pmID *int64) (*models.CropType, error) {
	if ptID == nil && pmID == nil {
		// No plantation data: plain find-or-create by name.
		ct, err := s.stores.CropTypes.FindByName(ctx, name)
		if err == nil {
			return ct, nil
		}
		if !errors.Is(err, sentinel.ErrNotFound) {
			return nil, err
		}
		ct = &models.CropType{Name: name}
		if err := s.stores.CropTypes.Create(ctx, ct); err != nil {
			if errors.Is(err, sentinel.ErrConflict) {
				return s.stores.CropTypes.FindByName(ctx, name)
			}
			return nil, err
		}
		return ct, nil
	}

	ct, err := s.stores.CropTypes.FindByIdentity(ctx, name, ptID, pmID)
	if err == nil {
		return ct, nil
	}
	if !errors.Is(err, sentinel.ErrNotFound) {
		return nil, err
	}

	// A same-name row without plantation links predates plantation data.
	// Backfill it instead of creating a sibling. The update goes through a
	// copy: stores may hand out shared rows, and mutating one in place would
	// survive a rollback.
	if existing, err := s.stores.CropTypes.FindByName(ctx, name); err == nil {
		if existing.PlantationTypeID == nil && existing.PlantingMethodID == nil {
			backfilled := *existing
			backfilled.PlantationTypeID = ptID
			backfilled.PlantingMethodID = pmID
			if err := s.stores.CropTypes.Update(ctx, &backfilled); err != nil {
				return nil, err
			}
			return &backfilled, nil
		}
	} else if !errors.Is(err, sentinel.ErrNotFound) {
		return nil, err
	}

	ct = &models.CropType{Name: name, PlantationTypeID: ptID, PlantingMethodID: pmID}
	if err := s.stores.CropTypes.Create(ctx, ct); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return s.stores.CropTypes.FindByIdentity(ctx, name, ptID, pmID)
		}
		return nil, err
	}
	return ct, nil
}

// parsePlantationDate accepts ISO YYYY-MM-DD. Anything else is logged and
// yields no date.
func (s *Service) parsePlantationDate(ctx context.Context, raw string) *time.Time {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", strings.TrimSpace(raw))
	if err != nil {
		s.logger.WarnContext(ctx, "unparseable plantation date, leaving unset",
			"value", raw)
		return nil
	}
	return &t
}

// titleWords turns a free-text code like "drip_basin" into "Drip Basin".
func titleWords(code string) string {
	words := strings.FieldsFunc(code, func(r rune) bool {
		return r == '_' || r == ' '
	})
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
