package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"farmgate/internal/registration/models"
	dErrors "farmgate/pkg/domain-errors"
	"farmgate/pkg/requestcontext"
)

// createFarm builds and persists a farm from the merged farm input. Address
// and area size are required; reference fields resolve through the cascade
// and may legitimately end up unset.
func (s *Service) createFarm(ctx context.Context, merged *models.FarmInput, farmer *models.Farmer, plot *models.Plot, operator *models.Operator) (*models.Farm, error) {
	if strings.TrimSpace(merged.Address) == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "missing required farm field: address")
	}
	if merged.AreaSize.String() == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "missing required farm field: area_size")
	}
	areaSize, err := merged.AreaSize.Float64()
	if err != nil {
		return nil, dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("invalid farm area_size: %q is not a number", merged.AreaSize.String()))
	}

	soilTypeID, err := s.resolveSoilType(ctx, merged.SoilTypeID, merged.SoilType)
	if err != nil {
		return nil, err
	}
	plantationType, err := s.resolvePlantationType(ctx, operator, merged.PlantationTypeID, merged.PlantationType)
	if err != nil {
		return nil, err
	}
	plantingMethod, err := s.resolvePlantingMethod(ctx, operator, plantationType, merged.PlantingMethodID, merged.PlantingMethod)
	if err != nil {
		return nil, err
	}
	cropTypeID, err := s.resolveCropType(ctx, merged.CropTypeID, merged.CropType, plantationType, plantingMethod)
	if err != nil {
		return nil, err
	}

	farm := &models.Farm{
		ID:             uuid.New(),
		FarmUID:        uuid.New(),
		FarmerID:       farmer.ID,
		CreatedBy:      operator.ID,
		Address:        merged.Address,
		AreaSize:       areaSize,
		SoilTypeID:     soilTypeID,
		CropTypeID:     cropTypeID,
		PlantationDate: s.parsePlantationDate(ctx, merged.PlantationDate),
		SpacingA:       s.parseSpacing(ctx, "spacing_a", merged.SpacingA),
		SpacingB:       s.parseSpacing(ctx, "spacing_b", merged.SpacingB),
		CreatedAt:      requestcontext.Now(ctx),
	}
	if plot != nil {
		farm.PlotID = &plot.ID
	}

	if err := s.stores.Farms.Create(ctx, farm); err != nil {
		return nil, fmt.Errorf("create farm: %w", err)
	}
	return farm, nil
}

// parseSpacing soft-fails: a malformed spacing value is logged and dropped,
// it never aborts the registration.
func (s *Service) parseSpacing(ctx context.Context, field string, n json.Number) *float64 {
	if n.String() == "" {
		return nil
	}
	v, err := n.Float64()
	if err != nil {
		s.logger.WarnContext(ctx, "unparseable spacing value, leaving unset",
			"field", field, "value", n.String())
		return nil
	}
	return &v
}
