package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"farmgate/internal/registration/models"
	"farmgate/pkg/geo"
)

// squareFeetPerAcre is the constant behind the plants-per-acre derivation;
// spacing values are assumed to be in feet.
const squareFeetPerAcre = 43560

const dripTypeName = "drip"

// createIrrigation builds and persists the irrigation setup for a farm.
// Everything beyond the farm linkage is optional; malformed physical
// parameters are dropped rather than failing the registration.
func (s *Service) createIrrigation(ctx context.Context, in *models.IrrigationInput, farm *models.Farm, plot *models.Plot, merged *models.FarmInput) (*models.FarmIrrigation, error) {
	irrigationType, err := s.resolveIrrigationType(ctx, in.IrrigationTypeID, in.IrrigationType)
	if err != nil {
		return nil, err
	}

	location, err := s.irrigationLocation(ctx, in.Location, plot)
	if err != nil {
		return nil, err
	}

	irrigation := &models.FarmIrrigation{
		ID:                   uuid.New(),
		FarmID:               farm.ID,
		Location:             location,
		Status:               in.Status == nil || *in.Status,
		MotorHorsepower:      s.parseMeasure(ctx, "motor_horsepower", in.MotorHorsepower),
		PipeWidthInches:      s.parseMeasure(ctx, "pipe_width_inches", in.PipeWidthInches),
		DistanceMotorToPlotM: s.parseMeasure(ctx, "distance_motor_to_plot_m", in.DistanceMotorToPlot),
		PlantsPerAcre:        s.parseMeasure(ctx, "plants_per_acre", in.PlantsPerAcre),
		FlowRateLPH:          s.parseMeasure(ctx, "flow_rate_lph", in.FlowRateLPH),
		EmittersCount:        in.EmittersCount,
	}
	if irrigationType != nil {
		irrigation.IrrigationTypeID = &irrigationType.ID
	}

	if irrigation.PlantsPerAcre == nil {
		irrigation.PlantsPerAcre = s.derivePlantsPerAcre(ctx, irrigationType, merged)
	}

	if err := s.validateIrrigationParameters(irrigationType, irrigation); err != nil {
		return nil, err
	}

	if err := s.stores.Irrigations.Create(ctx, irrigation); err != nil {
		return nil, fmt.Errorf("create irrigation: %w", err)
	}
	return irrigation, nil
}

// irrigationLocation applies the location precedence: explicit geometry,
// then the plot's stored location, then the origin point. Missing location
// is never a failure; malformed explicit geometry still is.
func (s *Service) irrigationLocation(ctx context.Context, raw json.RawMessage, plot *models.Plot) (*geo.Geometry, error) {
	if len(raw) > 0 {
		return geo.FromJSON(raw)
	}
	if plot != nil && plot.Location != nil {
		return plot.Location, nil
	}
	return geo.Point(0, 0), nil
}

// derivePlantsPerAcre computes square feet per acre divided by the spacing
// rectangle, only for drip irrigation with both spacing dimensions present
// and positive. Any other condition leaves the value unset without failing.
func (s *Service) derivePlantsPerAcre(ctx context.Context, irrigationType *models.IrrigationType, merged *models.FarmInput) *float64 {
	if irrigationType == nil || !strings.EqualFold(irrigationType.Name, dripTypeName) {
		return nil
	}
	if merged == nil {
		return nil
	}

	spacingA := s.parseSpacing(ctx, "spacing_a", merged.SpacingA)
	spacingB := s.parseSpacing(ctx, "spacing_b", merged.SpacingB)
	if spacingA == nil || spacingB == nil || *spacingA <= 0 || *spacingB <= 0 {
		return nil
	}

	v := squareFeetPerAcre / (*spacingA * *spacingB)
	return &v
}

// validateIrrigationParameters enforces per-type required measurements:
// flood needs motor, pipe width and motor-to-plot distance; sprinkler needs
// pipe width.
func (s *Service) validateIrrigationParameters(irrigationType *models.IrrigationType, ir *models.FarmIrrigation) error {
	if irrigationType == nil {
		return nil
	}
	switch strings.ToLower(irrigationType.Name) {
	case "flood":
		if ir.MotorHorsepower == nil || ir.PipeWidthInches == nil || ir.DistanceMotorToPlotM == nil {
			return validationErrorf("flood irrigation requires motor_horsepower, pipe_width_inches and distance_motor_to_plot_m")
		}
	case "sprinkler":
		if ir.PipeWidthInches == nil {
			return validationErrorf("sprinkler irrigation requires pipe_width_inches")
		}
	}
	return nil
}

// parseMeasure soft-fails like parseSpacing: malformed optional measurements
// are logged and dropped.
func (s *Service) parseMeasure(ctx context.Context, field string, n json.Number) *float64 {
	if n.String() == "" {
		return nil
	}
	v, err := n.Float64()
	if err != nil {
		s.logger.WarnContext(ctx, "unparseable irrigation measurement, leaving unset",
			"field", field, "value", n.String())
		return nil
	}
	return &v
}
