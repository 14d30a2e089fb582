package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"farmgate/internal/registration/models"
	dErrors "farmgate/pkg/domain-errors"
	"farmgate/pkg/platform/audit"
	"farmgate/pkg/platform/sentinel"
)

// Register creates a farmer together with every plot, farm and irrigation
// setup in the request, as one atomic unit. After the transaction commits,
// each created plot is fanned out to the downstream sync targets; sync
// outcomes are reported in the result and never fail the registration.
func (s *Service) Register(ctx context.Context, req *models.RegistrationRequest, operatorID uuid.UUID) (*models.RegistrationResult, error) {
	ctx, span := s.tracer.Start(ctx, "registration.Register")
	defer span.End()

	start := time.Now()
	defer func() {
		if s.metrics != nil {
			s.metrics.RegistrationDuration.Observe(time.Since(start).Seconds())
		}
	}()

	operator, err := s.stores.Operators.GetByID(ctx, operatorID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "registering operator not found")
		}
		return nil, fmt.Errorf("look up operator: %w", err)
	}

	if req == nil || req.Farmer == nil {
		return nil, dErrors.New(dErrors.CodeValidation, "missing required field: farmer")
	}

	var (
		farmer  *models.Farmer
		created []models.CreatedGroup
	)
	err = s.stores.Tx.RunInTx(ctx, func(ctx context.Context) error {
		farmer, err = s.createFarmer(ctx, req.Farmer, operator)
		if err != nil {
			return err
		}

		for i, group := range req.Groups() {
			entry, err := s.processGroup(ctx, group, req.Farm, farmer, operator)
			if err != nil {
				return fmt.Errorf("plot group %d: %w", i+1, err)
			}
			created = append(created, entry)
		}
		return nil
	})
	if err != nil {
		err = s.asRegistrationError(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "registration aborted")
		if s.metrics != nil {
			s.metrics.RegistrationFailures.Inc()
		}
		s.emitAudit(ctx, audit.Event{
			Action:  string(audit.EventRegistrationFailed),
			ActorID: operator.ID.String(),
			Reason:  err.Error(),
		})
		s.logger.WarnContext(ctx, "registration aborted",
			"operator", operator.Username, "error", err)
		return nil, err
	}

	span.SetAttributes(
		attribute.String("farmer.id", farmer.ID.String()),
		attribute.Int("plot_groups", len(created)),
	)
	s.recordSuccess(ctx, farmer, created, operator)

	result := &models.RegistrationResult{
		Success:         true,
		Message:         "farmer registered successfully",
		Farmer:          farmer,
		CreatedEntities: created,
	}

	// Durability point passed: everything below is best-effort reporting.
	for _, entry := range created {
		if entry.Plot == nil {
			continue
		}
		s.syncPlot(ctx, entry.Plot, farmer, operator, result)
	}

	s.logger.InfoContext(ctx, "farmer registered",
		"farmer_id", farmer.ID,
		"username", farmer.Username,
		"plot_groups", len(created),
		"operator", operator.Username)
	return result, nil
}

// processGroup creates the plot, farm and irrigation for one registration
// group. Absent sub-blocks skip their step; the group may legitimately
// produce a partial entity graph. The top-level farm block only fills gaps
// in a group's own farm block; it never creates a farm for a group that
// carries none.
func (s *Service) processGroup(ctx context.Context, group models.PlotGroup, defaults *models.FarmInput, farmer *models.Farmer, operator *models.Operator) (models.CreatedGroup, error) {
	var entry models.CreatedGroup

	if group.Plot != nil {
		plot, err := s.createPlot(ctx, group.Plot, farmer, operator)
		if err != nil {
			return entry, err
		}
		entry.Plot = plot
	}

	var merged *models.FarmInput
	if group.Farm != nil && entry.Plot != nil {
		merged = mergeFarm(group.Farm, defaults)
		farm, err := s.createFarm(ctx, merged, farmer, entry.Plot, operator)
		if err != nil {
			return entry, err
		}
		entry.Farm = farm
	}

	if group.Irrigation != nil && entry.Farm != nil {
		irrigation, err := s.createIrrigation(ctx, group.Irrigation, entry.Farm, entry.Plot, merged)
		if err != nil {
			return entry, err
		}
		entry.Irrigation = irrigation
	}

	return entry, nil
}

func (s *Service) syncPlot(ctx context.Context, plot *models.Plot, farmer *models.Farmer, operator *models.Operator, result *models.RegistrationResult) {
	if s.fanout == nil {
		return
	}
	syncResult := s.fanout.SyncPlot(ctx, plot)
	result.SyncSuccessful = append(result.SyncSuccessful, syncResult.Successful...)
	for _, failure := range syncResult.Failed {
		result.SyncFailed = append(result.SyncFailed, models.SyncFailure{
			Target: failure.Target,
			Reason: failure.Reason,
		})
		s.emitAudit(ctx, audit.Event{
			Action:   string(audit.EventPlotSyncFailed),
			ActorID:  operator.ID.String(),
			FarmerID: farmer.ID.String(),
			Subject:  failure.Target,
			Reason:   failure.Reason,
		})
	}
}

func (s *Service) recordSuccess(ctx context.Context, farmer *models.Farmer, created []models.CreatedGroup, operator *models.Operator) {
	if s.metrics != nil {
		s.metrics.FarmersRegistered.Inc()
	}
	s.emitAudit(ctx, audit.Event{
		Action:   string(audit.EventFarmerRegistered),
		ActorID:  operator.ID.String(),
		FarmerID: farmer.ID.String(),
		Subject:  farmer.Username,
	})

	for _, entry := range created {
		if entry.Plot != nil {
			if s.metrics != nil {
				s.metrics.PlotsCreated.Inc()
			}
			s.emitAudit(ctx, audit.Event{
				Action:   string(audit.EventPlotCreated),
				ActorID:  operator.ID.String(),
				FarmerID: farmer.ID.String(),
				Subject:  entry.Plot.ID.String(),
			})
		}
		if entry.Farm != nil {
			if s.metrics != nil {
				s.metrics.FarmsCreated.Inc()
			}
			s.emitAudit(ctx, audit.Event{
				Action:   string(audit.EventFarmCreated),
				ActorID:  operator.ID.String(),
				FarmerID: farmer.ID.String(),
				Subject:  entry.Farm.FarmUID.String(),
			})
		}
		if entry.Irrigation != nil {
			if s.metrics != nil {
				s.metrics.IrrigationsCreated.Inc()
			}
			s.emitAudit(ctx, audit.Event{
				Action:   string(audit.EventIrrigationCreated),
				ActorID:  operator.ID.String(),
				FarmerID: farmer.ID.String(),
				Subject:  entry.Irrigation.ID.String(),
			})
		}
	}
}

// asRegistrationError keeps domain failures intact and folds everything else
// into a single validation-kind failure with a readable reason.
func (s *Service) asRegistrationError(err error) error {
	var de dErrors.DomainError
	if errors.As(err, &de) {
		return err
	}
	return dErrors.Wrap(err, dErrors.CodeValidation, "registration failed: "+err.Error())
}

func validationErrorf(format string, args ...any) error {
	return dErrors.New(dErrors.CodeValidation, fmt.Sprintf(format, args...))
}
