package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"farmgate/internal/registration/models"
	dErrors "farmgate/pkg/domain-errors"
	"farmgate/pkg/geo"
	"farmgate/pkg/platform/sentinel"
	"farmgate/pkg/requestcontext"
)

const defaultCountry = "India"

// createPlot validates the plot block against its natural key and persists
// the parcel. Downstream sync is NOT triggered here; the orchestrator fans
// out after the whole registration commits so targets never see a plot
// without its farm and irrigation siblings.
func (s *Service) createPlot(ctx context.Context, in *models.PlotInput, farmer *models.Farmer, operator *models.Operator) (*models.Plot, error) {
	for _, f := range []struct{ name, value string }{
		{"gat_number", in.GatNumber},
		{"village", in.Village},
		{"district", in.District},
		{"state", in.State},
	} {
		if strings.TrimSpace(f.value) == "" {
			return nil, dErrors.New(dErrors.CodeValidation, "missing required plot field: "+f.name)
		}
	}

	key := models.PlotKey{
		GatNumber:  in.GatNumber,
		PlotNumber: in.PlotNumber,
		Village:    in.Village,
		District:   in.District,
	}
	if _, err := s.stores.Plots.FindByKey(ctx, key); err == nil {
		return nil, dErrors.New(dErrors.CodeConflict, "plot already registered: "+key.String())
	} else if !errors.Is(err, sentinel.ErrNotFound) {
		return nil, fmt.Errorf("check plot key: %w", err)
	}

	var location, boundary *geo.Geometry
	var err error
	if len(in.Location) > 0 {
		if location, err = geo.FromJSON(in.Location); err != nil {
			return nil, err
		}
	}
	if len(in.Boundary) > 0 {
		if boundary, err = geo.FromJSON(in.Boundary); err != nil {
			return nil, err
		}
	}

	country := in.Country
	if country == "" {
		country = defaultCountry
	}

	plot := &models.Plot{
		ID:         uuid.New(),
		GatNumber:  in.GatNumber,
		PlotNumber: in.PlotNumber,
		Village:    in.Village,
		Taluka:     in.Taluka,
		District:   in.District,
		State:      in.State,
		Country:    country,
		PinCode:    in.PinCode,
		FarmerID:   farmer.ID,
		CreatedBy:  operator.ID,
		Location:   location,
		Boundary:   boundary,
		CreatedAt:  requestcontext.Now(ctx),
	}

	if err := s.stores.Plots.Create(ctx, plot); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeConflict, "plot already registered: "+key.String())
		}
		return nil, fmt.Errorf("create plot: %w", err)
	}
	return plot, nil
}
