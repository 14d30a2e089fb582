package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"farmgate/internal/registration/models"
	"farmgate/internal/registration/store"
	dErrors "farmgate/pkg/domain-errors"
)

type IrrigationSuite struct {
	suite.Suite
	ctx    context.Context
	mem    *store.InMemoryStores
	stores *store.Stores
	svc    *Service
	farm   *models.Farm
	drip   *models.IrrigationType
}

func TestIrrigationSuite(t *testing.T) {
	suite.Run(t, new(IrrigationSuite))
}

func (s *IrrigationSuite) SetupTest() {
	s.ctx = context.Background()
	s.mem = store.NewInMemoryStores()
	s.stores = s.mem.Bundle()
	s.svc = New(s.stores)

	s.farm = &models.Farm{ID: uuid.New(), FarmUID: uuid.New(), FarmerID: uuid.New()}
	s.Require().NoError(s.stores.Farms.Create(s.ctx, s.farm))

	s.drip = &models.IrrigationType{Name: "Drip"}
	s.Require().NoError(s.stores.IrrigationTypes.Create(s.ctx, s.drip))
}

func (s *IrrigationSuite) spacing(a, b string) *models.FarmInput {
	return &models.FarmInput{SpacingA: json.Number(a), SpacingB: json.Number(b)}
}

func (s *IrrigationSuite) TestPlantsPerAcreDerivation() {
	s.Run("drip with 10x10 spacing derives 435.6", func() {
		ir, err := s.svc.createIrrigation(s.ctx, &models.IrrigationInput{
			IrrigationType: strPtr("drip"),
		}, s.farm, nil, s.spacing("10", "10"))
		s.Require().NoError(err)
		s.Require().NotNil(ir.PlantsPerAcre)
		s.InDelta(435.6, *ir.PlantsPerAcre, 0.001)
	})

	s.Run("zero spacing derives nothing and raises nothing", func() {
		ir, err := s.svc.createIrrigation(s.ctx, &models.IrrigationInput{
			IrrigationType: strPtr("drip"),
		}, s.farm, nil, s.spacing("0", "10"))
		s.Require().NoError(err)
		s.Nil(ir.PlantsPerAcre)
	})

	s.Run("unparseable spacing soft-fails", func() {
		ir, err := s.svc.createIrrigation(s.ctx, &models.IrrigationInput{
			IrrigationType: strPtr("drip"),
		}, s.farm, nil, s.spacing("ten", "10"))
		s.Require().NoError(err)
		s.Nil(ir.PlantsPerAcre)
	})

	s.Run("non-drip types never derive", func() {
		ir, err := s.svc.createIrrigation(s.ctx, &models.IrrigationInput{
			IrrigationType: strPtr("Borewell"),
		}, s.farm, nil, s.spacing("10", "10"))
		s.Require().NoError(err)
		s.Nil(ir.PlantsPerAcre)
	})

	s.Run("explicit value suppresses derivation", func() {
		ir, err := s.svc.createIrrigation(s.ctx, &models.IrrigationInput{
			IrrigationType: strPtr("drip"),
			PlantsPerAcre:  json.Number("500"),
		}, s.farm, nil, s.spacing("10", "10"))
		s.Require().NoError(err)
		s.Require().NotNil(ir.PlantsPerAcre)
		s.InDelta(500, *ir.PlantsPerAcre, 0.001)
	})
}

func (s *IrrigationSuite) TestLocationPrecedence() {
	point := json.RawMessage(`{"type":"Point","coordinates":[74.1,18.5]}`)
	plotWithLocation := &models.Plot{ID: uuid.New()}
	plotLoc, err := s.svc.irrigationLocation(s.ctx, point, nil)
	s.Require().NoError(err)
	plotWithLocation.Location = plotLoc

	s.Run("explicit geometry wins", func() {
		ir, err := s.svc.createIrrigation(s.ctx, &models.IrrigationInput{
			Location: json.RawMessage(`{"type":"Point","coordinates":[75.0,19.0]}`),
		}, s.farm, plotWithLocation, nil)
		s.Require().NoError(err)
		s.Require().NotNil(ir.Location)
		s.Contains(string(ir.Location.Coordinates), "75")
	})

	s.Run("plot location is the fallback", func() {
		ir, err := s.svc.createIrrigation(s.ctx, &models.IrrigationInput{}, s.farm, plotWithLocation, nil)
		s.Require().NoError(err)
		s.Require().NotNil(ir.Location)
		s.Contains(string(ir.Location.Coordinates), "74.1")
	})

	s.Run("origin point when nothing is known", func() {
		ir, err := s.svc.createIrrigation(s.ctx, &models.IrrigationInput{}, s.farm, nil, nil)
		s.Require().NoError(err)
		s.Require().NotNil(ir.Location)
		s.Equal("Point", ir.Location.Type)
		s.JSONEq(`[0,0]`, string(ir.Location.Coordinates))
	})

	s.Run("malformed explicit geometry still fails", func() {
		_, err := s.svc.createIrrigation(s.ctx, &models.IrrigationInput{
			Location: json.RawMessage(`{"coordinates":[1,2]}`),
		}, s.farm, nil, nil)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func (s *IrrigationSuite) TestPerTypeParameterValidation() {
	flood := &models.IrrigationType{Name: "Flood"}
	s.Require().NoError(s.stores.IrrigationTypes.Create(s.ctx, flood))
	sprinkler := &models.IrrigationType{Name: "Sprinkler"}
	s.Require().NoError(s.stores.IrrigationTypes.Create(s.ctx, sprinkler))

	s.Run("flood requires motor, pipe and distance", func() {
		_, err := s.svc.createIrrigation(s.ctx, &models.IrrigationInput{
			IrrigationTypeID: &flood.ID,
			MotorHorsepower:  json.Number("5"),
		}, s.farm, nil, nil)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))

		_, err = s.svc.createIrrigation(s.ctx, &models.IrrigationInput{
			IrrigationTypeID:    &flood.ID,
			MotorHorsepower:     json.Number("5"),
			PipeWidthInches:     json.Number("3"),
			DistanceMotorToPlot: json.Number("120"),
		}, s.farm, nil, nil)
		s.NoError(err)
	})

	s.Run("sprinkler requires pipe width", func() {
		_, err := s.svc.createIrrigation(s.ctx, &models.IrrigationInput{
			IrrigationTypeID: &sprinkler.ID,
		}, s.farm, nil, nil)
		s.Require().Error(err)

		_, err = s.svc.createIrrigation(s.ctx, &models.IrrigationInput{
			IrrigationTypeID: &sprinkler.ID,
			PipeWidthInches:  json.Number("2"),
		}, s.farm, nil, nil)
		s.NoError(err)
	})

	s.Run("unknown irrigation type id is a hard failure", func() {
		_, err := s.svc.createIrrigation(s.ctx, &models.IrrigationInput{
			IrrigationTypeID: int64Ptr(999),
		}, s.farm, nil, nil)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func (s *IrrigationSuite) TestStatusDefaultsTrue() {
	ir, err := s.svc.createIrrigation(s.ctx, &models.IrrigationInput{}, s.farm, nil, nil)
	s.Require().NoError(err)
	s.True(ir.Status)

	off := false
	ir, err = s.svc.createIrrigation(s.ctx, &models.IrrigationInput{Status: &off}, s.farm, nil, nil)
	s.Require().NoError(err)
	s.False(ir.Status)
}
