package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"farmgate/internal/registration/models"
	"farmgate/pkg/platform/sentinel"
)

type InMemoryStoresSuite struct {
	suite.Suite
	mem    *InMemoryStores
	stores *Stores
	ctx    context.Context
}

func TestInMemoryStoresSuite(t *testing.T) {
	suite.Run(t, new(InMemoryStoresSuite))
}

func (s *InMemoryStoresSuite) SetupTest() {
	s.mem = NewInMemoryStores()
	s.stores = s.mem.Bundle()
	s.ctx = context.Background()
}

func (s *InMemoryStoresSuite) newFarmer(username, phone string) *models.Farmer {
	return &models.Farmer{
		ID:        uuid.New(),
		Username:  username,
		Email:     username + "@example.com",
		Phone:     phone,
		RoleID:    1,
		CreatedAt: time.Now(),
	}
}

func (s *InMemoryStoresSuite) TestFarmerUniqueness() {
	s.Run("duplicate username conflicts", func() {
		s.Require().NoError(s.stores.Farmers.Create(s.ctx, s.newFarmer("ramesh", "9876543210")))
		err := s.stores.Farmers.Create(s.ctx, s.newFarmer("ramesh", "9876500000"))
		s.ErrorIs(err, sentinel.ErrConflict)
	})

	s.Run("duplicate phone conflicts", func() {
		s.Require().NoError(s.stores.Farmers.Create(s.ctx, s.newFarmer("suresh", "9123456789")))
		err := s.stores.Farmers.Create(s.ctx, s.newFarmer("mahesh", "9123456789"))
		s.ErrorIs(err, sentinel.ErrConflict)
	})

	s.Run("empty phone never conflicts", func() {
		s.Require().NoError(s.stores.Farmers.Create(s.ctx, s.newFarmer("ganesh", "")))
		s.NoError(s.stores.Farmers.Create(s.ctx, s.newFarmer("dinesh", "")))
	})
}

func (s *InMemoryStoresSuite) TestPlotNaturalKey() {
	plot := &models.Plot{
		ID:        uuid.New(),
		GatNumber: "123",
		Village:   "Shirur",
		District:  "Pune",
		FarmerID:  uuid.New(),
	}
	s.Require().NoError(s.stores.Plots.Create(s.ctx, plot))

	s.Run("same key conflicts", func() {
		dup := &models.Plot{
			ID:        uuid.New(),
			GatNumber: "123",
			Village:   "Shirur",
			District:  "Pune",
			FarmerID:  uuid.New(),
		}
		s.ErrorIs(s.stores.Plots.Create(s.ctx, dup), sentinel.ErrConflict)
	})

	s.Run("different plot number is a different parcel", func() {
		other := &models.Plot{
			ID:         uuid.New(),
			GatNumber:  "123",
			PlotNumber: "2A",
			Village:    "Shirur",
			District:   "Pune",
			FarmerID:   uuid.New(),
		}
		s.NoError(s.stores.Plots.Create(s.ctx, other))
	})

	s.Run("found by key", func() {
		got, err := s.stores.Plots.FindByKey(s.ctx, plot.Key())
		s.Require().NoError(err)
		s.Equal(plot.ID, got.ID)
	})
}

func (s *InMemoryStoresSuite) TestRunInTxRollback() {
	keep := s.newFarmer("kept", "9000000001")
	s.Require().NoError(s.stores.Farmers.Create(s.ctx, keep))

	boom := errors.New("boom")
	err := s.mem.RunInTx(s.ctx, func(ctx context.Context) error {
		if err := s.stores.Farmers.Create(ctx, s.newFarmer("discarded", "9000000002")); err != nil {
			return err
		}
		if err := s.stores.Plots.Create(ctx, &models.Plot{
			ID: uuid.New(), GatNumber: "9", Village: "Wada", District: "Palghar",
		}); err != nil {
			return err
		}
		return boom
	})
	s.ErrorIs(err, boom)

	_, err = s.stores.Farmers.GetByUsername(s.ctx, "discarded")
	s.ErrorIs(err, sentinel.ErrNotFound)
	_, err = s.stores.Plots.FindByKey(s.ctx, models.PlotKey{GatNumber: "9", Village: "Wada", District: "Palghar"})
	s.ErrorIs(err, sentinel.ErrNotFound)

	got, err := s.stores.Farmers.GetByUsername(s.ctx, "kept")
	s.Require().NoError(err)
	s.Equal(keep.ID, got.ID)
}

func (s *InMemoryStoresSuite) TestRunInTxCommit() {
	err := s.mem.RunInTx(s.ctx, func(ctx context.Context) error {
		return s.stores.Farmers.Create(ctx, s.newFarmer("committed", "9000000003"))
	})
	s.Require().NoError(err)

	_, err = s.stores.Farmers.GetByUsername(s.ctx, "committed")
	s.NoError(err)
}

func (s *InMemoryStoresSuite) TestCropTypeIdentity() {
	ptID, pmID := int64(10), int64(20)

	bare := &models.CropType{Name: "Sugarcane"}
	s.Require().NoError(s.stores.CropTypes.Create(s.ctx, bare))

	linked := &models.CropType{Name: "Sugarcane", PlantationTypeID: &ptID, PlantingMethodID: &pmID}
	s.Require().NoError(s.stores.CropTypes.Create(s.ctx, linked))

	s.Run("identity triple distinguishes rows", func() {
		got, err := s.stores.CropTypes.FindByIdentity(s.ctx, "sugarcane", nil, nil)
		s.Require().NoError(err)
		s.Equal(bare.ID, got.ID)

		got, err = s.stores.CropTypes.FindByIdentity(s.ctx, "sugarcane", &ptID, &pmID)
		s.Require().NoError(err)
		s.Equal(linked.ID, got.ID)
	})

	s.Run("update backfills links", func() {
		bare.PlantationTypeID = &ptID
		s.Require().NoError(s.stores.CropTypes.Update(s.ctx, bare))

		got, err := s.stores.CropTypes.GetByID(s.ctx, bare.ID)
		s.Require().NoError(err)
		s.Require().NotNil(got.PlantationTypeID)
		s.Equal(ptID, *got.PlantationTypeID)
	})
}

func (s *InMemoryStoresSuite) TestReferenceLookupsCaseInsensitive() {
	st := &models.SoilType{Name: "Black Cotton"}
	s.Require().NoError(s.stores.SoilTypes.Create(s.ctx, st))

	got, err := s.stores.SoilTypes.FindByName(s.ctx, "black cotton")
	s.Require().NoError(err)
	s.Equal(st.ID, got.ID)

	s.ErrorIs(s.stores.SoilTypes.Create(s.ctx, &models.SoilType{Name: "BLACK COTTON"}), sentinel.ErrConflict)
}

func (s *InMemoryStoresSuite) TestScopedReferenceUniqueness() {
	sugar := int64(1)
	grape := int64(2)

	s.Run("plantation type code is unique within an industry", func() {
		s.Require().NoError(s.stores.PlantationTypes.Create(s.ctx, &models.PlantationType{
			IndustryID: &sugar, Code: "adsali", Name: "Adsali", IsActive: true,
		}))
		s.ErrorIs(s.stores.PlantationTypes.Create(s.ctx, &models.PlantationType{
			IndustryID: &sugar, Code: "ADSALI", Name: "Adsali Again", IsActive: true,
		}), sentinel.ErrConflict)
		s.NoError(s.stores.PlantationTypes.Create(s.ctx, &models.PlantationType{
			IndustryID: &grape, Code: "adsali", Name: "Adsali", IsActive: true,
		}))
	})

	s.Run("unscoped plantation rows cannot duplicate either", func() {
		s.Require().NoError(s.stores.PlantationTypes.Create(s.ctx, &models.PlantationType{
			Code: "legacy", Name: "Legacy", IsActive: true,
		}))
		s.ErrorIs(s.stores.PlantationTypes.Create(s.ctx, &models.PlantationType{
			Code: "legacy", Name: "Legacy Again", IsActive: true,
		}), sentinel.ErrConflict)
	})

	s.Run("planting method scope includes the plantation type", func() {
		pt := int64(7)
		s.Require().NoError(s.stores.PlantingMethods.Create(s.ctx, &models.PlantingMethod{
			PlantationTypeID: &pt, IndustryID: &sugar, Code: "3_bud", Name: "3 Bud", IsActive: true,
		}))
		s.ErrorIs(s.stores.PlantingMethods.Create(s.ctx, &models.PlantingMethod{
			PlantationTypeID: &pt, IndustryID: &sugar, Code: "3_bud", Name: "3 Bud", IsActive: true,
		}), sentinel.ErrConflict)
		s.NoError(s.stores.PlantingMethods.Create(s.ctx, &models.PlantingMethod{
			IndustryID: &sugar, Code: "3_bud", Name: "3 Bud", IsActive: true,
		}))
	})

	s.Run("crop type identity triple is unique", func() {
		s.Require().NoError(s.stores.CropTypes.Create(s.ctx, &models.CropType{Name: "Cotton"}))
		s.ErrorIs(s.stores.CropTypes.Create(s.ctx, &models.CropType{Name: "cotton"}), sentinel.ErrConflict)
	})
}

func (s *InMemoryStoresSuite) TestPlantationTypeCascadeScoping() {
	sugar := int64(1)
	grape := int64(2)
	s.Require().NoError(s.stores.PlantationTypes.Create(s.ctx, &models.PlantationType{
		IndustryID: &sugar, Code: "adsali", Name: "Adsali", IsActive: true,
	}))
	s.Require().NoError(s.stores.PlantationTypes.Create(s.ctx, &models.PlantationType{
		IndustryID: &grape, Code: "early", Name: "Early", IsActive: true,
	}))

	s.Run("scoped lookup misses other industries", func() {
		_, err := s.stores.PlantationTypes.FindByCode(s.ctx, sugar, "early")
		s.ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("any-industry lookup finds it", func() {
		got, err := s.stores.PlantationTypes.FindByCodeAny(s.ctx, "early")
		s.Require().NoError(err)
		s.Equal("Early", got.Name)
	})

	s.Run("inactive rows are invisible", func() {
		s.Require().NoError(s.stores.PlantationTypes.Create(s.ctx, &models.PlantationType{
			IndustryID: &sugar, Code: "retired", Name: "Retired", IsActive: false,
		}))
		_, err := s.stores.PlantationTypes.FindByCodeAny(s.ctx, "retired")
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}
