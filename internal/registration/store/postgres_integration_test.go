//go:build integration

package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"farmgate/internal/registration/models"
	"farmgate/pkg/geo"
	"farmgate/pkg/platform/sentinel"
	"farmgate/pkg/testutil/containers"
)

type PostgresStoresSuite struct {
	suite.Suite
	ctx      context.Context
	pg       *containers.PostgresContainer
	stores   *Stores
	postgres *PostgresStores

	operatorID uuid.UUID
	roleID     int64
	industryID int64
}

func TestPostgresStoresSuite(t *testing.T) {
	suite.Run(t, new(PostgresStoresSuite))
}

func (s *PostgresStoresSuite) SetupSuite() {
	s.ctx = context.Background()
	s.pg = containers.GetManager().Postgres(s.T(), "../../../migrations")
	s.postgres = NewPostgresStores(s.pg.DB)
	s.stores = s.postgres.Bundle()
}

func (s *PostgresStoresSuite) SetupTest() {
	s.Require().NoError(s.pg.TruncateTables(s.ctx,
		"farm_irrigations", "farms", "crop_types", "planting_methods",
		"plantation_types", "irrigation_types", "soil_types", "plots",
		"farmers", "operators", "roles", "industries"))

	s.Require().NoError(s.pg.DB.QueryRowContext(s.ctx,
		`INSERT INTO industries (name) VALUES ('sugar') RETURNING id`).Scan(&s.industryID))
	s.Require().NoError(s.pg.DB.QueryRowContext(s.ctx,
		`INSERT INTO roles (name, display_name) VALUES ('farmer', 'Farmer') RETURNING id`).Scan(&s.roleID))

	s.operatorID = uuid.New()
	_, err := s.pg.DB.ExecContext(s.ctx,
		`INSERT INTO operators (id, username, email, role, industry_id) VALUES ($1, 'op', 'op@example.com', 'operator', $2)`,
		s.operatorID, s.industryID)
	s.Require().NoError(err)
}

func (s *PostgresStoresSuite) newFarmer(username, phone string) *models.Farmer {
	return &models.Farmer{
		ID:           uuid.New(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		FirstName:    "Test",
		LastName:     "Farmer",
		Phone:        phone,
		RoleID:       s.roleID,
		CreatedBy:    s.operatorID,
		CreatedAt:    time.Now().UTC(),
	}
}

func (s *PostgresStoresSuite) TestFarmerRoundTrip() {
	farmer := s.newFarmer("ramesh", "9876543210")
	farmer.IndustryID = &s.industryID
	s.Require().NoError(s.stores.Farmers.Create(s.ctx, farmer))

	got, err := s.stores.Farmers.GetByUsername(s.ctx, "ramesh")
	s.Require().NoError(err)
	s.Equal(farmer.ID, got.ID)
	s.Equal("9876543210", got.Phone)
	s.Require().NotNil(got.IndustryID)
	s.Equal(s.industryID, *got.IndustryID)

	s.Run("duplicate phone is a conflict", func() {
		err := s.stores.Farmers.Create(s.ctx, s.newFarmer("suresh", "9876543210"))
		s.ErrorIs(err, sentinel.ErrConflict)
	})

	s.Run("empty phone stores as NULL and never conflicts", func() {
		s.NoError(s.stores.Farmers.Create(s.ctx, s.newFarmer("ganesh", "")))
		s.NoError(s.stores.Farmers.Create(s.ctx, s.newFarmer("dinesh", "")))
	})
}

func (s *PostgresStoresSuite) TestPlotNaturalKeyConstraint() {
	farmer := s.newFarmer("owner", "")
	s.Require().NoError(s.stores.Farmers.Create(s.ctx, farmer))

	plot := &models.Plot{
		ID: uuid.New(), GatNumber: "123", Village: "X", District: "Y",
		State: "MH", Country: "India", FarmerID: farmer.ID, CreatedBy: s.operatorID,
		CreatedAt: time.Now().UTC(),
	}
	s.Require().NoError(s.stores.Plots.Create(s.ctx, plot))

	dup := *plot
	dup.ID = uuid.New()
	s.ErrorIs(s.stores.Plots.Create(s.ctx, &dup), sentinel.ErrConflict)
}

func (s *PostgresStoresSuite) TestRunInTxRollsBackEverything() {
	boom := errors.New("boom")
	farmer := s.newFarmer("rollback", "")

	err := s.postgres.RunInTx(s.ctx, func(ctx context.Context) error {
		if err := s.stores.Farmers.Create(ctx, farmer); err != nil {
			return err
		}
		plot := &models.Plot{
			ID: uuid.New(), GatNumber: "9", Village: "W", District: "P",
			State: "MH", Country: "India", FarmerID: farmer.ID, CreatedBy: s.operatorID,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.stores.Plots.Create(ctx, plot); err != nil {
			return err
		}
		return boom
	})
	s.ErrorIs(err, boom)

	_, err = s.stores.Farmers.GetByUsername(s.ctx, "rollback")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

// Concurrent auto-creation of the same reference row: the constraint lets
// one creator win and the loser sees a conflict it can resolve by re-query.
func (s *PostgresStoresSuite) TestConcurrentSoilTypeCreation() {
	const workers = 4
	var wg sync.WaitGroup
	results := make([]error, workers)

	for i := range workers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = s.stores.SoilTypes.Create(context.Background(),
				&models.SoilType{Name: "Black Cotton", Description: "auto"})
		}(i)
	}
	wg.Wait()

	created, conflicted := 0, 0
	for _, err := range results {
		switch {
		case err == nil:
			created++
		case errors.Is(err, sentinel.ErrConflict):
			conflicted++
		default:
			s.Failf("unexpected error", "%v", err)
		}
	}
	s.Equal(1, created, "exactly one creator must win")
	s.Equal(workers-1, conflicted)

	st, err := s.stores.SoilTypes.FindByName(s.ctx, "black cotton")
	s.Require().NoError(err)
	s.Equal("Black Cotton", st.Name)
}

func (s *PostgresStoresSuite) TestCropTypeIdentityConstraint() {
	bare := &models.CropType{Name: "Wheat"}
	s.Require().NoError(s.stores.CropTypes.Create(s.ctx, bare))

	s.Run("duplicate bare row conflicts via NULLS NOT DISTINCT", func() {
		err := s.stores.CropTypes.Create(s.ctx, &models.CropType{Name: "Wheat"})
		s.ErrorIs(err, sentinel.ErrConflict)
	})

	s.Run("linked row with the same name is distinct", func() {
		pt := &models.PlantationType{IndustryID: &s.industryID, Code: "a", Name: "A", IsActive: true}
		s.Require().NoError(s.stores.PlantationTypes.Create(s.ctx, pt))

		linked := &models.CropType{Name: "Wheat", PlantationTypeID: &pt.ID}
		s.Require().NoError(s.stores.CropTypes.Create(s.ctx, linked))
		s.NotEqual(bare.ID, linked.ID)

		got, err := s.stores.CropTypes.FindByIdentity(s.ctx, "wheat", &pt.ID, nil)
		s.Require().NoError(err)
		s.Equal(linked.ID, got.ID)
	})
}

func (s *PostgresStoresSuite) TestGeometryRoundTrip() {
	farmer := s.newFarmer("geo", "")
	s.Require().NoError(s.stores.Farmers.Create(s.ctx, farmer))

	plot := &models.Plot{
		ID: uuid.New(), GatNumber: "77", Village: "G", District: "D",
		State: "MH", Country: "India", FarmerID: farmer.ID, CreatedBy: s.operatorID,
		CreatedAt: time.Now().UTC(),
	}
	loc, err := geo.FromJSON(json.RawMessage(`{"type":"Point","coordinates":[74.1,18.5]}`))
	s.Require().NoError(err)
	plot.Location = loc
	s.Require().NoError(s.stores.Plots.Create(s.ctx, plot))

	got, err := s.stores.Plots.FindByKey(s.ctx, plot.Key())
	s.Require().NoError(err)
	s.Require().NotNil(got.Location)
	s.Equal("Point", got.Location.Type)
	s.Nil(got.Boundary)
}
