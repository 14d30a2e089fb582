//go:build integration

package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	platformredis "farmgate/internal/platform/redis"
	"farmgate/internal/registration/models"
	"farmgate/internal/registration/refcache"
	"farmgate/internal/registration/store"
	"farmgate/pkg/testutil/containers"
)

type RefCacheSuite struct {
	suite.Suite
	ctx      context.Context
	redis    *containers.RedisContainer
	cache    *refcache.Cache
	mem      *store.InMemoryStores
	stores   *store.Stores
	operator *models.Operator
}

func TestRefCacheSuite(t *testing.T) {
	suite.Run(t, new(RefCacheSuite))
}

func (s *RefCacheSuite) SetupSuite() {
	s.redis = containers.GetManager().Redis(s.T())
}

func (s *RefCacheSuite) SetupTest() {
	s.ctx = context.Background()
	s.Require().NoError(s.redis.FlushAll(s.ctx))
	s.cache = refcache.New(&platformredis.Client{Client: s.redis.Client}, nil)

	s.mem = store.NewInMemoryStores()
	s.stores = s.mem.Bundle()
	industry := int64(1)
	s.operator = &models.Operator{ID: uuid.New(), Username: "op.kulkarni", IndustryID: &industry}
	s.mem.SeedOperator(s.operator)
	s.mem.SeedRole(&models.Role{ID: 1, Name: "farmer", DisplayName: "Farmer"})
}

func (s *RefCacheSuite) request(username, gat string) *models.RegistrationRequest {
	return &models.RegistrationRequest{
		Farmer: &models.FarmerInput{
			Username:  username,
			Email:     username + "@example.com",
			Password:  "s3cret-pass",
			FirstName: "Ramesh",
			LastName:  "Patil",
		},
		Plots: []models.PlotGroup{{
			Plot: &models.PlotInput{
				GatNumber: gat, Village: "Shirur", District: "Pune", State: "Maharashtra",
			},
			Farm: &models.FarmInput{
				Address:  "Shirur road",
				AreaSize: json.Number("2.5"),
				SoilType: strPtr("Alluvial"),
			},
		}},
	}
}

func (s *RefCacheSuite) TestExistingSoilTypeIsCached() {
	seeded := &models.SoilType{Name: "Alluvial"}
	s.Require().NoError(s.stores.SoilTypes.Create(s.ctx, seeded))

	svc := New(s.stores, WithRefCache(s.cache))
	result, err := svc.Register(s.ctx, s.request("ramesh.patil", "123"), s.operator.ID)
	s.Require().NoError(err)
	s.Require().NotNil(result.CreatedEntities[0].Farm.SoilTypeID)

	id, hit := s.cache.GetID(s.ctx, "soil_type", "alluvial")
	s.True(hit)
	s.Equal(seeded.ID, id)
}

func (s *RefCacheSuite) TestAbortedRegistrationDoesNotPoisonCache() {
	broken := *s.stores
	broken.Farms = failingFarms{s.stores.Farms}
	svc := New(&broken, WithRefCache(s.cache))

	_, err := svc.Register(s.ctx, s.request("ramesh.patil", "123"), s.operator.ID)
	s.Require().Error(err)

	_, hit := s.cache.GetID(s.ctx, "soil_type", "alluvial")
	s.False(hit, "the rolled-back soil type id must not be cached")

	// The next request resolves cleanly and stamps an id that exists.
	svc = New(s.stores, WithRefCache(s.cache))
	result, err := svc.Register(s.ctx, s.request("suresh.patil", "124"), s.operator.ID)
	s.Require().NoError(err)
	s.Require().NotNil(result.CreatedEntities[0].Farm)
	s.Require().NotNil(result.CreatedEntities[0].Farm.SoilTypeID)

	_, err = s.stores.SoilTypes.GetByID(s.ctx, *result.CreatedEntities[0].Farm.SoilTypeID)
	s.NoError(err)
}
