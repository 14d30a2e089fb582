// Package store defines persistence interfaces for the registration domain
// and provides in-memory and Postgres implementations. Implementations
// return sentinel errors (sentinel.ErrNotFound, sentinel.ErrConflict) and
// leave translation to domain errors to the service layer.
package store

import (
	"context"

	"github.com/google/uuid"

	"farmgate/internal/registration/models"
)

// Tx runs fn atomically. Every store call made with the ctx passed to fn
// joins the same transaction; if fn returns an error all writes roll back.
type Tx interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type FarmerStore interface {
	Create(ctx context.Context, farmer *models.Farmer) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Farmer, error)
	GetByUsername(ctx context.Context, username string) (*models.Farmer, error)
	GetByEmail(ctx context.Context, email string) (*models.Farmer, error)
	GetByPhone(ctx context.Context, phone string) (*models.Farmer, error)
}

type OperatorStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Operator, error)
}

type RoleStore interface {
	GetByName(ctx context.Context, name string) (*models.Role, error)
}

type PlotStore interface {
	Create(ctx context.Context, plot *models.Plot) error
	FindByKey(ctx context.Context, key models.PlotKey) (*models.Plot, error)
	ListByFarmer(ctx context.Context, farmerID uuid.UUID) ([]*models.Plot, error)
}

type FarmStore interface {
	Create(ctx context.Context, farm *models.Farm) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Farm, error)
}

type IrrigationStore interface {
	Create(ctx context.Context, irrigation *models.FarmIrrigation) error
	GetByFarmID(ctx context.Context, farmID uuid.UUID) (*models.FarmIrrigation, error)
}

type SoilTypeStore interface {
	GetByID(ctx context.Context, id int64) (*models.SoilType, error)
	FindByName(ctx context.Context, name string) (*models.SoilType, error)
	Create(ctx context.Context, st *models.SoilType) error
}

type IrrigationTypeStore interface {
	GetByID(ctx context.Context, id int64) (*models.IrrigationType, error)
	FindByName(ctx context.Context, name string) (*models.IrrigationType, error)
	Create(ctx context.Context, it *models.IrrigationType) error
}

// PlantationTypeStore resolves plantation types both scoped to an industry
// and across all industries. Find methods return sentinel.ErrNotFound on a
// miss so callers can continue down the lookup cascade.
type PlantationTypeStore interface {
	GetByID(ctx context.Context, id int64) (*models.PlantationType, error)
	FindByCode(ctx context.Context, industryID int64, code string) (*models.PlantationType, error)
	FindByName(ctx context.Context, industryID int64, name string) (*models.PlantationType, error)
	FindByCodeAny(ctx context.Context, code string) (*models.PlantationType, error)
	FindByNameAny(ctx context.Context, name string) (*models.PlantationType, error)
	Create(ctx context.Context, pt *models.PlantationType) error
}

type PlantingMethodStore interface {
	GetByID(ctx context.Context, id int64) (*models.PlantingMethod, error)
	FindByCode(ctx context.Context, industryID int64, code string) (*models.PlantingMethod, error)
	FindByName(ctx context.Context, industryID int64, name string) (*models.PlantingMethod, error)
	FindByCodeAny(ctx context.Context, code string) (*models.PlantingMethod, error)
	FindByNameAny(ctx context.Context, name string) (*models.PlantingMethod, error)
	Create(ctx context.Context, pm *models.PlantingMethod) error
}

// CropTypeStore identifies crop types by the (name, plantation type,
// planting method) triple. FindByName exists for the lazy backfill path.
type CropTypeStore interface {
	GetByID(ctx context.Context, id int64) (*models.CropType, error)
	FindByIdentity(ctx context.Context, name string, plantationTypeID, plantingMethodID *int64) (*models.CropType, error)
	FindByName(ctx context.Context, name string) (*models.CropType, error)
	Create(ctx context.Context, ct *models.CropType) error
	Update(ctx context.Context, ct *models.CropType) error
}

// Stores bundles every store the registration service needs, plus the
// transaction runner that spans them.
type Stores struct {
	Tx Tx

	Farmers         FarmerStore
	Operators       OperatorStore
	Roles           RoleStore
	Plots           PlotStore
	Farms           FarmStore
	Irrigations     IrrigationStore
	SoilTypes       SoilTypeStore
	IrrigationTypes IrrigationTypeStore
	PlantationTypes PlantationTypeStore
	PlantingMethods PlantingMethodStore
	CropTypes       CropTypeStore
}
