package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"farmgate/pkg/geo"
	txctx "farmgate/pkg/platform/tx"
)

// PostgresStores is the PostgreSQL-backed implementation of the registration
// stores. All queries go through querier(ctx) so that calls made inside
// RunInTx automatically join the surrounding transaction.
type PostgresStores struct {
	db *sql.DB
}

func NewPostgresStores(db *sql.DB) *PostgresStores {
	return &PostgresStores{db: db}
}

// Bundle wires the Postgres instance into every store slot.
func (p *PostgresStores) Bundle() *Stores {
	return &Stores{
		Tx:              p,
		Farmers:         pgFarmers{p},
		Operators:       pgOperators{p},
		Roles:           pgRoles{p},
		Plots:           pgPlots{p},
		Farms:           pgFarms{p},
		Irrigations:     pgIrrigations{p},
		SoilTypes:       pgSoilTypes{p},
		IrrigationTypes: pgIrrigationTypes{p},
		PlantationTypes: pgPlantationTypes{p},
		PlantingMethods: pgPlantingMethods{p},
		CropTypes:       pgCropTypes{p},
	}
}

// querier abstracts *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (p *PostgresStores) querier(ctx context.Context) querier {
	if tx, ok := txctx.From(ctx); ok {
		return tx
	}
	return p.db
}

// RunInTx opens a transaction, stashes it in the context and commits only if
// fn succeeds. A panic inside fn rolls back and re-panics.
func (p *PostgresStores) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(txctx.WithTx(ctx, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// geomArg marshals a geometry for a JSONB column, passing NULL for nil.
func geomArg(g *geo.Geometry) (any, error) {
	if g == nil {
		return nil, nil
	}
	b, err := json.Marshal(g)
	if err != nil {
		return nil, fmt.Errorf("marshal geometry: %w", err)
	}
	return b, nil
}

// scanGeom unmarshals a JSONB geometry column, returning nil for NULL.
func scanGeom(raw []byte) (*geo.Geometry, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var g geo.Geometry
	if err := json.Unmarshal(raw, &g); err != nil {
		return nil, fmt.Errorf("unmarshal geometry: %w", err)
	}
	return &g, nil
}
