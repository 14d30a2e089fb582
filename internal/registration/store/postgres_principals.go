package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"farmgate/internal/registration/models"
	"farmgate/pkg/platform/sentinel"
)

type pgFarmers struct{ p *PostgresStores }

func (s pgFarmers) Create(ctx context.Context, f *models.Farmer) error {
	query := `
		INSERT INTO farmers (id, username, email, password_hash, first_name, last_name,
			phone, address, village, district, state, taluka, role_id, industry_id,
			created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`
	_, err := s.p.querier(ctx).ExecContext(ctx, query,
		f.ID, f.Username, f.Email, f.PasswordHash, f.FirstName, f.LastName,
		f.Phone, f.Address, f.Village, f.District, f.State, f.Taluka,
		f.RoleID, f.IndustryID, f.CreatedBy, f.CreatedAt)
	if err != nil {
		if IsUniqueViolation(err) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("create farmer: %w", err)
	}
	return nil
}

const farmerColumns = `id, username, email, password_hash, first_name, last_name,
	COALESCE(phone, ''), address, village, district, state, taluka, role_id,
	industry_id, created_by, created_at`

func (s pgFarmers) scan(row *sql.Row) (*models.Farmer, error) {
	var f models.Farmer
	err := row.Scan(&f.ID, &f.Username, &f.Email, &f.PasswordHash, &f.FirstName,
		&f.LastName, &f.Phone, &f.Address, &f.Village, &f.District, &f.State,
		&f.Taluka, &f.RoleID, &f.IndustryID, &f.CreatedBy, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan farmer: %w", err)
	}
	return &f, nil
}

func (s pgFarmers) GetByID(ctx context.Context, id uuid.UUID) (*models.Farmer, error) {
	row := s.p.querier(ctx).QueryRowContext(ctx,
		`SELECT `+farmerColumns+` FROM farmers WHERE id = $1`, id)
	return s.scan(row)
}

func (s pgFarmers) GetByUsername(ctx context.Context, username string) (*models.Farmer, error) {
	row := s.p.querier(ctx).QueryRowContext(ctx,
		`SELECT `+farmerColumns+` FROM farmers WHERE username = $1`, username)
	return s.scan(row)
}

func (s pgFarmers) GetByEmail(ctx context.Context, email string) (*models.Farmer, error) {
	row := s.p.querier(ctx).QueryRowContext(ctx,
		`SELECT `+farmerColumns+` FROM farmers WHERE email = $1`, email)
	return s.scan(row)
}

func (s pgFarmers) GetByPhone(ctx context.Context, phone string) (*models.Farmer, error) {
	row := s.p.querier(ctx).QueryRowContext(ctx,
		`SELECT `+farmerColumns+` FROM farmers WHERE phone = $1`, phone)
	return s.scan(row)
}

type pgOperators struct{ p *PostgresStores }

func (s pgOperators) GetByID(ctx context.Context, id uuid.UUID) (*models.Operator, error) {
	query := `
		SELECT o.id, o.username, o.email, o.role, o.industry_id, COALESCE(i.name, '')
		FROM operators o
		LEFT JOIN industries i ON i.id = o.industry_id
		WHERE o.id = $1
	`
	var op models.Operator
	err := s.p.querier(ctx).QueryRowContext(ctx, query, id).Scan(
		&op.ID, &op.Username, &op.Email, &op.Role, &op.IndustryID, &op.IndustryName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("get operator: %w", err)
	}
	return &op, nil
}

type pgRoles struct{ p *PostgresStores }

func (s pgRoles) GetByName(ctx context.Context, name string) (*models.Role, error) {
	var r models.Role
	err := s.p.querier(ctx).QueryRowContext(ctx,
		`SELECT id, name, display_name FROM roles WHERE name = $1`, name).
		Scan(&r.ID, &r.Name, &r.DisplayName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	return &r, nil
}

type pgPlots struct{ p *PostgresStores }

func (s pgPlots) Create(ctx context.Context, plot *models.Plot) error {
	location, err := geomArg(plot.Location)
	if err != nil {
		return err
	}
	boundary, err := geomArg(plot.Boundary)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO plots (id, gat_number, plot_number, village, taluka, district,
			state, country, pin_code, farmer_id, created_by, location, boundary, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err = s.p.querier(ctx).ExecContext(ctx, query,
		plot.ID, plot.GatNumber, plot.PlotNumber, plot.Village, plot.Taluka,
		plot.District, plot.State, plot.Country, plot.PinCode, plot.FarmerID,
		plot.CreatedBy, location, boundary, plot.CreatedAt)
	if err != nil {
		if IsUniqueViolation(err) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("create plot: %w", err)
	}
	return nil
}

const plotColumns = `id, gat_number, plot_number, village, taluka, district, state,
	country, pin_code, farmer_id, created_by, location, boundary, created_at`

func scanPlot(scan func(dest ...any) error) (*models.Plot, error) {
	var (
		p                  models.Plot
		location, boundary []byte
	)
	err := scan(&p.ID, &p.GatNumber, &p.PlotNumber, &p.Village, &p.Taluka,
		&p.District, &p.State, &p.Country, &p.PinCode, &p.FarmerID, &p.CreatedBy,
		&location, &boundary, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan plot: %w", err)
	}
	if p.Location, err = scanGeom(location); err != nil {
		return nil, err
	}
	if p.Boundary, err = scanGeom(boundary); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s pgPlots) FindByKey(ctx context.Context, key models.PlotKey) (*models.Plot, error) {
	query := `SELECT ` + plotColumns + ` FROM plots
		WHERE gat_number = $1 AND plot_number = $2 AND village = $3 AND district = $4`
	row := s.p.querier(ctx).QueryRowContext(ctx, query,
		key.GatNumber, key.PlotNumber, key.Village, key.District)
	return scanPlot(row.Scan)
}

func (s pgPlots) ListByFarmer(ctx context.Context, farmerID uuid.UUID) ([]*models.Plot, error) {
	query := `SELECT ` + plotColumns + ` FROM plots WHERE farmer_id = $1 ORDER BY created_at`
	rows, err := s.p.querier(ctx).QueryContext(ctx, query, farmerID)
	if err != nil {
		return nil, fmt.Errorf("list plots: %w", err)
	}
	defer rows.Close()

	var out []*models.Plot
	for rows.Next() {
		p, err := scanPlot(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type pgFarms struct{ p *PostgresStores }

func (s pgFarms) Create(ctx context.Context, farm *models.Farm) error {
	query := `
		INSERT INTO farms (id, farm_uid, farmer_id, plot_id, created_by, address,
			area_size, soil_type_id, crop_type_id, plantation_date, spacing_a,
			spacing_b, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := s.p.querier(ctx).ExecContext(ctx, query,
		farm.ID, farm.FarmUID, farm.FarmerID, farm.PlotID, farm.CreatedBy,
		farm.Address, farm.AreaSize, farm.SoilTypeID, farm.CropTypeID,
		farm.PlantationDate, farm.SpacingA, farm.SpacingB, farm.CreatedAt)
	if err != nil {
		return fmt.Errorf("create farm: %w", err)
	}
	return nil
}

func (s pgFarms) GetByID(ctx context.Context, id uuid.UUID) (*models.Farm, error) {
	query := `
		SELECT id, farm_uid, farmer_id, plot_id, created_by, address, area_size,
			soil_type_id, crop_type_id, plantation_date, spacing_a, spacing_b, created_at
		FROM farms WHERE id = $1
	`
	var f models.Farm
	err := s.p.querier(ctx).QueryRowContext(ctx, query, id).Scan(
		&f.ID, &f.FarmUID, &f.FarmerID, &f.PlotID, &f.CreatedBy, &f.Address,
		&f.AreaSize, &f.SoilTypeID, &f.CropTypeID, &f.PlantationDate,
		&f.SpacingA, &f.SpacingB, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("get farm: %w", err)
	}
	return &f, nil
}

type pgIrrigations struct{ p *PostgresStores }

func (s pgIrrigations) Create(ctx context.Context, ir *models.FarmIrrigation) error {
	location, err := geomArg(ir.Location)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO farm_irrigations (id, farm_id, irrigation_type_id, location,
			status, motor_horsepower, pipe_width_inches, distance_motor_to_plot_m,
			plants_per_acre, flow_rate_lph, emitters_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err = s.p.querier(ctx).ExecContext(ctx, query,
		ir.ID, ir.FarmID, ir.IrrigationTypeID, location, ir.Status,
		ir.MotorHorsepower, ir.PipeWidthInches, ir.DistanceMotorToPlotM,
		ir.PlantsPerAcre, ir.FlowRateLPH, ir.EmittersCount)
	if err != nil {
		return fmt.Errorf("create irrigation: %w", err)
	}
	return nil
}

func (s pgIrrigations) GetByFarmID(ctx context.Context, farmID uuid.UUID) (*models.FarmIrrigation, error) {
	query := `
		SELECT id, farm_id, irrigation_type_id, location, status, motor_horsepower,
			pipe_width_inches, distance_motor_to_plot_m, plants_per_acre,
			flow_rate_lph, emitters_count
		FROM farm_irrigations WHERE farm_id = $1
	`
	var (
		ir       models.FarmIrrigation
		location []byte
	)
	err := s.p.querier(ctx).QueryRowContext(ctx, query, farmID).Scan(
		&ir.ID, &ir.FarmID, &ir.IrrigationTypeID, &location, &ir.Status,
		&ir.MotorHorsepower, &ir.PipeWidthInches, &ir.DistanceMotorToPlotM,
		&ir.PlantsPerAcre, &ir.FlowRateLPH, &ir.EmittersCount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("get irrigation: %w", err)
	}
	if ir.Location, err = scanGeom(location); err != nil {
		return nil, err
	}
	return &ir, nil
}
