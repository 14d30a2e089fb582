package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"farmgate/internal/registration/models"
	"farmgate/pkg/platform/sentinel"
)

type pgSoilTypes struct{ p *PostgresStores }

func (s pgSoilTypes) scan(row *sql.Row) (*models.SoilType, error) {
	var st models.SoilType
	if err := row.Scan(&st.ID, &st.Name, &st.Description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan soil type: %w", err)
	}
	return &st, nil
}

func (s pgSoilTypes) GetByID(ctx context.Context, id int64) (*models.SoilType, error) {
	return s.scan(s.p.querier(ctx).QueryRowContext(ctx,
		`SELECT id, name, description FROM soil_types WHERE id = $1`, id))
}

func (s pgSoilTypes) FindByName(ctx context.Context, name string) (*models.SoilType, error) {
	return s.scan(s.p.querier(ctx).QueryRowContext(ctx,
		`SELECT id, name, description FROM soil_types WHERE lower(name) = lower($1)`, name))
}

func (s pgSoilTypes) Create(ctx context.Context, st *models.SoilType) error {
	err := s.p.querier(ctx).QueryRowContext(ctx,
		`INSERT INTO soil_types (name, description) VALUES ($1, $2) RETURNING id`,
		st.Name, st.Description).Scan(&st.ID)
	if err != nil {
		if IsUniqueViolation(err) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("create soil type: %w", err)
	}
	return nil
}

type pgIrrigationTypes struct{ p *PostgresStores }

func (s pgIrrigationTypes) scan(row *sql.Row) (*models.IrrigationType, error) {
	var it models.IrrigationType
	if err := row.Scan(&it.ID, &it.Name, &it.Description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan irrigation type: %w", err)
	}
	return &it, nil
}

func (s pgIrrigationTypes) GetByID(ctx context.Context, id int64) (*models.IrrigationType, error) {
	return s.scan(s.p.querier(ctx).QueryRowContext(ctx,
		`SELECT id, name, description FROM irrigation_types WHERE id = $1`, id))
}

func (s pgIrrigationTypes) FindByName(ctx context.Context, name string) (*models.IrrigationType, error) {
	return s.scan(s.p.querier(ctx).QueryRowContext(ctx,
		`SELECT id, name, description FROM irrigation_types WHERE lower(name) = lower($1)`, name))
}

func (s pgIrrigationTypes) Create(ctx context.Context, it *models.IrrigationType) error {
	err := s.p.querier(ctx).QueryRowContext(ctx,
		`INSERT INTO irrigation_types (name, description) VALUES ($1, $2) RETURNING id`,
		it.Name, it.Description).Scan(&it.ID)
	if err != nil {
		if IsUniqueViolation(err) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("create irrigation type: %w", err)
	}
	return nil
}

type pgPlantationTypes struct{ p *PostgresStores }

const plantationTypeColumns = `id, industry_id, code, name, is_active, description`

func (s pgPlantationTypes) scan(row *sql.Row) (*models.PlantationType, error) {
	var pt models.PlantationType
	err := row.Scan(&pt.ID, &pt.IndustryID, &pt.Code, &pt.Name, &pt.IsActive, &pt.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan plantation type: %w", err)
	}
	return &pt, nil
}

func (s pgPlantationTypes) GetByID(ctx context.Context, id int64) (*models.PlantationType, error) {
	return s.scan(s.p.querier(ctx).QueryRowContext(ctx,
		`SELECT `+plantationTypeColumns+` FROM plantation_types WHERE id = $1`, id))
}

func (s pgPlantationTypes) FindByCode(ctx context.Context, industryID int64, code string) (*models.PlantationType, error) {
	return s.scan(s.p.querier(ctx).QueryRowContext(ctx,
		`SELECT `+plantationTypeColumns+` FROM plantation_types
		 WHERE industry_id = $1 AND lower(code) = lower($2) AND is_active`, industryID, code))
}

func (s pgPlantationTypes) FindByName(ctx context.Context, industryID int64, name string) (*models.PlantationType, error) {
	return s.scan(s.p.querier(ctx).QueryRowContext(ctx,
		`SELECT `+plantationTypeColumns+` FROM plantation_types
		 WHERE industry_id = $1 AND lower(name) = lower($2) AND is_active`, industryID, name))
}

func (s pgPlantationTypes) FindByCodeAny(ctx context.Context, code string) (*models.PlantationType, error) {
	return s.scan(s.p.querier(ctx).QueryRowContext(ctx,
		`SELECT `+plantationTypeColumns+` FROM plantation_types
		 WHERE lower(code) = lower($1) AND is_active ORDER BY id LIMIT 1`, code))
}

func (s pgPlantationTypes) FindByNameAny(ctx context.Context, name string) (*models.PlantationType, error) {
	return s.scan(s.p.querier(ctx).QueryRowContext(ctx,
		`SELECT `+plantationTypeColumns+` FROM plantation_types
		 WHERE lower(name) = lower($1) AND is_active ORDER BY id LIMIT 1`, name))
}

func (s pgPlantationTypes) Create(ctx context.Context, pt *models.PlantationType) error {
	err := s.p.querier(ctx).QueryRowContext(ctx,
		`INSERT INTO plantation_types (industry_id, code, name, is_active, description)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		pt.IndustryID, pt.Code, pt.Name, pt.IsActive, pt.Description).Scan(&pt.ID)
	if err != nil {
		if IsUniqueViolation(err) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("create plantation type: %w", err)
	}
	return nil
}

type pgPlantingMethods struct{ p *PostgresStores }

const plantingMethodColumns = `id, plantation_type_id, industry_id, code, name, is_active, description`

func (s pgPlantingMethods) scan(row *sql.Row) (*models.PlantingMethod, error) {
	var pm models.PlantingMethod
	err := row.Scan(&pm.ID, &pm.PlantationTypeID, &pm.IndustryID, &pm.Code,
		&pm.Name, &pm.IsActive, &pm.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan planting method: %w", err)
	}
	return &pm, nil
}

func (s pgPlantingMethods) GetByID(ctx context.Context, id int64) (*models.PlantingMethod, error) {
	return s.scan(s.p.querier(ctx).QueryRowContext(ctx,
		`SELECT `+plantingMethodColumns+` FROM planting_methods WHERE id = $1`, id))
}

func (s pgPlantingMethods) FindByCode(ctx context.Context, industryID int64, code string) (*models.PlantingMethod, error) {
	return s.scan(s.p.querier(ctx).QueryRowContext(ctx,
		`SELECT `+plantingMethodColumns+` FROM planting_methods
		 WHERE industry_id = $1 AND lower(code) = lower($2) AND is_active`, industryID, code))
}

func (s pgPlantingMethods) FindByName(ctx context.Context, industryID int64, name string) (*models.PlantingMethod, error) {
	return s.scan(s.p.querier(ctx).QueryRowContext(ctx,
		`SELECT `+plantingMethodColumns+` FROM planting_methods
		 WHERE industry_id = $1 AND lower(name) = lower($2) AND is_active`, industryID, name))
}

func (s pgPlantingMethods) FindByCodeAny(ctx context.Context, code string) (*models.PlantingMethod, error) {
	return s.scan(s.p.querier(ctx).QueryRowContext(ctx,
		`SELECT `+plantingMethodColumns+` FROM planting_methods
		 WHERE lower(code) = lower($1) AND is_active ORDER BY id LIMIT 1`, code))
}

func (s pgPlantingMethods) FindByNameAny(ctx context.Context, name string) (*models.PlantingMethod, error) {
	return s.scan(s.p.querier(ctx).QueryRowContext(ctx,
		`SELECT `+plantingMethodColumns+` FROM planting_methods
		 WHERE lower(name) = lower($1) AND is_active ORDER BY id LIMIT 1`, name))
}

func (s pgPlantingMethods) Create(ctx context.Context, pm *models.PlantingMethod) error {
	err := s.p.querier(ctx).QueryRowContext(ctx,
		`INSERT INTO planting_methods (plantation_type_id, industry_id, code, name, is_active, description)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		pm.PlantationTypeID, pm.IndustryID, pm.Code, pm.Name, pm.IsActive, pm.Description).Scan(&pm.ID)
	if err != nil {
		if IsUniqueViolation(err) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("create planting method: %w", err)
	}
	return nil
}

type pgCropTypes struct{ p *PostgresStores }

func (s pgCropTypes) scan(row *sql.Row) (*models.CropType, error) {
	var ct models.CropType
	err := row.Scan(&ct.ID, &ct.Name, &ct.PlantationTypeID, &ct.PlantingMethodID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan crop type: %w", err)
	}
	return &ct, nil
}

func (s pgCropTypes) GetByID(ctx context.Context, id int64) (*models.CropType, error) {
	return s.scan(s.p.querier(ctx).QueryRowContext(ctx,
		`SELECT id, name, plantation_type_id, planting_method_id FROM crop_types WHERE id = $1`, id))
}

// FindByIdentity matches on the full identity triple. NULL links only match
// NULL, which is what lets pre-plantation rows coexist with fully linked ones.
func (s pgCropTypes) FindByIdentity(ctx context.Context, name string, plantationTypeID, plantingMethodID *int64) (*models.CropType, error) {
	query := `
		SELECT id, name, plantation_type_id, planting_method_id FROM crop_types
		WHERE lower(name) = lower($1)
			AND plantation_type_id IS NOT DISTINCT FROM $2
			AND planting_method_id IS NOT DISTINCT FROM $3
	`
	return s.scan(s.p.querier(ctx).QueryRowContext(ctx, query, name, plantationTypeID, plantingMethodID))
}

func (s pgCropTypes) FindByName(ctx context.Context, name string) (*models.CropType, error) {
	return s.scan(s.p.querier(ctx).QueryRowContext(ctx,
		`SELECT id, name, plantation_type_id, planting_method_id FROM crop_types
		 WHERE lower(name) = lower($1) ORDER BY id LIMIT 1`, name))
}

func (s pgCropTypes) Create(ctx context.Context, ct *models.CropType) error {
	err := s.p.querier(ctx).QueryRowContext(ctx,
		`INSERT INTO crop_types (name, plantation_type_id, planting_method_id)
		 VALUES ($1, $2, $3) RETURNING id`,
		ct.Name, ct.PlantationTypeID, ct.PlantingMethodID).Scan(&ct.ID)
	if err != nil {
		if IsUniqueViolation(err) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("create crop type: %w", err)
	}
	return nil
}

func (s pgCropTypes) Update(ctx context.Context, ct *models.CropType) error {
	res, err := s.p.querier(ctx).ExecContext(ctx,
		`UPDATE crop_types SET name = $2, plantation_type_id = $3, planting_method_id = $4 WHERE id = $1`,
		ct.ID, ct.Name, ct.PlantationTypeID, ct.PlantingMethodID)
	if err != nil {
		return fmt.Errorf("update crop type: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update crop type: %w", err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}
