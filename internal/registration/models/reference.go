package models

// Reference entities are lookup/classification rows resolved (or
// auto-created) during registration rather than always supplied by id.

// SoilType is a simple name+description reference, unique by name.
type SoilType struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// IrrigationType is a simple name+description reference, unique by name.
type IrrigationType struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// PlantationType is scoped by (industry, code): the same code may exist once
// per industry, plus once unscoped for legacy rows.
type PlantationType struct {
	ID          int64  `json:"id"`
	IndustryID  *int64 `json:"industry_id,omitempty"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	IsActive    bool   `json:"is_active"`
	Description string `json:"description,omitempty"`
}

// PlantingMethod is scoped by (plantation_type, industry, code).
type PlantingMethod struct {
	ID               int64  `json:"id"`
	PlantationTypeID *int64 `json:"plantation_type_id,omitempty"`
	IndustryID       *int64 `json:"industry_id,omitempty"`
	Code             string `json:"code"`
	Name             string `json:"name"`
	IsActive         bool   `json:"is_active"`
	Description      string `json:"description,omitempty"`
}

// CropType is identified by the triple (name, plantation_type,
// planting_method) - NOT by name alone. Rows created before plantation data
// existed carry nil links and are lazily backfilled.
type CropType struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	PlantationTypeID *int64 `json:"plantation_type_id,omitempty"`
	PlantingMethodID *int64 `json:"planting_method_id,omitempty"`
}
