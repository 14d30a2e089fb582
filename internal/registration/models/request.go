package models

import (
	"encoding/json"
)

// RegistrationRequest is the composite payload for a single-call farmer
// registration. Plots may arrive either as the grouped "plots" array or as
// legacy top-level plot/farm/irrigation keys; when both are present the
// top-level farm doubles as the shared default for every group.
type RegistrationRequest struct {
	Farmer *FarmerInput `json:"farmer"`

	Plots []PlotGroup `json:"plots,omitempty"`

	// Legacy single-plot shape.
	Plot       *PlotInput       `json:"plot,omitempty"`
	Farm       *FarmInput       `json:"farm,omitempty"`
	Irrigation *IrrigationInput `json:"irrigation,omitempty"`
}

// PlotGroup couples one plot with its farm and irrigation details.
type PlotGroup struct {
	Plot       *PlotInput       `json:"plot"`
	Farm       *FarmInput       `json:"farm,omitempty"`
	Irrigation *IrrigationInput `json:"irrigation,omitempty"`
}

// FarmerInput carries the identity fields for the farmer account.
type FarmerInput struct {
	Username  string `json:"username,omitempty"`
	Email     string `json:"email,omitempty"`
	Password  string `json:"password,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	Village   string `json:"village,omitempty"`
	District  string `json:"district,omitempty"`
	State     string `json:"state,omitempty"`
	Taluka    string `json:"taluka,omitempty"`
}

// PlotInput carries the land parcel fields. Location and Boundary stay raw
// until geometry conversion so both GeoJSON objects and pre-serialized
// strings are accepted.
type PlotInput struct {
	GatNumber  string          `json:"gat_number,omitempty"`
	PlotNumber string          `json:"plot_number,omitempty"`
	Village    string          `json:"village,omitempty"`
	Taluka     string          `json:"taluka,omitempty"`
	District   string          `json:"district,omitempty"`
	State      string          `json:"state,omitempty"`
	Country    string          `json:"country,omitempty"`
	PinCode    string          `json:"pin_code,omitempty"`
	Location   json.RawMessage `json:"location,omitempty"`
	Boundary   json.RawMessage `json:"boundary,omitempty"`
}

// FarmInput carries cultivation fields. Pointer fields distinguish
// "explicitly provided" from "absent" so group values can shadow defaults
// even when falsy, and numerics are json.Number so malformed values soft-fail
// per field instead of failing the whole decode.
type FarmInput struct {
	Address          string      `json:"address,omitempty"`
	AreaSize         json.Number `json:"area_size,omitempty"`
	SoilTypeID       *int64      `json:"soil_type_id,omitempty"`
	SoilType         *string     `json:"soil_type,omitempty"`
	CropTypeID       *int64      `json:"crop_type_id,omitempty"`
	CropType         *string     `json:"crop_type,omitempty"`
	PlantationTypeID *int64      `json:"plantation_type_id,omitempty"`
	PlantationType   *string     `json:"plantation_type,omitempty"`
	PlantingMethodID *int64      `json:"planting_method_id,omitempty"`
	PlantingMethod   *string     `json:"planting_method,omitempty"`
	PlantationDate   string      `json:"plantation_date,omitempty"`
	SpacingA         json.Number `json:"spacing_a,omitempty"`
	SpacingB         json.Number `json:"spacing_b,omitempty"`
}

// IrrigationInput carries irrigation setup fields for one plot group.
type IrrigationInput struct {
	IrrigationTypeID    *int64          `json:"irrigation_type_id,omitempty"`
	IrrigationType      *string         `json:"irrigation_type,omitempty"`
	Location            json.RawMessage `json:"location,omitempty"`
	Status              *bool           `json:"status,omitempty"`
	MotorHorsepower     json.Number     `json:"motor_horsepower,omitempty"`
	PipeWidthInches     json.Number     `json:"pipe_width_inches,omitempty"`
	DistanceMotorToPlot json.Number     `json:"distance_motor_to_plot_m,omitempty"`
	PlantsPerAcre       json.Number     `json:"plants_per_acre,omitempty"`
	FlowRateLPH         json.Number     `json:"flow_rate_lph,omitempty"`
	EmittersCount       *int64          `json:"emitters_count,omitempty"`
}

// CreatedGroup reports the entities persisted for one plot group.
type CreatedGroup struct {
	Plot       *Plot           `json:"plot"`
	Farm       *Farm           `json:"farm,omitempty"`
	Irrigation *FarmIrrigation `json:"irrigation,omitempty"`
}

// RegistrationResult is the success envelope returned to the caller,
// including the post-commit sync summary.
type RegistrationResult struct {
	Success         bool           `json:"success"`
	Message         string         `json:"message,omitempty"`
	Farmer          *Farmer        `json:"farmer,omitempty"`
	CreatedEntities []CreatedGroup `json:"created_entities,omitempty"`
	SyncSuccessful  []string       `json:"sync_successful,omitempty"`
	SyncFailed      []SyncFailure  `json:"sync_failed,omitempty"`
}

// SyncFailure names one downstream target that did not accept the plot.
type SyncFailure struct {
	Target string `json:"target"`
	Reason string `json:"reason"`
}

// Groups normalizes the request into plot groups, folding the legacy
// top-level shape into a single group when no grouped plots are present.
func (r *RegistrationRequest) Groups() []PlotGroup {
	if len(r.Plots) > 0 {
		return r.Plots
	}
	if r.Plot != nil {
		return []PlotGroup{{Plot: r.Plot, Farm: r.Farm, Irrigation: r.Irrigation}}
	}
	return nil
}
