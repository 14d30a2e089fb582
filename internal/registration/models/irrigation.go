package models

import (
	"github.com/google/uuid"

	"farmgate/pkg/geo"
)

// FarmIrrigation is the irrigation setup for a farm. Physical parameters are
// optional and depend on the irrigation type.
type FarmIrrigation struct {
	ID               uuid.UUID     `json:"id"`
	FarmID           uuid.UUID     `json:"farm_id"`
	IrrigationTypeID *int64        `json:"irrigation_type_id,omitempty"`
	Location         *geo.Geometry `json:"location,omitempty"`
	Status           bool          `json:"status"`
	MotorHorsepower  *float64      `json:"motor_horsepower,omitempty"`
	PipeWidthInches  *float64      `json:"pipe_width_inches,omitempty"`
	// DistanceMotorToPlotM is meters from the motor to the plot.
	DistanceMotorToPlotM *float64 `json:"distance_motor_to_plot_m,omitempty"`
	PlantsPerAcre        *float64 `json:"plants_per_acre,omitempty"`
	FlowRateLPH          *float64 `json:"flow_rate_lph,omitempty"`
	EmittersCount        *int64   `json:"emitters_count,omitempty"`
}
