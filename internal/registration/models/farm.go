package models

import (
	"time"

	"github.com/google/uuid"
)

// Farm is a cultivation unit on a plot, owned by a farmer.
type Farm struct {
	ID      uuid.UUID `json:"id"`
	FarmUID uuid.UUID `json:"farm_uid"`
	// FarmerID is the owning farmer; PlotID links the parcel it sits on.
	FarmerID       uuid.UUID  `json:"farmer_id"`
	PlotID         *uuid.UUID `json:"plot_id,omitempty"`
	CreatedBy      uuid.UUID  `json:"created_by"`
	Address        string     `json:"address"`
	AreaSize       float64    `json:"area_size"`
	SoilTypeID     *int64     `json:"soil_type_id,omitempty"`
	CropTypeID     *int64     `json:"crop_type_id,omitempty"`
	PlantationDate *time.Time `json:"plantation_date,omitempty"`
	SpacingA       *float64   `json:"spacing_a,omitempty"`
	SpacingB       *float64   `json:"spacing_b,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}
