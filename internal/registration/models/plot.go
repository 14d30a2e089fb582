package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"farmgate/pkg/geo"
)

// PlotKey is the natural key identifying a land parcel. PlotNumber may be
// empty; the remaining fields are required.
type PlotKey struct {
	GatNumber  string
	PlotNumber string
	Village    string
	District   string
}

func (k PlotKey) String() string {
	return fmt.Sprintf("GAT %s/%s %s, %s", k.GatNumber, k.PlotNumber, k.Village, k.District)
}

// Plot is a registered land parcel owned by exactly one farmer.
type Plot struct {
	ID         uuid.UUID     `json:"id"`
	GatNumber  string        `json:"gat_number"`
	PlotNumber string        `json:"plot_number,omitempty"`
	Village    string        `json:"village"`
	Taluka     string        `json:"taluka,omitempty"`
	District   string        `json:"district"`
	State      string        `json:"state"`
	Country    string        `json:"country"`
	PinCode    string        `json:"pin_code,omitempty"`
	FarmerID   uuid.UUID     `json:"farmer_id"`
	CreatedBy  uuid.UUID     `json:"created_by"`
	Location   *geo.Geometry `json:"location,omitempty"`
	Boundary   *geo.Geometry `json:"boundary,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
}

// Key returns the plot's natural key.
func (p *Plot) Key() PlotKey {
	return PlotKey{
		GatNumber:  p.GatNumber,
		PlotNumber: p.PlotNumber,
		Village:    p.Village,
		District:   p.District,
	}
}

// Name derives a stable human-readable label used by downstream consumers.
func (p *Plot) Name() string {
	return fmt.Sprintf("GAT-%s-%s", p.GatNumber, p.Village)
}
