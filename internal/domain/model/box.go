// Package model defines the core domain entities for the carton service.
package model

import "errors"

// ErrInvalidDimension is returned when a carton or product dimension is not positive.
var ErrInvalidDimension = errors.New("dimension must be a positive number")

// Dimensions holds the three internal dimensions of a carton or the
// footprint of a product, in a fixed unit (centimeters).
//
// @Description Internal dimensions in centimeters
// @Example {"length": 30, "width": 20, "height": 15}
type Dimensions struct {
	// Length is the internal length in centimeters
	Length float64 `json:"length" example:"30"`
	// Width is the internal width in centimeters
	Width float64 `json:"width" example:"20"`
	// Height is the internal height in centimeters
	Height float64 `json:"height" example:"15"`
}

// ComputeVolume returns length*width*height.
// It fails with ErrInvalidDimension if any dimension is zero or negative.
func ComputeVolume(d Dimensions) (float64, error) {
	if d.Length <= 0 || d.Width <= 0 || d.Height <= 0 {
		return 0, ErrInvalidDimension
	}
	return d.Length * d.Width * d.Height, nil
}

// Box represents a physical shipping carton available for packing.
//
// Volume is always derived from Dimensions (the repository recomputes it on
// every write); it is never mutated independently.
//
// @Description Shipping carton with dimensions, priority and availability flags
type Box struct {
	// ID is the catalog identifier of the box
	ID string `json:"id"`
	// Name is the human-readable box name
	Name string `json:"name" example:"Medium mailer"`
	// Dimensions are the internal dimensions of the box
	Dimensions Dimensions `json:"dimensions"`
	// Volume is the geometric interior volume (length*width*height)
	Volume float64 `json:"volume" example:"9000"`
	// Priority orders candidates; lower is preferred when several boxes fit
	Priority int `json:"priority" example:"1"`
	// Active marks the box as usable at all
	Active bool `json:"active"`
	// InStock marks the box as currently available in the warehouse
	InStock bool `json:"in_stock"`
	// SingleCupOnly restricts the box to single-unit, single-product orders
	SingleCupOnly bool `json:"single_cup_only"`
}

// UsableVolume returns the realistically fillable capacity of the box:
// its geometric volume scaled by the packing-efficiency factor.
func (b Box) UsableVolume(packingEfficiency float64) float64 {
	return b.Volume * packingEfficiency
}
