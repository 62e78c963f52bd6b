package model

// ProductSize is the physical footprint of a product, resolved by SKU from
// the product catalog. The carton service consults these records but does
// not own them.
//
// @Description Physical footprint of a product
type ProductSize struct {
	// SKU is the stock-keeping unit the size belongs to
	SKU string `json:"sku"`
	// Dimensions is the product footprint in centimeters
	Dimensions Dimensions `json:"dimensions"`
	// Weight is the unit weight in grams
	Weight float64 `json:"weight,omitempty"`
	// Volume is the derived unit volume (length*width*height)
	Volume float64 `json:"volume"`
	// SingleBoxID optionally names a box dedicated to solo single-unit
	// orders of this product, bypassing the volumetric search
	SingleBoxID string `json:"single_box_id,omitempty"`
}
