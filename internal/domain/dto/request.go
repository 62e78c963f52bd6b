// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

// OrderItem is one order line in a recommendation or feedback request.
type OrderItem struct {
	// SKU is the stock-keeping unit of the line.
	SKU string `json:"sku" binding:"required" example:"MUG-11OZ-WHT"`
	// ProductID optionally identifies the product; defaults to SKU when empty.
	ProductID string `json:"product_id,omitempty"`
	// Quantity is the number of units ordered. Must be greater than 0.
	Quantity int `json:"quantity" binding:"required,gt=0" example:"2" minimum:"1"`
	// Name is the display name of the line.
	Name string `json:"name,omitempty" example:"White ceramic mug 11oz"`
} // @name OrderItem

// RecommendBoxRequest represents the JSON request body for the carton
// recommendation endpoint.
//
// @Description Request to pick the best carton for an order
// @Example {"order_id": "ORD-1042", "items": [{"sku": "MUG-11OZ-WHT", "quantity": 2}]}
type RecommendBoxRequest struct {
	// OrderID identifies the order, used for audit logging only.
	OrderID string `json:"order_id,omitempty" example:"ORD-1042"`
	// Items are the order lines to pack.
	Items []OrderItem `json:"items" binding:"required,min=1,dive"`
} // @name RecommendBoxRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrNoItems is returned when a recommendation request has no items.
	ErrNoItems = &ValidationError{
		Field:   "items",
		Message: "at least one item is required",
	}
	// ErrInvalidQuantity is returned when an item quantity is not positive.
	ErrInvalidQuantity = &ValidationError{
		Field:   "items.quantity",
		Message: "must be a positive integer",
	}
	// ErrInvalidDimensions is returned when a box dimension is not positive.
	ErrInvalidDimensions = &ValidationError{
		Field:   "dimensions",
		Message: "length, width and height must be positive",
	}
	// ErrMissingCombo is returned when a feedback rule identifies no combination.
	ErrMissingCombo = &ValidationError{
		Field:   "items",
		Message: "either items or combo_signature is required",
	}
	// ErrCorrectionNotAllowed is returned when correct_box_id accompanies fits=true.
	ErrCorrectionNotAllowed = &ValidationError{
		Field:   "correct_box_id",
		Message: "only allowed when fits is false",
	}
	// ErrInvalidEfficiency is returned when packing efficiency is out of range.
	ErrInvalidEfficiency = &ValidationError{
		Field:   "packing_efficiency",
		Message: "must be greater than 0 and at most 1",
	}
)

// Validate performs custom validation on the request.
// Returns an error if validation fails, nil otherwise.
func (r *RecommendBoxRequest) Validate() error {
	if len(r.Items) == 0 {
		return ErrNoItems
	}
	for _, item := range r.Items {
		if item.Quantity <= 0 {
			return ErrInvalidQuantity
		}
	}
	return nil
}

// CreateBoxRequest represents the JSON request body for adding a carton.
//
// @Description Request to add a carton to the catalog
type CreateBoxRequest struct {
	// Name is the display name of the carton.
	Name string `json:"name" binding:"required" example:"Medium mailer"`
	// Length, Width and Height are the inner dimensions. All must be positive.
	Length float64 `json:"length" binding:"required,gt=0" example:"30"`
	Width  float64 `json:"width" binding:"required,gt=0" example:"20"`
	Height float64 `json:"height" binding:"required,gt=0" example:"10"`
	// Priority orders candidates during volumetric search; lower wins.
	Priority int `json:"priority" example:"2"`
	// Active marks the carton as selectable. Defaults to true.
	Active *bool `json:"active,omitempty"`
	// InStock marks the carton as available. Defaults to true.
	InStock *bool `json:"in_stock,omitempty"`
	// SingleCupOnly restricts the carton to single-unit orders.
	SingleCupOnly bool `json:"single_cup_only,omitempty"`
} // @name CreateBoxRequest

// Validate performs custom validation on the request.
func (r *CreateBoxRequest) Validate() error {
	if r.Length <= 0 || r.Width <= 0 || r.Height <= 0 {
		return ErrInvalidDimensions
	}
	return nil
}

// UpdateBoxRequest represents the JSON request body for updating a carton.
// All fields are required; updates replace the document.
type UpdateBoxRequest struct {
	Name          string  `json:"name" binding:"required"`
	Length        float64 `json:"length" binding:"required,gt=0"`
	Width         float64 `json:"width" binding:"required,gt=0"`
	Height        float64 `json:"height" binding:"required,gt=0"`
	Priority      int     `json:"priority"`
	Active        *bool   `json:"active,omitempty"`
	InStock       *bool   `json:"in_stock,omitempty"`
	SingleCupOnly bool    `json:"single_cup_only,omitempty"`
} // @name UpdateBoxRequest

// Validate performs custom validation on the request.
func (r *UpdateBoxRequest) Validate() error {
	if r.Length <= 0 || r.Width <= 0 || r.Height <= 0 {
		return ErrInvalidDimensions
	}
	return nil
}

// CreateFeedbackRuleRequest represents the JSON request body for recording
// a packer verdict. Either Items or ComboSignature identifies the
// composition; when both are present the items win.
//
// @Description Request to record packer feedback about a carton choice
// @Example {"items": [{"sku": "MUG-11OZ-WHT", "quantity": 2}], "box_id": "664f1a...", "fits": false, "correct_box_id": "664f1b..."}
type CreateFeedbackRuleRequest struct {
	// Items are the order lines the verdict applies to.
	Items []OrderItem `json:"items,omitempty" binding:"omitempty,dive"`
	// ComboSignature is a precomputed composition fingerprint.
	ComboSignature string `json:"combo_signature,omitempty"`
	// BoxID is the carton the verdict is about.
	BoxID string `json:"box_id" binding:"required"`
	// Fits records whether the order fit in the carton.
	Fits *bool `json:"fits" binding:"required"`
	// CorrectBoxID names the carton that should have been used. Only
	// allowed when fits is false.
	CorrectBoxID string `json:"correct_box_id,omitempty"`
	// RecordedBy identifies the packer or admin recording the verdict.
	RecordedBy string `json:"recorded_by,omitempty" example:"packer-7"`
} // @name CreateFeedbackRuleRequest

// Validate performs custom validation on the request.
func (r *CreateFeedbackRuleRequest) Validate() error {
	if len(r.Items) == 0 && r.ComboSignature == "" {
		return ErrMissingCombo
	}
	for _, item := range r.Items {
		if item.Quantity <= 0 {
			return ErrInvalidQuantity
		}
	}
	if r.Fits != nil && *r.Fits && r.CorrectBoxID != "" {
		return ErrCorrectionNotAllowed
	}
	return nil
}

// UpdatePackingEfficiencyRequest represents the JSON request body for
// changing the global packing efficiency.
//
// @Description Request to update the packing efficiency scalar
// @Example {"packing_efficiency": 0.8, "updated_by": "ops-admin"}
type UpdatePackingEfficiencyRequest struct {
	// PackingEfficiency is the usable fraction of a carton's raw volume.
	PackingEfficiency float64 `json:"packing_efficiency" binding:"required,gt=0,lte=1" example:"0.8"`
	// UpdatedBy identifies who made the change.
	UpdatedBy string `json:"updated_by,omitempty" example:"ops-admin"`
} // @name UpdatePackingEfficiencyRequest

// Validate performs custom validation on the request.
func (r *UpdatePackingEfficiencyRequest) Validate() error {
	if r.PackingEfficiency <= 0 || r.PackingEfficiency > 1 {
		return ErrInvalidEfficiency
	}
	return nil
}
