//go:build !integration

package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool { return &b }

func TestRecommendBoxRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request RecommendBoxRequest
		wantErr error
	}{
		{
			name: "valid request",
			request: RecommendBoxRequest{
				OrderID: "ORD-1",
				Items:   []OrderItem{{SKU: "MUG-11OZ", Quantity: 2}},
			},
		},
		{
			name:    "no items",
			request: RecommendBoxRequest{OrderID: "ORD-1"},
			wantErr: ErrNoItems,
		},
		{
			name: "zero quantity",
			request: RecommendBoxRequest{
				Items: []OrderItem{{SKU: "MUG-11OZ", Quantity: 0}},
			},
			wantErr: ErrInvalidQuantity,
		},
		{
			name: "negative quantity",
			request: RecommendBoxRequest{
				Items: []OrderItem{{SKU: "MUG-11OZ", Quantity: -1}},
			},
			wantErr: ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateBoxRequest_Validate(t *testing.T) {
	valid := CreateBoxRequest{Name: "Small", Length: 10, Width: 5, Height: 2}
	assert.NoError(t, valid.Validate())

	zeroDim := CreateBoxRequest{Name: "Flat", Length: 10, Width: 0, Height: 2}
	assert.ErrorIs(t, zeroDim.Validate(), ErrInvalidDimensions)

	negative := CreateBoxRequest{Name: "Bad", Length: -1, Width: 5, Height: 2}
	assert.ErrorIs(t, negative.Validate(), ErrInvalidDimensions)
}

func TestCreateFeedbackRuleRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request CreateFeedbackRuleRequest
		wantErr error
	}{
		{
			name: "valid with items",
			request: CreateFeedbackRuleRequest{
				Items: []OrderItem{{SKU: "MUG-11OZ", Quantity: 1}},
				BoxID: "box-1",
				Fits:  boolPtr(true),
			},
		},
		{
			name: "valid with signature",
			request: CreateFeedbackRuleRequest{
				ComboSignature: "MUG-11OZ:1",
				BoxID:          "box-1",
				Fits:           boolPtr(false),
				CorrectBoxID:   "box-2",
			},
		},
		{
			name: "no items or signature",
			request: CreateFeedbackRuleRequest{
				BoxID: "box-1",
				Fits:  boolPtr(true),
			},
			wantErr: ErrMissingCombo,
		},
		{
			name: "correction on positive verdict",
			request: CreateFeedbackRuleRequest{
				ComboSignature: "MUG-11OZ:1",
				BoxID:          "box-1",
				Fits:           boolPtr(true),
				CorrectBoxID:   "box-2",
			},
			wantErr: ErrCorrectionNotAllowed,
		},
		{
			name: "invalid item quantity",
			request: CreateFeedbackRuleRequest{
				Items: []OrderItem{{SKU: "MUG-11OZ", Quantity: 0}},
				BoxID: "box-1",
				Fits:  boolPtr(true),
			},
			wantErr: ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdatePackingEfficiencyRequest_Validate(t *testing.T) {
	assert.NoError(t, (&UpdatePackingEfficiencyRequest{PackingEfficiency: 0.8}).Validate())
	assert.NoError(t, (&UpdatePackingEfficiencyRequest{PackingEfficiency: 1.0}).Validate())
	assert.ErrorIs(t, (&UpdatePackingEfficiencyRequest{PackingEfficiency: 0}).Validate(), ErrInvalidEfficiency)
	assert.ErrorIs(t, (&UpdatePackingEfficiencyRequest{PackingEfficiency: 1.2}).Validate(), ErrInvalidEfficiency)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: "items", Message: "required"}
	assert.Equal(t, "items: required", err.Error())
}
