//go:build !integration

package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/carton-service/internal/domain/model"
)

func testCatalog() []model.Box {
	return []model.Box{
		{ID: "box-s", Name: "Small", Volume: 100, Priority: 1, Active: true, InStock: true},
		{ID: "box-m", Name: "Medium", Volume: 500, Priority: 2, Active: true, InStock: true},
		{ID: "box-l", Name: "Large", Volume: 2000, Priority: 3, Active: true, InStock: true},
	}
}

func testSizes() map[string]model.ProductSize {
	return map[string]model.ProductSize{
		"MUG-11OZ": {SKU: "MUG-11OZ", Volume: 45},
		"POSTER-A2": {SKU: "POSTER-A2", Volume: 120},
	}
}

func TestFindBestBox_VolumetricSmallestFits(t *testing.T) {
	selector := NewSelectorService()

	rec := selector.FindBestBox(SelectionInput{
		Items:             []model.Item{{SKU: "MUG-11OZ", Quantity: 1}},
		Boxes:             testCatalog(),
		Sizes:             testSizes(),
		PackingEfficiency: 0.8,
	})

	require.NotNil(t, rec.Box)
	assert.Equal(t, "box-s", rec.Box.ID)
	assert.Equal(t, model.ConfidenceCalculated, rec.Confidence)
	assert.Empty(t, rec.Reason)
	assert.InDelta(t, 45.0, rec.RequiredVolume, 1e-9)
	assert.InDelta(t, 80.0, rec.UsableVolume, 1e-9)
}

func TestFindBestBox_EfficiencyPushesToLargerBox(t *testing.T) {
	selector := NewSelectorService()

	// Two mugs need 90 units. The small box holds 100 raw but only 80
	// usable at 0.8 efficiency, so the medium box wins.
	rec := selector.FindBestBox(SelectionInput{
		Items:             []model.Item{{SKU: "MUG-11OZ", Quantity: 2}},
		Boxes:             testCatalog(),
		Sizes:             testSizes(),
		PackingEfficiency: 0.8,
	})

	require.NotNil(t, rec.Box)
	assert.Equal(t, "box-m", rec.Box.ID)
	assert.Equal(t, model.ConfidenceCalculated, rec.Confidence)
	assert.InDelta(t, 90.0, rec.RequiredVolume, 1e-9)

	// At full efficiency the small box is enough for the same order.
	rec = selector.FindBestBox(SelectionInput{
		Items:             []model.Item{{SKU: "MUG-11OZ", Quantity: 2}},
		Boxes:             testCatalog(),
		Sizes:             testSizes(),
		PackingEfficiency: 1.0,
	})
	require.NotNil(t, rec.Box)
	assert.Equal(t, "box-s", rec.Box.ID)
}

func TestFindBestBox_EmptyOrder(t *testing.T) {
	selector := NewSelectorService()

	tests := []struct {
		name  string
		items []model.Item
	}{
		{name: "no items", items: nil},
		{name: "all quantities zero", items: []model.Item{{SKU: "MUG-11OZ", Quantity: 0}}},
		{name: "quantities cancel out", items: []model.Item{
			{SKU: "MUG-11OZ", Quantity: 2},
			{SKU: "MUG-11OZ", Quantity: -2},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := selector.FindBestBox(SelectionInput{
				Items:             tt.items,
				Boxes:             testCatalog(),
				Sizes:             testSizes(),
				PackingEfficiency: 0.8,
			})
			assert.Nil(t, rec.Box)
			assert.Equal(t, model.ConfidenceUnknown, rec.Confidence)
		})
	}
}

func TestFindBestBox_NoFit(t *testing.T) {
	selector := NewSelectorService()

	rec := selector.FindBestBox(SelectionInput{
		Items:             []model.Item{{SKU: "POSTER-A2", Quantity: 50}},
		Boxes:             testCatalog(),
		Sizes:             testSizes(),
		PackingEfficiency: 0.8,
	})

	assert.Nil(t, rec.Box)
	assert.Equal(t, model.ConfidenceUnknown, rec.Confidence)
	assert.NotEmpty(t, rec.ComboSignature)
	assert.InDelta(t, 6000.0, rec.RequiredVolume, 1e-9)
}

func TestFindBestBox_FeedbackConfirmationWins(t *testing.T) {
	selector := NewSelectorService()
	items := []model.Item{{SKU: "MUG-11OZ", Quantity: 1}}
	sig := model.ComboSignature(items)

	rec := selector.FindBestBox(SelectionInput{
		Items: items,
		Boxes: testCatalog(),
		Sizes: testSizes(),
		Rules: []model.FeedbackRule{
			{ID: "r1", ComboSignature: sig, BoxID: "box-l", Fits: true, CreatedAt: time.Now()},
		},
		PackingEfficiency: 0.8,
	})

	// Volumetrically the small box wins, but the operator said otherwise.
	require.NotNil(t, rec.Box)
	assert.Equal(t, "box-l", rec.Box.ID)
	assert.Equal(t, model.ConfidenceConfirmed, rec.Confidence)
	assert.Equal(t, model.ReasonFeedback, rec.Reason)
	assert.Equal(t, sig, rec.ComboSignature)
}

func TestFindBestBox_LatestConfirmationWins(t *testing.T) {
	selector := NewSelectorService()
	items := []model.Item{{SKU: "MUG-11OZ", Quantity: 1}}
	sig := model.ComboSignature(items)
	now := time.Now()

	rec := selector.FindBestBox(SelectionInput{
		Items: items,
		Boxes: testCatalog(),
		Sizes: testSizes(),
		Rules: []model.FeedbackRule{
			{ID: "old", ComboSignature: sig, BoxID: "box-m", Fits: true, CreatedAt: now.Add(-time.Hour)},
			{ID: "new", ComboSignature: sig, BoxID: "box-l", Fits: true, CreatedAt: now},
		},
		PackingEfficiency: 0.8,
	})

	require.NotNil(t, rec.Box)
	assert.Equal(t, "box-l", rec.Box.ID)
	assert.Equal(t, model.ReasonFeedback, rec.Reason)
}

func TestFindBestBox_EqualTimestampConfirmationsDeterministic(t *testing.T) {
	selector := NewSelectorService()
	items := []model.Item{{SKU: "MUG-11OZ", Quantity: 1}}
	sig := model.ComboSignature(items)
	createdAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	// Two conflicting confirmations with the same timestamp must resolve
	// the same way no matter how the repository orders them.
	rules := []model.FeedbackRule{
		{ID: "aaa", ComboSignature: sig, BoxID: "box-m", Fits: true, CreatedAt: createdAt},
		{ID: "zzz", ComboSignature: sig, BoxID: "box-l", Fits: true, CreatedAt: createdAt},
	}
	reversed := []model.FeedbackRule{rules[1], rules[0]}

	for _, ruleSet := range [][]model.FeedbackRule{rules, reversed} {
		rec := selector.FindBestBox(SelectionInput{
			Items:             items,
			Boxes:             testCatalog(),
			Sizes:             testSizes(),
			Rules:             ruleSet,
			PackingEfficiency: 0.8,
		})

		require.NotNil(t, rec.Box)
		assert.Equal(t, "box-l", rec.Box.ID)
		assert.Equal(t, model.ConfidenceConfirmed, rec.Confidence)
	}
}

func TestFindBestBox_UnknownConfirmedBoxFallsThrough(t *testing.T) {
	selector := NewSelectorService()
	items := []model.Item{{SKU: "MUG-11OZ", Quantity: 1}}
	sig := model.ComboSignature(items)

	rec := selector.FindBestBox(SelectionInput{
		Items: items,
		Boxes: testCatalog(),
		Sizes: testSizes(),
		Rules: []model.FeedbackRule{
			{ID: "r1", ComboSignature: sig, BoxID: "deleted-box", Fits: true, CreatedAt: time.Now()},
		},
		PackingEfficiency: 0.8,
	})

	// The stale rule cannot block shipping; volumetric search takes over.
	require.NotNil(t, rec.Box)
	assert.Equal(t, "box-s", rec.Box.ID)
	assert.Equal(t, model.ConfidenceCalculated, rec.Confidence)
}

func TestFindBestBox_RejectionExcludesBox(t *testing.T) {
	selector := NewSelectorService()
	items := []model.Item{{SKU: "MUG-11OZ", Quantity: 1}}
	sig := model.ComboSignature(items)

	rec := selector.FindBestBox(SelectionInput{
		Items: items,
		Boxes: testCatalog(),
		Sizes: testSizes(),
		Rules: []model.FeedbackRule{
			{ID: "r1", ComboSignature: sig, BoxID: "box-s", Fits: false, CreatedAt: time.Now()},
		},
		PackingEfficiency: 0.8,
	})

	require.NotNil(t, rec.Box)
	assert.Equal(t, "box-m", rec.Box.ID)
	assert.Equal(t, model.ConfidenceCalculated, rec.Confidence)
}

func TestFindBestBox_CorrectionShortCircuits(t *testing.T) {
	selector := NewSelectorService()
	items := []model.Item{{SKU: "MUG-11OZ", Quantity: 1}}
	sig := model.ComboSignature(items)

	rec := selector.FindBestBox(SelectionInput{
		Items: items,
		Boxes: testCatalog(),
		Sizes: testSizes(),
		Rules: []model.FeedbackRule{
			{ID: "r1", ComboSignature: sig, BoxID: "box-s", Fits: false, CorrectBoxID: "box-l", CreatedAt: time.Now()},
		},
		PackingEfficiency: 0.8,
	})

	require.NotNil(t, rec.Box)
	assert.Equal(t, "box-l", rec.Box.ID)
	assert.Equal(t, model.ConfidenceConfirmed, rec.Confidence)
	assert.Equal(t, model.ReasonFeedbackCorrection, rec.Reason)
}

func TestFindBestBox_InvalidCorrectionFallsToVolumetric(t *testing.T) {
	selector := NewSelectorService()
	items := []model.Item{{SKU: "MUG-11OZ", Quantity: 1}}
	sig := model.ComboSignature(items)

	tests := []struct {
		name         string
		correctBoxID string
		extraRules   []model.FeedbackRule
		wantBoxID    string
	}{
		{
			name:         "correction names unknown box",
			correctBoxID: "deleted-box",
			wantBoxID:    "box-m",
		},
		{
			name:         "correction names the rejected box itself",
			correctBoxID: "box-s",
			wantBoxID:    "box-m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := []model.FeedbackRule{
				{ID: "r1", ComboSignature: sig, BoxID: "box-s", Fits: false, CorrectBoxID: tt.correctBoxID, CreatedAt: time.Now()},
			}
			rules = append(rules, tt.extraRules...)

			rec := selector.FindBestBox(SelectionInput{
				Items:             items,
				Boxes:             testCatalog(),
				Sizes:             testSizes(),
				Rules:             rules,
				PackingEfficiency: 0.8,
			})

			require.NotNil(t, rec.Box)
			assert.Equal(t, tt.wantBoxID, rec.Box.ID)
			assert.Equal(t, model.ConfidenceCalculated, rec.Confidence)
		})
	}
}

func TestFindBestBox_DedicatedBox(t *testing.T) {
	selector := NewSelectorService()
	boxes := append(testCatalog(), model.Box{
		ID: "box-mug", Name: "Mug box", Volume: 60, Priority: 1, Active: true, InStock: true, SingleCupOnly: true,
	})
	sizes := map[string]model.ProductSize{
		"MUG-11OZ": {SKU: "MUG-11OZ", Volume: 45, SingleBoxID: "box-mug"},
	}

	rec := selector.FindBestBox(SelectionInput{
		Items:             []model.Item{{SKU: "MUG-11OZ", Quantity: 1}},
		Boxes:             boxes,
		Sizes:             sizes,
		PackingEfficiency: 0.8,
	})

	require.NotNil(t, rec.Box)
	assert.Equal(t, "box-mug", rec.Box.ID)
	assert.Equal(t, model.ConfidenceConfirmed, rec.Confidence)
	assert.Equal(t, model.ReasonDedicatedBox, rec.Reason)
}

func TestFindBestBox_DedicatedBoxSkippedForMultipleUnits(t *testing.T) {
	selector := NewSelectorService()
	boxes := append(testCatalog(), model.Box{
		ID: "box-mug", Name: "Mug box", Volume: 60, Priority: 0, Active: true, InStock: true, SingleCupOnly: true,
	})
	sizes := map[string]model.ProductSize{
		"MUG-11OZ": {SKU: "MUG-11OZ", Volume: 45, SingleBoxID: "box-mug"},
	}

	rec := selector.FindBestBox(SelectionInput{
		Items:             []model.Item{{SKU: "MUG-11OZ", Quantity: 2}},
		Boxes:             boxes,
		Sizes:             sizes,
		PackingEfficiency: 0.8,
	})

	// Two units cannot use the dedicated single-unit box; the single-cup
	// carton is also excluded from the volumetric pass.
	require.NotNil(t, rec.Box)
	assert.Equal(t, "box-m", rec.Box.ID)
	assert.Equal(t, model.ConfidenceCalculated, rec.Confidence)
}

func TestFindBestBox_RejectionOverridesDedicatedBox(t *testing.T) {
	selector := NewSelectorService()
	items := []model.Item{{SKU: "MUG-11OZ", Quantity: 1}}
	sig := model.ComboSignature(items)
	boxes := append(testCatalog(), model.Box{
		ID: "box-mug", Name: "Mug box", Volume: 60, Priority: 0, Active: true, InStock: true, SingleCupOnly: true,
	})
	sizes := map[string]model.ProductSize{
		"MUG-11OZ": {SKU: "MUG-11OZ", Volume: 45, SingleBoxID: "box-mug"},
	}

	rec := selector.FindBestBox(SelectionInput{
		Items: items,
		Boxes: boxes,
		Sizes: sizes,
		Rules: []model.FeedbackRule{
			{ID: "r1", ComboSignature: sig, BoxID: "box-mug", Fits: false, CreatedAt: time.Now()},
		},
		PackingEfficiency: 0.8,
	})

	require.NotNil(t, rec.Box)
	assert.NotEqual(t, "box-mug", rec.Box.ID)
	assert.Equal(t, "box-s", rec.Box.ID)
}

func TestFindBestBox_InactiveDedicatedBoxIgnored(t *testing.T) {
	selector := NewSelectorService()
	boxes := append(testCatalog(), model.Box{
		ID: "box-mug", Name: "Mug box", Volume: 60, Priority: 0, Active: false, InStock: true, SingleCupOnly: true,
	})
	sizes := map[string]model.ProductSize{
		"MUG-11OZ": {SKU: "MUG-11OZ", Volume: 45, SingleBoxID: "box-mug"},
	}

	rec := selector.FindBestBox(SelectionInput{
		Items:             []model.Item{{SKU: "MUG-11OZ", Quantity: 1}},
		Boxes:             boxes,
		Sizes:             sizes,
		PackingEfficiency: 0.8,
	})

	require.NotNil(t, rec.Box)
	assert.Equal(t, "box-s", rec.Box.ID)
}

func TestFindBestBox_CandidateOrdering(t *testing.T) {
	selector := NewSelectorService()
	boxes := []model.Box{
		{ID: "z-box", Name: "Tie B", Volume: 300, Priority: 1, Active: true, InStock: true},
		{ID: "a-box", Name: "Tie A", Volume: 300, Priority: 1, Active: true, InStock: true},
		{ID: "big-cheap", Name: "Preferred big", Volume: 1000, Priority: 0, Active: true, InStock: true},
	}

	rec := selector.FindBestBox(SelectionInput{
		Items:             []model.Item{{SKU: "MUG-11OZ", Quantity: 1}},
		Boxes:             boxes,
		Sizes:             testSizes(),
		PackingEfficiency: 0.8,
	})

	// Priority beats volume, so the big priority-0 box wins even though
	// smaller cartons would fit.
	require.NotNil(t, rec.Box)
	assert.Equal(t, "big-cheap", rec.Box.ID)

	// With equal priorities the tie breaks on volume, then on ID.
	rec = selector.FindBestBox(SelectionInput{
		Items:             []model.Item{{SKU: "MUG-11OZ", Quantity: 1}},
		Boxes:             boxes[:2],
		Sizes:             testSizes(),
		PackingEfficiency: 0.8,
	})
	require.NotNil(t, rec.Box)
	assert.Equal(t, "a-box", rec.Box.ID)
}

func TestFindBestBox_SkipsInactiveAndOutOfStock(t *testing.T) {
	selector := NewSelectorService()
	boxes := []model.Box{
		{ID: "box-inactive", Volume: 100, Priority: 1, Active: false, InStock: true},
		{ID: "box-oos", Volume: 100, Priority: 1, Active: true, InStock: false},
		{ID: "box-ok", Volume: 100, Priority: 2, Active: true, InStock: true},
	}

	rec := selector.FindBestBox(SelectionInput{
		Items:             []model.Item{{SKU: "MUG-11OZ", Quantity: 1}},
		Boxes:             boxes,
		Sizes:             testSizes(),
		PackingEfficiency: 0.8,
	})

	require.NotNil(t, rec.Box)
	assert.Equal(t, "box-ok", rec.Box.ID)
}

func TestFindBestBox_UnresolvedSKUsFlagged(t *testing.T) {
	selector := NewSelectorService()

	rec := selector.FindBestBox(SelectionInput{
		Items: []model.Item{
			{SKU: "MUG-11OZ", Quantity: 1},
			{SKU: "MYSTERY-SKU", Quantity: 3},
		},
		Boxes:             testCatalog(),
		Sizes:             testSizes(),
		PackingEfficiency: 0.8,
	})

	// Unknown products contribute zero volume but the response flags them.
	require.NotNil(t, rec.Box)
	assert.Equal(t, "box-s", rec.Box.ID)
	assert.InDelta(t, 45.0, rec.RequiredVolume, 1e-9)
	assert.Equal(t, []string{"MYSTERY-SKU"}, rec.UnresolvedSKUs)
}

func TestFindBestBox_OrderIndependentFeedbackMatch(t *testing.T) {
	selector := NewSelectorService()
	recorded := []model.Item{
		{SKU: "MUG-11OZ", Quantity: 1},
		{SKU: "POSTER-A2", Quantity: 2},
	}
	sig := model.ComboSignature(recorded)

	// The same composition arrives permuted and with the poster quantity
	// split across two lines; the rule must still match.
	rec := selector.FindBestBox(SelectionInput{
		Items: []model.Item{
			{SKU: "POSTER-A2", Quantity: 1},
			{SKU: "MUG-11OZ", Quantity: 1},
			{SKU: "POSTER-A2", Quantity: 1},
		},
		Boxes: testCatalog(),
		Sizes: testSizes(),
		Rules: []model.FeedbackRule{
			{ID: "r1", ComboSignature: sig, BoxID: "box-l", Fits: true, CreatedAt: time.Now()},
		},
		PackingEfficiency: 0.8,
	})

	require.NotNil(t, rec.Box)
	assert.Equal(t, "box-l", rec.Box.ID)
	assert.Equal(t, model.ReasonFeedback, rec.Reason)
}
