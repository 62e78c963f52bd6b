package service

import (
	"sort"
	"time"

	"github.com/guttosm/carton-service/internal/domain/model"
	"github.com/guttosm/carton-service/internal/logger"
	"github.com/guttosm/carton-service/internal/metrics"
)

// SelectorService decides which carton an order ships in.
//
// Decision order for every request:
//  1. A learned feedback confirmation for the exact item combination.
//  2. A correction attached to a negative feedback rule.
//  3. The dedicated single-unit box of a lone item, when one is registered.
//  4. Volumetric search over the active catalog.
//  5. No recommendation.
type SelectorService interface {
	// FindBestBox picks a carton for the given items, or returns a
	// no-fit recommendation when none qualifies. Items are merged and
	// canonicalized before any rule or catalog lookup.
	FindBestBox(input SelectionInput) model.Recommendation
}

// SelectionInput carries everything a single selection needs. Callers load
// the catalog, rules and settings up front so the engine itself never
// touches storage.
type SelectionInput struct {
	Items             []model.Item
	Boxes             []model.Box
	Rules             []model.FeedbackRule
	Sizes             map[string]model.ProductSize
	PackingEfficiency float64
}

type selectorService struct{}

// NewSelectorService creates the carton selection engine.
func NewSelectorService() SelectorService {
	return &selectorService{}
}

// FindBestBox implements the selection pipeline.
func (s *selectorService) FindBestBox(input SelectionInput) model.Recommendation {
	start := time.Now()

	merged := model.MergeItems(input.Items)
	if len(merged) == 0 {
		rec := model.NoRecommendation()
		s.record(rec, start)
		return rec
	}

	signature := model.ComboSignature(merged)

	catalog := make(map[string]model.Box, len(input.Boxes))
	for _, box := range input.Boxes {
		catalog[box.ID] = box
	}

	confirmations, rejections := partitionRules(input.Rules, signature)
	excluded := make(map[string]bool, len(rejections))
	for _, r := range rejections {
		excluded[r.BoxID] = true
	}

	if rec, ok := s.fromConfirmation(confirmations, catalog, signature); ok {
		s.record(rec, start)
		return rec
	}

	if rec, ok := s.fromCorrection(rejections, catalog, excluded, signature); ok {
		s.record(rec, start)
		return rec
	}

	singleUnit := len(merged) == 1 && merged[0].Quantity == 1

	if singleUnit {
		if rec, ok := s.fromDedicatedBox(merged[0], input.Sizes, catalog, excluded, signature); ok {
			s.record(rec, start)
			return rec
		}
	}

	rec := s.fromVolume(merged, input, catalog, excluded, signature, singleUnit)
	s.record(rec, start)
	return rec
}

// partitionRules splits the rules matching the signature into positive
// confirmations and negative rejections.
func partitionRules(rules []model.FeedbackRule, signature string) (confirmations, rejections []model.FeedbackRule) {
	for _, rule := range rules {
		if rule.ComboSignature != signature {
			continue
		}
		if rule.Fits {
			confirmations = append(confirmations, rule)
		} else {
			rejections = append(rejections, rule)
		}
	}
	return confirmations, rejections
}

// fromConfirmation resolves a positive feedback rule against the catalog.
// When operators recorded conflicting confirmations the most recent one
// wins; the conflict is logged and counted so it can be cleaned up.
func (s *selectorService) fromConfirmation(confirmations []model.FeedbackRule, catalog map[string]model.Box, signature string) (model.Recommendation, bool) {
	if len(confirmations) == 0 {
		return model.Recommendation{}, false
	}

	// Newest first; equal timestamps fall back to the rule ID so the winner
	// does not depend on repository list order.
	sort.SliceStable(confirmations, func(i, j int) bool {
		if !confirmations[i].CreatedAt.Equal(confirmations[j].CreatedAt) {
			return confirmations[i].CreatedAt.After(confirmations[j].CreatedAt)
		}
		return confirmations[i].ID > confirmations[j].ID
	})

	if len(confirmations) > 1 {
		distinct := make(map[string]bool, len(confirmations))
		for _, c := range confirmations {
			distinct[c.BoxID] = true
		}
		if len(distinct) > 1 {
			log := logger.Logger()
			log.Warn().
				Str("combo_signature", signature).
				Int("rule_count", len(confirmations)).
				Str("winning_box_id", confirmations[0].BoxID).
				Msg("Conflicting feedback confirmations for combo")
			metrics.RecordFeedbackInconsistency("conflicting_confirmations")
		}
	}

	winner := confirmations[0]
	box, ok := catalog[winner.BoxID]
	if !ok || !box.Active {
		log := logger.Logger()
		log.Warn().
			Str("combo_signature", signature).
			Str("box_id", winner.BoxID).
			Str("rule_id", winner.ID).
			Msg("Feedback confirmation references unusable box")
		metrics.RecordFeedbackInconsistency("unusable_confirmed_box")
		return model.Recommendation{}, false
	}

	return model.Recommendation{
		Box:            &box,
		Confidence:     model.ConfidenceConfirmed,
		Reason:         model.ReasonFeedback,
		ComboSignature: signature,
	}, true
}

// fromCorrection follows the correction pointer of the newest rejection
// that names a usable replacement box.
func (s *selectorService) fromCorrection(rejections []model.FeedbackRule, catalog map[string]model.Box, excluded map[string]bool, signature string) (model.Recommendation, bool) {
	withCorrection := make([]model.FeedbackRule, 0, len(rejections))
	for _, r := range rejections {
		if r.CorrectBoxID != "" {
			withCorrection = append(withCorrection, r)
		}
	}
	if len(withCorrection) == 0 {
		return model.Recommendation{}, false
	}

	sort.SliceStable(withCorrection, func(i, j int) bool {
		if !withCorrection[i].CreatedAt.Equal(withCorrection[j].CreatedAt) {
			return withCorrection[i].CreatedAt.After(withCorrection[j].CreatedAt)
		}
		return withCorrection[i].ID > withCorrection[j].ID
	})

	for _, rule := range withCorrection {
		box, ok := catalog[rule.CorrectBoxID]
		if !ok || !box.Active || excluded[rule.CorrectBoxID] {
			log := logger.Logger()
			log.Warn().
				Str("combo_signature", signature).
				Str("correct_box_id", rule.CorrectBoxID).
				Str("rule_id", rule.ID).
				Msg("Feedback correction references unusable box")
			metrics.RecordFeedbackInconsistency("invalid_correction")
			continue
		}
		return model.Recommendation{
			Box:            &box,
			Confidence:     model.ConfidenceConfirmed,
			Reason:         model.ReasonFeedbackCorrection,
			ComboSignature: signature,
		}, true
	}
	return model.Recommendation{}, false
}

// fromDedicatedBox handles single-unit orders whose product registers its
// own box. Rejections recorded against the dedicated box override it.
func (s *selectorService) fromDedicatedBox(item model.Item, sizes map[string]model.ProductSize, catalog map[string]model.Box, excluded map[string]bool, signature string) (model.Recommendation, bool) {
	size, ok := sizes[item.SKU]
	if !ok || size.SingleBoxID == "" {
		return model.Recommendation{}, false
	}
	if excluded[size.SingleBoxID] {
		return model.Recommendation{}, false
	}
	box, ok := catalog[size.SingleBoxID]
	if !ok || !box.Active {
		return model.Recommendation{}, false
	}
	return model.Recommendation{
		Box:            &box,
		Confidence:     model.ConfidenceConfirmed,
		Reason:         model.ReasonDedicatedBox,
		ComboSignature: signature,
	}, true
}

// fromVolume runs the volumetric search: smallest-first over the active,
// in-stock, non-excluded catalog, comparing required volume against each
// box's usable volume at the configured packing efficiency.
func (s *selectorService) fromVolume(merged []model.Item, input SelectionInput, catalog map[string]model.Box, excluded map[string]bool, signature string, singleUnit bool) model.Recommendation {
	var required float64
	var unresolved []string
	for _, item := range merged {
		size, ok := input.Sizes[item.SKU]
		if !ok || size.Volume <= 0 {
			unresolved = append(unresolved, item.SKU)
			continue
		}
		required += size.Volume * float64(item.Quantity)
	}

	if len(unresolved) > 0 {
		log := logger.Logger()
		log.Warn().
			Str("combo_signature", signature).
			Strs("unresolved_skus", unresolved).
			Msg("Selection with unresolved product sizes")
	}

	candidates := make([]model.Box, 0, len(catalog))
	for _, box := range input.Boxes {
		if !box.Active || !box.InStock || excluded[box.ID] {
			continue
		}
		if box.SingleCupOnly && !singleUnit {
			continue
		}
		candidates = append(candidates, box)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Priority != candidates[j].Priority {
			return candidates[i].Priority < candidates[j].Priority
		}
		if candidates[i].Volume != candidates[j].Volume {
			return candidates[i].Volume < candidates[j].Volume
		}
		return candidates[i].ID < candidates[j].ID
	})

	for _, box := range candidates {
		usable := box.UsableVolume(input.PackingEfficiency)
		if usable >= required {
			chosen := box
			return model.Recommendation{
				Box:            &chosen,
				Confidence:     model.ConfidenceCalculated,
				ComboSignature: signature,
				RequiredVolume: required,
				UsableVolume:   usable,
				UnresolvedSKUs: unresolved,
			}
		}
	}

	rec := model.NoRecommendation()
	rec.ComboSignature = signature
	rec.RequiredVolume = required
	rec.UnresolvedSKUs = unresolved
	return rec
}

// record emits selection metrics for every decision.
func (s *selectorService) record(rec model.Recommendation, start time.Time) {
	metrics.RecordSelection(string(rec.Confidence), rec.Reason, time.Since(start))
}
