package model

// Confidence grades how a box recommendation was produced.
type Confidence string

const (
	// ConfidenceConfirmed marks a dedicated-box or human-verified decision.
	ConfidenceConfirmed Confidence = "confirmed"
	// ConfidenceCalculated marks a volumetric heuristic decision.
	ConfidenceCalculated Confidence = "calculated"
	// ConfidenceUnknown marks the absence of a recommendation.
	ConfidenceUnknown Confidence = "unknown"
)

// Reasons attached to confirmed recommendations.
const (
	// ReasonFeedback means a fits=true feedback rule named the box.
	ReasonFeedback = "feedback"
	// ReasonFeedbackCorrection means a fits=false rule supplied the replacement box.
	ReasonFeedbackCorrection = "feedback-correction"
	// ReasonDedicatedBox means the product's dedicated single-unit box was used.
	ReasonDedicatedBox = "dedicated-box"
)

// Recommendation is the outcome of one carton selection decision.
//
// A nil Box with ConfidenceUnknown is a legitimate terminal outcome ("no
// automatic recommendation"), not an error.
//
// @Description Carton recommendation with confidence grade
// @Example {"box": {"id": "...", "name": "Medium mailer"}, "confidence": "calculated", "required_volume": 90}
type Recommendation struct {
	// Box is the recommended carton, or null when no fit was found
	Box *Box `json:"box"`
	// Confidence is one of confirmed, calculated or unknown
	Confidence Confidence `json:"confidence" example:"calculated"`
	// Reason explains confirmed decisions (feedback, feedback-correction, dedicated-box)
	Reason string `json:"reason,omitempty"`
	// ComboSignature is the fingerprint of the packable item composition
	ComboSignature string `json:"combo_signature,omitempty"`
	// RequiredVolume is the summed unit volume of the packable items
	RequiredVolume float64 `json:"required_volume,omitempty"`
	// UsableVolume is the chosen box's efficiency-scaled capacity
	UsableVolume float64 `json:"usable_volume,omitempty"`
	// UnresolvedSKUs lists items that contributed zero volume because no
	// product size was found for them
	UnresolvedSKUs []string `json:"unresolved_skus,omitempty"`
}

// NoRecommendation returns the terminal "no automatic recommendation" outcome.
func NoRecommendation() Recommendation {
	return Recommendation{Confidence: ConfidenceUnknown}
}
