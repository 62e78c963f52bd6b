package model

import "time"

// FeedbackRule is a packer-sourced correction keyed by combo signature.
//
// Fits=true confirms BoxID as the right carton for the combo; Fits=false
// rejects it, optionally naming the carton to use instead. Several rules may
// exist for the same signature (including duplicates) and the selection
// engine reconciles all of them per decision.
//
// @Description Learned packing override keyed by combo signature
type FeedbackRule struct {
	// ID is the rule identifier
	ID string `json:"id"`
	// ComboSignature is the canonical fingerprint the rule applies to
	ComboSignature string `json:"combo_signature"`
	// BoxID is the box the rule confirms or rejects
	BoxID string `json:"box_id"`
	// Fits is true when the box is confirmed correct for the combo
	Fits bool `json:"fits"`
	// CorrectBoxID names the replacement box when Fits is false
	CorrectBoxID string `json:"correct_box_id,omitempty"`
	// RecordedBy identifies the packer or operator who filed the rule
	RecordedBy string `json:"recorded_by,omitempty"`
	// CreatedAt is when the rule was recorded
	CreatedAt time.Time `json:"created_at"`
}
