// Package i18n provides internationalization support for the carton service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyForbidden indicates insufficient permissions.
	ErrKeyForbidden = "error.forbidden"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyBoxNotFound indicates a carton was not found in the catalog.
	ErrKeyBoxNotFound = "error.box_not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyValidationItems indicates an invalid item list.
	ErrKeyValidationItems = "error.validation.items"
	// ErrKeyValidationDimensions indicates invalid carton dimensions.
	ErrKeyValidationDimensions = "error.validation.dimensions"
	// ErrKeyValidationFeedbackRule indicates an invalid feedback rule.
	ErrKeyValidationFeedbackRule = "error.validation.feedback_rule"
	// ErrKeyValidationEfficiency indicates an out-of-range packing efficiency.
	ErrKeyValidationEfficiency = "error.validation.efficiency"
	// ErrKeyCatalogUnavailable indicates the carton catalog could not be loaded.
	ErrKeyCatalogUnavailable = "error.catalog_unavailable"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
)

// Success message translation keys.
const (
	// SuccessKeyBoxRecommended indicates a completed carton recommendation.
	SuccessKeyBoxRecommended = "success.box_recommended"
	// SuccessKeyFeedbackRecorded indicates recorded packer feedback.
	SuccessKeyFeedbackRecorded = "success.feedback_recorded"
	// SuccessKeyBoxCreated indicates a created carton.
	SuccessKeyBoxCreated = "success.box_created"
	// SuccessKeyBoxUpdated indicates an updated carton.
	SuccessKeyBoxUpdated = "success.box_updated"
	// SuccessKeyBoxDeleted indicates a deleted carton.
	SuccessKeyBoxDeleted = "success.box_deleted"
	// SuccessKeyEfficiencyUpdated indicates an updated packing efficiency.
	SuccessKeyEfficiencyUpdated = "success.efficiency_updated"
)
