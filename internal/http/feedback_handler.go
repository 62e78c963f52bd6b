package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/carton-service/internal/domain/dto"
	"github.com/guttosm/carton-service/internal/i18n"
	"github.com/guttosm/carton-service/internal/middleware"
	"github.com/guttosm/carton-service/internal/repository"
	"github.com/guttosm/carton-service/internal/service"
)

// FeedbackHandler provides HTTP handlers for packer feedback routes.
type FeedbackHandler struct {
	feedbackService service.FeedbackService
	handler         *Handler
}

// NewFeedbackHandler creates a new FeedbackHandler instance. The main handler
// is used to invalidate the catalog snapshot cache after writes.
func NewFeedbackHandler(feedbackService service.FeedbackService, handler *Handler) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackService: feedbackService,
		handler:         handler,
	}
}

func (h *FeedbackHandler) invalidate() {
	if h.handler != nil {
		h.handler.InvalidateCatalogCache()
	}
}

// RecordFeedback handles POST /api/feedback-rules requests.
//
// @Summary      Record packer feedback
// @Description  Records a packer verdict about a carton choice. A fits=true verdict pins the carton for the exact item combination; a fits=false verdict excludes it, optionally naming the carton that should have been used. Rules are append-only and the newest verdict wins.
// @Tags         Feedback
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateFeedbackRuleRequest true "Packer verdict"
// @Success      201 {object} dto.SuccessResponse "Recorded rule"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid rule"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     ApiKeyAuth
// @Router       /api/feedback-rules [post]
func (h *FeedbackHandler) RecordFeedback(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.CreateFeedbackRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationFeedbackRule, err)
		return
	}

	fits := req.Fits != nil && *req.Fits

	// Drop non-packable lines so the stored signature matches what the
	// selection engine derives for the same order.
	items := toModelItems(req.Items)
	if h.handler != nil && h.handler.exclusions != nil {
		items = h.handler.exclusions.Filter(items)
	}
	if len(req.Items) > 0 && len(items) == 0 && req.ComboSignature == "" {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationFeedbackRule, service.ErrEmptyCombo)
		return
	}

	rule, err := h.feedbackService.Record(c.Request.Context(), service.RecordFeedbackInput{
		Items:          items,
		ComboSignature: req.ComboSignature,
		BoxID:          req.BoxID,
		Fits:           fits,
		CorrectBoxID:   req.CorrectBoxID,
		RecordedBy:     req.RecordedBy,
	})
	if err != nil {
		h.writeFeedbackError(builder, err)
		return
	}

	h.invalidate()

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "record_feedback", "Packer feedback recorded", map[string]interface{}{
				"rule_id":         rule.ID.Hex(),
				"combo_signature": rule.ComboSignature,
				"box_id":          rule.BoxID,
				"fits":            rule.Fits,
			})
		}
	}

	builder.SuccessCreated(rule)
}

// ListFeedbackRules handles GET /api/feedback-rules requests.
//
// @Summary      List feedback rules
// @Description  Returns all recorded packer verdicts, newest first
// @Tags         Feedback
// @Accept       json
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Feedback rules"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     ApiKeyAuth
// @Router       /api/feedback-rules [get]
func (h *FeedbackHandler) ListFeedbackRules(c *gin.Context) {
	builder := NewResponseBuilder(c)

	rules, err := h.feedbackService.List(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(rules)
}

// DeleteFeedbackRule handles DELETE /api/feedback-rules/:id requests.
//
// @Summary      Delete a feedback rule
// @Description  Removes a recorded packer verdict so it no longer influences selection
// @Tags         Feedback
// @Accept       json
// @Produce      json
// @Param        id path string true "Rule ID"
// @Success      200 {object} dto.SuccessResponse "Deletion confirmation"
// @Failure      400 {object} dto.ErrorResponse "Invalid identifier"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      404 {object} dto.ErrorResponse "Rule not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     ApiKeyAuth
// @Router       /api/feedback-rules/{id} [delete]
func (h *FeedbackHandler) DeleteFeedbackRule(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id := c.Param("id")
	if err := h.feedbackService.Delete(c.Request.Context(), id); err != nil {
		h.writeFeedbackError(builder, err)
		return
	}

	h.invalidate()

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "delete_feedback", "Packer feedback rule deleted", map[string]interface{}{
				"rule_id": id,
			})
		}
	}

	builder.SuccessOK(map[string]interface{}{"deleted": true, "id": id})
}

// writeFeedbackError maps feedback errors onto HTTP responses.
func (h *FeedbackHandler) writeFeedbackError(builder *ResponseBuilder, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, err)
	case errors.Is(err, service.ErrInvalidID),
		errors.Is(err, service.ErrEmptyCombo),
		errors.Is(err, service.ErrCorrectionOnPositive):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationFeedbackRule, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}
