package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/carton-service/internal/domain/dto"
	"github.com/guttosm/carton-service/internal/domain/model"
	"github.com/guttosm/carton-service/internal/i18n"
	"github.com/guttosm/carton-service/internal/middleware"
	"github.com/guttosm/carton-service/internal/repository"
	"github.com/guttosm/carton-service/internal/service"
)

// BoxesHandler provides HTTP handlers for carton catalog routes.
type BoxesHandler struct {
	boxService service.BoxService
	handler    *Handler
}

// NewBoxesHandler creates a new BoxesHandler instance. The main handler is
// used to invalidate the catalog snapshot cache after writes.
func NewBoxesHandler(boxService service.BoxService, handler *Handler) *BoxesHandler {
	return &BoxesHandler{
		boxService: boxService,
		handler:    handler,
	}
}

// boolOrDefault dereferences an optional flag, defaulting to true.
func boolOrDefault(v *bool) bool {
	if v == nil {
		return true
	}
	return *v
}

// invalidate clears the selection snapshot so the next recommendation sees
// the updated catalog.
func (h *BoxesHandler) invalidate() {
	if h.handler != nil {
		h.handler.InvalidateCatalogCache()
	}
}

// ListBoxes handles GET /api/boxes requests.
//
// @Summary      List cartons
// @Description  Returns the full carton catalog ordered by priority then volume
// @Tags         Boxes
// @Accept       json
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Carton catalog"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     ApiKeyAuth
// @Router       /api/boxes [get]
func (h *BoxesHandler) ListBoxes(c *gin.Context) {
	builder := NewResponseBuilder(c)

	boxes, err := h.boxService.List(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(boxes)
}

// GetBox handles GET /api/boxes/:id requests.
//
// @Summary      Get a carton
// @Description  Returns a single carton by its identifier
// @Tags         Boxes
// @Accept       json
// @Produce      json
// @Param        id path string true "Carton ID"
// @Success      200 {object} dto.SuccessResponse "Carton"
// @Failure      400 {object} dto.ErrorResponse "Invalid identifier"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      404 {object} dto.ErrorResponse "Carton not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     ApiKeyAuth
// @Router       /api/boxes/{id} [get]
func (h *BoxesHandler) GetBox(c *gin.Context) {
	builder := NewResponseBuilder(c)

	box, err := h.boxService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeBoxError(builder, err)
		return
	}

	builder.SuccessOK(box)
}

// CreateBox handles POST /api/boxes requests.
//
// @Summary      Add a carton
// @Description  Adds a carton to the catalog. The volume is derived from the dimensions.
// @Tags         Boxes
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateBoxRequest true "Carton definition"
// @Success      201 {object} dto.SuccessResponse "Created carton"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid dimensions"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     ApiKeyAuth
// @Router       /api/boxes [post]
func (h *BoxesHandler) CreateBox(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.CreateBoxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationDimensions, err)
		return
	}

	doc := &repository.BoxDocument{
		Name:          req.Name,
		Length:        req.Length,
		Width:         req.Width,
		Height:        req.Height,
		Priority:      req.Priority,
		Active:        boolOrDefault(req.Active),
		InStock:       boolOrDefault(req.InStock),
		SingleCupOnly: req.SingleCupOnly,
	}

	created, err := h.boxService.Create(c.Request.Context(), doc)
	if err != nil {
		h.writeBoxError(builder, err)
		return
	}

	h.invalidate()

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "create_box", "Carton added to catalog", map[string]interface{}{
				"box_id":   created.ID.Hex(),
				"box_name": created.Name,
				"volume":   created.Volume,
			})
		}
	}

	builder.SuccessCreated(created)
}

// UpdateBox handles PUT /api/boxes/:id requests.
//
// @Summary      Update a carton
// @Description  Replaces all mutable fields of a carton and recomputes its volume
// @Tags         Boxes
// @Accept       json
// @Produce      json
// @Param        id path string true "Carton ID"
// @Param        request body dto.UpdateBoxRequest true "Carton definition"
// @Success      200 {object} dto.SuccessResponse "Updated carton"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid dimensions or identifier"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      404 {object} dto.ErrorResponse "Carton not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     ApiKeyAuth
// @Router       /api/boxes/{id} [put]
func (h *BoxesHandler) UpdateBox(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.UpdateBoxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationDimensions, err)
		return
	}

	doc := &repository.BoxDocument{
		Name:          req.Name,
		Length:        req.Length,
		Width:         req.Width,
		Height:        req.Height,
		Priority:      req.Priority,
		Active:        boolOrDefault(req.Active),
		InStock:       boolOrDefault(req.InStock),
		SingleCupOnly: req.SingleCupOnly,
	}

	updated, err := h.boxService.Update(c.Request.Context(), c.Param("id"), doc)
	if err != nil {
		h.writeBoxError(builder, err)
		return
	}

	h.invalidate()

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "update_box", "Carton updated", map[string]interface{}{
				"box_id":   updated.ID.Hex(),
				"box_name": updated.Name,
				"volume":   updated.Volume,
			})
		}
	}

	builder.SuccessOK(updated)
}

// DeleteBox handles DELETE /api/boxes/:id requests.
//
// @Summary      Remove a carton
// @Description  Removes a carton from the catalog. Feedback rules referencing it are kept; the selection engine skips rules whose carton no longer resolves.
// @Tags         Boxes
// @Accept       json
// @Produce      json
// @Param        id path string true "Carton ID"
// @Success      200 {object} dto.SuccessResponse "Deletion confirmation"
// @Failure      400 {object} dto.ErrorResponse "Invalid identifier"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      404 {object} dto.ErrorResponse "Carton not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     ApiKeyAuth
// @Router       /api/boxes/{id} [delete]
func (h *BoxesHandler) DeleteBox(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id := c.Param("id")
	if err := h.boxService.Delete(c.Request.Context(), id); err != nil {
		h.writeBoxError(builder, err)
		return
	}

	h.invalidate()

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "delete_box", "Carton removed from catalog", map[string]interface{}{
				"box_id": id,
			})
		}
	}

	builder.SuccessOK(map[string]interface{}{"deleted": true, "id": id})
}

// writeBoxError maps catalog errors onto HTTP responses.
func (h *BoxesHandler) writeBoxError(builder *ResponseBuilder, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyBoxNotFound, err)
	case errors.Is(err, service.ErrInvalidID):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
	case errors.Is(err, model.ErrInvalidDimension):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationDimensions, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}
