package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/carton-service/internal/domain/dto"
	"github.com/guttosm/carton-service/internal/i18n"
	"github.com/guttosm/carton-service/internal/middleware"
	"github.com/guttosm/carton-service/internal/service"
)

// SettingsHandler provides HTTP handlers for packing configuration routes.
type SettingsHandler struct {
	settingsService service.SettingsService
	handler         *Handler
}

// NewSettingsHandler creates a new SettingsHandler instance. The main handler
// is used to invalidate the catalog snapshot cache after writes.
func NewSettingsHandler(settingsService service.SettingsService, handler *Handler) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
		handler:         handler,
	}
}

// GetPackingEfficiency handles GET /api/packing-efficiency requests.
//
// @Summary      Get packing efficiency
// @Description  Returns the global packing efficiency scalar applied to every carton's volume
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Current packing efficiency"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     ApiKeyAuth
// @Router       /api/packing-efficiency [get]
func (h *SettingsHandler) GetPackingEfficiency(c *gin.Context) {
	builder := NewResponseBuilder(c)

	efficiency, err := h.settingsService.GetPackingEfficiency(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(map[string]interface{}{"packing_efficiency": efficiency})
}

// UpdatePackingEfficiency handles PUT /api/packing-efficiency requests.
//
// @Summary      Update packing efficiency
// @Description  Stores a new global packing efficiency. Values are clamped to the 0.1 to 1.0 range on write.
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Param        request body dto.UpdatePackingEfficiencyRequest true "New efficiency"
// @Success      200 {object} dto.SuccessResponse "Stored configuration"
// @Failure      400 {object} dto.ErrorResponse "Bad request - efficiency out of range"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     ApiKeyAuth
// @Router       /api/packing-efficiency [put]
func (h *SettingsHandler) UpdatePackingEfficiency(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.UpdatePackingEfficiencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationEfficiency, err)
		return
	}

	settings, err := h.settingsService.SetPackingEfficiency(c.Request.Context(), req.PackingEfficiency, req.UpdatedBy)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	if h.handler != nil {
		h.handler.InvalidateCatalogCache()
	}

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "update_efficiency", "Packing efficiency updated", map[string]interface{}{
				"packing_efficiency": settings.PackingEfficiency,
				"updated_by":         settings.UpdatedBy,
			})
		}
	}

	builder.SuccessOK(settings)
}
