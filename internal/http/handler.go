package http

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/carton-service/internal/domain/dto"
	"github.com/guttosm/carton-service/internal/domain/model"
	"github.com/guttosm/carton-service/internal/i18n"
	"github.com/guttosm/carton-service/internal/logger"
	"github.com/guttosm/carton-service/internal/middleware"
	"github.com/guttosm/carton-service/internal/service"
)

// catalogSnapshot bundles everything a single selection reads from storage.
// Loaded once per cache window so a recommendation never issues more than
// one round of database calls.
type catalogSnapshot struct {
	boxes      []model.Box
	rules      []model.FeedbackRule
	efficiency float64
}

// catalogCache provides thread-safe caching of the selection snapshot.
type catalogCache struct {
	snapshot  atomic.Value // holds *catalogSnapshot
	expiresAt atomic.Value // holds time.Time
	mu        sync.Mutex
	ttl       time.Duration
}

// newCatalogCache creates a new snapshot cache with the given TTL.
func newCatalogCache(ttl time.Duration) *catalogCache {
	c := &catalogCache{ttl: ttl}
	c.expiresAt.Store(time.Time{})
	return c
}

// get returns the cached snapshot if valid, or nil if expired/empty.
func (c *catalogCache) get() *catalogSnapshot {
	if exp := c.expiresAt.Load(); exp != nil {
		if expiresAt, ok := exp.(time.Time); ok && time.Now().Before(expiresAt) {
			if snap := c.snapshot.Load(); snap != nil {
				if s, ok := snap.(*catalogSnapshot); ok {
					return s
				}
			}
		}
	}
	return nil
}

// set stores a snapshot in the cache with TTL.
func (c *catalogCache) set(snap *catalogSnapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring lock
	if exp := c.expiresAt.Load(); exp != nil {
		if expiresAt, ok := exp.(time.Time); ok && time.Now().Before(expiresAt) {
			return // Already cached by another goroutine
		}
	}

	c.snapshot.Store(snap)
	c.expiresAt.Store(time.Now().Add(c.ttl))
}

// invalidate clears the cache.
func (c *catalogCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expiresAt.Store(time.Time{})
}

// Handler provides HTTP handlers for the carton recommendation routes.
type Handler struct {
	selector        service.SelectorService
	boxService      service.BoxService
	feedbackService service.FeedbackService
	settingsService service.SettingsService
	resolver        service.ProductSizeResolver
	exclusions      *service.ExclusionFilter
	catalogCache    *catalogCache
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithCatalogCacheTTL sets the TTL for catalog snapshot caching.
func WithCatalogCacheTTL(ttl time.Duration) HandlerOption {
	return func(h *Handler) {
		h.catalogCache = newCatalogCache(ttl)
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(
	selector service.SelectorService,
	boxService service.BoxService,
	feedbackService service.FeedbackService,
	settingsService service.SettingsService,
	resolver service.ProductSizeResolver,
	exclusions *service.ExclusionFilter,
	opts ...HandlerOption,
) *Handler {
	h := &Handler{
		selector:        selector,
		boxService:      boxService,
		feedbackService: feedbackService,
		settingsService: settingsService,
		resolver:        resolver,
		exclusions:      exclusions,
		catalogCache:    newCatalogCache(30 * time.Second), // Default 30s cache
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// getSnapshot retrieves the selection snapshot from cache or database.
// Catalog failures are fatal, while rule or settings failures degrade to
// empty rules and the default efficiency.
func (h *Handler) getSnapshot(ctx context.Context) (*catalogSnapshot, error) {
	if snap := h.catalogCache.get(); snap != nil {
		return snap, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	boxes, err := h.boxService.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	rules, err := h.feedbackService.Rules(ctx)
	if err != nil {
		log := logger.Logger()
		log.Warn().Err(err).Msg("Failed to load feedback rules, recommending without them")
		rules = nil
	}

	efficiency, err := h.settingsService.GetPackingEfficiency(ctx)
	if err != nil {
		log := logger.Logger()
		log.Warn().Err(err).Msg("Failed to load packing efficiency, falling back to default")
		efficiency = service.DefaultPackingEfficiency
	}

	snap := &catalogSnapshot{
		boxes:      boxes,
		rules:      rules,
		efficiency: efficiency,
	}
	h.catalogCache.set(snap)
	return snap, nil
}

// InvalidateCatalogCache invalidates the catalog snapshot cache.
// Call this when cartons, feedback rules or settings change.
func (h *Handler) InvalidateCatalogCache() {
	h.catalogCache.invalidate()
}

// RecommendBox handles POST /api/recommendations requests.
//
// @Summary      Recommend a carton for an order
// @Description  Picks the best carton for the given order lines. Learned packer feedback for the exact item combination wins over the volumetric calculation, and non-packable lines such as insurance or shipping fees are ignored. Supports idempotency via Idempotency-Key header.
// @Tags         Recommendations
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.RecommendBoxRequest true "Order information"
// @Success      200 {object} dto.SuccessResponse "Recommendation result"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable - catalog could not be loaded"
// @Security     ApiKeyAuth
// @Router       /api/recommendations [post]
func (h *Handler) RecommendBox(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.RecommendBoxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		if _, ok := err.(*dto.ValidationError); ok {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationItems, err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	items := toModelItems(req.Items)
	packable := h.exclusions.Filter(items)

	// Audit log (async)
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "recommend", "Carton recommendation requested", map[string]interface{}{
				"order_id":       req.OrderID,
				"item_count":     len(items),
				"packable_count": len(packable),
			})
		}
	}

	if len(packable) == 0 {
		// Nothing to pack after exclusions, a valid terminal outcome
		builder.SuccessOK(model.NoRecommendation())
		return
	}

	snap, err := h.getSnapshot(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyCatalogUnavailable, err)
		return
	}

	sizes, err := h.resolver.Resolve(c.Request.Context(), packable)
	if err != nil {
		log := logger.Logger()
		log.Warn().Err(err).Msg("Product size lookup failed, items resolve to zero volume")
		sizes = nil
	}

	result := h.selector.FindBestBox(service.SelectionInput{
		Items:             packable,
		Boxes:             snap.boxes,
		Rules:             snap.rules,
		Sizes:             sizes,
		PackingEfficiency: snap.efficiency,
	})

	builder.SuccessOK(result)
}

// toModelItems converts request order lines into domain items.
func toModelItems(items []dto.OrderItem) []model.Item {
	out := make([]model.Item, 0, len(items))
	for _, it := range items {
		out = append(out, model.Item{
			SKU:       it.SKU,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Name:      it.Name,
		})
	}
	return out
}
