package http

import (
	"github.com/gin-gonic/gin"
)

// CartonRoutes handles carton-related route registration.
type CartonRoutes struct {
	handler         *Handler
	boxesHandler    *BoxesHandler
	feedbackHandler *FeedbackHandler
	settingsHandler *SettingsHandler
}

// NewCartonRoutes creates a new CartonRoutes instance wired to the given
// handler's services.
func NewCartonRoutes(handler *Handler) *CartonRoutes {
	r := &CartonRoutes{handler: handler}

	if handler.boxService != nil {
		r.boxesHandler = NewBoxesHandler(handler.boxService, handler)
	}
	if handler.feedbackService != nil {
		r.feedbackHandler = NewFeedbackHandler(handler.feedbackService, handler)
	}
	if handler.settingsService != nil {
		r.settingsHandler = NewSettingsHandler(handler.settingsService, handler)
	}

	return r
}

// RegisterRoutes registers all carton routes on the given group.
func (r *CartonRoutes) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	rg.POST("/recommendations", r.handler.RecommendBox)

	if r.boxesHandler != nil {
		rg.GET("/boxes", r.boxesHandler.ListBoxes)
		rg.POST("/boxes", r.boxesHandler.CreateBox)
		rg.GET("/boxes/:id", r.boxesHandler.GetBox)
		rg.PUT("/boxes/:id", r.boxesHandler.UpdateBox)
		rg.DELETE("/boxes/:id", r.boxesHandler.DeleteBox)
	}

	if r.feedbackHandler != nil {
		rg.POST("/feedback-rules", r.feedbackHandler.RecordFeedback)
		rg.GET("/feedback-rules", r.feedbackHandler.ListFeedbackRules)
		rg.DELETE("/feedback-rules/:id", r.feedbackHandler.DeleteFeedbackRule)
	}

	if r.settingsHandler != nil {
		rg.GET("/packing-efficiency", r.settingsHandler.GetPackingEfficiency)
		rg.PUT("/packing-efficiency", r.settingsHandler.UpdatePackingEfficiency)
	}
}

// GetHandler returns the underlying recommendation handler.
func (r *CartonRoutes) GetHandler() *Handler {
	return r.handler
}
