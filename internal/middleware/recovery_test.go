package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		handler        gin.HandlerFunc
		expectedStatus int
		mustContain    string
	}{
		{
			name: "recovers from a panic with a 500",
			handler: func(c *gin.Context) {
				panic("selection engine blew up")
			},
			expectedStatus: http.StatusInternalServerError,
			mustContain:    "internal_error",
		},
		{
			name: "recovers from a panic with an error value",
			handler: func(c *gin.Context) {
				panic(assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			mustContain:    "An unexpected error occurred",
		},
		{
			name: "passes normal requests through",
			handler: func(c *gin.Context) {
				c.String(http.StatusOK, "ok")
			},
			expectedStatus: http.StatusOK,
			mustContain:    "ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID(), Recovery())
			router.GET("/test", tt.handler)

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.mustContain)
		})
	}
}
