package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		headerValue string
		validate    func(*testing.T, string)
	}{
		{
			name:        "generates a UUID when no header is provided",
			headerValue: "",
			validate: func(t *testing.T, id string) {
				assert.NotEmpty(t, id)
				_, err := uuid.Parse(id)
				assert.NoError(t, err)
			},
		},
		{
			name:        "propagates the caller's request ID",
			headerValue: "warehouse-scanner-42",
			validate: func(t *testing.T, id string) {
				assert.Equal(t, "warehouse-scanner-42", id)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID())
			router.GET("/test", func(c *gin.Context) {
				c.String(http.StatusOK, GetRequestID(c))
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.headerValue != "" {
				req.Header.Set(RequestIDHeader, tt.headerValue)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			requestID := w.Body.String()
			assert.Equal(t, requestID, w.Header().Get(RequestIDHeader))

			tt.validate(t, requestID)
		})
	}
}

func TestGetRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns empty string when not set", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

		assert.Empty(t, GetRequestID(c))
	})

	t.Run("returns the stored request ID", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
		c.Set(string(RequestIDKey), "order-7f3a")

		assert.Equal(t, "order-7f3a", GetRequestID(c))
	})
}
