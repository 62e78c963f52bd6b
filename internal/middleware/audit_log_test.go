package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/guttosm/carton-service/internal/domain/model"
)

func newAuditTestContext(t *testing.T) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/feedback-rules", nil)
	c.Set(string(RequestIDKey), "audit-req-1")
	return c
}

func waitForCalls(t *testing.T, m *MockLoggingService, want int64) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if atomic.LoadInt64(&m.createLogCalls) >= want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("expected %d audit writes, got %d", want, atomic.LoadInt64(&m.createLogCalls))
}

func TestAuditLog(t *testing.T) {
	t.Run("stores the action with operator and fields", func(t *testing.T) {
		mockSvc := new(MockLoggingService)
		var captured *model.LogEntry
		mockSvc.On("CreateLog", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			captured = args.Get(1).(*model.LogEntry) //nolint:errcheck // args.Get doesn't return error
		}).Return(nil)

		c := newAuditTestContext(t)
		SetOperator(c, "packer-ana")

		AuditLog(mockSvc, c, "record_feedback", "Feedback rule recorded", map[string]interface{}{
			"combo_signature": "MUG-11OZ:2",
			"fits":            true,
		})

		waitForCalls(t, mockSvc, 1)

		assert.Equal(t, "info", captured.Level)
		assert.Equal(t, "record_feedback", captured.ActionType)
		assert.Equal(t, "Feedback rule recorded", captured.Message)
		assert.Equal(t, "packer-ana", captured.Operator)
		assert.Equal(t, "audit-req-1", captured.RequestID)
		assert.Equal(t, "MUG-11OZ:2", captured.Fields["combo_signature"])
	})

	t.Run("no-op without a logging service", func(t *testing.T) {
		c := newAuditTestContext(t)
		AuditLog(nil, c, "record_feedback", "ignored", nil)
	})
}

func TestAuditLogError(t *testing.T) {
	mockSvc := new(MockLoggingService)
	var captured *model.LogEntry
	mockSvc.On("CreateLog", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		captured = args.Get(1).(*model.LogEntry) //nolint:errcheck // args.Get doesn't return error
	}).Return(nil)

	c := newAuditTestContext(t)

	AuditLogError(mockSvc, c, "delete_box", "Box deletion failed", errors.New("box not found"), map[string]interface{}{
		"box_id": "missing-id",
	})

	waitForCalls(t, mockSvc, 1)

	assert.Equal(t, "error", captured.Level)
	assert.Equal(t, "delete_box", captured.ActionType)
	assert.Equal(t, "box not found", captured.Error)
	assert.Equal(t, "missing-id", captured.Fields["box_id"])
	assert.Empty(t, captured.Operator)
}

func TestSetOperator(t *testing.T) {
	c := newAuditTestContext(t)

	SetOperator(c, "")
	_, exists := c.Get(string(OperatorKey))
	assert.False(t, exists, "blank operators are not recorded")

	SetOperator(c, "ops-admin")
	v, exists := c.Get(string(OperatorKey))
	assert.True(t, exists)
	assert.Equal(t, "ops-admin", v)
}
