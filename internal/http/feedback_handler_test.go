package http

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/carton-service/internal/domain/dto"
	"github.com/guttosm/carton-service/internal/repository"
)

func TestRecordFeedback_FromItems(t *testing.T) {
	env := newTestEnv()

	env.rulesRepo.On("Create", mock.Anything, mock.MatchedBy(func(doc *repository.FeedbackRuleDocument) bool {
		return doc.ComboSignature == "MUG-11OZ:2" && !doc.Fits && doc.CorrectBoxID == "box-l"
	})).Return(&repository.FeedbackRuleDocument{
		ID:             primitive.NewObjectID(),
		ComboSignature: "MUG-11OZ:2",
		BoxID:          "box-m",
		Fits:           false,
		CorrectBoxID:   "box-l",
		CreatedAt:      time.Now(),
	}, nil)

	w := env.post("/api/feedback-rules", `{"items": [{"sku": "MUG-11OZ", "quantity": 2}], "box_id": "box-m", "fits": false, "correct_box_id": "box-l", "recorded_by": "packer-7"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	env.rulesRepo.AssertExpectations(t)
}

func TestRecordFeedback_Validation(t *testing.T) {
	env := newTestEnv()

	tests := []struct {
		name string
		body string
	}{
		{"invalid JSON", `invalid`},
		{"missing box id", `{"items": [{"sku": "MUG-11OZ", "quantity": 1}], "fits": true}`},
		{"missing fits", `{"items": [{"sku": "MUG-11OZ", "quantity": 1}], "box_id": "box-m"}`},
		{"no combo", `{"box_id": "box-m", "fits": true}`},
		{"correction on positive verdict", `{"items": [{"sku": "MUG-11OZ", "quantity": 1}], "box_id": "box-m", "fits": true, "correct_box_id": "box-l"}`},
		{"zero quantity", `{"items": [{"sku": "MUG-11OZ", "quantity": 0}], "box_id": "box-m", "fits": true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.post("/api/feedback-rules", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
	env.rulesRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRecordFeedback_ExclusionsLeaveNothing(t *testing.T) {
	env := newTestEnv()

	// All lines are non-packable, so the rule has no composition left
	w := env.post("/api/feedback-rules", `{"items": [{"sku": "INS-COVER", "quantity": 1}], "box_id": "box-m", "fits": true}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListFeedbackRules(t *testing.T) {
	env := newTestEnv()

	docs := []repository.FeedbackRuleDocument{
		{ID: primitive.NewObjectID(), ComboSignature: "MUG-11OZ:2", BoxID: "box-m", Fits: true},
	}
	env.rulesRepo.On("List", mock.Anything).Return(docs, nil)

	w := env.request(http.MethodGet, "/api/feedback-rules", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.SuccessResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	dataBytes, _ := json.Marshal(resp.Data)
	var rules []repository.FeedbackRuleDocument
	assert.NoError(t, json.Unmarshal(dataBytes, &rules))
	assert.Len(t, rules, 1)
}

func TestDeleteFeedbackRule(t *testing.T) {
	env := newTestEnv()

	id := primitive.NewObjectID()
	env.rulesRepo.On("Delete", mock.Anything, id).Return(nil)

	w := env.request(http.MethodDelete, "/api/feedback-rules/"+id.Hex(), "")

	assert.Equal(t, http.StatusOK, w.Code)
	env.rulesRepo.AssertExpectations(t)
}

func TestDeleteFeedbackRule_NotFound(t *testing.T) {
	env := newTestEnv()

	id := primitive.NewObjectID()
	env.rulesRepo.On("Delete", mock.Anything, id).Return(repository.ErrNotFound)

	w := env.request(http.MethodDelete, "/api/feedback-rules/"+id.Hex(), "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}
