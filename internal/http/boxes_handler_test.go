package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/carton-service/internal/domain/dto"
	"github.com/guttosm/carton-service/internal/repository"
)

func (env *testEnv) request(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func TestCreateBox(t *testing.T) {
	env := newTestEnv()

	created := boxDoc(primitive.NewObjectID(), "Medium mailer", 30, 20, 10, 2)
	env.boxesRepo.On("Create", mock.Anything, mock.MatchedBy(func(doc *repository.BoxDocument) bool {
		return doc.Name == "Medium mailer" && doc.Active && doc.InStock
	})).Return(&created, nil)

	w := env.request(http.MethodPost, "/api/boxes", `{"name": "Medium mailer", "length": 30, "width": 20, "height": 10, "priority": 2}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	env.boxesRepo.AssertExpectations(t)
}

func TestCreateBox_Validation(t *testing.T) {
	env := newTestEnv()

	tests := []struct {
		name string
		body string
	}{
		{"invalid JSON", `invalid`},
		{"missing name", `{"length": 30, "width": 20, "height": 10}`},
		{"zero dimension", `{"name": "Flat", "length": 30, "width": 20, "height": 0}`},
		{"negative dimension", `{"name": "Flat", "length": -1, "width": 20, "height": 10}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.request(http.MethodPost, "/api/boxes", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
	env.boxesRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetBox_NotFound(t *testing.T) {
	env := newTestEnv()

	id := primitive.NewObjectID()
	env.boxesRepo.On("GetByID", mock.Anything, id).Return(nil, repository.ErrNotFound)

	w := env.request(http.MethodGet, "/api/boxes/"+id.Hex(), "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp dto.ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrCodeNotFound, resp.Error)
}

func TestGetBox_InvalidID(t *testing.T) {
	env := newTestEnv()

	w := env.request(http.MethodGet, "/api/boxes/not-an-object-id", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env.boxesRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestUpdateBox(t *testing.T) {
	env := newTestEnv()

	id := primitive.NewObjectID()
	updated := boxDoc(id, "Small mailer", 15, 10, 5, 1)
	env.boxesRepo.On("Update", mock.Anything, id, mock.Anything).Return(&updated, nil)

	w := env.request(http.MethodPut, "/api/boxes/"+id.Hex(), `{"name": "Small mailer", "length": 15, "width": 10, "height": 5, "priority": 1}`)

	assert.Equal(t, http.StatusOK, w.Code)
	env.boxesRepo.AssertExpectations(t)
}

func TestDeleteBox(t *testing.T) {
	env := newTestEnv()

	id := primitive.NewObjectID()
	env.boxesRepo.On("Delete", mock.Anything, id).Return(nil)

	w := env.request(http.MethodDelete, "/api/boxes/"+id.Hex(), "")

	assert.Equal(t, http.StatusOK, w.Code)
	env.boxesRepo.AssertExpectations(t)
}

func TestListBoxes(t *testing.T) {
	env := newTestEnv()

	docs := []repository.BoxDocument{
		boxDoc(primitive.NewObjectID(), "Small", 5, 5, 4, 1),
		boxDoc(primitive.NewObjectID(), "Medium", 10, 10, 5, 2),
	}
	env.boxesRepo.On("List", mock.Anything).Return(docs, nil)

	w := env.request(http.MethodGet, "/api/boxes", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.SuccessResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	dataBytes, _ := json.Marshal(resp.Data)
	var boxes []repository.BoxDocument
	assert.NoError(t, json.Unmarshal(dataBytes, &boxes))
	assert.Len(t, boxes, 2)
}

func TestBoxWrites_InvalidateSnapshot(t *testing.T) {
	env := newTestEnv()

	// Pre-load a long-lived snapshot so invalidation is observable
	env.handler.catalogCache = newCatalogCache(time.Minute)
	env.handler.catalogCache.set(&catalogSnapshot{efficiency: 1.0})
	assert.NotNil(t, env.handler.catalogCache.get())

	created := boxDoc(primitive.NewObjectID(), "Tiny", 2, 2, 2, 1)
	env.boxesRepo.On("Create", mock.Anything, mock.Anything).Return(&created, nil)

	w := env.request(http.MethodPost, "/api/boxes", `{"name": "Tiny", "length": 2, "width": 2, "height": 2}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Nil(t, env.handler.catalogCache.get())
}
