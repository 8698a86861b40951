// internal/handlers/word_handler_test.go
package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"ssat_prep/internal/handlers"
	"ssat_prep/internal/model"
	"ssat_prep/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWordHandler_PostWord(t *testing.T) {
	learnerID := uuid.New()

	validReqBody := model.PostWordRequest{
		Term:         "laconic",
		Definition:   "using very few words",
		PartOfSpeech: "adjective",
	}
	expectedWord := &model.Word{
		WordID:       uuid.New(),
		LearnerID:    learnerID,
		Term:         validReqBody.Term,
		Definition:   validReqBody.Definition,
		PartOfSpeech: validReqBody.PartOfSpeech,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	tests := []struct {
		name           string
		learnerID      *uuid.UUID
		body           interface{}
		setupMock      func(m *mocks.MockWordService)
		expectedStatus int
		expectedCode   string
		expectedField  string
	}{
		{
			name:      "正常系: 単語作成",
			learnerID: &learnerID,
			body:      validReqBody,
			setupMock: func(m *mocks.MockWordService) {
				m.On("PostWord", mock.Anything, learnerID, &validReqBody).Return(expectedWord, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "異常系: ヘッダーなし",
			body:           validReqBody,
			setupMock:      func(m *mocks.MockWordService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "UNAUTHORIZED",
		},
		{
			name:           "異常系: termがない",
			learnerID:      &learnerID,
			body:           model.PostWordRequest{Definition: "def only"},
			setupMock:      func(m *mocks.MockWordService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
			expectedField:  "term",
		},
		{
			name:           "異常系: 品詞が不正",
			learnerID:      &learnerID,
			body:           model.PostWordRequest{Term: "x", Definition: "y", PartOfSpeech: "gerund"},
			setupMock:      func(m *mocks.MockWordService) {},
			expectedStatus: http.StatusBadRequest,
			expectedField:  "part_of_speech",
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "異常系: 未知のフィールド",
			learnerID:      &learnerID,
			body:           `{"term":"x","definition":"y","level":3}`,
			setupMock:      func(m *mocks.MockWordService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_REQUEST_BODY",
		},
		{
			name:      "異常系: 重複",
			learnerID: &learnerID,
			body:      validReqBody,
			setupMock: func(m *mocks.MockWordService) {
				m.On("PostWord", mock.Anything, learnerID, &validReqBody).
					Return(nil, model.NewAppError("WORD_ALREADY_EXISTS", "dup", "term", model.ErrConflict)).Once()
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   "WORD_ALREADY_EXISTS",
			expectedField:  "term",
		},
		{
			name:      "異常系: 想定外のエラーは詳細を隠す",
			learnerID: &learnerID,
			body:      validReqBody,
			setupMock: func(m *mocks.MockWordService) {
				m.On("PostWord", mock.Anything, learnerID, &validReqBody).Return(nil, errors.New("pq: connection refused")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "INTERNAL_SERVER_ERROR",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockWordService(t)
			tc.setupMock(svc)
			h := handlers.NewWordHandler(svc, discardLogger)
			router := newDevRouter(func(r chi.Router) { r.Post("/api/v1/words", h.PostWord) })

			rr := serve(router, createRequest(t, http.MethodPost, "/api/v1/words", tc.body, tc.learnerID))

			assert.Equal(t, tc.expectedStatus, rr.Code, rr.Body.String())
			if tc.expectedCode != "" {
				detail := decodeError(t, rr)
				assert.Equal(t, tc.expectedCode, detail.Code)
				assert.Equal(t, tc.expectedField, detail.Field)
				assert.NotContains(t, detail.Message, "pq:")
				return
			}
			var got model.Word
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, expectedWord.WordID, got.WordID)
			assert.Equal(t, expectedWord.Term, got.Term)
		})
	}
}

func TestWordHandler_GetWord(t *testing.T) {
	learnerID := uuid.New()
	wordID := uuid.New()

	tests := []struct {
		name           string
		path           string
		setupMock      func(m *mocks.MockWordService)
		expectedStatus int
	}{
		{
			name: "正常系",
			path: "/api/v1/words/" + wordID.String(),
			setupMock: func(m *mocks.MockWordService) {
				m.On("GetWord", mock.Anything, learnerID, wordID).Return(&model.Word{WordID: wordID, Term: "candid"}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "異常系: word_idがUUIDでない",
			path:           "/api/v1/words/not-a-uuid",
			setupMock:      func(m *mocks.MockWordService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "異常系: 存在しない",
			path: "/api/v1/words/" + wordID.String(),
			setupMock: func(m *mocks.MockWordService) {
				m.On("GetWord", mock.Anything, learnerID, wordID).
					Return(nil, model.NewAppError("WORD_NOT_FOUND", "nope", "word_id", model.ErrNotFound)).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockWordService(t)
			tc.setupMock(svc)
			h := handlers.NewWordHandler(svc, discardLogger)
			router := newDevRouter(func(r chi.Router) { r.Get("/api/v1/words/{word_id}", h.GetWord) })

			rr := serve(router, createRequest(t, http.MethodGet, tc.path, nil, &learnerID))
			assert.Equal(t, tc.expectedStatus, rr.Code, rr.Body.String())
		})
	}
}

func TestWordHandler_GetWords_EmptyIsArray(t *testing.T) {
	learnerID := uuid.New()
	svc := mocks.NewMockWordService(t)
	svc.On("GetWords", mock.Anything, learnerID).Return(nil, nil).Once()
	h := handlers.NewWordHandler(svc, discardLogger)
	router := newDevRouter(func(r chi.Router) { r.Get("/api/v1/words", h.GetWords) })

	rr := serve(router, createRequest(t, http.MethodGet, "/api/v1/words", nil, &learnerID))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "[]", rr.Body.String())
}

func TestWordHandler_PatchAndDelete(t *testing.T) {
	learnerID := uuid.New()
	wordID := uuid.New()
	def := "frank and open"

	svc := mocks.NewMockWordService(t)
	svc.On("PatchWord", mock.Anything, learnerID, wordID, &model.PatchWordRequest{Definition: &def}).
		Return(&model.Word{WordID: wordID, Definition: def}, nil).Once()
	svc.On("DeleteWord", mock.Anything, learnerID, wordID).Return(nil).Once()

	h := handlers.NewWordHandler(svc, discardLogger)
	router := newDevRouter(func(r chi.Router) {
		r.Patch("/api/v1/words/{word_id}", h.PatchWord)
		r.Delete("/api/v1/words/{word_id}", h.DeleteWord)
	})

	rr := serve(router, createRequest(t, http.MethodPatch, "/api/v1/words/"+wordID.String(), map[string]string{"definition": def}, &learnerID))
	assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = serve(router, createRequest(t, http.MethodDelete, "/api/v1/words/"+wordID.String(), nil, &learnerID))
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
}
