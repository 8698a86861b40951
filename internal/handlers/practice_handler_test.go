package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"ssat_prep/internal/handlers"
	"ssat_prep/internal/model"
	"ssat_prep/internal/service/mocks"
	"ssat_prep/internal/srs"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPracticeHandler_GetVocabularyFocus(t *testing.T) {
	learnerID := uuid.New()
	w := model.FocusWord{WordID: uuid.New(), Term: "ephemeral", Definition: "short-lived", Label: srs.LabelOverdue}

	svc := mocks.NewMockReviewService(t)
	svc.On("GetVocabularyFocus", mock.Anything, learnerID, 4).Return(&model.VocabularyFocusResponse{
		Words:   []model.FocusWord{w},
		ByLabel: map[srs.Label][]model.FocusWord{srs.LabelOverdue: {w}},
	}, nil).Once()

	h := handlers.NewPracticeHandler(svc, discardLogger)
	router := newDevRouter(func(r chi.Router) { r.Get("/api/v1/practice/vocabulary-focus", h.GetVocabularyFocus) })

	rr := serve(router, createRequest(t, http.MethodGet, "/api/v1/practice/vocabulary-focus?count=4", nil, &learnerID))

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var got model.VocabularyFocusResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got.ByLabel[srs.LabelOverdue], 1)
	assert.Equal(t, "ephemeral", got.ByLabel[srs.LabelOverdue][0].Term)
}
