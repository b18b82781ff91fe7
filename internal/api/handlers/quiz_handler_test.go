package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sikarir/sikarir-backend/internal/models"
	"github.com/sikarir/sikarir-backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubQuizService struct {
	qr      *models.QuizResult
	err     error
	history []models.QuizResult
}

func (s *stubQuizService) Submit(_ context.Context, userID string, _ map[string]string) (*models.QuizResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	qr := *s.qr
	qr.UserID = userID
	return &qr, nil
}

func (s *stubQuizService) History(context.Context, string) ([]models.QuizResult, error) {
	return s.history, s.err
}

func newQuizRouter(svc *stubQuizService, authed bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewQuizHandler(svc)

	inject := func(c *gin.Context) {
		if authed {
			c.Set("user_id", "user-1")
		}
		c.Next()
	}
	r.POST("/quiz", inject, h.Submit)
	r.GET("/quiz/history", inject, h.History)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestQuizSubmit_Success(t *testing.T) {
	svc := &stubQuizService{qr: &models.QuizResult{QuizID: "q-1"}}
	r := newQuizRouter(svc, true)

	w := postJSON(t, r, "/quiz", gin.H{"answers": map[string]string{"0": "3"}})
	require.Equal(t, http.StatusOK, w.Code)

	var got models.QuizResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "q-1", got.QuizID)
	assert.Equal(t, "user-1", got.UserID)
}

func TestQuizSubmit_MissingAnswersIs400(t *testing.T) {
	r := newQuizRouter(&stubQuizService{qr: &models.QuizResult{}}, true)

	w := postJSON(t, r, "/quiz", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var apiErr APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	assert.Equal(t, utils.CodeInvalidArgument, apiErr.Code)
}

func TestQuizSubmit_ServiceErrorsMapToStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", utils.E(utils.CodeInvalidArgument, "QuizService.Submit", "expected 100 answers, got 99", nil), http.StatusBadRequest},
		{"model down", utils.E(utils.CodeUnavailable, "QuizService.Submit", "model scoring failed", nil), http.StatusServiceUnavailable},
		{"persistence", utils.E(utils.CodeInternal, "QuizService.Submit", "failed to save quiz result", nil), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newQuizRouter(&stubQuizService{err: tt.err}, true)
			w := postJSON(t, r, "/quiz", gin.H{"answers": map[string]string{"0": "3"}})
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestQuizSubmit_NoUserIs401(t *testing.T) {
	r := newQuizRouter(&stubQuizService{qr: &models.QuizResult{}}, false)

	w := postJSON(t, r, "/quiz", gin.H{"answers": map[string]string{"0": "3"}})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestQuizHistory_ReturnsResults(t *testing.T) {
	svc := &stubQuizService{history: []models.QuizResult{{QuizID: "q-1"}, {QuizID: "q-2"}}}
	r := newQuizRouter(svc, true)

	req := httptest.NewRequest(http.MethodGet, "/quiz/history", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got struct {
		Results []models.QuizResult `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got.Results, 2)
}
