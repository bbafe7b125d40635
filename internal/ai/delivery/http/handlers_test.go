package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskmaster-ai/internal/ai"
	"taskmaster-ai/internal/analysis"
	"taskmaster-ai/internal/model"
	"taskmaster-ai/pkg/log"
	"taskmaster-ai/pkg/scope"
)

type stubUseCase struct {
	ai.UseCase

	err   error
	batch ai.BatchAnalyzeInput
}

func (s *stubUseCase) AnalyzeTask(ctx context.Context, sc model.Scope, input ai.AnalyzeTaskInput) (ai.AnalyzeTaskOutput, error) {
	if s.err != nil {
		return ai.AnalyzeTaskOutput{}, s.err
	}
	return ai.AnalyzeTaskOutput{Analysis: analysis.Classify(input.Title, input.Description)}, nil
}

func (s *stubUseCase) BatchAnalyze(ctx context.Context, input ai.BatchAnalyzeInput) ([]ai.BatchResult, error) {
	s.batch = input
	out := make([]ai.BatchResult, len(input.Tasks))
	for i, item := range input.Tasks {
		out[i] = ai.BatchResult{Title: item.Title, Analysis: analysis.Classify(item.Title, item.Description)}
	}
	return out, s.err
}

func (s *stubUseCase) SuggestPriority(ctx context.Context, sc model.Scope, input ai.SuggestPriorityInput) ([]ai.PrioritySuggestion, error) {
	return nil, s.err
}

func (s *stubUseCase) Health(ctx context.Context) ai.HealthOutput {
	return ai.HealthOutput{Provider: "none", Status: ai.StatusFallback, Message: ai.MsgProviderFallback}
}

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(h gin.HandlerFunc, method, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req.WithContext(scope.SetScopeToContext(req.Context(), model.Scope{UserID: "user-1"}))

	h(c)
	return w
}

func TestAnalyzeTaskHandler(t *testing.T) {
	h := New(log.NewNop(), &stubUseCase{})
	w := serve(h.AnalyzeTask, http.MethodPost, `{"title":"Team meeting about budget"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data analyzeTaskResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "medium", body.Data.Analysis.Priority)
	assert.Equal(t, analysis.SourceHeuristic, body.Data.Analysis.Source)
	assert.Len(t, body.Data.Analysis.Tips, 2)

	w = serve(h.AnalyzeTask, http.MethodPost, `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	h = New(log.NewNop(), &stubUseCase{err: ai.ErrInvalidTitle})
	w = serve(h.AnalyzeTask, http.MethodPost, `{"title":"ab"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBatchAnalyzeHandler(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		uc := &stubUseCase{}
		h := New(log.NewNop(), uc)
		w := serve(h.BatchAnalyze, http.MethodPost, `{"tasks":[{"title":"One task"},{"title":"Another task"}]}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, uc.batch.Tasks, 2)
	})

	t.Run("too many", func(t *testing.T) {
		items := make([]string, 11)
		for i := range items {
			items[i] = `{"title":"Task"}`
		}
		h := New(log.NewNop(), &stubUseCase{})
		w := serve(h.BatchAnalyze, http.MethodPost, `{"tasks":[`+strings.Join(items, ",")+`]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("empty", func(t *testing.T) {
		h := New(log.NewNop(), &stubUseCase{})
		w := serve(h.BatchAnalyze, http.MethodPost, `{"tasks":[]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("short item title", func(t *testing.T) {
		h := New(log.NewNop(), &stubUseCase{err: fmt.Errorf("tasks[1]: %w", ai.ErrInvalidTitle)})
		w := serve(h.BatchAnalyze, http.MethodPost, `{"tasks":[{"title":"One task"},{"title":"ab"}]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "tasks[1]")
	})
}

func TestSuggestPriorityHandler(t *testing.T) {
	h := New(log.NewNop(), &stubUseCase{err: ai.ErrTaskNotFound})
	w := serve(h.SuggestPriority, http.MethodPost, `{"taskIds":["t1"]}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthHandler(t *testing.T) {
	h := New(log.NewNop(), &stubUseCase{})
	w := serve(h.Health, http.MethodGet, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"fallback mode"`)
}
