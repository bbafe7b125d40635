package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskmaster-ai/internal/model"
	"taskmaster-ai/internal/task"
	"taskmaster-ai/pkg/log"
	"taskmaster-ai/pkg/scope"
)

type stubUseCase struct {
	task.UseCase

	created    task.CreateInput
	updated    task.UpdateInput
	listed     task.ListInput
	err        error
	returnTask model.Task
}

func (s *stubUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (model.Task, error) {
	s.created = input
	return s.returnTask, s.err
}

func (s *stubUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) ([]model.Task, error) {
	s.listed = input
	if s.err != nil {
		return nil, s.err
	}
	return []model.Task{s.returnTask}, nil
}

func (s *stubUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (model.Task, error) {
	s.updated = input
	return s.returnTask, s.err
}

func (s *stubUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	return s.err
}

func (s *stubUseCase) Stats(ctx context.Context, sc model.Scope) (task.StatsOutput, error) {
	return task.StatsOutput{Total: 4, Completed: 1, CompletionRate: 25}, s.err
}

func (s *stubUseCase) Detail(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	return s.returnTask, s.err
}

func (s *stubUseCase) Productivity(ctx context.Context, sc model.Scope) ([]task.ProductivityDay, error) {
	madrid := time.FixedZone("CEST", 2*60*60)
	return []task.ProductivityDay{
		{Day: time.Date(2026, 5, 12, 0, 0, 0, 0, madrid), Created: 2},
		{Day: time.Date(2026, 5, 13, 0, 0, 0, 0, madrid), Created: 1, Completed: 1},
	}, s.err
}

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(h gin.HandlerFunc, method, target, body string, withScope bool) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if withScope {
		req = req.WithContext(scope.SetScopeToContext(req.Context(), model.Scope{UserID: "user-1"}))
	}
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "11111111-1111-1111-1111-111111111111"}}

	h(c)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func sampleTask() model.Task {
	past := time.Now().Add(-time.Hour)
	return model.Task{
		ID:       "11111111-1111-1111-1111-111111111111",
		UserID:   "user-1",
		Title:    "Write report",
		Priority: model.TaskPriorityHigh,
		Status:   model.TaskStatusPending,
		DueDate:  &past,
		Category: "work",
		Subtasks: []model.Subtask{{ID: "s1", Title: "Outline", Completed: true}, {ID: "s2", Title: "Draft"}},
	}
}

func TestCreateHandler(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		uc := &stubUseCase{returnTask: sampleTask()}
		h := New(log.NewNop(), uc)

		w := serve(h.Create, http.MethodPost, "/api/tasks",
			`{"title":"Write report","priority":"high","dueDate":"tomorrow","subtasks":[{"title":"Outline"}]}`, true)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "tomorrow", uc.created.DueDate)
		require.Len(t, uc.created.Subtasks, 1)

		data := decode(t, w)["data"].(map[string]any)["task"].(map[string]any)
		assert.Equal(t, "Write report", data["title"])
		assert.Equal(t, float64(50), data["subtasksProgress"])
		assert.Equal(t, true, data["isOverdue"])
	})

	t.Run("binding error", func(t *testing.T) {
		h := New(log.NewNop(), &stubUseCase{})
		w := serve(h.Create, http.MethodPost, "/api/tasks", `{"priority":"asap"}`, true)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("domain validation error", func(t *testing.T) {
		h := New(log.NewNop(), &stubUseCase{err: task.ErrDueDateInPast})
		w := serve(h.Create, http.MethodPost, "/api/tasks", `{"title":"Valid title","dueDate":"2000-01-01"}`, true)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, task.ErrDueDateInPast.Error(), decode(t, w)["message"])
	})

	t.Run("missing scope", func(t *testing.T) {
		h := New(log.NewNop(), &stubUseCase{})
		w := serve(h.Create, http.MethodPost, "/api/tasks", `{"title":"Valid title"}`, false)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestListHandler(t *testing.T) {
	uc := &stubUseCase{returnTask: sampleTask()}
	h := New(log.NewNop(), uc)

	w := serve(h.List, http.MethodGet, "/api/tasks?status=all&priority=high&category=work", "", true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, task.ListInput{Status: "all", Priority: "high", Category: "work"}, uc.listed)

	data := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, float64(1), data["count"])
}

func TestUpdateHandler(t *testing.T) {
	uc := &stubUseCase{returnTask: sampleTask()}
	h := New(log.NewNop(), uc)

	w := serve(h.Update, http.MethodPut, "/api/tasks/x", `{"status":"completed","dueDate":""}`, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "11111111-1111-1111-1111-111111111111", uc.updated.ID)
	require.NotNil(t, uc.updated.Status)
	assert.Equal(t, "completed", *uc.updated.Status)
	require.NotNil(t, uc.updated.DueDate)
	assert.Equal(t, "", *uc.updated.DueDate)
	assert.Nil(t, uc.updated.Title)
	assert.Nil(t, uc.updated.Subtasks)
}

func TestDeleteHandler(t *testing.T) {
	tcs := map[string]struct {
		err      error
		wantCode int
	}{
		"ok":        {wantCode: http.StatusOK},
		"not found": {err: task.ErrTaskNotFound, wantCode: http.StatusNotFound},
		"db error":  {err: errors.New("connection reset"), wantCode: http.StatusInternalServerError},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			h := New(log.NewNop(), &stubUseCase{err: tc.err})
			w := serve(h.Delete, http.MethodDelete, "/api/tasks/x", "", true)
			assert.Equal(t, tc.wantCode, w.Code)
		})
	}
}

func TestStatsHandler(t *testing.T) {
	h := New(log.NewNop(), &stubUseCase{})
	w := serve(h.Stats, http.MethodGet, "/api/tasks/stats/summary", "", true)
	require.Equal(t, http.StatusOK, w.Code)

	data := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, float64(4), data["total"])
	assert.Equal(t, float64(25), data["completionRate"])
}

func TestDetailHandler_Timestamps(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	due := time.Date(2026, 5, 14, 8, 59, 59, 0, tokyo)
	tk := sampleTask()
	tk.DueDate = &due
	tk.CreatedAt = time.Date(2026, 5, 13, 9, 30, 0, 0, time.UTC)
	tk.UpdatedAt = tk.CreatedAt
	tk.AISuggestions = &model.AISuggestions{
		Priority:    model.TaskPriorityHigh,
		GeneratedAt: time.Date(2026, 5, 13, 10, 0, 0, 0, time.UTC),
	}

	h := New(log.NewNop(), &stubUseCase{returnTask: tk})
	w := serve(h.Detail, http.MethodGet, "/api/tasks/x", "", true)
	require.Equal(t, http.StatusOK, w.Code)

	data := decode(t, w)["data"].(map[string]any)["task"].(map[string]any)
	assert.Equal(t, "2026-05-13T23:59:59.000Z", data["dueDate"])
	assert.Equal(t, "2026-05-13T09:30:00.000Z", data["createdAt"])
	assert.Nil(t, data["completedAt"])
	assert.Equal(t, "2026-05-13T10:00:00.000Z", data["aiSuggestions"].(map[string]any)["generatedAt"])
	assert.Equal(t, []any{}, data["aiSuggestions"].(map[string]any)["tips"])
}

func TestProductivityHandler(t *testing.T) {
	h := New(log.NewNop(), &stubUseCase{})
	w := serve(h.Productivity, http.MethodGet, "/api/tasks/stats/productivity", "", true)
	require.Equal(t, http.StatusOK, w.Code)

	days := decode(t, w)["data"].(map[string]any)["days"].([]any)
	require.Len(t, days, 2)
	assert.Equal(t, map[string]any{"date": "2026-05-12", "created": float64(2), "completed": float64(0)}, days[0])
	assert.Equal(t, "2026-05-13", days[1].(map[string]any)["date"])
}
