package http

import (
	"time"

	"taskmaster-ai/internal/model"
	"taskmaster-ai/internal/task"
	"taskmaster-ai/pkg/response"
)

// --- Request DTOs ---

type subtaskReq struct {
	ID        string `json:"id"`
	Title     string `json:"title"     binding:"required,max=200"`
	Completed bool   `json:"completed"`
}

func toSubtaskInputs(reqs []subtaskReq) []task.SubtaskInput {
	inputs := make([]task.SubtaskInput, len(reqs))
	for i, r := range reqs {
		inputs[i] = task.SubtaskInput{ID: r.ID, Title: r.Title, Completed: r.Completed}
	}
	return inputs
}

type createReq struct {
	Title         string       `json:"title"         binding:"required"`
	Description   string       `json:"description"`
	Priority      string       `json:"priority"      binding:"omitempty,oneof=low medium high urgent"`
	Status        string       `json:"status"        binding:"omitempty,oneof=pending in_progress completed"`
	DueDate       string       `json:"dueDate"`
	EstimatedTime int          `json:"estimatedTime" binding:"min=0,max=10080"`
	Category      string       `json:"category"`
	Subtasks      []subtaskReq `json:"subtasks"      binding:"dive"`
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Title:         r.Title,
		Description:   r.Description,
		Priority:      r.Priority,
		Status:        r.Status,
		DueDate:       r.DueDate,
		EstimatedTime: r.EstimatedTime,
		Category:      r.Category,
		Subtasks:      toSubtaskInputs(r.Subtasks),
	}
}

// ---

type listReq struct {
	Status   string `form:"status"`
	Priority string `form:"priority"`
	Category string `form:"category"`
}

func (r listReq) toInput() task.ListInput {
	return task.ListInput{
		Status:   r.Status,
		Priority: r.Priority,
		Category: r.Category,
	}
}

// ---

type updateReq struct {
	ID            string        `json:"-"` // populated from URI param
	Title         *string       `json:"title"`
	Description   *string       `json:"description"`
	Priority      *string       `json:"priority"`
	Status        *string       `json:"status"`
	DueDate       *string       `json:"dueDate"`
	EstimatedTime *int          `json:"estimatedTime"`
	Category      *string       `json:"category"`
	Subtasks      *[]subtaskReq `json:"subtasks"`
}

func (r updateReq) toInput() task.UpdateInput {
	input := task.UpdateInput{
		ID:            r.ID,
		Title:         r.Title,
		Description:   r.Description,
		Priority:      r.Priority,
		Status:        r.Status,
		DueDate:       r.DueDate,
		EstimatedTime: r.EstimatedTime,
		Category:      r.Category,
	}
	if r.Subtasks != nil {
		subtasks := toSubtaskInputs(*r.Subtasks)
		input.Subtasks = &subtasks
	}
	return input
}

// --- Response DTOs ---

type subtaskResp struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt response.DateTime `json:"createdAt"`
}

type aiSuggestionsResp struct {
	Priority      string            `json:"priority"`
	EstimatedTime int               `json:"estimatedTime"`
	Tips          []string          `json:"tips"`
	GeneratedAt   response.DateTime `json:"generatedAt"`
}

type taskResp struct {
	ID               string             `json:"id"`
	UserID           string             `json:"userId"`
	Title            string             `json:"title"`
	Description      string             `json:"description"`
	Priority         string             `json:"priority"`
	Status           string             `json:"status"`
	DueDate          *response.DateTime `json:"dueDate"`
	EstimatedTime    int                `json:"estimatedTime"`
	Category         string             `json:"category"`
	Subtasks         []subtaskResp      `json:"subtasks"`
	AISuggestions    *aiSuggestionsResp `json:"aiSuggestions,omitempty"`
	SubtasksProgress int                `json:"subtasksProgress"`
	IsOverdue        bool               `json:"isOverdue"`
	CreatedAt        response.DateTime  `json:"createdAt"`
	UpdatedAt        response.DateTime  `json:"updatedAt"`
	CompletedAt      *response.DateTime `json:"completedAt"`
}

func newTaskResp(t model.Task, now time.Time) taskResp {
	subtasks := make([]subtaskResp, len(t.Subtasks))
	for i, st := range t.Subtasks {
		subtasks[i] = subtaskResp{ID: st.ID, Title: st.Title, Completed: st.Completed, CreatedAt: response.DateTime(st.CreatedAt)}
	}

	resp := taskResp{
		ID:               t.ID,
		UserID:           t.UserID,
		Title:            t.Title,
		Description:      t.Description,
		Priority:         string(t.Priority),
		Status:           string(t.Status),
		DueDate:          response.NewDateTimePtr(t.DueDate),
		EstimatedTime:    t.EstimatedTime,
		Category:         t.Category,
		Subtasks:         subtasks,
		SubtasksProgress: t.SubtasksProgress(),
		IsOverdue:        t.IsOverdue(now),
		CreatedAt:        response.DateTime(t.CreatedAt),
		UpdatedAt:        response.DateTime(t.UpdatedAt),
		CompletedAt:      response.NewDateTimePtr(t.CompletedAt),
	}
	if s := t.AISuggestions; s != nil {
		tips := s.Tips
		if tips == nil {
			tips = []string{}
		}
		resp.AISuggestions = &aiSuggestionsResp{
			Priority:      string(s.Priority),
			EstimatedTime: s.EstimatedTime,
			Tips:          tips,
			GeneratedAt:   response.DateTime(s.GeneratedAt),
		}
	}
	return resp
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(t model.Task) detailResp {
	return detailResp{Task: newTaskResp(t, time.Now())}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Count int        `json:"count"`
}

func (h *handler) newListResp(tasks []model.Task) listResp {
	now := time.Now()
	items := make([]taskResp, len(tasks))
	for i, t := range tasks {
		items[i] = newTaskResp(t, now)
	}
	return listResp{Tasks: items, Count: len(items)}
}

type statsResp struct {
	Total              int `json:"total"`
	Completed          int `json:"completed"`
	Pending            int `json:"pending"`
	InProgress         int `json:"inProgress"`
	Urgent             int `json:"urgent"`
	High               int `json:"high"`
	TotalEstimatedTime int `json:"totalEstimatedTime"`
	CompletionRate     int `json:"completionRate"`
	AverageTime        int `json:"averageTime"`
}

func (h *handler) newStatsResp(out task.StatsOutput) statsResp {
	return statsResp{
		Total:              out.Total,
		Completed:          out.Completed,
		Pending:            out.Pending,
		InProgress:         out.InProgress,
		Urgent:             out.Urgent,
		High:               out.High,
		TotalEstimatedTime: out.TotalEstimatedTime,
		CompletionRate:     out.CompletionRate,
		AverageTime:        out.AverageTime,
	}
}

type productivityDayResp struct {
	Date      response.Date `json:"date"`
	Created   int           `json:"created"`
	Completed int           `json:"completed"`
}

type productivityResp struct {
	Days []productivityDayResp `json:"days"`
}

func (h *handler) newProductivityResp(days []task.ProductivityDay) productivityResp {
	items := make([]productivityDayResp, len(days))
	for i, d := range days {
		items[i] = productivityDayResp{Date: response.Date(d.Day), Created: d.Created, Completed: d.Completed}
	}
	return productivityResp{Days: items}
}
