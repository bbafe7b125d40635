package http

import (
	"taskmaster-ai/internal/ai"
	"taskmaster-ai/internal/analysis"
)

// --- Request DTOs ---

type analyzeTaskReq struct {
	Title       string `json:"title"       binding:"required"`
	Description string `json:"description"`
	TaskID      string `json:"taskId"`
}

func (r analyzeTaskReq) toInput() ai.AnalyzeTaskInput {
	return ai.AnalyzeTaskInput{
		Title:       r.Title,
		Description: r.Description,
		TaskID:      r.TaskID,
	}
}

// ---

type suggestPriorityReq struct {
	TaskIDs []string `json:"taskIds" binding:"required,min=1"`
}

func (r suggestPriorityReq) toInput() ai.SuggestPriorityInput {
	return ai.SuggestPriorityInput{TaskIDs: r.TaskIDs}
}

// ---

type batchItemReq struct {
	Title       string `json:"title"       binding:"required"`
	Description string `json:"description"`
}

type batchAnalyzeReq struct {
	Tasks []batchItemReq `json:"tasks" binding:"required,min=1,max=10,dive"`
}

func (r batchAnalyzeReq) toInput() ai.BatchAnalyzeInput {
	items := make([]ai.BatchItem, len(r.Tasks))
	for i, t := range r.Tasks {
		items[i] = ai.BatchItem{Title: t.Title, Description: t.Description}
	}
	return ai.BatchAnalyzeInput{Tasks: items}
}

// --- Response DTOs ---

type analysisResp struct {
	Priority      string   `json:"priority"`
	EstimatedTime int      `json:"estimatedTime"`
	Tips          []string `json:"tips"`
	Subtasks      []string `json:"subtasks"`
	Source        string   `json:"source"`
}

func newAnalysisResp(a analysis.TaskAnalysis) analysisResp {
	return analysisResp{
		Priority:      string(a.Priority),
		EstimatedTime: a.EstimatedTimeMinutes,
		Tips:          nonNil(a.Tips),
		Subtasks:      nonNil(a.Subtasks),
		Source:        a.Source,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

type analyzeTaskResp struct {
	Analysis analysisResp `json:"analysis"`
	Saved    bool         `json:"saved"`
}

func (h *handler) newAnalyzeTaskResp(out ai.AnalyzeTaskOutput) analyzeTaskResp {
	return analyzeTaskResp{Analysis: newAnalysisResp(out.Analysis), Saved: out.Saved}
}

type insightsResp struct {
	CompletionRate  int    `json:"completionRate"`
	TotalTasks      int    `json:"totalTasks"`
	CompletedTasks  int    `json:"completedTasks"`
	AverageTaskTime int    `json:"averageTaskTime"`
	Recommendation  string `json:"recommendation"`
}

func (h *handler) newInsightsResp(out ai.InsightsOutput) insightsResp {
	return insightsResp{
		CompletionRate:  out.CompletionRate,
		TotalTasks:      out.TotalTasks,
		CompletedTasks:  out.CompletedTasks,
		AverageTaskTime: out.AverageTaskTime,
		Recommendation:  out.Recommendation,
	}
}

type prioritySuggestionResp struct {
	TaskID            string   `json:"taskId"`
	Title             string   `json:"title"`
	CurrentPriority   string   `json:"currentPriority"`
	SuggestedPriority string   `json:"suggestedPriority"`
	EstimatedTime     int      `json:"estimatedTime"`
	Tips              []string `json:"tips"`
}

type suggestPriorityResp struct {
	Suggestions []prioritySuggestionResp `json:"suggestions"`
}

func (h *handler) newSuggestPriorityResp(out []ai.PrioritySuggestion) suggestPriorityResp {
	items := make([]prioritySuggestionResp, len(out))
	for i, s := range out {
		items[i] = prioritySuggestionResp{
			TaskID:            s.TaskID,
			Title:             s.Title,
			CurrentPriority:   string(s.CurrentPriority),
			SuggestedPriority: string(s.SuggestedPriority),
			EstimatedTime:     s.EstimatedTime,
			Tips:              nonNil(s.Tips),
		}
	}
	return suggestPriorityResp{Suggestions: items}
}

type batchResultResp struct {
	Title    string       `json:"title"`
	Analysis analysisResp `json:"analysis"`
}

type batchAnalyzeResp struct {
	Results []batchResultResp `json:"results"`
}

func (h *handler) newBatchAnalyzeResp(out []ai.BatchResult) batchAnalyzeResp {
	items := make([]batchResultResp, len(out))
	for i, r := range out {
		items[i] = batchResultResp{Title: r.Title, Analysis: newAnalysisResp(r.Analysis)}
	}
	return batchAnalyzeResp{Results: items}
}

type healthResp struct {
	Provider   string `json:"provider"`
	Model      string `json:"model,omitempty"`
	Configured bool   `json:"configured"`
	Status     string `json:"status"`
	Message    string `json:"message"`
}

func (h *handler) newHealthResp(out ai.HealthOutput) healthResp {
	return healthResp{
		Provider:   out.Provider,
		Model:      out.Model,
		Configured: out.Configured,
		Status:     out.Status,
		Message:    out.Message,
	}
}
