package analysis

import (
	"fmt"
	"strings"

	"taskmaster-ai/pkg/llmprovider"
)

// BuildPrompt embeds the task in the analysis prompt.
func BuildPrompt(req AnalysisRequest) string {
	description := strings.TrimSpace(req.Description)
	if description == "" {
		description = PromptNoDescription
	}
	return fmt.Sprintf(PromptAnalyzeTask, strings.TrimSpace(req.Title), description)
}

func buildProviderRequest(req AnalysisRequest) *llmprovider.Request {
	return &llmprovider.Request{
		SystemInstruction: PromptSystem,
		Prompt:            BuildPrompt(req),
		Temperature:       ProviderTemperature,
		MaxTokens:         ProviderMaxTokens,
		JSONMode:          true,
	}
}
