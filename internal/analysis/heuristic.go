package analysis

import (
	"strings"
	"unicode/utf8"
)

// Classify runs the keyword heuristics with the default options.
func Classify(title, description string) TaskAnalysis {
	return ClassifyWithOptions(title, description, DefaultClassifierOptions())
}

// ClassifyWithOptions is pure and deterministic: the same input and options
// always produce the same TaskAnalysis.
func ClassifyWithOptions(title, description string, opts ClassifierOptions) TaskAnalysis {
	text := strings.ToLower(title + " " + description)

	if strings.TrimSpace(text) == "" {
		return TaskAnalysis{
			Priority:             PriorityMedium,
			EstimatedTimeMinutes: DefaultEstimatedMinutes,
			Tips:                 cloneN(genericTips, MaxHeuristicTips),
			Subtasks:             cloneN(defaultSubtasks, clampSubtaskCount(opts.MaxSubtasks)),
			Source:               SourceHeuristic,
		}
	}

	minutes := estimateByWordCount(len(strings.Fields(text)))
	if opts.ScaleByDescription {
		minutes = scaleByDescription(minutes, description)
	}

	return TaskAnalysis{
		Priority:             classifyPriority(text),
		EstimatedTimeMinutes: clampMinutes(minutes),
		Tips:                 cloneN(selectTips(text), MaxHeuristicTips),
		Subtasks:             cloneN(defaultSubtasks, clampSubtaskCount(opts.MaxSubtasks)),
		Source:               SourceHeuristic,
	}
}

func classifyPriority(text string) Priority {
	switch {
	case containsAny(text, urgentKeywords):
		return PriorityUrgent
	case containsAny(text, highKeywords):
		return PriorityHigh
	case containsAny(text, lowKeywords):
		return PriorityLow
	default:
		return PriorityMedium
	}
}

func estimateByWordCount(words int) int {
	switch {
	case words < 10:
		return 15
	case words < 25:
		return 30
	case words < 50:
		return 60
	default:
		return 90
	}
}

func scaleByDescription(minutes int, description string) int {
	n := utf8.RuneCountInString(strings.TrimSpace(description))
	switch {
	case n > longDescriptionChars:
		return min(int(float64(minutes)*longScaleFactor), longScaleCap)
	case n > 0 && n < shortDescriptionChars:
		return max(int(float64(minutes)*shortScaleFactor), shortScaleFloor)
	default:
		return minutes
	}
}

func selectTips(text string) []string {
	switch {
	case containsAny(text, meetingKeywords):
		return meetingTips
	case containsAny(text, writingKeywords):
		return writingTips
	default:
		return genericTips
	}
}

// containsAny matches substrings, not words: "low" also fires inside "follow"
// or "workflow". Existing clients rely on these results.
func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func clampSubtaskCount(n int) int {
	return max(0, min(n, len(defaultSubtasks)))
}

func clampMinutes(n int) int {
	return max(MinEstimatedMinutes, min(n, MaxEstimatedMinutes))
}

// cloneN copies at most n items so callers never share the package-level slices.
func cloneN(items []string, n int) []string {
	if n > len(items) {
		n = len(items)
	}
	out := make([]string, n)
	copy(out, items[:n])
	return out
}
