package analysis

// Log prefixes
const (
	LogPrefixAnalyze = "internal.analysis.Analyze"
)

// SourceHeuristic marks results produced without a provider.
const SourceHeuristic = "heuristic"

// Bounds and defaults of a TaskAnalysis
const (
	MinEstimatedMinutes     = 5
	MaxEstimatedMinutes     = 480
	DefaultEstimatedMinutes = 60
	MaxTips                 = 3
	MaxSubtasks             = 5
	DefaultMaxSubtasks      = 2
	MaxHeuristicTips        = 2
)

// Description-length scaling
const (
	longDescriptionChars  = 200
	shortDescriptionChars = 20
	longScaleFactor       = 1.5
	shortScaleFactor      = 0.7
	longScaleCap          = 240
	shortScaleFloor       = 15
)

// Provider request settings
const (
	ProviderTemperature = 0.3
	ProviderMaxTokens   = 512
)

// Keyword sets, checked in this order: urgent, high, low.
var (
	urgentKeywords = []string{"urgent", "urgente", "emergency", "asap", "!"}
	highKeywords   = []string{"important", "importante", "critical", "crítico"}
	lowKeywords    = []string{"low", "baja", "optional", "someday"}

	meetingKeywords = []string{"meeting", "reunión"}
	writingKeywords = []string{"report", "reporte", "document"}
)

// Tip buckets
var (
	meetingTips = []string{
		"Prepare an agenda before the meeting",
		"Take notes during the discussion",
	}
	writingTips = []string{
		"Split the document into sections",
		"Proofread before finalizing",
	}
	genericTips = []string{
		"Break the task into smaller steps",
		"Set a time limit to complete it",
	}
)

var defaultSubtasks = []string{
	"Research relevant information",
	"Prepare required materials",
	"Execute the main task",
	"Review and verify results",
}

// Priority aliases accepted from provider output
var priorityAliases = map[string]Priority{
	"low":     PriorityLow,
	"baja":    PriorityLow,
	"bajo":    PriorityLow,
	"medium":  PriorityMedium,
	"media":   PriorityMedium,
	"medio":   PriorityMedium,
	"normal":  PriorityMedium,
	"high":    PriorityHigh,
	"alta":    PriorityHigh,
	"alto":    PriorityHigh,
	"urgent":  PriorityUrgent,
	"urgente": PriorityUrgent,
}

// Prompts
const (
	PromptSystem = `You are a productivity assistant. You analyze a single to-do item and answer with one JSON object only, without markdown or commentary.`

	PromptAnalyzeTask = `Analyze the following task.

Title: %s
Description: %s

Return JSON with exactly this shape:
{
  "priority": "low|medium|high|urgent",
  "estimatedTime": <integer minutes between 5 and 480>,
  "tips": ["at most 3 short, practical tips"],
  "subtasks": ["at most 5 short subtask titles"]
}`

	PromptNoDescription = "(none)"
)

// Log messages
const (
	MsgFallbackNoProvider = "no provider configured, using heuristic analysis"
	MsgFallbackTransport  = "provider call failed, falling back to heuristic analysis"
	MsgFallbackParse      = "provider response not parseable, falling back to heuristic analysis"
)
