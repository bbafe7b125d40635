package ai

const (
	MinTitleLength     = 3
	MaxBatchSize       = 10
	DefaultAverageTime = 45

	StatusOperational = "operational"
	StatusFallback    = "fallback mode"

	MsgProviderReady    = "AI provider configured; heuristic analysis is used when it fails"
	MsgProviderFallback = "no AI provider configured; using heuristic analysis"

	RecommendationStart     = "Start by creating your first task!"
	RecommendationExcellent = "Excellent work! Your productivity is impressive."
	RecommendationOnTrack   = "You are on the right track. Focus on finishing your pending tasks."
	RecommendationPriority  = "Set clear priorities and realistic time estimates."

	ExcellentRate = 80
	OnTrackRate   = 50
)
