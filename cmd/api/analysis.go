package main

import (
	"context"
	"errors"

	"taskmaster-ai/config"
	"taskmaster-ai/internal/analysis"
	"taskmaster-ai/pkg/llmprovider"
	"taskmaster-ai/pkg/log"
)

// newAnalyzer builds the analysis engine. Any provider problem leaves the
// engine on the heuristic path instead of stopping the service.
func newAnalyzer(ctx context.Context, logger log.Logger, cfg config.AnalysisConfig) *analysis.Engine {
	classifier := classifierOptions(cfg)

	kind, err := llmprovider.ParseKind(cfg.Provider)
	if err != nil {
		logger.Warnf(ctx, "Analysis provider %q not supported, using heuristic analysis: %v", cfg.Provider, err)
		kind = llmprovider.KindNone
	}

	providerCfg := llmprovider.ProviderConfig{
		Kind:    kind,
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
	}
	engineCfg := analysis.Config{Provider: providerCfg, Classifier: classifier}

	provider, err := llmprovider.NewProvider(providerCfg)
	switch {
	case errors.Is(err, llmprovider.ErrNoProviderConfigured):
		logger.Info(ctx, "No analysis provider configured, using heuristic analysis")
		return analysis.New(logger, engineCfg, nil)
	case err != nil:
		logger.Warnf(ctx, "Analysis provider unavailable, using heuristic analysis: %v", err)
		return analysis.New(logger, engineCfg, nil)
	}

	logger.Infof(ctx, "✅ Analysis provider %s (%s), timeout %s", provider.Name(), provider.Model(), providerCfg.EffectiveTimeout())
	return analysis.New(logger, engineCfg, provider)
}

func classifierOptions(cfg config.AnalysisConfig) analysis.ClassifierOptions {
	opts := analysis.DefaultClassifierOptions()
	opts.ScaleByDescription = cfg.ScaleByDescription
	if cfg.MaxSubtasks != nil {
		opts.MaxSubtasks = *cfg.MaxSubtasks
	}
	return opts
}
