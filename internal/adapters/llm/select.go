package llm

import (
	"cictt/internal/core/engine"
	"cictt/internal/platform/config"
)

// Backend names accepted by Select
const (
	BackendKeyword = "keyword"
	BackendLLM     = "llm"
)

// Select picks the analyzer named by BACKEND in cfg (keyword or llm) and returns it
// with its name. The llm client reads its LLM_* keys from the same view
func Select(cfg config.Conf, eng *engine.Engine) (engine.Analyzer, string) {
	switch cfg.MayEnum("BACKEND", BackendKeyword, BackendKeyword, BackendLLM) {
	case BackendLLM:
		return New(FromConfig(cfg), eng), BackendLLM
	default:
		return engine.NewKeyword(eng), BackendKeyword
	}
}
