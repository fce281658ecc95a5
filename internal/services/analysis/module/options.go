package module

import (
	"time"

	"tubelens/internal/platform/config"
)

// Options holds configuration settings for the analysis module
type Options struct {
	// YouTube138 RapidAPI client
	YTHost       string
	YTKey        string
	YTTimeout    time.Duration
	YTMaxRetries int
	YTRetryBase  time.Duration
	YTPageDelay  time.Duration

	// Chat completions client
	LLMBaseURL string
	LLMKey     string
	LLMModel   string
	LLMTimeout time.Duration
}

// FromConfig extracts Options from the given config.Conf
func FromConfig(cfg config.Conf) Options {
	an := cfg.Prefix("CORE_ANALYSIS_")
	return Options{
		YTHost:       an.MayString("YT_HOST", ""),
		YTKey:        an.MustString("YT_KEY"),
		YTTimeout:    an.MayDuration("YT_TIMEOUT", 15*time.Second),
		YTMaxRetries: an.MayInt("YT_MAX_RETRIES", 3),
		YTRetryBase:  an.MayDuration("YT_RETRY_BASE", 500*time.Millisecond),
		YTPageDelay:  an.MayDuration("YT_PAGE_DELAY", 300*time.Millisecond),

		LLMBaseURL: an.MayString("LLM_BASE_URL", ""),
		LLMKey:     an.MustString("LLM_KEY"),
		LLMModel:   an.MayString("LLM_MODEL", "gpt-4o-mini"),
		LLMTimeout: an.MayDuration("LLM_TIMEOUT", 120*time.Second),
	}
}
