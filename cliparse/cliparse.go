package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/openexpo/booth-feedback/models"
)

type Config struct {
	Port            int
	DatabaseURL     string
	GenAIAPIKey     string
	GenAIModel      string
	GenAIBaseURL    string
	SummaryStrategy string
	AllowedOrigin   string
}

// ParseFlags validates flags and applies environment fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("booth-feedback", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")

	// External generative-AI API (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.GenAIAPIKey, "api-key", "", "Generative AI API key (prefer env)")
	fs.StringVar(&cfg.GenAIModel, "model", "", "Generative AI model name")
	fs.StringVar(&cfg.SummaryStrategy, "summary-strategy", "", "Summary strategy (model or truncate)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8000 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	// API key is optional at boot: without it the server still serves the
	// DB-backed endpoints, and audio/summarize requests fail individually.
	if cfg.GenAIAPIKey == "" {
		cfg.GenAIAPIKey = os.Getenv("GENAI_API_KEY")
	}

	if cfg.GenAIModel == "" {
		cfg.GenAIModel = os.Getenv("GENAI_MODEL")
	}

	// Base URL is env-only; it exists so tests and proxies can redirect the
	// client, not as an operator-facing knob.
	cfg.GenAIBaseURL = os.Getenv("GENAI_BASE_URL")

	if cfg.SummaryStrategy == "" {
		cfg.SummaryStrategy = os.Getenv("SUMMARY_STRATEGY")
		if cfg.SummaryStrategy == "" {
			cfg.SummaryStrategy = models.StrategyModel
		}
	}
	if cfg.SummaryStrategy != models.StrategyModel && cfg.SummaryStrategy != models.StrategyTruncate {
		return Config{}, fmt.Errorf("invalid summary strategy %q (use model or truncate)", cfg.SummaryStrategy)
	}

	cfg.AllowedOrigin = os.Getenv("ALLOWED_ORIGIN")
	if cfg.AllowedOrigin == "" {
		cfg.AllowedOrigin = "*"
	}

	return cfg, nil
}
