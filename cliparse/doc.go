// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8000)
  - DatabaseURL: PostgreSQL connection string (required)
  - GenAIAPIKey: Generative AI API key (optional at boot)
  - GenAIModel: Generative AI model name
  - GenAIBaseURL: Override for the AI endpoint (tests/proxies)
  - SummaryStrategy: "model" or "truncate"
  - AllowedOrigin: CORS allowed origin (default: *)

# CLI Flags

	-p                 Server port
	-d                 Database URL
	-api-key           Generative AI API key
	-model             Generative AI model name
	-summary-strategy  Summary strategy

# Environment Variables

Flags fall back to environment variables:

	PORT             → -p
	DATABASE_URL     → -d
	GENAI_API_KEY    → -api-key
	GENAI_MODEL      → -model
	SUMMARY_STRATEGY → -summary-strategy
	GENAI_BASE_URL   (env only)
	ALLOWED_ORIGIN   (env only)

CLI flags take precedence over environment variables. main loads a .env file
first (godotenv), matching how the service is deployed.

# Validation

ParseFlags returns an error if DATABASE_URL is missing or the summary
strategy is unrecognized. A missing API key is deliberately not fatal: the
feedback endpoints work without it, and only audio/summarize requests fail.
*/
package cliparse
