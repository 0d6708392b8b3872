// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the booth feedback API server.

The service collects spoken visitor feedback at exhibition booths: audio is
transcribed and summarized through an external generative-AI API, feedback
sessions are stored in PostgreSQL keyed by booth, and student teams read an
aggregated view of their booth's feedback.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... GENAI_API_KEY=... go run main.go

Or with flags:

	go run main.go -p 8000 -d "postgres://..." -api-key "..."

A .env file in the working directory is loaded first.

# Configuration

Required settings:

  - DATABASE_URL (-d): PostgreSQL connection string

Optional settings:

  - PORT (-p): Server port (default: 8000)
  - GENAI_API_KEY (-api-key): Generative AI API key; without it the
    audio/summarize endpoints return errors but feedback storage works
  - GENAI_MODEL (-model): Model name (default: gemini-2.0-flash)
  - SUMMARY_STRATEGY (-summary-strategy): "model" or "truncate"
  - ALLOWED_ORIGIN: CORS origin for the frontend (default: *)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (feedback, submission, audio, summarize)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, request IDs, JSON helpers
  - models: Request/response types, normalization, flexible ratios
  - genai: External generative-AI client and summary strategies
  - metrics: Prometheus collectors
  - db: Connection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
