// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table.

# Routes

NewRouter wires handlers to Go 1.22+ route patterns:

	GET  /health                → liveness check
	GET  /metrics               → Prometheus exposition
	GET  /api/feedback/{email}  → per-booth feedback aggregation
	POST /api/submit_feedback   → store one feedback session
	POST /api/process_audio     → transcribe + summarize recorded audio
	POST /api/summarize         → summarize text with praise/advice ratios
	GET  /                      → API banner

API routes are wrapped in middleware.WithLogging. CORS is applied around the
whole mux in main, not per route.
*/
package router
