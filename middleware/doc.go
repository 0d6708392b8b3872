// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

# Request Logging

WithLogging wraps handlers with structured request logging:

	mux.HandleFunc("POST /api/submit_feedback", middleware.WithLogging(handler.SubmitFeedback))

Each request gets an X-Request-ID (client-supplied or generated), start and
completion log lines with status and duration, and a Prometheus request
counter/latency observation labelled by route pattern.

# JSON Helpers

  - JSONResponse: writes any value as JSON with a status code
  - ErrorResponse: writes the uniform {message, error_detail?} envelope
  - ParseJSONBody: decodes a request body into a struct

Handlers never write raw internal error text into message; driver and API
error strings are confined to error_detail.

# CORS

CORS allows cross-origin requests from the configured frontend origin and
answers OPTIONS preflights directly:

	handler := middleware.CORS(cfg.AllowedOrigin, mux)
*/
package middleware
