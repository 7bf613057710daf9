// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package server provides the HTTP runtime behind cropadvisord.
//
// # Endpoints
//
// System endpoints are mounted without rate limiting:
//
//   - GET /health: liveness, always 200 while the process runs
//   - GET /ready: 200 once serving, 503 while starting or draining
//   - GET /metrics: Prometheus exposition
//
// API handlers registered through WithHandler, plus GET / (service name,
// version and routes), run behind the middleware chain:
//
//	metrics -> version -> requestID -> panicRecovery -> rateLimit -> logging -> handler
//
// # Errors
//
// Failures are returned as ErrorResponse JSON. WriteErrorFromErr maps the
// pkg/errors code of a StructuredError to the HTTP status:
//
//	INVALID_REQUEST      400
//	UNAUTHORIZED         401
//	NOT_FOUND            404
//	METHOD_NOT_ALLOWED   405
//	RATE_LIMIT_EXCEEDED  429 (retryable)
//	TIMEOUT              504 (retryable)
//	SERVICE_UNAVAILABLE  503 (retryable)
//	anything else        500 (retryable)
//
// # Configuration
//
// NewConfig reads PORT and SHUTDOWN_TIMEOUT_SECONDS; timeouts default to the
// values in pkg/defaults.
//
// # Usage
//
//	s := server.New(
//	    server.WithName("cropadvisord"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/recommendations": b.HandleRecommendations,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Run stops on context cancellation, SIGINT or SIGTERM, marks the server
// not ready, and drains in-flight requests within ShutdownTimeout.
package server
