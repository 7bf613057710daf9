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

// Package defaults provides centralized configuration constants for crop-advisor.
//
// This package defines timeout values, cache durations, and server limits used
// across the codebase. Centralizing these values keeps the CLI and the API
// server consistent and makes tuning easier.
//
// # Timeout Categories
//
// Timeouts are organized by component:
//
//   - Handler timeouts: For HTTP request processing
//   - Server timeouts: For HTTP server configuration
//   - CLI timeouts: For interactive command-line operations
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/NVIDIA/crop-advisor/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.RecommendationHandlerTimeout)
//	defer cancel()
//
// # Timeout Guidelines
//
// When choosing timeout values:
//
//   - HTTP handlers: 10s; recommendation is an in-memory table scan
//   - Server shutdown: 30s for graceful shutdown
//   - Interactive prompts: 10m before the CLI gives up waiting on stdin
package defaults
