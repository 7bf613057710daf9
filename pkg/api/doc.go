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

// Package api wires the crop recommender into pkg/server and runs it as
// cropadvisord.
//
// # Endpoints
//
//	GET|POST /v1/recommendations  suitable crops with advisories
//	GET      /v1/crops            catalog listing
//	GET      /v1/advisories       advisory text for ?crop=NAME
//	GET      /health /ready       probes
//	GET      /metrics             Prometheus
//	GET      /                    service info and routes
//
// # Configuration
//
// Environment variables:
//
//	PORT                       listen port (default 8080)
//	SHUTDOWN_TIMEOUT_SECONDS   graceful drain window (default 30)
//	LOG_LEVEL                  debug, info, warn or error (default info)
//
// # Usage
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatal(err)
//	    }
//	}
package api
