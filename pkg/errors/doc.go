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

// Package errors provides structured error types for better observability
// and programmatic error handling across crop-advisor.
//
// The recommendation core itself never fails; structured errors are raised at
// the edges: loading the embedded crop catalog, parsing soil samples supplied
// over HTTP or from files, and serving requests.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeInvalidRequest,
//	    "invalid soil sample",
//	    parseErr,
//	    map[string]any{
//	        "param": "ph",
//	        "value": raw,
//	    },
//	)
//
// Callers that need to branch on the classification use CodeOf or IsCode:
//
//	if errors.IsCode(err, errors.ErrCodeInvalidRequest) {
//	    // respond with 400
//	}
package errors
