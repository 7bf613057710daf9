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

package server

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	cnserrors "github.com/NVIDIA/crop-advisor/pkg/errors"
	"github.com/NVIDIA/crop-advisor/pkg/serializer"
	"github.com/google/uuid"
)

// ErrorResponse is the JSON body of every non-2xx API response.
type ErrorResponse struct {
	Code      cnserrors.ErrorCode `json:"code"`
	Message   string              `json:"message"`
	Details   map[string]any      `json:"details,omitempty"`
	RequestID string              `json:"requestId"`
	Timestamp time.Time           `json:"timestamp"`
	Retryable bool                `json:"retryable"`
}

// WriteError writes an ErrorResponse with the request's ID.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code cnserrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID := RequestIDFromContext(r.Context())
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      code,
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// WriteErrorFromErr derives status, code and retryability from err. A
// StructuredError's context is merged into details.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error, message string, details map[string]any) {
	code := cnserrors.CodeOf(err)
	status, retryable := httpStatus(code)

	merged := map[string]any{"error": err.Error()}
	var se *cnserrors.StructuredError
	if errors.As(err, &se) {
		for k, v := range se.Context {
			merged[k] = v
		}
	}
	for k, v := range details {
		merged[k] = v
	}

	if status >= http.StatusInternalServerError {
		slog.Error(message, "error", err, "requestID", RequestIDFromContext(r.Context()))
	}

	WriteError(w, r, status, code, message, retryable, merged)
}

func httpStatus(code cnserrors.ErrorCode) (int, bool) {
	switch code {
	case cnserrors.ErrCodeInvalidRequest:
		return http.StatusBadRequest, false
	case cnserrors.ErrCodeNotFound:
		return http.StatusNotFound, false
	case cnserrors.ErrCodeUnauthorized:
		return http.StatusUnauthorized, false
	case cnserrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed, false
	case cnserrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests, true
	case cnserrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout, true
	case cnserrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable, true
	default:
		return http.StatusInternalServerError, true
	}
}
