/*
 * Copyright 2025 The Tracker Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package errors provides structured errors with status codes so that callers
// can distinguish validation failures, missing resources, authorization
// failures and transient store failures without string matching.
package errors

import "fmt"

// StatusCode represents the error codes used throughout the server. The
// numeric values follow the Connect/gRPC code space so an RPC or HTTP layer
// can map them directly.
type StatusCode int

const (
	// ErrCodeInvalidArgument indicates malformed or missing required input.
	ErrCodeInvalidArgument StatusCode = 3

	// ErrCodeNotFound indicates that a referenced id does not resolve.
	ErrCodeNotFound StatusCode = 5

	// ErrCodeAlreadyExists indicates a uniqueness violation, such as a
	// duplicate username or duplicate project membership.
	ErrCodeAlreadyExists StatusCode = 6

	// ErrCodePermissionDenied indicates that an authorization predicate
	// failed for the acting user.
	ErrCodePermissionDenied StatusCode = 7

	// ErrCodeInternal indicates a broken invariant in the underlying system.
	ErrCodeInternal StatusCode = 13

	// ErrCodeUnavailable indicates a transient store or timeout failure.
	// Callers can back off and retry idempotent operations.
	ErrCodeUnavailable StatusCode = 14

	// ErrCodeUnauthenticated indicates missing or invalid credentials.
	ErrCodeUnauthenticated StatusCode = 16
)

// String returns the string representation of the error code.
func (c StatusCode) String() string {
	switch c {
	case ErrCodeInvalidArgument:
		return "invalid_argument"
	case ErrCodeNotFound:
		return "not_found"
	case ErrCodeAlreadyExists:
		return "already_exists"
	case ErrCodePermissionDenied:
		return "permission_denied"
	case ErrCodeInternal:
		return "internal"
	case ErrCodeUnavailable:
		return "unavailable"
	case ErrCodeUnauthenticated:
		return "unauthenticated"
	default:
		return fmt.Sprintf("code_%d", int(c))
	}
}

// IsClientError returns true if the error code represents a client-side error.
func (c StatusCode) IsClientError() bool {
	switch c {
	case ErrCodeInvalidArgument, ErrCodeNotFound, ErrCodeAlreadyExists,
		ErrCodePermissionDenied, ErrCodeUnauthenticated:
		return true
	default:
		return false
	}
}

// IsServerError returns true if the error code represents a server-side error.
func (c StatusCode) IsServerError() bool {
	switch c {
	case ErrCodeInternal, ErrCodeUnavailable:
		return true
	default:
		return false
	}
}
