// Copyright 2025 The ProofX Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package verify

import (
	"errors"
	"fmt"
)

// ErrorType categorizes verification failures. Every failure of a single
// request falls into exactly one category; none is retried internally, and
// none is silently downgraded to a different status.
type ErrorType int

const (
	// ErrTypeUnknown indicates an unclassified error.
	ErrTypeUnknown ErrorType = iota

	// ErrTypeNotFound indicates the content source does not exist.
	ErrTypeNotFound

	// ErrTypeIO indicates the source failed mid-read (permissions,
	// truncation, device errors, cancellation).
	ErrTypeIO

	// ErrTypeAnchorUnavailable indicates the anchoring collaborator was
	// unreachable or timed out.
	ErrTypeAnchorUnavailable
)

// String returns a human-readable name for the error type.
func (e ErrorType) String() string {
	switch e {
	case ErrTypeNotFound:
		return "NotFound"
	case ErrTypeIO:
		return "IOFailure"
	case ErrTypeAnchorUnavailable:
		return "AnchorUnavailable"
	default:
		return "UnknownError"
	}
}

// VerificationError is a structured error for a failed verification
// request. It carries the failure category, the source path involved, a
// human-readable message and the underlying cause.
//
// Example:
//
//	var verifyErr *VerificationError
//	if errors.As(err, &verifyErr) && verifyErr.Type == ErrTypeNotFound {
//	    // source missing
//	}
type VerificationError struct {
	// Type categorizes the error for programmatic handling.
	Type ErrorType

	// Path is the content source path related to the error (optional).
	Path string

	// Message is a human-readable description of what went wrong.
	Message string

	// Cause is the underlying error.
	Cause error
}

// Error implements the error interface.
func (e *VerificationError) Error() string {
	if e.Path != "" && e.Cause != nil {
		return fmt.Sprintf("%s: %s (path: %s): %v", e.Type, e.Message, e.Path, e.Cause)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %s (path: %s)", e.Type, e.Message, e.Path)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause for error chain unwrapping.
func (e *VerificationError) Unwrap() error {
	return e.Cause
}

// NewVerificationError creates a verification error with a path.
func NewVerificationError(errType ErrorType, path, message string, cause error) *VerificationError {
	return &VerificationError{
		Type:    errType,
		Path:    path,
		Message: message,
		Cause:   cause,
	}
}

// IsType reports whether err is a VerificationError of the given type.
func IsType(err error, errType ErrorType) bool {
	var verifyErr *VerificationError
	if errors.As(err, &verifyErr) {
		return verifyErr.Type == errType
	}
	return false
}
