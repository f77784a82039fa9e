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

// Package anchor defines the collaborator that registers a fingerprint with
// an external tamper-resistant ledger.
//
// The core only depends on the Anchorer interface. SimulatedAnchorer stands
// in for the ledger during development and tests; HTTPAnchorer is the
// network-backed implementation that production deployments substitute in.
package anchor

import (
	"context"
	"errors"

	"github.com/prooffx0/Prooffx/pkg/hashing/digests"
)

// Reference is the opaque identifier a ledger returns for an anchored
// digest (e.g. a block or transaction id). Its contents are meaningful only
// to the ledger that issued it.
type Reference string

// ErrUnavailable indicates the anchoring service could not be reached or
// did not answer in time. Callers detect it with errors.Is.
var ErrUnavailable = errors.New("anchoring service unavailable")

// Anchorer registers a digest with an external ledger.
//
// Anchor may be slow and may fail; it must honor ctx for timeout and
// cancellation. Implementations must be idempotent-safe: anchoring the same
// digest more than once must not corrupt ledger state, so callers are free
// to retry a whole verification.
type Anchorer interface {
	// Anchor submits the digest and returns the ledger's reference for it.
	// Returns an error wrapping ErrUnavailable when the ledger cannot be
	// reached or times out.
	Anchor(ctx context.Context, digest digests.Digest) (Reference, error)
}
