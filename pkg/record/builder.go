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

package record

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prooffx0/Prooffx/pkg/anchor"
	"github.com/prooffx0/Prooffx/pkg/hashing/digests"
)

// DefaultVerifierName identifies this verifier in records it produces.
const DefaultVerifierName = "ludi-verifier/1.0"

// Builder assembles authenticity records from digests.
//
// The anchoring collaborator and the clock are injected, so tests can use a
// stub ledger and a fixed clock. A Builder holds no per-request state and
// may be shared by concurrent verification requests.
type Builder struct {
	anchorer     anchor.Anchorer
	clock        Clock
	verifierName string
	allowPending bool
}

// Result is the outcome of building one record. AnchorElapsed is the
// wall-clock time the anchoring step took; it is observability data, not
// part of the record. AnchorErr carries the anchoring failure when a
// PENDING record was returned instead of an error.
type Result struct {
	Record        AuthenticityRecord
	AnchorElapsed time.Duration
	AnchorErr     error
}

// NewBuilder creates a Builder using the given anchoring collaborator, the
// system clock and the default verifier name.
func NewBuilder(anchorer anchor.Anchorer) (*Builder, error) {
	if anchorer == nil {
		return nil, fmt.Errorf("anchorer must not be nil")
	}

	return &Builder{
		anchorer:     anchorer,
		clock:        SystemClock(),
		verifierName: DefaultVerifierName,
	}, nil
}

// SetClock replaces the wall-clock source. A nil clock is ignored.
func (b *Builder) SetClock(clock Clock) *Builder {
	if clock != nil {
		b.clock = clock
	}
	return b
}

// SetVerifierName replaces the verifier name carried in records. An empty
// name is ignored.
func (b *Builder) SetVerifierName(name string) *Builder {
	if name != "" {
		b.verifierName = name
	}
	return b
}

// AllowPending selects the recovery policy for anchoring failures. When
// enabled, an unavailable ledger yields a PENDING record with no anchor
// reference (retained by the caller for retry) instead of an error. The
// default is to propagate the failure.
func (b *Builder) AllowPending(allow bool) *Builder {
	b.allowPending = allow
	return b
}

// Build produces one authenticity record for digest.
//
// The wall-clock time is captured first, then the digest is submitted to
// the anchoring collaborator. On success the record carries status
// REGISTERED and the ledger's reference. A record is never returned as
// REGISTERED unless the anchor reference was actually obtained; if ctx is
// canceled during anchoring, no REGISTERED record is produced.
func (b *Builder) Build(ctx context.Context, digest digests.Digest) (*Result, error) {
	if digest.Size() == 0 {
		return nil, fmt.Errorf("digest must not be empty")
	}

	now := b.clock.Now().UTC()

	start := time.Now()
	ref, anchorErr := b.anchorer.Anchor(ctx, digest)
	elapsed := time.Since(start)

	if anchorErr != nil {
		if b.allowPending && errors.Is(anchorErr, anchor.ErrUnavailable) {
			return &Result{
				Record:        b.assemble(digest, now, "", StatusPending),
				AnchorElapsed: elapsed,
				AnchorErr:     anchorErr,
			}, nil
		}
		return nil, fmt.Errorf("anchor digest %s: %w", digest, anchorErr)
	}

	return &Result{
		Record:        b.assemble(digest, now, ref, StatusRegistered),
		AnchorElapsed: elapsed,
	}, nil
}

func (b *Builder) assemble(digest digests.Digest, now time.Time, ref anchor.Reference, status Status) AuthenticityRecord {
	return AuthenticityRecord{
		verifierName:    b.verifierName,
		hashAlgorithm:   AlgorithmDisplayName(digest.Algorithm()),
		contentHash:     digest.Hex(),
		timestampUTC:    now.Format(time.RFC3339),
		timestampUnix:   now.Unix(),
		blockchainBlock: string(ref),
		status:          status,
	}
}
