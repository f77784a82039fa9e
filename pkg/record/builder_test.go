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
	"testing"

	"github.com/prooffx0/Prooffx/pkg/anchor"
	"github.com/prooffx0/Prooffx/pkg/hashing/digests"
)

// stubAnchorer records the digest it was given and returns a canned answer.
type stubAnchorer struct {
	ref       anchor.Reference
	err       error
	gotDigest digests.Digest
}

func (s *stubAnchorer) Anchor(_ context.Context, d digests.Digest) (anchor.Reference, error) {
	s.gotDigest = d
	if s.err != nil {
		return "", s.err
	}
	return s.ref, nil
}

func testDigest() digests.Digest {
	return digests.NewDigest("sha256", []byte{0xba, 0x78, 0x16, 0xbf})
}

func TestBuilder_RegisteredRecord(t *testing.T) {
	stub := &stubAnchorer{ref: "block-7"}

	b, err := NewBuilder(stub)
	if err != nil {
		t.Fatalf("NewBuilder() error = %v", err)
	}
	b.SetClock(FixedClock{Instant: fixedInstant}).SetVerifierName("test-verifier")

	res, err := b.Build(context.Background(), testDigest())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	r := res.Record
	if got := r.Status(); got != StatusRegistered {
		t.Errorf("Status() = %q, want %q", got, StatusRegistered)
	}
	if got := r.BlockchainBlock(); got != "block-7" {
		t.Errorf("BlockchainBlock() = %q, want %q", got, "block-7")
	}
	if got := r.VerifierName(); got != "test-verifier" {
		t.Errorf("VerifierName() = %q, want %q", got, "test-verifier")
	}
	if got := r.HashAlgorithm(); got != "SHA-256" {
		t.Errorf("HashAlgorithm() = %q, want %q", got, "SHA-256")
	}
	if got := r.ContentHash(); got != "ba7816bf" {
		t.Errorf("ContentHash() = %q, want %q", got, "ba7816bf")
	}
	if !stub.gotDigest.Equal(testDigest()) {
		t.Errorf("anchorer received digest %s, want %s", stub.gotDigest, testDigest())
	}
	if res.AnchorElapsed < 0 {
		t.Errorf("AnchorElapsed = %v, want non-negative", res.AnchorElapsed)
	}
}

func TestBuilder_AnchorUnavailablePropagates(t *testing.T) {
	stub := &stubAnchorer{err: fmt.Errorf("%w: connection refused", anchor.ErrUnavailable)}

	b, err := NewBuilder(stub)
	if err != nil {
		t.Fatalf("NewBuilder() error = %v", err)
	}

	res, err := b.Build(context.Background(), testDigest())
	if err == nil {
		t.Fatalf("Build() = %+v, want error", res)
	}
	if !errors.Is(err, anchor.ErrUnavailable) {
		t.Errorf("Build() error = %v, want anchor.ErrUnavailable in chain", err)
	}
}

func TestBuilder_PendingPolicy(t *testing.T) {
	anchorErr := fmt.Errorf("%w: timeout", anchor.ErrUnavailable)
	stub := &stubAnchorer{err: anchorErr}

	b, err := NewBuilder(stub)
	if err != nil {
		t.Fatalf("NewBuilder() error = %v", err)
	}
	b.SetClock(FixedClock{Instant: fixedInstant}).AllowPending(true)

	res, err := b.Build(context.Background(), testDigest())
	if err != nil {
		t.Fatalf("Build() error = %v, want PENDING record", err)
	}

	if got := res.Record.Status(); got != StatusPending {
		t.Errorf("Status() = %q, want %q", got, StatusPending)
	}
	if got := res.Record.BlockchainBlock(); got != "" {
		t.Errorf("BlockchainBlock() = %q for PENDING record, want empty", got)
	}
	if !errors.Is(res.AnchorErr, anchor.ErrUnavailable) {
		t.Errorf("AnchorErr = %v, want anchor.ErrUnavailable in chain", res.AnchorErr)
	}
}

func TestBuilder_PendingPolicyDoesNotSwallowOtherErrors(t *testing.T) {
	stub := &stubAnchorer{err: errors.New("malformed digest rejected")}

	b, err := NewBuilder(stub)
	if err != nil {
		t.Fatalf("NewBuilder() error = %v", err)
	}
	b.AllowPending(true)

	if _, err := b.Build(context.Background(), testDigest()); err == nil {
		t.Error("Build() returned a record for a non-availability anchor error")
	}
}

func TestBuilder_CanceledAnchoring(t *testing.T) {
	b, err := NewBuilder(&anchor.SimulatedAnchorer{Delay: anchor.DefaultSimulatedDelay})
	if err != nil {
		t.Fatalf("NewBuilder() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := b.Build(ctx, testDigest())
	if err == nil {
		t.Fatalf("Build() = %+v with canceled context, want error", res)
	}
}

func TestBuilder_EmptyDigestRejected(t *testing.T) {
	b, err := NewBuilder(&stubAnchorer{ref: "block-1"})
	if err != nil {
		t.Fatalf("NewBuilder() error = %v", err)
	}

	if _, err := b.Build(context.Background(), digests.Digest{}); err == nil {
		t.Error("Build() accepted an empty digest")
	}
}

func TestNewBuilder_NilAnchorer(t *testing.T) {
	if _, err := NewBuilder(nil); err == nil {
		t.Error("NewBuilder() accepted a nil anchorer")
	}
}
