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

// Package verify orchestrates a single existence-proof request: fingerprint
// the content source, anchor the digest, assemble the authenticity record.
//
// A request moves through the phases hashing, anchoring, registered; a
// failure is terminal and classified by ErrorType (NotFound, IOFailure,
// AnchorUnavailable). Requests are stateless and independent: nothing is
// cached between calls and concurrent requests share no mutable state.
package verify

import (
	"context"
	"errors"
	"io/fs"

	"github.com/prooffx0/Prooffx/pkg/anchor"
	"github.com/prooffx0/Prooffx/pkg/hashing"
	"github.com/prooffx0/Prooffx/pkg/hashing/digests"
	"github.com/prooffx0/Prooffx/pkg/logging"
	"github.com/prooffx0/Prooffx/pkg/record"
	"github.com/prooffx0/Prooffx/pkg/tracing"
)

// Config assembles the collaborators for verification requests and runs
// them. A Config may serve many requests, sequentially or concurrently;
// per-request state (read handle, hash state) is created fresh each call.
type Config struct {
	hashingConfig *hashing.Config
	anchorer      anchor.Anchorer
	clock         record.Clock
	verifierName  string
	allowPending  bool
	logger        logging.Logger
}

// NewConfig creates a verification configuration with defaults: SHA-256
// fingerprints, the simulated anchorer, the system clock and an info-level
// logger.
func NewConfig() *Config {
	return &Config{
		hashingConfig: hashing.NewConfig(),
		anchorer:      anchor.NewSimulatedAnchorer(),
		clock:         record.SystemClock(),
		verifierName:  record.DefaultVerifierName,
		logger:        logging.NewLogger(false),
	}
}

// SetHashAlgorithm selects the fingerprint algorithm by registry name.
func (c *Config) SetHashAlgorithm(algorithm string) *Config {
	c.hashingConfig.SetHashAlgorithm(algorithm)
	return c
}

// SetChunkSize sets the read chunk size for streaming the source.
func (c *Config) SetChunkSize(size int) *Config {
	c.hashingConfig.SetChunkSize(size)
	return c
}

// SetAnchorer replaces the anchoring collaborator. A nil anchorer is
// ignored.
func (c *Config) SetAnchorer(a anchor.Anchorer) *Config {
	if a != nil {
		c.anchorer = a
	}
	return c
}

// SetClock replaces the wall-clock source used for record timestamps. A nil
// clock is ignored.
func (c *Config) SetClock(clock record.Clock) *Config {
	if clock != nil {
		c.clock = clock
	}
	return c
}

// SetVerifierName sets the verifier name carried in records.
func (c *Config) SetVerifierName(name string) *Config {
	if name != "" {
		c.verifierName = name
	}
	return c
}

// AllowPending selects the recovery policy for anchoring failures: when
// enabled, an unavailable ledger yields a PENDING record instead of an
// AnchorUnavailable error. Off by default.
func (c *Config) AllowPending(allow bool) *Config {
	c.allowPending = allow
	return c
}

// SetLogger replaces the logger. A nil logger is ignored.
func (c *Config) SetLogger(logger logging.Logger) *Config {
	if logger != nil {
		c.logger = logger
	}
	return c
}

// Verify runs one complete existence-proof request for the file at path.
//
// The source is streamed through the fingerprint engine, the digest is
// anchored, and the resulting authenticity record is returned. ctx bounds
// both the read loop and the anchoring call; on cancellation no REGISTERED
// record is produced. Errors are returned as *VerificationError so callers
// can distinguish a missing source, a failed read and an unreachable
// ledger.
func (c *Config) Verify(ctx context.Context, path string) (record.AuthenticityRecord, error) {
	var rec record.AuthenticityRecord

	err := tracing.Run(ctx, "Verify", map[string]interface{}{
		"proofx.source_path":    path,
		"proofx.hash_algorithm": c.hashingConfig.Algorithm(),
	}, func(ctx context.Context) error {
		digest, err := c.hashSource(ctx, path)
		if err != nil {
			return err
		}

		c.logger.Debug("content fingerprint computed: %s", digest)

		rec, err = c.buildRecord(ctx, path, digest)
		return err
	})
	if err != nil {
		return record.AuthenticityRecord{}, err
	}
	return rec, nil
}

// hashSource is the hashing phase. Failures here are terminal: NotFound
// when the source does not exist, IOFailure otherwise.
func (c *Config) hashSource(ctx context.Context, path string) (digests.Digest, error) {
	var digest digests.Digest

	err := tracing.Run(ctx, "Hash", nil, func(ctx context.Context) error {
		var err error
		digest, err = c.hashingConfig.HashFile(ctx, path)
		return err
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return digests.Digest{}, NewVerificationError(ErrTypeNotFound,
				path, "content source does not exist", err)
		}
		return digests.Digest{}, NewVerificationError(ErrTypeIO,
			path, "failed to read content source", err)
	}

	return digest, nil
}

// buildRecord is the anchoring phase. The anchoring latency is logged so
// callers can observe it; it is not part of the record itself.
func (c *Config) buildRecord(ctx context.Context, path string, digest digests.Digest) (record.AuthenticityRecord, error) {
	builder, err := record.NewBuilder(c.anchorer)
	if err != nil {
		return record.AuthenticityRecord{}, NewVerificationError(ErrTypeUnknown,
			path, "failed to configure record builder", err)
	}
	builder.SetClock(c.clock).SetVerifierName(c.verifierName).AllowPending(c.allowPending)

	var res *record.Result
	err = tracing.Run(ctx, "Anchor", map[string]interface{}{
		"proofx.content_hash": digest.Hex(),
	}, func(ctx context.Context) error {
		var err error
		res, err = builder.Build(ctx, digest)
		return err
	})
	if err != nil {
		return record.AuthenticityRecord{}, NewVerificationError(ErrTypeAnchorUnavailable,
			path, "anchoring step failed", err)
	}

	c.logger.Info("anchoring completed in %s (status: %s)", res.AnchorElapsed, res.Record.Status())
	if res.AnchorErr != nil {
		c.logger.Warn("digest not anchored, record left PENDING: %v", res.AnchorErr)
	}

	return res.Record, nil
}
