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

// Package hashing is the high-level entry point for fingerprinting content.
//
// A Config selects the algorithm and read granularity; HashFile streams the
// file through the corresponding engine and returns its Digest.
package hashing

import (
	"context"
	"fmt"

	"github.com/prooffx0/Prooffx/pkg/hashing/digests"
	hashengines "github.com/prooffx0/Prooffx/pkg/hashing/engines"
	hashio "github.com/prooffx0/Prooffx/pkg/hashing/engines/io"
	_ "github.com/prooffx0/Prooffx/pkg/hashing/engines/memory" // register default engines
)

// DefaultAlgorithm is the fingerprint algorithm used when none is selected.
const DefaultAlgorithm = "sha256"

// Config holds the configuration for fingerprinting content.
type Config struct {
	// Hash algorithm name as registered with the engine registry
	// (e.g. "sha256", "blake2b")
	hashAlgorithm string

	// Bytes read per chunk while streaming files; values < 1 select the
	// engine default (64 KiB)
	chunkSize int
}

// NewConfig creates a hashing configuration with defaults: SHA-256 and the
// default chunk size.
func NewConfig() *Config {
	return &Config{
		hashAlgorithm: DefaultAlgorithm,
		chunkSize:     0,
	}
}

// SetHashAlgorithm selects the fingerprint algorithm by registry name.
func (c *Config) SetHashAlgorithm(algorithm string) *Config {
	c.hashAlgorithm = algorithm
	return c
}

// SetChunkSize sets the chunk size for file reading.
func (c *Config) SetChunkSize(size int) *Config {
	c.chunkSize = size
	return c
}

// Algorithm returns the configured algorithm name.
func (c *Config) Algorithm() string {
	return c.hashAlgorithm
}

// HashFile fingerprints the file at path and returns its Digest.
//
// The file is streamed in chunks; arbitrary sizes are supported without
// loading the content into memory. ctx cancels the read between chunks.
// Each call builds a fresh engine, so no digest from a previous run can
// mask a changed file, and concurrent calls share no state.
func (c *Config) HashFile(ctx context.Context, path string) (digests.Digest, error) {
	engine, err := hashengines.Create(c.hashAlgorithm)
	if err != nil {
		return digests.Digest{}, err
	}

	hasher, err := hashio.NewFileHasher(path, engine, c.chunkSize)
	if err != nil {
		return digests.Digest{}, fmt.Errorf("configure file hasher: %w", err)
	}

	return hasher.Compute(ctx)
}
