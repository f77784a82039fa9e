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

// Package hashengines defines the interfaces for fingerprint computation.
//
// A HashEngine produces a Digest. Streaming engines additionally accept data
// incrementally, which is what the file hasher uses to fingerprint content
// of unbounded size without loading it into memory.
package hashengines

import (
	"github.com/prooffx0/Prooffx/pkg/hashing/digests"
)

// HashEngine is the core interface for computing a content fingerprint.
type HashEngine interface {
	// Compute finalizes the computation and returns the resulting digest.
	Compute() (digests.Digest, error)

	// DigestName returns the canonical name of the algorithm. The name must
	// include every parameter that affects the output, so a verifier can
	// reproduce the digest from the name alone.
	DigestName() string

	// DigestSize returns the size in bytes of digests produced by this
	// engine. It must match the Size() of the Digest returned by Compute.
	DigestSize() int
}

// Streaming is the interface for feeding data to an engine incrementally.
//
// Kept separate from HashEngine so that one-shot engines do not have to
// implement it.
type Streaming interface {
	// Update appends additional bytes to the data being hashed.
	Update(data []byte)

	// Reset clears the hash state and optionally seeds it with new data.
	Reset(data []byte)
}

// StreamingHashEngine combines HashEngine and Streaming for incremental
// hashing.
type StreamingHashEngine interface {
	HashEngine
	Streaming
}
