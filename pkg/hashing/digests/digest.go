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

// Package digests provides the type used to represent content fingerprints.
//
// A Digest pairs the algorithm name with the computed hash value. It is
// effectively immutable: fields are unexported and both the constructor and
// the accessors defensively copy the underlying bytes.
package digests

import (
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

// Digest is a computed content fingerprint.
//
// Two byte-identical inputs always produce equal digests for the same
// algorithm; a single differing input byte produces an unrelated digest.
// The zero value is an empty digest with no algorithm.
type Digest struct {
	algorithm string // canonical engine name, e.g. "sha256"
	value     []byte // raw digest bytes
}

// NewDigest creates a Digest for the given algorithm name and raw value.
//
// The value slice is copied so later mutations by the caller cannot change
// the digest.
func NewDigest(algorithm string, value []byte) Digest {
	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	return Digest{
		algorithm: algorithm,
		value:     valueCopy,
	}
}

// Algorithm returns the canonical name of the algorithm that produced this
// digest (e.g. "sha256"). The name includes any parameters that influence
// the output, so it is sufficient to reproduce the computation.
func (d Digest) Algorithm() string {
	return d.algorithm
}

// Value returns a copy of the raw digest bytes.
func (d Digest) Value() []byte {
	valueCopy := make([]byte, len(d.value))
	copy(valueCopy, d.value)
	return valueCopy
}

// Hex returns the lowercase hexadecimal encoding of the digest value. This
// is the form carried in authenticity records.
func (d Digest) Hex() string {
	return hex.EncodeToString(d.value)
}

// Size returns the length in bytes of the digest value.
func (d Digest) Size() int {
	return len(d.value)
}

// String formats the digest as "algorithm:hexvalue".
func (d Digest) String() string {
	return fmt.Sprintf("%s:%s", d.algorithm, d.Hex())
}

// Equal reports whether two digests have the same algorithm and value.
// The value comparison runs in constant time.
func (d Digest) Equal(other Digest) bool {
	if d.algorithm != other.algorithm {
		return false
	}
	if len(d.value) != len(other.value) {
		return false
	}
	return subtle.ConstantTimeCompare(d.value, other.value) == 1
}
