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

package memory

import (
	"crypto/sha256"
	"hash"

	hashengines "github.com/prooffx0/Prooffx/pkg/hashing/engines"
)

func init() {
	hashengines.MustRegister("sha256", func() (hashengines.StreamingHashEngine, error) {
		return NewSHA256Engine(nil), nil
	})
}

// SHA256Engine is a StreamingHashEngine over crypto/sha256. This is the
// default fingerprint algorithm.
type SHA256Engine struct {
	*GenericHashEngine
}

// NewSHA256Engine constructs a new SHA-256 engine.
// If initialData is non-empty, it is hashed immediately.
func NewSHA256Engine(initialData []byte) *SHA256Engine {
	// The factory cannot fail, so neither can the constructor.
	inner, _ := NewGenericHashEngine(
		"sha256",
		sha256.Size,
		func() (hash.Hash, error) { return sha256.New(), nil },
		initialData,
	)
	return &SHA256Engine{GenericHashEngine: inner}
}
