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

// Package io provides hash engines that fingerprint file contents.
package io

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/prooffx0/Prooffx/pkg/hashing/digests"
	hashengines "github.com/prooffx0/Prooffx/pkg/hashing/engines"
)

// DefaultChunkSize is the read size used when none is configured. 64 KiB
// keeps memory bounded regardless of file size.
const DefaultChunkSize = 64 * 1024

// FileHasher fingerprints an entire file by streaming it into an inner
// StreamingHashEngine. The file is read exactly once, in fixed-size chunks,
// and is never loaded into memory as a whole. A FileHasher owns no shared
// state, so independent instances may run concurrently.
type FileHasher struct {
	filePath      string
	contentHasher hashengines.StreamingHashEngine
	chunkSize     int
}

// NewFileHasher constructs a FileHasher.
//
//   - filePath: path to the file to hash
//   - contentHasher: the StreamingHashEngine used to hash file contents
//   - chunkSize: bytes read per chunk; values < 1 select DefaultChunkSize
func NewFileHasher(
	filePath string,
	contentHasher hashengines.StreamingHashEngine,
	chunkSize int,
) (*FileHasher, error) {
	if filePath == "" {
		return nil, fmt.Errorf("file path must be non-empty")
	}

	if contentHasher == nil {
		return nil, fmt.Errorf("content hasher must not be nil")
	}

	if chunkSize < 1 {
		chunkSize = DefaultChunkSize
	}

	return &FileHasher{
		filePath:      filePath,
		contentHasher: contentHasher,
		chunkSize:     chunkSize,
	}, nil
}

// SetFile changes the file that will be hashed on the next Compute call.
func (h *FileHasher) SetFile(filePath string) error {
	if filePath == "" {
		return fmt.Errorf("file path must be non-empty")
	}
	h.filePath = filePath
	return nil
}

// DigestName returns the inner content hasher's algorithm name.
func (h *FileHasher) DigestName() string {
	return h.contentHasher.DigestName()
}

// DigestSize is delegated to the inner content hasher.
func (h *FileHasher) DigestSize() int {
	return h.contentHasher.DigestSize()
}

// Compute hashes the entire file and returns its Digest.
//
// The hash state is reset before each computation, so repeated calls over a
// byte-identical file always return the identical digest and a changed file
// is never masked by a previous run. Cancellation of ctx between chunks
// aborts the read; the open handle is released and no partial digest is
// returned. I/O errors are propagated wrapped, preserving os.IsNotExist
// semantics via errors.Is.
func (h *FileHasher) Compute(ctx context.Context) (digests.Digest, error) {
	h.contentHasher.Reset(nil)

	f, err := os.Open(h.filePath)
	if err != nil {
		return digests.Digest{}, fmt.Errorf("open file %q: %w", h.filePath, err)
	}
	defer f.Close()

	buf := make([]byte, h.chunkSize)
	for {
		if err := ctx.Err(); err != nil {
			return digests.Digest{}, fmt.Errorf("hashing %q canceled: %w", h.filePath, err)
		}

		n, err := f.Read(buf)
		if n > 0 {
			h.contentHasher.Update(buf[:n])
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			return digests.Digest{}, fmt.Errorf("read file %q: %w", h.filePath, err)
		}
	}

	d, err := h.contentHasher.Compute()
	if err != nil {
		return digests.Digest{}, fmt.Errorf("compute digest: %w", err)
	}

	return d, nil
}
