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

package io

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/prooffx0/Prooffx/pkg/hashing/engines/memory"
)

const (
	sha256Empty = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	sha256ABC   = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
)

func writeFixture(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestFileHasher_KnownDigest(t *testing.T) {
	path := writeFixture(t, "abc.txt", []byte("abc"))

	h, err := NewFileHasher(path, memory.NewSHA256Engine(nil), 0)
	if err != nil {
		t.Fatalf("NewFileHasher() error = %v", err)
	}

	d, err := h.Compute(context.Background())
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	if got := d.Hex(); got != sha256ABC {
		t.Errorf("Compute() = %q, want %q", got, sha256ABC)
	}
	if got := d.Algorithm(); got != "sha256" {
		t.Errorf("Algorithm() = %q, want %q", got, "sha256")
	}
}

func TestFileHasher_EmptyFile(t *testing.T) {
	path := writeFixture(t, "empty", nil)

	h, err := NewFileHasher(path, memory.NewSHA256Engine(nil), 0)
	if err != nil {
		t.Fatalf("NewFileHasher() error = %v", err)
	}

	d, err := h.Compute(context.Background())
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	if got := d.Hex(); got != sha256Empty {
		t.Errorf("Compute() = %q, want %q", got, sha256Empty)
	}
}

func TestFileHasher_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist")

	h, err := NewFileHasher(path, memory.NewSHA256Engine(nil), 0)
	if err != nil {
		t.Fatalf("NewFileHasher() error = %v", err)
	}

	_, err = h.Compute(context.Background())
	if err == nil {
		t.Fatal("Compute() succeeded for a missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Compute() error = %v, want fs.ErrNotExist in chain", err)
	}
}

func TestFileHasher_ChunkingDoesNotChangeDigest(t *testing.T) {
	// Larger than one chunk, so the streaming path is exercised.
	content := bytes.Repeat([]byte("0123456789abcdef"), 32*1024) // 512 KiB
	path := writeFixture(t, "large.bin", content)

	var digests []string
	for _, chunkSize := range []int{7, 4096, DefaultChunkSize, len(content) + 1} {
		h, err := NewFileHasher(path, memory.NewSHA256Engine(nil), chunkSize)
		if err != nil {
			t.Fatalf("NewFileHasher(chunkSize=%d) error = %v", chunkSize, err)
		}
		d, err := h.Compute(context.Background())
		if err != nil {
			t.Fatalf("Compute(chunkSize=%d) error = %v", chunkSize, err)
		}
		digests = append(digests, d.Hex())
	}

	for i := 1; i < len(digests); i++ {
		if digests[i] != digests[0] {
			t.Errorf("digest differs across chunk sizes: %q vs %q", digests[i], digests[0])
		}
	}
}

func TestFileHasher_SingleByteMutationChangesDigest(t *testing.T) {
	content := bytes.Repeat([]byte("fixture"), 1024)
	original := writeFixture(t, "original", content)

	mutated := make([]byte, len(content))
	copy(mutated, content)
	mutated[len(mutated)/2] ^= 0x01
	changed := writeFixture(t, "mutated", mutated)

	hashFile := func(path string) string {
		t.Helper()
		h, err := NewFileHasher(path, memory.NewSHA256Engine(nil), 0)
		if err != nil {
			t.Fatalf("NewFileHasher() error = %v", err)
		}
		d, err := h.Compute(context.Background())
		if err != nil {
			t.Fatalf("Compute() error = %v", err)
		}
		return d.Hex()
	}

	if hashFile(original) == hashFile(changed) {
		t.Error("single-byte mutation produced an identical digest")
	}
}

func TestFileHasher_RepeatedComputeIsDeterministic(t *testing.T) {
	path := writeFixture(t, "stable", []byte("stable content"))

	h, err := NewFileHasher(path, memory.NewSHA256Engine(nil), 0)
	if err != nil {
		t.Fatalf("NewFileHasher() error = %v", err)
	}

	first, err := h.Compute(context.Background())
	if err != nil {
		t.Fatalf("first Compute() error = %v", err)
	}
	second, err := h.Compute(context.Background())
	if err != nil {
		t.Fatalf("second Compute() error = %v", err)
	}

	if !first.Equal(second) {
		t.Errorf("repeated Compute() returned different digests: %s vs %s", first, second)
	}
}

func TestFileHasher_SetFilePicksUpNewContent(t *testing.T) {
	first := writeFixture(t, "first", []byte("abc"))
	second := writeFixture(t, "second", []byte("not abc"))

	h, err := NewFileHasher(first, memory.NewSHA256Engine(nil), 0)
	if err != nil {
		t.Fatalf("NewFileHasher() error = %v", err)
	}

	d1, err := h.Compute(context.Background())
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if got := d1.Hex(); got != sha256ABC {
		t.Fatalf("Compute() = %q, want %q", got, sha256ABC)
	}

	if err := h.SetFile(second); err != nil {
		t.Fatalf("SetFile() error = %v", err)
	}
	d2, err := h.Compute(context.Background())
	if err != nil {
		t.Fatalf("Compute() after SetFile() error = %v", err)
	}
	if d1.Equal(d2) {
		t.Error("digest unchanged after switching to different content")
	}
}

func TestFileHasher_CanceledContext(t *testing.T) {
	path := writeFixture(t, "content", []byte("abc"))

	h, err := NewFileHasher(path, memory.NewSHA256Engine(nil), 0)
	if err != nil {
		t.Fatalf("NewFileHasher() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = h.Compute(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Compute() error = %v, want context.Canceled in chain", err)
	}
}

func TestFileHasher_InvalidConstruction(t *testing.T) {
	if _, err := NewFileHasher("", memory.NewSHA256Engine(nil), 0); err == nil {
		t.Error("NewFileHasher() accepted an empty path")
	}
	if _, err := NewFileHasher("some-path", nil, 0); err == nil {
		t.Error("NewFileHasher() accepted a nil content hasher")
	}
}
