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

package hashing

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestConfig_Defaults(t *testing.T) {
	c := NewConfig()

	if got := c.Algorithm(); got != "sha256" {
		t.Errorf("Algorithm() = %q, want %q", got, "sha256")
	}
}

func TestConfig_HashFile(t *testing.T) {
	const want = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"

	path := filepath.Join(t.TempDir(), "abc.txt")
	if err := os.WriteFile(path, []byte("abc"), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	d, err := NewConfig().HashFile(context.Background(), path)
	if err != nil {
		t.Fatalf("HashFile() error = %v", err)
	}

	if got := d.Hex(); got != want {
		t.Errorf("HashFile() = %q, want %q", got, want)
	}
}

func TestConfig_HashFile_Blake2b(t *testing.T) {
	path := filepath.Join(t.TempDir(), "abc.txt")
	if err := os.WriteFile(path, []byte("abc"), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	d, err := NewConfig().SetHashAlgorithm("blake2b").HashFile(context.Background(), path)
	if err != nil {
		t.Fatalf("HashFile() error = %v", err)
	}

	if got := d.Algorithm(); got != "blake2b" {
		t.Errorf("Algorithm() = %q, want %q", got, "blake2b")
	}
	if got := d.Size(); got != 64 {
		t.Errorf("Size() = %d, want 64", got)
	}
}

func TestConfig_HashFile_UnknownAlgorithm(t *testing.T) {
	_, err := NewConfig().SetHashAlgorithm("md5").HashFile(context.Background(), "irrelevant")
	if err == nil {
		t.Fatal("HashFile() succeeded with an unregistered algorithm")
	}
}
