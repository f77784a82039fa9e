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

package hashengines_test

import (
	"testing"

	hashengines "github.com/prooffx0/Prooffx/pkg/hashing/engines"
	"github.com/prooffx0/Prooffx/pkg/hashing/engines/memory"
)

func TestCreate(t *testing.T) {
	tests := []struct {
		name      string
		algorithm string
		wantErr   bool
	}{
		{"sha256", "sha256", false},
		{"blake2b", "blake2b", false},
		{"unsupported", "md5", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, err := hashengines.Create(tt.algorithm)
			if (err != nil) != tt.wantErr {
				t.Errorf("Create() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && engine == nil {
				t.Error("Create() returned nil engine without error")
			}
		})
	}
}

func TestRegister_Duplicate(t *testing.T) {
	factory := func() (hashengines.StreamingHashEngine, error) {
		return memory.NewSHA256Engine(nil), nil
	}

	if err := hashengines.Register("registry-test-algo", factory); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := hashengines.Register("registry-test-algo", factory); err == nil {
		t.Error("Register() accepted a duplicate algorithm name")
	}
}

func TestRegister_Invalid(t *testing.T) {
	factory := func() (hashengines.StreamingHashEngine, error) {
		return memory.NewSHA256Engine(nil), nil
	}

	if err := hashengines.Register("", factory); err == nil {
		t.Error("Register() accepted an empty algorithm name")
	}
	if err := hashengines.Register("registry-test-nil", nil); err == nil {
		t.Error("Register() accepted a nil factory")
	}
}

func TestSupportedAlgorithms_IncludesDefaults(t *testing.T) {
	supported := hashengines.SupportedAlgorithms()

	want := map[string]bool{"sha256": false, "blake2b": false}
	for _, algo := range supported {
		if _, ok := want[algo]; ok {
			want[algo] = true
		}
	}
	for algo, seen := range want {
		if !seen {
			t.Errorf("SupportedAlgorithms() missing %q (got %v)", algo, supported)
		}
	}
}
