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

package options

import (
	"time"

	"github.com/prooffx0/Prooffx/pkg/anchor"
	"github.com/prooffx0/Prooffx/pkg/record"
	"github.com/spf13/cobra"
)

// VerifyOptions defines the flags for the verify command.
type VerifyOptions struct {
	// HashAlgorithm selects the fingerprint algorithm by registry name.
	HashAlgorithm string
	// ChunkSize sets the read chunk size in bytes; 0 keeps the default.
	ChunkSize int
	// AnchorEndpoint is the URL of an anchoring gateway. Empty selects the
	// simulated ledger.
	AnchorEndpoint string
	// AnchorDelay is the artificial latency of the simulated ledger.
	AnchorDelay time.Duration
	// AllowPending returns a PENDING record instead of failing when the
	// ledger is unavailable.
	AllowPending bool
	// VerifierName overrides the verifier name carried in records.
	VerifierName string
}

var _ FlagAdder = (*VerifyOptions)(nil)

// AddFlags adds the verification flags to the cobra command.
func (o *VerifyOptions) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.HashAlgorithm, "hash-algorithm", "sha256",
		"fingerprint algorithm (sha256, blake2b)")
	cmd.Flags().IntVar(&o.ChunkSize, "chunk-size", 0,
		"bytes read per chunk while hashing; 0 uses the 64 KiB default")
	cmd.Flags().StringVar(&o.AnchorEndpoint, "anchor-endpoint", "",
		"URL of the anchoring gateway; empty uses the simulated ledger")
	cmd.Flags().DurationVar(&o.AnchorDelay, "anchor-delay", anchor.DefaultSimulatedDelay,
		"artificial latency of the simulated ledger")
	cmd.Flags().BoolVar(&o.AllowPending, "allow-pending", false,
		"emit a PENDING record instead of failing when the ledger is unavailable")
	cmd.Flags().StringVar(&o.VerifierName, "verifier-name", record.DefaultVerifierName,
		"verifier name carried in the record")
}

// NewAnchorer builds the anchoring collaborator selected by the options.
func (o *VerifyOptions) NewAnchorer() (anchor.Anchorer, error) {
	if o.AnchorEndpoint != "" {
		return anchor.NewHTTPAnchorer(o.AnchorEndpoint, nil)
	}
	return &anchor.SimulatedAnchorer{Delay: o.AnchorDelay}, nil
}
