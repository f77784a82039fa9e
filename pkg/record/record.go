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

// Package record builds and serializes authenticity records.
//
// An AuthenticityRecord is the existence proof for a piece of content: its
// fingerprint, the wall-clock time of verification, and the ledger anchor
// reference. Records are immutable once constructed and have no persistence
// of their own; callers store or transmit the serialized form.
package record

import (
	"encoding/json"
	"fmt"
)

// Status enumerates the verification states a record can carry.
type Status string

const (
	// StatusPending marks a record whose digest has not been anchored yet.
	StatusPending Status = "PENDING"
	// StatusRegistered marks a record whose digest has been anchored on the
	// ledger.
	StatusRegistered Status = "REGISTERED"
)

// Valid reports whether s is a known status value.
func (s Status) Valid() bool {
	return s == StatusPending || s == StatusRegistered
}

// AlgorithmDisplayName maps a canonical engine name to the display form
// carried in records (e.g. "sha256" to "SHA-256"). Unknown names pass
// through unchanged.
func AlgorithmDisplayName(canonical string) string {
	switch canonical {
	case "sha256":
		return "SHA-256"
	case "blake2b":
		return "BLAKE2b-512"
	default:
		return canonical
	}
}

// AuthenticityRecord is the immutable existence proof for one verification
// request. Fields are unexported; read access goes through the accessors
// and serialization through MarshalJSON.
type AuthenticityRecord struct {
	verifierName    string
	hashAlgorithm   string
	contentHash     string
	timestampUTC    string
	timestampUnix   int64
	blockchainBlock string
	status          Status
}

// recordWire is the canonical machine-readable encoding. All fields are
// always present; key order is irrelevant to consumers.
type recordWire struct {
	VerifierName       string `json:"verifier_name"`
	HashAlgorithm      string `json:"hash_algorithm"`
	ContentHash        string `json:"content_hash"`
	TimestampUTC       string `json:"timestamp_utc"`
	TimestampUnix      int64  `json:"timestamp_unix"`
	BlockchainBlock    string `json:"blockchain_block"`
	VerificationStatus string `json:"verification_status"`
}

// VerifierName returns the name of the verifier that produced this record.
func (r AuthenticityRecord) VerifierName() string { return r.verifierName }

// HashAlgorithm returns the display name of the fingerprint algorithm
// (e.g. "SHA-256").
func (r AuthenticityRecord) HashAlgorithm() string { return r.hashAlgorithm }

// ContentHash returns the lowercase hex encoding of the content fingerprint.
func (r AuthenticityRecord) ContentHash() string { return r.contentHash }

// TimestampUTC returns the verification time as an ISO-8601 UTC string.
func (r AuthenticityRecord) TimestampUTC() string { return r.timestampUTC }

// TimestampUnix returns the verification time as Unix epoch seconds.
func (r AuthenticityRecord) TimestampUnix() int64 { return r.timestampUnix }

// BlockchainBlock returns the ledger's anchor reference, or the empty
// string for a PENDING record.
func (r AuthenticityRecord) BlockchainBlock() string { return r.blockchainBlock }

// Status returns the verification status of the record.
func (r AuthenticityRecord) Status() Status { return r.status }

// Equal reports whether two records carry identical fields.
func (r AuthenticityRecord) Equal(other AuthenticityRecord) bool {
	return r == other
}

// MarshalJSON encodes the record in its canonical wire form.
func (r AuthenticityRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(recordWire{
		VerifierName:       r.verifierName,
		HashAlgorithm:      r.hashAlgorithm,
		ContentHash:        r.contentHash,
		TimestampUTC:       r.timestampUTC,
		TimestampUnix:      r.timestampUnix,
		BlockchainBlock:    r.blockchainBlock,
		VerificationStatus: string(r.status),
	})
}

// UnmarshalJSON decodes a record from its canonical wire form. The status
// must be a known value; everything else is taken as-is, since the record
// is opaque to consumers beyond its field contract.
func (r *AuthenticityRecord) UnmarshalJSON(data []byte) error {
	var wire recordWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("decode authenticity record: %w", err)
	}

	status := Status(wire.VerificationStatus)
	if !status.Valid() {
		return fmt.Errorf("unknown verification status %q", wire.VerificationStatus)
	}

	*r = AuthenticityRecord{
		verifierName:    wire.VerifierName,
		hashAlgorithm:   wire.HashAlgorithm,
		contentHash:     wire.ContentHash,
		timestampUTC:    wire.TimestampUTC,
		timestampUnix:   wire.TimestampUnix,
		blockchainBlock: wire.BlockchainBlock,
		status:          status,
	}
	return nil
}
