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

package anchor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prooffx0/Prooffx/pkg/hashing/digests"
)

// DefaultHTTPTimeout bounds a single anchoring request when the caller's
// context carries no deadline of its own.
const DefaultHTTPTimeout = 30 * time.Second

var _ Anchorer = (*HTTPAnchorer)(nil)

// HTTPAnchorer submits digests to an anchoring gateway over HTTP. The
// gateway is expected to deduplicate repeated submissions of the same
// digest, which keeps retries of a whole verification safe.
type HTTPAnchorer struct {
	endpoint string
	client   *http.Client
}

// anchorRequest is the wire form of a submission.
type anchorRequest struct {
	HashAlgorithm string `json:"hash_algorithm"`
	ContentHash   string `json:"content_hash"`
}

// anchorResponse is the wire form of the gateway's answer.
type anchorResponse struct {
	BlockID string `json:"block_id"`
}

// NewHTTPAnchorer creates an HTTPAnchorer targeting endpoint. If client is
// nil, a client with DefaultHTTPTimeout is used.
func NewHTTPAnchorer(endpoint string, client *http.Client) (*HTTPAnchorer, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("anchoring endpoint must be non-empty")
	}

	if client == nil {
		client = &http.Client{Timeout: DefaultHTTPTimeout}
	}

	return &HTTPAnchorer{
		endpoint: endpoint,
		client:   client,
	}, nil
}

// Anchor POSTs the digest to the gateway and returns the block reference it
// assigned. Transport failures, timeouts and non-2xx answers are reported
// as errors wrapping ErrUnavailable so callers can distinguish a dead
// ledger from a bad request on their side.
func (a *HTTPAnchorer) Anchor(ctx context.Context, digest digests.Digest) (Reference, error) {
	body, err := json.Marshal(anchorRequest{
		HashAlgorithm: digest.Algorithm(),
		ContentHash:   digest.Hex(),
	})
	if err != nil {
		return "", fmt.Errorf("encode anchor request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build anchor request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: gateway returned status %d", ErrUnavailable, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("%w: read gateway response: %v", ErrUnavailable, err)
	}

	var parsed anchorResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("decode gateway response: %w", err)
	}
	if parsed.BlockID == "" {
		return "", fmt.Errorf("gateway response is missing block_id")
	}

	return Reference(parsed.BlockID), nil
}
