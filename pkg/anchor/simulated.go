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
	"context"
	"fmt"
	"time"

	"github.com/prooffx0/Prooffx/pkg/hashing/digests"
)

// SimulatedReference is the placeholder reference returned by the simulated
// ledger.
const SimulatedReference Reference = "Simulated Block ID: 1A2B3C4D5E"

// DefaultSimulatedDelay approximates the latency of a real ledger
// transaction.
const DefaultSimulatedDelay = 1 * time.Second

var _ Anchorer = (*SimulatedAnchorer)(nil)

// SimulatedAnchorer is the development stand-in for a real ledger. It waits
// a fixed delay, then returns a fixed placeholder reference for every
// digest. It never stores anything, which also makes it trivially
// idempotent.
type SimulatedAnchorer struct {
	// Delay is the artificial latency before the reference is returned.
	// Zero means no delay.
	Delay time.Duration
}

// NewSimulatedAnchorer creates a SimulatedAnchorer with the default delay.
func NewSimulatedAnchorer() *SimulatedAnchorer {
	return &SimulatedAnchorer{Delay: DefaultSimulatedDelay}
}

// Anchor waits for the configured delay and returns the placeholder
// reference. Cancellation of ctx during the delay aborts with an error
// wrapping ErrUnavailable.
func (a *SimulatedAnchorer) Anchor(ctx context.Context, _ digests.Digest) (Reference, error) {
	if a.Delay > 0 {
		timer := time.NewTimer(a.Delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return "", fmt.Errorf("%w: %v", ErrUnavailable, ctx.Err())
		case <-timer.C:
		}
	}

	return SimulatedReference, nil
}
