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

package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/prooffx0/Prooffx/cmd/ludi-verifier/cli/options"
	"github.com/prooffx0/Prooffx/pkg/logging"
	"github.com/prooffx0/Prooffx/pkg/verify"
)

// DefaultSamplePath is the file verified when no argument is given. It is
// created with sample content if absent, so a bare invocation always has
// something to fingerprint.
const DefaultSamplePath = "sample_content.txt"

const sampleContent = "This is sample content for the LUDI verifier. " +
	"Its fingerprint is assumed to be permanently recorded on the ledger.\n"

// Verify creates the verify subcommand.
func Verify() *cobra.Command {
	o := &options.VerifyOptions{}

	long := `Produce an existence proof for the content file at FILE.

The file is fingerprinted with the selected hash algorithm, the digest is
anchored on the configured ledger, and the resulting authenticity record is
printed as JSON on stdout.

Without FILE, a bootstrap sample file (` + DefaultSamplePath + `) is
verified, created first if it does not exist.`

	cmd := &cobra.Command{
		Use:   "verify [FILE]",
		Short: "Produce an existence proof for a content file.",
		Long:  long,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, o, args)
		},
	}

	o.AddFlags(cmd)
	return cmd
}

func runVerify(cmd *cobra.Command, o *options.VerifyOptions, args []string) error {
	logger := ro.NewLogger()

	var path string
	if len(args) == 1 {
		path = args[0]
	} else {
		path = DefaultSamplePath
		if err := bootstrapSample(path, logger); err != nil {
			return err
		}
	}

	anchorer, err := o.NewAnchorer()
	if err != nil {
		return err
	}

	cfg := verify.NewConfig().
		SetHashAlgorithm(o.HashAlgorithm).
		SetChunkSize(o.ChunkSize).
		SetAnchorer(anchorer).
		SetVerifierName(o.VerifierName).
		AllowPending(o.AllowPending).
		SetLogger(logger)

	ctx, cancel := context.WithTimeout(cmd.Context(), ro.Timeout)
	defer cancel()

	logger.Info("verifying %s", path)

	rec, err := cfg.Verify(ctx, path)
	if err != nil {
		var verifyErr *verify.VerificationError
		if errors.As(err, &verifyErr) {
			logger.Error("verification failed (%s): %s", verifyErr.Type, verifyErr.Message)
		}
		return err
	}

	data, err := json.MarshalIndent(rec, "", "    ")
	if err != nil {
		return fmt.Errorf("serialize record: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

// bootstrapSample creates the default sample file if it does not exist.
func bootstrapSample(path string, logger logging.Logger) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat sample file %q: %w", path, err)
	}

	if err := os.WriteFile(path, []byte(sampleContent), 0o644); err != nil {
		return fmt.Errorf("create sample file %q: %w", path, err)
	}
	logger.Info("created sample file %q", path)
	return nil
}
