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

// Package options defines the command-line options and flags for the
// ludi-verifier CLI.
package options

import (
	"time"

	"github.com/prooffx0/Prooffx/pkg/logging"
	"github.com/spf13/cobra"
)

// FlagAdder is implemented by any flag group that can register itself to a
// cobra command.
type FlagAdder interface {
	AddFlags(cmd *cobra.Command)
}

// DefaultTimeout bounds a whole verification request, including the
// anchoring call.
const DefaultTimeout = 2 * time.Minute

// RootOptions defines flags available globally across all subcommands.
type RootOptions struct {
	// OutputFile specifies a file path to redirect record output to
	// instead of stdout.
	OutputFile string
	// LogLevel sets the minimum log level (debug, info, warn, error, silent).
	LogLevel string
	// LogFormat sets the log output format (text, json).
	LogFormat string
	// Timeout sets the maximum duration for a verification request.
	Timeout time.Duration
}

var _ FlagAdder = (*RootOptions)(nil)

// AddFlags adds the root-level flags to the cobra command.
func (o *RootOptions) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&o.OutputFile, "output-file", "",
		"write the record to a file instead of stdout")
	_ = cmd.MarkFlagFilename("output-file", "json")

	cmd.PersistentFlags().StringVar(&o.LogLevel, "log-level", "info",
		"set the minimum log level (debug, info, warn, error, silent)")

	cmd.PersistentFlags().StringVar(&o.LogFormat, "log-format", "text",
		"set the log output format (text, json)")

	cmd.PersistentFlags().DurationVarP(&o.Timeout, "timeout", "t", DefaultTimeout,
		"timeout for the whole verification request")
}

// GetLogLevel returns the effective log level based on the options.
func (o *RootOptions) GetLogLevel() logging.LogLevel {
	return logging.ParseLogLevel(o.LogLevel)
}

// NewLogger creates a logger configured from the root options.
func (o *RootOptions) NewLogger() logging.Logger {
	return logging.NewLoggerWithOptions(logging.LoggerOptions{
		Level:  o.GetLogLevel(),
		Format: logging.ParseLogFormat(o.LogFormat),
	})
}
