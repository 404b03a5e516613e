// SPDX-License-Identifier: MIT

// Command qlap builds quaternion magnetic Laplacian kernels from edge lists.
//
//	qlap build graph.txt [more.txt ...] --out dir --format json|csv
//	qlap inspect graph.txt
//	qlap generate --model dsbm --out graph.txt
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qlap/internal/config"
)

// Version is the current qlap version.
var Version = "0.1.0"

// app carries the resolved configuration and logger to every subcommand.
type app struct {
	cfgPath   string
	logLevel  string
	logFormat string

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "qlap",
		Short:         "qlap - quaternion magnetic Laplacian kernels for signed directed graphs",
		Long:          `qlap turns directed, possibly signed, edge lists into the (edge_index, real, i, j, k) kernel consumed by quaternion spectral graph convolutions.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVarP(&a.cfgPath, "config", "c", "", "YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "Log format: text or json")

	root.AddCommand(newBuildCmd(a), newInspectCmd(a), newGenerateCmd(a))

	return root
}

// setup loads the config file, applies persistent flag overrides and builds
// the logger. Subcommand flags are applied by the subcommands themselves.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	logger, err := cfg.Log.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg, a.logger = cfg, logger

	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
