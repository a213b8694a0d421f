// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements plantctl, the operator tool for plant-guard.
//
// Key commands (keygen, index, seal, open) work offline with the same
// APP_DATA_KEY_B64 / APP_INDEX_KEY_B64 variables as the server. The rest
// talk to a running server through [adapter.ServerAdapter].
//
// Command results go to stdout; prompts and status lines go to stderr, so
// that output such as the token printed by login can be captured:
//
//	export PLANTCTL_TOKEN=$(plantctl login --email root@lab.org)
package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/smart-plant-guard/internal/adapter"
	"github.com/MKhiriev/smart-plant-guard/internal/config"
	"github.com/MKhiriev/smart-plant-guard/internal/logger"
	"github.com/MKhiriev/smart-plant-guard/models"
)

// AdapterFactory builds the API client once flags are parsed.
type AdapterFactory func(cfg config.CLIAdapter, logger *logger.Logger) (adapter.ServerAdapter, error)

// CLI holds the state shared by plantctl commands.
type CLI struct {
	cfg   config.CLIConfig
	build models.AppBuildInfo

	newAdapter AdapterFactory
	server     adapter.ServerAdapter

	// input is shared by prompts so that buffered lines are not lost
	// between them.
	input *bufio.Reader

	logger *logger.Logger
}

type Option func(*CLI)

// WithAdapterFactory replaces the REST adapter constructor.
func WithAdapterFactory(f AdapterFactory) Option {
	return func(c *CLI) {
		c.newAdapter = f
	}
}

func New(cfg config.CLIConfig, build models.AppBuildInfo, logger *logger.Logger, opts ...Option) *CLI {
	c := &CLI{
		cfg:        cfg,
		build:      build,
		newAdapter: adapter.NewHTTPServerAdapter,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RootCommand assembles the command tree.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "plantctl",
		Short: "plantctl - operator tool for the plant-guard API",
		Long: `plantctl manages field-encryption keys and talks to a plant-guard server.

Key commands read APP_DATA_KEY_B64 and APP_INDEX_KEY_B64 from the environment.
API commands read PLANTCTL_SERVER_URL and PLANTCTL_TOKEN, or the --server and
--token flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&c.cfg.Adapter.ServerURL, "server", c.cfg.Adapter.ServerURL, "server base URL")
	root.PersistentFlags().StringVar(&c.cfg.Adapter.Token, "token", c.cfg.Adapter.Token, "bearer token from plantctl login")

	root.AddCommand(
		c.keygenCommand(),
		c.indexCommand(),
		c.sealCommand(),
		c.openCommand(),
		c.loginCommand(),
		c.whoamiCommand(),
		c.versionCommand(),
		c.speciesCommand(),
		c.observationsCommand(),
		c.usersCommand(),
	)
	return root
}

// api returns the adapter, building it on first use.
func (c *CLI) api() (adapter.ServerAdapter, error) {
	if c.server != nil {
		return c.server, nil
	}
	server, err := c.newAdapter(c.cfg.Adapter, c.logger)
	if err != nil {
		return nil, err
	}
	c.server = server
	return server, nil
}

func (c *CLI) prompt(cmd *cobra.Command, label string) (string, error) {
	if c.input == nil {
		c.input = bufio.NewReader(cmd.InOrStdin())
	}

	fmt.Fprint(cmd.ErrOrStderr(), color.CyanString("?")+" "+label+": ")
	line, err := c.input.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("read %s: %w", label, err)
	}
	return strings.TrimSpace(line), nil
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func success(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintln(cmd.ErrOrStderr(), color.GreenString("✓")+" "+fmt.Sprintf(format, args...))
}
