// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MemberDash Contributors

package main

import (
	"github.com/spf13/cobra"

	"github.com/memberdash/memberdash/internal/xdg"
)

// Global flags available to all subcommands.
var configFile string

// NewRootCmd creates the root command for the MemberDash CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "memberdash",
		Short: "MemberDash - member registry API",
		Long: `MemberDash serves account registration, login and a token-protected
member registry backed by PostgreSQL.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (YAML, default: $XDG_CONFIG_HOME/memberdash/config.yaml if present)")

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMigrateCmd())

	return cmd
}

// resolveConfigFile returns --config, or the XDG config file when the flag
// is unset. An empty result means no file is loaded.
func resolveConfigFile(getenv func(string) string) string {
	if configFile != "" {
		return configFile
	}
	return xdg.ConfigFile(getenv)
}
