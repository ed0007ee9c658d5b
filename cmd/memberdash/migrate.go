// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MemberDash Contributors

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/memberdash/memberdash/internal/config"
	"github.com/memberdash/memberdash/internal/store"
)

// migratorFactory opens the migrator used by the migrate subcommands.
// Tests replace it.
var migratorFactory = func(databaseURL string) (SchemaMigrator, error) {
	migrator, err := store.NewMigrator(databaseURL)
	if err != nil {
		return nil, err
	}
	return migrator, nil
}

// NewMigrateCmd creates the migrate command and its subcommands.
func NewMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database migrations",
		Long:  `Apply, roll back or inspect the PostgreSQL schema migrations.`,
	}
	cmd.PersistentFlags().String("database-url", "", "database URL (default: database.url or "+config.EnvDatabaseURL+")")

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd, func(m SchemaMigrator) error {
				pending, err := m.PendingMigrations()
				if err != nil {
					return err
				}
				if len(pending) == 0 {
					cmd.Println("No pending migrations")
					return nil
				}
				for _, v := range pending {
					cmd.Printf("Applying %s\n", migrationLabel(v))
				}
				if err := m.Up(); err != nil {
					return err
				}
				cmd.Println("Migrations completed successfully")
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back all migrations (drops every table)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd, func(m SchemaMigrator) error {
				if err := m.Down(); err != nil {
					return err
				}
				cmd.Println("All migrations rolled back")
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show the applied migration version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd, func(m SchemaMigrator) error {
				version, dirty, err := m.Version()
				if err != nil {
					return err
				}
				if dirty {
					cmd.Printf("Version: %d (dirty)\n", version)
				} else {
					cmd.Printf("Version: %d\n", version)
				}

				pending, err := m.PendingMigrations()
				if err != nil {
					return err
				}
				if len(pending) == 0 {
					cmd.Println("Pending: none")
					return nil
				}
				cmd.Println("Pending:")
				for _, v := range pending {
					cmd.Printf("  %s\n", migrationLabel(v))
				}
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "force VERSION",
		Short: "Set the migration version without running migrations",
		Long: `Record VERSION as applied and clear the dirty flag. Use after fixing a
migration that failed partway.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := parseForceVersion(args[0])
			if err != nil {
				return err
			}
			return withMigrator(cmd, func(m SchemaMigrator) error {
				if err := m.Force(version); err != nil {
					return err
				}
				cmd.Printf("Forced version %d\n", version)
				return nil
			})
		},
	})

	return cmd
}

// withMigrator resolves the database URL, opens a migrator and runs fn.
func withMigrator(cmd *cobra.Command, fn func(SchemaMigrator) error) error {
	databaseURL, err := getDatabaseURL(cmd)
	if err != nil {
		return err
	}

	migrator, err := migratorFactory(databaseURL)
	if err != nil {
		return oops.Code("MIGRATION_INIT_FAILED").With("operation", "open migrator").Wrap(err)
	}
	defer func() {
		if closeErr := migrator.Close(); closeErr != nil {
			cmd.PrintErrf("warning: failed to close migrator: %v\n", closeErr)
		}
	}()

	return fn(migrator)
}

// getDatabaseURL loads the configuration for the migrate commands: the
// --database-url flag, then the config file, then DATABASE_URL.
func getDatabaseURL(cmd *cobra.Command) (string, error) {
	cfg, err := config.Load(resolveConfigFile(os.Getenv), nil, os.Getenv)
	if err != nil {
		return "", err
	}
	if flag := cmd.Flags().Lookup("database-url"); flag != nil && flag.Changed {
		cfg.Database.URL = flag.Value.String()
	}
	if err := cfg.ValidateDatabase(); err != nil {
		return "", err
	}
	return cfg.Database.URL, nil
}

// migrationLabel names a migration for display, falling back to its
// zero-padded version.
func migrationLabel(version uint) string {
	name, err := store.MigrationName(version)
	if err != nil || name == "" {
		return fmt.Sprintf("%06d", version)
	}
	return name
}

// parseForceVersion reads a leading integer from s, ignoring surrounding
// whitespace and anything after the digits.
func parseForceVersion(s string) (int, error) {
	var version int
	if _, err := fmt.Sscanf(strings.TrimSpace(s), "%d", &version); err != nil {
		return 0, oops.Code("INVALID_VERSION").With("input", s).Errorf("version must be an integer")
	}
	return version, nil
}
