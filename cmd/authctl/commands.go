package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/redmonkez12/go-auth-api/internal/auth"
	"github.com/redmonkez12/go-auth-api/internal/config"
	"github.com/redmonkez12/go-auth-api/internal/database"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "authctl",
		Short:        "Operator tooling for the auth API",
		Long:         "Run database migrations, hash seed passwords and inspect access tokens using the API's configuration.",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newMigrateCmd(), newHashPasswordCmd(), newTokenCmd())
	return rootCmd
}

func newMigrateCmd() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	migrateCmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE:  withDB(database.Migrate),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			Args:  cobra.NoArgs,
			RunE:  withDB(database.Rollback),
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show applied and pending migrations",
			Args:  cobra.NoArgs,
			RunE:  withDB(database.Status),
		},
	)

	return migrateCmd
}

func newHashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password",
		Short: "Print an argon2id hash of a password read from stdin",
		Long:  "Reads one line from stdin and prints its argon2id hash using the configured cost parameters. Useful for seeding users.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && line == "" {
				return errors.New("no password on stdin")
			}
			password := strings.TrimRight(line, "\r\n")
			if password == "" {
				return errors.New("password must not be empty")
			}

			hasher := auth.NewArgon2Hasher(
				auth.WithArgon2Time(cfg.Auth.Argon2.Time),
				auth.WithArgon2Memory(cfg.Auth.Argon2.Memory),
				auth.WithArgon2Threads(cfg.Auth.Argon2.Threads),
			)
			hash, err := hasher.Hash(password)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}

func newTokenCmd() *cobra.Command {
	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Work with access tokens",
	}

	tokenCmd.AddCommand(&cobra.Command{
		Use:   "inspect <token>",
		Short: "Verify a token with the configured secret and print its claims",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			tokens, err := auth.NewTokenService(cfg.Auth)
			if err != nil {
				return err
			}

			claims, err := tokens.VerifyToken(args[0])
			if err != nil {
				return fmt.Errorf("token rejected: %w", err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(claims)
		},
	})

	return tokenCmd
}
