package main

import (
	"fmt"
	"os"

	"resort/config"
	"resort/helper"
	"resort/shared/logger"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Error().Err(err).Msg("migration failed")
		os.Exit(1)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:          "migrate",
		Short:        "Run the postgres schema migrations",
		SilenceUsage: true,
	}

	cfg := config.Get()

	logger.InitLogger()
	logger.Configure(cfg)

	rootCmd.AddCommand(
		command("up", "Apply every pending migration", helper.Up, cfg),
		command("down", "Roll back the latest migration", helper.Down, cfg),
		command("drop", "Roll back every migration", helper.Drop, cfg),
		command("step-up", "Apply the next pending migration", helper.StepUp, cfg),
		command("version", "Show the applied migration version", helper.Version, cfg),
	)

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

func command(use, short string, action func(*config.Config) error, cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return action(cfg)
		},
	}
}
