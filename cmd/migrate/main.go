package main

import (
	"os"

	"pms/config"
	"pms/helper"
	"pms/shared/logger"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func actionCmd(action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   action,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return helper.Runner(config.Get(), action)
		},
	}
}

func main() {
	logger.InitLogger()

	rootCmd := &cobra.Command{
		Use:          "migrate",
		Short:        "Apply or roll back database migrations for the configured driver",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		actionCmd(helper.ActionUp, "Apply every pending migration"),
		actionCmd(helper.ActionDown, "Roll back the latest migration"),
		actionCmd(helper.ActionStepUp, "Apply the next pending migration"),
		actionCmd(helper.ActionDrop, "Roll back every migration"),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("migration failed")
		os.Exit(1)
	}
}
