package main

import (
	"context"
	"os"

	"pms/config"
	"pms/di"
	"pms/shared/constant"
	"pms/shared/logger"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const actor = "pmsctl"

var console *di.Console

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "pmsctl",
		Short:        "Operator console for the property management backend",
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			cfg := config.Get()
			logger.SetLogLevel(cfg)

			console = di.InitializeConsole()
		},
	}

	root.AddCommand(calendarCmd(), seedCmd(), userCmd())

	return root
}

// operatorContext tags writes with the console user.
func operatorContext(ctx context.Context) context.Context {
	ctx = context.WithValue(ctx, constant.ContextKeyUserID, actor)

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleAdmin)
}

func main() {
	logger.InitLogger()

	if err := rootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("pmsctl failed")
		os.Exit(1)
	}
}
