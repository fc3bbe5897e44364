package main

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/client-api/pkg/config"
	"github.com/jhoicas/client-api/pkg/logger"
)

// newRootCmd arma el comando raíz. Sin subcomando se comporta como "serve".
func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:   "api",
		Short: "API REST de clientes",
		Long: `api expone el CRUD de clientes en /v1/client.
La configuración se lee de variables de entorno (APP_NAME, HTTP_PORT, STORAGE_DRIVER, ...).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.LoadEnvFile(envFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", "", "archivo .env a cargar antes de leer la configuración")

	root.AddCommand(newServeCmd())
	root.AddCommand(newMigrateCmd())
	root.AddCommand(newTokenCmd())
	return root
}

// loadConfig lee la configuración y construye el logger según APP_ENV y LOG_LEVEL.
func loadConfig(cmd *cobra.Command) (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log := logger.New(logger.Config{
		Env:    cfg.App.Env,
		Level:  cfg.App.LogLevel,
		Output: cmd.OutOrStdout(),
	})
	return cfg, log, nil
}
