package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/client-api/internal/infrastructure/mongodb"
	"github.com/jhoicas/client-api/internal/infrastructure/postgres"
	"github.com/jhoicas/client-api/pkg/config"
)

// newMigrateCmd prepara el almacenamiento configurado: tabla e índices en PostgreSQL,
// índices en MongoDB. Con el driver memory no hay nada que hacer.
func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Crea el esquema o los índices del almacenamiento configurado",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			switch cfg.Storage.Driver {
			case config.DriverPostgres:
				pool, err := postgres.NewPool(ctx, cfg.DB)
				if err != nil {
					return err
				}
				defer pool.Close()
				if err := postgres.Migrate(ctx, postgres.NewTxRunner(pool)); err != nil {
					return err
				}

			case config.DriverMongo:
				client, err := mongodb.Connect(ctx, cfg.Mongo)
				if err != nil {
					return err
				}
				defer func() { _ = mongodb.Disconnect(client, cfg.Mongo.Timeout) }()
				repo := mongodb.NewClientRepository(client.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection))
				if err := repo.EnsureIndexes(ctx); err != nil {
					return fmt.Errorf("crear índices: %w", err)
				}

			default:
				log.Info().Str("driver", cfg.Storage.Driver).Msg("sin esquema que migrar")
				return nil
			}

			log.Info().Str("driver", cfg.Storage.Driver).Msg("migración aplicada")
			return nil
		},
	}
}
