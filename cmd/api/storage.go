package main

import (
	"context"
	"fmt"

	"github.com/jhoicas/client-api/internal/domain/repository"
	"github.com/jhoicas/client-api/internal/infrastructure/cache"
	"github.com/jhoicas/client-api/internal/infrastructure/memory"
	"github.com/jhoicas/client-api/internal/infrastructure/mongodb"
	"github.com/jhoicas/client-api/internal/infrastructure/postgres"
	"github.com/jhoicas/client-api/pkg/config"
	"github.com/jhoicas/client-api/pkg/logger"
)

// storage es el repositorio elegido por STORAGE_DRIVER más lo que hay que cerrar al apagar.
type storage struct {
	repo    repository.ClientRepository
	closers []func()
}

func (s *storage) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

// openStorage conecta el almacenamiento configurado y, si REDIS_ADDR está definido,
// lo envuelve con la caché. Si Redis no responde se sigue sin caché.
func openStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) (*storage, error) {
	st := &storage{}

	switch cfg.Storage.Driver {
	case config.DriverMemory:
		st.repo = memory.NewClientRepository()

	case config.DriverMongo:
		client, err := mongodb.Connect(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		st.closers = append(st.closers, func() {
			if err := mongodb.Disconnect(client, cfg.Mongo.Timeout); err != nil {
				log.Error().Err(err).Msg("cerrar MongoDB")
			}
		})
		st.repo = mongodb.NewClientRepository(client.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection))

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		st.closers = append(st.closers, pool.Close)
		st.repo = postgres.NewClientRepository(pool)

	default:
		return nil, fmt.Errorf("STORAGE_DRIVER no soportado: %q", cfg.Storage.Driver)
	}
	log.Info().Str("driver", cfg.Storage.Driver).Msg("almacenamiento listo")

	if cfg.Redis.Enabled() {
		rdb, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("Redis no disponible, se continúa sin caché")
			return st, nil
		}
		st.closers = append(st.closers, func() { _ = rdb.Close() })
		st.repo = cache.NewClientRepository(st.repo, rdb, cfg.Redis.TTL, log.Named("cache"))
		log.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", cfg.Redis.TTL).Msg("caché Redis activa")
	}
	return st, nil
}
