package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/client-api/internal/application/mapper"
	"github.com/jhoicas/client-api/internal/application/usecase"
	httpRouter "github.com/jhoicas/client-api/internal/interfaces/http"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Levanta el servidor HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}
}

func runServe(cmd *cobra.Command) error {
	cfg, log, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("driver", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	st, err := openStorage(cmd.Context(), cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("abrir almacenamiento")
		return err
	}
	defer st.Close()

	clientUC := usecase.NewClientUseCase(st.repo)

	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:         cfg.App.Name,
		DocsEnabled:  cfg.Docs.Enabled,
		DocsFilePath: cfg.Docs.FilePath,
		Logger:       log,
	})
	httpRouter.Router(app, httpRouter.RouterDeps{
		ClientService: clientUC,
		ClientMapper:  mapper.NewClientMapper(),
		Location:      httpRouter.LocationConfig{Name: cfg.App.Name, Port: cfg.HTTP.PortString()},
		Logger:        log,
		JWTSecret:     cfg.JWT.Secret,
	})
	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: /v1/client sin autenticación")
	}

	listenErr := make(chan error, 1)
	go func() {
		listenErr <- app.Listen(cfg.HTTP.Addr())
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-listenErr:
		log.Error().Err(err).Msg("servidor HTTP finalizado")
		return err
	case <-quit:
	}

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
	return nil
}
