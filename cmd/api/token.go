package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/client-api/pkg/config"
	"github.com/jhoicas/client-api/pkg/jwt"
)

// newTokenCmd emite un JWT firmado con JWT_SECRET, pensado para pruebas locales.
func newTokenCmd() *cobra.Command {
	var subject, role string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Emite un token JWT para llamar al API",
		Example: `  api token --subject backoffice --role admin
  api token --subject reportes --role reader --env-file .env.local`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if role != jwt.RoleAdmin && role != jwt.RoleReader {
				return fmt.Errorf("rol %q no soportado (admin, reader)", role)
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.JWT.Secret == "" {
				return errors.New("JWT_SECRET no definido")
			}
			tok, err := jwt.Generate(cfg.JWT.Secret, subject, role, cfg.JWT.Issuer, cfg.JWT.Expiration)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "sujeto del token (sub)")
	cmd.Flags().StringVar(&role, "role", jwt.RoleReader, "rol: admin o reader")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}
