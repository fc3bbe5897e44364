package postgres

import (
	"context"
	"fmt"
)

// schemaStatements crea la tabla de clientes y la unicidad de la clave alterna.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS clients (
		id                       TEXT PRIMARY KEY,
		first_name               TEXT NOT NULL,
		last_name                TEXT NOT NULL,
		identity_document_type   TEXT NOT NULL,
		identity_document_number TEXT NOT NULL,
		email                    TEXT NOT NULL DEFAULT '',
		phone                    TEXT NOT NULL DEFAULT '',
		address                  TEXT NOT NULL DEFAULT '',
		client_type              TEXT NOT NULL DEFAULT 'PERSONAL',
		created_at               TIMESTAMPTZ NOT NULL,
		updated_at               TIMESTAMPTZ NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS clients_identity_document_uq
		ON clients (identity_document_type, identity_document_number)`,
	`CREATE INDEX IF NOT EXISTS clients_created_at_idx ON clients (created_at, id)`,
}

// Migrate aplica el esquema dentro de una única transacción. Es idempotente.
func Migrate(ctx context.Context, runner *TxRunner) error {
	return runner.Run(ctx, func(q Querier) error {
		for _, stmt := range schemaStatements {
			if _, err := q.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
		}
		return nil
	})
}
