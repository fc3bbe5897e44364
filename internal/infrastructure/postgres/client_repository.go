package postgres

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/client-api/internal/domain/entity"
	"github.com/jhoicas/client-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

const clientColumns = `id, first_name, last_name, identity_document_type, identity_document_number,
	email, phone, address, client_type, created_at, updated_at`

// ClientRepo implementación de ClientRepository (usable con pool o tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// All lista los clientes por fecha de alta. La consulta se lanza al recorrer la secuencia
// y las filas se leen una a una.
func (r *ClientRepo) All(ctx context.Context) iter.Seq2[*entity.Client, error] {
	return func(yield func(*entity.Client, error) bool) {
		rows, err := r.q.Query(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY created_at, id`)
		if err != nil {
			yield(nil, fmt.Errorf("list clients: %w", err))
			return
		}
		defer rows.Close()
		for rows.Next() {
			c, err := scanClient(rows)
			if err != nil {
				yield(nil, fmt.Errorf("scan client: %w", err))
				return
			}
			if !yield(c, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(nil, fmt.Errorf("list clients: %w", err))
		}
	}
}

// GetByID obtiene un cliente por ID.
func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	c, err := scanClient(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

// GetTopByIdentityDocument obtiene el cliente más antiguo con ese documento.
func (r *ClientRepo) GetTopByIdentityDocument(ctx context.Context, number, docType string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients
		WHERE identity_document_number = $1 AND identity_document_type = $2
		ORDER BY created_at, id LIMIT 1`
	c, err := scanClient(r.q.QueryRow(ctx, query, number, docType))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client by identity document: %w", err)
	}
	return c, nil
}

// Create persiste un nuevo cliente. Si el ID o el documento ya existen no inserta nada
// y devuelve (nil, nil).
func (r *ClientRepo) Create(ctx context.Context, client *entity.Client) (*entity.Client, error) {
	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT DO NOTHING
		RETURNING ` + clientColumns
	c, err := scanClient(r.q.QueryRow(ctx, query,
		client.ID, client.FirstName, client.LastName, client.IdentityDocumentType, client.IdentityDocumentNumber,
		client.Email, client.Phone, client.Address, client.ClientType, client.CreatedAt, client.UpdatedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("insert client: %w", err)
	}
	return c, nil
}

// Update actualiza un cliente. (nil, nil) si no existe o si el documento ya es de otro cliente.
func (r *ClientRepo) Update(ctx context.Context, client *entity.Client) (*entity.Client, error) {
	query := `
		UPDATE clients SET first_name = $2, last_name = $3, identity_document_type = $4,
			identity_document_number = $5, email = $6, phone = $7, address = $8,
			client_type = $9, updated_at = $10
		WHERE id = $1
		RETURNING ` + clientColumns
	c, err := scanClient(r.q.QueryRow(ctx, query,
		client.ID, client.FirstName, client.LastName, client.IdentityDocumentType, client.IdentityDocumentNumber,
		client.Email, client.Phone, client.Address, client.ClientType, client.UpdatedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isUniqueViolation(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update client: %w", err)
	}
	return c, nil
}

// Delete elimina un cliente por ID y lo devuelve.
func (r *ClientRepo) Delete(ctx context.Context, id string) (*entity.Client, error) {
	c, err := scanClient(r.q.QueryRow(ctx, `DELETE FROM clients WHERE id = $1 RETURNING `+clientColumns, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("delete client: %w", err)
	}
	return c, nil
}

func scanClient(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	err := row.Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.IdentityDocumentType, &c.IdentityDocumentNumber,
		&c.Email, &c.Phone, &c.Address, &c.ClientType, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
