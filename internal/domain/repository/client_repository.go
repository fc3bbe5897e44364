package repository

import (
	"context"
	"iter"

	"github.com/jhoicas/client-api/internal/domain/entity"
)

// ClientRepository define el puerto de persistencia para Client.
//
// Un resultado ausente se expresa como (nil, nil), nunca como error: así lo
// devuelven GetByID y GetTopByIdentityDocument cuando no hay coincidencias,
// Create cuando la clave alterna ya existe, Update cuando el ID no existe o la
// nueva clave alterna choca con otro cliente, y Delete cuando el ID no existe.
type ClientRepository interface {
	// All devuelve una secuencia perezosa; la consulta se ejecuta al recorrerla.
	All(ctx context.Context) iter.Seq2[*entity.Client, error]
	GetByID(ctx context.Context, id string) (*entity.Client, error)
	GetTopByIdentityDocument(ctx context.Context, number, docType string) (*entity.Client, error)
	Create(ctx context.Context, client *entity.Client) (*entity.Client, error)
	Update(ctx context.Context, client *entity.Client) (*entity.Client, error)
	Delete(ctx context.Context, id string) (*entity.Client, error)
}
