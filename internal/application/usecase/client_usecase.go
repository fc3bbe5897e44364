package usecase

import (
	"context"
	"fmt"
	"iter"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/client-api/internal/domain/entity"
	"github.com/jhoicas/client-api/internal/domain/repository"
)

// ClientUseCase casos de uso CRUD para clientes.
//
// Un resultado vacío (nil, nil) significa que no hay cliente que devolver: no
// existe, o el almacenamiento rechazó la escritura por clave alterna duplicada.
// Los errores se reservan para fallos de infraestructura.
type ClientUseCase struct {
	repo repository.ClientRepository
	now  func() time.Time
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{
		repo: repo,
		now:  time.Now,
	}
}

// FindAll devuelve todos los clientes como secuencia perezosa, en el orden del almacenamiento.
func (uc *ClientUseCase) FindAll(ctx context.Context) iter.Seq2[*entity.Client, error] {
	return func(yield func(*entity.Client, error) bool) {
		for c, err := range uc.repo.All(ctx) {
			if err != nil {
				yield(nil, fmt.Errorf("listar clientes: %w", err))
				return
			}
			if !yield(c, nil) {
				return
			}
		}
	}
}

// FindByID obtiene un cliente por ID.
func (uc *ClientUseCase) FindByID(ctx context.Context, id string) (*entity.Client, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener cliente %s: %w", id, err)
	}
	return c, nil
}

// FindTopByIdentityDocument obtiene el primer cliente (por fecha de alta) con ese documento.
func (uc *ClientUseCase) FindTopByIdentityDocument(ctx context.Context, number, docType string) (*entity.Client, error) {
	number, docType = uc.normalizeDocument(number, docType)
	c, err := uc.repo.GetTopByIdentityDocument(ctx, number, docType)
	if err != nil {
		return nil, fmt.Errorf("obtener cliente por documento %s/%s: %w", docType, number, err)
	}
	return c, nil
}

// Create registra un cliente nuevo con ID y fechas asignados aquí.
func (uc *ClientUseCase) Create(ctx context.Context, in *entity.Client) (*entity.Client, error) {
	now := uc.now().UTC()
	c := in.Clone()
	c.ID = uuid.New().String()
	c.IdentityDocumentNumber, c.IdentityDocumentType = uc.normalizeDocument(c.IdentityDocumentNumber, c.IdentityDocumentType)
	if c.ClientType == "" {
		c.ClientType = entity.ClientTypePersonal
	}
	c.CreatedAt = now
	c.UpdatedAt = now

	created, err := uc.repo.Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("crear cliente: %w", err)
	}
	return created, nil
}

// Update reemplaza los datos del cliente id. Conserva ID y CreatedAt.
func (uc *ClientUseCase) Update(ctx context.Context, id string, in *entity.Client) (*entity.Client, error) {
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener cliente %s: %w", id, err)
	}
	if current == nil {
		return nil, nil
	}

	c := in.Clone()
	c.ID = current.ID
	c.CreatedAt = current.CreatedAt
	c.UpdatedAt = uc.now().UTC()
	c.IdentityDocumentNumber, c.IdentityDocumentType = uc.normalizeDocument(c.IdentityDocumentNumber, c.IdentityDocumentType)
	if c.ClientType == "" {
		c.ClientType = current.ClientType
	}

	updated, err := uc.repo.Update(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("actualizar cliente %s: %w", id, err)
	}
	return updated, nil
}

// Delete elimina el cliente id y lo devuelve.
func (uc *ClientUseCase) Delete(ctx context.Context, id string) (*entity.Client, error) {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("eliminar cliente %s: %w", id, err)
	}
	return deleted, nil
}

// Un Caser no se puede compartir entre goroutines; se crea uno por llamada.
func (uc *ClientUseCase) normalizeDocument(number, docType string) (string, string) {
	return strings.TrimSpace(number), cases.Upper(language.Und).String(strings.TrimSpace(docType))
}
