package memory

import (
	"context"
	"iter"
	"sync"

	"github.com/jhoicas/client-api/internal/domain/entity"
	"github.com/jhoicas/client-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación en memoria de ClientRepository.
// Es segura para uso concurrente y conserva el orden de inserción.
type ClientRepo struct {
	mu    sync.RWMutex
	byID  map[string]*entity.Client
	order []string
}

// NewClientRepository construye el repositorio vacío.
func NewClientRepository() *ClientRepo {
	return &ClientRepo{byID: make(map[string]*entity.Client)}
}

// All recorre una instantánea tomada al empezar la iteración.
func (r *ClientRepo) All(ctx context.Context) iter.Seq2[*entity.Client, error] {
	return func(yield func(*entity.Client, error) bool) {
		r.mu.RLock()
		snapshot := make([]*entity.Client, 0, len(r.order))
		for _, id := range r.order {
			snapshot = append(snapshot, r.byID[id].Clone())
		}
		r.mu.RUnlock()

		for _, c := range snapshot {
			if err := ctx.Err(); err != nil {
				yield(nil, err)
				return
			}
			if !yield(c, nil) {
				return
			}
		}
	}
}

// GetByID obtiene un cliente por ID.
func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id].Clone(), nil
}

// GetTopByIdentityDocument devuelve el primer cliente insertado con ese documento.
func (r *ClientRepo) GetTopByIdentityDocument(ctx context.Context, number, docType string) (*entity.Client, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.findByDocument(number, docType).Clone(), nil
}

// Create persiste el cliente; (nil, nil) si el ID o el documento ya existen.
func (r *ClientRepo) Create(ctx context.Context, client *entity.Client) (*entity.Client, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[client.ID]; ok {
		return nil, nil
	}
	if r.findByDocument(client.IdentityDocumentNumber, client.IdentityDocumentType) != nil {
		return nil, nil
	}
	r.byID[client.ID] = client.Clone()
	r.order = append(r.order, client.ID)
	return client.Clone(), nil
}

// Update reemplaza el cliente; (nil, nil) si no existe o si el documento pertenece a otro.
func (r *ClientRepo) Update(ctx context.Context, client *entity.Client) (*entity.Client, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[client.ID]; !ok {
		return nil, nil
	}
	if other := r.findByDocument(client.IdentityDocumentNumber, client.IdentityDocumentType); other != nil && other.ID != client.ID {
		return nil, nil
	}
	r.byID[client.ID] = client.Clone()
	return client.Clone(), nil
}

// Delete elimina el cliente y lo devuelve; (nil, nil) si no existe.
func (r *ClientRepo) Delete(ctx context.Context, id string) (*entity.Client, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return c, nil
}

// findByDocument requiere r.mu tomado.
func (r *ClientRepo) findByDocument(number, docType string) *entity.Client {
	for _, id := range r.order {
		c := r.byID[id]
		if c.IdentityDocumentNumber == number && c.IdentityDocumentType == docType {
			return c
		}
	}
	return nil
}
