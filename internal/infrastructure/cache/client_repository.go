package cache

import (
	"context"
	"errors"
	"iter"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/client-api/internal/domain/entity"
	"github.com/jhoicas/client-api/internal/domain/repository"
	"github.com/jhoicas/client-api/pkg/logger"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// Prefijos de claves en Redis.
const (
	clientKeyPrefix   = "client:"
	documentKeyPrefix = "client:doc:"
)

// ClientRepo envuelve otro ClientRepository con una caché read-through en Redis
// para las lecturas puntuales. Un fallo de Redis nunca se propaga: se registra y
// se consulta el repositorio envuelto.
type ClientRepo struct {
	inner repository.ClientRepository
	rdb   redis.Cmdable
	ttl   time.Duration
	log   *logger.Logger
}

// NewClientRepository construye el decorador.
func NewClientRepository(inner repository.ClientRepository, rdb redis.Cmdable, ttl time.Duration, log *logger.Logger) *ClientRepo {
	return &ClientRepo{inner: inner, rdb: rdb, ttl: ttl, log: log}
}

func clientKey(id string) string {
	return clientKeyPrefix + id
}

func documentKey(number, docType string) string {
	return documentKeyPrefix + docType + ":" + number
}

// All no se cachea.
func (r *ClientRepo) All(ctx context.Context) iter.Seq2[*entity.Client, error] {
	return r.inner.All(ctx)
}

// GetByID consulta la caché y, si no está, el repositorio envuelto.
func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	if c, ok := r.get(ctx, clientKey(id)); ok {
		return c, nil
	}
	c, err := r.inner.GetByID(ctx, id)
	if err != nil || c == nil {
		return c, err
	}
	r.set(ctx, c)
	return c, nil
}

// GetTopByIdentityDocument consulta la caché y, si no está, el repositorio envuelto.
func (r *ClientRepo) GetTopByIdentityDocument(ctx context.Context, number, docType string) (*entity.Client, error) {
	if c, ok := r.get(ctx, documentKey(number, docType)); ok {
		return c, nil
	}
	c, err := r.inner.GetTopByIdentityDocument(ctx, number, docType)
	if err != nil || c == nil {
		return c, err
	}
	r.set(ctx, c)
	return c, nil
}

// Create persiste y cachea el resultado.
func (r *ClientRepo) Create(ctx context.Context, client *entity.Client) (*entity.Client, error) {
	c, err := r.inner.Create(ctx, client)
	if err != nil || c == nil {
		return c, err
	}
	r.set(ctx, c)
	return c, nil
}

// Update invalida las claves del estado anterior y cachea el nuevo.
func (r *ClientRepo) Update(ctx context.Context, client *entity.Client) (*entity.Client, error) {
	previous, err := r.inner.GetByID(ctx, client.ID)
	if err != nil {
		return nil, err
	}
	c, err := r.inner.Update(ctx, client)
	if err != nil || c == nil {
		return c, err
	}
	r.invalidate(ctx, previous)
	r.set(ctx, c)
	return c, nil
}

// Delete invalida las claves del cliente eliminado.
func (r *ClientRepo) Delete(ctx context.Context, id string) (*entity.Client, error) {
	c, err := r.inner.Delete(ctx, id)
	if err != nil || c == nil {
		return c, err
	}
	r.invalidate(ctx, c)
	return c, nil
}

func (r *ClientRepo) get(ctx context.Context, key string) (*entity.Client, bool) {
	raw, err := r.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.log.Warn().Err(err).Str("key", key).Msg("lectura de caché fallida")
		}
		return nil, false
	}
	var c entity.Client
	if err := json.Unmarshal(raw, &c); err != nil {
		r.log.Warn().Err(err).Str("key", key).Msg("entrada de caché corrupta, se descarta")
		if err := r.rdb.Del(ctx, key).Err(); err != nil {
			r.log.Warn().Err(err).Str("key", key).Msg("borrado de entrada corrupta fallido")
		}
		return nil, false
	}
	return &c, true
}

func (r *ClientRepo) set(ctx context.Context, c *entity.Client) {
	raw, err := json.Marshal(c)
	if err != nil {
		r.log.Warn().Err(err).Str("id", c.ID).Msg("serializar cliente para caché")
		return
	}
	pipe := r.rdb.TxPipeline()
	pipe.Set(ctx, clientKey(c.ID), raw, r.ttl)
	pipe.Set(ctx, documentKey(c.IdentityDocumentNumber, c.IdentityDocumentType), raw, r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		r.log.Warn().Err(err).Str("id", c.ID).Msg("escritura de caché fallida")
	}
}

func (r *ClientRepo) invalidate(ctx context.Context, c *entity.Client) {
	if c == nil {
		return
	}
	keys := []string{clientKey(c.ID), documentKey(c.IdentityDocumentNumber, c.IdentityDocumentType)}
	if err := r.rdb.Del(ctx, keys...).Err(); err != nil {
		r.log.Warn().Err(err).Strs("keys", keys).Msg("invalidación de caché fallida")
	}
}
