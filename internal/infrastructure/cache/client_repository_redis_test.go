package cache_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/client-api/internal/domain/entity"
	"github.com/jhoicas/client-api/internal/infrastructure/cache"
	"github.com/jhoicas/client-api/internal/infrastructure/memory"
	"github.com/jhoicas/client-api/pkg/logger"
)

// newCachedRepo arma el decorador sobre un repositorio en memoria y un Redis en proceso.
func newCachedRepo(t *testing.T) (*cache.ClientRepo, *memory.ClientRepo, *miniredis.Miniredis) {
	return newCachedRepoWithLogger(t, logger.Nop())
}

func newCachedRepoWithLogger(t *testing.T, log *logger.Logger) (*cache.ClientRepo, *memory.ClientRepo, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	inner := memory.NewClientRepository()
	return cache.NewClientRepository(inner, rdb, time.Minute, log), inner, mr
}

func newClient(id, number string) *entity.Client {
	now := time.Date(2024, 3, 1, 10, 0, 0, 123456789, time.UTC)
	return &entity.Client{
		ID:                     id,
		FirstName:              "Ana",
		LastName:               "Quispe",
		IdentityDocumentType:   "DNI",
		IdentityDocumentNumber: number,
		ClientType:             entity.ClientTypePersonal,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
}

func TestClientRepo_CreateCacheaYLasLecturasSalenDeRedis(t *testing.T) {
	ctx := context.Background()
	repo, inner, mr := newCachedRepo(t)

	created, err := repo.Create(ctx, newClient("c1", "123"))
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.True(t, mr.Exists("client:c1"))
	assert.True(t, mr.Exists("client:doc:DNI:123"))
	assert.Equal(t, time.Minute, mr.TTL("client:c1"))

	// sin el cliente en el repositorio envuelto, solo la caché puede responder
	_, err = inner.Delete(ctx, "c1")
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "c1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Ana", got.FirstName)
	assert.True(t, got.CreatedAt.Equal(created.CreatedAt), "la fecha sobrevive a la ida y vuelta por JSON")
	assert.True(t, got.UpdatedAt.Equal(created.UpdatedAt))

	byDoc, err := repo.GetTopByIdentityDocument(ctx, "123", "DNI")
	require.NoError(t, err)
	require.NotNil(t, byDoc)
	assert.Equal(t, "c1", byDoc.ID)
}

func TestClientRepo_UpdateConOtroDocumentoInvalidaLaClaveAnterior(t *testing.T) {
	ctx := context.Background()
	repo, _, mr := newCachedRepo(t)

	created, err := repo.Create(ctx, newClient("c1", "123"))
	require.NoError(t, err)
	require.NotNil(t, created)

	changed := created.Clone()
	changed.IdentityDocumentNumber = "456"
	updated, err := repo.Update(ctx, changed)
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.False(t, mr.Exists("client:doc:DNI:123"), "la clave del documento anterior se invalida")
	assert.True(t, mr.Exists("client:doc:DNI:456"))

	raw, err := mr.Get("client:c1")
	require.NoError(t, err)
	var cached entity.Client
	require.NoError(t, json.Unmarshal([]byte(raw), &cached))
	assert.Equal(t, "456", cached.IdentityDocumentNumber)

	stale, err := repo.GetTopByIdentityDocument(ctx, "123", "DNI")
	require.NoError(t, err)
	assert.Nil(t, stale)
}

func TestClientRepo_DeleteBorraLasClaves(t *testing.T) {
	ctx := context.Background()
	repo, _, mr := newCachedRepo(t)

	_, err := repo.Create(ctx, newClient("c1", "123"))
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, "c1")
	require.NoError(t, err)
	require.NotNil(t, deleted)

	assert.False(t, mr.Exists("client:c1"))
	assert.False(t, mr.Exists("client:doc:DNI:123"))

	missing, err := repo.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestClientRepo_EntradaCorrupta_UsaRepositorioEnvueltoYLaReemplaza(t *testing.T) {
	ctx := context.Background()
	var logs bytes.Buffer
	repo, inner, mr := newCachedRepoWithLogger(t, logger.New(logger.Config{Env: "test", Level: "warn", Output: &logs}))

	_, err := inner.Create(ctx, newClient("c1", "123"))
	require.NoError(t, err)
	require.NoError(t, mr.Set("client:c1", "{no es json"))

	got, err := repo.GetByID(ctx, "c1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "c1", got.ID)

	raw, err := mr.Get("client:c1")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(raw)), "la entrada corrupta se reemplaza por la del repositorio")
	assert.Contains(t, logs.String(), "client:c1")
	assert.Contains(t, logs.String(), "corrupta")
}

func TestClientRepo_CreateRechazado_NoCachea(t *testing.T) {
	ctx := context.Background()
	repo, _, mr := newCachedRepo(t)

	_, err := repo.Create(ctx, newClient("c1", "123"))
	require.NoError(t, err)

	dup, err := repo.Create(ctx, newClient("c2", "123"))
	require.NoError(t, err)
	assert.Nil(t, dup)
	assert.False(t, mr.Exists("client:c2"))
}
