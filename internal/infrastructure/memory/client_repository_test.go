package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/client-api/internal/domain/entity"
	"github.com/jhoicas/client-api/internal/infrastructure/memory"
)

func newClient(id, number, docType string) *entity.Client {
	now := time.Now().UTC()
	return &entity.Client{
		ID:                     id,
		FirstName:              "Nombre " + id,
		LastName:               "Apellido",
		IdentityDocumentType:   docType,
		IdentityDocumentNumber: number,
		ClientType:             entity.ClientTypePersonal,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
}

func collect(t *testing.T, repo *memory.ClientRepo) []string {
	t.Helper()
	var ids []string
	for c, err := range repo.All(context.Background()) {
		require.NoError(t, err)
		ids = append(ids, c.ID)
	}
	return ids
}

func TestClientRepo_CreateYOrden(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewClientRepository()

	for _, c := range []*entity.Client{newClient("c1", "111", "DNI"), newClient("c2", "222", "DNI"), newClient("c3", "111", "CE")} {
		created, err := repo.Create(ctx, c)
		require.NoError(t, err)
		require.NotNil(t, created)
	}

	assert.Equal(t, []string{"c1", "c2", "c3"}, collect(t, repo))
}

func TestClientRepo_AllVacio(t *testing.T) {
	assert.Empty(t, collect(t, memory.NewClientRepository()))
}

func TestClientRepo_CreateDocumentoDuplicado_Vacio(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewClientRepository()
	_, err := repo.Create(ctx, newClient("c1", "123", "DNI"))
	require.NoError(t, err)

	dup, err := repo.Create(ctx, newClient("c2", "123", "DNI"))
	require.NoError(t, err)
	assert.Nil(t, dup, "la clave alterna duplicada produce resultado vacío")

	sameID, err := repo.Create(ctx, newClient("c1", "999", "DNI"))
	require.NoError(t, err)
	assert.Nil(t, sameID)
}

func TestClientRepo_GetDevuelveCopia(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewClientRepository()
	_, err := repo.Create(ctx, newClient("c1", "123", "DNI"))
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "c1")
	require.NoError(t, err)
	got.FirstName = "modificado"

	again, err := repo.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "Nombre c1", again.FirstName)

	missing, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestClientRepo_GetTopByIdentityDocument(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewClientRepository()
	_, err := repo.Create(ctx, newClient("c1", "123", "DNI"))
	require.NoError(t, err)

	got, err := repo.GetTopByIdentityDocument(ctx, "123", "DNI")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "c1", got.ID)

	none, err := repo.GetTopByIdentityDocument(ctx, "123", "CE")
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestClientRepo_Update(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewClientRepository()
	_, err := repo.Create(ctx, newClient("c1", "111", "DNI"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newClient("c2", "222", "DNI"))
	require.NoError(t, err)

	upd := newClient("c1", "111", "DNI")
	upd.Email = "nuevo@example.com"
	got, err := repo.Update(ctx, upd)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "nuevo@example.com", got.Email)

	missing, err := repo.Update(ctx, newClient("c9", "999", "DNI"))
	require.NoError(t, err)
	assert.Nil(t, missing)

	collision, err := repo.Update(ctx, newClient("c1", "222", "DNI"))
	require.NoError(t, err)
	assert.Nil(t, collision, "el documento pertenece a c2")
}

func TestClientRepo_Delete(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewClientRepository()
	_, err := repo.Create(ctx, newClient("c1", "111", "DNI"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newClient("c2", "222", "DNI"))
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, "c1")
	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Equal(t, "c1", deleted.ID)
	assert.Equal(t, []string{"c2"}, collect(t, repo))

	again, err := repo.Delete(ctx, "c1")
	require.NoError(t, err)
	assert.Nil(t, again)
}

func TestClientRepo_AllRespetaCancelacion(t *testing.T) {
	repo := memory.NewClientRepository()
	_, err := repo.Create(context.Background(), newClient("c1", "111", "DNI"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var gotErr error
	for _, err := range repo.All(ctx) {
		gotErr = err
	}
	assert.ErrorIs(t, gotErr, context.Canceled)
}

func TestClientRepo_Concurrente(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewClientRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := string(rune('a'+i%26)) + string(rune('0'+i/26))
			_, _ = repo.Create(ctx, newClient(id, id, "DNI"))
			_, _ = repo.GetByID(ctx, id)
		}(i)
	}
	wg.Wait()

	assert.Len(t, collect(t, repo), 50)
}
