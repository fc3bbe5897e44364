package postgres_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/client-api/internal/infrastructure/postgres"
)

// fakeTx registra las sentencias; los métodos no sobrescritos de pgx.Tx no se usan.
type fakeTx struct {
	pgx.Tx
	execs      []string
	failOn     string
	committed  bool
	rolledBack bool
}

func (f *fakeTx) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	if f.failOn != "" && strings.Contains(sql, f.failOn) {
		return pgconn.CommandTag{}, errors.New("syntax error")
	}
	f.execs = append(f.execs, sql)
	return pgconn.NewCommandTag("CREATE"), nil
}

func (f *fakeTx) Commit(context.Context) error {
	f.committed = true
	return nil
}

func (f *fakeTx) Rollback(context.Context) error {
	if !f.committed {
		f.rolledBack = true
	}
	return nil
}

type fakePool struct{ tx *fakeTx }

func (p fakePool) Begin(context.Context) (pgx.Tx, error) { return p.tx, nil }

func TestMigrate_AplicaEsquemaEnUnaTransaccion(t *testing.T) {
	tx := &fakeTx{}
	err := postgres.Migrate(context.Background(), postgres.NewTxRunner(fakePool{tx: tx}))
	require.NoError(t, err)

	assert.True(t, tx.committed)
	assert.False(t, tx.rolledBack)
	require.Len(t, tx.execs, 3)
	assert.Contains(t, tx.execs[0], "CREATE TABLE IF NOT EXISTS clients")
	assert.Contains(t, tx.execs[1], "identity_document_type, identity_document_number")
}

func TestMigrate_RollbackSiFalla(t *testing.T) {
	tx := &fakeTx{failOn: "UNIQUE INDEX"}
	err := postgres.Migrate(context.Background(), postgres.NewTxRunner(fakePool{tx: tx}))

	assert.Error(t, err)
	assert.False(t, tx.committed)
	assert.True(t, tx.rolledBack)
}
