package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubQuerier registra las consultas y responde QueryRow con el error configurado.
type stubQuerier struct {
	calls  int
	rowErr error
}

func (q *stubQuerier) Exec(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
	q.calls++
	return pgconn.CommandTag{}, nil
}

func (q *stubQuerier) Query(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
	q.calls++
	return nil, errors.New("no soportado")
}

func (q *stubQuerier) QueryRow(_ context.Context, _ string, _ ...any) pgx.Row {
	q.calls++
	return stubRow{err: q.rowErr}
}

type stubRow struct{ err error }

func (r stubRow) Scan(_ ...any) error { return r.err }

func TestStoreRepo_GetByID_IdNoUUIDNoConsulta(t *testing.T) {
	q := &stubQuerier{}
	repo := NewStoreRepository(q)

	s, err := repo.GetByID(context.Background(), "00000000-0000-0000-0000-000000000002", "tienda-x")
	require.NoError(t, err)
	assert.Nil(t, s)
	assert.Equal(t, 0, q.calls)
}

func TestStoreRepo_GetByID_SinFilas(t *testing.T) {
	q := &stubQuerier{rowErr: pgx.ErrNoRows}
	repo := NewStoreRepository(q)

	s, err := repo.GetByID(context.Background(), "00000000-0000-0000-0000-000000000002", "00000000-0000-0000-0000-0000000000aa")
	require.NoError(t, err)
	assert.Nil(t, s)
	assert.Equal(t, 1, q.calls)
}

func TestStoreRepo_GetByID_ErrorDeBase(t *testing.T) {
	q := &stubQuerier{rowErr: errors.New("conexión cerrada")}
	repo := NewStoreRepository(q)

	_, err := repo.GetByID(context.Background(), "00000000-0000-0000-0000-000000000002", "00000000-0000-0000-0000-0000000000aa")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conexión cerrada")
}
