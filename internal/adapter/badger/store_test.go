package badger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nova-fund/internal/core/port"
)

func openTest(t *testing.T, dir string) *Store {
	t.Helper()
	s, err := Open(dir, nil)
	require.NoError(t, err)
	return s
}

func TestStoreUpdateCommits(t *testing.T) {
	s := openTest(t, "")
	defer s.Close()
	ctx := context.Background()

	require.NoError(t, s.Update(ctx, func(tx port.Txn) error {
		return tx.Set([]byte("k"), []byte("v"))
	}))
	require.NoError(t, s.View(ctx, func(tx port.Txn) error {
		v, err := tx.Get([]byte("k"))
		require.NoError(t, err)
		assert.Equal(t, []byte("v"), v)
		ok, err := tx.Has([]byte("k"))
		require.NoError(t, err)
		assert.True(t, ok)
		return nil
	}))
}

func TestStoreUpdateDiscardsOnError(t *testing.T) {
	s := openTest(t, "")
	defer s.Close()
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.Update(ctx, func(tx port.Txn) error {
		require.NoError(t, tx.Set([]byte("k"), []byte("v")))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	require.NoError(t, s.View(ctx, func(tx port.Txn) error {
		_, err := tx.Get([]byte("k"))
		assert.ErrorIs(t, err, port.ErrKeyNotFound)
		ok, err := tx.Has([]byte("k"))
		require.NoError(t, err)
		assert.False(t, ok)
		return nil
	}))
}

func TestStoreViewIsReadOnly(t *testing.T) {
	s := openTest(t, "")
	defer s.Close()
	err := s.View(context.Background(), func(tx port.Txn) error {
		return tx.Set([]byte("k"), []byte("v"))
	})
	assert.ErrorIs(t, err, port.ErrReadOnlyTxn)
}

func TestStoreHonoursCancelledContext(t *testing.T) {
	s := openTest(t, "")
	defer s.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := s.Update(ctx, func(port.Txn) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	s := openTest(t, dir)
	require.NoError(t, s.Update(context.Background(), func(tx port.Txn) error {
		return tx.Set([]byte("registry:admin"), []byte("a"))
	}))
	require.NoError(t, s.Close())

	s = openTest(t, dir)
	defer s.Close()
	require.NoError(t, s.View(context.Background(), func(tx port.Txn) error {
		v, err := tx.Get([]byte("registry:admin"))
		require.NoError(t, err)
		assert.Equal(t, "a", string(v))
		return nil
	}))
}
