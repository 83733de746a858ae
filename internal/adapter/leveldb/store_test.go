package leveldb

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nova-fund/internal/core/port"
)

func TestStore(t *testing.T) {
	s, err := Open("", nil)
	require.NoError(t, err)
	defer s.Close()
	ctx := context.Background()

	require.NoError(t, s.Update(ctx, func(tx port.Txn) error {
		return tx.Set([]byte("a"), []byte("1"))
	}))

	boom := errors.New("boom")
	err = s.Update(ctx, func(tx port.Txn) error {
		require.NoError(t, tx.Set([]byte("a"), []byte("2")))
		require.NoError(t, tx.Set([]byte("b"), []byte("2")))
		// writes are visible inside the transaction
		v, err := tx.Get([]byte("b"))
		require.NoError(t, err)
		assert.Equal(t, "2", string(v))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	require.NoError(t, s.View(ctx, func(tx port.Txn) error {
		v, err := tx.Get([]byte("a"))
		require.NoError(t, err)
		assert.Equal(t, "1", string(v))

		_, err = tx.Get([]byte("b"))
		assert.ErrorIs(t, err, port.ErrKeyNotFound)

		assert.ErrorIs(t, tx.Set([]byte("c"), nil), port.ErrReadOnlyTxn)
		return nil
	}))
}

func TestStoreOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger")
	s, err := Open(path, nil)
	require.NoError(t, err)
	require.NoError(t, s.Update(context.Background(), func(tx port.Txn) error {
		return tx.Set([]byte("k"), []byte("v"))
	}))
	require.NoError(t, s.Close())

	s, err = Open(path, nil)
	require.NoError(t, err)
	defer s.Close()
	require.NoError(t, s.View(context.Background(), func(tx port.Txn) error {
		ok, err := tx.Has([]byte("k"))
		require.NoError(t, err)
		assert.True(t, ok)
		return nil
	}))
}

func TestStorePanicDropsBatch(t *testing.T) {
	s, err := Open("", nil)
	require.NoError(t, err)
	defer s.Close()
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = s.Update(ctx, func(tx port.Txn) error {
			_ = tx.Set([]byte("k"), []byte("v"))
			panic("callback failed")
		})
	})

	// the write lock was released and nothing was applied
	require.NoError(t, s.Update(ctx, func(tx port.Txn) error {
		ok, err := tx.Has([]byte("k"))
		require.NoError(t, err)
		assert.False(t, ok)
		return tx.Set([]byte("other"), []byte("1"))
	}))
}

func TestStoreSmallUpdatesStayInMemtable(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "ledger"), nil)
	require.NoError(t, err)
	defer s.Close()

	for i := 0; i < 200; i++ {
		require.NoError(t, s.Update(context.Background(), func(tx port.Txn) error {
			return tx.Set([]byte(fmt.Sprintf("token:asset:%03d", i)), []byte{byte(i)})
		}))
	}

	files, err := s.db.GetProperty("leveldb.num-files-at-level0")
	require.NoError(t, err)
	assert.Equal(t, "0", files)
}
