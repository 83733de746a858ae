package leveldb

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/storage"

	"nova-fund/internal/core/port"
)

// Store implements port.Store on top of LevelDB. Reads use snapshots.
// Writes are buffered in a batch and applied with a single db.Write; the
// write mutex makes the batch the only writer between its reads and its
// commit.
type Store struct {
	db      *leveldb.DB
	logger  *slog.Logger
	writeMu sync.Mutex
}

// Open opens the database at path, or an in-memory database when path is
// empty.
func Open(path string, logger *slog.Logger) (*Store, error) {
	var (
		db  *leveldb.DB
		err error
	)
	if path == "" {
		db, err = leveldb.Open(storage.NewMemStorage(), nil)
	} else {
		db, err = leveldb.OpenFile(path, &opt.Options{ErrorIfMissing: false})
	}
	if err != nil {
		return nil, err
	}
	if logger != nil {
		logger.Debug("leveldb opened", slog.String("path", path))
	}
	return &Store{db: db, logger: logger}, nil
}

// View runs fn against a consistent snapshot.
func (s *Store) View(ctx context.Context, fn func(port.Txn) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	snap, err := s.db.GetSnapshot()
	if err != nil {
		return err
	}
	defer snap.Release()
	return fn(&snapshotTxn{snap: snap})
}

// Update collects the writes of fn in a batch and applies them atomically
// when fn returns nil. On error or panic the batch is dropped.
func (s *Store) Update(ctx context.Context, fn func(port.Txn) error) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	tx := &batchTxn{db: s.db, batch: new(leveldb.Batch), pending: make(map[string][]byte)}
	if err := fn(tx); err != nil {
		return err
	}
	if tx.batch.Len() == 0 {
		return nil
	}
	return s.db.Write(tx.batch, nil)
}

func (s *Store) Close() error {
	return s.db.Close()
}

type snapshotTxn struct {
	snap *leveldb.Snapshot
}

func (t *snapshotTxn) Get(key []byte) ([]byte, error) {
	value, err := t.snap.Get(key, nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, port.ErrKeyNotFound
	}
	return value, err
}

func (t *snapshotTxn) Has(key []byte) (bool, error) {
	return t.snap.Has(key, nil)
}

func (t *snapshotTxn) Set([]byte, []byte) error {
	return port.ErrReadOnlyTxn
}

// batchTxn reads through its pending writes to the database.
type batchTxn struct {
	db      *leveldb.DB
	batch   *leveldb.Batch
	pending map[string][]byte
}

func (t *batchTxn) Get(key []byte) ([]byte, error) {
	if v, ok := t.pending[string(key)]; ok {
		return append([]byte(nil), v...), nil
	}
	value, err := t.db.Get(key, nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, port.ErrKeyNotFound
	}
	return value, err
}

func (t *batchTxn) Has(key []byte) (bool, error) {
	if _, ok := t.pending[string(key)]; ok {
		return true, nil
	}
	return t.db.Has(key, nil)
}

func (t *batchTxn) Set(key, value []byte) error {
	t.pending[string(key)] = append([]byte(nil), value...)
	t.batch.Put(key, value)
	return nil
}
