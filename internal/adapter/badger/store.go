package badger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"sync"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"

	"nova-fund/internal/core/port"
)

// Store implements port.Store on top of BadgerDB. With an empty data
// directory the database lives in memory only.
type Store struct {
	db       *badger.DB
	logger   *slog.Logger
	writeMu  sync.Mutex
	gcTicker *time.Ticker
	gcStopCh chan struct{}
	gcWg     sync.WaitGroup
}

// Open opens (or creates) the database in dataDir.
func Open(dataDir string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Store{logger: logger}

	var opts badger.Options
	if dataDir == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if _, err := os.Stat(dataDir); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to read data dir: %w", err)
			}
			if err := os.MkdirAll(dataDir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create data dir: %w", err)
			}
		}
		opts = badger.DefaultOptions(dataDir).WithCompression(options.Snappy)
	}
	opts = opts.
		WithLogger(&slogAdapter{logger: logger}).
		// The default INFO logging is a bit verbose
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	s.db = db

	if dataDir != "" {
		s.gcTicker = time.NewTicker(5 * time.Minute)
		s.gcStopCh = make(chan struct{})
		s.gcWg.Add(1)
		go s.valueLogGC()
	}
	return s, nil
}

func (s *Store) valueLogGC() {
	defer s.gcWg.Done()
	for {
		select {
		case <-s.gcTicker.C:
			for {
				err := s.db.RunValueLogGC(0.5)
				if err == nil {
					continue
				}
				if !errors.Is(err, badger.ErrNoRewrite) {
					s.logger.Warn("value log GC failed", slog.Any("error", err))
				}
				break
			}
		case <-s.gcStopCh:
			return
		}
	}
}

// View runs fn in a read-only badger transaction.
func (s *Store) View(ctx context.Context, fn func(port.Txn) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.View(func(tx *badger.Txn) error {
		return fn(&txn{tx: tx, readOnly: true})
	})
}

// Update runs fn in a read/write badger transaction. Writers are serialized
// so that calls never conflict with each other.
func (s *Store) Update(ctx context.Context, fn func(port.Txn) error) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(tx *badger.Txn) error {
		return fn(&txn{tx: tx})
	})
}

// Close stops background GC and closes the database.
func (s *Store) Close() error {
	if s.gcTicker != nil {
		s.gcTicker.Stop()
		close(s.gcStopCh)
		s.gcWg.Wait()
		s.gcTicker = nil
	}
	return s.db.Close()
}

type txn struct {
	tx       *badger.Txn
	readOnly bool
}

func (t *txn) Get(key []byte) ([]byte, error) {
	item, err := t.tx.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, port.ErrKeyNotFound
		}
		return nil, err
	}
	return item.ValueCopy(nil)
}

func (t *txn) Has(key []byte) (bool, error) {
	_, err := t.tx.Get(key)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, badger.ErrKeyNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (t *txn) Set(key, value []byte) error {
	if t.readOnly {
		return port.ErrReadOnlyTxn
	}
	return t.tx.Set(key, value)
}
