package cache

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	"github.com/rs/zerolog"
)

// BadgerOptions configures the badger-backed cache.
type BadgerOptions struct {
	// Path is the directory holding the cache files; created if missing.
	Path string

	// InMemory opens an ephemeral database (tests, local development).
	InMemory bool

	// ReadOnly makes Set return ErrReadOnly without touching the database,
	// for deployments that hold only a read credential for the cache.
	ReadOnly bool
}

// BadgerCache is a KV backed by an embedded BadgerDB with native entry TTLs.
type BadgerCache struct {
	db       *badger.DB
	readOnly bool
}

// badgerLogger adapts zerolog to badger's logger interface.
type badgerLogger struct {
	log zerolog.Logger
}

var _ badger.Logger = badgerLogger{}

func (l badgerLogger) Errorf(msg string, items ...any)   { l.log.Error().Msgf(msg, items...) }
func (l badgerLogger) Warningf(msg string, items ...any) { l.log.Warn().Msgf(msg, items...) }
func (l badgerLogger) Infof(msg string, items ...any)    { l.log.Debug().Msgf(msg, items...) }
func (l badgerLogger) Debugf(msg string, items ...any)   { l.log.Debug().Msgf(msg, items...) }

// OpenBadger opens (or creates) a badger-backed cache.
func OpenBadger(opts BadgerOptions, log zerolog.Logger) (*BadgerCache, error) {
	var dbOpts badger.Options
	if opts.InMemory {
		dbOpts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(opts.Path, 0o755); err != nil {
			return nil, fmt.Errorf("create cache directory: %w", err)
		}
		dbOpts = badger.DefaultOptions(opts.Path)
	}
	dbOpts.Logger = badgerLogger{log: log}
	dbOpts.Compression = options.None

	db, err := badger.Open(dbOpts)
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}

	return &BadgerCache{db: db, readOnly: opts.ReadOnly}, nil
}

// Get implements KV. Expired entries surface as ErrNotFound; badger drops
// them lazily.
func (c *BadgerCache) Get(_ context.Context, key string) ([]byte, error) {
	var value []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Set implements KV. Writes are skipped entirely in read-only mode.
func (c *BadgerCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if c.readOnly {
		return ErrReadOnly
	}
	return c.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(key), value)
		if ttl > 0 {
			entry = entry.WithTTL(ttl)
		}
		return txn.SetEntry(entry)
	})
}

// Close implements KV.
func (c *BadgerCache) Close() error {
	return c.db.Close()
}

var _ KV = (*BadgerCache)(nil)
