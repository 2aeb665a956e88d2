package store

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/katalvlaran/tilewave/tile"
)

// Sentinel errors.
var (
	// ErrNotFound is returned for an unknown snapshot id.
	ErrNotFound = errors.New("store: snapshot not found")

	// ErrCorrupt is returned when a stored value cannot be decoded.
	ErrCorrupt = errors.New("store: corrupt snapshot")

	// ErrNoPath is returned by Open for an on-disk config without Path.
	ErrNoPath = errors.New("store: path is required for a persistent store")
)

const keyPrefix = "snap/"

// Snapshot is one finished run.
type Snapshot struct {
	ID        uuid.UUID
	Seed      int64
	Topology  string
	Patterns  []tile.Pattern
	Attempts  int
	CreatedAt time.Time
}

// LabelCounts tallies corner labels over all cells.
func (s *Snapshot) LabelCounts() map[tile.Label]int {
	out := make(map[tile.Label]int, len(tile.Labels()))
	for _, p := range s.Patterns {
		for _, l := range p.Labels() {
			out[l]++
		}
	}
	return out
}

// Store is a BadgerDB-backed snapshot repository. Safe for concurrent use.
type Store struct {
	db *badger.DB
	gc *gcRunner
}

// Open opens (or creates) the store described by cfg.
func Open(cfg Config) (*Store, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, ErrNoPath
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("store: create directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).WithNumVersionsToKeep(1)
	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("store: open badger: %w", err)
	}

	s := &Store{db: db}
	if cfg.GCInterval > 0 && !cfg.InMemory {
		s.gc = newGCRunner(db, cfg.GCInterval, cfg.GCDiscardRatio, cfg.Logger)
		s.gc.start()
	}
	return s, nil
}

// Close stops background GC and closes the database.
func (s *Store) Close() error {
	if s.gc != nil {
		s.gc.stop()
	}
	return s.db.Close()
}

// Put stores snap. A zero ID is replaced by a fresh UUID and a zero
// CreatedAt by the current time; the stored id is returned.
func (s *Store) Put(snap *Snapshot) (uuid.UUID, error) {
	if snap.ID == uuid.Nil {
		snap.ID = uuid.New()
	}
	if snap.CreatedAt.IsZero() {
		snap.CreatedAt = time.Now().UTC()
	}

	val, err := marshal(snap)
	if err != nil {
		return uuid.Nil, fmt.Errorf("store: encode %s: %w", snap.ID, err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(snap.ID), val)
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("store: put %s: %w", snap.ID, err)
	}
	return snap.ID, nil
}

// Get loads the snapshot with id. Returns ErrNotFound if absent.
func (s *Store) Get(id uuid.UUID) (*Snapshot, error) {
	var snap *Snapshot
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			snap, err = unmarshal(val)
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// List returns every stored snapshot, oldest first.
func (s *Store) List() ([]*Snapshot, error) {
	var out []*Snapshot
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				snap, err := unmarshal(val)
				if err != nil {
					return fmt.Errorf("%s: %w", it.Item().Key(), err)
				}
				out = append(out, snap)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// Delete removes the snapshot with id. Returns ErrNotFound if absent.
func (s *Store) Delete(id uuid.UUID) error {
	return s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key(id)); errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		} else if err != nil {
			return err
		}
		return txn.Delete(key(id))
	})
}

func key(id uuid.UUID) []byte {
	return []byte(keyPrefix + id.String())
}

// gcRunner periodically runs value-log GC until stopped.
type gcRunner struct {
	db       *badger.DB
	interval time.Duration
	ratio    float64
	logger   *slog.Logger
	stopCh   chan struct{}
	doneCh   chan struct{}
}

func newGCRunner(db *badger.DB, interval time.Duration, ratio float64, logger *slog.Logger) *gcRunner {
	return &gcRunner{
		db:       db,
		interval: interval,
		ratio:    ratio,
		logger:   logger,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

func (r *gcRunner) start() { go r.run() }

func (r *gcRunner) stop() {
	close(r.stopCh)
	<-r.doneCh
}

func (r *gcRunner) run() {
	defer close(r.doneCh)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopCh:
			return
		case <-ticker.C:
			// ErrNoRewrite means there was nothing to collect.
			if err := r.db.RunValueLogGC(r.ratio); err != nil && !errors.Is(err, badger.ErrNoRewrite) && r.logger != nil {
				r.logger.Warn("badger value log GC error", slog.String("error", err.Error()))
			}
		}
	}
}
