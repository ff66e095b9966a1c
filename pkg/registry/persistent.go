package registry

import (
	"encoding/binary"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/marmos91/filecore/internal/logger"
	"github.com/marmos91/filecore/pkg/nodeid"
)

// keyFor returns the BadgerDB key an id is stored under.
func keyFor(id nodeid.NodeId) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(id))
	return key
}

// PersistentRegistry decorates an in-memory NodeRegistry with a BadgerDB
// write-through so the NodeId<->path mapping survives process restarts.
// Rehashing is a non-issue here: NodeId is a pure function of the path
// bytes, so the persisted map only ever needs to outlive the process that
// built it, not follow it through a hash-scheme change.
type PersistentRegistry struct {
	*NodeRegistry
	db *badger.DB
}

// OpenPersistent opens (or creates) a Badger database at dir and loads any
// previously persisted entries into memory.
func OpenPersistent(dir string) (*PersistentRegistry, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	pr := &PersistentRegistry{
		NodeRegistry: New(),
		db:           db,
	}
	if err := pr.load(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return pr, nil
}

func (pr *PersistentRegistry) load() error {
	count := 0
	err := pr.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			key := item.Key()
			if len(key) != 8 {
				continue
			}
			id := nodeid.NodeId(binary.BigEndian.Uint64(key))

			err := item.Value(func(val []byte) error {
				pr.NodeRegistry.mu.Lock()
				defer pr.NodeRegistry.mu.Unlock()
				path := string(val)
				pr.NodeRegistry.toPath[id] = path
				pr.NodeRegistry.toID[path] = id
				count++
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	logger.Info("loaded persisted node registry", "count", count)
	return nil
}

// Register behaves as NodeRegistry.Register, additionally persisting the
// mapping to Badger. Persistence failures are logged but do not fail the
// call: the in-memory registry remains the source of truth for the
// lifetime of the process.
func (pr *PersistentRegistry) Register(path string) nodeid.NodeId {
	id := pr.NodeRegistry.Register(path)
	pr.persist(id, nodeid.Canonicalize(path))
	return id
}

// RegisterBatch behaves as NodeRegistry.RegisterBatch, additionally
// persisting every mapping in one Badger transaction.
func (pr *PersistentRegistry) RegisterBatch(paths []string) []nodeid.NodeId {
	ids := pr.NodeRegistry.RegisterBatch(paths)

	err := pr.db.Update(func(txn *badger.Txn) error {
		for i, id := range ids {
			canonical := nodeid.Canonicalize(paths[i])
			if err := txn.Set(keyFor(id), []byte(canonical)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Warn("failed to persist batch registration", "error", err)
	}
	return ids
}

// Unregister behaves as NodeRegistry.Unregister, additionally removing the
// entry from Badger.
func (pr *PersistentRegistry) Unregister(id nodeid.NodeId) (string, bool) {
	path, ok := pr.NodeRegistry.Unregister(id)
	if ok {
		if err := pr.db.Update(func(txn *badger.Txn) error {
			return txn.Delete(keyFor(id))
		}); err != nil {
			logger.Warn("failed to persist unregister", "error", err)
		}
	}
	return path, ok
}

// Clear behaves as NodeRegistry.Clear, additionally dropping every
// persisted entry.
func (pr *PersistentRegistry) Clear() {
	pr.NodeRegistry.Clear()
	err := pr.db.DropPrefix([]byte{})
	if err != nil {
		logger.Warn("failed to clear persisted registry", "error", err)
	}
}

// Close releases the underlying Badger database.
func (pr *PersistentRegistry) Close() error {
	return pr.db.Close()
}

func (pr *PersistentRegistry) persist(id nodeid.NodeId, path string) {
	err := pr.db.Update(func(txn *badger.Txn) error {
		return txn.Set(keyFor(id), []byte(path))
	})
	if err != nil {
		logger.Warn("failed to persist node registration", "error", err, "path", path)
	}
}
