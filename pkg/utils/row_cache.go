package utils

import (
	"bytes"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// RowCache stores encoded table rows under a per-source namespace so a parsed table can be
// rebuilt without re-reading the source.
type RowCache struct {
	db *badger.DB
}

func OpenRowCache(path string) (*RowCache, error) {
	opts := badger.DefaultOptions(path)
	// Decrease logging verbosity
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &RowCache{db: db}, nil
}

func (c *RowCache) Close() error {
	return c.db.Close()
}

func rowKey(namespace string, idx int) []byte {
	return []byte(fmt.Sprintf("%s/%08d", namespace, idx))
}

func namespacePrefix(namespace string) []byte {
	return []byte(namespace + "/")
}

// PutRows replaces every row stored under namespace. Row order is preserved.
func (c *RowCache) PutRows(namespace string, rows [][]byte) error {
	if err := c.DropNamespace(namespace); err != nil {
		return err
	}
	wb := c.db.NewWriteBatch()
	defer wb.Cancel()

	for i, v := range rows {
		if err := wb.Set(rowKey(namespace, i), v); err != nil {
			return err
		}
	}
	return wb.Flush()
}

// Rows returns the rows stored under namespace in insertion order, or nil when there are none.
func (c *RowCache) Rows(namespace string) ([][]byte, error) {
	var rows [][]byte
	err := c.ForEach(namespace, func(_ []byte, v []byte) error {
		rows = append(rows, bytes.Clone(v))
		return nil
	})
	return rows, err
}

func (c *RowCache) DropNamespace(namespace string) error {
	return c.db.DropPrefix(namespacePrefix(namespace))
}

// Get returns a single value, or nil when the key is missing.
func (c *RowCache) Get(key string) ([]byte, error) {
	var val []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	return val, err
}

func (c *RowCache) Set(key string, value []byte) error {
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
}

// ForEach visits every key under namespace in key order. The value slice is only valid during fn.
func (c *RowCache) ForEach(namespace string, fn func(k []byte, v []byte) error) error {
	prefix := namespacePrefix(namespace)
	return c.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			k := item.Key()
			err := item.Value(func(v []byte) error {
				return fn(k, v)
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}
