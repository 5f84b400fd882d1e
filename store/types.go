//nolint
package store

import "github.com/keyper-labs/linera.dev"

// Move references for all storage types into this package
// for shorter names everywhere

type ReadOnlyKVStore = linera.ReadOnlyKVStore
type SetDeleter = linera.SetDeleter
type KVStore = linera.KVStore
type Batch = linera.Batch
type Iterator = linera.Iterator
type CacheableKVStore = linera.CacheableKVStore
type KVCacheWrap = linera.KVCacheWrap
type CommitKVStore = linera.CommitKVStore
type CommitID = linera.CommitID

// Model groups together key and value to return
type Model struct {
	Key   []byte
	Value []byte
}

// Pair constructs a model from a key-value pair
func Pair(key, value []byte) Model {
	return Model{Key: key, Value: value}
}
