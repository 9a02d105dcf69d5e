//nolint
package store

import "github.com/dappr-network/dappr"

// Move references for all storage types into this package
// for shorter names everywhere

type KVStore = dappr.KVStore
type ReadOnlyKVStore = dappr.ReadOnlyKVStore
type Iterator = dappr.Iterator
type CacheableKVStore = dappr.CacheableKVStore
type KVCacheWrap = dappr.KVCacheWrap
type Model = dappr.Model
type SetDeleter = dappr.SetDeleter
type Batch = dappr.Batch
