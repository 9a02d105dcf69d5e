package store

import (
	"bytes"

	"github.com/google/btree"
)

// cacheEntry is one btree item within the iteration domain, materialized
// before the merge starts. A nil value with deleted set marks a shadowing
// tombstone.
type cacheEntry struct {
	key     []byte
	value   []byte
	deleted bool
}

// ascendBtree collects all items of the iteration domain in ascending
// order. Materializing up front keeps the merge below free of callbacks and
// honors the contract that no writes happen during iteration.
func ascendBtree(bt *btree.BTree, start, end []byte) []cacheEntry {
	var out []cacheEntry
	insert := func(item btree.Item) bool {
		out = append(out, toCacheEntry(item))
		return true
	}

	if start == nil && end == nil {
		bt.Ascend(insert)
	} else if start == nil { // end != nil
		bt.AscendLessThan(bkey{end}, insert)
	} else if end == nil { // start != nil
		bt.AscendGreaterOrEqual(bkey{start}, insert)
	} else { // both != nil
		bt.AscendRange(bkey{start}, bkey{end}, insert)
	}
	return out
}

// descendBtree collects all items of the iteration domain in descending
// order. As with the forward direction, start is the inclusive lower bound
// and end the exclusive upper bound of the domain.
func descendBtree(bt *btree.BTree, start, end []byte) []cacheEntry {
	var out []cacheEntry
	insert := func(item btree.Item) bool {
		entry := toCacheEntry(item)
		// btree's descend pivots are inclusive; trim the exclusive end
		// of our contract.
		if end != nil && bytes.Equal(entry.key, end) {
			return true
		}
		if start != nil && bytes.Compare(entry.key, start) < 0 {
			// below the domain, no more matches possible
			return false
		}
		out = append(out, entry)
		return true
	}

	if end == nil {
		bt.Descend(insert)
	} else {
		bt.DescendLessOrEqual(bkey{end}, insert)
	}
	return out
}

func toCacheEntry(item btree.Item) cacheEntry {
	switch t := item.(type) {
	case setItem:
		return cacheEntry{key: t.key, value: t.value}
	case deletedItem:
		return cacheEntry{key: t.key, deleted: true}
	}
	panic("Unknown item in btree")
}

// cacheIter merges the materialized btree entries with the parent iterator.
// On a key collision the cache entry shadows the parent one; tombstones
// swallow parent keys without producing output.
type cacheIter struct {
	cache   []cacheEntry
	idx     int
	parent  Iterator
	reverse bool

	cur     Model
	invalid bool
}

var _ Iterator = (*cacheIter)(nil)

func newCacheIter(cache []cacheEntry, parent Iterator, reverse bool) *cacheIter {
	it := &cacheIter{
		cache:   cache,
		parent:  parent,
		reverse: reverse,
	}
	it.advance()
	return it
}

// before returns true when a sorts before b in iteration order.
func (it *cacheIter) before(a, b []byte) bool {
	if it.reverse {
		return bytes.Compare(a, b) > 0
	}
	return bytes.Compare(a, b) < 0
}

func (it *cacheIter) advance() {
	for {
		haveCache := it.idx < len(it.cache)
		haveParent := it.parent.Valid()

		switch {
		case !haveCache && !haveParent:
			it.invalid = true
			return
		case haveCache && haveParent:
			entry := it.cache[it.idx]
			pkey := it.parent.Key()
			if bytes.Equal(entry.key, pkey) {
				// cache shadows the parent entry
				it.idx++
				it.parent.Next()
				if entry.deleted {
					continue
				}
				it.cur = Model{Key: entry.key, Value: entry.value}
				return
			}
			if it.before(entry.key, pkey) {
				it.idx++
				if entry.deleted {
					continue
				}
				it.cur = Model{Key: entry.key, Value: entry.value}
				return
			}
			it.cur = Model{Key: pkey, Value: it.parent.Value()}
			it.parent.Next()
			return
		case haveCache:
			entry := it.cache[it.idx]
			it.idx++
			if entry.deleted {
				continue
			}
			it.cur = Model{Key: entry.key, Value: entry.value}
			return
		default: // only parent
			it.cur = Model{Key: it.parent.Key(), Value: it.parent.Value()}
			it.parent.Next()
			return
		}
	}
}

// Valid implements Iterator and returns true iff it can be read
func (it *cacheIter) Valid() bool {
	return !it.invalid
}

// Next moves the iterator to the next key in iteration order.
func (it *cacheIter) Next() {
	if it.invalid {
		panic("Next() called on invalid iterator")
	}
	it.advance()
}

// Key returns the key of the cursor.
func (it *cacheIter) Key() []byte {
	if it.invalid {
		panic("Key() called on invalid iterator")
	}
	return it.cur.Key
}

// Value returns the value of the cursor.
func (it *cacheIter) Value() []byte {
	if it.invalid {
		panic("Value() called on invalid iterator")
	}
	return it.cur.Value
}

// Close releases the Iterator.
func (it *cacheIter) Close() {
	it.cache = nil
	it.invalid = true
	it.parent.Close()
}
