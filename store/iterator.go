package store

import (
	"bytes"

	"github.com/keyper-labs/linera.dev/errors"
)

// cacheIterator combines the items written to a cache with the results of
// the parent store iterator. Cached items shadow parent entries with the
// same key and deleted items hide them.
type cacheIterator struct {
	items     []keyer
	idx       int
	parent    Iterator
	ascending bool

	// current parent entry, valid if loaded is set
	pkey, pvalue []byte
	loaded       bool
	parentDone   bool
}

var _ Iterator = (*cacheIterator)(nil)

func newCacheIterator(items []keyer, parent Iterator, ascending bool) *cacheIterator {
	return &cacheIterator{
		items:     items,
		parent:    parent,
		ascending: ascending,
	}
}

// Next returns the next key-value pair, skipping deleted entries.
func (c *cacheIterator) Next() ([]byte, []byte, error) {
	for {
		if err := c.loadParent(); err != nil {
			return nil, nil, err
		}

		var item keyer
		if c.idx < len(c.items) {
			item = c.items[c.idx]
		}

		switch c.firstKey(item) {
		case none:
			return nil, nil, errors.ErrIteratorDone
		case parent:
			c.loaded = false
			return c.pkey, c.pvalue, nil
		case both:
			// Cached item shadows the parent entry.
			c.loaded = false
			fallthrough
		case us:
			c.idx++
			if set, ok := item.(setItem); ok {
				return set.key, set.value, nil
			}
			// Deleted item, continue with the next one.
		}
	}
}

// Release releases the parent iterator.
func (c *cacheIterator) Release() {
	c.parent.Release()
	c.items = nil
}

func (c *cacheIterator) loadParent() error {
	if c.loaded || c.parentDone {
		return nil
	}
	key, value, err := c.parent.Next()
	switch {
	case err == nil:
		c.pkey, c.pvalue, c.loaded = key, value, true
		return nil
	case errors.ErrIteratorDone.Is(err):
		c.parentDone = true
		return nil
	default:
		return err
	}
}

// source marks where the current item comes from
type source int32

const (
	us source = iota
	parent
	both
	none
)

// firstKey selects the iterator with the lowest key (highest for descending
// iteration) if any.
func (c *cacheIterator) firstKey(item keyer) source {
	switch {
	case item == nil && !c.loaded:
		return none
	case item == nil:
		return parent
	case !c.loaded:
		return us
	}

	cmp := bytes.Compare(c.pkey, item.Key())
	if !c.ascending {
		cmp = -cmp
	}
	switch {
	case cmp < 0:
		return parent
	case cmp > 0:
		return us
	default:
		return both
	}
}

// SliceIterator wraps an Iterator over a slice of models
type SliceIterator struct {
	data []Model
	idx  int
}

var _ Iterator = (*SliceIterator)(nil)

// NewSliceIterator creates a new Iterator over this slice
func NewSliceIterator(data []Model) *SliceIterator {
	return &SliceIterator{
		data: data,
	}
}

// Next returns the next model of the slice.
func (s *SliceIterator) Next() ([]byte, []byte, error) {
	if s.idx >= len(s.data) {
		return nil, nil, errors.ErrIteratorDone
	}
	m := s.data[s.idx]
	s.idx++
	return m.Key, m.Value, nil
}

// Release releases the Iterator.
func (s *SliceIterator) Release() {
	s.data = nil
}

// ReadAll drains given iterator and returns all models it contained. The
// iterator is released.
func ReadAll(it Iterator) ([]Model, error) {
	defer it.Release()

	var res []Model
	for {
		key, value, err := it.Next()
		if errors.ErrIteratorDone.Is(err) {
			return res, nil
		}
		if err != nil {
			return nil, err
		}
		res = append(res, Pair(key, value))
	}
}
