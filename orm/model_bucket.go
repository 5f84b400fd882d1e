package orm

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/keyper-labs/linera.dev"
	"github.com/keyper-labs/linera.dev/errors"
)

var isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// Model is implemented by any entity that can be stored using ModelBucket.
type Model interface {
	linera.Persistent
	Validate() error
}

// ModelBucket stores models of a single type under a common key prefix.
type ModelBucket struct {
	name   string
	prefix []byte
	model  reflect.Type
}

// NewModelBucket returns a ModelBucket storing entities of the same type as
// given model. Bucket name must be unique within the application.
func NewModelBucket(name string, model Model) ModelBucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("illegal bucket: %s", name))
	}
	tp := reflect.TypeOf(model)
	if tp.Kind() != reflect.Ptr {
		panic(fmt.Sprintf("model must be a pointer, got %T", model))
	}
	return ModelBucket{
		name:   name,
		prefix: []byte(name + ":"),
		model:  tp.Elem(),
	}
}

// Name returns the name of this bucket.
func (b ModelBucket) Name() string {
	return b.name
}

// DBKey is the full key we store in the db, including prefix.
func (b ModelBucket) DBKey(key []byte) []byte {
	out := make([]byte, len(b.prefix)+len(key))
	n := copy(out, b.prefix)
	copy(out[n:], key)
	return out
}

// One query the database for a single model instance. Result is loaded into
// given destination model. This method returns ErrNotFound if the entity
// does not exist in the database.
func (b ModelBucket) One(db linera.ReadOnlyKVStore, key []byte, dest Model) error {
	if err := b.checkType(dest); err != nil {
		return err
	}
	dbkey := b.DBKey(key)
	raw, err := db.Get(dbkey)
	if err != nil {
		return errors.Wrap(err, "cannot load from the database")
	}
	if raw == nil {
		// A model with all fields set to zero value is encoded to an
		// empty value that some stores return as nil.
		if ok, err := db.Has(dbkey); err != nil || !ok {
			return errors.Wrapf(errors.ErrNotFound, "%s %X", b.name, key)
		}
	}
	dest.Reset()
	if err := linera.Unmarshal(raw, dest); err != nil {
		return errors.Wrapf(err, "%s %X", b.name, key)
	}
	return nil
}

// Has returns true if an entity with given key exists.
func (b ModelBucket) Has(db linera.ReadOnlyKVStore, key []byte) (bool, error) {
	ok, err := db.Has(b.DBKey(key))
	if err != nil {
		return false, errors.Wrap(err, "cannot check the database")
	}
	return ok, nil
}

// Put validates and saves given model in the database.
func (b ModelBucket) Put(db linera.KVStore, key []byte, m Model) error {
	if err := b.checkType(m); err != nil {
		return err
	}
	if err := m.Validate(); err != nil {
		return errors.Wrapf(err, "invalid %s model", b.name)
	}
	raw, err := linera.Marshal(m)
	if err != nil {
		return err
	}
	if err := db.Set(b.DBKey(key), raw); err != nil {
		return errors.Wrap(err, "cannot store in the database")
	}
	return nil
}

// Delete removes an entity with given primary key from the database.
// It returns ErrNotFound if an entity with given key does not exist.
func (b ModelBucket) Delete(db linera.KVStore, key []byte) error {
	dbkey := b.DBKey(key)
	ok, err := db.Has(dbkey)
	if err != nil {
		return errors.Wrap(err, "cannot check the database")
	}
	if !ok {
		return errors.Wrapf(errors.ErrNotFound, "%s %X", b.name, key)
	}
	return db.Delete(dbkey)
}

// Visit calls fn for every entity stored in this bucket in ascending key
// order. Each entity is loaded into a fresh model instance. Returning an
// error from fn stops the iteration and the error is returned. Visit only
// collects entries before calling fn so that fn may modify the bucket.
func (b ModelBucket) Visit(db linera.ReadOnlyKVStore, fn func(key []byte, m Model) error) error {
	it, err := db.Iterator(b.prefix, prefixEnd(b.prefix))
	if err != nil {
		return errors.Wrap(err, "cannot iterate")
	}
	type entry struct{ key, value []byte }
	var entries []entry
	for {
		key, value, err := it.Next()
		if errors.ErrIteratorDone.Is(err) {
			break
		}
		if err != nil {
			it.Release()
			return errors.Wrap(err, "iterator")
		}
		entries = append(entries, entry{key: key[len(b.prefix):], value: value})
	}
	it.Release()

	for _, e := range entries {
		m := reflect.New(b.model).Interface().(Model)
		if err := linera.Unmarshal(e.value, m); err != nil {
			return errors.Wrapf(err, "%s %X", b.name, e.key)
		}
		if err := fn(e.key, m); err != nil {
			return err
		}
	}
	return nil
}

func (b ModelBucket) checkType(m Model) error {
	if tp := reflect.TypeOf(m); tp.Kind() != reflect.Ptr || tp.Elem() != b.model {
		return errors.Wrapf(errors.ErrType, "%s bucket cannot store %T", b.name, m)
	}
	return nil
}

// prefixEnd returns the first key that does not start with given prefix.
func prefixEnd(prefix []byte) []byte {
	end := append([]byte(nil), prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}
