package tokenstorefake

import (
	"context"
	"sync"

	"github.com/jrsteele09/wellbe/tokenstore"
)

var _ tokenstore.Store = (*FakeStore)(nil)

// FakeStore is an in-memory Store. It counts reads per key and can be told to fail
// writes, which the tests use to check ordering and hydration.
type FakeStore struct {
	values  map[string]string
	reads   map[string]int
	failSet error
	failKey string
	failDel error
	lock    sync.RWMutex
}

func NewFakeStore() *FakeStore {
	return &FakeStore{
		values: make(map[string]string),
		reads:  make(map[string]int),
	}
}

func (fs *FakeStore) Get(_ context.Context, key string) (string, error) {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	fs.reads[key]++
	v, ok := fs.values[key]
	if !ok {
		return "", tokenstore.ErrKeyNotFound
	}
	return v, nil
}

func (fs *FakeStore) Set(_ context.Context, key, value string) error {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	if fs.failSet != nil && (fs.failKey == "" || fs.failKey == key) {
		return fs.failSet
	}
	fs.values[key] = value
	return nil
}

func (fs *FakeStore) Delete(_ context.Context, keys ...string) error {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	if fs.failDel != nil {
		return fs.failDel
	}
	for _, k := range keys {
		delete(fs.values, k)
	}
	return nil
}

// Reads returns how many times key has been read.
func (fs *FakeStore) Reads(key string) int {
	fs.lock.RLock()
	defer fs.lock.RUnlock()
	return fs.reads[key]
}

// Has reports whether key currently holds a value.
func (fs *FakeStore) Has(key string) bool {
	fs.lock.RLock()
	defer fs.lock.RUnlock()
	_, ok := fs.values[key]
	return ok
}

// Len returns the number of stored keys.
func (fs *FakeStore) Len() int {
	fs.lock.RLock()
	defer fs.lock.RUnlock()
	return len(fs.values)
}

// FailSets makes every following Set return err. Pass nil to stop failing.
func (fs *FakeStore) FailSets(err error) {
	fs.lock.Lock()
	defer fs.lock.Unlock()
	fs.failSet = err
	fs.failKey = ""
}

// FailSetsOn makes Set return err for key only. Other keys are written normally.
func (fs *FakeStore) FailSetsOn(key string, err error) {
	fs.lock.Lock()
	defer fs.lock.Unlock()
	fs.failSet = err
	fs.failKey = key
}

// FailDeletes makes every following Delete return err. Pass nil to stop failing.
func (fs *FakeStore) FailDeletes(err error) {
	fs.lock.Lock()
	defer fs.lock.Unlock()
	fs.failDel = err
}
