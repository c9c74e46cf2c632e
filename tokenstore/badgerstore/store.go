// Package badgerstore persists credentials in an embedded Badger database. When a
// passphrase is configured every value is sealed before it is written.
package badgerstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v3"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/jrsteele09/wellbe/tokenstore"
)

const (
	keyPrefix = "wellbe/"
	metaKey   = "__meta/kdf"
)

var _ tokenstore.Store = (*Store)(nil)

type Store struct {
	db     *badger.DB
	sealer *sealer
	logger zerolog.Logger
}

type options struct {
	passphrase string
	scrypt     ScryptParams
	inMemory   bool
	logger     zerolog.Logger
}

type Option func(*options)

// WithPassphrase seals values with a key derived from passphrase.
func WithPassphrase(passphrase string) Option {
	return func(o *options) { o.passphrase = passphrase }
}

func WithScryptParams(p ScryptParams) Option {
	return func(o *options) { o.scrypt = p }
}

// InMemory keeps the database in memory only. dir is ignored.
func InMemory() Option {
	return func(o *options) { o.inMemory = true }
}

func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Open opens or creates the store at dir.
func Open(dir string, opts ...Option) (*Store, error) {
	o := options{scrypt: DefaultScryptParams(), logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if dir == "" && !o.inMemory {
		return nil, fmt.Errorf("[badgerstore.Open] dir is required")
	}

	bopts := badger.DefaultOptions(dir)
	if o.inMemory {
		bopts = badger.DefaultOptions("").WithInMemory(true)
	}
	bopts.Logger = &badgerLogger{logger: o.logger}

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, errors.Wrap(err, "[badgerstore.Open] open db")
	}
	s := &Store{db: db, logger: o.logger}

	if o.passphrase != "" {
		if s.sealer, err = s.loadSealer(o.passphrase, o.scrypt); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	o.logger.Debug().Str("dir", dir).Bool("sealed", s.sealer != nil).Msg("token store opened")
	return s, nil
}

// loadSealer reads the persisted KDF parameters or writes fresh ones on first use,
// then verifies the passphrase against the stored check value.
func (s *Store) loadSealer(passphrase string, p ScryptParams) (*sealer, error) {
	raw, err := s.get([]byte(metaKey))
	if err != nil && !errors.Is(err, tokenstore.ErrKeyNotFound) {
		return nil, errors.Wrap(err, "[badgerstore.Open] read kdf params")
	}

	if errors.Is(err, tokenstore.ErrKeyNotFound) {
		kp, err := newParams(p)
		if err != nil {
			return nil, err
		}
		sl, err := deriveSealer(passphrase, kp)
		if err != nil {
			return nil, err
		}
		if kp.Check, err = sl.seal(checkPlaintext, []byte(metaKey)); err != nil {
			return nil, err
		}
		b, err := marshalParams(kp)
		if err != nil {
			return nil, err
		}
		if err := s.put([]byte(metaKey), b); err != nil {
			return nil, errors.Wrap(err, "[badgerstore.Open] write kdf params")
		}
		return sl, nil
	}

	kp, err := unmarshalParams(raw)
	if err != nil {
		return nil, err
	}
	sl, err := deriveSealer(passphrase, kp)
	if err != nil {
		return nil, err
	}
	if _, err := sl.open(kp.Check, []byte(metaKey)); err != nil {
		return nil, err
	}
	return sl, nil
}

func (s *Store) Get(_ context.Context, key string) (string, error) {
	k := storageKey(key)
	v, err := s.get(k)
	if err != nil {
		return "", err
	}
	if s.sealer != nil {
		if v, err = s.sealer.open(v, k); err != nil {
			return "", err
		}
	}
	return string(v), nil
}

func (s *Store) Set(_ context.Context, key, value string) error {
	k := storageKey(key)
	v := []byte(value)
	if s.sealer != nil {
		var err error
		if v, err = s.sealer.seal(v, k); err != nil {
			return err
		}
	}
	return s.put(k, v)
}

// Delete removes all keys in one transaction.
func (s *Store) Delete(_ context.Context, keys ...string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		for _, key := range keys {
			if err := txn.Delete(storageKey(key)); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) get(key []byte) ([]byte, error) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return tokenstore.ErrKeyNotFound
			}
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	return value, err
}

func (s *Store) put(key, value []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
}

func storageKey(key string) []byte {
	return []byte(keyPrefix + key)
}

// badgerLogger routes Badger's internal logging into zerolog.
type badgerLogger struct {
	logger zerolog.Logger
}

func (l *badgerLogger) Errorf(f string, v ...interface{}) {
	l.logger.Error().Msg(strings.TrimSpace(fmt.Sprintf(f, v...)))
}

func (l *badgerLogger) Warningf(f string, v ...interface{}) {
	l.logger.Warn().Msg(strings.TrimSpace(fmt.Sprintf(f, v...)))
}

func (l *badgerLogger) Infof(f string, v ...interface{}) {
	l.logger.Debug().Msg(strings.TrimSpace(fmt.Sprintf(f, v...)))
}

func (l *badgerLogger) Debugf(f string, v ...interface{}) {
	l.logger.Trace().Msg(strings.TrimSpace(fmt.Sprintf(f, v...)))
}
