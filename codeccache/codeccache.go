// Package codeccache memoizes the parse stage of repeated DecodeString calls.
// Hot payloads (config watchers, message fan-out, webhook retries) are often
// byte-identical; parsing the same JSON text over and over buys nothing.
//
// Entries are the deterministic-CBOR rendering of the parsed tree, framed by
// internal/wire. A corrupt or foreign entry is treated as a miss and deleted.
// The codec's decode step always runs; only text parsing is skipped.
package codeccache

import (
	"crypto/sha256"
	"fmt"

	"github.com/unkn0wn-root/bicodec"
	"github.com/unkn0wn-root/bicodec/internal/wire"
	"github.com/unkn0wn-root/bicodec/value"
)

// Provider is a minimal in-process byte store. Implementations must be safe
// for concurrent use and byte-for-byte transparent: Get must return exactly
// the []byte previously passed to Set for the same key.
type Provider interface {
	Get(key string) ([]byte, bool)
	Set(key string, payload []byte)
	Del(key string)
	Close() error
}

// Options tune a Cache. Namespace, Codec and Provider are required.
type Options[T any] struct {
	Namespace string // logical namespace to avoid collisions, e.g. "config"
	Codec     bicodec.Codec[T]
	Provider  Provider
	Logger    Logger // if nil, NopLogger is used
}

// Cache wraps a Codec with parse memoization. Construct with New.
type Cache[T any] struct {
	ns    string
	codec bicodec.Codec[T]
	prov  Provider
	log   Logger
}

func New[T any](opts Options[T]) (*Cache[T], error) {
	if opts.Namespace == "" {
		return nil, fmt.Errorf("codeccache: namespace is required")
	}
	if opts.Provider == nil {
		return nil, fmt.Errorf("codeccache: provider is required")
	}
	log := opts.Logger
	if log == nil {
		log = NopLogger{}
	}
	return &Cache[T]{
		ns:    opts.Namespace,
		codec: opts.Codec,
		prov:  opts.Provider,
		log:   log,
	}, nil
}

// DecodeString behaves like bicodec.DecodeString but serves the parsed tree
// from the provider when the same text was seen before.
func (c *Cache[T]) DecodeString(text string) (T, error) {
	var zero T
	key := c.key(text)

	if entry, ok := c.prov.Get(key); ok {
		tree, err := c.thaw(entry)
		if err != nil {
			c.log.Warn("dropping unreadable cache entry", Fields{"key": key, "err": err.Error()})
			c.prov.Del(key)
		} else {
			c.log.Debug("parse cache hit", Fields{"key": key})
			return c.decode(tree)
		}
	}

	tree, err := value.ParseString(text)
	if err != nil {
		return zero, err
	}
	c.log.Debug("parse cache miss", Fields{"key": key})

	if payload, err := value.MarshalCBOR(tree); err == nil {
		c.prov.Set(key, wire.Encode(payload))
	} else {
		c.log.Warn("cannot cache parsed tree", Fields{"key": key, "err": err.Error()})
	}

	return c.decode(tree)
}

func (c *Cache[T]) decode(tree value.Value) (T, error) {
	out, errs := bicodec.DecodeValue(c.codec, tree)
	if len(errs) > 0 {
		var zero T
		return zero, value.DecodeErrors(errs)
	}
	return out, nil
}

func (c *Cache[T]) thaw(entry []byte) (value.Value, error) {
	payload, err := wire.Decode(entry)
	if err != nil {
		return nil, err
	}
	return value.UnmarshalCBOR(payload)
}

// key derives a short content-addressed provider key.
func (c *Cache[T]) key(text string) string {
	sum := sha256.Sum256([]byte(text))
	return fmt.Sprintf("parse:%s:%x", c.ns, sum[:8])
}

func (c *Cache[T]) Close() error { return c.prov.Close() }
