// Package distrib shares a parameter set between processes through Redis.
// The set is stored as its JSON literal, so every reader decodes and validates
// its own copy.
package distrib

import (
	"context"
	"time"

	"github.com/bittube/tube-params/consensus/params"
	"github.com/bittube/tube-params/consensus/utils"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const DefaultKey = "tube:params"

var ErrNotPublished = errors.New("parameters not published")

// Store is the subset of *redis.Client used here.
type Store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

type Publisher struct {
	store Store
	key   string
}

// NewPublisher writes under key, DefaultKey when empty.
func NewPublisher(store Store, key string) *Publisher {
	if key == "" {
		key = DefaultKey
	}
	return &Publisher{store: store, key: key}
}

// Publish validates s and replaces the stored set.
func (p *Publisher) Publish(ctx context.Context, s params.Set) error {
	if err := s.Validate(); err != nil {
		return errors.Wrap(err, "refusing to publish")
	}
	buf, err := params.ToJSON(s)
	if err != nil {
		return err
	}
	if err = p.store.Set(ctx, p.key, buf, 0).Err(); err != nil {
		return errors.Wrap(err, "redis set")
	}
	utils.Logf("Distrib", "published %s %s parameters to %s", s.CoinSymbol, s.NetworkType, p.key)
	return nil
}

type Reader struct {
	store Store
	key   string
}

// NewReader reads from key, DefaultKey when empty.
func NewReader(store Store, key string) *Reader {
	if key == "" {
		key = DefaultKey
	}
	return &Reader{store: store, key: key}
}

// Load fetches the published set and builds a Registry from it.
func (r *Reader) Load(ctx context.Context) (*params.Registry, error) {
	data, err := r.store.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errors.Wrapf(ErrNotPublished, "key %s", r.key)
		}
		return nil, errors.Wrap(err, "redis get")
	}

	s, err := params.FromJSON(data)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s", r.key)
	}
	return params.NewRegistry(s)
}
