package utils

import (
	"context"
	"time"

	"github.com/bittube/tube-params/consensus/params"
	"github.com/bittube/tube-params/consensus/tube"
	"github.com/bittube/tube-params/consensus/utils"
	"github.com/bittube/tube-params/distrib"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// SourceOptions selects where a parameter set comes from. Without a config
// file the shipped TUBE parameters are used.
type SourceOptions struct {
	Config  string `long:"config" description:"Parameter file, .json or .ini"`
	Network string `long:"network" description:"Override the network type (mainnet, testnet, stagenet)"`
}

type RedisOptions struct {
	Redis string `long:"redis" description:"Redis address, host:port"`
	Key   string `long:"key" description:"Redis key holding the published parameters" default:"tube:params"`
}

func (o SourceOptions) Load() (*params.Registry, error) {
	r := params.Default
	if o.Config != "" {
		var err error
		if r, err = params.LoadFile(o.Config); err != nil {
			return nil, err
		}
	}
	return SelectNetwork(r, o.Network)
}

// SelectNetwork derives a registry for the named network, or returns r as is
// when name is empty.
func SelectNetwork(r *params.Registry, name string) (*params.Registry, error) {
	if name == "" {
		return r, nil
	}
	n, err := tube.ParseNetworkType(name)
	if err != nil {
		return nil, errors.Wrap(err, "--network")
	}
	if n == r.Get().NetworkType {
		return r, nil
	}
	utils.Noticef("Params", "switching network %s -> %s", r.Get().NetworkType, n)
	return r.WithNetwork(n)
}

// ErrConflictingSources is returned when both a parameter file and a Redis
// source are given to a command that reads from one of them.
var ErrConflictingSources = errors.New("--config and --redis are mutually exclusive")

// LoadEither reads the set from Redis when enabled, otherwise from the source
// options. The second return value describes where it came from.
func LoadEither(ctx context.Context, src SourceOptions, r RedisOptions) (*params.Registry, string, error) {
	if err := CheckSources(src, r); err != nil {
		return nil, "", err
	}
	if r.Enabled() {
		registry, err := r.Load(ctx, src.Network)
		return registry, "redis " + r.Key, err
	}

	registry, err := src.Load()
	if src.Config == "" {
		return registry, "shipped parameters", err
	}
	return registry, src.Config, err
}

func CheckSources(src SourceOptions, r RedisOptions) error {
	if src.Config != "" && r.Enabled() {
		return ErrConflictingSources
	}
	return nil
}

func (o RedisOptions) Enabled() bool {
	return o.Redis != ""
}

// Client connects and pings the configured Redis server.
func (o RedisOptions) Client(ctx context.Context) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         o.Redis,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrapf(err, "connecting to redis %s", o.Redis)
	}
	return client, nil
}

// Load reads the published parameters and applies the network override.
func (o RedisOptions) Load(ctx context.Context, network string) (*params.Registry, error) {
	client, err := o.Client(ctx)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	r, err := distrib.NewReader(client, o.Key).Load(ctx)
	if err != nil {
		return nil, err
	}
	utils.Logf("Params", "loaded %s %s parameters from redis %s", r.Get().CoinSymbol, r.Get().NetworkType, o.Key)
	return SelectNetwork(r, network)
}
