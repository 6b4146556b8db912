package storage

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// redisKeyPrefix namespaces cart keys inside a shared Redis database.
const redisKeyPrefix = "cart:"

// OpenBackend returns the KV selected by cfg.Backend. The file backend is s
// itself. The returned close function releases network connections and is
// always non-nil.
func OpenBackend(ctx context.Context, s *Storage, cfg *Config, logger *zap.Logger) (KV, func() error, error) {
	noop := func() error { return nil }
	if logger == nil {
		logger = zap.NewNop()
	}

	switch cfg.Backend {
	case BackendFile, "":
		logger.Debug("using file backend", zap.String("path", s.CartPath()))
		return s, noop, nil

	case BackendMemory:
		logger.Debug("using memory backend")
		return NewMemoryKV(), noop, nil

	case BackendRedis:
		client, err := ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.Error("redis connection failed", zap.String("addr", cfg.RedisAddr), zap.Error(err))
			return nil, noop, err
		}
		logger.Debug("using redis backend", zap.String("addr", cfg.RedisAddr), zap.Int("db", cfg.RedisDB))
		kv := NewRedisKV(client, redisKeyPrefix)
		return kv, kv.Close, nil

	case BackendPostgres:
		kv, err := ConnectPostgres(ctx, cfg.PostgresDSN)
		if err != nil {
			logger.Error("postgres connection failed", zap.Error(err))
			return nil, noop, err
		}
		logger.Debug("using postgres backend")
		return kv, kv.Close, nil

	default:
		return nil, noop, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}
