package cache

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Remember returns the value cached under key, or calls load on a miss and
// stores its result for ttl seconds in the background. A failing load is not cached.
func Remember[T any](ctx context.Context, c RedisCache, key string, ttl int, load func(context.Context) (T, error)) (T, error) {
	var value T

	if err := c.Get(ctx, key, &value); err == nil {
		log.Debug().Str("cacheKey", key).Msg("cache hit")

		return value, nil
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	go func() {
		if err := c.Save(context.WithoutCancel(ctx), key, value, ttl); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to write cache entry")
		}
	}()

	return value, nil
}
