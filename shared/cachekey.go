package shared

import (
	"context"
	"crypto/sha1" //nolint:gosec
	"encoding/hex"
	"encoding/json"
	"resort/shared/cache"
	"resort/shared/constant"
	"resort/shared/dto"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

// BuildCacheKey joins the prefix and parts into a redis key.
func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), cacheKeySeparator)
}

// BuildCacheKeyWithQuery derives a stable key from the list parameters and filters.
func BuildCacheKeyWithQuery(prefix string, req dto.QueryParams, filter dto.FilterGroup) string {
	where, args, err := filter.ToSQL()
	if err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to render cache key filter")

		return BuildCacheKey(prefix, strconv.Itoa(req.Page), strconv.Itoa(req.Limit))
	}

	payload, err := json.Marshal(struct {
		Query dto.QueryParams `json:"query"`
		Where string          `json:"where"`
		Args  []any           `json:"args"`
	}{req, where, args})
	if err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to marshal cache key payload")

		return BuildCacheKey(prefix, strconv.Itoa(req.Page), strconv.Itoa(req.Limit))
	}

	sum := sha1.Sum(payload) //nolint:gosec

	return BuildCacheKey(prefix, hex.EncodeToString(sum[:]))
}

// InvalidateCaches removes every key that starts with prefix.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

// CacheBypassed reports whether the request asked to skip cached reads.
func CacheBypassed(ctx context.Context) bool {
	bypass, _ := ctx.Value(constant.ContextKeyCacheBypass).(bool)

	return bypass
}
