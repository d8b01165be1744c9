package shared_test

import (
	"context"
	"errors"
	"resort/shared"
	"resort/shared/cache/mocks"
	"resort/shared/constant"
	"resort/shared/dto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "accommodation", shared.BuildCacheKey("accommodation"))
	assert.Equal(t, "accommodation:id:a-1", shared.BuildCacheKey("accommodation", "id", "a-1"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10, SortBy: "name", SortDir: dto.SortDirAsc}
	active := dto.FilterGroup{Filters: []any{dto.Filter{Field: "is_active", Value: true, Operator: dto.FilterOperatorEq}}}
	inactive := dto.FilterGroup{Filters: []any{dto.Filter{Field: "is_active", Value: false, Operator: dto.FilterOperatorEq}}}

	key := shared.BuildCacheKeyWithQuery("packages", params, active)

	assert.True(t, strings.HasPrefix(key, "packages:"))
	assert.Equal(t, key, shared.BuildCacheKeyWithQuery("packages", params, active))
	assert.NotEqual(t, key, shared.BuildCacheKeyWithQuery("packages", params, inactive))

	params.Page = 2
	assert.NotEqual(t, key, shared.BuildCacheKeyWithQuery("packages", params, active))
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	redisCache := mocks.NewMockRedisCache(ctrl)

	redisCache.EXPECT().Clear(gomock.Any(), "packages"+constant.Asterix).Return(nil)
	shared.InvalidateCaches(context.Background(), redisCache, "packages")

	redisCache.EXPECT().Clear(gomock.Any(), "bookings"+constant.Asterix).Return(errors.New("redis down"))
	shared.InvalidateCaches(context.Background(), redisCache, "bookings")
}

func TestCacheBypassed(t *testing.T) {
	assert.False(t, shared.CacheBypassed(context.Background()))
	assert.True(t, shared.CacheBypassed(context.WithValue(context.Background(), constant.ContextKeyCacheBypass, true)))
}
