package services

import (
	"context"
	"encoding/json"
	"time"

	"homepro/config"
	"homepro/models"
)

const (
	categoriesCacheKey = "catalog:categories"
	catalogCacheTTL    = 10 * time.Minute
)

// CachedCategories returns the category tree from Redis, or false when
// the cache is cold or disabled.
func CachedCategories(ctx context.Context) ([]models.Category, bool) {
	if config.RedisClient == nil {
		return nil, false
	}

	data, err := config.RedisClient.Get(ctx, categoriesCacheKey).Bytes()
	if err != nil {
		return nil, false
	}

	var categories []models.Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, false
	}
	return categories, true
}

func CacheCategories(ctx context.Context, categories []models.Category) {
	if config.RedisClient == nil {
		return
	}

	data, err := json.Marshal(categories)
	if err != nil {
		return
	}
	config.RedisClient.Set(ctx, categoriesCacheKey, data, catalogCacheTTL)
}

// InvalidateCatalogCache drops cached catalog data after admin writes.
func InvalidateCatalogCache(ctx context.Context) {
	if config.RedisClient == nil {
		return
	}
	config.RedisClient.Del(ctx, categoriesCacheKey)
}
