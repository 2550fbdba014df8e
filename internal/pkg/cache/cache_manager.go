package cache

import (
	"time"

	"go.uber.org/zap"

	"github.com/FACorreiaa/go-supra/internal/app/models"
)

// CacheManager holds the backend lookup caches.
type CacheManager struct {
	// Restaurants resolved by id when a dish payload only carries restaurantId.
	Restaurants *UnifiedCache[models.Restaurant]
}

// NewCacheManager creates a cache manager. A zero ttl falls back to five minutes.
func NewCacheManager(ttl time.Duration, logger *zap.Logger) *CacheManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CacheManager{
		Restaurants: NewUnifiedCache[models.Restaurant](ttl, "restaurants", logger),
	}
}

// GetAllMetrics returns metrics for all caches
func (cm *CacheManager) GetAllMetrics() map[string]CacheMetrics {
	return map[string]CacheMetrics{
		"restaurants": cm.Restaurants.GetMetrics(),
	}
}
