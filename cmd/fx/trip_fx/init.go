package trip_fx

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"dreamtrip/internal/cache"
	"dreamtrip/internal/events"
	"dreamtrip/internal/providers"
	"dreamtrip/internal/repositories"
	"dreamtrip/internal/services"
	"dreamtrip/pkg/memcache"
)

var Module = fx.Provide(
	provideTripRepo,
	provideTripResultRepo,
	provideTripCache,
	provideInflightGuard,
	provideTripService,
	provideTripProcessingService,
)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripResultRepo(db *gorm.DB) repositories.TripResultRepository {
	return repositories.NewTripResultRepository(db)
}

func provideTripCache(client *redis.Client) cache.TripCache {
	return cache.NewRedisTripCache(client)
}

func provideInflightGuard() *memcache.InflightGuard {
	return memcache.NewInflightGuard()
}

func provideTripService(
	tripRepo repositories.TripRepository,
	tripCache cache.TripCache,
	notifier events.Notifier,
) services.TripServiceInterface {
	return services.NewTripService(tripRepo, tripCache, notifier)
}

func provideTripProcessingService(
	gateway providers.Gateway,
	tripRepo repositories.TripRepository,
	resultRepo repositories.TripResultRepository,
	tripCache cache.TripCache,
	notifier events.Notifier,
	inflight *memcache.InflightGuard,
) services.TripProcessingServiceInterface {
	return services.NewTripProcessingService(gateway, tripRepo, resultRepo, tripCache, notifier, inflight)
}
