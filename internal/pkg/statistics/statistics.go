package statistics

import (
	"context"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/juanrengga/seido-web/app/repository"
	"github.com/juanrengga/seido-web/internal/pkg/cache"
)

const (
	CacheKeyArticlesTotal  = "statistics:articles:total"
	CacheKeyProjectsTotal  = "statistics:projects:total"
	CacheKeyMessagesUnread = "statistics:messages:unread"
	CacheKeyPageViewsTotal = "statistics:pageviews:total"
	CacheExpiration        = 30 * time.Minute
)

// DashboardData holds the counts shown on the admin dashboard
type DashboardData struct {
	TotalArticles  int
	TotalProjects  int
	UnreadMessages int
	TotalPageViews int
}

var (
	lastCacheUpdate     time.Time
	cacheUpdateMutex    sync.Mutex
	cacheUpdateInterval = 5 * time.Minute
)

// UpdateCacheIfNeeded refreshes the cached counts at most once per interval
func UpdateCacheIfNeeded(ctx context.Context) {
	cacheUpdateMutex.Lock()
	defer cacheUpdateMutex.Unlock()

	if time.Since(lastCacheUpdate) <= cacheUpdateInterval {
		return
	}

	if err := UpdateStatisticsCache(ctx); err != nil {
		log.Printf("Error updating statistics cache: %v", err)
		return
	}
	lastCacheUpdate = time.Now()
}

// UpdateStatisticsCache recounts everything and stores it in the cache
func UpdateStatisticsCache(ctx context.Context) error {
	factory := repository.GetGlobalFactory()

	totalArticles, err := factory.GetArticleRepository().Count(ctx)
	if err != nil {
		return err
	}

	totalProjects, err := factory.GetPortfolioRepository().Count(ctx)
	if err != nil {
		return err
	}

	unreadMessages, err := factory.GetMessageRepository().CountUnread(ctx)
	if err != nil {
		return err
	}

	totalPageViews, err := factory.GetPageViewRepository().Count(ctx)
	if err != nil {
		return err
	}

	cache.Set(CacheKeyArticlesTotal, strconv.FormatInt(totalArticles, 10), CacheExpiration)
	cache.Set(CacheKeyProjectsTotal, strconv.FormatInt(totalProjects, 10), CacheExpiration)
	cache.Set(CacheKeyMessagesUnread, strconv.FormatInt(unreadMessages, 10), CacheExpiration)
	cache.Set(CacheKeyPageViewsTotal, strconv.FormatInt(totalPageViews, 10), CacheExpiration)

	return nil
}

// GetDashboardData reads the cached counts. When a key is missing or the
// cache is unreachable the count is taken live from the database instead.
func GetDashboardData(ctx context.Context) DashboardData {
	UpdateCacheIfNeeded(ctx)

	factory := repository.GetGlobalFactory()

	return DashboardData{
		TotalArticles: cachedCount(CacheKeyArticlesTotal, func() (int64, error) {
			return factory.GetArticleRepository().Count(ctx)
		}),
		TotalProjects: cachedCount(CacheKeyProjectsTotal, func() (int64, error) {
			return factory.GetPortfolioRepository().Count(ctx)
		}),
		UnreadMessages: cachedCount(CacheKeyMessagesUnread, func() (int64, error) {
			return factory.GetMessageRepository().CountUnread(ctx)
		}),
		TotalPageViews: cachedCount(CacheKeyPageViewsTotal, func() (int64, error) {
			return factory.GetPageViewRepository().Count(ctx)
		}),
	}
}

// cachedCount prefers the cached value and falls back to a live count when
// the cache cannot serve the key
func cachedCount(key string, live func() (int64, error)) int {
	if v, err := cache.GetInt(key); err == nil {
		return v
	}

	v, err := live()
	if err != nil {
		log.Printf("Error counting for %s: %v", key, err)
		return 0
	}

	return int(v)
}
