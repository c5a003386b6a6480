package statistics

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"github.com/envaran/EnvaranMatch/app/models"
	"github.com/envaran/EnvaranMatch/internal/pkg/cache"
	"github.com/envaran/EnvaranMatch/internal/pkg/database"
)

const (
	CacheKeyMembersTotal       = "statistics:members:total"
	CacheKeyRegistrationsDaily = "statistics:registrations:daily:%s" // Format with date YYYY-MM-DD
	CacheKeyPremiumTotal       = "statistics:premium:total"
	CacheExpiration            = 30 * time.Minute
)

// Data holds the public counters shown on the landing page.
type Data struct {
	TotalMembers       int `json:"totalMembers"`
	TodayRegistrations int `json:"todayRegistrations"`
	PremiumMembers     int `json:"premiumMembers"`
}

var (
	lastCacheUpdate     time.Time
	cacheUpdateMutex    sync.Mutex
	cacheUpdateInterval = 5 * time.Minute
)

// UpdateCacheIfNeeded refreshes the counters at most every five minutes.
func UpdateCacheIfNeeded() {
	cacheUpdateMutex.Lock()
	defer cacheUpdateMutex.Unlock()

	if time.Since(lastCacheUpdate) <= cacheUpdateInterval {
		return
	}
	if err := UpdateStatisticsCache(); err != nil {
		log.Errorf("[Statistics] cache refresh failed: %v", err)
		return
	}
	lastCacheUpdate = time.Now()
}

// UpdateStatisticsCache recounts and stores all statistics in the cache.
func UpdateStatisticsCache() error {
	db := database.GetDB()

	var totalMembers int64
	if err := db.Model(&models.Registration{}).Where("status = ?", models.REGISTRATION_COMPLETED).Count(&totalMembers).Error; err != nil {
		return err
	}

	today := time.Now().Format("2006-01-02")
	todayStart, _ := time.Parse("2006-01-02", today)
	todayEnd := todayStart.Add(24 * time.Hour)

	var todayRegistrations int64
	if err := db.Model(&models.Registration{}).
		Where("submitted_at BETWEEN ? AND ?", todayStart, todayEnd).Count(&todayRegistrations).Error; err != nil {
		return err
	}

	var premiumMembers int64
	if err := db.Model(&models.User{}).Where("plan = ?", models.PLAN_PREMIUM).Count(&premiumMembers).Error; err != nil {
		return err
	}

	if err := cache.Set(CacheKeyMembersTotal, strconv.FormatInt(totalMembers, 10), CacheExpiration); err != nil {
		return err
	}
	if err := cache.Set(fmt.Sprintf(CacheKeyRegistrationsDaily, today), strconv.FormatInt(todayRegistrations, 10), CacheExpiration); err != nil {
		return err
	}
	if err := cache.Set(CacheKeyPremiumTotal, strconv.FormatInt(premiumMembers, 10), CacheExpiration); err != nil {
		return err
	}

	return nil
}

// GetStatistics returns the cached counters, refreshing them when stale.
func GetStatistics() Data {
	UpdateCacheIfNeeded()

	today := time.Now().Format("2006-01-02")
	return Data{
		TotalMembers:       cachedCount(CacheKeyMembersTotal),
		TodayRegistrations: cachedCount(fmt.Sprintf(CacheKeyRegistrationsDaily, today)),
		PremiumMembers:     cachedCount(CacheKeyPremiumTotal),
	}
}

func cachedCount(key string) int {
	val, err := cache.Get(key)
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return n
}
