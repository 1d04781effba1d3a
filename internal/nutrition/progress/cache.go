package progress

import (
	"encoding/json"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	// entries expire on their own as a safety net; writes invalidate eagerly
	cacheEntryTTLSeconds = 10 * 60
	dayKeyLayout         = "2006-01-02"
)

// Cache keeps computed DailyProgress values keyed by day, so streak scans
// and weekly/monthly rollups do not hammer the records store.
type Cache struct {
	cache *freecache.Cache
}

func NewCache(sizeBytes int) *Cache {
	return &Cache{
		cache: freecache.NewCache(sizeBytes),
	}
}

func (c *Cache) Get(day time.Time) (*DailyProgress, bool) {
	value, err := c.cache.Get([]byte(day.Format(dayKeyLayout)))
	if err != nil {
		// freecache returns ErrNotFound for a miss
		return nil, false
	}

	var dp DailyProgress
	if err := json.Unmarshal(value, &dp); err != nil {
		log.Errorf("progress cache, unmarshal cached progress: %s", err)
		return nil, false
	}

	return &dp, true
}

func (c *Cache) Set(day time.Time, dp *DailyProgress) {
	value, err := json.Marshal(dp)
	if err != nil {
		log.Errorf("progress cache, marshal progress: %s", err)
		return
	}

	if err := c.cache.Set([]byte(day.Format(dayKeyLayout)), value, cacheEntryTTLSeconds); err != nil {
		log.Errorf("progress cache, set: %s", err)
	}
}

func (c *Cache) Invalidate(day time.Time) {
	c.cache.Del([]byte(day.Format(dayKeyLayout)))
}

// Clear drops everything, e.g. after the active goals changed
// (every cached ratio is stale then).
func (c *Cache) Clear() {
	c.cache.Clear()
}
