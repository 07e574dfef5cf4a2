package culture

import "github.com/sirupsen/logrus"

const cultureCacheName = "culture"

type cultureKey struct {
	id                LocaleID
	honorUserOverride bool
}

// CultureDataCache memoizes one CultureRecord per (id, override flag), so a
// caller asking without overrides never sees another caller's override data.
type CultureDataCache struct {
	builder *cultureBuilder
	logger  logrus.FieldLogger
	metrics *Metrics

	records  onceMap[cultureKey, *CultureRecord]
	counters cacheCounters
}

// NewCultureDataCache returns an empty cache whose records share calendars.
func NewCultureDataCache(provider LocaleProvider, gateway *EnumerationGateway, calendars *CalendarDataCache, logger logrus.FieldLogger, metrics *Metrics) *CultureDataCache {
	if logger == nil {
		logger = discardLogger()
	}
	if gateway == nil {
		gateway = NewEnumerationGateway(provider, logger, metrics)
	}
	return &CultureDataCache{
		builder: &cultureBuilder{
			provider:  provider,
			gateway:   gateway,
			calendars: calendars,
			logger:    logger,
		},
		logger:   logger,
		metrics:  metrics,
		counters: newCacheCounters(),
	}
}

// GetOrBuild returns the record for an already normalized id. The invariant
// record is returned without touching the provider or the cache.
func (c *CultureDataCache) GetOrBuild(id LocaleID, neutral, honorUserOverride bool) *CultureRecord {
	if id == Invariant || c == nil {
		return invariantCulture
	}

	key := cultureKey{id: id, honorUserOverride: honorUserOverride}
	record, hit := c.records.getOrBuild(key, func() *CultureRecord {
		c.counters.builds.Inc()
		c.metrics.built(cultureCacheName)
		c.logger.WithFields(logrus.Fields{
			"locale":        id,
			"user_override": honorUserOverride,
		}).Debug("culture: building record")
		return c.builder.build(id, neutral, honorUserOverride)
	})
	c.counters.lookup(hit)
	c.metrics.lookup(cultureCacheName, hit)
	if !hit {
		c.metrics.size(cultureCacheName, c.records.len())
	}
	return record
}

// Reset drops every cached record.
func (c *CultureDataCache) Reset() {
	if c == nil {
		return
	}
	c.records.reset()
	c.counters.reset()
	c.metrics.size(cultureCacheName, 0)
}
