package catalog

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/casedrop/casedrop/internal/domain"
)

// Cache defaults. Assembled case definitions are small but read on every
// storefront page and every opening, so a short-TTL LRU in front of the join
// query pays for itself quickly.
const (
	DefaultCacheSize = 256
	DefaultCacheTTL  = 5 * time.Minute
)

// caseCache is an in-memory expirable LRU for assembled case definitions.
// Admin catalog writes purge it so stale outcome tables never serve a draw.
type caseCache struct {
	lru *expirable.LRU[string, *domain.CaseDefinition]
}

func newCaseCache(size int, ttl time.Duration) *caseCache {
	return &caseCache{
		lru: expirable.NewLRU[string, *domain.CaseDefinition](size, nil, ttl),
	}
}

func (c *caseCache) Get(caseID string) (*domain.CaseDefinition, bool) {
	return c.lru.Get(caseID)
}

func (c *caseCache) Set(caseID string, def *domain.CaseDefinition) {
	c.lru.Add(caseID, def)
}

func (c *caseCache) Remove(caseID string) {
	c.lru.Remove(caseID)
}

func (c *caseCache) Purge() {
	c.lru.Purge()
}

// Len reports the number of cached definitions, for the admin cache stats view.
func (c *caseCache) Len() int {
	return c.lru.Len()
}
