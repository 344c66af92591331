// File: utils/constants.go
package utils

import "time"

// CatalogCachePrefix is the prefix used for Redis catalog cache keys.
const CatalogCachePrefix = "catalog:"

// CatalogCacheTTL is the time-to-live for catalog cache entries. Capacity and
// price changes are rare, so short-lived staleness is acceptable here.
const CatalogCacheTTL = 5 * time.Minute
