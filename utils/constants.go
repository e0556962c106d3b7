package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 10 * time.Minute

// BrowseCachePrefix keys memoized listing result sets.
const BrowseCachePrefix = "browse:"

// ChatChannelPrefix is the redis pub/sub channel prefix for project chat.
const ChatChannelPrefix = "chat:project:"
