package cache

import (
	"os"

	"github.com/umakantv/go-utils/cache"
	"github.com/umakantv/go-utils/logger"
	"go.uber.org/zap"
)

// InitializeCache builds the session store. Redis keeps sessions across
// restarts in development/production; the testing profile uses the
// in-process store so tests need no redis.
func InitializeCache(cacheType, redisAddr string) cache.Cache {
	c, err := cache.New(cache.Config{
		Type:          cacheType,
		RedisAddr:     redisAddr,
		RedisPassword: "",
		RedisDB:       0,
	})
	if err != nil {
		logger.Error("Failed to initialize cache:", zap.Error(err))
		os.Exit(1)
	}
	return c
}
