package testioc

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/takeout/ioc"
)

var (
	cache         ecache.Cache
	cacheInitOnce sync.Once
)

func InitCache() ecache.Cache {
	cacheInitOnce.Do(func() {
		loadConfig()
		cache = ioc.InitCache(ioc.InitRedis())
	})
	return cache
}
