package testioc

import (
	"sync"

	"github.com/ecodeclub/takeout/ioc"
	"github.com/ego-component/egorm"
)

var (
	db         *egorm.Component
	dbInitOnce sync.Once
)

// InitDB 测试共用一个连接, 表由各模块的 InitModule 创建
func InitDB() *egorm.Component {
	dbInitOnce.Do(func() {
		loadConfig()
		db = ioc.InitDB()
	})
	return db
}
