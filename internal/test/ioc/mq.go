package testioc

import (
	"context"
	"sync"
	"time"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/gotomicro/ego/core/econf"
)

var (
	q          mq.MQ
	mqInitOnce sync.Once
)

// InitMQ 测试统一使用内存实现, topic 以 local.yaml 中的 mq.topics 为准
func InitMQ() mq.MQ {
	mqInitOnce.Do(func() {
		loadConfig()
		type Topic struct {
			Name       string `yaml:"name"`
			Partitions int    `yaml:"partitions"`
		}
		var topics []Topic
		err := econf.UnmarshalKey("mq.topics", &topics)
		if err != nil {
			panic(err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		qq := memory.NewMQ()
		for _, t := range topics {
			if err = qq.CreateTopic(ctx, t.Name, t.Partitions); err != nil {
				panic(err)
			}
		}
		q = qq
	})
	return q
}
