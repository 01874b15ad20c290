// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build wireinject

package order

import (
	"sync"
	"time"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/takeout/internal/address"
	"github.com/ecodeclub/takeout/internal/cart"
	"github.com/ecodeclub/takeout/internal/order/internal/consumer"
	"github.com/ecodeclub/takeout/internal/order/internal/event"
	"github.com/ecodeclub/takeout/internal/order/internal/job"
	"github.com/ecodeclub/takeout/internal/order/internal/repository"
	"github.com/ecodeclub/takeout/internal/order/internal/repository/dao"
	"github.com/ecodeclub/takeout/internal/order/internal/service"
	"github.com/ecodeclub/takeout/internal/order/internal/web"
	"github.com/ecodeclub/takeout/internal/payment"
	"github.com/ecodeclub/takeout/internal/pkg/sequencenumber"
	"github.com/ecodeclub/takeout/internal/pkg/snowflake"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

var serviceSet = wire.NewSet(
	InitTablesOnce,
	repository.NewOrderRepository,
	sequencenumber.NewGenerator,
	initRefundSNGenerator,
	event.NewOrderEventProducer,
	service.NewService,
)

func InitModule(db *egorm.Component, q mq.MQ,
	am *address.Module,
	cm *cart.Module,
	pm *payment.Module) (*Module, error) {
	wire.Build(
		wire.FieldsOf(new(*address.Module), "Svc"),
		wire.FieldsOf(new(*cart.Module), "Svc"),
		wire.FieldsOf(new(*payment.Module), "Svc"),
		serviceSet,
		web.NewHandler,
		web.NewAdminHandler,
		consumer.NewPaymentConsumer,
		initJobConfig,
		initCloseTimeoutOrdersJob,
		initCompleteDeliveryOrdersJob,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.OrderDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewOrderGORMDAO(db)
}

// 退款单号前缀
const refundSNPrefix = "R"

func initRefundSNGenerator() (*snowflake.Generator, error) {
	return snowflake.NewGenerator(econf.GetInt64("snowflake.node"), refundSNPrefix)
}

type jobConfig struct {
	// 超过该时长仍未支付的订单会被取消
	CloseThreshold time.Duration
	// 下单超过该时长仍在派送中的订单会被完成
	CompleteThreshold time.Duration
	BatchSize         int
	Timeout           time.Duration
}

func initJobConfig() jobConfig {
	cfg := jobConfig{
		CloseThreshold:    15 * time.Minute,
		CompleteThreshold: time.Hour,
		BatchSize:         100,
		Timeout:           time.Minute,
	}
	err := econf.UnmarshalKey("order.job", &cfg)
	if err != nil {
		panic(err)
	}
	// 分批扫描依赖 batchSize 判断是否还有下一批
	if cfg.BatchSize <= 0 {
		panic("order.job.batchSize 必须大于 0")
	}
	return cfg
}

func initCloseTimeoutOrdersJob(svc service.Service, cfg jobConfig) *job.CloseTimeoutOrdersJob {
	return job.NewCloseTimeoutOrdersJob(svc, cfg.CloseThreshold, cfg.BatchSize, cfg.Timeout)
}

func initCompleteDeliveryOrdersJob(svc service.Service, cfg jobConfig) *job.CompleteDeliveryOrdersJob {
	return job.NewCompleteDeliveryOrdersJob(svc, cfg.CompleteThreshold, cfg.BatchSize, cfg.Timeout)
}
