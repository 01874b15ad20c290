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

package job

import (
	"context"
	"time"

	"github.com/ecodeclub/takeout/internal/order/internal/domain"
	"github.com/ecodeclub/takeout/internal/order/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*CompleteDeliveryOrdersJob)(nil)

// CompleteDeliveryOrdersJob 完成下单超过 threshold 仍在派送中的订单, 送达时间保持为空
type CompleteDeliveryOrdersJob struct {
	sweeper
	threshold time.Duration
	timeout   time.Duration
}

func NewCompleteDeliveryOrdersJob(svc service.Service, threshold time.Duration, batchSize int, timeout time.Duration) *CompleteDeliveryOrdersJob {
	return &CompleteDeliveryOrdersJob{
		sweeper: sweeper{
			svc:       svc,
			status:    domain.OrderStatusDeliveryInProgress,
			batchSize: batchSize,
			handle:    svc.CompleteTimeoutOrder,
			l:         elog.DefaultLogger,
		},
		threshold: threshold,
		timeout:   timeout,
	}
}

func (j *CompleteDeliveryOrdersJob) Name() string {
	return "complete_delivery_orders_job"
}

func (j *CompleteDeliveryOrdersJob) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()
	before := time.Now().Add(-j.threshold).UnixMilli()
	return j.sweep(ctx, j.Name(), before)
}
