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
	"fmt"

	"github.com/ecodeclub/takeout/internal/order/internal/domain"
	"github.com/ecodeclub/takeout/internal/order/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

// sweeper 按 id 游标分批处理 order_time 早于 before 的订单,
// 单个订单处理失败只记录日志
type sweeper struct {
	svc       service.Service
	status    domain.OrderStatus
	batchSize int
	handle    func(ctx context.Context, o domain.Order) error
	l         *elog.Component
}

func (s sweeper) sweep(ctx context.Context, name string, before int64) error {
	var minID int64
	for {
		orders, err := s.svc.FindTimeoutOrders(ctx, s.status, before, minID, s.batchSize)
		if err != nil {
			return fmt.Errorf("查找超时订单失败: %w", err)
		}
		for _, o := range orders {
			if er := s.handle(ctx, o); er != nil {
				s.l.Error("处理超时订单失败",
					elog.FieldErr(er),
					elog.String("job", name),
					elog.Int64("order_id", o.ID),
					elog.String("order_sn", o.Number),
				)
			}
		}
		if len(orders) == 0 || len(orders) < s.batchSize {
			return nil
		}
		minID = orders[len(orders)-1].ID
	}
}
