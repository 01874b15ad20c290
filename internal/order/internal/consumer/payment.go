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

package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/takeout/internal/order/internal/service"
	"github.com/ecodeclub/takeout/internal/payment"
	"github.com/gotomicro/ego/core/elog"
)

// PaymentConsumer 消费支付结果, 推进订单到待接单
type PaymentConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	l        *elog.Component
}

func NewPaymentConsumer(svc service.Service, q mq.MQ) (*PaymentConsumer, error) {
	const groupID = "order"
	c, err := q.Consumer(payment.PaymentEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &PaymentConsumer{
		svc:      svc,
		consumer: c,
		l:        elog.DefaultLogger,
	}, nil
}

func (c *PaymentConsumer) Start(ctx context.Context) {
	go func() {
		for ctx.Err() == nil {
			er := c.Consume(ctx)
			if er != nil {
				c.l.Error("消费支付事件失败", elog.FieldErr(er))
			}
		}
	}()
}

func (c *PaymentConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}

	var evt payment.PaymentEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}

	if evt.Status != payment.StatusPaidSuccess.ToUint8() {
		c.l.Info("忽略未支付成功的事件",
			elog.String("order_sn", evt.OrderSN),
			elog.Any("status", evt.Status),
		)
		return nil
	}

	err = c.svc.PaySuccess(ctx, evt.OrderSN)
	if err != nil {
		c.l.Error("更新订单支付状态失败",
			elog.FieldErr(err),
			elog.String("order_sn", evt.OrderSN),
		)
	}
	return err
}
