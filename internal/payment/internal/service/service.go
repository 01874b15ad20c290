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

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/takeout/internal/payment/internal/domain"
	"github.com/ecodeclub/takeout/internal/payment/internal/event"
	"github.com/ecodeclub/takeout/internal/payment/internal/service/wechat"
	"github.com/gotomicro/ego/core/elog"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments"
)

var ErrOrderPaid = wechat.ErrOrderPaid

//go:generate mockgen -source=./service.go -package=paymentmocks -destination=../../mocks/payment.mock.go -typed Service
type Service interface {
	// Prepay 小程序下单, 微信侧提示已支付时返回 ErrOrderPaid
	Prepay(ctx context.Context, p domain.Prepay) (domain.PrepayResponse, error)
	Refund(ctx context.Context, r domain.Refund) error
	// HandleCallback 处理微信支付结果通知, 转换为支付事件
	HandleCallback(ctx context.Context, txn *payments.Transaction) error
}

type service struct {
	jsapi    *wechat.JSAPIPaymentService
	producer event.PaymentEventProducer
	l        *elog.Component
}

func NewService(jsapi *wechat.JSAPIPaymentService, producer event.PaymentEventProducer) Service {
	return &service{
		jsapi:    jsapi,
		producer: producer,
		l:        elog.DefaultLogger,
	}
}

func (s *service) Prepay(ctx context.Context, p domain.Prepay) (domain.PrepayResponse, error) {
	return s.jsapi.Prepay(ctx, p)
}

func (s *service) Refund(ctx context.Context, r domain.Refund) error {
	err := s.jsapi.Refund(ctx, r)
	if err != nil {
		s.l.Error("申请退款失败",
			elog.FieldErr(err),
			elog.String("order_sn", r.OrderSN),
			elog.String("refund_sn", r.RefundSN),
			elog.Int64("amount", r.Amount),
		)
	}
	return err
}

func (s *service) HandleCallback(ctx context.Context, txn *payments.Transaction) error {
	pmt, err := s.jsapi.ConvertCallbackTransactionToDomain(txn)
	if errors.Is(err, wechat.ErrIgnoredPaymentStatus) {
		// 中间状态无需重试
		return nil
	}
	if err != nil {
		return err
	}
	err = s.producer.Produce(ctx, event.PaymentEvent{
		OrderSN: pmt.OrderSN,
		Status:  pmt.Status.ToUint8(),
	})
	if err != nil {
		return fmt.Errorf("发送支付事件失败: order_sn=%s, %w", pmt.OrderSN, err)
	}
	return nil
}
