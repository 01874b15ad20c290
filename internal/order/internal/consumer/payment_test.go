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
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/ecodeclub/takeout/internal/order/internal/service"
	ordermocks "github.com/ecodeclub/takeout/internal/order/mocks"
	"github.com/ecodeclub/takeout/internal/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPaymentConsumer_Consume(t *testing.T) {
	testCases := []struct {
		name    string
		evt     payment.PaymentEvent
		mock    func(ctrl *gomock.Controller) service.Service
		wantErr error
	}{
		{
			name: "支付成功",
			evt:  payment.PaymentEvent{OrderSN: "sn-1", Status: payment.StatusPaidSuccess.ToUint8()},
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := ordermocks.NewMockService(ctrl)
				svc.EXPECT().PaySuccess(gomock.Any(), "sn-1").Return(nil)
				return svc
			},
		},
		{
			name: "支付失败忽略",
			evt:  payment.PaymentEvent{OrderSN: "sn-2", Status: payment.StatusPaidFailed.ToUint8()},
			mock: func(ctrl *gomock.Controller) service.Service {
				return ordermocks.NewMockService(ctrl)
			},
		},
		{
			name: "更新订单失败",
			evt:  payment.PaymentEvent{OrderSN: "sn-3", Status: payment.StatusPaidSuccess.ToUint8()},
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := ordermocks.NewMockService(ctrl)
				svc.EXPECT().PaySuccess(gomock.Any(), "sn-3").Return(service.ErrInvalidOrderStatus)
				return svc
			},
			wantErr: service.ErrInvalidOrderStatus,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()

			q := memory.NewMQ()
			require.NoError(t, q.CreateTopic(ctx, payment.PaymentEventName, 1))
			c, err := NewPaymentConsumer(tc.mock(ctrl), q)
			require.NoError(t, err)

			producer, err := q.Producer(payment.PaymentEventName)
			require.NoError(t, err)
			data, err := json.Marshal(tc.evt)
			require.NoError(t, err)
			_, err = producer.Produce(ctx, &mq.Message{Value: data})
			require.NoError(t, err)

			err = c.Consume(ctx)
			assert.True(t, errors.Is(err, tc.wantErr))
		})
	}
}
