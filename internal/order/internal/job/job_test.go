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
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/takeout/internal/order/internal/domain"
	ordermocks "github.com/ecodeclub/takeout/internal/order/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCloseTimeoutOrdersJob_Run(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(t *testing.T, svc *ordermocks.MockService)
		wantErr error
	}{
		{
			name: "分批关闭并且单个失败不影响其他订单",
			mock: func(t *testing.T, svc *ordermocks.MockService) {
				start := time.Now()
				checkBefore := func(before int64) {
					// 只处理 15 分钟之前下的订单
					assert.LessOrEqual(t, before, time.Now().Add(-15*time.Minute).UnixMilli())
					assert.GreaterOrEqual(t, before, start.Add(-15*time.Minute).UnixMilli())
				}
				first := []domain.Order{
					{ID: 1, Number: "sn-1", Status: domain.OrderStatusUnpaid},
					{ID: 2, Number: "sn-2", Status: domain.OrderStatusUnpaid},
				}
				second := []domain.Order{
					{ID: 5, Number: "sn-5", Status: domain.OrderStatusUnpaid},
				}
				svc.EXPECT().FindTimeoutOrders(gomock.Any(), domain.OrderStatusUnpaid, gomock.Any(), int64(0), 2).
					DoAndReturn(func(_ context.Context, _ domain.OrderStatus, before int64, _ int64, _ int) ([]domain.Order, error) {
						checkBefore(before)
						return first, nil
					})
				svc.EXPECT().FindTimeoutOrders(gomock.Any(), domain.OrderStatusUnpaid, gomock.Any(), int64(2), 2).
					DoAndReturn(func(_ context.Context, _ domain.OrderStatus, before int64, _ int64, _ int) ([]domain.Order, error) {
						checkBefore(before)
						return second, nil
					})
				svc.EXPECT().CloseTimeoutOrder(gomock.Any(), first[0]).Return(nil)
				svc.EXPECT().CloseTimeoutOrder(gomock.Any(), first[1]).Return(errors.New("订单状态错误"))
				svc.EXPECT().CloseTimeoutOrder(gomock.Any(), second[0]).Return(nil)
			},
		},
		{
			name: "没有超时订单",
			mock: func(t *testing.T, svc *ordermocks.MockService) {
				svc.EXPECT().FindTimeoutOrders(gomock.Any(), domain.OrderStatusUnpaid, gomock.Any(), int64(0), 2).
					Return(nil, nil)
			},
		},
		{
			name: "查询失败",
			mock: func(t *testing.T, svc *ordermocks.MockService) {
				svc.EXPECT().FindTimeoutOrders(gomock.Any(), domain.OrderStatusUnpaid, gomock.Any(), int64(0), 2).
					Return(nil, errMock)
			},
			wantErr: errMock,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := ordermocks.NewMockService(ctrl)
			tc.mock(t, svc)
			j := NewCloseTimeoutOrdersJob(svc, 15*time.Minute, 2, time.Second)
			err := j.Run(context.Background())
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestCompleteDeliveryOrdersJob_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := ordermocks.NewMockService(ctrl)
	start := time.Now()
	orders := []domain.Order{
		{ID: 3, Number: "sn-3", Status: domain.OrderStatusDeliveryInProgress},
	}
	svc.EXPECT().FindTimeoutOrders(gomock.Any(), domain.OrderStatusDeliveryInProgress, gomock.Any(), int64(0), 10).
		DoAndReturn(func(_ context.Context, _ domain.OrderStatus, before int64, _ int64, _ int) ([]domain.Order, error) {
			assert.LessOrEqual(t, before, time.Now().Add(-time.Hour).UnixMilli())
			assert.GreaterOrEqual(t, before, start.Add(-time.Hour).UnixMilli())
			return orders, nil
		})
	svc.EXPECT().CompleteTimeoutOrder(gomock.Any(), orders[0]).Return(nil)
	j := NewCompleteDeliveryOrdersJob(svc, time.Hour, 10, time.Second)
	assert.Equal(t, "complete_delivery_orders_job", j.Name())
	assert.NoError(t, j.Run(context.Background()))
}

func TestCloseTimeoutOrdersJob_RunEmptyBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := ordermocks.NewMockService(ctrl)
	svc.EXPECT().FindTimeoutOrders(gomock.Any(), domain.OrderStatusUnpaid, gomock.Any(), int64(0), 0).
		Return([]domain.Order{}, nil)
	j := NewCloseTimeoutOrdersJob(svc, 15*time.Minute, 0, time.Second)
	assert.NotPanics(t, func() {
		assert.NoError(t, j.Run(context.Background()))
	})
}

var errMock = errors.New("mock error")
