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
	"strings"
	"testing"
	"time"

	"github.com/ecodeclub/takeout/internal/address"
	addressmocks "github.com/ecodeclub/takeout/internal/address/mocks"
	"github.com/ecodeclub/takeout/internal/cart"
	cartmocks "github.com/ecodeclub/takeout/internal/cart/mocks"
	"github.com/ecodeclub/takeout/internal/order/internal/domain"
	evtmocks "github.com/ecodeclub/takeout/internal/order/internal/event/mocks"
	"github.com/ecodeclub/takeout/internal/order/internal/repository"
	repomocks "github.com/ecodeclub/takeout/internal/order/internal/repository/mocks"
	"github.com/ecodeclub/takeout/internal/payment"
	paymentmocks "github.com/ecodeclub/takeout/internal/payment/mocks"
	"github.com/ecodeclub/takeout/internal/pkg/sequencenumber"
	"github.com/ecodeclub/takeout/internal/pkg/snowflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mocks struct {
	repo       *repomocks.MockOrderRepository
	addressSvc *addressmocks.MockService
	cartSvc    *cartmocks.MockService
	paymentSvc *paymentmocks.MockService
	producer   *evtmocks.MockOrderEventProducer
}

func newMocks(ctrl *gomock.Controller) mocks {
	return mocks{
		repo:       repomocks.NewMockOrderRepository(ctrl),
		addressSvc: addressmocks.NewMockService(ctrl),
		cartSvc:    cartmocks.NewMockService(ctrl),
		paymentSvc: paymentmocks.NewMockService(ctrl),
		producer:   evtmocks.NewMockOrderEventProducer(ctrl),
	}
}

func newTestService(t *testing.T, m mocks) Service {
	sng := sequencenumber.NewGeneratorWith(func(_ time.Time) int64 { return 1234554320123 },
		func() string { return "nUfojcH2M5j2j3Tk5A1mf2" })
	refundSNGen, err := snowflake.NewGenerator(1, "R")
	require.NoError(t, err)
	return NewService(m.repo, m.addressSvc, m.cartSvc, m.paymentSvc, sng, refundSNGen, m.producer)
}

// callHook 模拟在事务内执行 hook
func callHook(_ context.Context, _ domain.Transition, hook func(context.Context) error) error {
	if hook == nil {
		return nil
	}
	return hook(context.Background())
}

func TestService_Submit(t *testing.T) {
	testCases := []struct {
		name      string
		mock      func(m mocks)
		wantOrder domain.Order
		wantErr   error
	}{
		{
			name: "地址不存在",
			mock: func(m mocks) {
				m.addressSvc.EXPECT().FindByID(gomock.Any(), int64(9), int64(3)).
					Return(address.Address{}, address.ErrAddressNotFound)
			},
			wantErr: ErrAddressNotFound,
		},
		{
			name: "购物车为空不会写入订单",
			mock: func(m mocks) {
				m.addressSvc.EXPECT().FindByID(gomock.Any(), int64(9), int64(3)).
					Return(address.Address{ID: 3, UserID: 9}, nil)
				m.cartSvc.EXPECT().List(gomock.Any(), int64(9)).Return(nil, nil)
			},
			wantErr: ErrEmptyCart,
		},
		{
			name: "写入订单失败",
			mock: func(m mocks) {
				m.addressSvc.EXPECT().FindByID(gomock.Any(), int64(9), int64(3)).
					Return(address.Address{ID: 3, UserID: 9}, nil)
				m.cartSvc.EXPECT().List(gomock.Any(), int64(9)).Return([]cart.CartItem{
					{ID: 1, UserID: 9, Item: cart.Item{DishID: 5}, Name: "宫保鸡丁", Amount: 2800, Number: 1},
				}, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), []int64{1}).
					Return(int64(0), errors.New("mock db error"))
			},
			wantErr: errors.New("mock db error"),
		},
		{
			name: "下单成功",
			mock: func(m mocks) {
				m.addressSvc.EXPECT().FindByID(gomock.Any(), int64(9), int64(3)).
					Return(address.Address{
						ID:           3,
						UserID:       9,
						Consignee:    "张三",
						Phone:        "13800000000",
						ProvinceName: "北京市",
						CityName:     "市辖区",
						DistrictName: "海淀区",
						Detail:       "中关村1号",
					}, nil)
				m.cartSvc.EXPECT().List(gomock.Any(), int64(9)).Return([]cart.CartItem{
					{ID: 1, UserID: 9, Item: cart.Item{DishID: 5, DishFlavor: "微辣"}, Name: "宫保鸡丁", Amount: 2800, Number: 2},
					{ID: 2, UserID: 9, Item: cart.Item{SetmealID: 6}, Name: "单人套餐", Amount: 3900, Number: 1},
				}, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any(), []domain.OrderLine{
					{Name: "宫保鸡丁", DishID: 5, DishFlavor: "微辣", Number: 2, Amount: 2800},
					{Name: "单人套餐", SetmealID: 6, Number: 1, Amount: 3900},
				}, []int64{1, 2}).
					DoAndReturn(func(_ context.Context, o domain.Order, _ []domain.OrderLine, _ []int64) (int64, error) {
						assert.True(t, o.OrderTime > 0)
						return 11, nil
					})
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("忽略"))
			},
			wantOrder: domain.Order{
				ID:            11,
				Number:        "12345543201230009nUfojcH2M5j2j3T",
				Status:        domain.OrderStatusUnpaid,
				UserID:        9,
				AddressBookID: 3,
				PayMethod:     domain.PayMethodWechat,
				PayStatus:     domain.PayStatusUnpaid,
				// 2800 * 2 + 3900 + 打包费 200
				Amount:     9700,
				Phone:      "13800000000",
				Address:    "北京市市辖区海淀区中关村1号",
				Consignee:  "张三",
				PackAmount: 200,
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newMocks(ctrl)
			tc.mock(m)
			svc := newTestService(t, m)
			o, err := svc.Submit(context.Background(), 9, domain.Submission{AddressBookID: 3, PackAmount: 200})
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tc.wantErr) || strings.Contains(err.Error(), tc.wantErr.Error()))
				return
			}
			require.NoError(t, err)
			o.OrderTime = 0
			assert.Equal(t, tc.wantOrder, o)
		})
	}
}

func TestService_UserCancel(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(m mocks)
		wantErr error
	}{
		{
			name: "不是自己的订单",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(domain.OrderView{
					Order: domain.Order{ID: 1, UserID: 10, Status: domain.OrderStatusUnpaid},
				}, nil)
			},
			wantErr: ErrOrderNotFound,
		},
		{
			name: "订单不存在",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(domain.OrderView{}, repository.ErrOrderNotFound)
			},
			wantErr: ErrOrderNotFound,
		},
		{
			name: "已接单不能取消",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(domain.OrderView{
					Order: domain.Order{ID: 1, UserID: 9, Status: domain.OrderStatusConfirmed, PayStatus: domain.PayStatusPaid},
				}, nil)
			},
			wantErr: ErrInvalidOrderStatus,
		},
		{
			name: "待付款取消不退款",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(domain.OrderView{
					Order: domain.Order{ID: 1, UserID: 9, Number: "sn-1", Status: domain.OrderStatusUnpaid, Amount: 3900},
				}, nil)
				m.repo.EXPECT().Transit(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, tr domain.Transition, hook func(context.Context) error) error {
						assert.Nil(t, hook)
						assert.Equal(t, []domain.OrderStatus{domain.OrderStatusUnpaid}, tr.From)
						assert.Equal(t, domain.OrderStatusCancelled, tr.To)
						assert.Equal(t, domain.PayStatusUnpaid, tr.PayStatus)
						assert.Equal(t, domain.CancelReasonUser, tr.CancelReason)
						assert.True(t, tr.CancelTime > 0)
						return callHook(ctx, tr, hook)
					})
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "待接单取消全额退款",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(domain.OrderView{
					Order: domain.Order{ID: 1, UserID: 9, Number: "sn-1", Status: domain.OrderStatusToBeConfirmed,
						PayStatus: domain.PayStatusPaid, Amount: 3900},
				}, nil)
				m.repo.EXPECT().Transit(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, tr domain.Transition, hook func(context.Context) error) error {
						assert.Equal(t, []domain.OrderStatus{domain.OrderStatusToBeConfirmed}, tr.From)
						assert.Equal(t, domain.PayStatusRefund, tr.PayStatus)
						return callHook(ctx, tr, hook)
					})
				m.paymentSvc.EXPECT().Refund(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r payment.Refund) error {
						assert.Equal(t, "sn-1", r.OrderSN)
						assert.True(t, strings.HasPrefix(r.RefundSN, "R"))
						assert.Equal(t, int64(3900), r.Amount)
						assert.Equal(t, int64(3900), r.Total)
						return nil
					})
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "退款失败整体回滚",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(domain.OrderView{
					Order: domain.Order{ID: 1, UserID: 9, Number: "sn-1", Status: domain.OrderStatusToBeConfirmed,
						PayStatus: domain.PayStatusPaid, Amount: 3900},
				}, nil)
				m.repo.EXPECT().Transit(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(callHook)
				m.paymentSvc.EXPECT().Refund(gomock.Any(), gomock.Any()).Return(errors.New("微信申请退款失败"))
			},
			wantErr: ErrPaymentProvider,
		},
		{
			name: "并发下状态已变更",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(domain.OrderView{
					Order: domain.Order{ID: 1, UserID: 9, Status: domain.OrderStatusUnpaid},
				}, nil)
				m.repo.EXPECT().Transit(gomock.Any(), gomock.Any(), gomock.Any()).Return(repository.ErrStatusConflict)
			},
			wantErr: ErrInvalidOrderStatus,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newMocks(ctrl)
			tc.mock(m)
			svc := newTestService(t, m)
			err := svc.UserCancel(context.Background(), 9, 1)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestService_ForwardOnly(t *testing.T) {
	type op func(svc Service) error
	confirm := func(svc Service) error { return svc.Confirm(context.Background(), 1) }
	reject := func(svc Service) error { return svc.Reject(context.Background(), 1, "菜品已售完") }
	cancel := func(svc Service) error { return svc.Cancel(context.Background(), 1, "餐厅打烊") }
	delivery := func(svc Service) error { return svc.Delivery(context.Background(), 1) }
	complete := func(svc Service) error { return svc.Complete(context.Background(), 1) }

	testCases := []struct {
		name   string
		status domain.OrderStatus
		op     op
	}{
		{name: "待付款不能接单", status: domain.OrderStatusUnpaid, op: confirm},
		{name: "已接单不能再接单", status: domain.OrderStatusConfirmed, op: confirm},
		{name: "已接单不能拒单", status: domain.OrderStatusConfirmed, op: reject},
		{name: "派送中不能取消", status: domain.OrderStatusDeliveryInProgress, op: cancel},
		{name: "已完成不能取消", status: domain.OrderStatusCompleted, op: cancel},
		{name: "已取消不能取消", status: domain.OrderStatusCancelled, op: cancel},
		{name: "待接单不能派送", status: domain.OrderStatusToBeConfirmed, op: delivery},
		{name: "已接单不能完成", status: domain.OrderStatusConfirmed, op: complete},
		{name: "已完成不能再完成", status: domain.OrderStatusCompleted, op: complete},
		{name: "已取消不能派送", status: domain.OrderStatusCancelled, op: delivery},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newMocks(ctrl)
			m.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(domain.OrderView{
				Order: domain.Order{ID: 1, UserID: 9, Status: tc.status},
			}, nil)
			err := tc.op(newTestService(t, m))
			assert.ErrorIs(t, err, ErrInvalidOrderStatus)
		})
	}
}

func TestService_MerchantTransitions(t *testing.T) {
	testCases := []struct {
		name   string
		order  domain.Order
		op     func(svc Service) error
		refund bool
		check  func(t *testing.T, tr domain.Transition)
	}{
		{
			name:  "接单",
			order: domain.Order{ID: 1, Status: domain.OrderStatusToBeConfirmed, PayStatus: domain.PayStatusPaid},
			op:    func(svc Service) error { return svc.Confirm(context.Background(), 1) },
			check: func(t *testing.T, tr domain.Transition) {
				assert.Equal(t, domain.OrderStatusConfirmed, tr.To)
			},
		},
		{
			name:   "拒单退款",
			order:  domain.Order{ID: 1, Number: "sn-1", Status: domain.OrderStatusToBeConfirmed, PayStatus: domain.PayStatusPaid, Amount: 100},
			op:     func(svc Service) error { return svc.Reject(context.Background(), 1, "菜品已售完") },
			refund: true,
			check: func(t *testing.T, tr domain.Transition) {
				assert.Equal(t, domain.OrderStatusCancelled, tr.To)
				assert.Equal(t, "菜品已售完", tr.RejectionReason)
				assert.Equal(t, domain.PayStatusRefund, tr.PayStatus)
			},
		},
		{
			name:   "取消已接单的订单退款",
			order:  domain.Order{ID: 1, Number: "sn-1", Status: domain.OrderStatusConfirmed, PayStatus: domain.PayStatusPaid, Amount: 100},
			op:     func(svc Service) error { return svc.Cancel(context.Background(), 1, "餐厅打烊") },
			refund: true,
			check: func(t *testing.T, tr domain.Transition) {
				assert.Equal(t, "餐厅打烊", tr.CancelReason)
				assert.True(t, tr.CancelTime > 0)
			},
		},
		{
			name:  "取消未支付的订单不退款",
			order: domain.Order{ID: 1, Number: "sn-1", Status: domain.OrderStatusUnpaid},
			op:    func(svc Service) error { return svc.Cancel(context.Background(), 1, "餐厅打烊") },
			check: func(t *testing.T, tr domain.Transition) {
				assert.Equal(t, domain.PayStatusUnpaid, tr.PayStatus)
			},
		},
		{
			name:  "派送",
			order: domain.Order{ID: 1, Status: domain.OrderStatusConfirmed, PayStatus: domain.PayStatusPaid},
			op:    func(svc Service) error { return svc.Delivery(context.Background(), 1) },
			check: func(t *testing.T, tr domain.Transition) {
				assert.Equal(t, domain.OrderStatusDeliveryInProgress, tr.To)
			},
		},
		{
			name:  "完成设置送达时间",
			order: domain.Order{ID: 1, Status: domain.OrderStatusDeliveryInProgress, PayStatus: domain.PayStatusPaid},
			op:    func(svc Service) error { return svc.Complete(context.Background(), 1) },
			check: func(t *testing.T, tr domain.Transition) {
				assert.Equal(t, domain.OrderStatusCompleted, tr.To)
				assert.True(t, tr.DeliveryTime > 0)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newMocks(ctrl)
			m.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(domain.OrderView{Order: tc.order}, nil)
			m.repo.EXPECT().Transit(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, tr domain.Transition, hook func(context.Context) error) error {
					assert.Equal(t, []domain.OrderStatus{tc.order.Status}, tr.From)
					assert.Equal(t, tc.refund, hook != nil)
					tc.check(t, tr)
					return callHook(ctx, tr, hook)
				})
			if tc.refund {
				m.paymentSvc.EXPECT().Refund(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r payment.Refund) error {
						assert.Equal(t, tc.order.Amount, r.Amount)
						assert.Equal(t, tc.order.Amount, r.Total)
						return nil
					})
			}
			m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			err := tc.op(newTestService(t, m))
			assert.NoError(t, err)
		})
	}
}

func TestService_TimeoutTransitions(t *testing.T) {
	testCases := []struct {
		name     string
		order    domain.Order
		op       func(svc Service, o domain.Order) error
		transit  bool
		transErr error
		check    func(t *testing.T, tr domain.Transition)
		wantErr  error
	}{
		{
			name:  "超时未支付自动取消",
			order: domain.Order{ID: 1, Number: "sn-1", Status: domain.OrderStatusUnpaid, PayStatus: domain.PayStatusUnpaid, Amount: 100},
			op: func(svc Service, o domain.Order) error {
				return svc.CloseTimeoutOrder(context.Background(), o)
			},
			transit: true,
			check: func(t *testing.T, tr domain.Transition) {
				assert.Equal(t, domain.OrderStatusCancelled, tr.To)
				assert.Equal(t, domain.CancelReasonTimeout, tr.CancelReason)
				assert.True(t, tr.CancelTime > 0)
				assert.Equal(t, domain.PayStatus(0), tr.PayStatus)
				assert.Empty(t, tr.RejectionReason)
			},
		},
		{
			name:  "派送中订单自动完成",
			order: domain.Order{ID: 1, Number: "sn-1", Status: domain.OrderStatusDeliveryInProgress, PayStatus: domain.PayStatusPaid, Amount: 100},
			op: func(svc Service, o domain.Order) error {
				return svc.CompleteTimeoutOrder(context.Background(), o)
			},
			transit: true,
			check: func(t *testing.T, tr domain.Transition) {
				assert.Equal(t, domain.OrderStatusCompleted, tr.To)
				assert.Equal(t, int64(0), tr.DeliveryTime)
				assert.Equal(t, int64(0), tr.CancelTime)
				assert.Equal(t, domain.PayStatus(0), tr.PayStatus)
			},
		},
		{
			name:  "已支付订单不能超时取消",
			order: domain.Order{ID: 1, Status: domain.OrderStatusToBeConfirmed, PayStatus: domain.PayStatusPaid},
			op: func(svc Service, o domain.Order) error {
				return svc.CloseTimeoutOrder(context.Background(), o)
			},
			wantErr: ErrInvalidOrderStatus,
		},
		{
			name:  "已取消订单不能自动完成",
			order: domain.Order{ID: 1, Status: domain.OrderStatusCancelled},
			op: func(svc Service, o domain.Order) error {
				return svc.CompleteTimeoutOrder(context.Background(), o)
			},
			wantErr: ErrInvalidOrderStatus,
		},
		{
			name:  "用户已抢先支付",
			order: domain.Order{ID: 1, Status: domain.OrderStatusUnpaid, PayStatus: domain.PayStatusUnpaid},
			op: func(svc Service, o domain.Order) error {
				return svc.CloseTimeoutOrder(context.Background(), o)
			},
			transit:  true,
			transErr: repository.ErrStatusConflict,
			check:    func(t *testing.T, tr domain.Transition) {},
			wantErr:  ErrInvalidOrderStatus,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newMocks(ctrl)
			if tc.transit {
				m.repo.EXPECT().Transit(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tr domain.Transition, hook func(context.Context) error) error {
						assert.Equal(t, tc.order.ID, tr.OrderID)
						assert.Equal(t, []domain.OrderStatus{tc.order.Status}, tr.From)
						assert.Nil(t, hook)
						tc.check(t, tr)
						return tc.transErr
					})
			}
			if tc.transit && tc.transErr == nil {
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			}
			err := tc.op(newTestService(t, m), tc.order)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestService_Pay(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(m mocks)
		wantResp payment.PrepayResponse
		wantErr  error
	}{
		{
			name: "订单已支付",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByNumber(gomock.Any(), "sn-1").
					Return(domain.Order{ID: 1, UserID: 9, Number: "sn-1", Status: domain.OrderStatusUnpaid, Amount: 3900}, nil)
				m.paymentSvc.EXPECT().Prepay(gomock.Any(), gomock.Any()).
					Return(payment.PrepayResponse{}, payment.ErrOrderPaid)
			},
			wantErr: ErrOrderPaid,
		},
		{
			name: "支付渠道异常",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByNumber(gomock.Any(), "sn-1").
					Return(domain.Order{ID: 1, UserID: 9, Number: "sn-1", Status: domain.OrderStatusUnpaid, Amount: 3900}, nil)
				m.paymentSvc.EXPECT().Prepay(gomock.Any(), gomock.Any()).
					Return(payment.PrepayResponse{}, errors.New("微信预支付失败"))
			},
			wantErr: ErrPaymentProvider,
		},
		{
			name: "订单不是待付款",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByNumber(gomock.Any(), "sn-1").
					Return(domain.Order{ID: 1, UserID: 9, Number: "sn-1", Status: domain.OrderStatusToBeConfirmed}, nil)
			},
			wantErr: ErrInvalidOrderStatus,
		},
		{
			name: "不是自己的订单",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByNumber(gomock.Any(), "sn-1").
					Return(domain.Order{ID: 1, UserID: 10, Number: "sn-1", Status: domain.OrderStatusUnpaid}, nil)
			},
			wantErr: ErrOrderNotFound,
		},
		{
			name: "预支付成功",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByNumber(gomock.Any(), "sn-1").
					Return(domain.Order{ID: 1, UserID: 9, Number: "sn-1", Status: domain.OrderStatusUnpaid, Amount: 3900}, nil)
				m.paymentSvc.EXPECT().Prepay(gomock.Any(), payment.Prepay{
					OrderSN:     "sn-1",
					Amount:      3900,
					Description: payDescription,
					OpenID:      "openid-9",
				}).Return(payment.PrepayResponse{PrepayId: "prepay-1"}, nil)
			},
			wantResp: payment.PrepayResponse{PrepayId: "prepay-1"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newMocks(ctrl)
			tc.mock(m)
			resp, err := newTestService(t, m).Pay(context.Background(), 9, "sn-1", "openid-9")
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantResp, resp)
		})
	}
}

func TestService_PaySuccess(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(m mocks)
		wantErr error
	}{
		{
			name: "订单不存在",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByNumber(gomock.Any(), "sn-1").Return(domain.Order{}, repository.ErrOrderNotFound)
			},
			wantErr: ErrOrderNotFound,
		},
		{
			name: "重复通知",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByNumber(gomock.Any(), "sn-1").Return(domain.Order{
					ID: 1, Number: "sn-1", Status: domain.OrderStatusConfirmed, PayStatus: domain.PayStatusPaid,
				}, nil)
			},
		},
		{
			name: "超时关闭后才收到通知",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByNumber(gomock.Any(), "sn-1").Return(domain.Order{
					ID: 1, Number: "sn-1", Status: domain.OrderStatusCancelled, PayStatus: domain.PayStatusUnpaid,
				}, nil)
			},
			wantErr: ErrInvalidOrderStatus,
		},
		{
			name: "支付成功",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByNumber(gomock.Any(), "sn-1").Return(domain.Order{
					ID: 1, Number: "sn-1", Status: domain.OrderStatusUnpaid,
				}, nil)
				m.repo.EXPECT().Transit(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, tr domain.Transition, hook func(context.Context) error) error {
						assert.Equal(t, int64(1), tr.OrderID)
						assert.Equal(t, domain.OrderStatusToBeConfirmed, tr.To)
						assert.Equal(t, domain.PayStatusPaid, tr.PayStatus)
						assert.True(t, tr.CheckoutTime > 0)
						return callHook(ctx, tr, hook)
					})
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newMocks(ctrl)
			tc.mock(m)
			err := newTestService(t, m).PaySuccess(context.Background(), "sn-1")
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestService_Reorder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newMocks(ctrl)
	m.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(domain.OrderView{
		Order: domain.Order{ID: 1, UserID: 9, Status: domain.OrderStatusCompleted},
		Lines: []domain.OrderLine{
			{ID: 1, OrderID: 1, Name: "宫保鸡丁", DishID: 5, DishFlavor: "微辣", Number: 2, Amount: 2800},
			{ID: 2, OrderID: 1, Name: "单人套餐", SetmealID: 6, Number: 1, Amount: 3900},
		},
	}, nil)
	m.cartSvc.EXPECT().AddBatch(gomock.Any(), int64(9), []cart.CartItem{
		{UserID: 9, Item: cart.Item{DishID: 5, DishFlavor: "微辣"}, Name: "宫保鸡丁", Amount: 2800, Number: 2},
		{UserID: 9, Item: cart.Item{SetmealID: 6}, Name: "单人套餐", Amount: 3900, Number: 1},
	}).Return(nil)
	err := newTestService(t, m).Reorder(context.Background(), 9, 1)
	assert.NoError(t, err)
}

func TestService_ReorderEmptyOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newMocks(ctrl)
	m.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(domain.OrderView{
		Order: domain.Order{ID: 1, UserID: 9, Status: domain.OrderStatusCompleted},
	}, nil)
	err := newTestService(t, m).Reorder(context.Background(), 9, 1)
	assert.ErrorIs(t, err, ErrEmptyOrder)
}

func TestService_Statistics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newMocks(ctrl)
	m.repo.EXPECT().CountByStatus(gomock.Any(), []domain.OrderStatus{
		domain.OrderStatusToBeConfirmed,
		domain.OrderStatusConfirmed,
		domain.OrderStatusDeliveryInProgress,
	}).Return(map[domain.OrderStatus]int64{
		domain.OrderStatusToBeConfirmed: 3,
		domain.OrderStatusConfirmed:     1,
	}, nil)
	res, err := newTestService(t, m).Statistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Statistics{ToBeConfirmed: 3, Confirmed: 1}, res)
}
