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

package wechat

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/takeout/internal/payment/internal/domain"
	wechatmocks "github.com/ecodeclub/takeout/internal/payment/internal/service/wechat/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wechatpay-apiv3/wechatpay-go/core"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments/jsapi"
	"github.com/wechatpay-apiv3/wechatpay-go/services/refunddomestic"
	"go.uber.org/mock/gomock"
)

func TestJSAPIPaymentService_Prepay(t *testing.T) {
	testCases := []struct {
		name     string
		prepay   domain.Prepay
		mock     func(ctrl *gomock.Controller) JSAPIService
		wantResp domain.PrepayResponse
		wantErr  error
	}{
		{
			name:   "下单成功",
			prepay: domain.Prepay{OrderSN: "sn-1", Amount: 3900, Description: "外卖订单", OpenID: "openid-1"},
			mock: func(ctrl *gomock.Controller) JSAPIService {
				svc := wechatmocks.NewMockJSAPIService(ctrl)
				svc.EXPECT().PrepayWithRequestPayment(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req jsapi.PrepayRequest) (*jsapi.PrepayWithRequestPaymentResponse, *core.APIResult, error) {
						assert.Equal(t, "sn-1", *req.OutTradeNo)
						assert.Equal(t, int64(3900), *req.Amount.Total)
						assert.Equal(t, "openid-1", *req.Payer.Openid)
						assert.Equal(t, "appid", *req.Appid)
						assert.Equal(t, "https://takeout/pay/callback", *req.NotifyUrl)
						return &jsapi.PrepayWithRequestPaymentResponse{
							PrepayId:  core.String("prepay-1"),
							Appid:     core.String("appid"),
							TimeStamp: core.String("1700000000"),
							NonceStr:  core.String("nonce"),
							Package:   core.String("prepay_id=prepay-1"),
							SignType:  core.String("RSA"),
							PaySign:   core.String("sign"),
						}, nil, nil
					})
				return svc
			},
			wantResp: domain.PrepayResponse{
				PrepayId:  "prepay-1",
				Appid:     "appid",
				TimeStamp: "1700000000",
				NonceStr:  "nonce",
				Package:   "prepay_id=prepay-1",
				SignType:  "RSA",
				PaySign:   "sign",
			},
		},
		{
			name:   "订单已支付",
			prepay: domain.Prepay{OrderSN: "sn-2", Amount: 3900, OpenID: "openid-1"},
			mock: func(ctrl *gomock.Controller) JSAPIService {
				svc := wechatmocks.NewMockJSAPIService(ctrl)
				svc.EXPECT().PrepayWithRequestPayment(gomock.Any(), gomock.Any()).
					Return(nil, nil, &core.APIError{StatusCode: 400, Code: "ORDERPAID", Message: "该订单已支付"})
				return svc
			},
			wantErr: ErrOrderPaid,
		},
		{
			name:   "缺少openid",
			prepay: domain.Prepay{OrderSN: "sn-3", Amount: 3900},
			mock: func(ctrl *gomock.Controller) JSAPIService {
				return wechatmocks.NewMockJSAPIService(ctrl)
			},
			wantErr: errors.New("缺少用户的小程序 open id"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewJSAPIPaymentService(tc.mock(ctrl), wechatmocks.NewMockRefundService(ctrl),
				"appid", "mchid", "https://takeout/pay/callback")
			resp, err := svc.Prepay(context.Background(), tc.prepay)
			if tc.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tc.wantErr, ErrOrderPaid) {
					assert.ErrorIs(t, err, ErrOrderPaid)
				} else {
					assert.Equal(t, tc.wantErr.Error(), err.Error())
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantResp, resp)
		})
	}
}

func TestJSAPIPaymentService_PrepayProviderFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	js := wechatmocks.NewMockJSAPIService(ctrl)
	js.EXPECT().PrepayWithRequestPayment(gomock.Any(), gomock.Any()).
		Return(nil, nil, &core.APIError{StatusCode: 500, Code: "SYSTEM_ERROR"})
	svc := NewJSAPIPaymentService(js, wechatmocks.NewMockRefundService(ctrl), "appid", "mchid", "")
	_, err := svc.Prepay(context.Background(), domain.Prepay{OrderSN: "sn", Amount: 1, OpenID: "o"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrOrderPaid)
}

func TestJSAPIPaymentService_Refund(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) RefundService
		wantErr bool
	}{
		{
			name: "退款受理",
			mock: func(ctrl *gomock.Controller) RefundService {
				svc := wechatmocks.NewMockRefundService(ctrl)
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req refunddomestic.CreateRequest) (*refunddomestic.Refund, *core.APIResult, error) {
						assert.Equal(t, "sn-1", *req.OutTradeNo)
						assert.Equal(t, "R1", *req.OutRefundNo)
						assert.Equal(t, int64(3900), *req.Amount.Refund)
						assert.Equal(t, int64(3900), *req.Amount.Total)
						status := refunddomestic.Status("PROCESSING")
						return &refunddomestic.Refund{Status: &status}, nil, nil
					})
				return svc
			},
		},
		{
			name: "退款异常",
			mock: func(ctrl *gomock.Controller) RefundService {
				svc := wechatmocks.NewMockRefundService(ctrl)
				status := refunddomestic.Status("ABNORMAL")
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&refunddomestic.Refund{Status: &status}, nil, nil)
				return svc
			},
			wantErr: true,
		},
		{
			name: "调用失败",
			mock: func(ctrl *gomock.Controller) RefundService {
				svc := wechatmocks.NewMockRefundService(ctrl)
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, nil, errors.New("mock error"))
				return svc
			},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewJSAPIPaymentService(wechatmocks.NewMockJSAPIService(ctrl), tc.mock(ctrl), "appid", "mchid", "")
			err := svc.Refund(context.Background(), domain.Refund{OrderSN: "sn-1", RefundSN: "R1", Amount: 3900, Total: 3900})
			assert.Equal(t, tc.wantErr, err != nil)
		})
	}
}

func TestBasePaymentService_ConvertCallbackTransactionToDomain(t *testing.T) {
	svc := NewJSAPIPaymentService(nil, nil, "appid", "mchid", "")

	pmt, err := svc.ConvertCallbackTransactionToDomain(&payments.Transaction{
		OutTradeNo:    core.String("sn-1"),
		TransactionId: core.String("wx-1"),
		TradeState:    core.String("SUCCESS"),
	})
	require.NoError(t, err)
	assert.Equal(t, "sn-1", pmt.OrderSN)
	assert.Equal(t, "wx-1", pmt.TransactionID)
	assert.Equal(t, domain.PaymentStatusPaidSuccess, pmt.Status)
	assert.True(t, pmt.PaidAt > 0)

	_, err = svc.ConvertCallbackTransactionToDomain(&payments.Transaction{
		OutTradeNo: core.String("sn-1"),
		TradeState: core.String("USERPAYING"),
	})
	assert.ErrorIs(t, err, ErrIgnoredPaymentStatus)

	_, err = svc.ConvertCallbackTransactionToDomain(&payments.Transaction{
		OutTradeNo: core.String("sn-1"),
		TradeState: core.String("UNKNOWN"),
	})
	assert.ErrorIs(t, err, ErrUnknownTransactionState)
}
