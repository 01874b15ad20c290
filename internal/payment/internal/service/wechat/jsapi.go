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
	"fmt"
	"time"

	"github.com/ecodeclub/takeout/internal/payment/internal/domain"
	"github.com/gotomicro/ego/core/elog"
	"github.com/wechatpay-apiv3/wechatpay-go/core"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments/jsapi"
	"github.com/wechatpay-apiv3/wechatpay-go/services/refunddomestic"
)

//go:generate mockgen -source=./jsapi.go -package=wechatmocks -destination=./mocks/jsapi.mock.go -typed JSAPIService,RefundService
type JSAPIService interface {
	PrepayWithRequestPayment(ctx context.Context, req jsapi.PrepayRequest) (resp *jsapi.PrepayWithRequestPaymentResponse, result *core.APIResult, err error)
}

type RefundService interface {
	Create(ctx context.Context, req refunddomestic.CreateRequest) (resp *refunddomestic.Refund, result *core.APIResult, err error)
}

const (
	currencyCNY = "CNY"
	// 与订单超时关闭的时间保持一致
	prepayExpiration = 15 * time.Minute
)

type JSAPIPaymentService struct {
	svc       JSAPIService
	refundSvc RefundService
	basePaymentService
}

func NewJSAPIPaymentService(svc JSAPIService, refundSvc RefundService,
	appid, mchid, notifyURL string) *JSAPIPaymentService {
	return &JSAPIPaymentService{
		svc:       svc,
		refundSvc: refundSvc,
		basePaymentService: basePaymentService{
			l:         elog.DefaultLogger,
			appID:     appid,
			mchID:     mchid,
			notifyURL: notifyURL,
		},
	}
}

func (n *JSAPIPaymentService) Prepay(ctx context.Context, p domain.Prepay) (domain.PrepayResponse, error) {
	if p.Amount <= 0 {
		return domain.PrepayResponse{}, fmt.Errorf("微信支付金额非法: %d", p.Amount)
	}
	if p.OpenID == "" {
		return domain.PrepayResponse{}, fmt.Errorf("缺少用户的小程序 open id")
	}
	resp, _, err := n.svc.PrepayWithRequestPayment(ctx,
		jsapi.PrepayRequest{
			Appid:       core.String(n.appID),
			Mchid:       core.String(n.mchID),
			Description: core.String(p.Description),
			OutTradeNo:  core.String(p.OrderSN),
			TimeExpire:  core.Time(time.Now().Add(prepayExpiration)),
			NotifyUrl:   core.String(n.notifyURL),
			Amount: &jsapi.Amount{
				Currency: core.String(currencyCNY),
				Total:    core.Int64(p.Amount),
			},
			Payer: &jsapi.Payer{Openid: core.String(p.OpenID)},
		},
	)
	if err != nil {
		if isOrderPaid(err) {
			return domain.PrepayResponse{}, fmt.Errorf("%w, order_sn=%s", ErrOrderPaid, p.OrderSN)
		}
		return domain.PrepayResponse{}, fmt.Errorf("微信预支付失败: %w", err)
	}

	return domain.PrepayResponse{
		PrepayId: *resp.PrepayId,
		// 应用ID
		Appid: *resp.Appid,
		// 时间戳
		TimeStamp: *resp.TimeStamp,
		// 随机字符串
		NonceStr: *resp.NonceStr,
		// 订单详情扩展字符串
		Package: *resp.Package,
		// 签名方式
		SignType: *resp.SignType,
		// 签名
		PaySign: *resp.PaySign,
	}, nil
}

// Refund 申请退款, 微信侧受理即视为成功, 退款结果异步到账
func (n *JSAPIPaymentService) Refund(ctx context.Context, r domain.Refund) error {
	resp, _, err := n.refundSvc.Create(ctx, refunddomestic.CreateRequest{
		OutTradeNo:  core.String(r.OrderSN),
		OutRefundNo: core.String(r.RefundSN),
		Amount: &refunddomestic.AmountReq{
			Refund:   core.Int64(r.Amount),
			Total:    core.Int64(r.Total),
			Currency: core.String(currencyCNY),
		},
	})
	if err != nil {
		return fmt.Errorf("微信申请退款失败: %w", err)
	}
	if resp != nil && resp.Status != nil {
		switch string(*resp.Status) {
		case "CLOSED", "ABNORMAL":
			return fmt.Errorf("微信退款状态异常: order_sn=%s, refund_sn=%s, status=%s",
				r.OrderSN, r.RefundSN, string(*resp.Status))
		}
	}
	return nil
}
