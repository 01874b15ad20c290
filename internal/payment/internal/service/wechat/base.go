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
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/takeout/internal/payment/internal/domain"
	"github.com/gotomicro/ego/core/elog"
	"github.com/wechatpay-apiv3/wechatpay-go/core"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments"
)

var (
	// 在微信 JSAPI 里面，分别是
	// SUCCESS：支付成功
	// REFUND：转入退款
	// NOTPAY：未支付
	// CLOSED：已关闭
	// REVOKED：已撤销（付款码支付）
	// USERPAYING：用户支付中（付款码支付）
	// PAYERROR：支付失败(其他原因，如银行返回失败)
	tradeState2PaymentStatus = map[string]domain.PaymentStatus{
		"SUCCESS":    domain.PaymentStatusPaidSuccess,
		"PAYERROR":   domain.PaymentStatusPaidFailed,
		"CLOSED":     domain.PaymentStatusPaidFailed,
		"REVOKED":    domain.PaymentStatusPaidFailed,
		"NOTPAY":     domain.PaymentStatusUnpaid,
		"USERPAYING": domain.PaymentStatusProcessing,
		"REFUND":     domain.PaymentStatusRefund,
	}

	ErrOrderPaid               = errors.New("订单已支付")
	ErrUnknownTransactionState = errors.New("未知的微信事务状态")
	ErrIgnoredPaymentStatus    = errors.New("忽略的支付状态")
)

const orderPaidCode = "ORDERPAID"

func GetPaymentStatus(tradeState string) (domain.PaymentStatus, error) {
	status, ok := tradeState2PaymentStatus[tradeState]
	if !ok {
		return 0, fmt.Errorf("%w, %s", ErrUnknownTransactionState, tradeState)
	}
	return status, nil
}

// isOrderPaid 微信侧已经支付过的订单再次下单会返回 ORDERPAID
func isOrderPaid(err error) bool {
	var apiErr *core.APIError
	return errors.As(err, &apiErr) && apiErr.Code == orderPaidCode
}

type basePaymentService struct {
	l *elog.Component

	appID     string
	mchID     string
	notifyURL string
}

func (b *basePaymentService) ConvertCallbackTransactionToDomain(txn *payments.Transaction) (domain.Payment, error) {
	if txn.TradeState == nil || txn.OutTradeNo == nil {
		return domain.Payment{}, fmt.Errorf("%w, 缺少交易状态或商户订单号", ErrUnknownTransactionState)
	}
	status, err := GetPaymentStatus(*txn.TradeState)
	if err != nil {
		return domain.Payment{}, err
	}

	if status != domain.PaymentStatusPaidSuccess && status != domain.PaymentStatusPaidFailed {
		b.l.Warn("忽略的微信支付通知状态",
			elog.String("TradeState", *txn.TradeState),
			elog.Any("PaymentStatus", status),
		)
		return domain.Payment{}, fmt.Errorf("%w, %d", ErrIgnoredPaymentStatus, status.ToUint8())
	}

	return b.convertToPaymentDomain(txn, status), nil
}

func (b *basePaymentService) convertToPaymentDomain(txn *payments.Transaction, status domain.PaymentStatus) domain.Payment {
	var paidAt int64
	if status == domain.PaymentStatusPaidSuccess {
		paidAt = time.Now().UnixMilli()
	}
	var transactionID string
	if txn.TransactionId != nil {
		transactionID = *txn.TransactionId
	}
	return domain.Payment{
		OrderSN:       *txn.OutTradeNo,
		TransactionID: transactionID,
		PaidAt:        paidAt,
		Status:        status,
	}
}
