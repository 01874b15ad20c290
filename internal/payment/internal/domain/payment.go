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

package domain

type PaymentStatus uint8

func (s PaymentStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	PaymentStatusUnpaid PaymentStatus = iota + 1
	PaymentStatusProcessing
	PaymentStatusPaidSuccess
	PaymentStatusPaidFailed
	PaymentStatusRefund
)

// Prepay 小程序下单所需的信息, Amount 单位为分
type Prepay struct {
	OrderSN     string
	Amount      int64
	Description string
	OpenID      string
}

// PrepayResponse 小程序端调起支付所需的参数
type PrepayResponse struct {
	PrepayId  string
	Appid     string
	TimeStamp string
	NonceStr  string
	Package   string
	SignType  string
	PaySign   string
}

type Refund struct {
	OrderSN  string
	RefundSN string
	// 退款金额
	Amount int64
	// 原订单金额
	Total int64
}

// Payment 微信支付结果
type Payment struct {
	OrderSN       string
	TransactionID string
	Status        PaymentStatus
	PaidAt        int64
}
