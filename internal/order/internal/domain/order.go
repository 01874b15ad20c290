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

type OrderStatus uint8

func (s OrderStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	OrderStatusUnpaid OrderStatus = iota + 1
	OrderStatusToBeConfirmed
	OrderStatusConfirmed
	OrderStatusDeliveryInProgress
	OrderStatusCompleted
	OrderStatusCancelled
)

type PayStatus uint8

func (s PayStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	PayStatusUnpaid PayStatus = iota
	PayStatusPaid
	PayStatusRefund
)

const PayMethodWechat uint8 = 1

const (
	CancelReasonUser    = "用户取消"
	CancelReasonTimeout = "订单超时，自动取消"
)

// Order 金额单位为分, 时间为毫秒时间戳, 0 表示未设置
type Order struct {
	ID            int64
	Number        string
	Status        OrderStatus
	UserID        int64
	AddressBookID int64
	OrderTime     int64
	CheckoutTime  int64
	PayMethod     uint8
	PayStatus     PayStatus
	// 订单总金额, 包含打包费
	Amount int64
	Remark string
	Phone  string
	// 下单时的地址快照
	Address               string
	Consignee             string
	CancelReason          string
	RejectionReason       string
	CancelTime            int64
	EstimatedDeliveryTime int64
	// 1 立即送出 0 选择具体时间
	DeliveryStatus  uint8
	DeliveryTime    int64
	PackAmount      int64
	TablewareNumber int64
	// 1 按餐量提供 0 选择具体数量
	TablewareStatus uint8
}

// OrderLine 订单明细, Amount 为下单时的单价
type OrderLine struct {
	ID         int64
	OrderID    int64
	Name       string
	Image      string
	DishID     int64
	SetmealID  int64
	DishFlavor string
	Number     int64
	Amount     int64
}

type OrderView struct {
	Order
	Lines []OrderLine
}

// Submission 用户提交订单时填写的信息, 商品来自购物车
type Submission struct {
	AddressBookID         int64
	PayMethod             uint8
	Remark                string
	EstimatedDeliveryTime int64
	DeliveryStatus        uint8
	PackAmount            int64
	TablewareNumber       int64
	TablewareStatus       uint8
}

// Transition 一次条件状态流转, 零值字段不更新
type Transition struct {
	OrderID         int64
	From            []OrderStatus
	To              OrderStatus
	PayStatus       PayStatus
	CheckoutTime    int64
	CancelTime      int64
	CancelReason    string
	RejectionReason string
	DeliveryTime    int64
}

type SearchCondition struct {
	Number string
	Phone  string
	// 0 表示不限
	Status    OrderStatus
	BeginTime int64
	EndTime   int64
}

type Statistics struct {
	ToBeConfirmed      int64
	Confirmed          int64
	DeliveryInProgress int64
}
