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

package web

import (
	"fmt"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/takeout/internal/order/internal/domain"
	"github.com/ecodeclub/takeout/internal/payment"
)

type SubmitReq struct {
	AddressBookID         int64  `json:"addressBookId"`
	PayMethod             uint8  `json:"payMethod"`
	Remark                string `json:"remark"`
	EstimatedDeliveryTime int64  `json:"estimatedDeliveryTime"`
	DeliveryStatus        uint8  `json:"deliveryStatus"`
	PackAmount            int64  `json:"packAmount"`
	TablewareNumber       int64  `json:"tablewareNumber"`
	TablewareStatus       uint8  `json:"tablewareStatus"`
}

func (r SubmitReq) toDomain() domain.Submission {
	return domain.Submission{
		AddressBookID:         r.AddressBookID,
		PayMethod:             r.PayMethod,
		Remark:                r.Remark,
		EstimatedDeliveryTime: r.EstimatedDeliveryTime,
		DeliveryStatus:        r.DeliveryStatus,
		PackAmount:            r.PackAmount,
		TablewareNumber:       r.TablewareNumber,
		TablewareStatus:       r.TablewareStatus,
	}
}

type SubmitResp struct {
	ID          int64  `json:"id"`
	OrderNumber string `json:"orderNumber"`
	OrderAmount int64  `json:"orderAmount"`
	OrderTime   int64  `json:"orderTime"`
}

type PaymentReq struct {
	OrderNumber string `json:"orderNumber"`
}

// PaymentResp 小程序调起支付所需的参数
type PaymentResp struct {
	PrepayId  string `json:"prepayId"`
	Appid     string `json:"appId"`
	TimeStamp string `json:"timeStamp"`
	NonceStr  string `json:"nonceStr"`
	Package   string `json:"package"`
	SignType  string `json:"signType"`
	PaySign   string `json:"paySign"`
}

func newPaymentResp(p payment.PrepayResponse) PaymentResp {
	return PaymentResp{
		PrepayId:  p.PrepayId,
		Appid:     p.Appid,
		TimeStamp: p.TimeStamp,
		NonceStr:  p.NonceStr,
		Package:   p.Package,
		SignType:  p.SignType,
		PaySign:   p.PaySign,
	}
}

type IDReq struct {
	ID int64 `json:"id"`
}

type HistoryReq struct {
	// 0 表示全部
	Status uint8 `json:"status"`
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
}

type RejectionReq struct {
	ID              int64  `json:"id"`
	RejectionReason string `json:"rejectionReason"`
}

type CancelReq struct {
	ID           int64  `json:"id"`
	CancelReason string `json:"cancelReason"`
}

type SearchReq struct {
	Number    string `json:"number"`
	Phone     string `json:"phone"`
	Status    uint8  `json:"status"`
	BeginTime int64  `json:"beginTime"`
	EndTime   int64  `json:"endTime"`
	Offset    int    `json:"offset"`
	Limit     int    `json:"limit"`
}

func (r SearchReq) toDomain() domain.SearchCondition {
	return domain.SearchCondition{
		Number:    r.Number,
		Phone:     r.Phone,
		Status:    domain.OrderStatus(r.Status),
		BeginTime: r.BeginTime,
		EndTime:   r.EndTime,
	}
}

type Order struct {
	ID                    int64         `json:"id"`
	Number                string        `json:"number"`
	Status                uint8         `json:"status"`
	UserID                int64         `json:"userId"`
	AddressBookID         int64         `json:"addressBookId"`
	OrderTime             int64         `json:"orderTime"`
	CheckoutTime          int64         `json:"checkoutTime"`
	PayMethod             uint8         `json:"payMethod"`
	PayStatus             uint8         `json:"payStatus"`
	Amount                int64         `json:"amount"`
	Remark                string        `json:"remark"`
	Phone                 string        `json:"phone"`
	Address               string        `json:"address"`
	Consignee             string        `json:"consignee"`
	CancelReason          string        `json:"cancelReason"`
	RejectionReason       string        `json:"rejectionReason"`
	CancelTime            int64         `json:"cancelTime"`
	EstimatedDeliveryTime int64         `json:"estimatedDeliveryTime"`
	DeliveryStatus        uint8         `json:"deliveryStatus"`
	DeliveryTime          int64         `json:"deliveryTime"`
	PackAmount            int64         `json:"packAmount"`
	TablewareNumber       int64         `json:"tablewareNumber"`
	TablewareStatus       uint8         `json:"tablewareStatus"`
	OrderDetailList       []OrderDetail `json:"orderDetailList"`
	// 菜品摘要, 例如 宫保鸡丁*2;米饭*1;
	OrderDishes string `json:"orderDishes,omitempty"`
}

type OrderDetail struct {
	ID         int64  `json:"id"`
	OrderID    int64  `json:"orderId"`
	Name       string `json:"name"`
	Image      string `json:"image"`
	DishID     int64  `json:"dishId"`
	SetmealID  int64  `json:"setmealId"`
	DishFlavor string `json:"dishFlavor"`
	Number     int64  `json:"number"`
	Amount     int64  `json:"amount"`
}

type OrderList struct {
	Total  int64   `json:"total"`
	Orders []Order `json:"orders"`
}

type Statistics struct {
	ToBeConfirmed      int64 `json:"toBeConfirmed"`
	Confirmed          int64 `json:"confirmed"`
	DeliveryInProgress int64 `json:"deliveryInProgress"`
}

func newOrder(v domain.OrderView) Order {
	return Order{
		ID:                    v.ID,
		Number:                v.Number,
		Status:                v.Status.ToUint8(),
		UserID:                v.UserID,
		AddressBookID:         v.AddressBookID,
		OrderTime:             v.OrderTime,
		CheckoutTime:          v.CheckoutTime,
		PayMethod:             v.PayMethod,
		PayStatus:             v.PayStatus.ToUint8(),
		Amount:                v.Amount,
		Remark:                v.Remark,
		Phone:                 v.Phone,
		Address:               v.Address,
		Consignee:             v.Consignee,
		CancelReason:          v.CancelReason,
		RejectionReason:       v.RejectionReason,
		CancelTime:            v.CancelTime,
		EstimatedDeliveryTime: v.EstimatedDeliveryTime,
		DeliveryStatus:        v.DeliveryStatus,
		DeliveryTime:          v.DeliveryTime,
		PackAmount:            v.PackAmount,
		TablewareNumber:       v.TablewareNumber,
		TablewareStatus:       v.TablewareStatus,
		OrderDetailList: slice.Map(v.Lines, func(idx int, src domain.OrderLine) OrderDetail {
			return OrderDetail{
				ID:         src.ID,
				OrderID:    src.OrderID,
				Name:       src.Name,
				Image:      src.Image,
				DishID:     src.DishID,
				SetmealID:  src.SetmealID,
				DishFlavor: src.DishFlavor,
				Number:     src.Number,
				Amount:     src.Amount,
			}
		}),
	}
}

func orderDishes(lines []domain.OrderLine) string {
	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(fmt.Sprintf("%s*%d;", l.Name, l.Number))
	}
	return sb.String()
}
