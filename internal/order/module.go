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

package order

import (
	"github.com/ecodeclub/takeout/internal/order/internal/consumer"
	"github.com/ecodeclub/takeout/internal/order/internal/domain"
	"github.com/ecodeclub/takeout/internal/order/internal/event"
	"github.com/ecodeclub/takeout/internal/order/internal/job"
	"github.com/ecodeclub/takeout/internal/order/internal/service"
	"github.com/ecodeclub/takeout/internal/order/internal/web"
)

type (
	Service                   = service.Service
	Handler                   = web.Handler
	AdminHandler              = web.AdminHandler
	PaymentConsumer           = consumer.PaymentConsumer
	CloseTimeoutOrdersJob     = job.CloseTimeoutOrdersJob
	CompleteDeliveryOrdersJob = job.CompleteDeliveryOrdersJob
	Order                     = domain.Order
	OrderLine                 = domain.OrderLine
	OrderView                 = domain.OrderView
	OrderStatus               = domain.OrderStatus
	PayStatus                 = domain.PayStatus
	OrderEvent                = event.OrderEvent
)

const (
	StatusUnpaid             = domain.OrderStatusUnpaid
	StatusToBeConfirmed      = domain.OrderStatusToBeConfirmed
	StatusConfirmed          = domain.OrderStatusConfirmed
	StatusDeliveryInProgress = domain.OrderStatusDeliveryInProgress
	StatusCompleted          = domain.OrderStatusCompleted
	StatusCancelled          = domain.OrderStatusCancelled

	OrderEventName = event.OrderEventName
)

var (
	ErrOrderNotFound      = service.ErrOrderNotFound
	ErrInvalidOrderStatus = service.ErrInvalidOrderStatus
	ErrAddressNotFound    = service.ErrAddressNotFound
	ErrEmptyCart          = service.ErrEmptyCart
	ErrOrderPaid          = service.ErrOrderPaid
	ErrPaymentProvider    = service.ErrPaymentProvider
	ErrEmptyOrder         = service.ErrEmptyOrder
)

type Module struct {
	Svc                       Service
	Hdl                       *Handler
	AdminHdl                  *AdminHandler
	PaymentConsumer           *PaymentConsumer
	CloseTimeoutOrdersJob     *CloseTimeoutOrdersJob
	CompleteDeliveryOrdersJob *CompleteDeliveryOrdersJob
}
