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
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/takeout/internal/order/internal/errs"
	"github.com/ecodeclub/takeout/internal/order/internal/service"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	orderNotFoundResult = ginx.Result{
		Code: errs.OrderNotFound.Code,
		Msg:  errs.OrderNotFound.Msg,
	}
	invalidOrderStatusResult = ginx.Result{
		Code: errs.InvalidOrderStatus.Code,
		Msg:  errs.InvalidOrderStatus.Msg,
	}
	addressNotFoundResult = ginx.Result{
		Code: errs.AddressNotFound.Code,
		Msg:  errs.AddressNotFound.Msg,
	}
	emptyCartResult = ginx.Result{
		Code: errs.EmptyCart.Code,
		Msg:  errs.EmptyCart.Msg,
	}
	orderPaidResult = ginx.Result{
		Code: errs.OrderPaid.Code,
		Msg:  errs.OrderPaid.Msg,
	}
	paymentProviderResult = ginx.Result{
		Code: errs.PaymentProvider.Code,
		Msg:  errs.PaymentProvider.Msg,
	}
	emptyOrderResult = ginx.Result{
		Code: errs.EmptyOrder.Code,
		Msg:  errs.EmptyOrder.Msg,
	}
)

// errorResult 业务错误返回对应的错误码, 其余错误交给 ginx 记录日志
func errorResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		return orderNotFoundResult, nil
	case errors.Is(err, service.ErrInvalidOrderStatus):
		return invalidOrderStatusResult, nil
	case errors.Is(err, service.ErrAddressNotFound):
		return addressNotFoundResult, nil
	case errors.Is(err, service.ErrEmptyCart):
		return emptyCartResult, nil
	case errors.Is(err, service.ErrOrderPaid):
		return orderPaidResult, nil
	case errors.Is(err, service.ErrEmptyOrder):
		return emptyOrderResult, nil
	case errors.Is(err, service.ErrPaymentProvider):
		return paymentProviderResult, err
	default:
		return systemErrorResult, err
	}
}
