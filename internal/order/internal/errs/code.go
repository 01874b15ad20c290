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

package errs

var (
	SystemError        = ErrorCode{Code: 514001, Msg: "系统错误"}
	OrderNotFound      = ErrorCode{Code: 514002, Msg: "订单不存在"}
	InvalidOrderStatus = ErrorCode{Code: 514003, Msg: "订单状态错误"}
	AddressNotFound    = ErrorCode{Code: 514004, Msg: "用户地址为空，不能下单"}
	EmptyCart          = ErrorCode{Code: 514005, Msg: "购物车数据为空，不能下单"}
	OrderPaid          = ErrorCode{Code: 514006, Msg: "该订单已支付"}
	PaymentProvider    = ErrorCode{Code: 514007, Msg: "支付渠道异常"}
	EmptyOrder         = ErrorCode{Code: 514008, Msg: "订单没有菜品，不能再来一单"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
