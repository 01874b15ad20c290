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
	"fmt"
	"testing"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/takeout/internal/order/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestErrorResult(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantResult ginx.Result
		wantErr    bool
	}{
		{
			name:       "订单不存在",
			err:        fmt.Errorf("%w: id=%d", service.ErrOrderNotFound, 1),
			wantResult: orderNotFoundResult,
		},
		{
			name:       "订单没有菜品",
			err:        fmt.Errorf("%w: id=%d", service.ErrEmptyOrder, 1),
			wantResult: emptyOrderResult,
		},
		{
			name:       "购物车为空",
			err:        service.ErrEmptyCart,
			wantResult: emptyCartResult,
		},
		{
			name:       "支付渠道异常需要记录日志",
			err:        fmt.Errorf("%w: %w", service.ErrPaymentProvider, errors.New("timeout")),
			wantResult: paymentProviderResult,
			wantErr:    true,
		},
		{
			name:       "未知错误",
			err:        errors.New("mock db error"),
			wantResult: systemErrorResult,
			wantErr:    true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := errorResult(tc.err)
			assert.Equal(t, tc.wantResult, res)
			assert.Equal(t, tc.wantErr, err != nil)
		})
	}
}
