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
	"context"
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/takeout/internal/payment/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/wechatpay-apiv3/wechatpay-go/core/notify"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments"
)

var _ ginx.Handler = &WechatHandler{}

// NotifyParser 校验签名并解密微信的回调通知
type NotifyParser interface {
	ParseNotifyRequest(ctx context.Context, request *http.Request, content interface{}) (*notify.Request, error)
}

type WechatHandler struct {
	parser NotifyParser
	svc    service.Service
	l      *elog.Component
}

func NewWechatHandler(parser NotifyParser, svc service.Service) *WechatHandler {
	return &WechatHandler{
		parser: parser,
		svc:    svc,
		l:      elog.DefaultLogger}
}

func (h *WechatHandler) PrivateRoutes(_ *gin.Engine) {}

func (h *WechatHandler) PublicRoutes(server *gin.Engine) {
	server.Any("/pay/callback", ginx.W(h.HandleCallBack))
}

func (h *WechatHandler) HandleCallBack(ctx *ginx.Context) (ginx.Result, error) {
	transaction := &payments.Transaction{}
	_, err := h.parser.ParseNotifyRequest(ctx, ctx.Request, transaction)
	if err != nil {
		h.l.Warn("非法的微信支付通知", elog.FieldErr(err))
		return ginx.Result{}, err
	}
	err = h.svc.HandleCallback(ctx, transaction)
	return ginx.Result{}, err
}
