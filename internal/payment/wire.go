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

//go:build wireinject

package payment

import (
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/takeout/internal/payment/internal/event"
	"github.com/ecodeclub/takeout/internal/payment/internal/service"
	"github.com/ecodeclub/takeout/internal/payment/internal/web"
	"github.com/ecodeclub/takeout/internal/payment/ioc"
	"github.com/google/wire"
	"github.com/wechatpay-apiv3/wechatpay-go/core/notify"
)

func InitModule(q mq.MQ) (*Module, error) {
	wire.Build(
		ioc.InitWechatConfig,
		ioc.InitWechatClient,
		ioc.InitJSApiService,
		ioc.InitRefundService,
		ioc.InitWechatJSAPIPaymentService,
		ioc.InitWechatNotifyHandler,
		wire.Bind(new(web.NotifyParser), new(*notify.Handler)),
		event.NewPaymentEventProducer,
		service.NewService,
		web.NewWechatHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}
