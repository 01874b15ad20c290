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

package ioc

import (
	"context"
	"fmt"

	"github.com/ecodeclub/takeout/internal/payment/internal/service/wechat"
	"github.com/gotomicro/ego/core/econf"
	"github.com/wechatpay-apiv3/wechatpay-go/core"
	"github.com/wechatpay-apiv3/wechatpay-go/core/auth/verifiers"
	"github.com/wechatpay-apiv3/wechatpay-go/core/downloader"
	"github.com/wechatpay-apiv3/wechatpay-go/core/notify"
	"github.com/wechatpay-apiv3/wechatpay-go/core/option"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments/jsapi"
	"github.com/wechatpay-apiv3/wechatpay-go/services/refunddomestic"
	"github.com/wechatpay-apiv3/wechatpay-go/utils"
)

func InitWechatClient(cfg WechatConfig) *core.Client {
	// 商户私钥用来生成请求的签名
	mchPrivateKey, err := utils.LoadPrivateKeyWithPath(cfg.KeyPath)
	if err != nil {
		panic(fmt.Errorf("加载商户私钥失败 path=%s: %w", cfg.KeyPath, err))
	}
	// 自动下载并定时更新平台证书, 回调验签也依赖这份证书
	client, err := core.NewClient(
		context.Background(),
		option.WithWechatPayAutoAuthCipher(
			cfg.MchID, cfg.MchSerialNum,
			mchPrivateKey, cfg.MchKey),
	)
	if err != nil {
		panic(fmt.Errorf("初始化微信支付客户端失败: %w", err))
	}
	return client
}

func InitJSApiService(cli *core.Client) wechat.JSAPIService {
	return &jsapi.JsapiApiService{Client: cli}
}

func InitRefundService(cli *core.Client) wechat.RefundService {
	return &refunddomestic.RefundsApiService{Client: cli}
}

func InitWechatJSAPIPaymentService(js wechat.JSAPIService,
	refund wechat.RefundService,
	cfg WechatConfig) *wechat.JSAPIPaymentService {
	return wechat.NewJSAPIPaymentService(js, refund, cfg.AppID, cfg.MchID, cfg.PaymentNotifyURL)
}

// InitWechatNotifyHandler 需要在 InitWechatClient 之后调用
func InitWechatNotifyHandler(_ *core.Client, cfg WechatConfig) *notify.Handler {
	visitor := downloader.MgrInstance().GetCertificateVisitor(cfg.MchID)
	handler, err := notify.NewRSANotifyHandler(cfg.MchKey, verifiers.NewSHA256WithRSAVerifier(visitor))
	if err != nil {
		panic(fmt.Errorf("初始化微信支付回调处理器失败: %w", err))
	}
	return handler
}

func InitWechatConfig() WechatConfig {
	var cfg WechatConfig
	err := econf.UnmarshalKey("wechat.payment", &cfg)
	if err != nil {
		panic(err)
	}
	if err = cfg.validate(); err != nil {
		panic(err)
	}
	return cfg
}

// WechatConfig 小程序支付的商户配置
type WechatConfig struct {
	// 小程序的 AppID, 不是公众号的
	AppID string `yaml:"appID"`
	MchID string `yaml:"mchID"`
	// APIv3 密钥
	MchKey       string `yaml:"mchKey"`
	MchSerialNum string `yaml:"mchSerialNum"`
	KeyPath      string `yaml:"keyPath"`
	// 支付结果通知地址, 必须是外网可访问的 https 地址
	PaymentNotifyURL string `yaml:"paymentNotifyURL"`
}

func (c WechatConfig) validate() error {
	switch {
	case c.AppID == "":
		return fmt.Errorf("wechat.payment.appID 未配置")
	case c.MchID == "":
		return fmt.Errorf("wechat.payment.mchID 未配置")
	case c.PaymentNotifyURL == "":
		return fmt.Errorf("wechat.payment.paymentNotifyURL 未配置")
	}
	return nil
}
