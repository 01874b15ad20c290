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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/takeout/internal/order/internal/domain"
	"github.com/ecodeclub/takeout/internal/order/internal/service"
	"github.com/gin-gonic/gin"
)

// claimOpenID 登录时写入的小程序 openid
const claimOpenID = "openid"

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/submit", ginx.BS[SubmitReq](h.Submit))
	g.POST("/payment", ginx.BS[PaymentReq](h.Payment))
	g.POST("/history", ginx.BS[HistoryReq](h.History))
	g.POST("/detail", ginx.BS[IDReq](h.Detail))
	g.POST("/cancel", ginx.BS[IDReq](h.Cancel))
	g.POST("/repetition", ginx.BS[IDReq](h.Repetition))
}

func (h *Handler) Submit(ctx *ginx.Context, req SubmitReq, sess session.Session) (ginx.Result, error) {
	o, err := h.svc.Submit(ctx, sess.Claims().Uid, req.toDomain())
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: SubmitResp{
			ID:          o.ID,
			OrderNumber: o.Number,
			OrderAmount: o.Amount,
			OrderTime:   o.OrderTime,
		},
	}, nil
}

func (h *Handler) Payment(ctx *ginx.Context, req PaymentReq, sess session.Session) (ginx.Result, error) {
	claims := sess.Claims()
	resp, err := h.svc.Pay(ctx, claims.Uid, req.OrderNumber, claims.Get(claimOpenID).StringOrDefault(""))
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: newPaymentResp(resp),
	}, nil
}

func (h *Handler) History(ctx *ginx.Context, req HistoryReq, sess session.Session) (ginx.Result, error) {
	views, total, err := h.svc.ListUserOrders(ctx, sess.Claims().Uid, domain.OrderStatus(req.Status), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: OrderList{
			Total: total,
			Orders: slice.Map(views, func(idx int, src domain.OrderView) Order {
				return newOrder(src)
			}),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	view, err := h.svc.UserDetail(ctx, sess.Claims().Uid, req.ID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: newOrder(view),
	}, nil
}

func (h *Handler) Cancel(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.UserCancel(ctx, sess.Claims().Uid, req.ID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{}, nil
}

// Repetition 再来一单, 把订单中的商品重新加入购物车
func (h *Handler) Repetition(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Reorder(ctx, sess.Claims().Uid, req.ID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{}, nil
}
