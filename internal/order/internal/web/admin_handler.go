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
	"github.com/ecodeclub/takeout/internal/order/internal/domain"
	"github.com/ecodeclub/takeout/internal/order/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &AdminHandler{}

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/search", ginx.B[SearchReq](h.Search))
	g.GET("/statistics", ginx.W(h.Statistics))
	g.POST("/detail", ginx.B[IDReq](h.Detail))
	g.POST("/confirm", ginx.B[IDReq](h.Confirm))
	g.POST("/rejection", ginx.B[RejectionReq](h.Rejection))
	g.POST("/cancel", ginx.B[CancelReq](h.Cancel))
	g.POST("/delivery", ginx.B[IDReq](h.Delivery))
	g.POST("/complete", ginx.B[IDReq](h.Complete))
}

func (h *AdminHandler) Search(ctx *ginx.Context, req SearchReq) (ginx.Result, error) {
	views, total, err := h.svc.Search(ctx, req.toDomain(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: OrderList{
			Total: total,
			Orders: slice.Map(views, func(idx int, src domain.OrderView) Order {
				o := newOrder(src)
				o.OrderDishes = orderDishes(src.Lines)
				return o
			}),
		},
	}, nil
}

func (h *AdminHandler) Statistics(ctx *ginx.Context) (ginx.Result, error) {
	st, err := h.svc.Statistics(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: Statistics{
			ToBeConfirmed:      st.ToBeConfirmed,
			Confirmed:          st.Confirmed,
			DeliveryInProgress: st.DeliveryInProgress,
		},
	}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	view, err := h.svc.Detail(ctx, req.ID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: newOrder(view),
	}, nil
}

func (h *AdminHandler) Confirm(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	return h.result(h.svc.Confirm(ctx, req.ID))
}

func (h *AdminHandler) Rejection(ctx *ginx.Context, req RejectionReq) (ginx.Result, error) {
	return h.result(h.svc.Reject(ctx, req.ID, req.RejectionReason))
}

func (h *AdminHandler) Cancel(ctx *ginx.Context, req CancelReq) (ginx.Result, error) {
	return h.result(h.svc.Cancel(ctx, req.ID, req.CancelReason))
}

func (h *AdminHandler) Delivery(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	return h.result(h.svc.Delivery(ctx, req.ID))
}

func (h *AdminHandler) Complete(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	return h.result(h.svc.Complete(ctx, req.ID))
}

func (h *AdminHandler) result(err error) (ginx.Result, error) {
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{}, nil
}
