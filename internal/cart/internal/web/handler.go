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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/takeout/internal/cart/internal/domain"
	"github.com/ecodeclub/takeout/internal/cart/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/cart")
	g.POST("/add", ginx.BS[ItemReq](h.Add))
	g.GET("/list", ginx.S(h.List))
	g.POST("/clean", ginx.S(h.Clean))
	g.POST("/sub", ginx.BS[ItemReq](h.Sub))
}

func (h *Handler) Add(ctx *ginx.Context, req ItemReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Add(ctx, sess.Claims().Uid, req.toDomain())
	return h.result(err)
}

func (h *Handler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	items, err := h.svc.List(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(items, func(idx int, src domain.CartItem) CartItem {
			return newCartItem(src)
		}),
	}, nil
}

func (h *Handler) Clean(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	err := h.svc.Clean(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *Handler) Sub(ctx *ginx.Context, req ItemReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Sub(ctx, sess.Claims().Uid, req.toDomain())
	return h.result(err)
}

func (h *Handler) result(err error) (ginx.Result, error) {
	switch {
	case err == nil:
		return ginx.Result{}, nil
	case errors.Is(err, service.ErrUnknownItem):
		return unknownItemResult, nil
	case errors.Is(err, service.ErrItemNotFound):
		return itemNotFoundResult, nil
	default:
		return systemErrorResult, err
	}
}
