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
	"github.com/ecodeclub/takeout/internal/address/internal/domain"
	"github.com/ecodeclub/takeout/internal/address/internal/service"
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
	g := server.Group("/addressBook")
	g.POST("/save", ginx.BS[Address](h.Save))
	g.POST("/list", ginx.S(h.List))
	g.POST("/detail", ginx.BS[IDReq](h.Detail))
	g.POST("/delete", ginx.BS[IDReq](h.Delete))
	g.POST("/default", ginx.BS[IDReq](h.SetDefault))
	g.POST("/default/get", ginx.S(h.GetDefault))
}

func (h *Handler) Save(ctx *ginx.Context, req Address, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Save(ctx, req.toDomain(sess.Claims().Uid))
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: id}, nil
}

func (h *Handler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	res, err := h.svc.List(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(res, func(idx int, src domain.Address) Address {
			return newAddress(src)
		}),
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	res, err := h.svc.FindByID(ctx, sess.Claims().Uid, req.ID)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: newAddress(res)}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Delete(ctx, sess.Claims().Uid, req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *Handler) SetDefault(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.SetDefault(ctx, sess.Claims().Uid, req.ID)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{}, nil
}

func (h *Handler) GetDefault(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	res, err := h.svc.FindDefault(ctx, sess.Claims().Uid)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: newAddress(res)}, nil
}

func (h *Handler) errorResult(err error) (ginx.Result, error) {
	if errors.Is(err, service.ErrAddressNotFound) {
		return addressNotFoundResult, nil
	}
	return systemErrorResult, err
}
