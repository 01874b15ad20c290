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
	"github.com/ecodeclub/takeout/internal/catalog/internal/domain"
	"github.com/ecodeclub/takeout/internal/catalog/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

// Handler C 端浏览菜单, 不需要登录
type Handler struct {
	dishSvc    service.DishService
	setmealSvc service.SetmealService
}

func NewHandler(dishSvc service.DishService, setmealSvc service.SetmealService) *Handler {
	return &Handler{
		dishSvc:    dishSvc,
		setmealSvc: setmealSvc,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/dish/list", ginx.B[CategoryReq](h.ListDish))
	server.POST("/setmeal/list", ginx.B[CategoryReq](h.ListSetmeal))
	server.POST("/setmeal/dishes", ginx.B[IDReq](h.SetmealDishes))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {}

func (h *Handler) ListDish(ctx *ginx.Context, req CategoryReq) (ginx.Result, error) {
	dishes, err := h.dishSvc.ListOnSale(ctx, req.CategoryID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(dishes, func(idx int, src domain.Dish) Dish { return newDish(src) }),
	}, nil
}

func (h *Handler) ListSetmeal(ctx *ginx.Context, req CategoryReq) (ginx.Result, error) {
	setmeals, err := h.setmealSvc.ListOnSale(ctx, req.CategoryID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(setmeals, func(idx int, src domain.Setmeal) Setmeal { return newSetmeal(src) }),
	}, nil
}

func (h *Handler) SetmealDishes(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	s, err := h.setmealSvc.Detail(ctx, req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	dishes, err := h.dishSvc.FindByIDs(ctx, slice.Map(s.Dishes, func(idx int, src domain.SetmealDish) int64 {
		return src.DishID
	}))
	if err != nil {
		return systemErrorResult, err
	}
	dishMap := make(map[int64]domain.Dish, len(dishes))
	for _, d := range dishes {
		dishMap[d.ID] = d
	}
	return ginx.Result{
		Data: slice.Map(s.Dishes, func(idx int, src domain.SetmealDish) DishItem {
			d := dishMap[src.DishID]
			return DishItem{
				Name:        src.Name,
				Copies:      src.Copies,
				Image:       d.Image,
				Description: d.Description,
			}
		}),
	}, nil
}
