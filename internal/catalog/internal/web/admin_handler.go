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

var _ ginx.Handler = &AdminHandler{}

type AdminHandler struct {
	dishSvc    service.DishService
	setmealSvc service.SetmealService
}

func NewAdminHandler(dishSvc service.DishService, setmealSvc service.SetmealService) *AdminHandler {
	return &AdminHandler{
		dishSvc:    dishSvc,
		setmealSvc: setmealSvc,
	}
}

func (h *AdminHandler) PublicRoutes(server *gin.Engine) {}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	dish := server.Group("/dish")
	dish.POST("/create", ginx.B[Dish](h.CreateDish))
	dish.POST("/update", ginx.B[Dish](h.UpdateDish))
	dish.POST("/delete", ginx.B[IDsReq](h.DeleteDish))
	dish.POST("/status", ginx.B[StatusReq](h.UpdateDishStatus))
	dish.POST("/detail", ginx.B[IDReq](h.DishDetail))
	dish.POST("/list", ginx.B[ListReq](h.ListDish))

	setmeal := server.Group("/setmeal")
	setmeal.POST("/create", ginx.B[Setmeal](h.CreateSetmeal))
	setmeal.POST("/update", ginx.B[Setmeal](h.UpdateSetmeal))
	setmeal.POST("/delete", ginx.B[IDsReq](h.DeleteSetmeal))
	setmeal.POST("/status", ginx.B[StatusReq](h.UpdateSetmealStatus))
	setmeal.POST("/detail", ginx.B[IDReq](h.SetmealDetail))
	setmeal.POST("/list", ginx.B[ListReq](h.ListSetmeal))
}

func (h *AdminHandler) CreateDish(ctx *ginx.Context, req Dish) (ginx.Result, error) {
	id, err := h.dishSvc.Create(ctx, req.toDomain())
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: id}, nil
}

func (h *AdminHandler) UpdateDish(ctx *ginx.Context, req Dish) (ginx.Result, error) {
	err := h.dishSvc.Update(ctx, req.toDomain())
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{}, nil
}

func (h *AdminHandler) DeleteDish(ctx *ginx.Context, req IDsReq) (ginx.Result, error) {
	err := h.dishSvc.Delete(ctx, req.IDs)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{}, nil
}

func (h *AdminHandler) UpdateDishStatus(ctx *ginx.Context, req StatusReq) (ginx.Result, error) {
	err := h.dishSvc.UpdateStatus(ctx, req.ID, domain.Status(req.Status))
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{}, nil
}

func (h *AdminHandler) DishDetail(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	d, err := h.dishSvc.Detail(ctx, req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newDish(d)}, nil
}

func (h *AdminHandler) ListDish(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	dishes, total, err := h.dishSvc.List(ctx, domain.DishQuery{
		Name:       req.Name,
		CategoryID: req.CategoryID,
		Status:     req.status(),
	}, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: DishList{
			Total:  total,
			Dishes: slice.Map(dishes, func(idx int, src domain.Dish) Dish { return newDish(src) }),
		},
	}, nil
}

func (h *AdminHandler) CreateSetmeal(ctx *ginx.Context, req Setmeal) (ginx.Result, error) {
	id, err := h.setmealSvc.Create(ctx, req.toDomain())
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: id}, nil
}

func (h *AdminHandler) UpdateSetmeal(ctx *ginx.Context, req Setmeal) (ginx.Result, error) {
	err := h.setmealSvc.Update(ctx, req.toDomain())
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{}, nil
}

func (h *AdminHandler) DeleteSetmeal(ctx *ginx.Context, req IDsReq) (ginx.Result, error) {
	err := h.setmealSvc.Delete(ctx, req.IDs)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{}, nil
}

func (h *AdminHandler) UpdateSetmealStatus(ctx *ginx.Context, req StatusReq) (ginx.Result, error) {
	err := h.setmealSvc.UpdateStatus(ctx, req.ID, domain.Status(req.Status))
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{}, nil
}

func (h *AdminHandler) SetmealDetail(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	s, err := h.setmealSvc.Detail(ctx, req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newSetmeal(s)}, nil
}

func (h *AdminHandler) ListSetmeal(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	setmeals, total, err := h.setmealSvc.List(ctx, domain.SetmealQuery{
		Name:       req.Name,
		CategoryID: req.CategoryID,
		Status:     req.status(),
	}, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: SetmealList{
			Total:    total,
			Setmeals: slice.Map(setmeals, func(idx int, src domain.Setmeal) Setmeal { return newSetmeal(src) }),
		},
	}, nil
}
