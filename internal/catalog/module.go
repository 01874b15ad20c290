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

package catalog

import (
	"github.com/ecodeclub/takeout/internal/catalog/internal/domain"
	"github.com/ecodeclub/takeout/internal/catalog/internal/service"
	"github.com/ecodeclub/takeout/internal/catalog/internal/web"
)

type Module struct {
	DishSvc    DishService
	SetmealSvc SetmealService
	Hdl        *Handler
	AdminHdl   *AdminHandler
}

type (
	DishService    = service.DishService
	SetmealService = service.SetmealService
	Handler        = web.Handler
	AdminHandler   = web.AdminHandler
	Dish           = domain.Dish
	Flavor         = domain.Flavor
	Setmeal        = domain.Setmeal
	SetmealDish    = domain.SetmealDish
	Status         = domain.Status
)

const (
	StatusOffSale = domain.StatusOffSale
	StatusOnSale  = domain.StatusOnSale
)

var (
	ErrDishNotFound          = service.ErrDishNotFound
	ErrSetmealNotFound       = service.ErrSetmealNotFound
	ErrDishOnSale            = service.ErrDishOnSale
	ErrDishInSetmeal         = service.ErrDishInSetmeal
	ErrSetmealOnSale         = service.ErrSetmealOnSale
	ErrSetmealHasOffSaleDish = service.ErrSetmealHasOffSaleDish
)
