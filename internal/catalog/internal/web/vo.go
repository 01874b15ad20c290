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
	"github.com/ecodeclub/takeout/internal/catalog/internal/domain"
)

type Dish struct {
	ID          int64    `json:"id,omitempty"`
	CategoryID  int64    `json:"categoryId"`
	Name        string   `json:"name"`
	Price       int64    `json:"price"`
	Image       string   `json:"image,omitempty"`
	Description string   `json:"description,omitempty"`
	Status      uint8    `json:"status"`
	Flavors     []Flavor `json:"flavors,omitempty"`
	Utime       int64    `json:"utime,omitempty"`
}

type Flavor struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

func (d Dish) toDomain() domain.Dish {
	return domain.Dish{
		ID:          d.ID,
		CategoryID:  d.CategoryID,
		Name:        d.Name,
		Price:       d.Price,
		Image:       d.Image,
		Description: d.Description,
		Status:      domain.Status(d.Status),
		Flavors: slice.Map(d.Flavors, func(idx int, src Flavor) domain.Flavor {
			return domain.Flavor{Name: src.Name, Values: src.Values}
		}),
	}
}

func newDish(d domain.Dish) Dish {
	return Dish{
		ID:          d.ID,
		CategoryID:  d.CategoryID,
		Name:        d.Name,
		Price:       d.Price,
		Image:       d.Image,
		Description: d.Description,
		Status:      d.Status.ToUint8(),
		Flavors: slice.Map(d.Flavors, func(idx int, src domain.Flavor) Flavor {
			return Flavor{Name: src.Name, Values: src.Values}
		}),
		Utime: d.Utime,
	}
}

type Setmeal struct {
	ID          int64         `json:"id,omitempty"`
	CategoryID  int64         `json:"categoryId"`
	Name        string        `json:"name"`
	Price       int64         `json:"price"`
	Image       string        `json:"image,omitempty"`
	Description string        `json:"description,omitempty"`
	Status      uint8         `json:"status"`
	Dishes      []SetmealDish `json:"setmealDishes,omitempty"`
	Utime       int64         `json:"utime,omitempty"`
}

type SetmealDish struct {
	DishID int64  `json:"dishId"`
	Name   string `json:"name"`
	Price  int64  `json:"price"`
	Copies int64  `json:"copies"`
}

func (s Setmeal) toDomain() domain.Setmeal {
	return domain.Setmeal{
		ID:          s.ID,
		CategoryID:  s.CategoryID,
		Name:        s.Name,
		Price:       s.Price,
		Image:       s.Image,
		Description: s.Description,
		Status:      domain.Status(s.Status),
		Dishes: slice.Map(s.Dishes, func(idx int, src SetmealDish) domain.SetmealDish {
			return domain.SetmealDish{
				DishID: src.DishID,
				Name:   src.Name,
				Price:  src.Price,
				Copies: src.Copies,
			}
		}),
	}
}

func newSetmeal(s domain.Setmeal) Setmeal {
	return Setmeal{
		ID:          s.ID,
		CategoryID:  s.CategoryID,
		Name:        s.Name,
		Price:       s.Price,
		Image:       s.Image,
		Description: s.Description,
		Status:      s.Status.ToUint8(),
		Dishes: slice.Map(s.Dishes, func(idx int, src domain.SetmealDish) SetmealDish {
			return SetmealDish{
				DishID: src.DishID,
				Name:   src.Name,
				Price:  src.Price,
				Copies: src.Copies,
			}
		}),
		Utime: s.Utime,
	}
}

type IDReq struct {
	ID int64 `json:"id"`
}

type IDsReq struct {
	IDs []int64 `json:"ids"`
}

type StatusReq struct {
	ID     int64 `json:"id"`
	Status uint8 `json:"status"`
}

type CategoryReq struct {
	CategoryID int64 `json:"categoryId"`
}

// ListReq 管理端分页查询, Status 为空表示不限
type ListReq struct {
	Name       string `json:"name,omitempty"`
	CategoryID int64  `json:"categoryId,omitempty"`
	Status     *uint8 `json:"status,omitempty"`
	Offset     int    `json:"offset,omitempty"`
	Limit      int    `json:"limit,omitempty"`
}

func (r ListReq) status() *domain.Status {
	if r.Status == nil {
		return nil
	}
	s := domain.Status(*r.Status)
	return &s
}

type DishList struct {
	Total  int64  `json:"total"`
	Dishes []Dish `json:"dishes"`
}

type SetmealList struct {
	Total    int64     `json:"total"`
	Setmeals []Setmeal `json:"setmeals"`
}

// DishItem 套餐内菜品的展示信息
type DishItem struct {
	Name        string `json:"name"`
	Copies      int64  `json:"copies"`
	Image       string `json:"image"`
	Description string `json:"description"`
}
