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

import "github.com/ecodeclub/takeout/internal/cart/internal/domain"

type ItemReq struct {
	DishID     int64  `json:"dishId,omitempty"`
	SetmealID  int64  `json:"setmealId,omitempty"`
	DishFlavor string `json:"dishFlavor,omitempty"`
}

func (r ItemReq) toDomain() domain.Item {
	return domain.Item{
		DishID:     r.DishID,
		SetmealID:  r.SetmealID,
		DishFlavor: r.DishFlavor,
	}
}

type CartItem struct {
	ID         int64  `json:"id"`
	DishID     int64  `json:"dishId,omitempty"`
	SetmealID  int64  `json:"setmealId,omitempty"`
	DishFlavor string `json:"dishFlavor,omitempty"`
	Name       string `json:"name"`
	Image      string `json:"image"`
	Amount     int64  `json:"amount"`
	Number     int64  `json:"number"`
	Ctime      int64  `json:"ctime"`
}

func newCartItem(c domain.CartItem) CartItem {
	return CartItem{
		ID:         c.ID,
		DishID:     c.DishID,
		SetmealID:  c.SetmealID,
		DishFlavor: c.DishFlavor,
		Name:       c.Name,
		Image:      c.Image,
		Amount:     c.Amount,
		Number:     c.Number,
		Ctime:      c.Ctime,
	}
}
