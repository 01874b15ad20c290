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

package domain

// Item 购物车中的一种商品, 菜品和套餐二选一, 同一菜品不同口味视为不同商品
type Item struct {
	DishID     int64
	SetmealID  int64
	DishFlavor string
}

func (i Item) IsDish() bool {
	return i.DishID > 0 && i.SetmealID == 0
}

func (i Item) IsSetmeal() bool {
	return i.SetmealID > 0 && i.DishID == 0
}

type CartItem struct {
	ID     int64
	UserID int64
	Item
	Name  string
	Image string
	// 加入购物车时的单价, 单位为分
	Amount int64
	Number int64
	Ctime  int64
}
