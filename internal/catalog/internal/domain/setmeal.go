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

// Setmeal 套餐
type Setmeal struct {
	ID          int64
	CategoryID  int64
	Name        string
	Price       int64
	Image       string
	Description string
	Status      Status
	Dishes      []SetmealDish
	Utime       int64
}

type SetmealDish struct {
	DishID int64
	Name   string
	Price  int64
	// 份数
	Copies int64
}

type SetmealQuery struct {
	Name       string
	CategoryID int64
	Status     *Status
}
