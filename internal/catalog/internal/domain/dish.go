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

type Status uint8

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

const (
	// StatusOffSale 停售
	StatusOffSale Status = 0
	// StatusOnSale 起售
	StatusOnSale Status = 1
)

type Dish struct {
	ID         int64
	CategoryID int64
	Name       string
	// 单位为分, 999表示9.99元
	Price       int64
	Image       string
	Description string
	Status      Status
	Flavors     []Flavor
	Utime       int64
}

// Flavor 口味, 例如 辣度: [不辣, 微辣, 重辣]
type Flavor struct {
	Name   string
	Values []string
}

type DishQuery struct {
	Name       string
	CategoryID int64
	// nil 表示不限
	Status *Status
}
