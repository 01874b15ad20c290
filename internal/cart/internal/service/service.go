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

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/takeout/internal/cart/internal/domain"
	"github.com/ecodeclub/takeout/internal/cart/internal/repository"
	"github.com/ecodeclub/takeout/internal/catalog"
)

var (
	ErrUnknownItem  = errors.New("菜品和套餐必须且只能选择一个")
	ErrItemNotFound = repository.ErrItemNotFound
)

//go:generate mockgen -source=./service.go -package=cartmocks -destination=../../mocks/cart.mock.go -typed Service
type Service interface {
	// Add 数量加 1, 商品信息以当前菜单为准
	Add(ctx context.Context, uid int64, item domain.Item) error
	// AddBatch 用于再来一单, 使用传入的商品信息, 已存在的商品合并数量
	AddBatch(ctx context.Context, uid int64, items []domain.CartItem) error
	List(ctx context.Context, uid int64) ([]domain.CartItem, error)
	Clean(ctx context.Context, uid int64) error
	Sub(ctx context.Context, uid int64, item domain.Item) error
}

type service struct {
	repo       repository.CartRepository
	dishSvc    catalog.DishService
	setmealSvc catalog.SetmealService
}

func NewService(repo repository.CartRepository, dishSvc catalog.DishService, setmealSvc catalog.SetmealService) Service {
	return &service{
		repo:       repo,
		dishSvc:    dishSvc,
		setmealSvc: setmealSvc,
	}
}

func (s *service) Add(ctx context.Context, uid int64, item domain.Item) error {
	item = normalize(item)
	cartItem := domain.CartItem{
		UserID: uid,
		Item:   item,
		Number: 1,
	}
	switch {
	case item.IsDish():
		dishes, err := s.dishSvc.FindByIDs(ctx, []int64{item.DishID})
		if err != nil {
			return err
		}
		if len(dishes) == 0 {
			return fmt.Errorf("%w: dishID = %d", ErrItemNotFound, item.DishID)
		}
		cartItem.Name, cartItem.Image, cartItem.Amount = dishes[0].Name, dishes[0].Image, dishes[0].Price
	case item.IsSetmeal():
		sm, err := s.setmealSvc.FindByID(ctx, item.SetmealID)
		if errors.Is(err, catalog.ErrSetmealNotFound) {
			return fmt.Errorf("%w: setmealID = %d", ErrItemNotFound, item.SetmealID)
		}
		if err != nil {
			return err
		}
		cartItem.Name, cartItem.Image, cartItem.Amount = sm.Name, sm.Image, sm.Price
	default:
		return ErrUnknownItem
	}
	return s.repo.Add(ctx, cartItem)
}

func (s *service) AddBatch(ctx context.Context, uid int64, items []domain.CartItem) error {
	for i := range items {
		items[i].UserID = uid
	}
	return s.repo.AddBatch(ctx, items)
}

func (s *service) List(ctx context.Context, uid int64) ([]domain.CartItem, error) {
	return s.repo.List(ctx, uid)
}

func (s *service) Clean(ctx context.Context, uid int64) error {
	return s.repo.Clean(ctx, uid)
}

func (s *service) Sub(ctx context.Context, uid int64, item domain.Item) error {
	if !item.IsDish() && !item.IsSetmeal() {
		return ErrUnknownItem
	}
	return s.repo.Sub(ctx, uid, normalize(item))
}

// normalize 套餐没有口味, 加减购物车使用同样的条目
func normalize(item domain.Item) domain.Item {
	if item.IsSetmeal() {
		item.DishFlavor = ""
	}
	return item
}
