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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/takeout/internal/cart/internal/domain"
	"github.com/ecodeclub/takeout/internal/cart/internal/repository/dao"
)

var ErrItemNotFound = dao.ErrItemNotFound

//go:generate mockgen -source=./cart.go -package=repomocks -destination=./mocks/cart.mock.go -typed CartRepository
type CartRepository interface {
	Add(ctx context.Context, item domain.CartItem) error
	AddBatch(ctx context.Context, items []domain.CartItem) error
	List(ctx context.Context, uid int64) ([]domain.CartItem, error)
	Clean(ctx context.Context, uid int64) error
	Sub(ctx context.Context, uid int64, item domain.Item) error
}

type cartRepository struct {
	dao dao.CartDAO
}

func NewCartRepository(d dao.CartDAO) CartRepository {
	return &cartRepository{dao: d}
}

func (r *cartRepository) Add(ctx context.Context, item domain.CartItem) error {
	return r.dao.Upsert(ctx, r.toEntity(item))
}

func (r *cartRepository) AddBatch(ctx context.Context, items []domain.CartItem) error {
	return r.dao.UpsertBatch(ctx, slice.Map(items, func(idx int, src domain.CartItem) dao.ShoppingCart {
		return r.toEntity(src)
	}))
}

func (r *cartRepository) List(ctx context.Context, uid int64) ([]domain.CartItem, error) {
	res, err := r.dao.FindByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.ShoppingCart) domain.CartItem {
		return r.toDomain(src)
	}), nil
}

func (r *cartRepository) Clean(ctx context.Context, uid int64) error {
	return r.dao.DeleteByUID(ctx, uid)
}

func (r *cartRepository) Sub(ctx context.Context, uid int64, item domain.Item) error {
	return r.dao.Sub(ctx, uid, item.DishID, item.SetmealID, item.DishFlavor)
}

func (r *cartRepository) toEntity(c domain.CartItem) dao.ShoppingCart {
	return dao.ShoppingCart{
		UserId:     c.UserID,
		DishId:     c.DishID,
		SetmealId:  c.SetmealID,
		DishFlavor: c.DishFlavor,
		Name:       c.Name,
		Image:      c.Image,
		Amount:     c.Amount,
		Number:     c.Number,
	}
}

func (r *cartRepository) toDomain(c dao.ShoppingCart) domain.CartItem {
	return domain.CartItem{
		ID:     c.Id,
		UserID: c.UserId,
		Item: domain.Item{
			DishID:     c.DishId,
			SetmealID:  c.SetmealId,
			DishFlavor: c.DishFlavor,
		},
		Name:   c.Name,
		Image:  c.Image,
		Amount: c.Amount,
		Number: c.Number,
		Ctime:  c.Ctime,
	}
}
