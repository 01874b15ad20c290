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
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/takeout/internal/catalog/internal/domain"
	"github.com/ecodeclub/takeout/internal/catalog/internal/repository"
	"github.com/ecodeclub/takeout/internal/catalog/internal/repository/cache"
	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./dish.go -package=catalogmocks -destination=../../mocks/dish.mock.go -typed DishService
type DishService interface {
	Create(ctx context.Context, d domain.Dish) (int64, error)
	Update(ctx context.Context, d domain.Dish) error
	Delete(ctx context.Context, ids []int64) error
	// UpdateStatus 停售会连带停售包含该菜品的套餐
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
	Detail(ctx context.Context, id int64) (domain.Dish, error)
	List(ctx context.Context, q domain.DishQuery, offset, limit int) ([]domain.Dish, int64, error)
	ListOnSale(ctx context.Context, categoryID int64) ([]domain.Dish, error)
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Dish, error)
}

type dishService struct {
	repo        repository.DishRepository
	invalidator cache.Invalidator
	l           *elog.Component
}

func NewDishService(repo repository.DishRepository, invalidator cache.Invalidator) DishService {
	return &dishService{
		repo:        repo,
		invalidator: invalidator,
		l:           elog.DefaultLogger,
	}
}

func (s *dishService) Create(ctx context.Context, d domain.Dish) (int64, error) {
	id, err := s.repo.Create(ctx, d)
	if err != nil {
		return 0, err
	}
	invalidateCategories(ctx, s.invalidator, s.l, d.CategoryID)
	return id, nil
}

func (s *dishService) Update(ctx context.Context, d domain.Dish) error {
	old, err := s.repo.FindByID(ctx, d.ID)
	if err != nil {
		return fmt.Errorf("查找菜品失败 id = %d: %w", d.ID, err)
	}
	if err = s.repo.Update(ctx, d); err != nil {
		return err
	}
	invalidateCategories(ctx, s.invalidator, s.l, old.CategoryID, d.CategoryID)
	return nil
}

func (s *dishService) Delete(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	dishes, err := s.repo.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if err = s.repo.Delete(ctx, ids); err != nil {
		return err
	}
	invalidateCategories(ctx, s.invalidator, s.l, slice.Map(dishes, func(idx int, src domain.Dish) int64 {
		return src.CategoryID
	})...)
	return nil
}

func (s *dishService) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("查找菜品失败 id = %d: %w", id, err)
	}
	cascaded, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return err
	}
	cids := append([]int64{d.CategoryID}, slice.Map(cascaded, func(idx int, src domain.Setmeal) int64 {
		return src.CategoryID
	})...)
	invalidateCategories(ctx, s.invalidator, s.l, cids...)
	return nil
}

func (s *dishService) Detail(ctx context.Context, id int64) (domain.Dish, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *dishService) List(ctx context.Context, q domain.DishQuery, offset, limit int) ([]domain.Dish, int64, error) {
	return s.repo.List(ctx, q, offset, limit)
}

func (s *dishService) ListOnSale(ctx context.Context, categoryID int64) ([]domain.Dish, error) {
	return s.repo.ListOnSale(ctx, categoryID)
}

func (s *dishService) FindByIDs(ctx context.Context, ids []int64) ([]domain.Dish, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return s.repo.FindByIDs(ctx, ids)
}
