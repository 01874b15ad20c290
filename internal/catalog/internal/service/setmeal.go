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

var ErrSetmealNotFound = repository.ErrRecordNotFound

//go:generate mockgen -source=./setmeal.go -package=catalogmocks -destination=../../mocks/setmeal.mock.go -typed SetmealService
type SetmealService interface {
	Create(ctx context.Context, s domain.Setmeal) (int64, error)
	// Update 套餐内的菜品整体替换
	Update(ctx context.Context, s domain.Setmeal) error
	Delete(ctx context.Context, ids []int64) error
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
	Detail(ctx context.Context, id int64) (domain.Setmeal, error)
	List(ctx context.Context, q domain.SetmealQuery, offset, limit int) ([]domain.Setmeal, int64, error)
	ListOnSale(ctx context.Context, categoryID int64) ([]domain.Setmeal, error)
	// FindByID 不包含套餐内的菜品
	FindByID(ctx context.Context, id int64) (domain.Setmeal, error)
}

type setmealService struct {
	repo        repository.SetmealRepository
	invalidator cache.Invalidator
	l           *elog.Component
}

func NewSetmealService(repo repository.SetmealRepository, invalidator cache.Invalidator) SetmealService {
	return &setmealService{
		repo:        repo,
		invalidator: invalidator,
		l:           elog.DefaultLogger,
	}
}

func (s *setmealService) Create(ctx context.Context, sm domain.Setmeal) (int64, error) {
	id, err := s.repo.Create(ctx, sm)
	if err != nil {
		return 0, err
	}
	invalidateCategories(ctx, s.invalidator, s.l, sm.CategoryID)
	return id, nil
}

func (s *setmealService) Update(ctx context.Context, sm domain.Setmeal) error {
	old, err := s.FindByID(ctx, sm.ID)
	if err != nil {
		return err
	}
	if err = s.repo.Update(ctx, sm); err != nil {
		return err
	}
	invalidateCategories(ctx, s.invalidator, s.l, old.CategoryID, sm.CategoryID)
	return nil
}

func (s *setmealService) Delete(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	setmeals, err := s.repo.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if err = s.repo.Delete(ctx, ids); err != nil {
		return err
	}
	invalidateCategories(ctx, s.invalidator, s.l, slice.Map(setmeals, func(idx int, src domain.Setmeal) int64 {
		return src.CategoryID
	})...)
	return nil
}

func (s *setmealService) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	sm, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err = s.repo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	// 起售停售只影响该分类的套餐列表
	invalidateKey(ctx, s.invalidator, s.l, cache.SetmealKey(sm.CategoryID))
	return nil
}

func (s *setmealService) Detail(ctx context.Context, id int64) (domain.Setmeal, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *setmealService) List(ctx context.Context, q domain.SetmealQuery, offset, limit int) ([]domain.Setmeal, int64, error) {
	return s.repo.List(ctx, q, offset, limit)
}

func (s *setmealService) ListOnSale(ctx context.Context, categoryID int64) ([]domain.Setmeal, error) {
	return s.repo.ListOnSale(ctx, categoryID)
}

func (s *setmealService) FindByID(ctx context.Context, id int64) (domain.Setmeal, error) {
	res, err := s.repo.FindByIDs(ctx, []int64{id})
	if err != nil {
		return domain.Setmeal{}, err
	}
	if len(res) == 0 {
		return domain.Setmeal{}, fmt.Errorf("%w, id = %d", ErrSetmealNotFound, id)
	}
	return res[0], nil
}
