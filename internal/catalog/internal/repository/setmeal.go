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
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/takeout/internal/catalog/internal/domain"
	"github.com/ecodeclub/takeout/internal/catalog/internal/repository/cache"
	"github.com/ecodeclub/takeout/internal/catalog/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./setmeal.go -package=repomocks -destination=./mocks/setmeal.mock.go -typed SetmealRepository
type SetmealRepository interface {
	Create(ctx context.Context, s domain.Setmeal) (int64, error)
	Update(ctx context.Context, s domain.Setmeal) error
	Delete(ctx context.Context, ids []int64) error
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
	// FindByID 包含套餐内的菜品
	FindByID(ctx context.Context, id int64) (domain.Setmeal, error)
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Setmeal, error)
	List(ctx context.Context, q domain.SetmealQuery, offset, limit int) ([]domain.Setmeal, int64, error)
	ListOnSale(ctx context.Context, categoryID int64) ([]domain.Setmeal, error)
}

type setmealRepository struct {
	dao   dao.SetmealDAO
	cache cache.CatalogCache
	l     *elog.Component
}

func NewSetmealRepository(d dao.SetmealDAO, c cache.CatalogCache) SetmealRepository {
	return &setmealRepository{
		dao:   d,
		cache: c,
		l:     elog.DefaultLogger,
	}
}

func (r *setmealRepository) Create(ctx context.Context, s domain.Setmeal) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(s), r.toDishEntities(s.Dishes))
}

func (r *setmealRepository) Update(ctx context.Context, s domain.Setmeal) error {
	return r.dao.Update(ctx, r.toEntity(s), r.toDishEntities(s.Dishes))
}

func (r *setmealRepository) Delete(ctx context.Context, ids []int64) error {
	return r.dao.Delete(ctx, ids)
}

func (r *setmealRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	return r.dao.UpdateStatus(ctx, id, status.ToUint8())
}

func (r *setmealRepository) FindByID(ctx context.Context, id int64) (domain.Setmeal, error) {
	var (
		eg     errgroup.Group
		s      dao.Setmeal
		dishes []dao.SetmealDish
	)
	eg.Go(func() error {
		var err error
		s, err = r.dao.FindByID(ctx, id)
		return err
	})
	eg.Go(func() error {
		var err error
		dishes, err = r.dao.FindDishes(ctx, id)
		return err
	})
	if err := eg.Wait(); err != nil {
		return domain.Setmeal{}, err
	}
	return toSetmealDomain(s, dishes), nil
}

func (r *setmealRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.Setmeal, error) {
	res, err := r.dao.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Setmeal) domain.Setmeal {
		return toSetmealDomain(src, nil)
	}), nil
}

func (r *setmealRepository) List(ctx context.Context, q domain.SetmealQuery, offset, limit int) ([]domain.Setmeal, int64, error) {
	var (
		eg       errgroup.Group
		setmeals []dao.Setmeal
		total    int64
	)
	query := dao.SetmealQuery{
		Name:       q.Name,
		CategoryId: q.CategoryID,
	}
	if q.Status != nil {
		s := q.Status.ToUint8()
		query.Status = &s
	}
	eg.Go(func() error {
		var err error
		setmeals, err = r.dao.List(ctx, query, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = r.dao.Count(ctx, query)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return slice.Map(setmeals, func(idx int, src dao.Setmeal) domain.Setmeal {
		return toSetmealDomain(src, nil)
	}), total, nil
}

func (r *setmealRepository) ListOnSale(ctx context.Context, categoryID int64) ([]domain.Setmeal, error) {
	res, err := r.cache.GetSetmeals(ctx, categoryID)
	if err == nil {
		return res, nil
	}
	if !errors.Is(err, cache.ErrKeyNotFound) {
		r.l.Warn("读取套餐缓存失败", elog.FieldErr(err), elog.Int64("categoryID", categoryID))
	}
	setmeals, err := r.dao.ListByCategory(ctx, categoryID, domain.StatusOnSale.ToUint8())
	if err != nil {
		return nil, err
	}
	res = slice.Map(setmeals, func(idx int, src dao.Setmeal) domain.Setmeal {
		return toSetmealDomain(src, nil)
	})
	if er := r.cache.SetSetmeals(ctx, categoryID, res); er != nil {
		r.l.Warn("回写套餐缓存失败", elog.FieldErr(er), elog.Int64("categoryID", categoryID))
	}
	return res, nil
}

func (r *setmealRepository) toEntity(s domain.Setmeal) dao.Setmeal {
	return dao.Setmeal{
		Id:          s.ID,
		CategoryId:  s.CategoryID,
		Name:        s.Name,
		Price:       s.Price,
		Image:       s.Image,
		Description: s.Description,
		Status:      s.Status.ToUint8(),
	}
}

func (r *setmealRepository) toDishEntities(dishes []domain.SetmealDish) []dao.SetmealDish {
	return slice.Map(dishes, func(idx int, src domain.SetmealDish) dao.SetmealDish {
		return dao.SetmealDish{
			DishId: src.DishID,
			Name:   src.Name,
			Price:  src.Price,
			Copies: src.Copies,
		}
	})
}

func toSetmealDomain(s dao.Setmeal, dishes []dao.SetmealDish) domain.Setmeal {
	return domain.Setmeal{
		ID:          s.Id,
		CategoryID:  s.CategoryId,
		Name:        s.Name,
		Price:       s.Price,
		Image:       s.Image,
		Description: s.Description,
		Status:      domain.Status(s.Status),
		Dishes: slice.Map(dishes, func(idx int, src dao.SetmealDish) domain.SetmealDish {
			return domain.SetmealDish{
				DishID: src.DishId,
				Name:   src.Name,
				Price:  src.Price,
				Copies: src.Copies,
			}
		}),
		Utime: s.Utime,
	}
}
