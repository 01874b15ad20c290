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
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/takeout/internal/catalog/internal/domain"
	"github.com/ecodeclub/takeout/internal/catalog/internal/repository/cache"
	"github.com/ecodeclub/takeout/internal/catalog/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrRecordNotFound        = dao.ErrRecordNotFound
	ErrDuplicateName         = dao.ErrDuplicateName
	ErrDishOnSale            = dao.ErrDishOnSale
	ErrDishInSetmeal         = dao.ErrDishInSetmeal
	ErrSetmealOnSale         = dao.ErrSetmealOnSale
	ErrSetmealHasOffSaleDish = dao.ErrSetmealHasOffSaleDish
)

//go:generate mockgen -source=./dish.go -package=repomocks -destination=./mocks/dish.mock.go -typed DishRepository
type DishRepository interface {
	Create(ctx context.Context, d domain.Dish) (int64, error)
	Update(ctx context.Context, d domain.Dish) error
	Delete(ctx context.Context, ids []int64) error
	UpdateStatus(ctx context.Context, id int64, status domain.Status) ([]domain.Setmeal, error)
	// FindByID 包含口味
	FindByID(ctx context.Context, id int64) (domain.Dish, error)
	// FindByIDs 不包含口味
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Dish, error)
	List(ctx context.Context, q domain.DishQuery, offset, limit int) ([]domain.Dish, int64, error)
	// ListOnSale 某个分类下起售中的菜品, 包含口味, 优先读缓存
	ListOnSale(ctx context.Context, categoryID int64) ([]domain.Dish, error)
}

type dishRepository struct {
	dao   dao.DishDAO
	cache cache.CatalogCache
	l     *elog.Component
}

func NewDishRepository(d dao.DishDAO, c cache.CatalogCache) DishRepository {
	return &dishRepository{
		dao:   d,
		cache: c,
		l:     elog.DefaultLogger,
	}
}

func (r *dishRepository) Create(ctx context.Context, d domain.Dish) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(d), r.toFlavorEntities(d.Flavors))
}

func (r *dishRepository) Update(ctx context.Context, d domain.Dish) error {
	return r.dao.Update(ctx, r.toEntity(d), r.toFlavorEntities(d.Flavors))
}

func (r *dishRepository) Delete(ctx context.Context, ids []int64) error {
	return r.dao.Delete(ctx, ids)
}

func (r *dishRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) ([]domain.Setmeal, error) {
	setmeals, err := r.dao.UpdateStatus(ctx, id, status.ToUint8())
	if err != nil {
		return nil, err
	}
	return slice.Map(setmeals, func(idx int, src dao.Setmeal) domain.Setmeal {
		return toSetmealDomain(src, nil)
	}), nil
}

func (r *dishRepository) FindByID(ctx context.Context, id int64) (domain.Dish, error) {
	var (
		eg      errgroup.Group
		d       dao.Dish
		flavors []dao.DishFlavor
	)
	eg.Go(func() error {
		var err error
		d, err = r.dao.FindByID(ctx, id)
		return err
	})
	eg.Go(func() error {
		var err error
		flavors, err = r.dao.FindFlavors(ctx, []int64{id})
		return err
	})
	if err := eg.Wait(); err != nil {
		return domain.Dish{}, err
	}
	return r.toDomain(d, flavors), nil
}

func (r *dishRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.Dish, error) {
	dishes, err := r.dao.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(dishes, func(idx int, src dao.Dish) domain.Dish {
		return r.toDomain(src, nil)
	}), nil
}

func (r *dishRepository) List(ctx context.Context, q domain.DishQuery, offset, limit int) ([]domain.Dish, int64, error) {
	var (
		eg     errgroup.Group
		dishes []dao.Dish
		total  int64
	)
	query := dao.DishQuery{
		Name:       q.Name,
		CategoryId: q.CategoryID,
	}
	if q.Status != nil {
		s := q.Status.ToUint8()
		query.Status = &s
	}
	eg.Go(func() error {
		var err error
		dishes, err = r.dao.List(ctx, query, offset, limit)
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
	return slice.Map(dishes, func(idx int, src dao.Dish) domain.Dish {
		return r.toDomain(src, nil)
	}), total, nil
}

func (r *dishRepository) ListOnSale(ctx context.Context, categoryID int64) ([]domain.Dish, error) {
	res, err := r.cache.GetDishes(ctx, categoryID)
	if err == nil {
		return res, nil
	}
	if !errors.Is(err, cache.ErrKeyNotFound) {
		r.l.Warn("读取菜品缓存失败", elog.FieldErr(err), elog.Int64("categoryID", categoryID))
	}
	dishes, err := r.dao.ListByCategory(ctx, categoryID, domain.StatusOnSale.ToUint8())
	if err != nil {
		return nil, err
	}
	ids := slice.Map(dishes, func(idx int, src dao.Dish) int64 {
		return src.Id
	})
	flavors, err := r.dao.FindFlavors(ctx, ids)
	if err != nil {
		return nil, err
	}
	grouped := make(map[int64][]dao.DishFlavor, len(dishes))
	for _, f := range flavors {
		grouped[f.DishId] = append(grouped[f.DishId], f)
	}
	res = slice.Map(dishes, func(idx int, src dao.Dish) domain.Dish {
		return r.toDomain(src, grouped[src.Id])
	})
	if er := r.cache.SetDishes(ctx, categoryID, res); er != nil {
		r.l.Warn("回写菜品缓存失败", elog.FieldErr(er), elog.Int64("categoryID", categoryID))
	}
	return res, nil
}

func (r *dishRepository) toEntity(d domain.Dish) dao.Dish {
	return dao.Dish{
		Id:          d.ID,
		CategoryId:  d.CategoryID,
		Name:        d.Name,
		Price:       d.Price,
		Image:       d.Image,
		Description: d.Description,
		Status:      d.Status.ToUint8(),
	}
}

func (r *dishRepository) toFlavorEntities(flavors []domain.Flavor) []dao.DishFlavor {
	return slice.Map(flavors, func(idx int, src domain.Flavor) dao.DishFlavor {
		return dao.DishFlavor{
			Name: src.Name,
			Value: sqlx.JsonColumn[[]string]{
				Val:   src.Values,
				Valid: len(src.Values) != 0,
			},
		}
	})
}

func (r *dishRepository) toDomain(d dao.Dish, flavors []dao.DishFlavor) domain.Dish {
	return domain.Dish{
		ID:          d.Id,
		CategoryID:  d.CategoryId,
		Name:        d.Name,
		Price:       d.Price,
		Image:       d.Image,
		Description: d.Description,
		Status:      domain.Status(d.Status),
		Flavors: slice.Map(flavors, func(idx int, src dao.DishFlavor) domain.Flavor {
			return domain.Flavor{
				Name:   src.Name,
				Values: src.Value.Val,
			}
		}),
		Utime: d.Utime,
	}
}
