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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/takeout/internal/catalog/internal/domain"
	"github.com/pkg/errors"
)

var ErrKeyNotFound = errors.New("缓存未命中")

const expiration = 24 * time.Hour

//go:generate mockgen -source=./catalog.go -package=cachemocks -destination=./mocks/catalog.mock.go -typed

// Invalidator 删除缓存只能指定单个 key 或者一组分类, 不支持通配符
type Invalidator interface {
	InvalidateKey(ctx context.Context, key string) error
	InvalidateCategories(ctx context.Context, categoryIDs []int64) error
}

type CatalogCache interface {
	Invalidator
	GetDishes(ctx context.Context, categoryID int64) ([]domain.Dish, error)
	SetDishes(ctx context.Context, categoryID int64, dishes []domain.Dish) error
	GetSetmeals(ctx context.Context, categoryID int64) ([]domain.Setmeal, error)
	SetSetmeals(ctx context.Context, categoryID int64, setmeals []domain.Setmeal) error
}

type CatalogECache struct {
	ec ecache.Cache
}

func NewCatalogECache(ec ecache.Cache) CatalogCache {
	return &CatalogECache{
		ec: &ecache.NamespaceCache{
			Namespace: "catalog:",
			C:         ec,
		},
	}
}

func DishKey(categoryID int64) string {
	return fmt.Sprintf("dish_%d", categoryID)
}

func SetmealKey(categoryID int64) string {
	return fmt.Sprintf("setmeal_%d", categoryID)
}

func (c *CatalogECache) GetDishes(ctx context.Context, categoryID int64) ([]domain.Dish, error) {
	var res []domain.Dish
	err := c.get(ctx, DishKey(categoryID), &res)
	return res, err
}

func (c *CatalogECache) SetDishes(ctx context.Context, categoryID int64, dishes []domain.Dish) error {
	return c.set(ctx, DishKey(categoryID), dishes)
}

func (c *CatalogECache) GetSetmeals(ctx context.Context, categoryID int64) ([]domain.Setmeal, error) {
	var res []domain.Setmeal
	err := c.get(ctx, SetmealKey(categoryID), &res)
	return res, err
}

func (c *CatalogECache) SetSetmeals(ctx context.Context, categoryID int64, setmeals []domain.Setmeal) error {
	return c.set(ctx, SetmealKey(categoryID), setmeals)
}

func (c *CatalogECache) InvalidateKey(ctx context.Context, key string) error {
	_, err := c.ec.Delete(ctx, key)
	return errors.Wrapf(err, "删除缓存 %s 失败", key)
}

func (c *CatalogECache) InvalidateCategories(ctx context.Context, categoryIDs []int64) error {
	if len(categoryIDs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(categoryIDs)*2)
	for _, cid := range categoryIDs {
		keys = append(keys, DishKey(cid), SetmealKey(cid))
	}
	_, err := c.ec.Delete(ctx, keys...)
	return errors.Wrapf(err, "删除分类缓存 %v 失败", categoryIDs)
}

func (c *CatalogECache) get(ctx context.Context, key string, val any) error {
	v := c.ec.Get(ctx, key)
	if v.KeyNotFound() {
		return ErrKeyNotFound
	}
	if v.Err != nil {
		return errors.Wrap(v.Err, "查询缓存出错")
	}
	str, err := v.String()
	if err != nil {
		return errors.Wrap(err, "缓存数据类型错误")
	}
	return errors.Wrap(json.Unmarshal([]byte(str), val), "反序列化失败")
}

func (c *CatalogECache) set(ctx context.Context, key string, val any) error {
	data, err := json.Marshal(val)
	if err != nil {
		return errors.Wrap(err, "序列化失败")
	}
	return c.ec.Set(ctx, key, string(data), expiration)
}
