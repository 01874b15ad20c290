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

//go:build wireinject

package catalog

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/takeout/internal/catalog/internal/repository"
	"github.com/ecodeclub/takeout/internal/catalog/internal/repository/cache"
	"github.com/ecodeclub/takeout/internal/catalog/internal/repository/dao"
	"github.com/ecodeclub/takeout/internal/catalog/internal/service"
	"github.com/ecodeclub/takeout/internal/catalog/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, ec ecache.Cache) *Module {
	wire.Build(
		InitDishDAO,
		InitSetmealDAO,
		cache.NewCatalogECache,
		newInvalidator,
		repository.NewDishRepository,
		repository.NewSetmealRepository,
		service.NewDishService,
		service.NewSetmealService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

var once = &sync.Once{}

func initTables(db *egorm.Component) {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
}

func InitDishDAO(db *egorm.Component) dao.DishDAO {
	initTables(db)
	return dao.NewDishGORMDAO(db)
}

func InitSetmealDAO(db *egorm.Component) dao.SetmealDAO {
	initTables(db)
	return dao.NewSetmealGORMDAO(db)
}

func newInvalidator(c cache.CatalogCache) cache.Invalidator {
	return c
}
