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

	"github.com/ecodeclub/takeout/internal/catalog/internal/repository"
	"github.com/ecodeclub/takeout/internal/catalog/internal/repository/cache"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrDishNotFound          = repository.ErrRecordNotFound
	ErrDuplicateName         = repository.ErrDuplicateName
	ErrDishOnSale            = repository.ErrDishOnSale
	ErrDishInSetmeal         = repository.ErrDishInSetmeal
	ErrSetmealOnSale         = repository.ErrSetmealOnSale
	ErrSetmealHasOffSaleDish = repository.ErrSetmealHasOffSaleDish
)

// invalidateKey 只清理单个缓存, 失败只记录日志
func invalidateKey(ctx context.Context, inv cache.Invalidator, l *elog.Component, key string) {
	if err := inv.InvalidateKey(ctx, key); err != nil {
		l.Warn("清理缓存失败", elog.FieldErr(err), elog.String("key", key))
	}
}

// invalidateCategories 清理分类缓存, 失败只记录日志
func invalidateCategories(ctx context.Context, inv cache.Invalidator, l *elog.Component, categoryIDs ...int64) {
	seen := make(map[int64]struct{}, len(categoryIDs))
	ids := make([]int64, 0, len(categoryIDs))
	for _, cid := range categoryIDs {
		if _, ok := seen[cid]; ok {
			continue
		}
		seen[cid] = struct{}{}
		ids = append(ids, cid)
	}
	if err := inv.InvalidateCategories(ctx, ids); err != nil {
		l.Warn("清理分类缓存失败", elog.FieldErr(err), elog.Any("categoryIDs", ids))
	}
}
