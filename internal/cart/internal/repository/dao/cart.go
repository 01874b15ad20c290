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

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrItemNotFound = errors.New("购物车中没有该商品")

type CartDAO interface {
	// Upsert 不存在则插入一条数量为 1 的记录, 存在则数量加 1
	Upsert(ctx context.Context, c ShoppingCart) error
	// UpsertBatch 存在的记录合并数量
	UpsertBatch(ctx context.Context, cs []ShoppingCart) error
	FindByUID(ctx context.Context, uid int64) ([]ShoppingCart, error)
	DeleteByUID(ctx context.Context, uid int64) error
	// Sub 数量减 1, 数量为 1 时直接删除
	Sub(ctx context.Context, uid, dishID, setmealID int64, dishFlavor string) error
}

type CartGORMDAO struct {
	db *egorm.Component
}

func NewCartGORMDAO(db *egorm.Component) CartDAO {
	return &CartGORMDAO{db: db}
}

func (g *CartGORMDAO) Upsert(ctx context.Context, c ShoppingCart) error {
	now := time.Now().UnixMilli()
	c.Id = 0
	c.Number = 1
	c.Ctime, c.Utime = now, now
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoUpdates: clause.Assignments(map[string]any{
			"number": gorm.Expr("`number` + 1"),
			"utime":  now,
		}),
	}).Create(&c).Error
}

func (g *CartGORMDAO) UpsertBatch(ctx context.Context, cs []ShoppingCart) error {
	if len(cs) == 0 {
		return nil
	}
	now := time.Now().UnixMilli()
	for i := range cs {
		cs[i].Id = 0
		cs[i].Ctime, cs[i].Utime = now, now
	}
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoUpdates: clause.Assignments(map[string]any{
			"number": gorm.Expr("`number` + VALUES(`number`)"),
			"utime":  now,
		}),
	}).Create(&cs).Error
}

func (g *CartGORMDAO) FindByUID(ctx context.Context, uid int64) ([]ShoppingCart, error) {
	var res []ShoppingCart
	err := g.db.WithContext(ctx).Where("user_id = ?", uid).Order("id ASC").Find(&res).Error
	return res, err
}

func (g *CartGORMDAO) DeleteByUID(ctx context.Context, uid int64) error {
	return g.db.WithContext(ctx).Where("user_id = ?", uid).Delete(&ShoppingCart{}).Error
}

func (g *CartGORMDAO) Sub(ctx context.Context, uid, dishID, setmealID int64, dishFlavor string) error {
	db := g.db.WithContext(ctx)
	cond := "user_id = ? AND dish_id = ? AND setmeal_id = ? AND dish_flavor = ?"
	res := db.Model(&ShoppingCart{}).
		Where(cond+" AND number > 1", uid, dishID, setmealID, dishFlavor).
		Updates(map[string]any{
			"number": gorm.Expr("`number` - 1"),
			"utime":  time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}
	res = db.Where(cond+" AND number <= 1", uid, dishID, setmealID, dishFlavor).Delete(&ShoppingCart{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

// ShoppingCart 菜品和套餐二选一, 未选择的一方为 0
type ShoppingCart struct {
	Id         int64  `gorm:"primaryKey;autoIncrement;comment:购物车自增ID"`
	UserId     int64  `gorm:"not null;uniqueIndex:uniq_user_item,priority:1;comment:用户ID"`
	DishId     int64  `gorm:"not null;default:0;uniqueIndex:uniq_user_item,priority:2;comment:菜品ID"`
	SetmealId  int64  `gorm:"not null;default:0;uniqueIndex:uniq_user_item,priority:3;comment:套餐ID"`
	DishFlavor string `gorm:"type:varchar(128);not null;default:'';uniqueIndex:uniq_user_item,priority:4;comment:口味"`
	Name       string `gorm:"type:varchar(32);not null;default:'';comment:商品名称"`
	Image      string `gorm:"type:varchar(255);not null;default:'';comment:图片"`
	Amount     int64  `gorm:"not null;comment:单价,单位为分"`
	Number     int64  `gorm:"not null;default:1;comment:数量"`
	Ctime      int64
	Utime      int64
}

func (ShoppingCart) TableName() string {
	return "shopping_cart"
}
