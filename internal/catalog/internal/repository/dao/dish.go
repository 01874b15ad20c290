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

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

const (
	statusOffSale uint8 = 0
	statusOnSale  uint8 = 1

	// 唯一索引冲突
	duplicateEntryErrNo uint16 = 1062
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	ErrDuplicateName  = errors.New("名称冲突")
	ErrDishOnSale     = errors.New("起售中的菜品不能删除")
	ErrDishInSetmeal  = errors.New("菜品关联了套餐")
)

type DishDAO interface {
	Create(ctx context.Context, d Dish, flavors []DishFlavor) (int64, error)
	Update(ctx context.Context, d Dish, flavors []DishFlavor) error
	// Delete 只要有一个菜品起售中或者被套餐关联, 整批都不会删除
	Delete(ctx context.Context, ids []int64) error
	// UpdateStatus 停售时会把包含该菜品的起售中的套餐一起停售, 返回被停售的套餐
	UpdateStatus(ctx context.Context, id int64, status uint8) ([]Setmeal, error)
	FindByID(ctx context.Context, id int64) (Dish, error)
	FindByIDs(ctx context.Context, ids []int64) ([]Dish, error)
	FindFlavors(ctx context.Context, dishIDs []int64) ([]DishFlavor, error)
	List(ctx context.Context, q DishQuery, offset, limit int) ([]Dish, error)
	Count(ctx context.Context, q DishQuery) (int64, error)
	ListByCategory(ctx context.Context, categoryID int64, status uint8) ([]Dish, error)
}

type DishGORMDAO struct {
	db *egorm.Component
}

func NewDishGORMDAO(db *egorm.Component) DishDAO {
	return &DishGORMDAO{db: db}
}

func (g *DishGORMDAO) Create(ctx context.Context, d Dish, flavors []DishFlavor) (int64, error) {
	now := time.Now().UnixMilli()
	d.Ctime, d.Utime = now, now
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&d).Error; err != nil {
			return wrapDuplicateErr(err)
		}
		return g.createFlavors(tx, d.Id, flavors, now)
	})
	return d.Id, err
}

func (g *DishGORMDAO) createFlavors(tx *gorm.DB, dishID int64, flavors []DishFlavor, now int64) error {
	if len(flavors) == 0 {
		return nil
	}
	for i := range flavors {
		flavors[i].Id = 0
		flavors[i].DishId = dishID
		flavors[i].Ctime, flavors[i].Utime = now, now
	}
	return tx.Create(&flavors).Error
}

func (g *DishGORMDAO) Update(ctx context.Context, d Dish, flavors []DishFlavor) error {
	now := time.Now().UnixMilli()
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Dish{}).Where("id = ?", d.Id).Updates(map[string]any{
			"category_id": d.CategoryId,
			"name":        d.Name,
			"price":       d.Price,
			"image":       d.Image,
			"description": d.Description,
			"utime":       now,
		})
		if res.Error != nil {
			return wrapDuplicateErr(res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrRecordNotFound
		}
		// 口味整体替换
		if err := tx.Where("dish_id = ?", d.Id).Delete(&DishFlavor{}).Error; err != nil {
			return err
		}
		return g.createFlavors(tx, d.Id, flavors, now)
	})
}

func (g *DishGORMDAO) Delete(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var onSale int64
		err := tx.Model(&Dish{}).Where("id IN ? AND status = ?", ids, statusOnSale).Count(&onSale).Error
		if err != nil {
			return err
		}
		if onSale > 0 {
			return ErrDishOnSale
		}
		var linked int64
		err = tx.Model(&SetmealDish{}).Where("dish_id IN ?", ids).Count(&linked).Error
		if err != nil {
			return err
		}
		if linked > 0 {
			return ErrDishInSetmeal
		}
		if err = tx.Where("id IN ?", ids).Delete(&Dish{}).Error; err != nil {
			return err
		}
		return tx.Where("dish_id IN ?", ids).Delete(&DishFlavor{}).Error
	})
}

func (g *DishGORMDAO) UpdateStatus(ctx context.Context, id int64, status uint8) ([]Setmeal, error) {
	now := time.Now().UnixMilli()
	var cascaded []Setmeal
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Dish{}).Where("id = ?", id).Updates(map[string]any{
			"status": status,
			"utime":  now,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrRecordNotFound
		}
		if status == statusOnSale {
			return nil
		}
		var setmealIDs []int64
		err := tx.Model(&SetmealDish{}).Where("dish_id = ?", id).Pluck("setmeal_id", &setmealIDs).Error
		if err != nil || len(setmealIDs) == 0 {
			return err
		}
		err = tx.Where("id IN ? AND status = ?", setmealIDs, statusOnSale).Find(&cascaded).Error
		if err != nil || len(cascaded) == 0 {
			return err
		}
		ids := make([]int64, 0, len(cascaded))
		for _, s := range cascaded {
			ids = append(ids, s.Id)
		}
		return tx.Model(&Setmeal{}).Where("id IN ?", ids).Updates(map[string]any{
			"status": statusOffSale,
			"utime":  now,
		}).Error
	})
	return cascaded, err
}

func (g *DishGORMDAO) FindByID(ctx context.Context, id int64) (Dish, error) {
	var res Dish
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (g *DishGORMDAO) FindByIDs(ctx context.Context, ids []int64) ([]Dish, error) {
	var res []Dish
	if len(ids) == 0 {
		return res, nil
	}
	err := g.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (g *DishGORMDAO) FindFlavors(ctx context.Context, dishIDs []int64) ([]DishFlavor, error) {
	var res []DishFlavor
	if len(dishIDs) == 0 {
		return res, nil
	}
	err := g.db.WithContext(ctx).Where("dish_id IN ?", dishIDs).Order("id").Find(&res).Error
	return res, err
}

func (g *DishGORMDAO) List(ctx context.Context, q DishQuery, offset, limit int) ([]Dish, error) {
	var res []Dish
	err := g.where(ctx, q).Order("utime DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (g *DishGORMDAO) Count(ctx context.Context, q DishQuery) (int64, error) {
	var res int64
	err := g.where(ctx, q).Model(&Dish{}).Count(&res).Error
	return res, err
}

func (g *DishGORMDAO) where(ctx context.Context, q DishQuery) *gorm.DB {
	db := g.db.WithContext(ctx)
	if q.Name != "" {
		db = db.Where("name LIKE ?", "%"+q.Name+"%")
	}
	if q.CategoryId > 0 {
		db = db.Where("category_id = ?", q.CategoryId)
	}
	if q.Status != nil {
		db = db.Where("status = ?", *q.Status)
	}
	return db
}

func (g *DishGORMDAO) ListByCategory(ctx context.Context, categoryID int64, status uint8) ([]Dish, error) {
	var res []Dish
	err := g.db.WithContext(ctx).
		Where("category_id = ? AND status = ?", categoryID, status).
		Order("utime DESC").Find(&res).Error
	return res, err
}

func wrapDuplicateErr(err error) error {
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == duplicateEntryErrNo {
		return ErrDuplicateName
	}
	return err
}

type DishQuery struct {
	Name       string
	CategoryId int64
	Status     *uint8
}

type Dish struct {
	Id          int64  `gorm:"primaryKey;autoIncrement;comment:菜品自增ID"`
	CategoryId  int64  `gorm:"not null;index:idx_category_status,priority:1;comment:分类ID"`
	Name        string `gorm:"type:varchar(32);not null;uniqueIndex:uniq_dish_name;comment:菜品名称"`
	Price       int64  `gorm:"not null;comment:菜品价格,单位为分"`
	Image       string `gorm:"type:varchar(255);not null;default:'';comment:图片"`
	Description string `gorm:"type:varchar(255);not null;default:'';comment:描述信息"`
	Status      uint8  `gorm:"type:tinyint unsigned;not null;default:0;index:idx_category_status,priority:2;comment:0=停售 1=起售"`
	Ctime       int64
	Utime       int64
}

func (Dish) TableName() string {
	return "dish"
}

type DishFlavor struct {
	Id     int64                     `gorm:"primaryKey;autoIncrement;comment:口味自增ID"`
	DishId int64                     `gorm:"not null;index:idx_dish_id;comment:菜品ID"`
	Name   string                    `gorm:"type:varchar(32);not null;comment:口味名称"`
	Value  sqlx.JsonColumn[[]string] `gorm:"type:json;comment:口味数据list"`
	Ctime  int64
	Utime  int64
}

func (DishFlavor) TableName() string {
	return "dish_flavor"
}
