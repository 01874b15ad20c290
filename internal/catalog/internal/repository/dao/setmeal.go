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
)

var (
	ErrSetmealOnSale         = errors.New("起售中的套餐不能删除")
	ErrSetmealHasOffSaleDish = errors.New("套餐内包含未启售菜品")
)

type SetmealDAO interface {
	Create(ctx context.Context, s Setmeal, dishes []SetmealDish) (int64, error)
	Update(ctx context.Context, s Setmeal, dishes []SetmealDish) error
	Delete(ctx context.Context, ids []int64) error
	UpdateStatus(ctx context.Context, id int64, status uint8) error
	FindByID(ctx context.Context, id int64) (Setmeal, error)
	FindByIDs(ctx context.Context, ids []int64) ([]Setmeal, error)
	FindDishes(ctx context.Context, setmealID int64) ([]SetmealDish, error)
	List(ctx context.Context, q SetmealQuery, offset, limit int) ([]Setmeal, error)
	Count(ctx context.Context, q SetmealQuery) (int64, error)
	ListByCategory(ctx context.Context, categoryID int64, status uint8) ([]Setmeal, error)
}

type SetmealGORMDAO struct {
	db *egorm.Component
}

func NewSetmealGORMDAO(db *egorm.Component) SetmealDAO {
	return &SetmealGORMDAO{db: db}
}

func (g *SetmealGORMDAO) Create(ctx context.Context, s Setmeal, dishes []SetmealDish) (int64, error) {
	now := time.Now().UnixMilli()
	s.Ctime, s.Utime = now, now
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&s).Error; err != nil {
			return wrapDuplicateErr(err)
		}
		return g.createDishes(tx, s.Id, dishes, now)
	})
	return s.Id, err
}

func (g *SetmealGORMDAO) createDishes(tx *gorm.DB, setmealID int64, dishes []SetmealDish, now int64) error {
	if len(dishes) == 0 {
		return nil
	}
	for i := range dishes {
		dishes[i].Id = 0
		dishes[i].SetmealId = setmealID
		dishes[i].Ctime, dishes[i].Utime = now, now
	}
	return tx.Create(&dishes).Error
}

func (g *SetmealGORMDAO) Update(ctx context.Context, s Setmeal, dishes []SetmealDish) error {
	now := time.Now().UnixMilli()
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Setmeal{}).Where("id = ?", s.Id).Updates(map[string]any{
			"category_id": s.CategoryId,
			"name":        s.Name,
			"price":       s.Price,
			"image":       s.Image,
			"description": s.Description,
			"utime":       now,
		})
		if res.Error != nil {
			return wrapDuplicateErr(res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrRecordNotFound
		}
		if err := tx.Where("setmeal_id = ?", s.Id).Delete(&SetmealDish{}).Error; err != nil {
			return err
		}
		return g.createDishes(tx, s.Id, dishes, now)
	})
}

func (g *SetmealGORMDAO) Delete(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var onSale int64
		err := tx.Model(&Setmeal{}).Where("id IN ? AND status = ?", ids, statusOnSale).Count(&onSale).Error
		if err != nil {
			return err
		}
		if onSale > 0 {
			return ErrSetmealOnSale
		}
		if err = tx.Where("id IN ?", ids).Delete(&Setmeal{}).Error; err != nil {
			return err
		}
		return tx.Where("setmeal_id IN ?", ids).Delete(&SetmealDish{}).Error
	})
}

func (g *SetmealGORMDAO) UpdateStatus(ctx context.Context, id int64, status uint8) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if status == statusOnSale {
			var offSale int64
			err := tx.Model(&Dish{}).
				Joins("JOIN setmeal_dish ON setmeal_dish.dish_id = dish.id").
				Where("setmeal_dish.setmeal_id = ? AND dish.status = ?", id, statusOffSale).
				Count(&offSale).Error
			if err != nil {
				return err
			}
			if offSale > 0 {
				return ErrSetmealHasOffSaleDish
			}
		}
		res := tx.Model(&Setmeal{}).Where("id = ?", id).Updates(map[string]any{
			"status": status,
			"utime":  time.Now().UnixMilli(),
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrRecordNotFound
		}
		return nil
	})
}

func (g *SetmealGORMDAO) FindByID(ctx context.Context, id int64) (Setmeal, error) {
	var res Setmeal
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (g *SetmealGORMDAO) FindByIDs(ctx context.Context, ids []int64) ([]Setmeal, error) {
	var res []Setmeal
	if len(ids) == 0 {
		return res, nil
	}
	err := g.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (g *SetmealGORMDAO) FindDishes(ctx context.Context, setmealID int64) ([]SetmealDish, error) {
	var res []SetmealDish
	err := g.db.WithContext(ctx).Where("setmeal_id = ?", setmealID).Order("id").Find(&res).Error
	return res, err
}

func (g *SetmealGORMDAO) List(ctx context.Context, q SetmealQuery, offset, limit int) ([]Setmeal, error) {
	var res []Setmeal
	err := g.where(ctx, q).Order("utime DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (g *SetmealGORMDAO) Count(ctx context.Context, q SetmealQuery) (int64, error) {
	var res int64
	err := g.where(ctx, q).Model(&Setmeal{}).Count(&res).Error
	return res, err
}

func (g *SetmealGORMDAO) where(ctx context.Context, q SetmealQuery) *gorm.DB {
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

func (g *SetmealGORMDAO) ListByCategory(ctx context.Context, categoryID int64, status uint8) ([]Setmeal, error) {
	var res []Setmeal
	err := g.db.WithContext(ctx).
		Where("category_id = ? AND status = ?", categoryID, status).
		Order("utime DESC").Find(&res).Error
	return res, err
}

type SetmealQuery struct {
	Name       string
	CategoryId int64
	Status     *uint8
}

type Setmeal struct {
	Id          int64  `gorm:"primaryKey;autoIncrement;comment:套餐自增ID"`
	CategoryId  int64  `gorm:"not null;index:idx_category_status,priority:1;comment:分类ID"`
	Name        string `gorm:"type:varchar(32);not null;uniqueIndex:uniq_setmeal_name;comment:套餐名称"`
	Price       int64  `gorm:"not null;comment:套餐价格,单位为分"`
	Image       string `gorm:"type:varchar(255);not null;default:'';comment:图片"`
	Description string `gorm:"type:varchar(255);not null;default:'';comment:描述信息"`
	Status      uint8  `gorm:"type:tinyint unsigned;not null;default:0;index:idx_category_status,priority:2;comment:0=停售 1=起售"`
	Ctime       int64
	Utime       int64
}

func (Setmeal) TableName() string {
	return "setmeal"
}

type SetmealDish struct {
	Id        int64  `gorm:"primaryKey;autoIncrement;comment:套餐菜品关系自增ID"`
	SetmealId int64  `gorm:"not null;index:idx_setmeal_id;comment:套餐ID"`
	DishId    int64  `gorm:"not null;index:idx_dish_id;comment:菜品ID"`
	Name      string `gorm:"type:varchar(32);not null;comment:菜品名称冗余字段"`
	Price     int64  `gorm:"not null;comment:菜品单价冗余字段"`
	Copies    int64  `gorm:"not null;default:1;comment:菜品份数"`
	Ctime     int64
	Utime     int64
}

func (SetmealDish) TableName() string {
	return "setmeal_dish"
}
