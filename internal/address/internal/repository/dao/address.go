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
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type AddressDAO interface {
	Create(ctx context.Context, a AddressBook) (int64, error)
	Update(ctx context.Context, a AddressBook) error
	FindByUID(ctx context.Context, uid int64) ([]AddressBook, error)
	FindByID(ctx context.Context, uid, id int64) (AddressBook, error)
	FindDefault(ctx context.Context, uid int64) (AddressBook, error)
	Delete(ctx context.Context, uid, id int64) error
	// SetDefault 同一个用户只有一个默认地址
	SetDefault(ctx context.Context, uid, id int64) error
}

type AddressGORMDAO struct {
	db *egorm.Component
}

func NewAddressGORMDAO(db *egorm.Component) AddressDAO {
	return &AddressGORMDAO{db: db}
}

func (g *AddressGORMDAO) Create(ctx context.Context, a AddressBook) (int64, error) {
	now := time.Now().UnixMilli()
	a.Ctime, a.Utime = now, now
	a.IsDefault = false
	err := g.db.WithContext(ctx).Create(&a).Error
	return a.Id, err
}

func (g *AddressGORMDAO) Update(ctx context.Context, a AddressBook) error {
	res := g.db.WithContext(ctx).Model(&AddressBook{}).
		Where("id = ? AND user_id = ?", a.Id, a.UserId).
		Updates(map[string]any{
			"consignee":     a.Consignee,
			"sex":           a.Sex,
			"phone":         a.Phone,
			"province_code": a.ProvinceCode,
			"province_name": a.ProvinceName,
			"city_code":     a.CityCode,
			"city_name":     a.CityName,
			"district_code": a.DistrictCode,
			"district_name": a.DistrictName,
			"detail":        a.Detail,
			"label":         a.Label,
			"utime":         time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (g *AddressGORMDAO) FindByUID(ctx context.Context, uid int64) ([]AddressBook, error) {
	var res []AddressBook
	err := g.db.WithContext(ctx).Where("user_id = ?", uid).
		Order("is_default DESC, id DESC").Find(&res).Error
	return res, err
}

func (g *AddressGORMDAO) FindByID(ctx context.Context, uid, id int64) (AddressBook, error) {
	var res AddressBook
	err := g.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, uid).First(&res).Error
	return res, err
}

func (g *AddressGORMDAO) FindDefault(ctx context.Context, uid int64) (AddressBook, error) {
	var res AddressBook
	err := g.db.WithContext(ctx).Where("user_id = ? AND is_default = ?", uid, true).First(&res).Error
	return res, err
}

func (g *AddressGORMDAO) Delete(ctx context.Context, uid, id int64) error {
	return g.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, uid).Delete(&AddressBook{}).Error
}

func (g *AddressGORMDAO) SetDefault(ctx context.Context, uid, id int64) error {
	now := time.Now().UnixMilli()
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&AddressBook{}).
			Where("user_id = ? AND is_default = ?", uid, true).
			Updates(map[string]any{"is_default": false, "utime": now}).Error
		if err != nil {
			return err
		}
		res := tx.Model(&AddressBook{}).
			Where("id = ? AND user_id = ?", id, uid).
			Updates(map[string]any{"is_default": true, "utime": now})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrRecordNotFound
		}
		return nil
	})
}

type AddressBook struct {
	Id           int64  `gorm:"primaryKey;autoIncrement"`
	UserId       int64  `gorm:"not null;index:idx_user_id;comment:用户ID"`
	Consignee    string `gorm:"type:varchar(50);not null;default:'';comment:收货人"`
	Sex          uint8  `gorm:"type:tinyint unsigned;not null;default:0;comment:0=女 1=男"`
	Phone        string `gorm:"type:varchar(11);not null;comment:手机号"`
	ProvinceCode string `gorm:"type:varchar(12);not null;default:''"`
	ProvinceName string `gorm:"type:varchar(32);not null;default:''"`
	CityCode     string `gorm:"type:varchar(12);not null;default:''"`
	CityName     string `gorm:"type:varchar(32);not null;default:''"`
	DistrictCode string `gorm:"type:varchar(12);not null;default:''"`
	DistrictName string `gorm:"type:varchar(32);not null;default:''"`
	Detail       string `gorm:"type:varchar(200);not null;default:'';comment:详细地址"`
	Label        string `gorm:"type:varchar(100);not null;default:'';comment:标签"`
	IsDefault    bool   `gorm:"not null;default:false;comment:是否默认地址"`
	Ctime        int64
	Utime        int64
}

func (AddressBook) TableName() string {
	return "address_book"
}
