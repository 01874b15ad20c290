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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrStatusConflict 条件更新没有命中任何订单
	ErrStatusConflict = errors.New("订单状态已变更")
)

type OrderDAO interface {
	// Create 在同一个事务内插入订单与明细, 并删除已经下单的购物车记录
	Create(ctx context.Context, o Order, details []OrderDetail, cartIDs []int64) (int64, error)
	// Transit 以 status IN from 为条件更新订单, hook 与更新处于同一事务, hook 返回错误时回滚
	Transit(ctx context.Context, id int64, from []uint8, columns map[string]any, hook func(ctx context.Context) error) error
	FindByID(ctx context.Context, id int64) (Order, error)
	FindByNumber(ctx context.Context, number string) (Order, error)
	FindDetails(ctx context.Context, orderIDs []int64) ([]OrderDetail, error)
	ListByUID(ctx context.Context, uid int64, status uint8, offset, limit int) ([]Order, error)
	CountByUID(ctx context.Context, uid int64, status uint8) (int64, error)
	Search(ctx context.Context, cond SearchCondition, offset, limit int) ([]Order, error)
	Count(ctx context.Context, cond SearchCondition) (int64, error)
	CountByStatus(ctx context.Context, statuses []uint8) (map[uint8]int64, error)
	// FindTimeout 按 id 游标分页查找 order_time 早于 before 的订单
	FindTimeout(ctx context.Context, status uint8, before int64, minID int64, limit int) ([]Order, error)
}

type OrderGORMDAO struct {
	db *egorm.Component
}

func NewOrderGORMDAO(db *egorm.Component) OrderDAO {
	return &OrderGORMDAO{db: db}
}

func (g *OrderGORMDAO) Create(ctx context.Context, o Order, details []OrderDetail, cartIDs []int64) (int64, error) {
	now := time.Now().UnixMilli()
	o.Ctime, o.Utime = now, now
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&o).Error; err != nil {
			return err
		}
		for i := range details {
			details[i].Id = 0
			details[i].OrderId = o.Id
			details[i].Ctime, details[i].Utime = now, now
		}
		if len(details) > 0 {
			if err := tx.Create(&details).Error; err != nil {
				return err
			}
		}
		if len(cartIDs) == 0 {
			return nil
		}
		// 购物车属于 cart 模块, 为了与下单处于同一事务直接按表删除
		return tx.Exec("DELETE FROM `shopping_cart` WHERE `id` IN ? AND `user_id` = ?", cartIDs, o.UserId).Error
	})
	return o.Id, err
}

func (g *OrderGORMDAO) Transit(ctx context.Context, id int64, from []uint8, columns map[string]any, hook func(ctx context.Context) error) error {
	values := make(map[string]any, len(columns)+1)
	for k, v := range columns {
		values[k] = v
	}
	values["utime"] = time.Now().UnixMilli()
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Order{}).
			Where("id = ? AND status IN ?", id, toInts(from)).
			Updates(values)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrStatusConflict
		}
		if hook == nil {
			return nil
		}
		return hook(tx.Statement.Context)
	})
}

func (g *OrderGORMDAO) FindByID(ctx context.Context, id int64) (Order, error) {
	var o Order
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&o).Error
	return o, err
}

func (g *OrderGORMDAO) FindByNumber(ctx context.Context, number string) (Order, error) {
	var o Order
	err := g.db.WithContext(ctx).Where("number = ?", number).First(&o).Error
	return o, err
}

func (g *OrderGORMDAO) FindDetails(ctx context.Context, orderIDs []int64) ([]OrderDetail, error) {
	var res []OrderDetail
	if len(orderIDs) == 0 {
		return res, nil
	}
	err := g.db.WithContext(ctx).
		Where("order_id IN ?", orderIDs).
		Order("id ASC").
		Find(&res).Error
	return res, err
}

func (g *OrderGORMDAO) ListByUID(ctx context.Context, uid int64, status uint8, offset, limit int) ([]Order, error) {
	var res []Order
	err := g.userQuery(ctx, uid, status).
		Order("order_time DESC").
		Offset(offset).
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *OrderGORMDAO) CountByUID(ctx context.Context, uid int64, status uint8) (int64, error) {
	var res int64
	err := g.userQuery(ctx, uid, status).Count(&res).Error
	return res, err
}

func (g *OrderGORMDAO) userQuery(ctx context.Context, uid int64, status uint8) *gorm.DB {
	db := g.db.WithContext(ctx).Model(&Order{}).Where("user_id = ?", uid)
	if status > 0 {
		db = db.Where("status = ?", status)
	}
	return db
}

func (g *OrderGORMDAO) Search(ctx context.Context, cond SearchCondition, offset, limit int) ([]Order, error) {
	var res []Order
	err := g.searchQuery(ctx, cond).
		Order("order_time DESC").
		Offset(offset).
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *OrderGORMDAO) Count(ctx context.Context, cond SearchCondition) (int64, error) {
	var res int64
	err := g.searchQuery(ctx, cond).Count(&res).Error
	return res, err
}

func (g *OrderGORMDAO) searchQuery(ctx context.Context, cond SearchCondition) *gorm.DB {
	db := g.db.WithContext(ctx).Model(&Order{})
	if cond.Number != "" {
		db = db.Where("number LIKE ?", "%"+cond.Number+"%")
	}
	if cond.Phone != "" {
		db = db.Where("phone LIKE ?", "%"+cond.Phone+"%")
	}
	if cond.Status > 0 {
		db = db.Where("status = ?", cond.Status)
	}
	if cond.BeginTime > 0 {
		db = db.Where("order_time >= ?", cond.BeginTime)
	}
	if cond.EndTime > 0 {
		db = db.Where("order_time <= ?", cond.EndTime)
	}
	return db
}

func (g *OrderGORMDAO) CountByStatus(ctx context.Context, statuses []uint8) (map[uint8]int64, error) {
	var rows []struct {
		Status uint8
		Cnt    int64
	}
	err := g.db.WithContext(ctx).Model(&Order{}).
		Select("status, COUNT(*) AS cnt").
		Where("status IN ?", toInts(statuses)).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	res := make(map[uint8]int64, len(rows))
	for _, r := range rows {
		res[r.Status] = r.Cnt
	}
	return res, nil
}

func (g *OrderGORMDAO) FindTimeout(ctx context.Context, status uint8, before int64, minID int64, limit int) ([]Order, error) {
	var res []Order
	err := g.db.WithContext(ctx).
		Where("status = ? AND order_time < ? AND id > ?", status, before, minID).
		Order("id ASC").
		Limit(limit).
		Find(&res).Error
	return res, err
}

// toInts 避免 []uint8 被当作 []byte 处理
func toInts(statuses []uint8) []int {
	return slice.Map(statuses, func(idx int, src uint8) int {
		return int(src)
	})
}

type SearchCondition struct {
	Number    string
	Phone     string
	Status    uint8
	BeginTime int64
	EndTime   int64
}

type Order struct {
	Id                    int64  `gorm:"primaryKey;autoIncrement;comment:订单自增ID"`
	Number                string `gorm:"type:varchar(50);not null;uniqueIndex:uniq_number;comment:订单号"`
	Status                uint8  `gorm:"type:tinyint unsigned;not null;default:1;index:idx_status_order_time,priority:1;comment:订单状态 1待付款 2待接单 3已接单 4派送中 5已完成 6已取消"`
	UserId                int64  `gorm:"not null;index:idx_user_id;comment:下单用户ID"`
	AddressBookId         int64  `gorm:"not null;comment:地址簿ID"`
	OrderTime             int64  `gorm:"not null;index:idx_status_order_time,priority:2;comment:下单时间"`
	CheckoutTime          int64  `gorm:"comment:结账时间"`
	PayMethod             uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:支付方式 1微信"`
	PayStatus             uint8  `gorm:"type:tinyint unsigned;not null;default:0;comment:支付状态 0未支付 1已支付 2退款"`
	Amount                int64  `gorm:"not null;comment:实收金额,单位为分"`
	Remark                string `gorm:"type:varchar(100);comment:备注"`
	Phone                 string `gorm:"type:varchar(11);comment:手机号"`
	Address               string `gorm:"type:varchar(255);comment:地址"`
	Consignee             string `gorm:"type:varchar(32);comment:收货人"`
	CancelReason          string `gorm:"type:varchar(255);comment:订单取消原因"`
	RejectionReason       string `gorm:"type:varchar(255);comment:订单拒绝原因"`
	CancelTime            int64  `gorm:"comment:订单取消时间"`
	EstimatedDeliveryTime int64  `gorm:"comment:预计送达时间"`
	DeliveryStatus        uint8  `gorm:"type:tinyint unsigned;not null;comment:配送状态 1立即送出 0选择具体时间"`
	DeliveryTime          int64  `gorm:"comment:送达时间"`
	PackAmount            int64  `gorm:"comment:打包费,单位为分"`
	TablewareNumber       int64  `gorm:"comment:餐具数量"`
	TablewareStatus       uint8  `gorm:"type:tinyint unsigned;not null;comment:餐具数量状态 1按餐量提供 0选择具体数量"`
	Ctime                 int64
	Utime                 int64
}

func (Order) TableName() string {
	return "orders"
}

type OrderDetail struct {
	Id         int64  `gorm:"primaryKey;autoIncrement;comment:订单明细自增ID"`
	OrderId    int64  `gorm:"not null;index:idx_order_id;comment:订单ID"`
	Name       string `gorm:"type:varchar(32);comment:名字"`
	Image      string `gorm:"type:varchar(255);comment:图片"`
	DishId     int64  `gorm:"comment:菜品ID"`
	SetmealId  int64  `gorm:"comment:套餐ID"`
	DishFlavor string `gorm:"type:varchar(50);comment:口味"`
	Number     int64  `gorm:"not null;default:1;comment:数量"`
	Amount     int64  `gorm:"not null;comment:单价,单位为分"`
	Ctime      int64
	Utime      int64
}

func (OrderDetail) TableName() string {
	return "order_detail"
}
