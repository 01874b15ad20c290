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

	"github.com/ecodeclub/ekit/mapx"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/takeout/internal/order/internal/domain"
	"github.com/ecodeclub/takeout/internal/order/internal/repository/dao"
	"golang.org/x/sync/errgroup"
)

var (
	ErrOrderNotFound  = dao.ErrRecordNotFound
	ErrStatusConflict = dao.ErrStatusConflict
)

//go:generate mockgen -source=./order.go -package=repomocks -destination=./mocks/order.mock.go -typed OrderRepository
type OrderRepository interface {
	Create(ctx context.Context, o domain.Order, lines []domain.OrderLine, cartIDs []int64) (int64, error)
	// Transit 条件更新失败返回 ErrStatusConflict
	Transit(ctx context.Context, t domain.Transition, hook func(ctx context.Context) error) error
	FindByID(ctx context.Context, id int64) (domain.OrderView, error)
	FindByNumber(ctx context.Context, number string) (domain.Order, error)
	ListByUID(ctx context.Context, uid int64, status domain.OrderStatus, offset, limit int) ([]domain.OrderView, int64, error)
	Search(ctx context.Context, cond domain.SearchCondition, offset, limit int) ([]domain.OrderView, int64, error)
	CountByStatus(ctx context.Context, statuses []domain.OrderStatus) (map[domain.OrderStatus]int64, error)
	FindTimeoutOrders(ctx context.Context, status domain.OrderStatus, before int64, minID int64, limit int) ([]domain.Order, error)
}

type orderRepository struct {
	dao dao.OrderDAO
}

func NewOrderRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{dao: d}
}

func (r *orderRepository) Create(ctx context.Context, o domain.Order, lines []domain.OrderLine, cartIDs []int64) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(o), slice.Map(lines, func(idx int, src domain.OrderLine) dao.OrderDetail {
		return r.toDetailEntity(src)
	}), cartIDs)
}

func (r *orderRepository) Transit(ctx context.Context, t domain.Transition, hook func(ctx context.Context) error) error {
	columns := map[string]any{
		"status": t.To.ToUint8(),
	}
	if t.PayStatus != domain.PayStatusUnpaid {
		columns["pay_status"] = t.PayStatus.ToUint8()
	}
	if t.CheckoutTime > 0 {
		columns["checkout_time"] = t.CheckoutTime
	}
	if t.CancelTime > 0 {
		columns["cancel_time"] = t.CancelTime
	}
	if t.CancelReason != "" {
		columns["cancel_reason"] = t.CancelReason
	}
	if t.RejectionReason != "" {
		columns["rejection_reason"] = t.RejectionReason
	}
	if t.DeliveryTime > 0 {
		columns["delivery_time"] = t.DeliveryTime
	}
	from := slice.Map(t.From, func(idx int, src domain.OrderStatus) uint8 {
		return src.ToUint8()
	})
	return r.dao.Transit(ctx, t.OrderID, from, columns, hook)
}

func (r *orderRepository) FindByID(ctx context.Context, id int64) (domain.OrderView, error) {
	var (
		eg      errgroup.Group
		o       dao.Order
		details []dao.OrderDetail
	)
	eg.Go(func() error {
		var err error
		o, err = r.dao.FindByID(ctx, id)
		return err
	})
	eg.Go(func() error {
		var err error
		details, err = r.dao.FindDetails(ctx, []int64{id})
		return err
	})
	if err := eg.Wait(); err != nil {
		return domain.OrderView{}, err
	}
	return r.toView(o, details), nil
}

func (r *orderRepository) FindByNumber(ctx context.Context, number string) (domain.Order, error) {
	o, err := r.dao.FindByNumber(ctx, number)
	if err != nil {
		return domain.Order{}, err
	}
	return r.toDomain(o), nil
}

func (r *orderRepository) ListByUID(ctx context.Context, uid int64, status domain.OrderStatus, offset, limit int) ([]domain.OrderView, int64, error) {
	var (
		eg     errgroup.Group
		orders []dao.Order
		total  int64
	)
	eg.Go(func() error {
		var err error
		orders, err = r.dao.ListByUID(ctx, uid, status.ToUint8(), offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = r.dao.CountByUID(ctx, uid, status.ToUint8())
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	views, err := r.withLines(ctx, orders)
	return views, total, err
}

func (r *orderRepository) Search(ctx context.Context, cond domain.SearchCondition, offset, limit int) ([]domain.OrderView, int64, error) {
	c := dao.SearchCondition{
		Number:    cond.Number,
		Phone:     cond.Phone,
		Status:    cond.Status.ToUint8(),
		BeginTime: cond.BeginTime,
		EndTime:   cond.EndTime,
	}
	var (
		eg     errgroup.Group
		orders []dao.Order
		total  int64
	)
	eg.Go(func() error {
		var err error
		orders, err = r.dao.Search(ctx, c, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = r.dao.Count(ctx, c)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	views, err := r.withLines(ctx, orders)
	return views, total, err
}

func (r *orderRepository) withLines(ctx context.Context, orders []dao.Order) ([]domain.OrderView, error) {
	ids := slice.Map(orders, func(idx int, src dao.Order) int64 {
		return src.Id
	})
	details, err := r.dao.FindDetails(ctx, ids)
	if err != nil {
		return nil, err
	}
	grouped := mapx.NewMultiBuiltinMap[int64, dao.OrderDetail](len(orders))
	for _, d := range details {
		_ = grouped.Put(d.OrderId, d)
	}
	return slice.Map(orders, func(idx int, src dao.Order) domain.OrderView {
		ds, _ := grouped.Get(src.Id)
		return r.toView(src, ds)
	}), nil
}

func (r *orderRepository) CountByStatus(ctx context.Context, statuses []domain.OrderStatus) (map[domain.OrderStatus]int64, error) {
	counts, err := r.dao.CountByStatus(ctx, slice.Map(statuses, func(idx int, src domain.OrderStatus) uint8 {
		return src.ToUint8()
	}))
	if err != nil {
		return nil, err
	}
	res := make(map[domain.OrderStatus]int64, len(counts))
	for k, v := range counts {
		res[domain.OrderStatus(k)] = v
	}
	return res, nil
}

func (r *orderRepository) FindTimeoutOrders(ctx context.Context, status domain.OrderStatus, before int64, minID int64, limit int) ([]domain.Order, error) {
	orders, err := r.dao.FindTimeout(ctx, status.ToUint8(), before, minID, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(orders, func(idx int, src dao.Order) domain.Order {
		return r.toDomain(src)
	}), nil
}

func (r *orderRepository) toView(o dao.Order, details []dao.OrderDetail) domain.OrderView {
	return domain.OrderView{
		Order: r.toDomain(o),
		Lines: slice.Map(details, func(idx int, src dao.OrderDetail) domain.OrderLine {
			return r.toLineDomain(src)
		}),
	}
}

func (r *orderRepository) toEntity(o domain.Order) dao.Order {
	return dao.Order{
		Id:                    o.ID,
		Number:                o.Number,
		Status:                o.Status.ToUint8(),
		UserId:                o.UserID,
		AddressBookId:         o.AddressBookID,
		OrderTime:             o.OrderTime,
		CheckoutTime:          o.CheckoutTime,
		PayMethod:             o.PayMethod,
		PayStatus:             o.PayStatus.ToUint8(),
		Amount:                o.Amount,
		Remark:                o.Remark,
		Phone:                 o.Phone,
		Address:               o.Address,
		Consignee:             o.Consignee,
		CancelReason:          o.CancelReason,
		RejectionReason:       o.RejectionReason,
		CancelTime:            o.CancelTime,
		EstimatedDeliveryTime: o.EstimatedDeliveryTime,
		DeliveryStatus:        o.DeliveryStatus,
		DeliveryTime:          o.DeliveryTime,
		PackAmount:            o.PackAmount,
		TablewareNumber:       o.TablewareNumber,
		TablewareStatus:       o.TablewareStatus,
	}
}

func (r *orderRepository) toDomain(o dao.Order) domain.Order {
	return domain.Order{
		ID:                    o.Id,
		Number:                o.Number,
		Status:                domain.OrderStatus(o.Status),
		UserID:                o.UserId,
		AddressBookID:         o.AddressBookId,
		OrderTime:             o.OrderTime,
		CheckoutTime:          o.CheckoutTime,
		PayMethod:             o.PayMethod,
		PayStatus:             domain.PayStatus(o.PayStatus),
		Amount:                o.Amount,
		Remark:                o.Remark,
		Phone:                 o.Phone,
		Address:               o.Address,
		Consignee:             o.Consignee,
		CancelReason:          o.CancelReason,
		RejectionReason:       o.RejectionReason,
		CancelTime:            o.CancelTime,
		EstimatedDeliveryTime: o.EstimatedDeliveryTime,
		DeliveryStatus:        o.DeliveryStatus,
		DeliveryTime:          o.DeliveryTime,
		PackAmount:            o.PackAmount,
		TablewareNumber:       o.TablewareNumber,
		TablewareStatus:       o.TablewareStatus,
	}
}

func (r *orderRepository) toDetailEntity(l domain.OrderLine) dao.OrderDetail {
	return dao.OrderDetail{
		Name:       l.Name,
		Image:      l.Image,
		DishId:     l.DishID,
		SetmealId:  l.SetmealID,
		DishFlavor: l.DishFlavor,
		Number:     l.Number,
		Amount:     l.Amount,
	}
}

func (r *orderRepository) toLineDomain(d dao.OrderDetail) domain.OrderLine {
	return domain.OrderLine{
		ID:         d.Id,
		OrderID:    d.OrderId,
		Name:       d.Name,
		Image:      d.Image,
		DishID:     d.DishId,
		SetmealID:  d.SetmealId,
		DishFlavor: d.DishFlavor,
		Number:     d.Number,
		Amount:     d.Amount,
	}
}
