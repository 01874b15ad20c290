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
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/takeout/internal/address"
	"github.com/ecodeclub/takeout/internal/cart"
	"github.com/ecodeclub/takeout/internal/order/internal/domain"
	"github.com/ecodeclub/takeout/internal/order/internal/event"
	"github.com/ecodeclub/takeout/internal/order/internal/repository"
	"github.com/ecodeclub/takeout/internal/payment"
	"github.com/ecodeclub/takeout/internal/pkg/sequencenumber"
	"github.com/ecodeclub/takeout/internal/pkg/snowflake"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrOrderNotFound      = repository.ErrOrderNotFound
	ErrInvalidOrderStatus = errors.New("订单状态错误")
	ErrAddressNotFound    = errors.New("用户地址为空，不能下单")
	ErrEmptyCart          = errors.New("购物车数据为空，不能下单")
	ErrOrderPaid          = errors.New("该订单已支付")
	ErrPaymentProvider    = errors.New("支付渠道异常")
	ErrEmptyOrder         = errors.New("订单没有菜品，不能再来一单")
)

const payDescription = "外卖订单"

//go:generate mockgen -source=./service.go -package=ordermocks -destination=../../mocks/order.mock.go -typed Service
type Service interface {
	// Submit 用购物车中的全部商品下单
	Submit(ctx context.Context, uid int64, sub domain.Submission) (domain.Order, error)
	Pay(ctx context.Context, uid int64, number string, openID string) (payment.PrepayResponse, error)
	// PaySuccess 处理支付成功的通知, 重复通知不会报错
	PaySuccess(ctx context.Context, number string) error
	UserCancel(ctx context.Context, uid, id int64) error
	Reorder(ctx context.Context, uid, id int64) error
	ListUserOrders(ctx context.Context, uid int64, status domain.OrderStatus, offset, limit int) ([]domain.OrderView, int64, error)
	UserDetail(ctx context.Context, uid, id int64) (domain.OrderView, error)

	Confirm(ctx context.Context, id int64) error
	Reject(ctx context.Context, id int64, reason string) error
	Cancel(ctx context.Context, id int64, reason string) error
	Delivery(ctx context.Context, id int64) error
	Complete(ctx context.Context, id int64) error
	Detail(ctx context.Context, id int64) (domain.OrderView, error)
	Search(ctx context.Context, cond domain.SearchCondition, offset, limit int) ([]domain.OrderView, int64, error)
	Statistics(ctx context.Context) (domain.Statistics, error)

	FindTimeoutOrders(ctx context.Context, status domain.OrderStatus, before int64, minID int64, limit int) ([]domain.Order, error)
	// CloseTimeoutOrder 关闭超时未支付的订单, 不修改支付状态
	CloseTimeoutOrder(ctx context.Context, o domain.Order) error
	// CompleteTimeoutOrder 完成长时间处于派送中的订单, 不设置送达时间
	CompleteTimeoutOrder(ctx context.Context, o domain.Order) error
}

type service struct {
	repo        repository.OrderRepository
	addressSvc  address.Service
	cartSvc     cart.Service
	paymentSvc  payment.Service
	snGenerator *sequencenumber.Generator
	refundSNGen *snowflake.Generator
	producer    event.OrderEventProducer
	l           *elog.Component
}

func NewService(repo repository.OrderRepository,
	addressSvc address.Service,
	cartSvc cart.Service,
	paymentSvc payment.Service,
	snGenerator *sequencenumber.Generator,
	refundSNGen *snowflake.Generator,
	producer event.OrderEventProducer) Service {
	return &service{
		repo:        repo,
		addressSvc:  addressSvc,
		cartSvc:     cartSvc,
		paymentSvc:  paymentSvc,
		snGenerator: snGenerator,
		refundSNGen: refundSNGen,
		producer:    producer,
		l:           elog.DefaultLogger,
	}
}

func (s *service) Submit(ctx context.Context, uid int64, sub domain.Submission) (domain.Order, error) {
	addr, err := s.addressSvc.FindByID(ctx, uid, sub.AddressBookID)
	if errors.Is(err, address.ErrAddressNotFound) {
		return domain.Order{}, fmt.Errorf("%w: address_book_id=%d", ErrAddressNotFound, sub.AddressBookID)
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("查找用户地址失败: %w", err)
	}

	items, err := s.cartSvc.List(ctx, uid)
	if err != nil {
		return domain.Order{}, fmt.Errorf("查找购物车失败: %w", err)
	}
	if len(items) == 0 {
		return domain.Order{}, fmt.Errorf("%w: uid=%d", ErrEmptyCart, uid)
	}

	number, err := s.snGenerator.Generate(uid)
	if err != nil {
		return domain.Order{}, fmt.Errorf("生成订单号失败: %w", err)
	}

	amount := sub.PackAmount
	lines := slice.Map(items, func(idx int, src cart.CartItem) domain.OrderLine {
		amount += src.Amount * src.Number
		return domain.OrderLine{
			Name:       src.Name,
			Image:      src.Image,
			DishID:     src.DishID,
			SetmealID:  src.SetmealID,
			DishFlavor: src.DishFlavor,
			Number:     src.Number,
			Amount:     src.Amount,
		}
	})
	cartIDs := slice.Map(items, func(idx int, src cart.CartItem) int64 {
		return src.ID
	})

	payMethod := sub.PayMethod
	if payMethod == 0 {
		payMethod = domain.PayMethodWechat
	}
	o := domain.Order{
		Number:                number,
		Status:                domain.OrderStatusUnpaid,
		UserID:                uid,
		AddressBookID:         addr.ID,
		OrderTime:             time.Now().UnixMilli(),
		PayMethod:             payMethod,
		PayStatus:             domain.PayStatusUnpaid,
		Amount:                amount,
		Remark:                sub.Remark,
		Phone:                 addr.Phone,
		Address:               addr.FullAddress(),
		Consignee:             addr.Consignee,
		EstimatedDeliveryTime: sub.EstimatedDeliveryTime,
		DeliveryStatus:        sub.DeliveryStatus,
		PackAmount:            sub.PackAmount,
		TablewareNumber:       sub.TablewareNumber,
		TablewareStatus:       sub.TablewareStatus,
	}
	o.ID, err = s.repo.Create(ctx, o, lines, cartIDs)
	if err != nil {
		return domain.Order{}, fmt.Errorf("创建订单失败: %w", err)
	}
	s.sendEvent(ctx, o)
	return o, nil
}

func (s *service) Pay(ctx context.Context, uid int64, number string, openID string) (payment.PrepayResponse, error) {
	o, err := s.repo.FindByNumber(ctx, number)
	if err != nil {
		return payment.PrepayResponse{}, s.wrapNotFound(err, "number", number)
	}
	if o.UserID != uid {
		return payment.PrepayResponse{}, fmt.Errorf("%w: number=%s, uid=%d", ErrOrderNotFound, number, uid)
	}
	if o.Status != domain.OrderStatusUnpaid {
		return payment.PrepayResponse{}, fmt.Errorf("%w: number=%s, status=%d", ErrInvalidOrderStatus, number, o.Status)
	}
	resp, err := s.paymentSvc.Prepay(ctx, payment.Prepay{
		OrderSN:     o.Number,
		Amount:      o.Amount,
		Description: payDescription,
		OpenID:      openID,
	})
	if errors.Is(err, payment.ErrOrderPaid) {
		return payment.PrepayResponse{}, fmt.Errorf("%w: %w", ErrOrderPaid, err)
	}
	if err != nil {
		return payment.PrepayResponse{}, fmt.Errorf("%w: %w", ErrPaymentProvider, err)
	}
	return resp, nil
}

func (s *service) PaySuccess(ctx context.Context, number string) error {
	o, err := s.repo.FindByNumber(ctx, number)
	if err != nil {
		return s.wrapNotFound(err, "number", number)
	}
	if o.Status != domain.OrderStatusUnpaid && o.PayStatus != domain.PayStatusUnpaid {
		// 重复通知
		return nil
	}
	return s.transit(ctx, o, []domain.OrderStatus{domain.OrderStatusUnpaid}, domain.Transition{
		To:           domain.OrderStatusToBeConfirmed,
		PayStatus:    domain.PayStatusPaid,
		CheckoutTime: time.Now().UnixMilli(),
	}, false)
}

func (s *service) UserCancel(ctx context.Context, uid, id int64) error {
	view, err := s.UserDetail(ctx, uid, id)
	if err != nil {
		return err
	}
	o := view.Order
	return s.transit(ctx, o, []domain.OrderStatus{domain.OrderStatusUnpaid, domain.OrderStatusToBeConfirmed}, domain.Transition{
		To:           domain.OrderStatusCancelled,
		CancelReason: domain.CancelReasonUser,
		CancelTime:   time.Now().UnixMilli(),
	}, o.Status == domain.OrderStatusToBeConfirmed)
}

func (s *service) Reorder(ctx context.Context, uid, id int64) error {
	view, err := s.UserDetail(ctx, uid, id)
	if err != nil {
		return err
	}
	if len(view.Lines) == 0 {
		return fmt.Errorf("%w: id=%d", ErrEmptyOrder, id)
	}
	items := slice.Map(view.Lines, func(idx int, src domain.OrderLine) cart.CartItem {
		return cart.CartItem{
			UserID: uid,
			Item: cart.Item{
				DishID:     src.DishID,
				SetmealID:  src.SetmealID,
				DishFlavor: src.DishFlavor,
			},
			Name:   src.Name,
			Image:  src.Image,
			Amount: src.Amount,
			Number: src.Number,
		}
	})
	return s.cartSvc.AddBatch(ctx, uid, items)
}

func (s *service) ListUserOrders(ctx context.Context, uid int64, status domain.OrderStatus, offset, limit int) ([]domain.OrderView, int64, error) {
	return s.repo.ListByUID(ctx, uid, status, offset, limit)
}

func (s *service) UserDetail(ctx context.Context, uid, id int64) (domain.OrderView, error) {
	view, err := s.Detail(ctx, id)
	if err != nil {
		return domain.OrderView{}, err
	}
	if view.UserID != uid {
		return domain.OrderView{}, fmt.Errorf("%w: id=%d, uid=%d", ErrOrderNotFound, id, uid)
	}
	return view, nil
}

func (s *service) Confirm(ctx context.Context, id int64) error {
	o, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	return s.transit(ctx, o, []domain.OrderStatus{domain.OrderStatusToBeConfirmed}, domain.Transition{
		To: domain.OrderStatusConfirmed,
	}, false)
}

func (s *service) Reject(ctx context.Context, id int64, reason string) error {
	o, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	return s.transit(ctx, o, []domain.OrderStatus{domain.OrderStatusToBeConfirmed}, domain.Transition{
		To:              domain.OrderStatusCancelled,
		RejectionReason: reason,
		CancelTime:      time.Now().UnixMilli(),
	}, o.PayStatus == domain.PayStatusPaid)
}

func (s *service) Cancel(ctx context.Context, id int64, reason string) error {
	o, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	return s.transit(ctx, o, []domain.OrderStatus{
		domain.OrderStatusUnpaid,
		domain.OrderStatusToBeConfirmed,
		domain.OrderStatusConfirmed,
	}, domain.Transition{
		To:           domain.OrderStatusCancelled,
		CancelReason: reason,
		CancelTime:   time.Now().UnixMilli(),
	}, o.PayStatus == domain.PayStatusPaid)
}

func (s *service) Delivery(ctx context.Context, id int64) error {
	o, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	return s.transit(ctx, o, []domain.OrderStatus{domain.OrderStatusConfirmed}, domain.Transition{
		To: domain.OrderStatusDeliveryInProgress,
	}, false)
}

func (s *service) Complete(ctx context.Context, id int64) error {
	o, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	return s.transit(ctx, o, []domain.OrderStatus{domain.OrderStatusDeliveryInProgress}, domain.Transition{
		To:           domain.OrderStatusCompleted,
		DeliveryTime: time.Now().UnixMilli(),
	}, false)
}

func (s *service) Detail(ctx context.Context, id int64) (domain.OrderView, error) {
	view, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.OrderView{}, s.wrapNotFound(err, "id", id)
	}
	return view, nil
}

func (s *service) Search(ctx context.Context, cond domain.SearchCondition, offset, limit int) ([]domain.OrderView, int64, error) {
	return s.repo.Search(ctx, cond, offset, limit)
}

func (s *service) Statistics(ctx context.Context) (domain.Statistics, error) {
	counts, err := s.repo.CountByStatus(ctx, []domain.OrderStatus{
		domain.OrderStatusToBeConfirmed,
		domain.OrderStatusConfirmed,
		domain.OrderStatusDeliveryInProgress,
	})
	if err != nil {
		return domain.Statistics{}, err
	}
	return domain.Statistics{
		ToBeConfirmed:      counts[domain.OrderStatusToBeConfirmed],
		Confirmed:          counts[domain.OrderStatusConfirmed],
		DeliveryInProgress: counts[domain.OrderStatusDeliveryInProgress],
	}, nil
}

func (s *service) FindTimeoutOrders(ctx context.Context, status domain.OrderStatus, before int64, minID int64, limit int) ([]domain.Order, error) {
	return s.repo.FindTimeoutOrders(ctx, status, before, minID, limit)
}

func (s *service) CloseTimeoutOrder(ctx context.Context, o domain.Order) error {
	return s.transit(ctx, o, []domain.OrderStatus{domain.OrderStatusUnpaid}, domain.Transition{
		To:           domain.OrderStatusCancelled,
		CancelReason: domain.CancelReasonTimeout,
		CancelTime:   time.Now().UnixMilli(),
	}, false)
}

func (s *service) CompleteTimeoutOrder(ctx context.Context, o domain.Order) error {
	return s.transit(ctx, o, []domain.OrderStatus{domain.OrderStatusDeliveryInProgress}, domain.Transition{
		To: domain.OrderStatusCompleted,
	}, false)
}

func (s *service) find(ctx context.Context, id int64) (domain.Order, error) {
	view, err := s.Detail(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	return view.Order, nil
}

// transit 只有 o 的当前状态在 allowed 中才会流转,
// 条件更新以 o 的当前状态为准, 期间状态被其他请求修改时返回 ErrInvalidOrderStatus
func (s *service) transit(ctx context.Context, o domain.Order, allowed []domain.OrderStatus, t domain.Transition, refund bool) error {
	if !slice.Contains(allowed, o.Status) {
		return fmt.Errorf("%w: id=%d, status=%d, to=%d", ErrInvalidOrderStatus, o.ID, o.Status, t.To)
	}
	t.OrderID = o.ID
	t.From = []domain.OrderStatus{o.Status}
	var hook func(ctx context.Context) error
	if refund {
		t.PayStatus = domain.PayStatusRefund
		hook = func(ctx context.Context) error {
			return s.refund(ctx, o)
		}
	}
	err := s.repo.Transit(ctx, t, hook)
	if errors.Is(err, repository.ErrStatusConflict) {
		return fmt.Errorf("%w: id=%d, status=%d, to=%d", ErrInvalidOrderStatus, o.ID, o.Status, t.To)
	}
	if err != nil {
		return err
	}
	o.Status = t.To
	s.sendEvent(ctx, o)
	return nil
}

// refund 全额退款
func (s *service) refund(ctx context.Context, o domain.Order) error {
	err := s.paymentSvc.Refund(ctx, payment.Refund{
		OrderSN:  o.Number,
		RefundSN: s.refundSNGen.Generate(),
		Amount:   o.Amount,
		Total:    o.Amount,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPaymentProvider, err)
	}
	return nil
}

func (s *service) sendEvent(ctx context.Context, o domain.Order) {
	err := s.producer.Produce(ctx, event.OrderEvent{
		OrderID: o.ID,
		OrderSN: o.Number,
		UserID:  o.UserID,
		Status:  o.Status.ToUint8(),
	})
	if err != nil {
		s.l.Warn("发送订单事件失败",
			elog.FieldErr(err),
			elog.Int64("order_id", o.ID),
			elog.String("order_sn", o.Number),
		)
	}
}

func (s *service) wrapNotFound(err error, field string, val any) error {
	if errors.Is(err, repository.ErrOrderNotFound) {
		return fmt.Errorf("%w: %s=%v", ErrOrderNotFound, field, val)
	}
	return err
}
