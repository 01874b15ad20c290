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
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T, conn *sql.DB) *gorm.DB {
	db, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}

func TestOrderGORMDAO_Create(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(t *testing.T) (*sql.DB, sqlmock.Sqlmock)
		details []OrderDetail
		cartIDs []int64
		wantId  int64
		wantErr error
	}{
		{
			name: "插入订单失败",
			mock: func(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `orders` .*").
					WillReturnError(errors.New("mock db error"))
				mock.ExpectRollback()
				return mockDB, mock
			},
			details: []OrderDetail{{Name: "宫保鸡丁", Number: 1, Amount: 2800}},
			cartIDs: []int64{1},
			wantErr: errors.New("mock db error"),
		},
		{
			name: "插入明细失败整体回滚",
			mock: func(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `orders` .*").
					WillReturnResult(sqlmock.NewResult(7, 1))
				mock.ExpectExec("INSERT INTO `order_detail` .*").
					WillReturnError(errors.New("mock db error"))
				mock.ExpectRollback()
				return mockDB, mock
			},
			details: []OrderDetail{{Name: "宫保鸡丁", Number: 1, Amount: 2800}},
			cartIDs: []int64{1},
			wantId:  7,
			wantErr: errors.New("mock db error"),
		},
		{
			name: "删除购物车失败整体回滚",
			mock: func(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `orders` .*").
					WillReturnResult(sqlmock.NewResult(7, 1))
				mock.ExpectExec("INSERT INTO `order_detail` .*").
					WillReturnResult(sqlmock.NewResult(1, 2))
				mock.ExpectExec("DELETE FROM `shopping_cart` .*").
					WillReturnError(errors.New("mock db error"))
				mock.ExpectRollback()
				return mockDB, mock
			},
			details: []OrderDetail{{Name: "宫保鸡丁", Number: 1, Amount: 2800}, {Name: "单人套餐", Number: 2, Amount: 3900}},
			cartIDs: []int64{1, 2},
			wantId:  7,
			wantErr: errors.New("mock db error"),
		},
		{
			name: "下单成功",
			mock: func(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `orders` .*").
					WillReturnResult(sqlmock.NewResult(7, 1))
				mock.ExpectExec("INSERT INTO `order_detail` .*").
					WillReturnResult(sqlmock.NewResult(1, 2))
				mock.ExpectExec("DELETE FROM `shopping_cart` .*").
					WithArgs(int64(1), int64(2), int64(9)).
					WillReturnResult(sqlmock.NewResult(0, 2))
				mock.ExpectCommit()
				return mockDB, mock
			},
			details: []OrderDetail{{Name: "宫保鸡丁", Number: 1, Amount: 2800}, {Name: "单人套餐", Number: 2, Amount: 3900}},
			cartIDs: []int64{1, 2},
			wantId:  7,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockDB, mock := tc.mock(t)
			d := NewOrderGORMDAO(newTestDB(t, mockDB))
			id, err := d.Create(context.Background(), Order{Number: "sn-1", UserId: 9, Amount: 10600}, tc.details, tc.cartIDs)
			assert.Equal(t, tc.wantErr, err)
			assert.NoError(t, mock.ExpectationsWereMet())
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantId, id)
		})
	}
}

func TestOrderGORMDAO_CreateKeepsZeroStatus(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectBegin()
	// 配送状态和餐具状态选择 0 时必须原样落库
	mock.ExpectExec("INSERT INTO `orders` .*").
		WithArgs("sn-1", int64(1), int64(9), int64(3), int64(0), int64(0), int64(1), int64(0),
			int64(10600), "", "13800000000", "北京市海淀区", "张三", "", "", int64(0), int64(0),
			int64(0), int64(0), int64(0), int64(2), int64(0),
			sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(8, 1))
	mock.ExpectCommit()

	d := NewOrderGORMDAO(newTestDB(t, mockDB))
	id, err := d.Create(context.Background(), Order{
		Number:          "sn-1",
		Status:          1,
		UserId:          9,
		AddressBookId:   3,
		PayMethod:       1,
		Amount:          10600,
		Phone:           "13800000000",
		Address:         "北京市海淀区",
		Consignee:       "张三",
		DeliveryStatus:  0,
		TablewareNumber: 2,
		TablewareStatus: 0,
	}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(8), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderGORMDAO_Transit(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(t *testing.T) (*sql.DB, sqlmock.Sqlmock)
		hook    func(ctx context.Context) error
		wantErr error
	}{
		{
			name: "状态已变更",
			mock: func(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE `orders` SET .* WHERE id = \\? AND status IN \\(\\?\\)").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
				return mockDB, mock
			},
			hook: func(ctx context.Context) error {
				return errors.New("不应该被调用")
			},
			wantErr: ErrStatusConflict,
		},
		{
			name: "hook失败回滚",
			mock: func(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE `orders` SET .* WHERE id = \\? AND status IN \\(\\?\\)").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectRollback()
				return mockDB, mock
			},
			hook: func(ctx context.Context) error {
				return errors.New("退款失败")
			},
			wantErr: errors.New("退款失败"),
		},
		{
			name: "更新成功",
			mock: func(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE `orders` SET .* WHERE id = \\? AND status IN \\(\\?\\)").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
				return mockDB, mock
			},
			hook: func(ctx context.Context) error {
				return nil
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockDB, mock := tc.mock(t)
			d := NewOrderGORMDAO(newTestDB(t, mockDB))
			err := d.Transit(context.Background(), 1, []uint8{2}, map[string]any{
				"status":      uint8(6),
				"cancel_time": int64(1700000000000),
			}, tc.hook)
			assert.Equal(t, tc.wantErr, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestOrderGORMDAO_FindTimeout(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectQuery("SELECT \\* FROM `orders` WHERE status = \\? AND order_time < \\? AND id > \\? ORDER BY id ASC LIMIT .*").
		WillReturnRows(sqlmock.NewRows([]string{"id", "number", "status", "order_time"}).
			AddRow(11, "sn-11", 1, 100).
			AddRow(12, "sn-12", 1, 200))
	d := NewOrderGORMDAO(newTestDB(t, mockDB))
	orders, err := d.FindTimeout(context.Background(), 1, 1000, 10, 2)
	require.NoError(t, err)
	assert.Equal(t, []Order{
		{Id: 11, Number: "sn-11", Status: 1, OrderTime: 100},
		{Id: 12, Number: "sn-12", Status: 1, OrderTime: 200},
	}, orders)
	assert.NoError(t, mock.ExpectationsWereMet())
}
