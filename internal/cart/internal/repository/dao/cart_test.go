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

func TestCartGORMDAO_Upsert(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectExec("INSERT INTO `shopping_cart` .* ON DUPLICATE KEY UPDATE `number`=`number` \\+ 1.*").
		WillReturnResult(sqlmock.NewResult(1, 1))

	d := NewCartGORMDAO(newTestDB(t, mockDB))
	err = d.Upsert(context.Background(), ShoppingCart{UserId: 1, DishId: 2, Name: "宫保鸡丁", Amount: 2800})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartGORMDAO_UpsertBatch(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectExec("INSERT INTO `shopping_cart` .* ON DUPLICATE KEY UPDATE `number`=`number` \\+ VALUES\\(`number`\\).*").
		WillReturnResult(sqlmock.NewResult(1, 2))

	d := NewCartGORMDAO(newTestDB(t, mockDB))
	err = d.UpsertBatch(context.Background(), []ShoppingCart{
		{UserId: 1, DishId: 2, Number: 3},
		{UserId: 1, SetmealId: 5, Number: 1},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartGORMDAO_Sub(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(t *testing.T) (*sql.DB, sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "数量大于1减1",
			mock: func(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("UPDATE `shopping_cart` SET `number`=`number` - 1.* AND number > 1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				return mockDB, mock
			},
		},
		{
			name: "数量为1删除",
			mock: func(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("UPDATE `shopping_cart` .* AND number > 1").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec("DELETE FROM `shopping_cart` .* AND number <= 1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				return mockDB, mock
			},
		},
		{
			name: "购物车中没有该商品",
			mock: func(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("UPDATE `shopping_cart` .* AND number > 1").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec("DELETE FROM `shopping_cart` .* AND number <= 1").
					WillReturnResult(sqlmock.NewResult(0, 0))
				return mockDB, mock
			},
			wantErr: ErrItemNotFound,
		},
		{
			name: "数据库错误",
			mock: func(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("UPDATE `shopping_cart` .* AND number > 1").
					WillReturnError(errors.New("mock db error"))
				return mockDB, mock
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockDB, mock := tc.mock(t)
			d := NewCartGORMDAO(newTestDB(t, mockDB))
			err := d.Sub(context.Background(), 1, 2, 0, "微辣")
			assert.Equal(t, tc.wantErr, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
