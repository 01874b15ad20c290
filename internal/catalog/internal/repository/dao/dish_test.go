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
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T, conn *sql.DB) *gorm.DB {
	db, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn: conn,
		// 如果为 false ，则GORM在初始化时，会先调用 show version
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		// 如果为 true ，则不允许 Ping数据库
		DisableAutomaticPing: true,
		// 如果为 false ，则即使是单一语句，也会开启事务
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}

func TestDishGORMDAO_Create(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(t *testing.T) *sql.DB
		flavors []DishFlavor
		wantId  int64
		wantErr error
	}{
		{
			name: "名称冲突",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `dish` .*").
					WillReturnError(&mysql.MySQLError{Number: 1062})
				mock.ExpectRollback()
				return mockDB
			},
			wantErr: ErrDuplicateName,
		},
		{
			name: "插入口味失败回滚",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `dish` .*").
					WillReturnResult(sqlmock.NewResult(3, 1))
				mock.ExpectExec("INSERT INTO `dish_flavor` .*").
					WillReturnError(errors.New("mock db error"))
				mock.ExpectRollback()
				return mockDB
			},
			flavors: []DishFlavor{{Name: "辣度"}},
			wantId:  3,
			wantErr: errors.New("mock db error"),
		},
		{
			name: "插入成功",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `dish` .*").
					WillReturnResult(sqlmock.NewResult(3, 1))
				mock.ExpectExec("INSERT INTO `dish_flavor` .*").
					WillReturnResult(sqlmock.NewResult(1, 2))
				mock.ExpectCommit()
				return mockDB
			},
			flavors: []DishFlavor{{Name: "辣度"}, {Name: "甜度"}},
			wantId:  3,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDishGORMDAO(newTestDB(t, tc.mock(t)))
			id, err := d.Create(context.Background(), Dish{Name: "宫保鸡丁", Price: 2800}, tc.flavors)
			assert.Equal(t, tc.wantErr, err)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantId, id)
		})
	}
}

func TestDishGORMDAO_Delete(t *testing.T) {
	testCases := []struct {
		name    string
		ids     []int64
		mock    func(t *testing.T) (*sql.DB, sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "存在起售中的菜品",
			ids:  []int64{1, 2},
			mock: func(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT count\\(\\*\\) FROM `dish` .*").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
				mock.ExpectRollback()
				return mockDB, mock
			},
			wantErr: ErrDishOnSale,
		},
		{
			name: "菜品关联了套餐",
			ids:  []int64{1, 2},
			mock: func(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT count\\(\\*\\) FROM `dish` .*").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
				mock.ExpectQuery("SELECT count\\(\\*\\) FROM `setmeal_dish` .*").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
				mock.ExpectRollback()
				return mockDB, mock
			},
			wantErr: ErrDishInSetmeal,
		},
		{
			name: "删除成功",
			ids:  []int64{1, 2},
			mock: func(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT count\\(\\*\\) FROM `dish` .*").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
				mock.ExpectQuery("SELECT count\\(\\*\\) FROM `setmeal_dish` .*").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
				mock.ExpectExec("DELETE FROM `dish` .*").
					WillReturnResult(sqlmock.NewResult(0, 2))
				mock.ExpectExec("DELETE FROM `dish_flavor` .*").
					WillReturnResult(sqlmock.NewResult(0, 3))
				mock.ExpectCommit()
				return mockDB, mock
			},
		},
		{
			name: "空列表",
			mock: func(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				return mockDB, mock
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockDB, mock := tc.mock(t)
			d := NewDishGORMDAO(newTestDB(t, mockDB))
			err := d.Delete(context.Background(), tc.ids)
			assert.Equal(t, tc.wantErr, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDishGORMDAO_UpdateStatus(t *testing.T) {
	testCases := []struct {
		name         string
		status       uint8
		mock         func(t *testing.T) *sql.DB
		wantCascaded []int64
		wantErr      error
	}{
		{
			name:   "起售不级联",
			status: statusOnSale,
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE `dish` .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
				return mockDB
			},
		},
		{
			name:   "停售级联停售套餐",
			status: statusOffSale,
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE `dish` .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery("SELECT `setmeal_id` FROM `setmeal_dish` .*").
					WillReturnRows(sqlmock.NewRows([]string{"setmeal_id"}).AddRow(11).AddRow(12))
				mock.ExpectQuery("SELECT \\* FROM `setmeal` .*").
					WillReturnRows(sqlmock.NewRows([]string{"id", "category_id", "status"}).AddRow(11, 5, 1))
				mock.ExpectExec("UPDATE `setmeal` .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
				return mockDB
			},
			wantCascaded: []int64{11},
		},
		{
			name:   "菜品不存在",
			status: statusOffSale,
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE `dish` .*").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
				return mockDB
			},
			wantErr: ErrRecordNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDishGORMDAO(newTestDB(t, tc.mock(t)))
			cascaded, err := d.UpdateStatus(context.Background(), 1, tc.status)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			ids := make([]int64, 0, len(cascaded))
			for _, s := range cascaded {
				ids = append(ids, s.Id)
			}
			assert.ElementsMatch(t, tc.wantCascaded, ids)
		})
	}
}
