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
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetmealGORMDAO_UpdateStatus(t *testing.T) {
	testCases := []struct {
		name    string
		status  uint8
		mock    func(t *testing.T) *sql.DB
		wantErr error
	}{
		{
			name:   "包含停售菜品不能起售",
			status: statusOnSale,
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT count\\(\\*\\) FROM `dish` JOIN setmeal_dish .*").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
				mock.ExpectRollback()
				return mockDB
			},
			wantErr: ErrSetmealHasOffSaleDish,
		},
		{
			name:   "起售成功",
			status: statusOnSale,
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT count\\(\\*\\) FROM `dish` JOIN setmeal_dish .*").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
				mock.ExpectExec("UPDATE `setmeal` .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
				return mockDB
			},
		},
		{
			name:   "停售不检查菜品",
			status: statusOffSale,
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE `setmeal` .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
				return mockDB
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewSetmealGORMDAO(newTestDB(t, tc.mock(t)))
			err := d.UpdateStatus(context.Background(), 1, tc.status)
			assert.Equal(t, tc.wantErr, err)
		})
	}
}

func TestSetmealGORMDAO_Delete(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `setmeal` .*").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	d := NewSetmealGORMDAO(newTestDB(t, mockDB))
	err = d.Delete(context.Background(), []int64{1, 2, 3})
	assert.Equal(t, ErrSetmealOnSale, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
