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
	"testing"

	"github.com/ecodeclub/takeout/internal/catalog/internal/domain"
	cachemocks "github.com/ecodeclub/takeout/internal/catalog/internal/repository/cache/mocks"
	repomocks "github.com/ecodeclub/takeout/internal/catalog/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSetmealService_UpdateStatus(t *testing.T) {
	testCases := []struct {
		name    string
		status  domain.Status
		mock    func(repo *repomocks.MockSetmealRepository, inv *cachemocks.MockInvalidator)
		wantErr error
	}{
		{
			name:   "包含停售菜品不能起售",
			status: domain.StatusOnSale,
			mock: func(repo *repomocks.MockSetmealRepository, inv *cachemocks.MockInvalidator) {
				repo.EXPECT().UpdateStatus(gomock.Any(), int64(7), domain.StatusOnSale).Return(ErrSetmealHasOffSaleDish)
			},
			wantErr: ErrSetmealHasOffSaleDish,
		},
		{
			name:   "只清理套餐缓存",
			status: domain.StatusOnSale,
			mock: func(repo *repomocks.MockSetmealRepository, inv *cachemocks.MockInvalidator) {
				repo.EXPECT().UpdateStatus(gomock.Any(), int64(7), domain.StatusOnSale).Return(nil)
				inv.EXPECT().InvalidateKey(gomock.Any(), "setmeal_3").Return(nil)
			},
		},
		{
			name:   "清理缓存失败不影响结果",
			status: domain.StatusOffSale,
			mock: func(repo *repomocks.MockSetmealRepository, inv *cachemocks.MockInvalidator) {
				repo.EXPECT().UpdateStatus(gomock.Any(), int64(7), domain.StatusOffSale).Return(nil)
				inv.EXPECT().InvalidateKey(gomock.Any(), "setmeal_3").Return(errors.New("redis down"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := repomocks.NewMockSetmealRepository(ctrl)
			inv := cachemocks.NewMockInvalidator(ctrl)
			repo.EXPECT().FindByIDs(gomock.Any(), []int64{7}).Return([]domain.Setmeal{{ID: 7, CategoryID: 3}}, nil)
			tc.mock(repo, inv)

			svc := NewSetmealService(repo, inv)
			err := svc.UpdateStatus(context.Background(), 7, tc.status)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestSetmealService_FindByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repomocks.NewMockSetmealRepository(ctrl)
	repo.EXPECT().FindByIDs(gomock.Any(), []int64{7}).Return(nil, nil)
	repo.EXPECT().FindByIDs(gomock.Any(), []int64{8}).Return([]domain.Setmeal{{ID: 8, Name: "单人套餐"}}, nil)

	svc := NewSetmealService(repo, cachemocks.NewMockInvalidator(ctrl))
	_, err := svc.FindByID(context.Background(), 7)
	assert.ErrorIs(t, err, ErrSetmealNotFound)

	s, err := svc.FindByID(context.Background(), 8)
	require.NoError(t, err)
	assert.Equal(t, "单人套餐", s.Name)
}

func TestSetmealService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repomocks.NewMockSetmealRepository(ctrl)
	inv := cachemocks.NewMockInvalidator(ctrl)
	repo.EXPECT().FindByIDs(gomock.Any(), []int64{8}).Return([]domain.Setmeal{{ID: 8, CategoryID: 3}}, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	inv.EXPECT().InvalidateCategories(gomock.Any(), []int64{3, 4}).Return(nil)

	svc := NewSetmealService(repo, inv)
	err := svc.Update(context.Background(), domain.Setmeal{ID: 8, CategoryID: 4})
	require.NoError(t, err)
}
