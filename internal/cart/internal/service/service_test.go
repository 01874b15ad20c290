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

	"github.com/ecodeclub/takeout/internal/cart/internal/domain"
	"github.com/ecodeclub/takeout/internal/cart/internal/repository"
	repomocks "github.com/ecodeclub/takeout/internal/cart/internal/repository/mocks"
	"github.com/ecodeclub/takeout/internal/catalog"
	catalogmocks "github.com/ecodeclub/takeout/internal/catalog/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestService_Add(t *testing.T) {
	testCases := []struct {
		name    string
		item    domain.Item
		mock    func(ctrl *gomock.Controller) (repository.CartRepository, catalog.DishService, catalog.SetmealService)
		wantErr error
	}{
		{
			name: "菜品和套餐都没有选择",
			item: domain.Item{},
			mock: func(ctrl *gomock.Controller) (repository.CartRepository, catalog.DishService, catalog.SetmealService) {
				return repomocks.NewMockCartRepository(ctrl), catalogmocks.NewMockDishService(ctrl), catalogmocks.NewMockSetmealService(ctrl)
			},
			wantErr: ErrUnknownItem,
		},
		{
			name: "菜品和套餐同时选择",
			item: domain.Item{DishID: 1, SetmealID: 2},
			mock: func(ctrl *gomock.Controller) (repository.CartRepository, catalog.DishService, catalog.SetmealService) {
				return repomocks.NewMockCartRepository(ctrl), catalogmocks.NewMockDishService(ctrl), catalogmocks.NewMockSetmealService(ctrl)
			},
			wantErr: ErrUnknownItem,
		},
		{
			name: "菜品不存在",
			item: domain.Item{DishID: 1},
			mock: func(ctrl *gomock.Controller) (repository.CartRepository, catalog.DishService, catalog.SetmealService) {
				dishSvc := catalogmocks.NewMockDishService(ctrl)
				dishSvc.EXPECT().FindByIDs(gomock.Any(), []int64{1}).Return(nil, nil)
				return repomocks.NewMockCartRepository(ctrl), dishSvc, catalogmocks.NewMockSetmealService(ctrl)
			},
			wantErr: ErrItemNotFound,
		},
		{
			name: "添加菜品使用当前价格",
			item: domain.Item{DishID: 1, DishFlavor: "微辣"},
			mock: func(ctrl *gomock.Controller) (repository.CartRepository, catalog.DishService, catalog.SetmealService) {
				dishSvc := catalogmocks.NewMockDishService(ctrl)
				dishSvc.EXPECT().FindByIDs(gomock.Any(), []int64{1}).Return([]catalog.Dish{
					{ID: 1, Name: "宫保鸡丁", Image: "a.png", Price: 2800},
				}, nil)
				repo := repomocks.NewMockCartRepository(ctrl)
				repo.EXPECT().Add(gomock.Any(), domain.CartItem{
					UserID: 9,
					Item:   domain.Item{DishID: 1, DishFlavor: "微辣"},
					Name:   "宫保鸡丁",
					Image:  "a.png",
					Amount: 2800,
					Number: 1,
				}).Return(nil)
				return repo, dishSvc, catalogmocks.NewMockSetmealService(ctrl)
			},
		},
		{
			name: "套餐不存在",
			item: domain.Item{SetmealID: 2},
			mock: func(ctrl *gomock.Controller) (repository.CartRepository, catalog.DishService, catalog.SetmealService) {
				setmealSvc := catalogmocks.NewMockSetmealService(ctrl)
				setmealSvc.EXPECT().FindByID(gomock.Any(), int64(2)).Return(catalog.Setmeal{}, catalog.ErrSetmealNotFound)
				return repomocks.NewMockCartRepository(ctrl), catalogmocks.NewMockDishService(ctrl), setmealSvc
			},
			wantErr: ErrItemNotFound,
		},
		{
			name: "添加套餐忽略口味",
			item: domain.Item{SetmealID: 2, DishFlavor: "微辣"},
			mock: func(ctrl *gomock.Controller) (repository.CartRepository, catalog.DishService, catalog.SetmealService) {
				setmealSvc := catalogmocks.NewMockSetmealService(ctrl)
				setmealSvc.EXPECT().FindByID(gomock.Any(), int64(2)).Return(catalog.Setmeal{ID: 2, Name: "单人套餐", Price: 3900}, nil)
				repo := repomocks.NewMockCartRepository(ctrl)
				repo.EXPECT().Add(gomock.Any(), domain.CartItem{
					UserID: 9,
					Item:   domain.Item{SetmealID: 2},
					Name:   "单人套餐",
					Amount: 3900,
					Number: 1,
				}).Return(nil)
				return repo, catalogmocks.NewMockDishService(ctrl), setmealSvc
			},
		},
		{
			name: "查询菜单失败",
			item: domain.Item{SetmealID: 2},
			mock: func(ctrl *gomock.Controller) (repository.CartRepository, catalog.DishService, catalog.SetmealService) {
				setmealSvc := catalogmocks.NewMockSetmealService(ctrl)
				setmealSvc.EXPECT().FindByID(gomock.Any(), int64(2)).Return(catalog.Setmeal{}, errors.New("mock db error"))
				return repomocks.NewMockCartRepository(ctrl), catalogmocks.NewMockDishService(ctrl), setmealSvc
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, dishSvc, setmealSvc := tc.mock(ctrl)
			svc := NewService(repo, dishSvc, setmealSvc)
			err := svc.Add(context.Background(), 9, tc.item)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.wantErr.Error())
		})
	}
}

func TestService_Sub(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repomocks.NewMockCartRepository(ctrl)
	repo.EXPECT().Sub(gomock.Any(), int64(9), domain.Item{DishID: 1}).Return(ErrItemNotFound)
	repo.EXPECT().Sub(gomock.Any(), int64(9), domain.Item{DishID: 2, DishFlavor: "微辣"}).Return(nil)
	// 套餐忽略口味, 与加入购物车时保持一致
	repo.EXPECT().Sub(gomock.Any(), int64(9), domain.Item{SetmealID: 3}).Return(nil)
	svc := NewService(repo, catalogmocks.NewMockDishService(ctrl), catalogmocks.NewMockSetmealService(ctrl))

	err := svc.Sub(context.Background(), 9, domain.Item{})
	assert.ErrorIs(t, err, ErrUnknownItem)
	err = svc.Sub(context.Background(), 9, domain.Item{DishID: 1})
	assert.ErrorIs(t, err, ErrItemNotFound)
	err = svc.Sub(context.Background(), 9, domain.Item{DishID: 2, DishFlavor: "微辣"})
	assert.NoError(t, err)
	err = svc.Sub(context.Background(), 9, domain.Item{SetmealID: 3, DishFlavor: "微辣"})
	assert.NoError(t, err)
}

func TestService_AddBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repomocks.NewMockCartRepository(ctrl)
	repo.EXPECT().AddBatch(gomock.Any(), []domain.CartItem{
		{UserID: 9, Item: domain.Item{DishID: 1}, Number: 2},
		{UserID: 9, Item: domain.Item{SetmealID: 3}, Number: 1},
	}).Return(nil)
	svc := NewService(repo, catalogmocks.NewMockDishService(ctrl), catalogmocks.NewMockSetmealService(ctrl))

	err := svc.AddBatch(context.Background(), 9, []domain.CartItem{
		{UserID: 1, Item: domain.Item{DishID: 1}, Number: 2},
		{Item: domain.Item{SetmealID: 3}, Number: 1},
	})
	assert.NoError(t, err)
}
