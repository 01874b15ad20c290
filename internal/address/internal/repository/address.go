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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/takeout/internal/address/internal/domain"
	"github.com/ecodeclub/takeout/internal/address/internal/repository/dao"
)

var ErrAddressNotFound = dao.ErrRecordNotFound

type AddressRepository interface {
	Save(ctx context.Context, a domain.Address) (int64, error)
	List(ctx context.Context, uid int64) ([]domain.Address, error)
	FindByID(ctx context.Context, uid, id int64) (domain.Address, error)
	FindDefault(ctx context.Context, uid int64) (domain.Address, error)
	Delete(ctx context.Context, uid, id int64) error
	SetDefault(ctx context.Context, uid, id int64) error
}

type addressRepository struct {
	dao dao.AddressDAO
}

func NewAddressRepository(d dao.AddressDAO) AddressRepository {
	return &addressRepository{dao: d}
}

func (r *addressRepository) Save(ctx context.Context, a domain.Address) (int64, error) {
	if a.ID > 0 {
		return a.ID, r.dao.Update(ctx, r.toEntity(a))
	}
	return r.dao.Create(ctx, r.toEntity(a))
}

func (r *addressRepository) List(ctx context.Context, uid int64) ([]domain.Address, error) {
	res, err := r.dao.FindByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.AddressBook) domain.Address {
		return r.toDomain(src)
	}), nil
}

func (r *addressRepository) FindByID(ctx context.Context, uid, id int64) (domain.Address, error) {
	res, err := r.dao.FindByID(ctx, uid, id)
	return r.toDomain(res), err
}

func (r *addressRepository) FindDefault(ctx context.Context, uid int64) (domain.Address, error) {
	res, err := r.dao.FindDefault(ctx, uid)
	return r.toDomain(res), err
}

func (r *addressRepository) Delete(ctx context.Context, uid, id int64) error {
	return r.dao.Delete(ctx, uid, id)
}

func (r *addressRepository) SetDefault(ctx context.Context, uid, id int64) error {
	return r.dao.SetDefault(ctx, uid, id)
}

func (r *addressRepository) toEntity(a domain.Address) dao.AddressBook {
	return dao.AddressBook{
		Id:           a.ID,
		UserId:       a.UserID,
		Consignee:    a.Consignee,
		Sex:          a.Sex,
		Phone:        a.Phone,
		ProvinceCode: a.ProvinceCode,
		ProvinceName: a.ProvinceName,
		CityCode:     a.CityCode,
		CityName:     a.CityName,
		DistrictCode: a.DistrictCode,
		DistrictName: a.DistrictName,
		Detail:       a.Detail,
		Label:        a.Label,
		IsDefault:    a.IsDefault,
	}
}

func (r *addressRepository) toDomain(a dao.AddressBook) domain.Address {
	return domain.Address{
		ID:           a.Id,
		UserID:       a.UserId,
		Consignee:    a.Consignee,
		Sex:          a.Sex,
		Phone:        a.Phone,
		ProvinceCode: a.ProvinceCode,
		ProvinceName: a.ProvinceName,
		CityCode:     a.CityCode,
		CityName:     a.CityName,
		DistrictCode: a.DistrictCode,
		DistrictName: a.DistrictName,
		Detail:       a.Detail,
		Label:        a.Label,
		IsDefault:    a.IsDefault,
	}
}
