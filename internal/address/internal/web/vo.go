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

package web

import "github.com/ecodeclub/takeout/internal/address/internal/domain"

type Address struct {
	ID           int64  `json:"id,omitempty"`
	Consignee    string `json:"consignee"`
	Sex          uint8  `json:"sex"`
	Phone        string `json:"phone"`
	ProvinceCode string `json:"provinceCode"`
	ProvinceName string `json:"provinceName"`
	CityCode     string `json:"cityCode"`
	CityName     string `json:"cityName"`
	DistrictCode string `json:"districtCode"`
	DistrictName string `json:"districtName"`
	Detail       string `json:"detail"`
	Label        string `json:"label"`
	IsDefault    bool   `json:"isDefault"`
}

func (a Address) toDomain(uid int64) domain.Address {
	return domain.Address{
		ID:           a.ID,
		UserID:       uid,
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
	}
}

func newAddress(a domain.Address) Address {
	return Address{
		ID:           a.ID,
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

type IDReq struct {
	ID int64 `json:"id"`
}
